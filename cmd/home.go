package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/the-realgabriel/campus-companion-2/internal/cli"
	"github.com/the-realgabriel/campus-companion-2/internal/model"
	"github.com/the-realgabriel/campus-companion-2/internal/planner"
)

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Quick glance at your week",
	RunE:  runHome,
}

func init() {
	rootCmd.AddCommand(homeCmd)
}

func runHome(_ *cobra.Command, _ []string) error {
	w, st, cfg, err := openWorkspace()
	if err != nil {
		return err
	}

	today := model.Today()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("WELCOME BACK, %s", strings.ToUpper(cfg.General.DisplayName))))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Quick glance at your week",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Balance", cli.FormatMoney(cfg.General.Currency, planner.Balance(w.Ledger))},
			{"Assignments Pending", cli.FormatNumber(int64(planner.PendingAssignments(w.Assignments)))},
			{"Upcoming Events", cli.FormatNumber(int64(planner.UpcomingEvents(w.Events, today)))},
		},
	}))

	picks := planner.Picks(w.Events, 4)
	fmt.Println()
	fmt.Printf("  %s\n", cli.Gold(fmt.Sprintf("%s's Picks", cfg.General.DisplayName)))
	if len(picks) == 0 {
		fmt.Println(cli.Muted("  No picks yet — add events with --pick to spotlight your faves."))
	} else {
		for _, e := range picks {
			daysLeft := e.Date.DaysUntil(today)
			fmt.Printf("  %s %s\n", e.Title, cli.Gold("★"))
			fmt.Printf("    %s at %s | %s | %s\n", e.Date, e.Time.Clock12(), e.Type, e.Location)
			fmt.Printf("    %s\n", cli.Muted(cli.FormatDaysLeft(daysLeft)))
		}
	}

	fmt.Println()
	fmt.Printf("  %s\n", cli.Muted("Quick Budget Snapshot"))
	slices := planner.ExpenseSlices(w.Ledger.Expenses)
	if len(slices) == 0 {
		fmt.Println(cli.Muted("  Add expenses in the budget tracker to see a snapshot here."))
	} else {
		fmt.Print(cli.RenderBreakdown(cfg.General.Currency, slices, 72))
	}
	fmt.Println()

	return finish(w, st)
}
