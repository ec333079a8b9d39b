package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/the-realgabriel/campus-companion-2/internal/cli"
	"github.com/the-realgabriel/campus-companion-2/internal/legacy"
)

var importCmd = &cobra.Command{
	Use:   "import <dir>",
	Short: "Import planner data from legacy JSON files",
	Long: "Import events.json, timetable.json, assignments.json, streaks.json and " +
		"budget.json from an old data directory. Records already present are skipped, " +
		"so importing twice is safe.",
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	files, err := legacy.ScanDir(args[0])
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println(cli.Muted("No legacy data files found in " + args[0]))
		return nil
	}

	w, st, _, err := openWorkspace()
	if err != nil {
		return err
	}

	res := legacy.Import(w, files)

	if err := finish(w, st); err != nil {
		return err
	}

	fmt.Printf("Imported %d record(s):\n", res.Total())
	rows := []struct {
		label string
		count int
	}{
		{"Events", res.Events},
		{"Classes", res.Classes},
		{"Assignments", res.Assignments},
		{"Streak days", res.Streaks},
		{"Incomes", res.Incomes},
		{"Allocations", res.Budgets},
		{"Expenses", res.Expenses},
	}
	for _, r := range rows {
		if r.count > 0 {
			fmt.Printf("  %-12s %d\n", r.label, r.count)
		}
	}
	for _, name := range res.Skipped {
		fmt.Println(cli.Warn("Skipped " + name + ": could not parse"))
	}
	return nil
}
