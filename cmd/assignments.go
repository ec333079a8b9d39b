package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/the-realgabriel/campus-companion-2/internal/cli"
	"github.com/the-realgabriel/campus-companion-2/internal/model"
	"github.com/the-realgabriel/campus-companion-2/internal/planner"
)

var (
	flagAssignStatus  string
	flagAssignDueSoon bool

	flagAddCourse string
	flagAddTitle  string
	flagAddStatus string
	flagAddDue    string
	flagAddNotes  string
)

var assignmentsCmd = &cobra.Command{
	Use:   "assignments",
	Short: "List assignments with filters",
	RunE:  runAssignments,
}

var assignmentsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log an assignment",
	RunE:  runAssignmentsAdd,
}

func init() {
	assignmentsCmd.Flags().StringVar(&flagAssignStatus, "status", "", `Filter by status ("Not Started", "In Progress", "Done")`)
	assignmentsCmd.Flags().BoolVar(&flagAssignDueSoon, "due-soon", false, "Show only items due in the next 7 days")

	assignmentsAddCmd.Flags().StringVar(&flagAddCourse, "course", "", `Course name (default "General")`)
	assignmentsAddCmd.Flags().StringVar(&flagAddTitle, "title", "", "Assignment title")
	assignmentsAddCmd.Flags().StringVar(&flagAddStatus, "status", string(model.StatusNotStarted), "Initial status")
	assignmentsAddCmd.Flags().StringVar(&flagAddDue, "due", "", "Due date (YYYY-MM-DD, default today)")
	assignmentsAddCmd.Flags().StringVar(&flagAddNotes, "notes", "", "Notes")

	assignmentsCmd.AddCommand(assignmentsAddCmd)
	rootCmd.AddCommand(assignmentsCmd)
}

func runAssignments(_ *cobra.Command, _ []string) error {
	w, st, _, err := openWorkspace()
	if err != nil {
		return err
	}

	today := model.Today()
	filtered := planner.FilterAssignments(w.Assignments, model.Status(flagAssignStatus), flagAssignDueSoon, today)

	fmt.Println()
	if len(filtered) == 0 {
		fmt.Println(cli.Muted("  No assignments match the filters."))
		fmt.Println()
		return finish(w, st)
	}

	rows := make([][]string, 0, len(filtered))
	for _, a := range filtered {
		flag := ""
		if a.Overdue(today) {
			flag = cli.Warn("OVERDUE")
		}
		rows = append(rows, []string{a.Title, a.Course, a.DueDate.String(), string(a.Status), flag})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Your Assignments",
		Headers: []string{"Title", "Course", "Due", "Status", ""},
		Rows:    rows,
	}))
	fmt.Println()

	return finish(w, st)
}

func runAssignmentsAdd(_ *cobra.Command, _ []string) error {
	w, st, _, err := openWorkspace()
	if err != nil {
		return err
	}

	due := model.Today()
	if flagAddDue != "" {
		due, err = model.ParseDate(flagAddDue)
		if err != nil {
			return err
		}
	}

	outcome, err := w.AddAssignment(model.Assignment{
		Course:  flagAddCourse,
		Title:   flagAddTitle,
		Status:  model.Status(flagAddStatus),
		DueDate: due,
		Notes:   flagAddNotes,
	})
	if err != nil {
		return err
	}
	if outcome == planner.Created {
		fmt.Printf("  Assignment %q added.\n", flagAddTitle)
	}

	return finish(w, st)
}
