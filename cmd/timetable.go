package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/the-realgabriel/campus-companion-2/internal/cli"
	"github.com/the-realgabriel/campus-companion-2/internal/model"
	"github.com/the-realgabriel/campus-companion-2/internal/planner"
)

var (
	flagClassDay      string
	flagClassTime     string
	flagClassCourse   string
	flagClassLecturer string
	flagClassNotes    string
	flagClassColor    string
	flagClassReminder bool
)

var timetableCmd = &cobra.Command{
	Use:   "timetable",
	Short: "Weekly timetable grouped by day",
	RunE:  runTimetable,
}

var timetableAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a class to the timetable",
	RunE:  runTimetableAdd,
}

func init() {
	timetableAddCmd.Flags().StringVar(&flagClassDay, "day", "", "Class day (Monday-Saturday)")
	timetableAddCmd.Flags().StringVar(&flagClassTime, "time", "", "Class time, e.g. 09:00 or 09:00 AM")
	timetableAddCmd.Flags().StringVar(&flagClassCourse, "course", "", "Course name")
	timetableAddCmd.Flags().StringVar(&flagClassLecturer, "lecturer", "", "Lecturer")
	timetableAddCmd.Flags().StringVar(&flagClassNotes, "notes", "", "Notes / location")
	timetableAddCmd.Flags().StringVar(&flagClassColor, "color", "#b3e5fc", "Color tag")
	timetableAddCmd.Flags().BoolVar(&flagClassReminder, "reminder", false, "Set reminder flag")

	timetableCmd.AddCommand(timetableAddCmd)
	rootCmd.AddCommand(timetableCmd)
}

func runTimetable(_ *cobra.Command, _ []string) error {
	w, st, _, err := openWorkspace()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("WEEKLY TIMETABLE"))
	fmt.Println()

	groups := planner.GroupTimetable(w.Timetable)
	if len(groups) == 0 {
		fmt.Println(cli.Muted("  No classes yet — add one with `companion timetable add`."))
	}
	for _, g := range groups {
		fmt.Printf("  %s\n", string(g.Day))
		for _, e := range g.Entries {
			line := fmt.Sprintf("    %s  %s", e.Time.Clock12(), e.Course)
			if e.Lecturer != "" {
				line += cli.Muted(fmt.Sprintf("  (%s)", e.Lecturer))
			}
			if e.Reminder {
				line += "  [reminder]"
			}
			fmt.Println(line)
			if e.Notes != "" {
				fmt.Printf("      %s\n", cli.Muted(e.Notes))
			}
		}
		fmt.Println()
	}

	return finish(w, st)
}

func runTimetableAdd(_ *cobra.Command, _ []string) error {
	w, st, _, err := openWorkspace()
	if err != nil {
		return err
	}

	classTime, err := model.ParseClock(flagClassTime)
	if err != nil {
		return err
	}

	outcome, err := w.AddClass(model.TimetableEntry{
		Day:      model.Weekday(flagClassDay),
		Time:     classTime,
		Course:   flagClassCourse,
		Lecturer: flagClassLecturer,
		Notes:    flagClassNotes,
		Color:    flagClassColor,
		Reminder: flagClassReminder,
	})
	if err != nil {
		return err
	}
	if outcome == planner.Created {
		fmt.Printf("  %s added!\n", flagClassCourse)
	}

	return finish(w, st)
}
