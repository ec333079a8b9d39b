package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/the-realgabriel/campus-companion-2/internal/model"
	"github.com/the-realgabriel/campus-companion-2/internal/planner"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show your expense logging streak",
	RunE:  runStreak,
}

var streakLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Mark today as logged",
	RunE:  runStreakLog,
}

func init() {
	streakCmd.AddCommand(streakLogCmd)
	rootCmd.AddCommand(streakCmd)
}

func runStreak(_ *cobra.Command, _ []string) error {
	w, st, _, err := openWorkspace()
	if err != nil {
		return err
	}

	count := planner.StreakCount(w.Streaks)
	fmt.Printf("\n  Current streak: %d day(s)\n\n", count)

	return finish(w, st)
}

func runStreakLog(_ *cobra.Command, _ []string) error {
	w, st, _, err := openWorkspace()
	if err != nil {
		return err
	}

	added, err := w.LogStreak(model.Today())
	if err != nil {
		return err
	}
	if added {
		fmt.Println("  Nice! Today added to your streak.")
	} else {
		fmt.Println("  You already logged today.")
	}
	fmt.Printf("  Current streak: %d day(s)\n", planner.StreakCount(w.Streaks))

	return finish(w, st)
}
