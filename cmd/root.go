// Package cmd implements the companion CLI commands.
package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/the-realgabriel/campus-companion-2/internal/config"
	"github.com/the-realgabriel/campus-companion-2/internal/planner"
	"github.com/the-realgabriel/campus-companion-2/internal/store"
)

var flagDataDir string

var rootCmd = &cobra.Command{
	Use:   "companion",
	Short: "Campus Companion personal planner",
	Long:  "Plan your campus life: events, timetable, assignments, budget, and your logging streak.",
	RunE:  runHome,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Planner data directory (default: XDG data dir)")
}

// openWorkspace is the shared loading path used by all commands: open
// the store and pull every collection into memory. Unreadable or
// missing collections come back empty rather than failing the command.
func openWorkspace() (*planner.Workspace, *store.Store, config.Config, error) {
	cfg, _ := config.Load()

	dir := flagDataDir
	if dir == "" {
		dir = config.DataDir(cfg)
	}

	st, err := store.Open(filepath.Join(dir, "planner.db"))
	if err != nil {
		return nil, nil, cfg, err
	}

	return planner.Open(st), st, cfg, nil
}

// finish runs the end-of-action save cycle. Every collection is
// persisted whether or not this action mutated anything.
func finish(w *planner.Workspace, st *store.Store) error {
	saveErr := w.SaveAll()
	closeErr := st.Close()
	if saveErr != nil {
		return saveErr
	}
	return closeErr
}
