package cmd

import (
	"fmt"
	"os"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/spf13/cobra"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export campus events to an iCalendar file",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "events.ics", "Output .ics path")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	w, st, _, err := openWorkspace()
	if err != nil {
		return err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//campus-companion//EN")

	now := time.Now()
	for _, e := range w.Events {
		d := e.Date.Time()
		start := time.Date(d.Year(), d.Month(), d.Day(), e.Time.Hour(), e.Time.Minute(), 0, 0, time.Local)

		ev := cal.AddEvent(e.ID)
		ev.SetCreatedTime(now)
		ev.SetDtStampTime(now)
		ev.SetStartAt(start)
		ev.SetEndAt(start.Add(time.Hour))
		ev.SetSummary(e.Title)
		if e.Location != "" {
			ev.SetLocation(e.Location)
		}
		if e.Description != "" {
			ev.SetDescription(e.Description)
		}
	}

	if err := os.WriteFile(flagExportOut, []byte(cal.Serialize()), 0o644); err != nil {
		return fmt.Errorf("writing calendar: %w", err)
	}

	fmt.Printf("  Exported %d event(s) to %s\n", len(w.Events), flagExportOut)
	return finish(w, st)
}
