package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/the-realgabriel/campus-companion-2/internal/cli"
	"github.com/the-realgabriel/campus-companion-2/internal/model"
	"github.com/the-realgabriel/campus-companion-2/internal/planner"
)

var (
	flagEventTitle    string
	flagEventDate     string
	flagEventTime     string
	flagEventLocation string
	flagEventType     string
	flagEventColor    string
	flagEventPick     bool
	flagEventDesc     string
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Upcoming campus events",
	RunE:  runEvents,
}

var eventsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a campus event",
	RunE:  runEventsAdd,
}

var picksCmd = &cobra.Command{
	Use:   "picks",
	Short: "Your spotlighted events",
	RunE:  runPicks,
}

func init() {
	eventsAddCmd.Flags().StringVar(&flagEventTitle, "title", "", "Event title")
	eventsAddCmd.Flags().StringVar(&flagEventDate, "date", "", "Event date (YYYY-MM-DD, default today)")
	eventsAddCmd.Flags().StringVar(&flagEventTime, "time", "12:00", "Event time, e.g. 18:30 or 06:30 PM")
	eventsAddCmd.Flags().StringVar(&flagEventLocation, "location", "", "Location")
	eventsAddCmd.Flags().StringVar(&flagEventType, "type", string(model.EventOther), "Event type (Social, Academic, Club, Other)")
	eventsAddCmd.Flags().StringVar(&flagEventColor, "color", "#cfe9ff", "Color tag")
	eventsAddCmd.Flags().BoolVar(&flagEventPick, "pick", false, "Mark as a spotlight pick")
	eventsAddCmd.Flags().StringVar(&flagEventDesc, "desc", "", "Description")

	eventsCmd.AddCommand(eventsAddCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(picksCmd)
}

func runEvents(_ *cobra.Command, _ []string) error {
	w, st, _, err := openWorkspace()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("CAMPUS EVENTS"))
	fmt.Println()

	if len(w.Events) == 0 {
		fmt.Println(cli.Muted("  No campus events yet — add one with `companion events add`."))
		fmt.Println()
		return finish(w, st)
	}

	today := model.Today()
	for _, e := range planner.EventsByDate(w.Events) {
		star := ""
		if e.UserPick {
			star = " " + cli.Gold("★")
		}
		fmt.Printf("  %s — %s%s\n", e.Title, e.Type, star)
		fmt.Printf("    %s | %s | %s\n", e.Location, e.Time.Clock12(), e.Date)
		fmt.Printf("    %s\n", e.Description)
		fmt.Printf("    %s\n", cli.Muted(cli.FormatDaysLeft(e.Date.DaysUntil(today))))
		fmt.Println()
	}

	return finish(w, st)
}

func runEventsAdd(_ *cobra.Command, _ []string) error {
	w, st, _, err := openWorkspace()
	if err != nil {
		return err
	}

	date := model.Today()
	if flagEventDate != "" {
		date, err = model.ParseDate(flagEventDate)
		if err != nil {
			return err
		}
	}
	eventTime, err := model.ParseClock(flagEventTime)
	if err != nil {
		return err
	}

	outcome, err := w.AddEvent(model.Event{
		Title:       flagEventTitle,
		Date:        date,
		Time:        eventTime,
		Location:    flagEventLocation,
		Type:        model.EventType(flagEventType),
		Color:       flagEventColor,
		UserPick:    flagEventPick,
		Description: flagEventDesc,
	})
	if err != nil {
		return err
	}
	if outcome == planner.Created {
		fmt.Println("  Event added!")
	}

	return finish(w, st)
}

func runPicks(_ *cobra.Command, _ []string) error {
	w, st, _, err := openWorkspace()
	if err != nil {
		return err
	}

	picks := planner.Picks(w.Events, 4)
	fmt.Println()
	if len(picks) == 0 {
		fmt.Println(cli.Muted("  No picks yet — spotlight events with `companion events add --pick`."))
		fmt.Println()
		return finish(w, st)
	}

	today := model.Today()
	for _, e := range picks {
		fmt.Printf("  %s %s\n", e.Title, cli.Gold("★"))
		fmt.Printf("    %s at %s | %s | %s\n", e.Date, e.Time.Clock12(), e.Type, e.Location)
		fmt.Printf("    %s\n", cli.Muted(cli.FormatDaysLeft(e.Date.DaysUntil(today))))
		fmt.Println()
	}

	return finish(w, st)
}
