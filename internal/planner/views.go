package planner

import (
	"sort"

	"github.com/the-realgabriel/campus-companion-2/internal/model"
)

// TotalIncome sums all income amounts.
func TotalIncome(l model.Ledger) float64 {
	var total float64
	for _, in := range l.Incomes {
		total += in.Amount
	}
	return total
}

// TotalExpenses sums all expense amounts.
func TotalExpenses(l model.Ledger) float64 {
	var total float64
	for _, e := range l.Expenses {
		total += e.Amount
	}
	return total
}

// TotalBudgeted sums planned category allocations.
func TotalBudgeted(l model.Ledger) float64 {
	var total float64
	for _, b := range l.Budgets {
		total += b.Amount
	}
	return total
}

// Balance is income minus expenses. Negative balances are valid.
func Balance(l model.Ledger) float64 {
	return TotalIncome(l) - TotalExpenses(l)
}

// PendingAssignments counts assignments not yet Done.
func PendingAssignments(as []model.Assignment) int {
	n := 0
	for _, a := range as {
		if a.Status != model.StatusDone {
			n++
		}
	}
	return n
}

// UpcomingEvents counts events dated today or later.
func UpcomingEvents(events []model.Event, today model.Date) int {
	n := 0
	for _, e := range events {
		if !e.Date.Before(today) {
			n++
		}
	}
	return n
}

// Picks returns user-picked events in insertion order, capped at max.
func Picks(events []model.Event, max int) []model.Event {
	var picks []model.Event
	for _, e := range events {
		if e.UserPick {
			picks = append(picks, e)
			if len(picks) == max {
				break
			}
		}
	}
	return picks
}

// EventsByDate returns a copy of events sorted ascending by date.
// Same-day events keep their insertion order.
func EventsByDate(events []model.Event) []model.Event {
	sorted := make([]model.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// DayGroup is one weekday's timetable entries, sorted by time.
type DayGroup struct {
	Day     model.Weekday
	Entries []model.TimetableEntry
}

// GroupTimetable partitions entries into Monday-Saturday buckets,
// sorting each bucket ascending by time of day. Days with no entries
// are omitted from the result.
func GroupTimetable(entries []model.TimetableEntry) []DayGroup {
	byDay := make(map[model.Weekday][]model.TimetableEntry)
	for _, e := range entries {
		byDay[e.Day] = append(byDay[e.Day], e)
	}

	var groups []DayGroup
	for _, day := range model.Weekdays {
		bucket := byDay[day]
		if len(bucket) == 0 {
			continue
		}
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].Time < bucket[j].Time
		})
		groups = append(groups, DayGroup{Day: day, Entries: bucket})
	}
	return groups
}

// FilterAssignments applies two independent predicates combined with
// AND: an exact status match (empty status means no filter) and an
// optional due-within-7-days window. The window is 0..7 days from
// today inclusive, so overdue items never pass it.
func FilterAssignments(as []model.Assignment, status model.Status, dueSoonOnly bool, today model.Date) []model.Assignment {
	var filtered []model.Assignment
	for _, a := range as {
		statusOK := status == "" || a.Status == status
		dateOK := true
		if dueSoonOnly {
			days := a.DueDate.DaysUntil(today)
			dateOK = days >= 0 && days <= 7
		}
		if statusOK && dateOK {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// StreakCount returns the length of the trailing run of consecutive
// logged days, walking backward from the most recent date to the first
// gap. The run is not zeroed when the last logged day is in the past.
func StreakCount(dates []model.Date) int {
	if len(dates) == 0 {
		return 0
	}

	// Dedupe and sort ascending; input order is not guaranteed.
	seen := make(map[string]model.Date, len(dates))
	for _, d := range dates {
		seen[d.String()] = d
	}
	distinct := make([]model.Date, 0, len(seen))
	for _, d := range seen {
		distinct = append(distinct, d)
	}
	sort.Slice(distinct, func(i, j int) bool {
		return distinct[i].Before(distinct[j])
	})

	count := 1
	for i := len(distinct) - 1; i > 0; i-- {
		if distinct[i].DaysUntil(distinct[i-1]) != 1 {
			break
		}
		count++
	}
	return count
}

// Slice is one expense's share of the breakdown chart.
type Slice struct {
	Label  string
	Amount float64
	Color  string
}

// ExpenseSlices maps expenses to breakdown slices one-for-one. Repeated
// labels are kept as separate slices rather than summed; that is the
// established breakdown behavior.
func ExpenseSlices(expenses []model.Expense) []Slice {
	slices := make([]Slice, 0, len(expenses))
	for _, e := range expenses {
		slices = append(slices, Slice{Label: e.Name, Amount: e.Amount, Color: e.Color})
	}
	return slices
}

// TasksOn returns the personal tasks scheduled for the given day, in
// insertion order.
func TasksOn(tasks []model.PersonalTask, day model.Date) []model.PersonalTask {
	var out []model.PersonalTask
	for _, t := range tasks {
		if t.Date.Equal(day) {
			out = append(out, t)
		}
	}
	return out
}
