package planner

import (
	"testing"

	"github.com/the-realgabriel/campus-companion-2/internal/model"
)

func mustDate(t *testing.T, s string) model.Date {
	t.Helper()
	d, err := model.ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestBalance(t *testing.T) {
	l := model.Ledger{
		Incomes: []model.Income{
			{ID: "i1", Source: "Allowance", Amount: 500},
			{ID: "i2", Source: "Tutoring", Amount: 250},
		},
		Budgets: []model.BudgetCategory{
			{ID: "b1", Category: "Food", Amount: 9999}, // allocations never affect balance
		},
		Expenses: []model.Expense{
			{ID: "e1", Name: "Lunch", Amount: 120},
			{ID: "e2", Name: "Data", Amount: 80},
		},
	}

	if got := TotalIncome(l); got != 750 {
		t.Fatalf("TotalIncome = %v, want 750", got)
	}
	if got := TotalExpenses(l); got != 200 {
		t.Fatalf("TotalExpenses = %v, want 200", got)
	}
	if got := TotalBudgeted(l); got != 9999 {
		t.Fatalf("TotalBudgeted = %v, want 9999", got)
	}
	if got := Balance(l); got != 550 {
		t.Fatalf("Balance = %v, want 550", got)
	}
}

func TestStreakCount(t *testing.T) {
	d := mustDate(t, "2026-03-10")

	tests := []struct {
		name  string
		dates []model.Date
		want  int
	}{
		{"empty", nil, 0},
		{"single", []model.Date{d}, 1},
		{"three consecutive", []model.Date{d, d.AddDays(1), d.AddDays(2)}, 3},
		{"gap resets", []model.Date{d, d.AddDays(2)}, 1},
		{"gap before run", []model.Date{d, d.AddDays(3), d.AddDays(4), d.AddDays(5)}, 3},
		{"duplicates collapse", []model.Date{d, d, d.AddDays(1)}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StreakCount(tt.dates); got != tt.want {
				t.Fatalf("StreakCount(%v) = %d, want %d", tt.dates, got, tt.want)
			}
		})
	}
}

func TestStreakCount_OrderIndependent(t *testing.T) {
	d := mustDate(t, "2026-03-10")
	a := []model.Date{d, d.AddDays(1), d.AddDays(2)}
	b := []model.Date{d.AddDays(2), d, d.AddDays(1)}

	if StreakCount(a) != StreakCount(b) {
		t.Fatalf("StreakCount depends on input order: %d vs %d", StreakCount(a), StreakCount(b))
	}
}

func TestFilterAssignments(t *testing.T) {
	today := mustDate(t, "2026-03-10")
	as := []model.Assignment{
		{ID: "a1", Title: "Essay", Status: model.StatusDone, DueDate: today},
		{ID: "a2", Title: "Lab report", Status: model.StatusInProgress, DueDate: today.AddDays(7)},
		{ID: "a3", Title: "Reading", Status: model.StatusInProgress, DueDate: today.AddDays(8)},
		{ID: "a4", Title: "Quiz prep", Status: model.StatusNotStarted, DueDate: today.AddDays(-1)},
	}

	// No filters: everything comes back.
	if got := FilterAssignments(as, "", false, today); len(got) != 4 {
		t.Fatalf("unfiltered = %d assignments, want 4", len(got))
	}

	// Due-soon window is inclusive: 0 and 7 days in, 8 days and overdue out.
	got := FilterAssignments(as, "", true, today)
	if len(got) != 2 {
		t.Fatalf("due-soon = %d assignments, want 2", len(got))
	}
	if got[0].ID != "a1" || got[1].ID != "a2" {
		t.Fatalf("due-soon kept %s and %s, want a1 and a2", got[0].ID, got[1].ID)
	}

	// Done status combined with due-soon still includes today's essay.
	got = FilterAssignments(as, model.StatusDone, true, today)
	if len(got) != 1 || got[0].ID != "a1" {
		t.Fatalf("Done+due-soon = %v, want just a1", got)
	}

	// Status filter alone.
	got = FilterAssignments(as, model.StatusInProgress, false, today)
	if len(got) != 2 {
		t.Fatalf("InProgress = %d assignments, want 2", len(got))
	}
}

func TestAssignmentOverdue(t *testing.T) {
	today := mustDate(t, "2026-03-10")

	tests := []struct {
		name string
		a    model.Assignment
		want bool
	}{
		{"past and in progress", model.Assignment{DueDate: today.AddDays(-1), Status: model.StatusInProgress}, true},
		{"past but done", model.Assignment{DueDate: today.AddDays(-1), Status: model.StatusDone}, false},
		{"due today", model.Assignment{DueDate: today, Status: model.StatusNotStarted}, false},
		{"future", model.Assignment{DueDate: today.AddDays(3), Status: model.StatusNotStarted}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overdue(today); got != tt.want {
				t.Fatalf("Overdue = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGroupTimetable(t *testing.T) {
	entries := []model.TimetableEntry{
		{ID: "c1", Day: model.Wednesday, Time: model.NewClock(10, 0), Course: "Chemistry"},
		{ID: "c2", Day: model.Monday, Time: model.NewClock(9, 0), Course: "Calculus"},
		{ID: "c3", Day: model.Monday, Time: model.NewClock(8, 0), Course: "Physics"},
	}

	groups := GroupTimetable(entries)

	// Tuesday and the rest have no classes, so only two groups, Monday first.
	if len(groups) != 2 {
		t.Fatalf("GroupTimetable produced %d groups, want 2", len(groups))
	}
	if groups[0].Day != model.Monday || groups[1].Day != model.Wednesday {
		t.Fatalf("group order = %s, %s; want Monday, Wednesday", groups[0].Day, groups[1].Day)
	}

	// Within Monday, 08:00 sorts before 09:00.
	mon := groups[0].Entries
	if len(mon) != 2 || mon[0].ID != "c3" || mon[1].ID != "c2" {
		t.Fatalf("Monday entries = %v, want c3 then c2", mon)
	}
}

func TestGroupTimetable_StableForEqualTimes(t *testing.T) {
	entries := []model.TimetableEntry{
		{ID: "c1", Day: model.Friday, Time: model.NewClock(9, 0), Course: "First"},
		{ID: "c2", Day: model.Friday, Time: model.NewClock(9, 0), Course: "Second"},
	}

	groups := GroupTimetable(entries)
	if len(groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(groups))
	}
	if groups[0].Entries[0].ID != "c1" {
		t.Fatal("equal times reordered; insertion order should hold")
	}
}

func TestUpcomingEvents(t *testing.T) {
	today := mustDate(t, "2026-03-10")
	events := []model.Event{
		{ID: "e1", Title: "Gone", Date: today.AddDays(-1)},
		{ID: "e2", Title: "Tonight", Date: today},
		{ID: "e3", Title: "Next week", Date: today.AddDays(7)},
	}

	if got := UpcomingEvents(events, today); got != 2 {
		t.Fatalf("UpcomingEvents = %d, want 2 (today counts, yesterday does not)", got)
	}
}

func TestEventsByDate(t *testing.T) {
	d := mustDate(t, "2026-03-10")
	events := []model.Event{
		{ID: "e1", Date: d.AddDays(5)},
		{ID: "e2", Date: d},
		{ID: "e3", Date: d.AddDays(2)},
	}

	sorted := EventsByDate(events)
	if sorted[0].ID != "e2" || sorted[1].ID != "e3" || sorted[2].ID != "e1" {
		t.Fatalf("EventsByDate order = %s,%s,%s; want e2,e3,e1", sorted[0].ID, sorted[1].ID, sorted[2].ID)
	}
	// Input stays untouched.
	if events[0].ID != "e1" {
		t.Fatal("EventsByDate mutated its input")
	}
}

func TestPicks(t *testing.T) {
	var events []model.Event
	for _, id := range []string{"e1", "e2", "e3", "e4", "e5", "e6"} {
		events = append(events, model.Event{ID: id, UserPick: id != "e2"})
	}

	picks := Picks(events, 4)
	if len(picks) != 4 {
		t.Fatalf("Picks = %d events, want cap of 4", len(picks))
	}
	// Insertion order, skipping the non-pick.
	want := []string{"e1", "e3", "e4", "e5"}
	for i, p := range picks {
		if p.ID != want[i] {
			t.Fatalf("picks[%d] = %s, want %s", i, p.ID, want[i])
		}
	}
}

func TestExpenseSlices_OnePerRecord(t *testing.T) {
	expenses := []model.Expense{
		{ID: "e1", Name: "Lunch", Amount: 100, Color: "#ffccbc"},
		{ID: "e2", Name: "Lunch", Amount: 50, Color: "#ffccbc"},
	}

	slices := ExpenseSlices(expenses)
	if len(slices) != 2 {
		t.Fatalf("ExpenseSlices = %d slices, want 2 (repeated labels stay separate)", len(slices))
	}
	if slices[0].Amount != 100 || slices[1].Amount != 50 {
		t.Fatalf("slice amounts = %v, %v; want 100, 50", slices[0].Amount, slices[1].Amount)
	}
}

func TestPendingAssignments(t *testing.T) {
	as := []model.Assignment{
		{Status: model.StatusDone},
		{Status: model.StatusInProgress},
		{Status: model.StatusNotStarted},
	}
	if got := PendingAssignments(as); got != 2 {
		t.Fatalf("PendingAssignments = %d, want 2", got)
	}
}

func TestTasksOn(t *testing.T) {
	today := mustDate(t, "2026-03-10")
	tasks := []model.PersonalTask{
		{ID: "t1", Title: "Gym", Date: today},
		{ID: "t2", Title: "Call home", Date: today.AddDays(1)},
		{ID: "t3", Title: "Laundry", Date: today},
	}

	got := TasksOn(tasks, today)
	if len(got) != 2 || got[0].ID != "t1" || got[1].ID != "t3" {
		t.Fatalf("TasksOn = %v, want t1 then t3", got)
	}
}
