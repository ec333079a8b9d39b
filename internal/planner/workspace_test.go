package planner

import (
	"path/filepath"
	"testing"

	"github.com/the-realgabriel/campus-companion-2/internal/model"
	"github.com/the-realgabriel/campus-companion-2/internal/store"
)

func testWorkspace(t *testing.T) (*Workspace, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "planner.db")
	st, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return Open(st), dbPath
}

func reopen(t *testing.T, dbPath string) *Workspace {
	t.Helper()
	st, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("store.Open (reopen): %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return Open(st)
}

func TestAddEvent_AssignsIDAndDefaults(t *testing.T) {
	w, _ := testWorkspace(t)

	out, err := w.AddEvent(model.Event{
		Title: "Hackathon",
		Date:  model.Today(),
		Type:  "Bogus",
	})
	if err != nil {
		t.Fatalf("AddEvent: %v", err)
	}
	if out != Created {
		t.Fatalf("outcome = %v, want Created", out)
	}
	if len(w.Events) != 1 {
		t.Fatalf("events = %d, want 1", len(w.Events))
	}

	e := w.Events[0]
	if e.ID == "" {
		t.Fatal("event ID not assigned")
	}
	if e.Type != model.EventOther {
		t.Fatalf("invalid type = %q, want fallback to %q", e.Type, model.EventOther)
	}
	if e.Description != "No description" {
		t.Fatalf("blank description = %q, want placeholder", e.Description)
	}
}

func TestAddEvent_SkipsBlankTitle(t *testing.T) {
	w, _ := testWorkspace(t)

	out, err := w.AddEvent(model.Event{Date: model.Today()})
	if err != nil {
		t.Fatalf("AddEvent: %v", err)
	}
	if out != Skipped {
		t.Fatalf("outcome = %v, want Skipped", out)
	}
	if len(w.Events) != 0 {
		t.Fatal("blank title should not create a record")
	}
}

func TestAddClass_Validation(t *testing.T) {
	w, _ := testWorkspace(t)

	if out, _ := w.AddClass(model.TimetableEntry{Day: model.Monday}); out != Skipped {
		t.Fatal("blank course should skip")
	}
	if out, _ := w.AddClass(model.TimetableEntry{Course: "Calculus", Day: "Funday"}); out != Skipped {
		t.Fatal("invalid day should skip")
	}
	if out, _ := w.AddClass(model.TimetableEntry{Course: "Calculus", Day: model.Monday}); out != Created {
		t.Fatal("valid class should be created")
	}
}

func TestAddAssignment_Defaults(t *testing.T) {
	w, _ := testWorkspace(t)

	out, err := w.AddAssignment(model.Assignment{Title: "Essay", DueDate: model.Today()})
	if err != nil {
		t.Fatalf("AddAssignment: %v", err)
	}
	if out != Created {
		t.Fatalf("outcome = %v, want Created", out)
	}

	a := w.Assignments[0]
	if a.Course != "General" {
		t.Fatalf("blank course = %q, want General", a.Course)
	}
	if a.Status != model.StatusNotStarted {
		t.Fatalf("blank status = %q, want %q", a.Status, model.StatusNotStarted)
	}
}

func TestBudgetEntries_SilentSkip(t *testing.T) {
	w, _ := testWorkspace(t)

	cases := []struct {
		name string
		run  func() (Outcome, error)
		want Outcome
	}{
		{"income ok", func() (Outcome, error) { return w.AddIncome("Allowance", 100) }, Created},
		{"income blank source", func() (Outcome, error) { return w.AddIncome("", 100) }, Skipped},
		{"income zero amount", func() (Outcome, error) { return w.AddIncome("Tips", 0) }, Skipped},
		{"category ok", func() (Outcome, error) { return w.AddBudgetCategory("Food", 50, "#b3e5fc") }, Created},
		{"category negative", func() (Outcome, error) { return w.AddBudgetCategory("Food", -5, "#b3e5fc") }, Skipped},
		{"expense ok", func() (Outcome, error) { return w.AddExpense("Lunch", 20, "#ffccbc", model.Today()) }, Created},
		{"expense blank name", func() (Outcome, error) { return w.AddExpense("", 20, "#ffccbc", model.Today()) }, Skipped},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := tc.run()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out != tc.want {
				t.Fatalf("outcome = %v, want %v", out, tc.want)
			}
		})
	}

	if len(w.Ledger.Incomes) != 1 || len(w.Ledger.Budgets) != 1 || len(w.Ledger.Expenses) != 1 {
		t.Fatalf("ledger = %d/%d/%d records, want 1/1/1",
			len(w.Ledger.Incomes), len(w.Ledger.Budgets), len(w.Ledger.Expenses))
	}
}

func TestLogStreak_Dedupes(t *testing.T) {
	w, _ := testWorkspace(t)
	today := model.Today()

	added, err := w.LogStreak(today)
	if err != nil {
		t.Fatalf("LogStreak: %v", err)
	}
	if !added {
		t.Fatal("first log of today should add")
	}

	added, err = w.LogStreak(today)
	if err != nil {
		t.Fatalf("LogStreak (repeat): %v", err)
	}
	if added {
		t.Fatal("second log of the same day should be a no-op")
	}
	if len(w.Streaks) != 1 {
		t.Fatalf("streaks = %d entries, want 1", len(w.Streaks))
	}
}

func TestSaveAll_RoundTrip(t *testing.T) {
	w, dbPath := testWorkspace(t)
	today := model.Today()

	if _, err := w.AddEvent(model.Event{Title: "Career fair", Date: today.AddDays(2), Time: model.NewClock(14, 30)}); err != nil {
		t.Fatalf("AddEvent: %v", err)
	}
	if _, err := w.AddClass(model.TimetableEntry{Course: "Physics", Day: model.Tuesday, Time: model.NewClock(8, 0)}); err != nil {
		t.Fatalf("AddClass: %v", err)
	}
	if _, err := w.AddAssignment(model.Assignment{Title: "Problem set", Course: "Physics", DueDate: today.AddDays(3)}); err != nil {
		t.Fatalf("AddAssignment: %v", err)
	}
	if _, err := w.LogStreak(today); err != nil {
		t.Fatalf("LogStreak: %v", err)
	}
	if _, err := w.AddIncome("Allowance", 300); err != nil {
		t.Fatalf("AddIncome: %v", err)
	}
	if err := w.SaveAll(); err != nil {
		t.Fatalf("SaveAll: %v", err)
	}

	w2 := reopen(t, dbPath)

	if len(w2.Events) != 1 || w2.Events[0].Title != "Career fair" {
		t.Fatalf("events after reload = %v, want the career fair", w2.Events)
	}
	if w2.Events[0].Time != model.NewClock(14, 30) {
		t.Fatalf("event time after reload = %v, want 14:30", w2.Events[0].Time)
	}
	if len(w2.Timetable) != 1 || w2.Timetable[0].Day != model.Tuesday {
		t.Fatalf("timetable after reload = %v", w2.Timetable)
	}
	if len(w2.Assignments) != 1 || !w2.Assignments[0].DueDate.Equal(today.AddDays(3)) {
		t.Fatalf("assignments after reload = %v", w2.Assignments)
	}
	if len(w2.Streaks) != 1 || !w2.Streaks[0].Equal(today) {
		t.Fatalf("streaks after reload = %v", w2.Streaks)
	}
	if len(w2.Ledger.Incomes) != 1 || w2.Ledger.Incomes[0].Amount != 300 {
		t.Fatalf("ledger after reload = %v", w2.Ledger)
	}
}

func TestPersonalTasks_NeverPersisted(t *testing.T) {
	w, dbPath := testWorkspace(t)

	out := w.AddPersonalTask("Daniella", model.PersonalTask{
		Title: "Gym",
		Date:  model.Today(),
		Time:  model.NewClock(17, 0),
	})
	if out != Created {
		t.Fatalf("outcome = %v, want Created", out)
	}
	if len(w.Personal["Daniella"]) != 1 {
		t.Fatal("personal task not held in session state")
	}

	if err := w.SaveAll(); err != nil {
		t.Fatalf("SaveAll: %v", err)
	}

	w2 := reopen(t, dbPath)
	if len(w2.Personal) != 0 {
		t.Fatal("personal tasks leaked into the store")
	}
}

func TestCourseChoices(t *testing.T) {
	w, _ := testWorkspace(t)

	if got := w.CourseChoices(); len(got) != 1 || got[0] != "General" {
		t.Fatalf("empty timetable choices = %v, want [General]", got)
	}

	if _, err := w.AddClass(model.TimetableEntry{Course: "Calculus", Day: model.Monday}); err != nil {
		t.Fatalf("AddClass: %v", err)
	}
	if _, err := w.AddClass(model.TimetableEntry{Course: "Physics", Day: model.Tuesday}); err != nil {
		t.Fatalf("AddClass: %v", err)
	}

	got := w.CourseChoices()
	if len(got) != 2 || got[0] != "Calculus" || got[1] != "Physics" {
		t.Fatalf("choices = %v, want [Calculus Physics]", got)
	}
}
