// Package planner holds the planner's working data set and the pure
// derived views computed from it.
package planner

import (
	"github.com/google/uuid"

	"github.com/the-realgabriel/campus-companion-2/internal/model"
	"github.com/the-realgabriel/campus-companion-2/internal/store"
)

// Outcome reports what a form submission did. Invalid input is not an
// error: the submission is skipped and no record is created.
type Outcome int

const (
	Created Outcome = iota
	Skipped
)

// Workspace is the process-local mutable data set: every collection
// loaded up front, mutated in place, and persisted whole after each
// action. Single-writer by design; there is no locking.
type Workspace struct {
	Events      []model.Event
	Timetable   []model.TimetableEntry
	Assignments []model.Assignment
	Streaks     []model.Date
	Ledger      model.Ledger

	// Personal schedules are session-only state keyed by username.
	// They are deliberately never written to the store.
	Personal map[string][]model.PersonalTask

	st *store.Store
}

// Open loads every collection from the store into a fresh workspace.
// Load failures fall back to empty collections.
func Open(st *store.Store) *Workspace {
	w := &Workspace{
		Personal: make(map[string][]model.PersonalTask),
		st:       st,
	}
	st.Load(store.KeyEvents, &w.Events)
	st.Load(store.KeyTimetable, &w.Timetable)
	st.Load(store.KeyAssignments, &w.Assignments)
	st.Load(store.KeyStreaks, &w.Streaks)
	st.Load(store.KeyBudget, &w.Ledger)
	return w
}

// SaveAll persists every collection, mutated or not. Each interaction
// cycle ends with this call so durability never depends on individual
// append paths having saved.
func (w *Workspace) SaveAll() error {
	if err := w.st.Save(store.KeyEvents, w.Events); err != nil {
		return err
	}
	if err := w.st.Save(store.KeyTimetable, w.Timetable); err != nil {
		return err
	}
	if err := w.st.Save(store.KeyAssignments, w.Assignments); err != nil {
		return err
	}
	if err := w.st.Save(store.KeyStreaks, w.Streaks); err != nil {
		return err
	}
	return w.st.Save(store.KeyBudget, w.Ledger)
}

func newID() string {
	return uuid.NewString()
}

// AddEvent validates and appends a campus event. A missing title skips
// the submission. Type falls back to Other and the description gets the
// form's placeholder when left blank.
func (w *Workspace) AddEvent(e model.Event) (Outcome, error) {
	if e.Title == "" {
		return Skipped, nil
	}
	if !e.Type.Valid() {
		e.Type = model.EventOther
	}
	if e.Description == "" {
		e.Description = "No description"
	}
	if e.ID == "" {
		e.ID = newID()
	}
	w.Events = append(w.Events, e)
	return Created, w.st.Save(store.KeyEvents, w.Events)
}

// AddClass validates and appends a timetable entry. A missing course
// name or an unknown day skips the submission.
func (w *Workspace) AddClass(e model.TimetableEntry) (Outcome, error) {
	if e.Course == "" || !e.Day.Valid() {
		return Skipped, nil
	}
	if e.ID == "" {
		e.ID = newID()
	}
	w.Timetable = append(w.Timetable, e)
	return Created, w.st.Save(store.KeyTimetable, w.Timetable)
}

// AddAssignment validates and appends an assignment. A missing title
// skips the submission; course defaults to "General" and status to
// Not Started.
func (w *Workspace) AddAssignment(a model.Assignment) (Outcome, error) {
	if a.Title == "" {
		return Skipped, nil
	}
	if a.Course == "" {
		a.Course = "General"
	}
	if !a.Status.Valid() {
		a.Status = model.StatusNotStarted
	}
	if a.ID == "" {
		a.ID = newID()
	}
	w.Assignments = append(w.Assignments, a)
	return Created, w.st.Save(store.KeyAssignments, w.Assignments)
}

// AddIncome appends an income record. Skipped when the source is blank
// or the amount is not positive.
func (w *Workspace) AddIncome(source string, amount float64) (Outcome, error) {
	if source == "" || amount <= 0 {
		return Skipped, nil
	}
	w.Ledger.Incomes = append(w.Ledger.Incomes, model.Income{
		ID:     newID(),
		Source: source,
		Amount: amount,
	})
	return Created, w.st.Save(store.KeyBudget, w.Ledger)
}

// AddBudgetCategory appends a planned allocation. Skipped when the
// category is blank or the amount is not positive.
func (w *Workspace) AddBudgetCategory(category string, amount float64, color string) (Outcome, error) {
	if category == "" || amount <= 0 {
		return Skipped, nil
	}
	w.Ledger.Budgets = append(w.Ledger.Budgets, model.BudgetCategory{
		ID:       newID(),
		Category: category,
		Amount:   amount,
		Color:    color,
	})
	return Created, w.st.Save(store.KeyBudget, w.Ledger)
}

// AddExpense appends an expense dated at the given day. Skipped when
// the name is blank or the amount is not positive.
func (w *Workspace) AddExpense(name string, amount float64, color string, date model.Date) (Outcome, error) {
	if name == "" || amount <= 0 {
		return Skipped, nil
	}
	w.Ledger.Expenses = append(w.Ledger.Expenses, model.Expense{
		ID:     newID(),
		Name:   name,
		Amount: amount,
		Color:  color,
		Date:   date,
	})
	return Created, w.st.Save(store.KeyBudget, w.Ledger)
}

// LogStreak records the given day in the streak log, once. Returns
// true when the day was newly added, false when it was already logged.
func (w *Workspace) LogStreak(day model.Date) (bool, error) {
	for _, d := range w.Streaks {
		if d.Equal(day) {
			return false, nil
		}
	}
	w.Streaks = append(w.Streaks, day)
	return true, w.st.Save(store.KeyStreaks, w.Streaks)
}

// AddPersonalTask appends a personal schedule item for the given user.
// Personal schedules are session state only, so nothing is saved.
func (w *Workspace) AddPersonalTask(username string, t model.PersonalTask) Outcome {
	if username == "" || t.Title == "" {
		return Skipped
	}
	if t.ID == "" {
		t.ID = newID()
	}
	w.Personal[username] = append(w.Personal[username], t)
	return Created
}

// CourseChoices returns the timetable's course names for the assignment
// form, or the "General" fallback when no classes exist yet.
func (w *Workspace) CourseChoices() []string {
	if len(w.Timetable) == 0 {
		return []string{"General"}
	}
	choices := make([]string, 0, len(w.Timetable))
	for _, e := range w.Timetable {
		choices = append(choices, e.Course)
	}
	return choices
}
