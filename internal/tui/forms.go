package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/the-realgabriel/campus-companion-2/internal/model"
	"github.com/the-realgabriel/campus-companion-2/internal/planner"
)

type formKind int

const (
	formEvent formKind = iota
	formClass
	formAssignment
	formIncome
	formCategory
	formExpense
	formTask
)

// formValues holds the raw field bindings for whichever form is open.
// Everything is a string at this layer; parsing happens on submit, and
// bad input skips the record rather than erroring.
type formValues struct {
	title    string
	date     string
	clock    string
	location string
	kind     string
	color    string
	desc     string
	pick     bool

	day      string
	course   string
	lecturer string
	notes    string
	reminder bool

	status string
	due    string

	source string
	amount string
	name   string
}

func (a App) openForm(kind formKind) (tea.Model, tea.Cmd) {
	a.formKind = kind
	a.vals = &formValues{
		date:   a.today.String(),
		due:    a.today.String(),
		clock:  "12:00",
		status: string(model.StatusNotStarted),
	}
	a.flash = ""

	v := a.vals
	var form *huh.Form

	switch kind {
	case formEvent:
		v.color = "#cfe9ff"
		form = huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Title").Value(&v.title),
			huh.NewInput().Title("Date (YYYY-MM-DD)").Value(&v.date),
			huh.NewInput().Title("Time (HH:MM)").Value(&v.clock),
			huh.NewInput().Title("Location").Value(&v.location),
			huh.NewSelect[string]().Title("Type").
				Options(huh.NewOptions(eventTypeNames()...)...).
				Value(&v.kind),
			huh.NewConfirm().Title("Add to picks?").Value(&v.pick),
			huh.NewInput().Title("Description").Value(&v.desc),
		))

	case formClass:
		v.color = "#b3e5fc"
		form = huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Course").Value(&v.course),
			huh.NewSelect[string]().Title("Day").
				Options(huh.NewOptions(weekdayNames()...)...).
				Value(&v.day),
			huh.NewInput().Title("Time (HH:MM)").Value(&v.clock),
			huh.NewInput().Title("Lecturer").Value(&v.lecturer),
			huh.NewInput().Title("Notes").Value(&v.notes),
			huh.NewInput().Title("Color").Value(&v.color),
			huh.NewConfirm().Title("Reminder?").Value(&v.reminder),
		))

	case formAssignment:
		form = huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().Title("Course").
				Options(huh.NewOptions(a.w.CourseChoices()...)...).
				Value(&v.course),
			huh.NewInput().Title("Title").Value(&v.title),
			huh.NewSelect[string]().Title("Status").
				Options(huh.NewOptions(statusNames()...)...).
				Value(&v.status),
			huh.NewInput().Title("Due (YYYY-MM-DD)").Value(&v.due),
			huh.NewInput().Title("Notes").Value(&v.notes),
		))

	case formIncome:
		form = huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Source").Value(&v.source),
			huh.NewInput().Title("Amount").Value(&v.amount),
		))

	case formCategory:
		v.color = "#b3e5fc"
		form = huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Category").Value(&v.name),
			huh.NewInput().Title("Amount").Value(&v.amount),
			huh.NewInput().Title("Color").Value(&v.color),
		))

	case formExpense:
		v.color = "#ffccbc"
		form = huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Expense").Value(&v.name),
			huh.NewInput().Title("Amount").Value(&v.amount),
			huh.NewInput().Title("Color").Value(&v.color),
		))

	case formTask:
		v.color = "#e3f2fd"
		form = huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Task").Value(&v.title),
			huh.NewInput().Title("Date (YYYY-MM-DD)").Value(&v.date),
			huh.NewInput().Title("Time (HH:MM)").Value(&v.clock),
			huh.NewInput().Title("Details").Value(&v.desc),
		))
	}

	a.form = form.WithShowHelp(true)
	if a.width > 0 {
		a.form = a.form.WithWidth(a.contentWidth())
	}
	return a, a.form.Init()
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		a.submitForm()
		a.form = nil
		a.vals = nil
		return a, nil
	}

	if a.form.State == huh.StateAborted {
		a.form = nil
		a.vals = nil
		a.flash = ""
		return a, nil
	}

	return a, cmd
}

// submitForm turns the raw form values into a record and appends it.
// Every submission ends with a full save cycle, created or skipped.
func (a *App) submitForm() {
	v := a.vals
	var (
		out planner.Outcome
		err error
	)

	switch a.formKind {
	case formEvent:
		date, _ := model.ParseDate(v.date)
		if date.IsZero() {
			date = a.today
		}
		clock, cerr := model.ParseClock(v.clock)
		if cerr != nil {
			clock = model.NewClock(12, 0)
		}
		out, err = a.w.AddEvent(model.Event{
			Title:       strings.TrimSpace(v.title),
			Date:        date,
			Time:        clock,
			Location:    v.location,
			Type:        model.EventType(v.kind),
			Color:       v.color,
			UserPick:    v.pick,
			Description: v.desc,
		})

	case formClass:
		clock, cerr := model.ParseClock(v.clock)
		if cerr != nil {
			clock = model.NewClock(9, 0)
		}
		out, err = a.w.AddClass(model.TimetableEntry{
			Day:      model.Weekday(v.day),
			Time:     clock,
			Course:   strings.TrimSpace(v.course),
			Lecturer: v.lecturer,
			Notes:    v.notes,
			Color:    v.color,
			Reminder: v.reminder,
		})

	case formAssignment:
		due, _ := model.ParseDate(v.due)
		if due.IsZero() {
			due = a.today
		}
		out, err = a.w.AddAssignment(model.Assignment{
			Course:  v.course,
			Title:   strings.TrimSpace(v.title),
			Status:  model.Status(v.status),
			DueDate: due,
			Notes:   v.notes,
		})

	case formIncome:
		out, err = a.w.AddIncome(strings.TrimSpace(v.source), parseAmount(v.amount))

	case formCategory:
		out, err = a.w.AddBudgetCategory(strings.TrimSpace(v.name), parseAmount(v.amount), v.color)

	case formExpense:
		out, err = a.w.AddExpense(strings.TrimSpace(v.name), parseAmount(v.amount), v.color, a.today)

	case formTask:
		date, _ := model.ParseDate(v.date)
		if date.IsZero() {
			date = a.today
		}
		clock, cerr := model.ParseClock(v.clock)
		if cerr != nil {
			clock = model.NewClock(12, 0)
		}
		out = a.w.AddPersonalTask(a.cfg.General.DisplayName, model.PersonalTask{
			Title:       strings.TrimSpace(v.title),
			Date:        date,
			Time:        clock,
			Description: v.desc,
			Color:       v.color,
		})
	}

	if err != nil {
		a.saveErr = err
		a.flash = "Save failed"
		return
	}

	a.saveErr = a.w.SaveAll()
	if out == planner.Created {
		a.flash = "Added."
	} else {
		a.flash = "Skipped: check the required fields."
	}
}

func parseAmount(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

func eventTypeNames() []string {
	names := make([]string, 0, len(model.EventTypes))
	for _, t := range model.EventTypes {
		names = append(names, string(t))
	}
	return names
}

func weekdayNames() []string {
	names := make([]string, 0, len(model.Weekdays))
	for _, d := range model.Weekdays {
		names = append(names, string(d))
	}
	return names
}

func statusNames() []string {
	names := make([]string, 0, len(model.Statuses))
	for _, s := range model.Statuses {
		names = append(names, string(s))
	}
	return names
}
