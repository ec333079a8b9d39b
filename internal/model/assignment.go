package model

// Status is an assignment's progress state, chosen once at creation.
type Status string

const (
	StatusNotStarted Status = "Not Started"
	StatusInProgress Status = "In Progress"
	StatusDone       Status = "Done"
)

// Statuses lists the valid statuses in form order.
var Statuses = []Status{StatusNotStarted, StatusInProgress, StatusDone}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	for _, st := range Statuses {
		if s == st {
			return true
		}
	}
	return false
}

// Assignment is a piece of coursework tied to a course name.
type Assignment struct {
	ID      string `json:"id"`
	Course  string `json:"course"`
	Title   string `json:"title"`
	Status  Status `json:"status"`
	DueDate Date   `json:"due_date"`
	Notes   string `json:"notes"`
}

// Overdue reports whether the assignment's due date has passed and it
// is not in the terminal Done state.
func (a Assignment) Overdue(today Date) bool {
	return a.DueDate.Before(today) && a.Status != StatusDone
}
