package model

// PersonalTask is a personal schedule item keyed by username. These
// live only in session state and are never written to the store.
type PersonalTask struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        Date      `json:"date"`
	Time        ClockTime `json:"time"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
}
