// Package model defines the planner's entity types. All records are
// immutable once created and identified by a generated unique ID.
package model

// EventType classifies a campus event.
type EventType string

const (
	EventSocial   EventType = "Social"
	EventAcademic EventType = "Academic"
	EventClub     EventType = "Club"
	EventOther    EventType = "Other"
)

// EventTypes lists the valid event types in display order.
var EventTypes = []EventType{EventSocial, EventAcademic, EventClub, EventOther}

// Valid reports whether t is one of the known event types.
func (t EventType) Valid() bool {
	for _, et := range EventTypes {
		if t == et {
			return true
		}
	}
	return false
}

// Event is a campus event created via the Activities form.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        Date      `json:"date"`
	Time        ClockTime `json:"time"`
	Location    string    `json:"location"`
	Type        EventType `json:"type"`
	Color       string    `json:"color"`
	UserPick    bool      `json:"user_pick"`
	Description string    `json:"description"`
}
