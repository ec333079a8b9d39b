package model

// Weekday is a timetable day. The planner week runs Monday through
// Saturday; Sunday is not a class day.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
)

// Weekdays lists the class days in week order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// Valid reports whether d is one of the six class days.
func (d Weekday) Valid() bool {
	for _, wd := range Weekdays {
		if d == wd {
			return true
		}
	}
	return false
}

// TimetableEntry is one class slot in the weekly timetable.
// The reminder flag is recorded but nothing schedules a delivery.
type TimetableEntry struct {
	ID       string    `json:"id"`
	Day      Weekday   `json:"day"`
	Time     ClockTime `json:"time"`
	Course   string    `json:"course"`
	Lecturer string    `json:"lecturer"`
	Notes    string    `json:"notes"`
	Color    string    `json:"color"`
	Reminder bool      `json:"reminder"`
}
