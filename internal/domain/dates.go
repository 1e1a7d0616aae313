package domain

import "time"

// DateLayout is the calendar-day format used everywhere: ISO 8601, no time
// component.
const DateLayout = "2006-01-02"

// Today returns the server's current calendar day.
func Today() string {
	return time.Now().Format(DateLayout)
}
