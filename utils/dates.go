// utils/dates.go
package utils

import "time"

// BookingDateLayout is the format booking dates are stored in.
const BookingDateLayout = "2006-01-02"

// ParseBookingDate parses a booking's date field. Only the calendar date
// matters; the time-of-day field on a booking is free text and never
// parsed.
func ParseBookingDate(date string) (time.Time, error) {
	return time.Parse(BookingDateLayout, date)
}

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
