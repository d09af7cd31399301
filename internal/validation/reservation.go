package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/iliyamo/restaurant-reservation/internal/model"
)

// Operating rules for the dining room.  Opening and closing minutes are
// inclusive bounds: a reservation at exactly 10:30 or exactly 21:30 is
// accepted.
const (
	openingMinute = 10*60 + 30 // 10:30
	closingMinute = 21*60 + 30 // 21:30
)

// closedWeekday is the day the restaurant does not open at all.
const closedWeekday = time.Tuesday

var (
	dateRe = regexp.MustCompile(`^[0-9]{4}-(0[1-9]|1[0-2])-(0[1-9]|[1-2][0-9]|3[0-1])$`)
	timeRe = regexp.MustCompile(`^(2[0-3]|[01][0-9]):[0-5][0-9]$`)
)

// ReservationInput carries the candidate field values for creating or
// editing a reservation, exactly as received from the client.
type ReservationInput struct {
	FirstName       string
	LastName        string
	MobileNumber    string
	ReservationDate string
	ReservationTime string
	People          int
	Status          string
}

// Reservation validates a candidate reservation against the full rule
// set, in order: required fields, date format, time format, party size,
// future date/time, closed weekday, operating hours, and (when supplied)
// a creation status of "booked".  now is the moment to measure "in the
// past" against, in the timezone the dining room operates in.
func Reservation(in ReservationInput, now time.Time) error {
	required := []struct {
		field string
		empty bool
	}{
		{"first_name", strings.TrimSpace(in.FirstName) == ""},
		{"last_name", strings.TrimSpace(in.LastName) == ""},
		{"mobile_number", strings.TrimSpace(in.MobileNumber) == ""},
		{"reservation_date", strings.TrimSpace(in.ReservationDate) == ""},
		{"reservation_time", strings.TrimSpace(in.ReservationTime) == ""},
		{"people", in.People == 0},
	}
	for _, r := range required {
		if r.empty {
			return failf(r.field, fmt.Sprintf("A '%s' property is required", r.field))
		}
	}

	if !dateRe.MatchString(in.ReservationDate) {
		return failf("reservation_date",
			fmt.Sprintf("'%s' is an invalid 'reservation_date' format. Use YYYY-MM-DD", in.ReservationDate))
	}
	if !timeRe.MatchString(in.ReservationTime) {
		return failf("reservation_time",
			fmt.Sprintf("'%s' is an invalid 'reservation_time' format. Use HH:MM", in.ReservationTime))
	}
	if in.People < 1 {
		return failf("people", "people must be at least 1")
	}

	when, err := time.ParseInLocation("2006-01-02 15:04",
		in.ReservationDate+" "+in.ReservationTime, now.Location())
	if err != nil {
		// Regex-valid but not a real calendar moment, e.g. 2025-02-31.
		return failf("reservation_date",
			fmt.Sprintf("'%s %s' is not a valid date and time", in.ReservationDate, in.ReservationTime))
	}
	if !when.After(now) {
		return failf("reservation_date", "Reservation must be for a future date or time")
	}
	if when.Weekday() == closedWeekday {
		return failf("reservation_date", "The restaurant is closed on Tuesdays")
	}
	if m := minuteOfDay(in.ReservationTime); m < openingMinute {
		return failf("reservation_time", "Reservations open at 10:30 AM")
	} else if m > closingMinute {
		return failf("reservation_time", "Last reservation is at 9:30 PM")
	}

	if in.Status != "" && in.Status != string(model.StatusBooked) {
		return failf("status",
			fmt.Sprintf("status '%s' is not allowed when creating a reservation", in.Status))
	}
	return nil
}

// minuteOfDay converts a regex-validated HH:MM string into minutes
// since midnight for a single numeric comparison against the operating
// window.
func minuteOfDay(hhmm string) int {
	hh, _ := strconv.Atoi(hhmm[:2])
	mm, _ := strconv.Atoi(hhmm[3:])
	return hh*60 + mm
}
