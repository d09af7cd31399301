package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testNow is a Monday at noon, so the following Wednesday is a normal
// open day and the following Tuesday is closed.
var testNow = time.Date(2031, time.June, 2, 12, 0, 0, 0, time.UTC)

func baseInput() ReservationInput {
	return ReservationInput{
		FirstName:       "Rick",
		LastName:        "Sanchez",
		MobileNumber:    "202-555-0191",
		ReservationDate: "2031-06-04", // Wednesday
		ReservationTime: "18:00",
		People:          4,
	}
}

func requireField(t *testing.T, err error, field string) {
	t.Helper()
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, field, verr.Field)
}

func TestReservationAcceptsValidInput(t *testing.T) {
	assert.NoError(t, Reservation(baseInput(), testNow))
}

func TestReservationRequiredFields(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*ReservationInput)
	}{
		{"first_name", func(in *ReservationInput) { in.FirstName = "" }},
		{"last_name", func(in *ReservationInput) { in.LastName = "  " }},
		{"mobile_number", func(in *ReservationInput) { in.MobileNumber = "" }},
		{"reservation_date", func(in *ReservationInput) { in.ReservationDate = "" }},
		{"reservation_time", func(in *ReservationInput) { in.ReservationTime = "" }},
		{"people", func(in *ReservationInput) { in.People = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			in := baseInput()
			tc.mutate(&in)
			requireField(t, Reservation(in, testNow), tc.field)
		})
	}
}

func TestReservationDateFormat(t *testing.T) {
	for _, bad := range []string{"06/04/2031", "2031-6-4", "not-a-date", "2031-13-01", "2031-06-32"} {
		in := baseInput()
		in.ReservationDate = bad
		requireField(t, Reservation(in, testNow), "reservation_date")
	}
}

func TestReservationTimeFormat(t *testing.T) {
	for _, bad := range []string{"6pm", "25:00", "18:60", "1800"} {
		in := baseInput()
		in.ReservationTime = bad
		requireField(t, Reservation(in, testNow), "reservation_time")
	}
}

func TestReservationRejectsImpossibleCalendarDate(t *testing.T) {
	// Passes the format regex but names a day that does not exist.
	in := baseInput()
	in.ReservationDate = "2031-02-31"
	requireField(t, Reservation(in, testNow), "reservation_date")
}

func TestReservationPartySize(t *testing.T) {
	in := baseInput()
	in.People = -2
	requireField(t, Reservation(in, testNow), "people")
}

func TestReservationMustBeInFuture(t *testing.T) {
	in := baseInput()
	in.ReservationDate = "2031-06-02"
	in.ReservationTime = "11:00"
	err := Reservation(in, testNow)
	requireField(t, err, "reservation_date")
	assert.Contains(t, err.Error(), "future")

	// Exactly now is still not in the future.
	in.ReservationTime = "12:00"
	requireField(t, Reservation(in, testNow), "reservation_date")

	// Later the same day is fine.
	in.ReservationTime = "19:00"
	assert.NoError(t, Reservation(in, testNow))
}

func TestReservationClosedOnTuesdays(t *testing.T) {
	in := baseInput()
	in.ReservationDate = "2031-06-03" // Tuesday
	err := Reservation(in, testNow)
	requireField(t, err, "reservation_date")
	assert.Contains(t, err.Error(), "Tuesday")
}

func TestReservationOperatingHours(t *testing.T) {
	cases := []struct {
		time string
		ok   bool
	}{
		{"10:29", false},
		{"10:30", true},
		{"15:00", true},
		{"21:30", true},
		{"21:31", false},
		{"23:00", false},
	}
	for _, tc := range cases {
		t.Run(tc.time, func(t *testing.T) {
			in := baseInput()
			in.ReservationTime = tc.time
			err := Reservation(in, testNow)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				requireField(t, err, "reservation_time")
			}
		})
	}
}

func TestReservationStatusOnCreate(t *testing.T) {
	in := baseInput()
	in.Status = "booked"
	assert.NoError(t, Reservation(in, testNow))

	for _, bad := range []string{"seated", "finished", "cancelled"} {
		in.Status = bad
		requireField(t, Reservation(in, testNow), "status")
	}
}
