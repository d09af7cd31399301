package model

// Status is the lifecycle stage of a reservation.
type Status string

const (
	StatusBooked    Status = "booked"
	StatusSeated    Status = "seated"
	StatusFinished  Status = "finished"
	StatusCancelled Status = "cancelled"
)

// transitions lists, per current status, the statuses it may move to.
// Staff may correct any open reservation in either direction, so every
// non-finished status admits every target.  finished is terminal.
var transitions = map[Status]map[Status]bool{
	StatusBooked: {
		StatusBooked: true, StatusSeated: true, StatusFinished: true, StatusCancelled: true,
	},
	StatusSeated: {
		StatusBooked: true, StatusSeated: true, StatusFinished: true, StatusCancelled: true,
	},
	StatusCancelled: {
		StatusBooked: true, StatusSeated: true, StatusFinished: true, StatusCancelled: true,
	},
	StatusFinished: {}, // terminal, frozen
}

// ParseStatus maps a raw string onto a known Status.  The second return
// is false for anything outside the four lifecycle values.
func ParseStatus(raw string) (Status, bool) {
	s := Status(raw)
	switch s {
	case StatusBooked, StatusSeated, StatusFinished, StatusCancelled:
		return s, true
	}
	return "", false
}

// CanTransitionTo reports whether a reservation in status s may move to
// target.
func (s Status) CanTransitionTo(target Status) bool {
	return transitions[s][target]
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool { return s == StatusFinished }

// IsClosed reports whether the reservation no longer needs a table.
// Closed reservations are hidden from the default daily listing.
func (s Status) IsClosed() bool {
	return s == StatusFinished || s == StatusCancelled
}
