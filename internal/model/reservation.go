package model

import "time"

// Reservation records a party's booking for a future date and time.
// The date and time are kept as the strings the dining room works
// with ("YYYY-MM-DD" and 24-hour "HH:MM"); combining and comparing
// them against the clock is validation's job, not the model's.
//
// Fields:
//  ID              – primary key identifier, immutable once assigned.
//  FirstName       – guest first name.
//  LastName        – guest last name.
//  MobileNumber    – free-form contact number; search strips formatting.
//  ReservationDate – calendar date in YYYY-MM-DD form.
//  ReservationTime – 24-hour wall time in HH:MM form.
//  People          – party size, always >= 1.
//  Status          – lifecycle stage (booked, seated, finished, cancelled).
//  CreatedAt       – creation timestamp.
//  UpdatedAt       – last update timestamp.
type Reservation struct {
	ID              uint64    `json:"reservation_id"`   // reservations.reservation_id
	FirstName       string    `json:"first_name"`       // reservations.first_name
	LastName        string    `json:"last_name"`        // reservations.last_name
	MobileNumber    string    `json:"mobile_number"`    // reservations.mobile_number
	ReservationDate string    `json:"reservation_date"` // reservations.reservation_date
	ReservationTime string    `json:"reservation_time"` // reservations.reservation_time
	People          int       `json:"people"`           // reservations.people
	Status          Status    `json:"status"`           // reservations.status
	CreatedAt       time.Time `json:"created_at"`       // reservations.created_at
	UpdatedAt       time.Time `json:"updated_at"`       // reservations.updated_at
}
