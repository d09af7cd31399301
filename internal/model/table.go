package model

import "time"

// Table describes a seating resource in the dining room.  A table is
// either free (ReservationID nil) or occupied by exactly one seated
// reservation.  The occupancy field is only ever changed by the
// seat/unseat operations, never written directly.
//
// Fields:
//  ID            – primary key identifier, immutable.
//  TableName     – display name, at least two characters.
//  Capacity      – maximum party size, always >= 1.
//  ReservationID – id of the seated reservation, nil when free.
//  CreatedAt     – creation timestamp.
//  UpdatedAt     – last update timestamp.
type Table struct {
	ID            uint64    `json:"table_id"`       // tables.table_id
	TableName     string    `json:"table_name"`     // tables.table_name
	Capacity      int       `json:"capacity"`       // tables.capacity
	ReservationID *uint64   `json:"reservation_id"` // tables.reservation_id (nullable)
	CreatedAt     time.Time `json:"created_at"`     // tables.created_at
	UpdatedAt     time.Time `json:"updated_at"`     // tables.updated_at
}

// Occupied reports whether a reservation is currently seated here.
func (t *Table) Occupied() bool { return t.ReservationID != nil }
