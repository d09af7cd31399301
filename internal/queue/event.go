// Package queue defines the seating events exchanged over the message
// broker and the background consumer that records them.
package queue

// SeatingEvent is published whenever a table's occupancy changes: once
// when a reservation is seated and once when the table is cleared and
// the reservation finishes.  It carries enough context for downstream
// consumers to log or notify without querying the primary database.
type SeatingEvent struct {
	Action        string `json:"action"` // "seated" or "finished"
	TableID       uint64 `json:"table_id"`
	TableName     string `json:"table_name"`
	ReservationID uint64 `json:"reservation_id"`
	GuestName     string `json:"guest_name"`
	PartySize     int    `json:"party_size"`
	OccurredAt    string `json:"occurred_at"`
}
