// Package repository implements MySQL persistence for reservations,
// tables and staff accounts.  Sentinel errors defined here let higher
// layers distinguish failure scenarios with errors.Is instead of
// inspecting driver errors.
package repository

import "errors"

// ErrReservationNotFound is returned when a reservation id does not
// exist.  Handlers translate this into an HTTP 404 response.
var ErrReservationNotFound = errors.New("reservation not found")

// ErrTableNotFound is returned when a table id does not exist.
// Handlers translate this into an HTTP 404 response.
var ErrTableNotFound = errors.New("table not found")
