// Package service owns the reservation lifecycle and table assignment
// rules.  Services hold no state of their own between calls; every
// operation reads and writes through an injected store, so the same
// logic runs against MySQL in production and against in-memory doubles
// in tests.
package service

import (
	"context"
	"errors"

	"github.com/iliyamo/restaurant-reservation/internal/model"
)

// ReservationStore is the persistence surface the reservation lifecycle
// needs.  Implementations return repository.ErrReservationNotFound for
// unknown ids.  Create and Update refresh the provided record from the
// stored row, including generated ids and timestamps.
type ReservationStore interface {
	Create(ctx context.Context, res *model.Reservation) error
	GetByID(ctx context.Context, id uint64) (*model.Reservation, error)
	Update(ctx context.Context, res *model.Reservation) error
	UpdateStatus(ctx context.Context, id uint64, status model.Status) (*model.Reservation, error)
	ListByDate(ctx context.Context, date string, includeClosed bool) ([]model.Reservation, error)
	SearchByPhone(ctx context.Context, digits string) ([]model.Reservation, error)
}

// TableStore is the persistence surface table assignment needs.  Seat
// and Unseat must apply their two-row write atomically: the table's
// occupancy and the reservation's status change together or not at all.
type TableStore interface {
	Create(ctx context.Context, tbl *model.Table) error
	GetByID(ctx context.Context, id uint64) (*model.Table, error)
	List(ctx context.Context) ([]model.Table, error)
	Seat(ctx context.Context, tableID, reservationID uint64) error
	Unseat(ctx context.Context, tableID, reservationID uint64) error
}

// Business-rule violations.  Handlers translate all of these into HTTP
// 400 responses; the message text names the violated rule.
var (
	ErrAlreadySeated        = errors.New("reservation is already seated")
	ErrTableOccupied        = errors.New("table is occupied")
	ErrTableNotOccupied     = errors.New("table is not occupied")
	ErrInsufficientCapacity = errors.New("table does not have sufficient capacity")
	ErrReservationFinished  = errors.New("a finished reservation cannot be updated")
	ErrUnknownStatus        = errors.New("unknown reservation status")
	ErrInvalidTransition    = errors.New("status transition not allowed")
)
