package service

import (
	"context"

	"github.com/iliyamo/restaurant-reservation/internal/model"
	"github.com/iliyamo/restaurant-reservation/internal/validation"
)

// TableService owns table occupancy: creating and listing tables, and
// the seat/unseat operations that move a table and a reservation
// together.  All preconditions are checked here before the store's
// atomic write runs.
type TableService struct {
	tables       TableStore
	reservations ReservationStore
}

// NewTableService constructs a TableService over the two stores.
func NewTableService(tables TableStore, reservations ReservationStore) *TableService {
	if tables == nil || reservations == nil {
		panic("nil store passed to NewTableService")
	}
	return &TableService{tables: tables, reservations: reservations}
}

// Create validates and persists a new table, returning the stored
// record including its generated id.
func (s *TableService) Create(ctx context.Context, tableName string, capacity int) (*model.Table, error) {
	if err := validation.Table(tableName, capacity); err != nil {
		return nil, err
	}
	tbl := &model.Table{TableName: tableName, Capacity: capacity}
	if err := s.tables.Create(ctx, tbl); err != nil {
		return nil, err
	}
	return tbl, nil
}

// Get returns the table with the given id.
func (s *TableService) Get(ctx context.Context, id uint64) (*model.Table, error) {
	return s.tables.GetByID(ctx, id)
}

// List returns all tables ordered by name.
func (s *TableService) List(ctx context.Context) ([]model.Table, error) {
	return s.tables.List(ctx)
}

// Seat assigns a reservation to a table.  Preconditions, first failure
// wins: both records exist, the reservation is not already seated, the
// party fits the capacity (equality is allowed), and the table is free.
// The occupancy and status writes then happen as one atomic unit.
func (s *TableService) Seat(ctx context.Context, tableID, reservationID uint64) (*model.Table, error) {
	tbl, err := s.tables.GetByID(ctx, tableID)
	if err != nil {
		return nil, err
	}
	res, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if res.Status == model.StatusSeated {
		return nil, ErrAlreadySeated
	}
	if res.People > tbl.Capacity {
		return nil, ErrInsufficientCapacity
	}
	if tbl.Occupied() {
		return nil, ErrTableOccupied
	}
	if err := s.tables.Seat(ctx, tableID, reservationID); err != nil {
		return nil, err
	}
	return s.tables.GetByID(ctx, tableID)
}

// Unseat frees an occupied table and marks the seated reservation
// finished, atomically.  Unseating a free table fails.  The id of the
// reservation that was freed is returned alongside the updated table.
func (s *TableService) Unseat(ctx context.Context, tableID uint64) (*model.Table, uint64, error) {
	tbl, err := s.tables.GetByID(ctx, tableID)
	if err != nil {
		return nil, 0, err
	}
	if !tbl.Occupied() {
		return nil, 0, ErrTableNotOccupied
	}
	freed := *tbl.ReservationID
	if err := s.tables.Unseat(ctx, tableID, freed); err != nil {
		return nil, 0, err
	}
	tbl, err = s.tables.GetByID(ctx, tableID)
	if err != nil {
		return nil, 0, err
	}
	return tbl, freed, nil
}
