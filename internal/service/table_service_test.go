package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/restaurant-reservation/internal/model"
	"github.com/iliyamo/restaurant-reservation/internal/repository"
	"github.com/iliyamo/restaurant-reservation/internal/validation"
)

func newTableService(t *testing.T) (*TableService, *ReservationService, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	return NewTableService(tableStoreAdapter{store}, store),
		NewReservationService(store, fixedClock), store
}

func seedReservation(t *testing.T, svc *ReservationService, people int) *model.Reservation {
	t.Helper()
	in := validInput()
	in.People = people
	res, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	return res
}

func TestCreateTableValidates(t *testing.T) {
	tables, _, _ := newTableService(t)

	tbl, err := tables.Create(context.Background(), "Bar #1", 4)
	require.NoError(t, err)
	assert.NotZero(t, tbl.ID)
	assert.Nil(t, tbl.ReservationID)

	_, err = tables.Create(context.Background(), "B", 4)
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "table_name", verr.Field)

	_, err = tables.Create(context.Background(), "Bar #2", 0)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "capacity", verr.Field)
}

func TestSeatUpdatesBothRecordsTogether(t *testing.T) {
	tables, reservations, store := newTableService(t)
	res := seedReservation(t, reservations, 4)
	tbl, err := tables.Create(context.Background(), "Window 2", 4)
	require.NoError(t, err)

	seated, err := tables.Seat(context.Background(), tbl.ID, res.ID)
	require.NoError(t, err)

	require.NotNil(t, seated.ReservationID)
	assert.Equal(t, res.ID, *seated.ReservationID)
	stored, err := store.GetByID(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusSeated, stored.Status)
}

func TestSeatPreconditions(t *testing.T) {
	tables, reservations, _ := newTableService(t)
	res := seedReservation(t, reservations, 4)
	tbl, err := tables.Create(context.Background(), "Patio 1", 4)
	require.NoError(t, err)

	_, err = tables.Seat(context.Background(), 999, res.ID)
	assert.ErrorIs(t, err, repository.ErrTableNotFound)

	_, err = tables.Seat(context.Background(), tbl.ID, 999)
	assert.ErrorIs(t, err, repository.ErrReservationNotFound)

	big := seedReservation(t, reservations, 5)
	_, err = tables.Seat(context.Background(), tbl.ID, big.ID)
	assert.ErrorIs(t, err, ErrInsufficientCapacity)

	_, err = tables.Seat(context.Background(), tbl.ID, res.ID)
	require.NoError(t, err)

	_, err = tables.Seat(context.Background(), tbl.ID, res.ID)
	assert.ErrorIs(t, err, ErrAlreadySeated)

	other := seedReservation(t, reservations, 2)
	_, err = tables.Seat(context.Background(), tbl.ID, other.ID)
	assert.ErrorIs(t, err, ErrTableOccupied)
}

func TestSeatCapacityBoundaryIsInclusive(t *testing.T) {
	tables, reservations, _ := newTableService(t)
	tbl, err := tables.Create(context.Background(), "Booth 3", 4)
	require.NoError(t, err)

	exact := seedReservation(t, reservations, 4)
	_, err = tables.Seat(context.Background(), tbl.ID, exact.ID)
	assert.NoError(t, err)
}

func TestUnseatFreesTableAndFinishesReservation(t *testing.T) {
	tables, reservations, store := newTableService(t)
	res := seedReservation(t, reservations, 2)
	tbl, err := tables.Create(context.Background(), "Counter 1", 2)
	require.NoError(t, err)
	_, err = tables.Seat(context.Background(), tbl.ID, res.ID)
	require.NoError(t, err)

	freedTbl, freedID, err := tables.Unseat(context.Background(), tbl.ID)
	require.NoError(t, err)

	assert.Nil(t, freedTbl.ReservationID)
	assert.Equal(t, res.ID, freedID)
	stored, err := store.GetByID(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusFinished, stored.Status)
}

func TestUnseatFreeTable(t *testing.T) {
	tables, _, _ := newTableService(t)
	tbl, err := tables.Create(context.Background(), "Counter 2", 2)
	require.NoError(t, err)

	_, _, err = tables.Unseat(context.Background(), tbl.ID)
	assert.ErrorIs(t, err, ErrTableNotOccupied)

	_, _, err = tables.Unseat(context.Background(), 999)
	assert.ErrorIs(t, err, repository.ErrTableNotFound)
}

// Full walk through the happy path: book, seat, clear, then verify the
// finished reservation is frozen.
func TestSeatingLifecycle(t *testing.T) {
	tables, reservations, _ := newTableService(t)

	res := seedReservation(t, reservations, 4)
	assert.Equal(t, model.StatusBooked, res.Status)

	tbl, err := tables.Create(context.Background(), "Window 1", 4)
	require.NoError(t, err)

	seated, err := tables.Seat(context.Background(), tbl.ID, res.ID)
	require.NoError(t, err)
	require.NotNil(t, seated.ReservationID)

	cleared, freedID, err := tables.Unseat(context.Background(), tbl.ID)
	require.NoError(t, err)
	assert.Nil(t, cleared.ReservationID)
	assert.Equal(t, res.ID, freedID)

	_, err = reservations.UpdateStatus(context.Background(), res.ID, "seated")
	assert.ErrorIs(t, err, ErrReservationFinished)
}
