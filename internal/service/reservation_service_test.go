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

func validInput() validation.ReservationInput {
	return validation.ReservationInput{
		FirstName:       "Rick",
		LastName:        "Sanchez",
		MobileNumber:    "202-555-0191",
		ReservationDate: "2031-06-04", // Wednesday
		ReservationTime: "18:00",
		People:          4,
	}
}

func newReservationService(t *testing.T) (*ReservationService, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	return NewReservationService(store, fixedClock), store
}

func TestCreateAssignsIdentityAndBookedStatus(t *testing.T) {
	svc, _ := newReservationService(t)

	first, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, model.StatusBooked, first.Status)
	assert.Equal(t, model.StatusBooked, second.Status)
	assert.NotZero(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	svc, _ := newReservationService(t)

	in := validInput()
	in.ReservationDate = "2031-06-03" // Tuesday, closed
	_, err := svc.Create(context.Background(), in)

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "reservation_date", verr.Field)
}

func TestGetUnknownReservation(t *testing.T) {
	svc, _ := newReservationService(t)

	_, err := svc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, repository.ErrReservationNotFound)
}

func TestUpdateReRunsValidation(t *testing.T) {
	svc, _ := newReservationService(t)
	res, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	in := validInput()
	in.ReservationTime = "09:00" // before opening
	_, err = svc.Update(context.Background(), res.ID, in)

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "reservation_time", verr.Field)

	in.ReservationTime = "19:30"
	updated, err := svc.Update(context.Background(), res.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "19:30", updated.ReservationTime)
	assert.Equal(t, model.StatusBooked, updated.Status)
}

func TestUpdateStatusTransitions(t *testing.T) {
	svc, _ := newReservationService(t)
	res, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), res.ID, "cancelled")
	require.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, updated.Status)

	_, err = svc.UpdateStatus(context.Background(), res.ID, "reserved")
	assert.ErrorIs(t, err, ErrUnknownStatus)

	_, err = svc.UpdateStatus(context.Background(), 9999, "booked")
	assert.ErrorIs(t, err, repository.ErrReservationNotFound)
}

func TestFinishedReservationIsFrozen(t *testing.T) {
	svc, store := newReservationService(t)
	res, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	_, err = store.UpdateStatus(context.Background(), res.ID, model.StatusFinished)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), res.ID, "seated")
	assert.ErrorIs(t, err, ErrReservationFinished)

	_, err = svc.UpdateStatus(context.Background(), res.ID, "booked")
	assert.ErrorIs(t, err, ErrReservationFinished)

	_, err = svc.Update(context.Background(), res.ID, validInput())
	assert.ErrorIs(t, err, ErrReservationFinished)
}

func TestListExcludesClosedByDefault(t *testing.T) {
	svc, store := newReservationService(t)

	mk := func(tm string, status model.Status) {
		in := validInput()
		in.ReservationTime = tm
		res, err := svc.Create(context.Background(), in)
		require.NoError(t, err)
		if status != model.StatusBooked {
			_, err = store.UpdateStatus(context.Background(), res.ID, status)
			require.NoError(t, err)
		}
	}
	mk("20:00", model.StatusBooked)
	mk("11:00", model.StatusSeated)
	mk("12:00", model.StatusFinished)
	mk("13:00", model.StatusCancelled)

	active, err := svc.List(context.Background(), "2031-06-04", false)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "11:00", active[0].ReservationTime)
	assert.Equal(t, "20:00", active[1].ReservationTime)

	history, err := svc.List(context.Background(), "2031-06-04", true)
	require.NoError(t, err)
	assert.Len(t, history, 4)
}

func TestListDefaultsToToday(t *testing.T) {
	svc, store := newReservationService(t)
	store.reservations[1] = model.Reservation{
		ID:              1,
		ReservationDate: fixedClock().Format("2006-01-02"),
		ReservationTime: "12:30",
		Status:          model.StatusBooked,
	}

	today, err := svc.List(context.Background(), "", false)
	require.NoError(t, err)
	require.Len(t, today, 1)
	assert.Equal(t, uint64(1), today[0].ID)
}

func TestListRejectsMalformedDate(t *testing.T) {
	svc, _ := newReservationService(t)

	_, err := svc.List(context.Background(), "06/04/2031", false)
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "date", verr.Field)
}

func TestSearchMatchesNormalizedDigits(t *testing.T) {
	svc, _ := newReservationService(t)
	in := validInput()
	in.MobileNumber = "123-456-7890"
	_, err := svc.Create(context.Background(), in)
	require.NoError(t, err)

	for _, query := range []string{"1234567890", "456-7890", "(123) 456-7890"} {
		matches, err := svc.Search(context.Background(), query)
		require.NoError(t, err)
		assert.Len(t, matches, 1, "query %q", query)
	}

	none, err := svc.Search(context.Background(), "999")
	require.NoError(t, err)
	assert.Empty(t, none)

	empty, err := svc.Search(context.Background(), "---")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
