package service

import (
	"context"
	"fmt"
	"time"

	"github.com/iliyamo/restaurant-reservation/internal/model"
	"github.com/iliyamo/restaurant-reservation/internal/utils"
	"github.com/iliyamo/restaurant-reservation/internal/validation"
)

// ReservationService implements the reservation lifecycle: creation
// with full validation, lookup, full-field edits, status transitions
// and the two read views (date-scoped listing and phone search).
type ReservationService struct {
	store ReservationStore
	now   func() time.Time
}

// NewReservationService constructs a ReservationService.  now may be
// nil, in which case the wall clock is used; tests pass a fixed clock
// to pin the past-date and closed-day rules.
func NewReservationService(store ReservationStore, now func() time.Time) *ReservationService {
	if store == nil {
		panic("nil store passed to NewReservationService")
	}
	if now == nil {
		now = time.Now
	}
	return &ReservationService{store: store, now: now}
}

// Create validates the candidate fields and persists a new reservation
// with status booked, returning the stored record including its
// generated id.
func (s *ReservationService) Create(ctx context.Context, in validation.ReservationInput) (*model.Reservation, error) {
	if err := validation.Reservation(in, s.now()); err != nil {
		return nil, err
	}
	res := &model.Reservation{
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		MobileNumber:    in.MobileNumber,
		ReservationDate: in.ReservationDate,
		ReservationTime: in.ReservationTime,
		People:          in.People,
		Status:          model.StatusBooked,
	}
	if err := s.store.Create(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Get returns the reservation with the given id.
func (s *ReservationService) Get(ctx context.Context, id uint64) (*model.Reservation, error) {
	return s.store.GetByID(ctx, id)
}

// Update applies a full-field edit to an existing reservation.  The new
// field values go through the same validation as creation.  A finished
// reservation is frozen and rejects any edit.
func (s *ReservationService) Update(ctx context.Context, id uint64, in validation.ReservationInput) (*model.Reservation, error) {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.Status.IsTerminal() {
		return nil, ErrReservationFinished
	}
	if err := validation.Reservation(in, s.now()); err != nil {
		return nil, err
	}
	existing.FirstName = in.FirstName
	existing.LastName = in.LastName
	existing.MobileNumber = in.MobileNumber
	existing.ReservationDate = in.ReservationDate
	existing.ReservationTime = in.ReservationTime
	existing.People = in.People
	if err := s.store.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// UpdateStatus moves a reservation to a new lifecycle status.  Unknown
// values are rejected, and a finished reservation admits no transition
// at all.
func (s *ReservationService) UpdateStatus(ctx context.Context, id uint64, newStatus string) (*model.Reservation, error) {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	status, ok := model.ParseStatus(newStatus)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, newStatus)
	}
	if existing.Status.IsTerminal() {
		return nil, ErrReservationFinished
	}
	if !existing.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %q to %q", ErrInvalidTransition, existing.Status, status)
	}
	return s.store.UpdateStatus(ctx, id, status)
}

// List returns the reservations for a calendar date ordered by time.
// An empty date defaults to today in the server's timezone.  Finished
// and cancelled reservations are excluded unless includeClosed is set,
// which the audit view uses.
func (s *ReservationService) List(ctx context.Context, date string, includeClosed bool) ([]model.Reservation, error) {
	if date == "" {
		date = s.now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, &validation.Error{
			Field:   "date",
			Message: fmt.Sprintf("'%s' is an invalid date. Use YYYY-MM-DD", date),
		}
	}
	return s.store.ListByDate(ctx, date, includeClosed)
}

// Search finds reservations whose mobile number contains the digits of
// the query, ignoring formatting on both sides, ordered by date.  A
// query with no digits at all matches nothing.
func (s *ReservationService) Search(ctx context.Context, phone string) ([]model.Reservation, error) {
	digits := utils.NormalizeDigits(phone)
	if digits == "" {
		return []model.Reservation{}, nil
	}
	return s.store.SearchByPhone(ctx, digits)
}
