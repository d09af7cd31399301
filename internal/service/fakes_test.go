package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/iliyamo/restaurant-reservation/internal/model"
	"github.com/iliyamo/restaurant-reservation/internal/repository"
	"github.com/iliyamo/restaurant-reservation/internal/utils"
)

// fakeStore is an in-memory double implementing both ReservationStore
// and TableStore over one mutex, mirroring the single database the real
// repositories share.  Seat and Unseat apply their two writes under the
// same lock so observers never see a half-applied pair.
type fakeStore struct {
	mu           sync.Mutex
	reservations map[uint64]model.Reservation
	tables       map[uint64]model.Table
	nextResID    uint64
	nextTblID    uint64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		reservations: make(map[uint64]model.Reservation),
		tables:       make(map[uint64]model.Table),
	}
}

func (f *fakeStore) Create(ctx context.Context, res *model.Reservation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextResID++
	res.ID = f.nextResID
	res.CreatedAt = time.Now().UTC()
	res.UpdatedAt = res.CreatedAt
	f.reservations[res.ID] = *res
	return nil
}

func (f *fakeStore) GetByID(ctx context.Context, id uint64) (*model.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res, ok := f.reservations[id]
	if !ok {
		return nil, repository.ErrReservationNotFound
	}
	return &res, nil
}

func (f *fakeStore) Update(ctx context.Context, res *model.Reservation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.reservations[res.ID]
	if !ok {
		return repository.ErrReservationNotFound
	}
	res.Status = stored.Status
	res.UpdatedAt = time.Now().UTC()
	f.reservations[res.ID] = *res
	return nil
}

func (f *fakeStore) UpdateStatus(ctx context.Context, id uint64, status model.Status) (*model.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res, ok := f.reservations[id]
	if !ok {
		return nil, repository.ErrReservationNotFound
	}
	res.Status = status
	res.UpdatedAt = time.Now().UTC()
	f.reservations[id] = res
	return &res, nil
}

func (f *fakeStore) ListByDate(ctx context.Context, date string, includeClosed bool) ([]model.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Reservation, 0)
	for _, res := range f.reservations {
		if res.ReservationDate != date {
			continue
		}
		if !includeClosed && res.Status.IsClosed() {
			continue
		}
		out = append(out, res)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ReservationTime < out[j].ReservationTime })
	return out, nil
}

func (f *fakeStore) SearchByPhone(ctx context.Context, digits string) ([]model.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Reservation, 0)
	for _, res := range f.reservations {
		if strings.Contains(utils.NormalizeDigits(res.MobileNumber), digits) {
			out = append(out, res)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ReservationDate < out[j].ReservationDate })
	return out, nil
}

// TableStore methods.

func (f *fakeStore) CreateTable(ctx context.Context, tbl *model.Table) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextTblID++
	tbl.ID = f.nextTblID
	tbl.CreatedAt = time.Now().UTC()
	tbl.UpdatedAt = tbl.CreatedAt
	f.tables[tbl.ID] = *tbl
	return nil
}

func (f *fakeStore) GetTableByID(ctx context.Context, id uint64) (*model.Table, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tbl, ok := f.tables[id]
	if !ok {
		return nil, repository.ErrTableNotFound
	}
	return &tbl, nil
}

func (f *fakeStore) ListTables(ctx context.Context) ([]model.Table, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Table, 0, len(f.tables))
	for _, tbl := range f.tables {
		out = append(out, tbl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TableName < out[j].TableName })
	return out, nil
}

func (f *fakeStore) Seat(ctx context.Context, tableID, reservationID uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	tbl := f.tables[tableID]
	res := f.reservations[reservationID]
	id := reservationID
	tbl.ReservationID = &id
	res.Status = model.StatusSeated
	f.tables[tableID] = tbl
	f.reservations[reservationID] = res
	return nil
}

func (f *fakeStore) Unseat(ctx context.Context, tableID, reservationID uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	tbl := f.tables[tableID]
	res := f.reservations[reservationID]
	tbl.ReservationID = nil
	res.Status = model.StatusFinished
	f.tables[tableID] = tbl
	f.reservations[reservationID] = res
	return nil
}

// tableStoreAdapter renames the table methods onto the TableStore
// interface so one fake can back both stores.
type tableStoreAdapter struct{ *fakeStore }

func (a tableStoreAdapter) Create(ctx context.Context, tbl *model.Table) error {
	return a.CreateTable(ctx, tbl)
}

func (a tableStoreAdapter) GetByID(ctx context.Context, id uint64) (*model.Table, error) {
	return a.GetTableByID(ctx, id)
}

func (a tableStoreAdapter) List(ctx context.Context) ([]model.Table, error) {
	return a.ListTables(ctx)
}

// fixedClock pins validation's "now" to a Monday noon so the future,
// closed-day and operating-hours rules are deterministic.
func fixedClock() time.Time {
	return time.Date(2031, time.June, 2, 12, 0, 0, 0, time.UTC) // Monday
}
