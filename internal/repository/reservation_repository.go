package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/restaurant-reservation/internal/model"
)

// ReservationRepo provides CRUD operations for reservations.  Dates are
// stored in a DATE column and read back as "YYYY-MM-DD" strings; times
// are stored as the "HH:MM" strings the clients send.  All timestamp
// fields are assumed to be stored in UTC.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// reservationCols is the standard select list.  DATE_FORMAT keeps the
// date a plain string so the wire format matches what clients sent.
const reservationCols = `reservation_id, first_name, last_name, mobile_number,
       DATE_FORMAT(reservation_date, '%Y-%m-%d'), reservation_time, people, status,
       created_at, updated_at`

func scanReservation(row interface{ Scan(...any) error }) (*model.Reservation, error) {
	var r model.Reservation
	var status string
	err := row.Scan(
		&r.ID, &r.FirstName, &r.LastName, &r.MobileNumber,
		&r.ReservationDate, &r.ReservationTime, &r.People, &status,
		&r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	r.Status = model.Status(status)
	return &r, nil
}

// Create inserts a new reservation and populates the generated id and
// database-assigned defaults (status, timestamps) on the provided record
// by querying the stored row back.
func (r *ReservationRepo) Create(ctx context.Context, res *model.Reservation) error {
	const q = `INSERT INTO reservations
	           (first_name, last_name, mobile_number, reservation_date, reservation_time, people, status)
	           VALUES (?, ?, ?, ?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, q,
		res.FirstName, res.LastName, res.MobileNumber,
		res.ReservationDate, res.ReservationTime, res.People, string(res.Status))
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	stored, err := r.GetByID(ctx, uint64(id))
	if err != nil {
		return err
	}
	*res = *stored
	return nil
}

// GetByID returns the reservation or ErrReservationNotFound.
func (r *ReservationRepo) GetByID(ctx context.Context, id uint64) (*model.Reservation, error) {
	const q = `SELECT ` + reservationCols + ` FROM reservations WHERE reservation_id = ?`
	res, err := scanReservation(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	return res, err
}

// Update rewrites every editable field of an existing reservation and
// refreshes the provided record from the stored row.
func (r *ReservationRepo) Update(ctx context.Context, res *model.Reservation) error {
	const q = `UPDATE reservations
	           SET first_name = ?, last_name = ?, mobile_number = ?,
	               reservation_date = ?, reservation_time = ?, people = ?
	           WHERE reservation_id = ?`
	if _, err := r.db.ExecContext(ctx, q,
		res.FirstName, res.LastName, res.MobileNumber,
		res.ReservationDate, res.ReservationTime, res.People, res.ID); err != nil {
		return err
	}
	stored, err := r.GetByID(ctx, res.ID)
	if err != nil {
		return err
	}
	*res = *stored
	return nil
}

// UpdateStatus persists a new lifecycle status and returns the updated
// record.  Transition legality is the service layer's concern; this
// method only writes.
func (r *ReservationRepo) UpdateStatus(ctx context.Context, id uint64, status model.Status) (*model.Reservation, error) {
	const q = `UPDATE reservations SET status = ? WHERE reservation_id = ?`
	if _, err := r.db.ExecContext(ctx, q, string(status), id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// ListByDate returns all reservations for a calendar date ordered by
// time ascending.  When includeClosed is false, finished and cancelled
// reservations are excluded, which is what the dashboard wants; audit
// views pass true to see the full history for the date.
func (r *ReservationRepo) ListByDate(ctx context.Context, date string, includeClosed bool) ([]model.Reservation, error) {
	q := `SELECT ` + reservationCols + ` FROM reservations WHERE reservation_date = ?`
	if !includeClosed {
		q += ` AND status NOT IN ('finished', 'cancelled')`
	}
	q += ` ORDER BY reservation_time`
	return r.queryReservations(ctx, q, date)
}

// SearchByPhone returns reservations whose stored mobile number,
// stripped of formatting, contains the given digit string, ordered by
// reservation date.  The caller is responsible for normalizing the
// query to digits first.
func (r *ReservationRepo) SearchByPhone(ctx context.Context, digits string) ([]model.Reservation, error) {
	const q = `SELECT ` + reservationCols + ` FROM reservations
	           WHERE REGEXP_REPLACE(mobile_number, '[^0-9]', '') LIKE CONCAT('%', ?, '%')
	           ORDER BY reservation_date, reservation_time`
	return r.queryReservations(ctx, q, digits)
}

func (r *ReservationRepo) queryReservations(ctx context.Context, q string, args ...any) ([]model.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
