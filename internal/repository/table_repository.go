package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/restaurant-reservation/internal/model"
)

// TableRepo provides persistence for dining-room tables, including the
// two-row transactional writes behind seating and clearing a table.
type TableRepo struct {
	db *sql.DB
}

// NewTableRepo returns a new TableRepo bound to the given database.
func NewTableRepo(db *sql.DB) *TableRepo { return &TableRepo{db: db} }

const tableCols = `table_id, table_name, capacity, reservation_id, created_at, updated_at`

func scanTable(row interface{ Scan(...any) error }) (*model.Table, error) {
	var t model.Table
	var resID sql.NullInt64
	err := row.Scan(&t.ID, &t.TableName, &t.Capacity, &resID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if resID.Valid {
		id := uint64(resID.Int64)
		t.ReservationID = &id
	}
	return &t, nil
}

// Create inserts a new table and populates the generated id and
// timestamps on the provided record.
func (r *TableRepo) Create(ctx context.Context, tbl *model.Table) error {
	const q = `INSERT INTO tables (table_name, capacity) VALUES (?, ?)`
	result, err := r.db.ExecContext(ctx, q, tbl.TableName, tbl.Capacity)
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
	*tbl = *stored
	return nil
}

// GetByID returns the table or ErrTableNotFound.
func (r *TableRepo) GetByID(ctx context.Context, id uint64) (*model.Table, error) {
	const q = `SELECT ` + tableCols + ` FROM tables WHERE table_id = ?`
	t, err := scanTable(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTableNotFound
	}
	return t, err
}

// List returns all tables ordered by name.
func (r *TableRepo) List(ctx context.Context) ([]model.Table, error) {
	const q = `SELECT ` + tableCols + ` FROM tables ORDER BY table_name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Table, 0)
	for rows.Next() {
		t, err := scanTable(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Seat assigns a reservation to a table and marks the reservation
// seated in one transaction.  Either both rows change or neither does;
// a table must never look occupied while its reservation is still
// booked, or vice versa.
func (r *TableRepo) Seat(ctx context.Context, tableID, reservationID uint64) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`UPDATE tables SET reservation_id = ? WHERE table_id = ?`,
			reservationID, tableID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`UPDATE reservations SET status = ? WHERE reservation_id = ?`,
			string(model.StatusSeated), reservationID)
		return err
	})
}

// Unseat frees a table and marks its reservation finished in one
// transaction.
func (r *TableRepo) Unseat(ctx context.Context, tableID, reservationID uint64) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`UPDATE tables SET reservation_id = NULL WHERE table_id = ?`,
			tableID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`UPDATE reservations SET status = ? WHERE reservation_id = ?`,
			string(model.StatusFinished), reservationID)
		return err
	})
}

// inTx runs fn inside a transaction, committing on success and rolling
// back otherwise.  Failed transactions are not retried; the error goes
// straight back to the caller.
func (r *TableRepo) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
