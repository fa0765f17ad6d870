package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"medswap/models"
)

// AllocationRepository persists the per-transfer allocation events
// emitted by the matcher. The ledger is append-only for the session;
// nothing updates or deletes recorded rows.
type AllocationRepository struct {
	db *sql.DB
}

func NewAllocationRepository(db *sql.DB) *AllocationRepository {
	return &AllocationRepository{db: db}
}

// Record inserts one allocation event and fills in its generated ID.
func (r *AllocationRepository) Record(ctx context.Context, a *models.Allocation) error {
	if a == nil {
		return errors.New("allocation is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO allocations (donor_id, donor_name, recipient_id, recipient_name, medicine, units, score) VALUES (?,?,?,?,?,?,?)`,
		a.DonorID, a.DonorName, a.RecipientID, a.RecipientName, a.Medicine, a.Units, a.Score)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = id
	return nil
}

// List returns recorded allocations in insertion order.
func (r *AllocationRepository) List(ctx context.Context, limit, offset int) ([]models.Allocation, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, donor_id, donor_name, recipient_id, recipient_name, medicine, units, score, created_at FROM allocations ORDER BY id LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAllocations(rows)
}

// ListByMedicine returns the allocations recorded for a medicine,
// matched case-insensitively.
func (r *AllocationRepository) ListByMedicine(ctx context.Context, medicine string) ([]models.Allocation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, donor_id, donor_name, recipient_id, recipient_name, medicine, units, score, created_at FROM allocations WHERE lower(medicine) = ? ORDER BY id`,
		strings.ToLower(medicine))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAllocations(rows)
}

// TotalUnits returns the sum of units over every recorded allocation.
func (r *AllocationRepository) TotalUnits(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var total sql.NullInt64
	err := r.db.QueryRowContext(ctx, `SELECT SUM(units) FROM allocations`).Scan(&total)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	if !total.Valid {
		return 0, nil
	}
	return total.Int64, nil
}

func scanAllocations(rows *sql.Rows) ([]models.Allocation, error) {
	var out []models.Allocation
	for rows.Next() {
		var a models.Allocation
		if err := rows.Scan(&a.ID, &a.DonorID, &a.DonorName, &a.RecipientID, &a.RecipientName, &a.Medicine, &a.Units, &a.Score, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
