package repository

import (
	"context"

	"medswap/models"
)

// AllocationRepositoryI defines operations on the allocation ledger.
type AllocationRepositoryI interface {
	Record(ctx context.Context, a *models.Allocation) error
	List(ctx context.Context, limit, offset int) ([]models.Allocation, error)
	ListByMedicine(ctx context.Context, medicine string) ([]models.Allocation, error)
	TotalUnits(ctx context.Context) (int64, error)
}
