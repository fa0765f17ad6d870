package repository

import (
	"context"
	"testing"

	"medswap/internal/testutil"
	"medswap/models"
)

func TestAllocationRepository_RecordAndQueries(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "allocrepo")
	repo := NewAllocationRepository(d)
	ctx := context.Background()

	a1 := &models.Allocation{
		DonorID: 1, DonorName: "alice",
		RecipientID: 2, RecipientName: "bob",
		Medicine: "Insulin", Units: 5, Score: 0.42,
	}
	if err := repo.Record(ctx, a1); err != nil {
		t.Fatalf("record: %v", err)
	}
	if a1.ID == 0 {
		t.Fatalf("expected generated id, got 0")
	}

	a2 := &models.Allocation{
		DonorID: 3, DonorName: "carol",
		RecipientID: 2, RecipientName: "bob",
		Medicine: "Aspirin", Units: 2, Score: 1.5,
	}
	if err := repo.Record(ctx, a2); err != nil {
		t.Fatalf("record: %v", err)
	}

	// List preserves insertion order.
	list, err := repo.List(ctx, 10, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].ID != a1.ID || list[1].ID != a2.ID {
		t.Fatalf("unexpected list: %+v", list)
	}
	if list[0].Units != 5 || list[0].Medicine != "Insulin" || list[0].CreatedAt == "" {
		t.Fatalf("row not round-tripped: %+v", list[0])
	}

	// ListByMedicine is case-insensitive.
	byMed, err := repo.ListByMedicine(ctx, "INSULIN")
	if err != nil {
		t.Fatalf("list by medicine: %v", err)
	}
	if len(byMed) != 1 || byMed[0].DonorName != "alice" {
		t.Fatalf("unexpected medicine filter result: %+v", byMed)
	}

	total, err := repo.TotalUnits(ctx)
	if err != nil {
		t.Fatalf("total units: %v", err)
	}
	if total != 7 {
		t.Fatalf("TotalUnits = %d, want 7", total)
	}
}

func TestAllocationRepository_EmptyLedger(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "allocrepo_empty")
	repo := NewAllocationRepository(d)
	ctx := context.Background()

	total, err := repo.TotalUnits(ctx)
	if err != nil || total != 0 {
		t.Fatalf("empty ledger total = %d err=%v, want 0", total, err)
	}
	list, err := repo.List(ctx, 10, 0)
	if err != nil || len(list) != 0 {
		t.Fatalf("empty ledger list = %+v err=%v", list, err)
	}
}

func TestAllocationRepository_NilAllocation(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "allocrepo_nil")
	repo := NewAllocationRepository(d)

	if err := repo.Record(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil allocation")
	}
}
