package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"baccarat-lab/internal/domain"
	"baccarat-lab/internal/storage"
)

func testBatch(batchID string, createdAt int64) *domain.BatchResult {
	return &domain.BatchResult{
		BatchID:             batchID,
		PolicyID:            "FLAT_u10",
		CreatedAt:           createdAt,
		RunCount:            100,
		BustCount:           12,
		BustRate:            0.12,
		AvgFinalBankroll:    987.5,
		BestFinalBankroll:   1430,
		WorstFinalBankroll:  0,
		MedianFinalBankroll: 990,
		StddevFinalBankroll: 104.2,
		P10FinalBankroll:    850,
		P90FinalBankroll:    1120,
	}
}

func TestBatchResultStore_InsertAndGetByID(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewBatchResultStore(pool)
	ctx := context.Background()

	batch := testBatch("batch-001", 1700000000000)

	err := store.Insert(ctx, batch)
	require.NoError(t, err)

	retrieved, err := store.GetByID(ctx, "batch-001")
	require.NoError(t, err)

	assert.Equal(t, batch, retrieved)
}

func TestBatchResultStore_InsertDuplicate(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewBatchResultStore(pool)
	ctx := context.Background()

	batch := testBatch("batch-dup", 1700000000000)

	err := store.Insert(ctx, batch)
	require.NoError(t, err)

	err = store.Insert(ctx, batch)
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)
}

func TestBatchResultStore_GetByIDNotFound(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewBatchResultStore(pool)

	_, err := store.GetByID(context.Background(), "missing-batch")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestBatchResultStore_ListOrdered(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewBatchResultStore(pool)
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, testBatch("batch-late", 3000)))
	require.NoError(t, store.Insert(ctx, testBatch("batch-early", 1000)))
	require.NoError(t, store.Insert(ctx, testBatch("batch-mid", 2000)))

	batches, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, batches, 3)

	assert.Equal(t, "batch-early", batches[0].BatchID)
	assert.Equal(t, "batch-mid", batches[1].BatchID)
	assert.Equal(t, "batch-late", batches[2].BatchID)
}
