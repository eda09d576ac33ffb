package memory

import (
	"context"
	"errors"
	"testing"

	"baccarat-lab/internal/domain"
	"baccarat-lab/internal/storage"
)

func sampleRun(runID, batchID string) *domain.ShoeRunResult {
	return &domain.ShoeRunResult{
		RunID:         runID,
		BatchID:       batchID,
		Outcomes:      []domain.Outcome{domain.OutcomeBanker, domain.OutcomePlayer},
		RoundsPlayed:  2,
		FinalBankroll: 95,
		PeakBankroll:  110,
	}
}

func TestShoeRunStore_InsertAndGet(t *testing.T) {
	ctx := context.Background()
	s := NewShoeRunStore()

	run := sampleRun("run-1", "batch-1")
	if err := s.Insert(ctx, run); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	got, err := s.GetByID(ctx, "run-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.FinalBankroll != 95 {
		t.Errorf("final bankroll = %v, want 95", got.FinalBankroll)
	}

	// Mutating the returned copy must not affect stored state.
	got.Outcomes[0] = domain.OutcomeTie
	again, _ := s.GetByID(ctx, "run-1")
	if again.Outcomes[0] != domain.OutcomeBanker {
		t.Error("stored run aliases returned copy")
	}
}

func TestShoeRunStore_DuplicateAndNotFound(t *testing.T) {
	ctx := context.Background()
	s := NewShoeRunStore()

	run := sampleRun("run-1", "batch-1")
	if err := s.Insert(ctx, run); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if err := s.Insert(ctx, run); !errors.Is(err, storage.ErrDuplicateKey) {
		t.Errorf("duplicate insert err = %v, want ErrDuplicateKey", err)
	}
	if _, err := s.GetByID(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("missing run err = %v, want ErrNotFound", err)
	}
}

func TestShoeRunStore_GetByBatchID(t *testing.T) {
	ctx := context.Background()
	s := NewShoeRunStore()

	for _, id := range []string{"run-b", "run-a", "run-c"} {
		if err := s.Insert(ctx, sampleRun(id, "batch-1")); err != nil {
			t.Fatalf("Insert %s failed: %v", id, err)
		}
	}
	if err := s.Insert(ctx, sampleRun("run-x", "batch-2")); err != nil {
		t.Fatalf("Insert run-x failed: %v", err)
	}

	runs, err := s.GetByBatchID(ctx, "batch-1")
	if err != nil {
		t.Fatalf("GetByBatchID failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3", len(runs))
	}
	for i := 1; i < len(runs); i++ {
		if runs[i-1].RunID >= runs[i].RunID {
			t.Error("runs not ordered by run_id ASC")
		}
	}
}

func TestBatchResultStore(t *testing.T) {
	ctx := context.Background()
	s := NewBatchResultStore()

	b := &domain.BatchResult{BatchID: "batch-1", CreatedAt: 100, RunCount: 10, BustRate: 0.2}
	if err := s.Insert(ctx, b); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if err := s.Insert(ctx, b); !errors.Is(err, storage.ErrDuplicateKey) {
		t.Errorf("duplicate insert err = %v, want ErrDuplicateKey", err)
	}

	got, err := s.GetByID(ctx, "batch-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.BustRate != 0.2 {
		t.Errorf("bust rate = %v, want 0.2", got.BustRate)
	}

	if err := s.Insert(ctx, &domain.BatchResult{BatchID: "batch-0", CreatedAt: 50}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 2 || list[0].BatchID != "batch-0" {
		t.Errorf("List not ordered by created_at: %+v", list)
	}
}

func TestTrajectoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewTrajectoryStore()

	points := []*domain.RoundPoint{
		{RunID: "run-1", Round: 2, Bankroll: 90},
		{RunID: "run-1", Round: 1, Bankroll: 100},
		{RunID: "run-2", Round: 1, Bankroll: 50},
	}
	if err := s.InsertBulk(ctx, points); err != nil {
		t.Fatalf("InsertBulk failed: %v", err)
	}

	got, err := s.GetByRunID(ctx, "run-1")
	if err != nil {
		t.Fatalf("GetByRunID failed: %v", err)
	}
	if len(got) != 2 || got[0].Round != 1 || got[1].Round != 2 {
		t.Errorf("points not ordered by round: %+v", got)
	}

	// Re-inserting any existing point fails the whole batch.
	err = s.InsertBulk(ctx, []*domain.RoundPoint{
		{RunID: "run-3", Round: 1},
		{RunID: "run-1", Round: 1},
	})
	if !errors.Is(err, storage.ErrDuplicateKey) {
		t.Fatalf("duplicate bulk err = %v, want ErrDuplicateKey", err)
	}
	if rest, _ := s.GetByRunID(ctx, "run-3"); len(rest) != 0 {
		t.Error("failed bulk insert left partial state")
	}

	// Intra-batch duplicates also fail.
	err = s.InsertBulk(ctx, []*domain.RoundPoint{
		{RunID: "run-4", Round: 1},
		{RunID: "run-4", Round: 1},
	})
	if !errors.Is(err, storage.ErrDuplicateKey) {
		t.Errorf("intra-batch duplicate err = %v, want ErrDuplicateKey", err)
	}
}
