package idhash

import (
	"testing"

	"github.com/mr-tron/base58"
)

func TestComputeRunID_Deterministic(t *testing.T) {
	a := ComputeRunID("batch-1", 3, "MARTINGALE_u10", 42)
	b := ComputeRunID("batch-1", 3, "MARTINGALE_u10", 42)
	if a != b {
		t.Errorf("identical inputs produced different IDs: %s vs %s", a, b)
	}
}

func TestComputeRunID_SensitiveToEveryField(t *testing.T) {
	base := ComputeRunID("batch-1", 0, "FLAT_u10", 1)
	variants := []string{
		ComputeRunID("batch-2", 0, "FLAT_u10", 1),
		ComputeRunID("batch-1", 1, "FLAT_u10", 1),
		ComputeRunID("batch-1", 0, "FLAT_u20", 1),
		ComputeRunID("batch-1", 0, "FLAT_u10", 2),
	}
	for i, v := range variants {
		if v == base {
			t.Errorf("variant %d collided with base ID", i)
		}
	}
}

func TestComputeRunID_DecodesAsBase58(t *testing.T) {
	id := ComputeRunID("batch-1", 0, "FLAT_u10", 1)
	raw, err := base58.Decode(id)
	if err != nil {
		t.Fatalf("ID is not valid base58: %v", err)
	}
	if len(raw) != 32 {
		t.Errorf("decoded length = %d, want 32 (sha256)", len(raw))
	}
}
