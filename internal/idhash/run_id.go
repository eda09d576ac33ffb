// Package idhash computes deterministic identifiers for simulation runs.
package idhash

import (
	"crypto/sha256"
	"fmt"

	"github.com/mr-tron/base58"
)

// ComputeRunID computes a deterministic run_id.
// Formula: base58(SHA256(batch_id|run_index|policy_id|seed))
// The same batch, index, policy, and seed always map to the same ID, so
// re-running a batch cannot silently duplicate rows in append-only stores.
func ComputeRunID(batchID string, runIndex int, policyID string, seed int64) string {
	data := fmt.Sprintf("%s|%d|%s|%d", batchID, runIndex, policyID, seed)
	hash := sha256.Sum256([]byte(data))
	return base58.Encode(hash[:])
}
