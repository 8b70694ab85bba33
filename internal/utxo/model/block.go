package model

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// BlockID identifies a block of the best chain.
type BlockID struct {
	Height uint64
	Hash   chainhash.Hash
	Time   time.Time
}

// BlockStatus describes whether a block belongs to the best chain.
type BlockStatus struct {
	InBestChain bool    `json:"in_best_chain"`
	Height      *uint64 `json:"height,omitempty"`
	NextBest    *string `json:"next_best,omitempty"`
}

// ConfirmedBlock builds the status of a block of the best chain.
func ConfirmedBlock(height uint64, nextBest *chainhash.Hash) BlockStatus {
	status := BlockStatus{InBestChain: true, Height: &height}
	if nextBest != nil {
		next := nextBest.String()
		status.NextBest = &next
	}
	return status
}

// OrphanedBlock builds the status of a block outside the best chain.
func OrphanedBlock() BlockStatus {
	return BlockStatus{}
}
