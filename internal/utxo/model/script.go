package model

import (
	"encoding/hex"
	"fmt"
)

// ScriptHashSize is the length of a script hash in bytes.
const ScriptHashSize = 32

// ScriptHash is the sha256 of a locking script, the index key of every address query.
type ScriptHash [ScriptHashSize]byte

// String returns the hex encoding used by the storage layer.
func (h ScriptHash) String() string {
	return hex.EncodeToString(h[:])
}

// ParseScriptHash decodes a hex encoded script hash.
func ParseScriptHash(s string) (ScriptHash, error) {
	var h ScriptHash
	raw, err := hex.DecodeString(s)
	if err != nil {
		return h, fmt.Errorf("decode script hash: %w", err)
	}
	if len(raw) != ScriptHashSize {
		return h, fmt.Errorf("script hash must be %d bytes, got %d", ScriptHashSize, len(raw))
	}
	copy(h[:], raw)
	return h, nil
}

// ScriptStats aggregates the activity of a script hash in one domain (chain or mempool).
type ScriptStats struct {
	TxCount        uint64 `json:"tx_count"`
	FundedTxoCount uint64 `json:"funded_txo_count"`
	FundedTxoSum   uint64 `json:"funded_txo_sum"`
	SpentTxoCount  uint64 `json:"spent_txo_count"`
	SpentTxoSum    uint64 `json:"spent_txo_sum"`
}

// IsEmpty reports whether the script has neither transactions nor balance changes.
func (s ScriptStats) IsEmpty() bool {
	return s == ScriptStats{}
}

// Add accumulates other into s.
func (s *ScriptStats) Add(other ScriptStats) {
	s.TxCount += other.TxCount
	s.FundedTxoCount += other.FundedTxoCount
	s.FundedTxoSum += other.FundedTxoSum
	s.SpentTxoCount += other.SpentTxoCount
	s.SpentTxoSum += other.SpentTxoSum
}

// Stats pairs confirmed and unconfirmed statistics of a script hash.
type Stats struct {
	Chain   ScriptStats
	Mempool ScriptStats
}

// IsEmpty reports whether the script is unused both on chain and in the mempool.
func (s Stats) IsEmpty() bool {
	return s.Chain.IsEmpty() && s.Mempool.IsEmpty()
}
