// Package headers maintains the best chain of block headers with lookups by height
// and by hash. A List is an immutable snapshot; an Index publishes snapshots to
// concurrent readers.
package headers

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
)

// Entry is a header placed at its height in the chain.
type Entry struct {
	height uint64
	hash   chainhash.Hash
	header wire.BlockHeader
}

// NewEntry places header at height.
func NewEntry(height uint64, header wire.BlockHeader) Entry {
	return Entry{
		height: height,
		hash:   header.BlockHash(),
		header: header,
	}
}

func (e Entry) Height() uint64           { return e.height }
func (e Entry) Hash() chainhash.Hash     { return e.hash }
func (e Entry) Header() wire.BlockHeader { return e.header }
func (e Entry) Time() time.Time          { return e.header.Timestamp }

// BlockID projects the entry for external consumption.
func (e Entry) BlockID() model.BlockID {
	return model.BlockID{
		Height: e.height,
		Hash:   e.hash,
		Time:   e.header.Timestamp,
	}
}

// Equal reports whether both entries hold the same header at the same height.
func (e Entry) Equal(other Entry) bool {
	return e.height == other.height &&
		e.hash == other.hash &&
		sameHeader(e.header, other.header)
}

func (e Entry) String() string {
	return fmt.Sprintf("best=%s height=%d @ %s", e.hash, e.height, e.header.Timestamp.UTC().Format(time.RFC3339))
}

func sameHeader(a, b wire.BlockHeader) bool {
	return a.Version == b.Version &&
		a.PrevBlock == b.PrevBlock &&
		a.MerkleRoot == b.MerkleRoot &&
		a.Timestamp.Equal(b.Timestamp) &&
		a.Bits == b.Bits &&
		a.Nonce == b.Nonce
}
