package model

import "github.com/btcsuite/btcd/chaincfg/chainhash"

// HistoryCursor positions chain history paging; rows strictly after the cursor in
// (height, position, block hash) descending order are returned. BlockHash separates
// rows of competing blocks that share a height and position.
type HistoryCursor struct {
	BlockHeight uint64
	TxPosition  uint32
	BlockHash   chainhash.Hash
}

// HistoryTx is a transaction touching a script hash.
// Block is nil for mempool transactions.
type HistoryTx struct {
	TxID     chainhash.Hash
	Version  int32
	LockTime uint32
	Size     uint32
	Weight   uint32
	Fee      uint64
	Block    *BlockID
}

// Utxo is an unspent output locked by a script hash.
// Block is nil for outputs created by mempool transactions.
type Utxo struct {
	TxID  chainhash.Hash
	Vout  uint32
	Value uint64
	Block *BlockID
}

// Outpoint references a transaction output.
type Outpoint struct {
	TxID chainhash.Hash
	Vout uint32
}

// BlockScriptStats holds the statistics a single block contributes to a script hash.
type BlockScriptStats struct {
	BlockHash chainhash.Hash
	Stats     ScriptStats
}

// ScriptHistoryRow is a stored history record of a script hash.
// BlockHeight and BlockHash are zero for mempool rows.
type ScriptHistoryRow struct {
	TxID        chainhash.Hash
	BlockHeight uint64
	BlockHash   chainhash.Hash
	TxPosition  uint32
	Version     int32
	LockTime    uint32
	Size        uint32
	Weight      uint32
	Fee         uint64
}

// UnspentRow is a stored output of a script hash. SpentIn lists the blocks holding
// a spend of the output; the output is unspent on a chain containing none of them.
// Block fields are zero for mempool rows.
type UnspentRow struct {
	TxID        chainhash.Hash
	Vout        uint32
	Value       uint64
	BlockHeight uint64
	BlockHash   chainhash.Hash
	SpentIn     []chainhash.Hash
}
