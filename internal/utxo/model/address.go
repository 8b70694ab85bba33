package model

import "encoding/json"

// TxStatus describes where a transaction or output is confirmed.
type TxStatus struct {
	Confirmed   bool    `json:"confirmed"`
	BlockHeight *uint64 `json:"block_height,omitempty"`
	BlockHash   *string `json:"block_hash,omitempty"`
	BlockTime   *int64  `json:"block_time,omitempty"`
}

// NewTxStatus builds a status from an optional confirming block.
func NewTxStatus(block *BlockID) TxStatus {
	if block == nil {
		return TxStatus{}
	}
	height := block.Height
	hash := block.Hash.String()
	ts := block.Time.Unix()
	return TxStatus{
		Confirmed:   true,
		BlockHeight: &height,
		BlockHash:   &hash,
		BlockTime:   &ts,
	}
}

// TransactionValue is the client facing form of a history transaction.
type TransactionValue struct {
	TxID     string   `json:"txid"`
	Version  int32    `json:"version"`
	LockTime uint32   `json:"locktime"`
	Size     uint32   `json:"size"`
	Weight   uint32   `json:"weight"`
	Fee      uint64   `json:"fee"`
	Status   TxStatus `json:"status"`
}

// UtxoValue is the client facing form of an unspent output.
type UtxoValue struct {
	TxID   string   `json:"txid"`
	Vout   uint32   `json:"vout"`
	Value  uint64   `json:"value"`
	Status TxStatus `json:"status"`
}

// NewUtxoValue converts an unspent output.
func NewUtxoValue(u Utxo) UtxoValue {
	return UtxoValue{
		TxID:   u.TxID.String(),
		Vout:   u.Vout,
		Value:  u.Value,
		Status: NewTxStatus(u.Block),
	}
}

// AddressInfo is the result for one address. Exactly one shape is populated:
// full info (stats and transactions), stats only, or utxo only.
type AddressInfo struct {
	Address      string             `json:"address"`
	ChainStats   *ScriptStats       `json:"chain_stats,omitempty"`
	MempoolStats *ScriptStats       `json:"mempool_stats,omitempty"`
	Utxo         []UtxoValue        `json:"utxo,omitempty"`
	ChainTxs     []TransactionValue `json:"chain_txs,omitempty"`
	MempoolTxs   []TransactionValue `json:"mempool_txs,omitempty"`
}

// NewAddressInfo builds the full info shape.
func NewAddressInfo(address string, stats Stats, chainTxs, mempoolTxs []TransactionValue) AddressInfo {
	if chainTxs == nil {
		chainTxs = []TransactionValue{}
	}
	if mempoolTxs == nil {
		mempoolTxs = []TransactionValue{}
	}
	chain, mempool := stats.Chain, stats.Mempool
	return AddressInfo{
		Address:      address,
		ChainStats:   &chain,
		MempoolStats: &mempool,
		ChainTxs:     chainTxs,
		MempoolTxs:   mempoolTxs,
	}
}

// NewAddressStats builds the stats only shape.
func NewAddressStats(address string, stats Stats) AddressInfo {
	chain, mempool := stats.Chain, stats.Mempool
	return AddressInfo{
		Address:      address,
		ChainStats:   &chain,
		MempoolStats: &mempool,
	}
}

// NewAddressUtxo builds the utxo only shape.
func NewAddressUtxo(address string, utxos []UtxoValue) AddressInfo {
	if utxos == nil {
		utxos = []UtxoValue{}
	}
	return AddressInfo{
		Address: address,
		Utxo:    utxos,
	}
}

// MarshalJSON renders only the fields of the populated shape. Lists of the
// populated shape are rendered even when empty.
func (a AddressInfo) MarshalJSON() ([]byte, error) {
	switch {
	case a.Utxo != nil:
		return json.Marshal(struct {
			Address string      `json:"address"`
			Utxo    []UtxoValue `json:"utxo"`
		}{a.Address, a.Utxo})
	case a.ChainTxs != nil || a.MempoolTxs != nil:
		return json.Marshal(struct {
			Address      string             `json:"address"`
			ChainStats   *ScriptStats       `json:"chain_stats,omitempty"`
			MempoolStats *ScriptStats       `json:"mempool_stats,omitempty"`
			ChainTxs     []TransactionValue `json:"chain_txs"`
			MempoolTxs   []TransactionValue `json:"mempool_txs"`
		}{a.Address, a.ChainStats, a.MempoolStats, nonNil(a.ChainTxs), nonNil(a.MempoolTxs)})
	default:
		return json.Marshal(struct {
			Address      string       `json:"address"`
			ChainStats   *ScriptStats `json:"chain_stats,omitempty"`
			MempoolStats *ScriptStats `json:"mempool_stats,omitempty"`
		}{a.Address, a.ChainStats, a.MempoolStats})
	}
}

func nonNil(txs []TransactionValue) []TransactionValue {
	if txs == nil {
		return []TransactionValue{}
	}
	return txs
}
