// Package address assembles address results from the chain and mempool indexes and
// resolves request inputs naming one address, a batch of addresses or an xpub.
package address

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
)

// Config bounds the transactions returned in ModeInfo.
type Config struct {
	ChainTxsPerPage int
	MaxMempoolTxs   int
}

// DefaultConfig returns the limits used by the REST routes.
func DefaultConfig() Config {
	return Config{
		ChainTxsPerPage: 25,
		MaxMempoolTxs:   50,
	}
}

// Aggregator builds AddressInfo values. It holds no mutable state.
type Aggregator struct {
	query    Query
	preparer TxPreparer
	cfg      Config
}

// NewAggregator builds an Aggregator. A nil preparer selects HistoryPreparer.
func NewAggregator(query Query, preparer TxPreparer, cfg Config) *Aggregator {
	if preparer == nil {
		preparer = HistoryPreparer{}
	}
	return &Aggregator{
		query:    query,
		preparer: preparer,
		cfg:      cfg,
	}
}

// Aggregate produces the AddressInfo shape selected by mode for an address whose
// stats are already known.
func (a *Aggregator) Aggregate(ctx context.Context, mode Mode, address string, hash model.ScriptHash, stats model.Stats) (model.AddressInfo, error) {
	switch mode {
	case ModeInfo:
		return a.info(ctx, address, hash, stats)
	case ModeStats:
		return model.NewAddressStats(address, stats), nil
	case ModeUtxo:
		return a.utxo(ctx, address, hash)
	default:
		return model.AddressInfo{}, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}
}

func (a *Aggregator) info(ctx context.Context, address string, hash model.ScriptHash, stats model.Stats) (model.AddressInfo, error) {
	chainHistory, err := a.query.ChainHistory(ctx, hash, nil, a.cfg.ChainTxsPerPage)
	if err != nil {
		return model.AddressInfo{}, fmt.Errorf("chain history of %s: %w", address, err)
	}
	mempoolHistory, err := a.query.MempoolHistory(ctx, hash, a.cfg.MaxMempoolTxs)
	if err != nil {
		return model.AddressInfo{}, fmt.Errorf("mempool history of %s: %w", address, err)
	}

	chainTxs, err := a.preparer.Prepare(ctx, chainHistory)
	if err != nil {
		return model.AddressInfo{}, fmt.Errorf("prepare chain txs of %s: %w", address, err)
	}
	mempoolTxs, err := a.preparer.Prepare(ctx, mempoolHistory)
	if err != nil {
		return model.AddressInfo{}, fmt.Errorf("prepare mempool txs of %s: %w", address, err)
	}
	return model.NewAddressInfo(address, stats, chainTxs, mempoolTxs), nil
}

func (a *Aggregator) utxo(ctx context.Context, address string, hash model.ScriptHash) (model.AddressInfo, error) {
	utxos, err := a.query.Utxo(ctx, hash)
	if err != nil {
		return model.AddressInfo{}, fmt.Errorf("utxo of %s: %w", address, err)
	}
	values := make([]model.UtxoValue, 0, len(utxos))
	for _, u := range utxos {
		values = append(values, model.NewUtxoValue(u))
	}
	return model.NewAddressUtxo(address, values), nil
}
