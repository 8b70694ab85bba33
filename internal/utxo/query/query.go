// Package query answers address index lookups. Chain rows are kept only when their
// block is on the best chain of the current header snapshot, so rows written for
// blocks that were later reorganized away are never returned.
package query

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/headers"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
)

// maxHistoryRounds bounds refetching when orphaned rows shrink a history page.
const maxHistoryRounds = 8

type Query struct {
	chain   ChainRepository
	mempool MempoolRepository
	headers HeaderSnapshots
	coin    model.Coin
	network model.Network
}

func New(chain ChainRepository, mempool MempoolRepository, snapshots HeaderSnapshots, coin model.Coin, network model.Network) *Query {
	return &Query{
		chain:   chain,
		mempool: mempool,
		headers: snapshots,
		coin:    coin,
		network: network,
	}
}

// Stats sums the chain stats of best chain blocks and reads the mempool stats.
func (q *Query) Stats(ctx context.Context, hash model.ScriptHash) (model.Stats, error) {
	snapshot := q.headers.Snapshot()

	byBlock, err := q.chain.ScriptStatsByBlock(ctx, q.coin, q.network, hash)
	if err != nil {
		return model.Stats{}, fmt.Errorf("chain stats: %w", err)
	}
	var stats model.Stats
	for _, row := range byBlock {
		if _, ok := snapshot.HeaderByBlockHash(row.BlockHash); ok {
			stats.Chain.Add(row.Stats)
		}
	}

	if stats.Mempool, err = q.mempool.MempoolScriptStats(ctx, q.coin, q.network, hash); err != nil {
		return model.Stats{}, fmt.Errorf("mempool stats: %w", err)
	}
	return stats, nil
}

// ChainHistory returns up to limit confirmed transactions after cursor, newest
// first, each paired with its block. Pages resume from the last fetched row
// including its block hash, so best chain rows tied with orphaned rows are kept.
func (q *Query) ChainHistory(ctx context.Context, hash model.ScriptHash, cursor *model.HistoryCursor, limit int) ([]model.HistoryTx, error) {
	if limit <= 0 {
		return []model.HistoryTx{}, nil
	}
	snapshot := q.headers.Snapshot()

	result := make([]model.HistoryTx, 0, limit)
	for round := 0; round < maxHistoryRounds && len(result) < limit; round++ {
		want := limit - len(result)
		rows, err := q.chain.ScriptHistory(ctx, q.coin, q.network, hash, cursor, want)
		if err != nil {
			return nil, fmt.Errorf("chain history: %w", err)
		}
		for _, row := range rows {
			if entry, ok := confirmed(snapshot, row.BlockHash); ok {
				result = append(result, historyTx(row, &entry))
			}
		}
		if len(rows) < want {
			break
		}
		last := rows[len(rows)-1]
		cursor = &model.HistoryCursor{BlockHeight: last.BlockHeight, TxPosition: last.TxPosition, BlockHash: last.BlockHash}
	}
	return result, nil
}

// MempoolHistory returns up to limit unconfirmed transactions.
func (q *Query) MempoolHistory(ctx context.Context, hash model.ScriptHash, limit int) ([]model.HistoryTx, error) {
	rows, err := q.mempool.MempoolScriptHistory(ctx, q.coin, q.network, hash, limit)
	if err != nil {
		return nil, fmt.Errorf("mempool history: %w", err)
	}
	result := make([]model.HistoryTx, 0, len(rows))
	for _, row := range rows {
		result = append(result, historyTx(row, nil))
	}
	return result, nil
}

// Utxo returns outputs unspent on the best chain that the mempool does not spend,
// followed by unspent mempool outputs.
func (q *Query) Utxo(ctx context.Context, hash model.ScriptHash) ([]model.Utxo, error) {
	snapshot := q.headers.Snapshot()

	chainRows, err := q.chain.ScriptUnspent(ctx, q.coin, q.network, hash)
	if err != nil {
		return nil, fmt.Errorf("chain unspent: %w", err)
	}
	mempoolSpent, err := q.mempool.MempoolSpentOutpoints(ctx, q.coin, q.network, hash)
	if err != nil {
		return nil, fmt.Errorf("mempool spends: %w", err)
	}
	mempoolRows, err := q.mempool.MempoolScriptUnspent(ctx, q.coin, q.network, hash)
	if err != nil {
		return nil, fmt.Errorf("mempool unspent: %w", err)
	}

	spent := make(map[model.Outpoint]struct{}, len(mempoolSpent))
	for _, o := range mempoolSpent {
		spent[o] = struct{}{}
	}

	result := make([]model.Utxo, 0, len(chainRows)+len(mempoolRows))
	for _, row := range chainRows {
		entry, ok := confirmed(snapshot, row.BlockHash)
		if !ok || spentOnChain(snapshot, row.SpentIn) {
			continue
		}
		if _, ok := spent[model.Outpoint{TxID: row.TxID, Vout: row.Vout}]; ok {
			continue
		}
		block := entry.BlockID()
		result = append(result, model.Utxo{TxID: row.TxID, Vout: row.Vout, Value: row.Value, Block: &block})
	}
	for _, row := range mempoolRows {
		result = append(result, model.Utxo{TxID: row.TxID, Vout: row.Vout, Value: row.Value})
	}
	return result, nil
}

func confirmed(snapshot *headers.List, blockHash chainhash.Hash) (headers.Entry, bool) {
	return snapshot.HeaderByBlockHash(blockHash)
}

func spentOnChain(snapshot *headers.List, blocks []chainhash.Hash) bool {
	for _, b := range blocks {
		if _, ok := snapshot.HeaderByBlockHash(b); ok {
			return true
		}
	}
	return false
}

func historyTx(row model.ScriptHistoryRow, entry *headers.Entry) model.HistoryTx {
	tx := model.HistoryTx{
		TxID:     row.TxID,
		Version:  row.Version,
		LockTime: row.LockTime,
		Size:     row.Size,
		Weight:   row.Weight,
		Fee:      row.Fee,
	}
	if entry != nil {
		block := entry.BlockID()
		tx.Block = &block
	}
	return tx
}
