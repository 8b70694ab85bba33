package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
)

const mempoolScriptStatsQuery = `
SELECT
	uniqExact(txid) AS tx_count,
	sum(funded_txo_count) AS funded_txo_count,
	sum(funded_txo_sum) AS funded_txo_sum,
	sum(spent_txo_count) AS spent_txo_count,
	sum(spent_txo_sum) AS spent_txo_sum
FROM mempool_script_history FINAL
WHERE coin = ? AND network = ? AND script_hash = CAST(? AS FixedString(64))`

// MempoolScriptStats returns the unconfirmed stats of a script hash.
func (r *Repository) MempoolScriptStats(ctx context.Context, coin model.Coin, network model.Network, hash model.ScriptHash) (model.ScriptStats, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("mempool_script_stats", coin, network, err, start)
	}()

	rows, err := r.conn.Query(ctx, mempoolScriptStatsQuery, coin, network, hash.String())
	if err != nil {
		return model.ScriptStats{}, fmt.Errorf("query mempool script stats: %w", err)
	}
	defer closeRows(rows, &err)

	var stats model.ScriptStats
	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.ScriptStats{}, fmt.Errorf("iterate mempool script stats: %w", err)
		}
		return stats, nil
	}
	if err = rows.Scan(
		&stats.TxCount,
		&stats.FundedTxoCount,
		&stats.FundedTxoSum,
		&stats.SpentTxoCount,
		&stats.SpentTxoSum,
	); err != nil {
		return model.ScriptStats{}, fmt.Errorf("scan mempool script stats: %w", err)
	}

	return stats, nil
}
