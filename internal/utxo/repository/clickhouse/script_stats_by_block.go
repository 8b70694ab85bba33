package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
)

const scriptStatsByBlockQuery = `
SELECT
	block_hash,
	uniqExact(txid) AS tx_count,
	sum(funded_txo_count) AS funded_txo_count,
	sum(funded_txo_sum) AS funded_txo_sum,
	sum(spent_txo_count) AS spent_txo_count,
	sum(spent_txo_sum) AS spent_txo_sum
FROM utxo_script_history FINAL
WHERE coin = ? AND network = ? AND script_hash = CAST(? AS FixedString(64))
GROUP BY block_hash`

// ScriptStatsByBlock returns the chain stats of a script hash grouped by the block
// holding the transactions. Orphaned blocks are included.
func (r *Repository) ScriptStatsByBlock(ctx context.Context, coin model.Coin, network model.Network, hash model.ScriptHash) ([]model.BlockScriptStats, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("script_stats_by_block", coin, network, err, start)
	}()

	rows, err := r.conn.Query(ctx, scriptStatsByBlockQuery, coin, network, hash.String())
	if err != nil {
		return nil, fmt.Errorf("query script stats by block: %w", err)
	}
	defer closeRows(rows, &err)

	var result []model.BlockScriptStats
	for rows.Next() {
		var (
			blockHash string
			stats     model.ScriptStats
		)
		if err = rows.Scan(
			&blockHash,
			&stats.TxCount,
			&stats.FundedTxoCount,
			&stats.FundedTxoSum,
			&stats.SpentTxoCount,
			&stats.SpentTxoSum,
		); err != nil {
			return nil, fmt.Errorf("scan script stats by block: %w", err)
		}
		row := model.BlockScriptStats{Stats: stats}
		if row.BlockHash, err = parseHash("block_hash", blockHash); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate script stats by block: %w", err)
	}

	return result, nil
}
