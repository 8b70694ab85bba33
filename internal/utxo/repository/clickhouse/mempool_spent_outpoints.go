package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
)

const mempoolSpentOutpointsQuery = `
SELECT prev_txid, prev_vout
FROM mempool_script_spends FINAL
WHERE coin = ? AND network = ? AND script_hash = CAST(? AS FixedString(64))`

// MempoolSpentOutpoints returns outputs locked by a script hash that unconfirmed
// transactions spend.
func (r *Repository) MempoolSpentOutpoints(ctx context.Context, coin model.Coin, network model.Network, hash model.ScriptHash) ([]model.Outpoint, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("mempool_spent_outpoints", coin, network, err, start)
	}()

	rows, err := r.conn.Query(ctx, mempoolSpentOutpointsQuery, coin, network, hash.String())
	if err != nil {
		return nil, fmt.Errorf("query mempool spent outpoints: %w", err)
	}
	defer closeRows(rows, &err)

	var result []model.Outpoint
	for rows.Next() {
		var (
			outpoint model.Outpoint
			txid     string
		)
		if err = rows.Scan(&txid, &outpoint.Vout); err != nil {
			return nil, fmt.Errorf("scan mempool spent outpoint: %w", err)
		}
		if outpoint.TxID, err = parseHash("prev_txid", txid); err != nil {
			return nil, err
		}
		result = append(result, outpoint)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mempool spent outpoints: %w", err)
	}

	return result, nil
}
