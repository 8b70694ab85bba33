package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
)

const mempoolScriptHistoryQuery = `
SELECT
	txid,
	version,
	locktime,
	size,
	weight,
	fee
FROM mempool_script_history FINAL
WHERE coin = ? AND network = ? AND script_hash = CAST(? AS FixedString(64))
ORDER BY first_seen DESC, txid ASC
LIMIT ?`

// MempoolScriptHistory returns up to limit unconfirmed transactions of a script
// hash, most recently seen first.
func (r *Repository) MempoolScriptHistory(ctx context.Context, coin model.Coin, network model.Network, hash model.ScriptHash, limit int) ([]model.ScriptHistoryRow, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("mempool_script_history", coin, network, err, start)
	}()

	if limit <= 0 {
		return nil, nil
	}


	rows, err := r.conn.Query(ctx, mempoolScriptHistoryQuery, coin, network, hash.String(), limit)
	if err != nil {
		return nil, fmt.Errorf("query mempool script history: %w", err)
	}
	defer closeRows(rows, &err)

	var result []model.ScriptHistoryRow
	for rows.Next() {
		var (
			row  model.ScriptHistoryRow
			txid string
		)
		if err = rows.Scan(
			&txid,
			&row.Version,
			&row.LockTime,
			&row.Size,
			&row.Weight,
			&row.Fee,
		); err != nil {
			return nil, fmt.Errorf("scan mempool script history: %w", err)
		}
		if row.TxID, err = parseHash("txid", txid); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mempool script history: %w", err)
	}

	return result, nil
}
