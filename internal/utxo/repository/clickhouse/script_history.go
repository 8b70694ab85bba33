package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
)

const (
	scriptHistoryQuery = scriptHistoryColumns + `
WHERE coin = ? AND network = ? AND script_hash = CAST(? AS FixedString(64))
ORDER BY block_height DESC, tx_position DESC, block_hash DESC
LIMIT ?`

	scriptHistoryAfterQuery = scriptHistoryColumns + `
WHERE coin = ? AND network = ? AND script_hash = CAST(? AS FixedString(64))
	AND (block_height, tx_position, block_hash) < (?, ?, CAST(? AS FixedString(64)))
ORDER BY block_height DESC, tx_position DESC, block_hash DESC
LIMIT ?`
)

const scriptHistoryColumns = `
SELECT
	txid,
	block_height,
	block_hash,
	tx_position,
	version,
	locktime,
	size,
	weight,
	fee
FROM utxo_script_history FINAL`

// ScriptHistory returns up to limit history rows of a script hash, newest first.
// With a cursor only rows ordered after the cursor are returned.
func (r *Repository) ScriptHistory(
	ctx context.Context,
	coin model.Coin,
	network model.Network,
	hash model.ScriptHash,
	cursor *model.HistoryCursor,
	limit int,
) ([]model.ScriptHistoryRow, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("script_history", coin, network, err, start)
	}()

	if limit <= 0 {
		return nil, nil
	}

	var (
		rows Rows
		args = []any{coin, network, hash.String()}
	)
	if cursor == nil {
		rows, err = r.conn.Query(ctx, scriptHistoryQuery, append(args, limit)...)
	} else {
		rows, err = r.conn.Query(ctx, scriptHistoryAfterQuery, append(args, cursor.BlockHeight, cursor.TxPosition, cursor.BlockHash.String(), limit)...)
	}
	if err != nil {
		return nil, fmt.Errorf("query script history: %w", err)
	}
	defer closeRows(rows, &err)

	var result []model.ScriptHistoryRow
	for rows.Next() {
		var (
			row                 model.ScriptHistoryRow
			txid, blockHash string
		)
		if err = rows.Scan(
			&txid,
			&row.BlockHeight,
			&blockHash,
			&row.TxPosition,
			&row.Version,
			&row.LockTime,
			&row.Size,
			&row.Weight,
			&row.Fee,
		); err != nil {
			return nil, fmt.Errorf("scan script history: %w", err)
		}
		if row.TxID, err = parseHash("txid", txid); err != nil {
			return nil, err
		}
		if row.BlockHash, err = parseHash("block_hash", blockHash); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate script history: %w", err)
	}

	return result, nil
}
