package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
)

const mempoolScriptUnspentQuery = `
SELECT o.txid, o.vout, o.value
FROM mempool_script_outputs AS o FINAL
LEFT ANTI JOIN (
	SELECT prev_txid, prev_vout
	FROM mempool_script_spends FINAL
	WHERE coin = ? AND network = ? AND script_hash = CAST(? AS FixedString(64))
) AS s ON s.prev_txid = o.txid AND s.prev_vout = o.vout
WHERE o.coin = ? AND o.network = ? AND o.script_hash = CAST(? AS FixedString(64))
ORDER BY o.txid ASC, o.vout ASC`

// MempoolScriptUnspent returns outputs of unconfirmed transactions paying to a
// script hash that no other unconfirmed transaction spends.
func (r *Repository) MempoolScriptUnspent(ctx context.Context, coin model.Coin, network model.Network, hash model.ScriptHash) ([]model.UnspentRow, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("mempool_script_unspent", coin, network, err, start)
	}()

	rows, err := r.conn.Query(ctx, mempoolScriptUnspentQuery, coin, network, hash.String(), coin, network, hash.String())
	if err != nil {
		return nil, fmt.Errorf("query mempool script unspent: %w", err)
	}
	defer closeRows(rows, &err)

	var result []model.UnspentRow
	for rows.Next() {
		var (
			row  model.UnspentRow
			txid string
		)
		if err = rows.Scan(&txid, &row.Vout, &row.Value); err != nil {
			return nil, fmt.Errorf("scan mempool script unspent: %w", err)
		}
		if row.TxID, err = parseHash("txid", txid); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mempool script unspent: %w", err)
	}

	return result, nil
}
