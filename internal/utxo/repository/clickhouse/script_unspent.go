package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
)

const scriptUnspentQuery = `
SELECT
	o.txid,
	o.vout,
	o.value,
	o.block_height,
	o.block_hash,
	groupArrayIf(s.block_hash, s.prev_vout = o.vout AND s.prev_txid = o.txid) AS spent_in
FROM utxo_script_outputs AS o FINAL
LEFT JOIN (
	SELECT prev_txid, prev_vout, block_hash
	FROM utxo_script_spends FINAL
	WHERE coin = ? AND network = ? AND script_hash = CAST(? AS FixedString(64))
) AS s ON s.prev_txid = o.txid AND s.prev_vout = o.vout
WHERE o.coin = ? AND o.network = ? AND o.script_hash = CAST(? AS FixedString(64))
GROUP BY o.txid, o.vout, o.value, o.block_height, o.block_hash
ORDER BY o.block_height ASC, o.txid ASC, o.vout ASC`

// ScriptUnspent returns the chain outputs of a script hash with the blocks spending
// them. Outputs and spends of orphaned blocks are included.
func (r *Repository) ScriptUnspent(ctx context.Context, coin model.Coin, network model.Network, hash model.ScriptHash) ([]model.UnspentRow, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("script_unspent", coin, network, err, start)
	}()

	rows, err := r.conn.Query(ctx, scriptUnspentQuery, coin, network, hash.String(), coin, network, hash.String())
	if err != nil {
		return nil, fmt.Errorf("query script unspent: %w", err)
	}
	defer closeRows(rows, &err)

	var result []model.UnspentRow
	for rows.Next() {
		var (
			row             model.UnspentRow
			txid, blockHash string
			spentIn         []string
		)
		if err = rows.Scan(
			&txid,
			&row.Vout,
			&row.Value,
			&row.BlockHeight,
			&blockHash,
			&spentIn,
		); err != nil {
			return nil, fmt.Errorf("scan script unspent: %w", err)
		}
		if row.TxID, err = parseHash("txid", txid); err != nil {
			return nil, err
		}
		if row.BlockHash, err = parseHash("block_hash", blockHash); err != nil {
			return nil, err
		}
		for _, spent := range spentIn {
			spentHash, perr := parseHash("spent_in", spent)
			if perr != nil {
				err = perr
				return nil, err
			}
			row.SpentIn = append(row.SpentIn, spentHash)
		}
		result = append(result, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate script unspent: %w", err)
	}

	return result, nil
}
