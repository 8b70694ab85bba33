package address

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
)

// HistoryPreparer renders history transactions from the stored summary rows.
type HistoryPreparer struct{}

// Prepare converts txs preserving their order.
func (HistoryPreparer) Prepare(_ context.Context, txs []model.HistoryTx) ([]model.TransactionValue, error) {
	values := make([]model.TransactionValue, 0, len(txs))
	for _, tx := range txs {
		values = append(values, model.TransactionValue{
			TxID:     tx.TxID.String(),
			Version:  tx.Version,
			LockTime: tx.LockTime,
			Size:     tx.Size,
			Weight:   tx.Weight,
			Fee:      tx.Fee,
			Status:   model.NewTxStatus(tx.Block),
		})
	}
	return values, nil
}
