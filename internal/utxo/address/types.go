package address

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Query interface {
		Stats(ctx context.Context, hash model.ScriptHash) (model.Stats, error)
		ChainHistory(ctx context.Context, hash model.ScriptHash, cursor *model.HistoryCursor, limit int) ([]model.HistoryTx, error)
		MempoolHistory(ctx context.Context, hash model.ScriptHash, limit int) ([]model.HistoryTx, error)
		Utxo(ctx context.Context, hash model.ScriptHash) ([]model.Utxo, error)
	}
	TxPreparer interface {
		Prepare(ctx context.Context, txs []model.HistoryTx) ([]model.TransactionValue, error)
	}
	ScriptHasher interface {
		FromAddress(address string) (model.ScriptHash, error)
	}
	XPubScanner interface {
		Scan(ctx context.Context, xpub string, mode Mode) ([]model.AddressInfo, error)
	}
)
