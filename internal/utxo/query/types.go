package query

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/headers"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ChainRepository interface {
		ScriptStatsByBlock(ctx context.Context, coin model.Coin, network model.Network, hash model.ScriptHash) ([]model.BlockScriptStats, error)
		ScriptHistory(ctx context.Context, coin model.Coin, network model.Network, hash model.ScriptHash, cursor *model.HistoryCursor, limit int) ([]model.ScriptHistoryRow, error)
		ScriptUnspent(ctx context.Context, coin model.Coin, network model.Network, hash model.ScriptHash) ([]model.UnspentRow, error)
	}
	MempoolRepository interface {
		MempoolScriptStats(ctx context.Context, coin model.Coin, network model.Network, hash model.ScriptHash) (model.ScriptStats, error)
		MempoolScriptHistory(ctx context.Context, coin model.Coin, network model.Network, hash model.ScriptHash, limit int) ([]model.ScriptHistoryRow, error)
		MempoolScriptUnspent(ctx context.Context, coin model.Coin, network model.Network, hash model.ScriptHash) ([]model.UnspentRow, error)
		MempoolSpentOutpoints(ctx context.Context, coin model.Coin, network model.Network, hash model.ScriptHash) ([]model.Outpoint, error)
	}
	HeaderSnapshots interface {
		Snapshot() *headers.List
	}
)
