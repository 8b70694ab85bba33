package ingester

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	HeaderSource interface {
		LatestHeight(ctx context.Context) (uint64, error)
		BestBlockHash(ctx context.Context) (chainhash.Hash, error)
		HeaderByHash(ctx context.Context, hash chainhash.Hash) (wire.BlockHeader, error)
		HeaderByHeight(ctx context.Context, height uint64) (wire.BlockHeader, error)
	}
	HeaderStore interface {
		Load(ctx context.Context) (map[chainhash.Hash]wire.BlockHeader, chainhash.Hash, error)
		Save(ctx context.Context, headers []wire.BlockHeader, tip chainhash.Hash) error
	}
	HeaderFollowerMetrics interface {
		ObserveSync(err error, applied int, started time.Time)
		ObserveReorg(replaced uint64)
		SetTip(height uint64)
	}
)
