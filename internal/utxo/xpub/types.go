package xpub

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/address"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	StatsQuery interface {
		Stats(ctx context.Context, hash model.ScriptHash) (model.Stats, error)
	}
	ScriptHasher interface {
		FromAddress(address string) (model.ScriptHash, error)
	}
	Aggregator interface {
		Aggregate(ctx context.Context, mode address.Mode, addr string, hash model.ScriptHash, stats model.Stats) (model.AddressInfo, error)
	}
	ScannerMetrics interface {
		ObserveScan(err error, derived, used int, started time.Time)
	}
)
