package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/address"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/headers"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	HeaderSnapshots interface {
		Snapshot() *headers.List
	}
	AddressResolver interface {
		Resolve(ctx context.Context, input string, mode address.Mode) ([]model.AddressInfo, error)
	}
	HTTPMetrics interface {
		ObserveRequest(route string, code int, started time.Time)
	}
)
