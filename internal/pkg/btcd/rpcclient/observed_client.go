// Package rpcclient decorates the btcd rpc client with call metrics.
package rpcclient

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
	// Client is the subset of *rpcclient.Client the header follower calls.
	Client interface {
		GetBlockCount() (int64, error)
		GetBlockHash(blockHeight int64) (*chainhash.Hash, error)
		GetBestBlockHash() (*chainhash.Hash, error)
		GetBlockHeader(blockHash *chainhash.Hash) (*wire.BlockHeader, error)
	}
)

type ObservedClient struct {
	client     Client
	rpcMetrics RPCMetrics
}

func NewObservedClient(client Client, rpcMetrics RPCMetrics) *ObservedClient {
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

func (r *ObservedClient) GetBlockCount() (count int64, err error) {
	defer r.observe("get_block_count", time.Now(), &err)
	return r.client.GetBlockCount()
}

func (r *ObservedClient) GetBlockHash(blockHeight int64) (hash *chainhash.Hash, err error) {
	defer r.observe("get_block_hash", time.Now(), &err)
	return r.client.GetBlockHash(blockHeight)
}

func (r *ObservedClient) GetBestBlockHash() (hash *chainhash.Hash, err error) {
	defer r.observe("get_best_block_hash", time.Now(), &err)
	return r.client.GetBestBlockHash()
}

func (r *ObservedClient) GetBlockHeader(blockHash *chainhash.Hash) (header *wire.BlockHeader, err error) {
	defer r.observe("get_block_header", time.Now(), &err)
	return r.client.GetBlockHeader(blockHash)
}

func (r *ObservedClient) observe(operation string, started time.Time, err *error) {
	r.rpcMetrics.Observe(operation, *err, started)
}
