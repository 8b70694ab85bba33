// Package bitcoin reads block headers from a bitcoind compatible node.
package bitcoin

import (
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/blockinsight7000-indexer/pkg/safe"
)

// HeaderSource serves the header follower from the node RPC.
type HeaderSource struct {
	rpc RPCClient
}

func NewHeaderSource(rpc RPCClient) (*HeaderSource, error) {
	if rpc == nil {
		return nil, errors.New("rpc client is required")
	}
	return &HeaderSource{rpc: rpc}, nil
}

// LatestHeight returns the height of the node's best block.
func (s *HeaderSource) LatestHeight(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	count, err := s.rpc.GetBlockCount()
	if err != nil {
		return 0, fmt.Errorf("get block count: %w", err)
	}
	height, err := safe.Uint64(count)
	if err != nil {
		return 0, fmt.Errorf("block count overflow: %w", err)
	}
	return height, nil
}

func (s *HeaderSource) BestBlockHash(ctx context.Context) (chainhash.Hash, error) {
	if err := ctx.Err(); err != nil {
		return chainhash.Hash{}, err
	}
	hash, err := s.rpc.GetBestBlockHash()
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("get best block hash: %w", err)
	}
	if hash == nil {
		return chainhash.Hash{}, errors.New("node returned no best block hash")
	}
	return *hash, nil
}

func (s *HeaderSource) HeaderByHash(ctx context.Context, hash chainhash.Hash) (wire.BlockHeader, error) {
	if err := ctx.Err(); err != nil {
		return wire.BlockHeader{}, err
	}
	header, err := s.rpc.GetBlockHeader(&hash)
	if err != nil {
		return wire.BlockHeader{}, fmt.Errorf("get block header %s: %w", hash, err)
	}
	if header == nil {
		return wire.BlockHeader{}, fmt.Errorf("node returned no header for %s", hash)
	}
	if got := header.BlockHash(); got != hash {
		return wire.BlockHeader{}, fmt.Errorf("header for %s hashes to %s", hash, got)
	}
	return *header, nil
}

func (s *HeaderSource) HeaderByHeight(ctx context.Context, height uint64) (wire.BlockHeader, error) {
	h, err := safe.Int64(height)
	if err != nil {
		return wire.BlockHeader{}, fmt.Errorf("block height %d exceeds rpc limit: %w", height, err)
	}
	if err := ctx.Err(); err != nil {
		return wire.BlockHeader{}, err
	}
	hash, err := s.rpc.GetBlockHash(h)
	if err != nil {
		return wire.BlockHeader{}, fmt.Errorf("get block hash at height %d: %w", height, err)
	}
	if hash == nil {
		return wire.BlockHeader{}, fmt.Errorf("node returned no hash at height %d", height)
	}
	return s.HeaderByHash(ctx, *hash)
}
