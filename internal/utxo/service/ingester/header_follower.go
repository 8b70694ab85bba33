// Package ingester keeps the in-memory header chain in step with a full node.
package ingester

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/headers"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-indexer/pkg/workerpool"
)

// ErrCatchUpLimit is returned when the node's best block does not reach a known
// header within the configured number of steps.
var ErrCatchUpLimit = errors.New("catch-up limit reached before a known header")

// HeaderFollowerService restores the header chain from the store, follows the
// node and persists every applied header.
type HeaderFollowerService struct {
	logger      *zap.Logger
	index       *headers.Index
	source      HeaderSource
	store       HeaderStore
	metrics     HeaderFollowerMetrics
	cfg         FollowerConfig
	wait        func(ctx context.Context, d time.Duration, signal <-chan struct{}) error
	blockSignal <-chan struct{}

	// pending holds applied headers not yet persisted.
	pending []wire.BlockHeader
}

func NewHeaderFollowerService(
	index *headers.Index,
	source HeaderSource,
	store HeaderStore,
	metrics HeaderFollowerMetrics,
	cfg FollowerConfig,
	coin model.Coin,
	network model.Network,
	logger *zap.Logger,
	blockSignal <-chan struct{},
) (*HeaderFollowerService, error) {
	logger = logger.With(
		zap.String("coin", string(coin)),
		zap.String("network", string(network)),
	)
	if index == nil {
		return nil, errors.New("header index is required")
	}
	if source == nil {
		return nil, errors.New("header source is required")
	}
	if store == nil {
		return nil, errors.New("header store is required")
	}
	if metrics == nil {
		return nil, errors.New("header follower metrics is required")
	}

	return &HeaderFollowerService{
		logger:      logger.Named("headerFollower"),
		index:       index,
		source:      source,
		store:       store,
		metrics:     metrics,
		cfg:         cfg.withDefaults(),
		wait:        clock.WaitWithSignal,
		blockSignal: blockSignal,
	}, nil
}

// Run restores the stored chain and syncs until ctx is canceled. Integrity
// errors stop the loop; other failures are retried after a back-off.
func (s *HeaderFollowerService) Run(ctx context.Context) error {
	if err := s.Restore(ctx); err != nil {
		s.logger.Error("restore headers failed, halting", zap.Error(err))
		return err
	}

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		err := s.Sync(ctx)
		switch {
		case err == nil:
			if waitErr := s.wait(ctx, s.cfg.PollInterval, s.blockSignal); waitErr != nil {
				return waitErr
			}
		case errors.Is(err, headers.ErrIntegrity):
			s.logger.Error("header chain integrity violated, halting", zap.Error(err))
			return err
		case ctx.Err() != nil:
			return ctx.Err()
		default:
			s.logger.Warn("run iteration failed, backing off", zap.Error(err), zap.Duration("sleep", s.cfg.RetryInterval))
			if waitErr := s.wait(ctx, s.cfg.RetryInterval, nil); waitErr != nil {
				return waitErr
			}
		}
	}
}

// Restore publishes the chain persisted in the store. An empty store leaves the
// index empty.
func (s *HeaderFollowerService) Restore(ctx context.Context) error {
	byHash, tip, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load headers: %w", err)
	}
	if tip == (chainhash.Hash{}) {
		s.logger.Info("header store is empty, bootstrapping from node")
		return nil
	}

	list, err := headers.New(byHash, tip)
	if err != nil {
		return fmt.Errorf("restore headers: %w", err)
	}
	s.index.Replace(list)

	orphans := uint64(len(byHash)) - list.Len()
	s.logger.Info("headers restored", zap.Uint64("headers", list.Len()), zap.Uint64("orphans", orphans))
	s.setTip(list)
	return nil
}

// Sync persists pending headers and then brings the index up to the node's best
// block, fetching by height while far behind and walking back by hash otherwise.
func (s *HeaderFollowerService) Sync(ctx context.Context) (err error) {
	started := time.Now()
	applied := 0
	defer func() {
		s.metrics.ObserveSync(err, applied, started)
	}()

	if err = s.flush(ctx); err != nil {
		return err
	}

	snapshot := s.index.Snapshot()
	latest, err := s.source.LatestHeight(ctx)
	if err != nil {
		return fmt.Errorf("latest height: %w", err)
	}

	var fetched []wire.BlockHeader
	if snapshot.Len() == 0 || latest+1 > snapshot.Len()+s.cfg.CatchUpLimit {
		fetched, err = s.fetchByHeight(ctx, snapshot, latest)
	} else {
		fetched, err = s.catchUp(ctx, snapshot)
	}
	if err != nil {
		return err
	}

	applied, err = s.apply(ctx, fetched)
	return err
}

// fetchByHeight fetches the next batch of heights in parallel and keeps the
// longest prefix that links to the current tip. When the first header does not
// link, the node's branch is walked back from its parent to a known header.
func (s *HeaderFollowerService) fetchByHeight(ctx context.Context, snapshot *headers.List, latest uint64) ([]wire.BlockHeader, error) {
	from := snapshot.Len()
	if from > latest {
		return nil, nil
	}
	to := min(from+s.cfg.BootstrapBatch, latest+1)

	heights := make([]uint64, 0, to-from)
	for h := from; h < to; h++ {
		heights = append(heights, h)
	}
	fetched, err := workerpool.Map(ctx, s.cfg.BootstrapWorkers, heights, func(ctx context.Context, height uint64) (wire.BlockHeader, error) {
		return s.source.HeaderByHeight(ctx, height)
	})
	if err != nil {
		return nil, fmt.Errorf("fetch headers %d..%d: %w", from, to-1, err)
	}

	linked := linkedPrefix(snapshot.Tip(), fetched)
	if len(linked) == 0 {
		anchor := fetched[0].PrevBlock
		s.logger.Debug("fetched headers do not extend the tip, walking back",
			zap.Uint64("from", from), zap.Stringer("parent", anchor))
		back, err := s.walkBack(ctx, snapshot, anchor)
		if err != nil {
			return nil, err
		}
		return append(back, linkedPrefix(anchor, fetched)...), nil
	}
	if len(linked) < len(fetched) {
		s.logger.Debug("node chain changed during fetch, keeping linked prefix",
			zap.Int("kept", len(linked)), zap.Int("fetched", len(fetched)))
	}
	s.logger.Debug("headers fetched by height", zap.Uint64("from", from), zap.Int("count", len(linked)))
	return linked, nil
}

// catchUp returns the headers between the snapshot and the node's best block,
// oldest first.
func (s *HeaderFollowerService) catchUp(ctx context.Context, snapshot *headers.List) ([]wire.BlockHeader, error) {
	best, err := s.source.BestBlockHash(ctx)
	if err != nil {
		return nil, fmt.Errorf("best block hash: %w", err)
	}
	return s.walkBack(ctx, snapshot, best)
}

// walkBack follows previous hashes from hash until a header of snapshot or
// genesis and returns the walked headers oldest first.
func (s *HeaderFollowerService) walkBack(ctx context.Context, snapshot *headers.List, hash chainhash.Hash) ([]wire.BlockHeader, error) {
	var walked []wire.BlockHeader
	for cur := hash; cur != (chainhash.Hash{}); cur = walked[len(walked)-1].PrevBlock {
		if _, ok := snapshot.HeaderByBlockHash(cur); ok {
			break
		}
		if uint64(len(walked)) >= s.cfg.CatchUpLimit {
			return nil, fmt.Errorf("%w: walked %d headers from %s", ErrCatchUpLimit, len(walked), hash)
		}
		header, err := s.source.HeaderByHash(ctx, cur)
		if err != nil {
			return nil, fmt.Errorf("header %s: %w", cur, err)
		}
		walked = append(walked, header)
	}
	slices.Reverse(walked)
	return walked, nil
}

func (s *HeaderFollowerService) apply(ctx context.Context, fetched []wire.BlockHeader) (int, error) {
	if len(fetched) == 0 {
		return 0, nil
	}
	change, err := s.index.Update(fetched)
	if err != nil {
		return 0, fmt.Errorf("apply headers: %w", err)
	}
	if len(change.Applied) == 0 {
		return 0, nil
	}
	if change.Replaced > 0 {
		s.metrics.ObserveReorg(change.Replaced)
	}

	for _, entry := range change.Applied {
		s.pending = append(s.pending, entry.Header())
	}
	s.setTip(s.index.Snapshot())
	return len(change.Applied), s.flush(ctx)
}

func (s *HeaderFollowerService) flush(ctx context.Context) error {
	if len(s.pending) == 0 {
		return nil
	}
	tip := s.index.Snapshot().Tip()
	if err := s.store.Save(ctx, s.pending, tip); err != nil {
		return fmt.Errorf("save headers: %w", err)
	}
	s.pending = nil
	return nil
}

func (s *HeaderFollowerService) setTip(list *headers.List) {
	if best, ok := list.Best(); ok {
		s.metrics.SetTip(best.Height())
	}
}

// linkedPrefix returns the leading headers of fetched that form a chain starting
// at tip. A zero tip accepts a genesis header.
func linkedPrefix(tip chainhash.Hash, fetched []wire.BlockHeader) []wire.BlockHeader {
	prev := tip
	for i := range fetched {
		if fetched[i].PrevBlock != prev {
			return fetched[:i]
		}
		prev = fetched[i].BlockHash()
	}
	return fetched
}
