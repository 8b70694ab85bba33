package xpub

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/address"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/scripthash"
	"github.com/goodnatureofminers/blockinsight7000-indexer/pkg/workerpool"
)

// Config tunes scanning.
type Config struct {
	// GapLimit is the number of consecutive unused addresses ending a scan.
	GapLimit int
	// PageSize is the number of indices derived at once.
	PageSize uint64
	// Workers bounds concurrent stats queries.
	Workers int
	// MaxPages fails scans needing more pages; 0 disables the cap.
	MaxPages uint64
	// QueriesPerSecond throttles stats queries of one scan; 0 disables throttling.
	QueriesPerSecond int
}

// DefaultConfig returns the standard gap limit and page size.
func DefaultConfig() Config {
	return Config{
		GapLimit: 20,
		PageSize: 100,
		Workers:  10,
	}
}

// Scanner walks the external branch of an xpub until GapLimit consecutive
// addresses without chain or mempool activity are found.
type Scanner struct {
	params     *chaincfg.Params
	hasher     ScriptHasher
	query      StatsQuery
	aggregator Aggregator
	metrics    ScannerMetrics
	cfg        Config
	logger     *zap.Logger
}

// NewScanner builds a Scanner rendering addresses for network.
func NewScanner(
	network model.Network,
	hasher ScriptHasher,
	query StatsQuery,
	aggregator Aggregator,
	metrics ScannerMetrics,
	cfg Config,
	logger *zap.Logger,
) (*Scanner, error) {
	params, err := scripthash.ParamsForNetwork(network)
	if err != nil {
		return nil, err
	}
	if cfg.GapLimit <= 0 || cfg.PageSize == 0 {
		return nil, fmt.Errorf("gap limit and page size must be positive, got %d and %d", cfg.GapLimit, cfg.PageSize)
	}
	if metrics == nil {
		return nil, errors.New("xpub scanner metrics is required")
	}
	return &Scanner{
		params:     params,
		hasher:     hasher,
		query:      query,
		aggregator: aggregator,
		metrics:    metrics,
		cfg:        cfg,
		logger:     logger.With(zap.String("network", string(network))).Named("xpub"),
	}, nil
}

type candidate struct {
	Derived
	hash  model.ScriptHash
	stats model.Stats
}

// Scan returns the AddressInfo of every used address in derivation order.
func (s *Scanner) Scan(ctx context.Context, xpub string, mode address.Mode) (result []model.AddressInfo, err error) {
	started := time.Now()
	derived := 0
	defer func() {
		s.metrics.ObserveScan(err, derived, len(result), started)
	}()

	deriver, err := NewDeriver(xpub, s.params)
	if err != nil {
		return nil, err
	}

	limiter := ratelimit.NewUnlimited()
	if s.cfg.QueriesPerSecond > 0 {
		limiter = ratelimit.New(s.cfg.QueriesPerSecond)
	}
	fetch := func(ctx context.Context, d Derived) (candidate, error) {
		limiter.Take()
		hash, err := s.hasher.FromAddress(d.Address)
		if err != nil {
			return candidate{}, fmt.Errorf("%w: %s: %v", ErrDerivation, d.Path(), err)
		}
		stats, err := s.query.Stats(ctx, hash)
		if err != nil {
			return candidate{}, fmt.Errorf("stats of %s: %w", d.Path(), err)
		}
		return candidate{Derived: d, hash: hash, stats: stats}, nil
	}

	gap := 0
	result = []model.AddressInfo{}
	for page := uint64(1); ; page++ {
		if s.cfg.MaxPages > 0 && page > s.cfg.MaxPages {
			return nil, fmt.Errorf("%w: %d pages", ErrPageLimit, s.cfg.MaxPages)
		}
		batch, err := deriver.Page(page, s.cfg.PageSize)
		if err != nil {
			return nil, err
		}
		derived += len(batch)

		// Stats are fetched one gap window at a time; the stop rule runs in index order.
		for start := 0; start < len(batch); start += s.cfg.GapLimit {
			window := batch[start:min(start+s.cfg.GapLimit, len(batch))]
			candidates, err := workerpool.Map(ctx, s.cfg.Workers, window, fetch)
			if err != nil {
				return nil, err
			}
			for _, p := range candidates {
				if p.stats.IsEmpty() {
					gap++
					if gap >= s.cfg.GapLimit {
						s.logger.Debug("gap limit reached",
							zap.String("last", p.Path()),
							zap.Int("used", len(result)))
						return result, nil
					}
					continue
				}
				gap = 0
				s.logger.Debug("used address", zap.String("path", p.Path()), zap.String("address", p.Address))
				info, err := s.aggregator.Aggregate(ctx, mode, p.Address, p.hash, p.stats)
				if err != nil {
					return nil, err
				}
				result = append(result, info)
			}
		}
	}
}
