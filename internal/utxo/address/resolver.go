package address

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
)

const (
	// MultiAddressSeparator joins literal addresses in one request path.
	MultiAddressSeparator = "%7C"
	// XPubPrefix marks inputs handled by the xpub scanner.
	XPubPrefix = "xpub"
)

// ErrXPubUnsupported is returned for xpub inputs when no scanner is configured.
var ErrXPubUnsupported = errors.New("xpub scanning is not configured")

// Request is a classified request input.
type Request struct {
	// Addresses lists literal addresses in input order; empty for xpub inputs.
	Addresses []string
	XPub      bool
}

// Classify decides whether input is an xpub, a batch of literal addresses or a
// single address. A decoded "|" separates addresses like its escaped form.
func Classify(input string) Request {
	if strings.HasPrefix(input, XPubPrefix) {
		return Request{XPub: true}
	}
	normalized := strings.ReplaceAll(input, MultiAddressSeparator, "|")
	normalized = strings.ReplaceAll(normalized, strings.ToLower(MultiAddressSeparator), "|")
	if strings.Contains(normalized, "|") {
		return Request{Addresses: strings.Split(normalized, "|")}
	}
	return Request{Addresses: []string{input}}
}

// Resolver answers address requests for literal addresses and xpubs.
type Resolver struct {
	hasher     ScriptHasher
	query      Query
	aggregator *Aggregator
	scanner    XPubScanner
	logger     *zap.Logger
}

// NewResolver builds a Resolver. scanner may be nil, xpub inputs then fail with
// ErrXPubUnsupported.
func NewResolver(hasher ScriptHasher, query Query, aggregator *Aggregator, scanner XPubScanner, logger *zap.Logger) *Resolver {
	return &Resolver{
		hasher:     hasher,
		query:      query,
		aggregator: aggregator,
		scanner:    scanner,
		logger:     logger.Named("resolver"),
	}
}

// Resolve classifies input and returns results in input or derivation order.
func (r *Resolver) Resolve(ctx context.Context, input string, mode Mode) ([]model.AddressInfo, error) {
	req := Classify(input)
	if req.XPub {
		if r.scanner == nil {
			return nil, ErrXPubUnsupported
		}
		return r.scanner.Scan(ctx, input, mode)
	}
	return r.ResolveLiteral(ctx, req.Addresses, mode)
}

// ResolveLiteral aggregates every address in order. Addresses that cannot be
// converted to a script hash are left out of the result.
func (r *Resolver) ResolveLiteral(ctx context.Context, addresses []string, mode Mode) ([]model.AddressInfo, error) {
	result := make([]model.AddressInfo, 0, len(addresses))
	for _, address := range addresses {
		hash, err := r.hasher.FromAddress(address)
		if err != nil {
			r.logger.Debug("skipping address", zap.String("address", address), zap.Error(err))
			continue
		}

		stats, err := r.query.Stats(ctx, hash)
		if err != nil {
			return nil, fmt.Errorf("stats of %s: %w", address, err)
		}
		info, err := r.aggregator.Aggregate(ctx, mode, address, hash, stats)
		if err != nil {
			return nil, err
		}
		result = append(result, info)
	}
	return result, nil
}
