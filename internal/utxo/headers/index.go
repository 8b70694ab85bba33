package headers

import (
	"sync"
	"sync/atomic"

	"github.com/btcsuite/btcd/wire"
	"go.uber.org/zap"
)

// Change describes a published update.
type Change struct {
	// Applied holds the entries appended to the chain.
	Applied []Entry
	// Replaced is the number of entries removed from the previous chain.
	Replaced uint64
}

// Index publishes List snapshots. Readers call Snapshot without locking; updates are
// serialized and become visible in a single pointer swap.
type Index struct {
	mu      sync.Mutex
	current atomic.Pointer[List]
	logger  *zap.Logger
}

// NewIndex returns an index holding an empty list.
func NewIndex(logger *zap.Logger) *Index {
	idx := &Index{logger: logger.Named("headers")}
	idx.current.Store(Empty())
	return idx
}

// Snapshot returns the current list. It is never modified afterwards.
func (i *Index) Snapshot() *List {
	return i.current.Load()
}

// Update orders headers against the current list, applies them and publishes the
// result. On error the current list stays published.
func (i *Index) Update(headers []wire.BlockHeader) (Change, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	current := i.current.Load()
	entries, err := current.Order(headers)
	if err != nil {
		return Change{}, err
	}
	next, err := current.Apply(entries)
	if err != nil {
		return Change{}, err
	}
	if next == current {
		return Change{}, nil
	}

	change := Change{Applied: entries}
	if from := entries[0].Height(); from < current.Len() {
		change.Replaced = current.Len() - from
		i.logger.Info("reorg applied",
			zap.Uint64("fork_height", from),
			zap.Uint64("replaced", change.Replaced),
			zap.Int("applied", len(entries)),
			zap.Stringer("old_tip", current.Tip()),
			zap.Stringer("new_tip", next.Tip()))
	} else {
		i.logger.Debug("headers applied",
			zap.Uint64("from", from),
			zap.Int("count", len(entries)),
			zap.Stringer("tip", next.Tip()))
	}

	i.current.Store(next)
	return change, nil
}

// Replace publishes list as the current chain.
func (i *Index) Replace(list *List) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.current.Store(list)
	if best, ok := list.Best(); ok {
		i.logger.Info("header chain loaded", zap.Stringer("best", best))
	}
}
