package headers

import (
	"fmt"
	"iter"
	"sync"
	"sync/atomic"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
)

// List is an immutable snapshot of the best header chain. entries[i] is at height i
// and links to entries[i-1].
//
// A snapshot and the one extending it share the backing array and the hash to
// height index. A snapshot only writes past its own length, and only after
// claiming that region of the array, so an older snapshot may find hashes above
// its tip in the index; lookups check the entry found at that height. Cutting the
// chain or branching off an older snapshot copies the kept prefix into a new array
// with a new index, so the index of the latest snapshot holds no replaced hashes.
type List struct {
	entries []Entry
	heights *heightIndex
	arena   *arena
}

type heightIndex struct {
	m sync.Map // chainhash.Hash -> uint64
}

func (h *heightIndex) load(hash chainhash.Hash) (uint64, bool) {
	v, ok := h.m.Load(hash)
	if !ok {
		return 0, false
	}
	return v.(uint64), true
}

func (h *heightIndex) store(hash chainhash.Hash, height uint64) {
	h.m.Store(hash, height)
}

// arena tracks how much of a backing array has been claimed by snapshots.
type arena struct {
	claimed atomic.Int64
}

// Empty returns a list without headers; its tip is the zero hash.
func Empty() *List {
	return &List{
		heights: &heightIndex{},
		arena:   &arena{},
	}
}

// New builds a list from headers keyed by hash, walking back from tip to the
// header with a zero previous hash. Headers not reachable from tip are ignored.
func New(byHash map[chainhash.Hash]wire.BlockHeader, tip chainhash.Hash) (*List, error) {
	list := Empty()
	if tip == (chainhash.Hash{}) {
		return list, nil
	}

	chain := make([]wire.BlockHeader, 0, len(byHash))
	for cur := tip; cur != (chainhash.Hash{}); {
		header, ok := byHash[cur]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingHeader, cur)
		}
		chain = append(chain, header)
		if len(chain) > len(byHash) {
			return nil, fmt.Errorf("%w: cycle reached from tip %s", ErrBrokenLinkage, tip)
		}
		cur = header.PrevBlock
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	entries, err := list.Order(chain)
	if err != nil {
		return nil, err
	}
	return list.Apply(entries)
}

// Order assigns heights to a linked ascending run of headers. The run starts at
// height 0 when the first header has a zero previous hash, otherwise right above
// its parent in this list.
func (l *List) Order(headers []wire.BlockHeader) ([]Entry, error) {
	if len(headers) == 0 {
		return nil, nil
	}

	var height uint64
	if prev := headers[0].PrevBlock; prev != (chainhash.Hash{}) {
		parent, ok := l.HeaderByBlockHash(prev)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownForkPoint, prev)
		}
		height = parent.height + 1
	}

	entries := make([]Entry, len(headers))
	for i, header := range headers {
		entries[i] = NewEntry(height+uint64(i), header)
		if i > 0 && header.PrevBlock != entries[i-1].hash {
			return nil, fmt.Errorf("%w: header %s does not follow %s",
				ErrBrokenLinkage, entries[i].hash, entries[i-1].hash)
		}
	}
	return entries, nil
}

// Apply returns a new list where the chain is cut at the height of the first entry
// and the entries are appended. The receiver is never modified. Applying entries
// already at the tip returns the receiver.
func (l *List) Apply(entries []Entry) (*List, error) {
	if len(entries) == 0 {
		return l, nil
	}
	if err := validateRun(entries); err != nil {
		return nil, err
	}

	from := entries[0].height
	if from > l.Len() {
		return nil, fmt.Errorf("%w: first height %d above chain length %d", ErrNonContiguous, from, l.Len())
	}
	var expected chainhash.Hash
	if from > 0 {
		expected = l.entries[from-1].hash
	}
	if got := entries[0].header.PrevBlock; got != expected {
		return nil, fmt.Errorf("%w: height %d links to %s, chain has %s", ErrPrevHashMismatch, from, got, expected)
	}
	if l.holds(entries) {
		return l, nil
	}

	next := &List{}
	next.entries, next.arena, next.heights = l.extend(from, entries)
	return next, nil
}

func validateRun(entries []Entry) error {
	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1], entries[i]
		if cur.height != prev.height+1 {
			return fmt.Errorf("%w: height %d follows %d", ErrNonContiguous, cur.height, prev.height)
		}
		if cur.header.PrevBlock != prev.hash {
			return fmt.Errorf("%w: header %s does not follow %s", ErrBrokenLinkage, cur.hash, prev.hash)
		}
	}
	return nil
}

// holds reports whether entries are exactly the current top of the chain.
func (l *List) holds(entries []Entry) bool {
	from := entries[0].height
	if from+uint64(len(entries)) != l.Len() {
		return false
	}
	for i, e := range entries {
		if !l.entries[from+uint64(i)].Equal(e) {
			return false
		}
	}
	return true
}

// extend writes entries after entries[:from]. It appends in place when this list
// owns the end of its backing array and copies the kept prefix otherwise; a copy
// gets an index of exactly its own entries.
func (l *List) extend(from uint64, entries []Entry) ([]Entry, *arena, *heightIndex) {
	size := int(from) + len(entries)
	if from == l.Len() && size <= cap(l.entries) &&
		l.arena.claimed.CompareAndSwap(int64(from), int64(size)) {
		for _, e := range entries {
			l.heights.store(e.hash, e.height)
		}
		return append(l.entries, entries...), l.arena, l.heights
	}

	fresh := &arena{}
	fresh.claimed.Store(int64(size))
	buf := make([]Entry, 0, size+size/4+16)
	buf = append(buf, l.entries[:from]...)
	buf = append(buf, entries...)

	heights := &heightIndex{}
	for _, e := range buf {
		heights.store(e.hash, e.height)
	}
	return buf, fresh, heights
}

// HeaderByBlockHash returns the entry holding hash.
func (l *List) HeaderByBlockHash(hash chainhash.Hash) (Entry, bool) {
	height, ok := l.heights.load(hash)
	if !ok {
		return Entry{}, false
	}
	entry, ok := l.HeaderByHeight(height)
	if !ok || entry.hash != hash {
		return Entry{}, false
	}
	return entry, true
}

// HeaderByHeight returns the entry at height.
func (l *List) HeaderByHeight(height uint64) (Entry, bool) {
	if height >= l.Len() {
		return Entry{}, false
	}
	return l.entries[height], true
}

// Equals reports whether both lists end with the same tip entry.
func (l *List) Equals(other *List) bool {
	a, okA := l.Best()
	b, okB := other.Best()
	if okA != okB {
		return false
	}
	return !okA || a.Equal(b)
}

// Tip returns the hash of the last entry, or the zero hash for an empty list.
func (l *List) Tip() chainhash.Hash {
	if best, ok := l.Best(); ok {
		return best.hash
	}
	return chainhash.Hash{}
}

// Best returns the last entry.
func (l *List) Best() (Entry, bool) {
	if len(l.entries) == 0 {
		return Entry{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// Len returns the number of entries, the height of the next block.
func (l *List) Len() uint64 {
	return uint64(len(l.entries))
}

// All yields entries in ascending height order.
func (l *List) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range l.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Status describes the position of a block relative to the best chain.
func (l *List) Status(hash chainhash.Hash) model.BlockStatus {
	entry, ok := l.HeaderByBlockHash(hash)
	if !ok {
		return model.OrphanedBlock()
	}
	var next *chainhash.Hash
	if child, ok := l.HeaderByHeight(entry.height + 1); ok {
		h := child.hash
		next = &h
	}
	return model.ConfirmedBlock(entry.height, next)
}
