// Package leveldb persists block headers between restarts. Headers are stored
// under "h"+hash as their 80-byte wire encoding and the best tip under "t".
package leveldb

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
)

const (
	headerPrefix = 'h'
	tipKey       = "t"
)

// ErrCorrupt reports a stored record that cannot be decoded.
var ErrCorrupt = errors.New("corrupt header store")

type HeaderStore struct {
	db      *leveldb.DB
	metrics Metrics
	coin    model.Coin
	network model.Network
}

// OpenHeaderStore opens or creates the database at path.
func OpenHeaderStore(path string, metrics Metrics, coin model.Coin, network model.Network) (*HeaderStore, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("open leveldb %s: %w", path, err)
	}
	store, err := NewHeaderStore(db, metrics, coin, network)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func NewHeaderStore(db *leveldb.DB, metrics Metrics, coin model.Coin, network model.Network) (*HeaderStore, error) {
	if db == nil {
		return nil, errors.New("leveldb is required")
	}
	if metrics == nil {
		return nil, errors.New("header store metrics is required")
	}
	return &HeaderStore{db: db, metrics: metrics, coin: coin, network: network}, nil
}

// Load returns every stored header keyed by hash and the stored tip. An empty
// store yields an empty map and the zero hash.
func (s *HeaderStore) Load(ctx context.Context) (map[chainhash.Hash]wire.BlockHeader, chainhash.Hash, error) {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("load_headers", s.coin, s.network, err, start)
	}()

	var tip chainhash.Hash
	raw, err := s.db.Get([]byte(tipKey), nil)
	switch {
	case errors.Is(err, leveldb.ErrNotFound):
		err = nil
		return map[chainhash.Hash]wire.BlockHeader{}, tip, nil
	case err != nil:
		return nil, tip, fmt.Errorf("get tip: %w", err)
	}
	if len(raw) != chainhash.HashSize {
		err = fmt.Errorf("%w: tip has %d bytes", ErrCorrupt, len(raw))
		return nil, tip, err
	}
	copy(tip[:], raw)

	byHash, err := s.loadHeaders(ctx)
	if err != nil {
		return nil, tip, err
	}
	return byHash, tip, nil
}

func (s *HeaderStore) loadHeaders(ctx context.Context) (map[chainhash.Hash]wire.BlockHeader, error) {
	it := s.db.NewIterator(util.BytesPrefix([]byte{headerPrefix}), nil)
	defer it.Release()

	byHash := make(map[chainhash.Hash]wire.BlockHeader)
	for it.Next() {
		if len(byHash)%10_000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		key := it.Key()
		if len(key) != 1+chainhash.HashSize {
			return nil, fmt.Errorf("%w: key has %d bytes", ErrCorrupt, len(key))
		}
		var header wire.BlockHeader
		if err := header.Deserialize(bytes.NewReader(it.Value())); err != nil {
			return nil, fmt.Errorf("%w: decode header: %v", ErrCorrupt, err)
		}
		hash := header.BlockHash()
		if !bytes.Equal(hash[:], key[1:]) {
			return nil, fmt.Errorf("%w: header %s stored under another hash", ErrCorrupt, hash)
		}
		byHash[hash] = header
	}
	if err := it.Error(); err != nil {
		return nil, fmt.Errorf("iterate headers: %w", err)
	}
	return byHash, nil
}

// Save writes headers and the new tip in one synced batch.
func (s *HeaderStore) Save(ctx context.Context, headers []wire.BlockHeader, tip chainhash.Hash) error {
	start := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("save_headers", s.coin, s.network, err, start)
	}()

	if err = ctx.Err(); err != nil {
		return err
	}

	batch := new(leveldb.Batch)
	var buf bytes.Buffer
	for i := range headers {
		buf.Reset()
		if err = headers[i].Serialize(&buf); err != nil {
			return fmt.Errorf("encode header: %w", err)
		}
		hash := headers[i].BlockHash()
		batch.Put(headerKey(hash), bytes.Clone(buf.Bytes()))
	}
	batch.Put([]byte(tipKey), bytes.Clone(tip[:]))

	if err = s.db.Write(batch, &opt.WriteOptions{Sync: true}); err != nil {
		return fmt.Errorf("write headers: %w", err)
	}
	return nil
}

func (s *HeaderStore) Close() error {
	return s.db.Close()
}

func headerKey(hash chainhash.Hash) []byte {
	key := make([]byte, 0, 1+chainhash.HashSize)
	key = append(key, headerPrefix)
	return append(key, hash[:]...)
}
