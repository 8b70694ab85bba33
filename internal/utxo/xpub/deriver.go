// Package xpub discovers the used addresses of an extended public key.
package xpub

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/goodnatureofminers/blockinsight7000-indexer/pkg/safe"
)

var (
	ErrInvalidXPub = errors.New("invalid extended public key")
	ErrDerivation  = errors.New("key derivation failed")
	ErrPageLimit   = errors.New("xpub scan page limit reached")
)

// externalBranch is the receive branch, the only one scanned.
const externalBranch = 0

// Derived is an address at a derivation index of the external branch.
type Derived struct {
	Index   uint32
	Address string
}

// Path returns the derivation path relative to the extended key.
func (d Derived) Path() string {
	return Path(d.Index)
}

// Path renders the external branch path of index.
func Path(index uint32) string {
	return fmt.Sprintf("m/%d/%d", externalBranch, index)
}

// Deriver derives pay-to-pubkey-hash addresses along m/0/i.
type Deriver struct {
	branch *hdkeychain.ExtendedKey
	params *chaincfg.Params
}

// NewDeriver parses xpub and derives its external branch. Private keys are rejected.
func NewDeriver(xpub string, params *chaincfg.Params) (*Deriver, error) {
	key, err := hdkeychain.NewKeyFromString(xpub)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidXPub, err)
	}
	if key.IsPrivate() {
		return nil, fmt.Errorf("%w: private keys are not accepted", ErrInvalidXPub)
	}
	branch, err := key.Derive(externalBranch)
	if err != nil {
		return nil, fmt.Errorf("%w: branch %d: %v", ErrDerivation, externalBranch, err)
	}
	return &Deriver{branch: branch, params: params}, nil
}

// Address derives the address at index.
func (d *Deriver) Address(index uint32) (string, error) {
	if index >= hdkeychain.HardenedKeyStart {
		return "", fmt.Errorf("%w: %s is hardened", ErrDerivation, Path(index))
	}
	child, err := d.branch.Derive(index)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrDerivation, Path(index), err)
	}
	addr, err := child.Address(d.params)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrDerivation, Path(index), err)
	}
	return addr.EncodeAddress(), nil
}

// Page derives indices [(page-1)*size, page*size) in ascending order. Pages start at 1.
func (d *Deriver) Page(page, size uint64) ([]Derived, error) {
	if page == 0 || size == 0 {
		return nil, fmt.Errorf("%w: page %d of size %d", ErrDerivation, page, size)
	}
	first, err := safe.Uint32((page - 1) * size)
	if err != nil {
		return nil, fmt.Errorf("%w: page %d: %v", ErrDerivation, page, err)
	}
	last, err := safe.Uint32(page*size - 1)
	if err != nil || last >= hdkeychain.HardenedKeyStart {
		return nil, fmt.Errorf("%w: page %d leaves the non-hardened range", ErrDerivation, page)
	}

	derived := make([]Derived, 0, size)
	for i := first; i <= last; i++ {
		addr, err := d.Address(i)
		if err != nil {
			return nil, err
		}
		derived = append(derived, Derived{Index: i, Address: addr})
	}
	return derived, nil
}
