// Package scripthash converts addresses to the script hashes the address index is keyed by.
package scripthash

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
)

var (
	ErrInvalidAddress     = errors.New("invalid address")
	ErrNetworkMismatch    = fmt.Errorf("%w: address belongs to another network", ErrInvalidAddress)
	ErrUnsupportedNetwork = errors.New("unsupported network")
)

// Converter turns addresses of one network into script hashes.
type Converter struct {
	params *chaincfg.Params
}

// NewConverter initializes a converter for the provided network.
func NewConverter(network model.Network) (*Converter, error) {
	params, err := ParamsForNetwork(network)
	if err != nil {
		return nil, err
	}
	return &Converter{params: params}, nil
}

// Params returns the chain parameters of the converter network.
func (c *Converter) Params() *chaincfg.Params {
	return c.params
}

// FromAddress decodes address and hashes its locking script.
func (c *Converter) FromAddress(address string) (model.ScriptHash, error) {
	decoded, err := btcutil.DecodeAddress(address, c.params)
	if err != nil {
		return model.ScriptHash{}, fmt.Errorf("%w %q: %v", ErrInvalidAddress, address, err)
	}
	if !decoded.IsForNet(c.params) {
		return model.ScriptHash{}, fmt.Errorf("%w: %q is not a %s address", ErrNetworkMismatch, address, c.params.Name)
	}
	script, err := txscript.PayToAddrScript(decoded)
	if err != nil {
		return model.ScriptHash{}, fmt.Errorf("%w %q: %v", ErrInvalidAddress, address, err)
	}
	return FromScript(script), nil
}

// FromScript hashes a locking script.
func FromScript(script []byte) model.ScriptHash {
	return sha256.Sum256(script)
}

// ParamsForNetwork resolves chain parameters, accepting the usual network aliases.
func ParamsForNetwork(network model.Network) (*chaincfg.Params, error) {
	switch strings.ToLower(string(network)) {
	case "main", "mainnet", "bitcoin":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedNetwork, network)
	}
}
