package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/scripthash"
	"github.com/goodnatureofminers/blockinsight7000-indexer/internal/utxo/xpub"
)

type config struct {
	XPub    string        `long:"xpub" env:"XPUB_KEY" description:"extended public key" required:"true"`
	Network model.Network `long:"network" env:"XPUB_NETWORK" description:"network rendering the addresses" default:"mainnet"`
	From    uint32        `long:"from" description:"first derivation index of m/0/i" default:"0"`
	Count   uint32        `long:"count" description:"number of addresses to derive" default:"5"`
}

func main() {
	cfg := config{}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(os.Stdout, cfg); err != nil {
		logger.Fatal("derive addresses failed", zap.Error(err))
	}
}

// run prints one "path address scripthash" line per derived index.
func run(w io.Writer, cfg config) error {
	if cfg.Count > math.MaxUint32-cfg.From {
		return fmt.Errorf("range %d+%d overflows the derivation index", cfg.From, cfg.Count)
	}
	converter, err := scripthash.NewConverter(cfg.Network)
	if err != nil {
		return err
	}
	deriver, err := xpub.NewDeriver(cfg.XPub, converter.Params())
	if err != nil {
		return err
	}

	for i := cfg.From; i < cfg.From+cfg.Count; i++ {
		addr, err := deriver.Address(i)
		if err != nil {
			return err
		}
		hash, err := converter.FromAddress(addr)
		if err != nil {
			return fmt.Errorf("script hash of %s: %w", addr, err)
		}
		if _, err := fmt.Fprintf(w, "%s %s %s\n", xpub.Path(i), addr, hash); err != nil {
			return err
		}
	}
	return nil
}
