package address

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned for an aggregation mode outside Mode values.
var ErrUnknownMode = errors.New("unknown aggregation mode")

// Mode selects the shape of an AddressInfo.
type Mode int

const (
	// ModeInfo returns stats with chain and mempool transactions.
	ModeInfo Mode = iota
	// ModeStats returns chain and mempool stats only.
	ModeStats
	// ModeUtxo returns unspent outputs only.
	ModeUtxo
)

func (m Mode) String() string {
	switch m {
	case ModeInfo:
		return "info"
	case ModeStats:
		return "stats"
	case ModeUtxo:
		return "utxo"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode maps a route suffix to a mode; the empty string selects ModeInfo.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return ModeInfo, nil
	case "stats":
		return ModeStats, nil
	case "utxo":
		return ModeUtxo, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownMode, s)
	}
}
