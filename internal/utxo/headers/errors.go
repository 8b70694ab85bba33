package headers

import (
	"errors"
	"fmt"
)

// ErrIntegrity is the root of every header chain integrity failure. Ingestion must
// stop when it is returned.
var ErrIntegrity = errors.New("header chain integrity")

var (
	ErrMissingHeader    = fmt.Errorf("%w: missing header", ErrIntegrity)
	ErrBrokenLinkage    = fmt.Errorf("%w: broken previous hash linkage", ErrIntegrity)
	ErrUnknownForkPoint = fmt.Errorf("%w: unknown fork point", ErrIntegrity)
	ErrNonContiguous    = fmt.Errorf("%w: non contiguous heights", ErrIntegrity)
	ErrPrevHashMismatch = fmt.Errorf("%w: previous hash mismatch", ErrIntegrity)
)
