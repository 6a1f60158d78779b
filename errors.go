package hxkit

import "errors"

// Sentinel errors for state-token operations.
var (
	ErrBadToken     = errors.New("hxkit: malformed state token")
	ErrBadSignature = errors.New("hxkit: state token signature mismatch")
	ErrOpenFailed   = errors.New("hxkit: cannot open sealed state token")
)

// IsTokenError reports whether err came from decoding a state token, as
// opposed to a marshalling or infrastructure failure. Token errors are
// client-caused (stale links, tampering) and usually map to a 4xx.
func IsTokenError(err error) bool {
	return errors.Is(err, ErrBadToken) ||
		errors.Is(err, ErrBadSignature) ||
		errors.Is(err, ErrOpenFailed)
}
