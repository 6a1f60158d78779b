package hxkit

import (
	"errors"

	"github.com/pthm/hxkit/lib/encoding"
)

// Codec signs and seals the state tokens carried by action attributes.
// Alias for encoding.Codec for convenience.
type Codec = encoding.Codec

// NewCodec creates a codec with the given secret key.
//
// Signed tokens (Codec.Sign) are visible but tamper-proof - the right
// default, since they stay debuggable in browser devtools. Sealed tokens
// (Codec.Seal) are fully opaque; use them when state contains anything a
// client shouldn't read.
func NewCodec(key []byte) (*Codec, error) {
	return encoding.NewCodec(key)
}

// DecodeState decodes a token produced by Sign or Seal into v, mapping
// encoding-package errors onto this package's sentinels.
//
// sealed must match how the token was produced; a signed token never opens
// as sealed and vice versa.
func DecodeState(c *Codec, token string, sealed bool, v any) error {
	var err error
	if sealed {
		err = c.Open(token, v)
	} else {
		err = c.Verify(token, v)
	}
	return wrapTokenError(err)
}

// wrapTokenError maps encoding sentinel errors onto hxkit sentinels.
func wrapTokenError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, encoding.ErrBadFormat):
		return ErrBadToken
	case errors.Is(err, encoding.ErrBadSignature):
		return ErrBadSignature
	case errors.Is(err, encoding.ErrOpenFailed):
		return ErrOpenFailed
	default:
		return err
	}
}
