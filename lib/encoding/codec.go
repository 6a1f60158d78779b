// Package encoding implements the token format hxkit uses to carry state
// through action URLs and hx-vals.
//
// Values are msgpack-marshalled and then either signed (base64 payload plus
// a truncated HMAC-SHA256 tag - visible but tamper-proof) or sealed with
// AES-256-GCM (opaque to clients). Tokens are URL-safe base64 so they embed
// in query strings without escaping.
package encoding

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Sentinel errors returned when a token cannot be decoded.
var (
	ErrBadFormat    = errors.New("encoding: malformed token")
	ErrBadSignature = errors.New("encoding: signature mismatch")
	ErrOpenFailed   = errors.New("encoding: cannot open sealed token")
)

// tagSize is the truncated HMAC length appended to signed tokens.
// 128 bits keeps tokens short while leaving forgery impractical.
const tagSize = 16

// Codec signs and seals state tokens with a single key.
//
// A Codec is safe for concurrent use once constructed.
type Codec struct {
	key []byte
	gcm cipher.AEAD
}

// NewCodec creates a codec from a key. Keys shorter than 32 bytes are
// stretched with SHA-256 so any secret works; 32 random bytes is the
// recommended input.
func NewCodec(key []byte) (*Codec, error) {
	if len(key) < 32 {
		h := sha256.Sum256(key)
		key = h[:]
	}

	block, err := aes.NewCipher(key[:32])
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &Codec{key: key, gcm: gcm}, nil
}

// Sign encodes v as a visible, tamper-proof token: base64(payload).base64(tag).
func (c *Codec) Sign(v any) (string, error) {
	packed, err := msgpack.Marshal(v)
	if err != nil {
		return "", err
	}

	mac := hmac.New(sha256.New, c.key)
	mac.Write(packed)
	tag := mac.Sum(nil)[:tagSize]

	return base64.RawURLEncoding.EncodeToString(packed) + "." +
		base64.RawURLEncoding.EncodeToString(tag), nil
}

// Verify checks a signed token's tag and unmarshals its payload into v.
func (c *Codec) Verify(token string, v any) error {
	payload, tag, ok := strings.Cut(token, ".")
	if !ok {
		return ErrBadFormat
	}

	packed, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return ErrBadFormat
	}
	got, err := base64.RawURLEncoding.DecodeString(tag)
	if err != nil {
		return ErrBadFormat
	}

	mac := hmac.New(sha256.New, c.key)
	mac.Write(packed)
	if !hmac.Equal(got, mac.Sum(nil)[:tagSize]) {
		return ErrBadSignature
	}

	return msgpack.Unmarshal(packed, v)
}

// Seal encodes v as an opaque token using AES-256-GCM with a random nonce
// prefixed to the ciphertext.
func (c *Codec) Seal(v any) (string, error) {
	packed, err := msgpack.Marshal(v)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, c.gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	sealed := c.gcm.Seal(nonce, nonce, packed, nil)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Open decrypts a sealed token and unmarshals its payload into v.
func (c *Codec) Open(token string, v any) error {
	sealed, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return ErrBadFormat
	}
	if len(sealed) < c.gcm.NonceSize() {
		return ErrBadFormat
	}

	nonce, ciphertext := sealed[:c.gcm.NonceSize()], sealed[c.gcm.NonceSize():]
	packed, err := c.gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return ErrOpenFailed
	}

	return msgpack.Unmarshal(packed, v)
}
