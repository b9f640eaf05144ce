package types

import (
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
)

const DigestSize = 32

// Digest is a 32-byte hash rendered in base58.
type Digest [DigestSize]byte

type (
	ObjectDigest      = Digest
	TransactionDigest = Digest
)

var ErrInvalidDigestLength = errors.New("invalid digest length")

// ParseDigest decodes a base58 digest.
func ParseDigest(s string) (Digest, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return Digest{}, fmt.Errorf("invalid digest %q: %w", s, err)
	}
	if len(raw) != DigestSize {
		return Digest{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidDigestLength, DigestSize, len(raw))
	}
	return Digest(raw), nil
}

func (d Digest) Bytes() []byte { return d[:] }

func (d Digest) String() string {
	return base58.Encode(d[:])
}

func (d Digest) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Digest) UnmarshalText(input []byte) error {
	parsed, err := ParseDigest(string(input))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
