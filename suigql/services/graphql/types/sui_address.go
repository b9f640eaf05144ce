package types

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

const SuiAddressLength = 32

var ErrInvalidSuiAddress = errors.New("invalid sui address")

// SuiAddress is the GraphQL scalar for 32-byte addresses and object ids,
// rendered as 0x followed by 64 hex digits.
type SuiAddress [SuiAddressLength]byte

func SuiAddressFromArray(a [SuiAddressLength]byte) SuiAddress {
	return SuiAddress(a)
}

func SuiAddressFromBytes(b []byte) (SuiAddress, error) {
	var a SuiAddress
	if len(b) != SuiAddressLength {
		return a, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidSuiAddress, SuiAddressLength, len(b))
	}
	copy(a[:], b)
	return a, nil
}

// ParseSuiAddress accepts 0x-prefixed hex of up to 64 digits; shorter inputs are left-padded with zeros.
func ParseSuiAddress(s string) (SuiAddress, error) {
	digits, ok := strings.CutPrefix(s, "0x")
	if !ok {
		return SuiAddress{}, fmt.Errorf("%w: %q is missing the 0x prefix", ErrInvalidSuiAddress, s)
	}
	if len(digits) == 0 || len(digits) > 2*SuiAddressLength {
		return SuiAddress{}, fmt.Errorf("%w: %q must have 1 to %d hex digits", ErrInvalidSuiAddress, s, 2*SuiAddressLength)
	}
	if len(digits)%2 == 1 {
		digits = "0" + digits
	}

	raw, err := hex.DecodeString(digits)
	if err != nil {
		return SuiAddress{}, fmt.Errorf("%w: %w", ErrInvalidSuiAddress, err)
	}
	var a SuiAddress
	copy(a[SuiAddressLength-len(raw):], raw)
	return a, nil
}

func (a SuiAddress) IntoArray() [SuiAddressLength]byte {
	return a
}

func (a SuiAddress) AsSlice() []byte {
	return a[:]
}

func (a SuiAddress) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

func (a SuiAddress) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *SuiAddress) UnmarshalText(input []byte) error {
	parsed, err := ParseSuiAddress(string(input))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// @component Address address object "An account or object owner."
// @componentprop Address address string true "The 32-byte address."
type Address struct {
	Address SuiAddress `json:"address"`
}

func NewAddress(a SuiAddress) *Address {
	return &Address{Address: a}
}
