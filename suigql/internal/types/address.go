package types

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/NilFoundation/suigql/suigql/common/check"
)

// AddrSize is the expected length of the address (in bytes)
const AddrSize = 32

// Address represents the 32-byte address of an account or an object.
type Address [AddrSize]byte

// ObjectID shares the address space: every object id is a valid address.
type ObjectID = Address

var (
	ErrHexLiteralPrefixMissing = errors.New("hex literal must start with 0x")
	ErrInvalidAddressLength    = errors.New("invalid address length")
)

var (
	EmptyAddress = Address{}

	// Framework package ids.
	StdAddress          = MustParseAddress("0x1")
	SuiFrameworkAddress = MustParseAddress("0x2")
	SystemAddress       = MustParseAddress("0x3")
)

// BytesToAddress returns Address with value b.
// If b is larger than len(a), b will be cropped from the left.
func BytesToAddress(b []byte) Address {
	var a Address
	a.SetBytes(b)
	return a
}

// ParseHexLiteral parses a 0x-prefixed hex string of at most 64 digits.
// Short literals ("0x2") are left-padded with zeros.
func ParseHexLiteral(s string) (Address, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return EmptyAddress, fmt.Errorf("%w: %q", ErrHexLiteralPrefixMissing, s)
	}
	return parseHex(s[2:])
}

// ParseAddress parses a hex string with or without the 0x prefix.
func ParseAddress(s string) (Address, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	return parseHex(s)
}

func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	check.PanicIfErr(err)
	return a
}

func parseHex(digits string) (Address, error) {
	if len(digits) == 0 || len(digits) > 2*AddrSize {
		return EmptyAddress, fmt.Errorf("%w: %d hex digits", ErrInvalidAddressLength, len(digits))
	}
	if len(digits)%2 == 1 {
		digits = "0" + digits
	}
	b, err := hex.DecodeString(digits)
	if err != nil {
		return EmptyAddress, err
	}
	return BytesToAddress(b), nil
}

// Bytes gets the string representation of the underlying address.
func (a Address) Bytes() []byte { return a[:] }

// Hex returns the 0x-prefixed, zero-padded lowercase hex form.
func (a Address) Hex() string {
	return string(a.hex())
}

func (a Address) Equal(b Address) bool {
	return bytes.Equal(a.Bytes(), b.Bytes())
}

func (a Address) IsEmpty() bool {
	return a.Equal(EmptyAddress)
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return a.Hex()
}

func (a Address) hex() []byte {
	var buf [len(a)*2 + 2]byte
	copy(buf[:2], "0x")
	hex.Encode(buf[2:], a[:])
	return buf[:]
}

// Format implements fmt.Formatter.
// Address supports the %v, %s, %q, %x and %X format verbs.
func (a Address) Format(s fmt.State, c rune) {
	switch c {
	case 'v', 's':
		_, _ = s.Write(a.hex())
	case 'q':
		q := []byte{'"'}
		_, _ = s.Write(q)
		_, _ = s.Write(a.hex())
		_, _ = s.Write(q)
	case 'x', 'X':
		h := a.hex()
		if !s.Flag('#') {
			h = h[2:]
		}
		if c == 'X' {
			h = bytes.ToUpper(h)
		}
		_, _ = s.Write(h)
	default:
		fmt.Fprintf(s, "%%!%c(address=%x)", c, a[:])
	}
}

// SetBytes sets the address to the value of b.
// If b is larger than len(a), b will be cropped from the left.
func (a *Address) SetBytes(b []byte) {
	if len(b) > len(a) {
		b = b[len(b)-AddrSize:]
	}
	*a = Address{}
	copy(a[AddrSize-len(b):], b)
}

// MarshalText returns the hex representation of a.
func (a Address) MarshalText() ([]byte, error) {
	return a.hex(), nil
}

func (a *Address) UnmarshalText(input []byte) error {
	parsed, err := ParseAddress(string(input))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Set implements pflag.Value.
func (a *Address) Set(val string) error {
	return a.UnmarshalText([]byte(val))
}

// Type implements pflag.Value.
func (a *Address) Type() string {
	return "Address"
}
