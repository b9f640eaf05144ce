package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"

	"github.com/holiman/uint256"
)

// SequenceNumber is an object version.
// It is encoded as a JSON number but decoded from either a number or a decimal string.
type SequenceNumber uint64

func (s *SequenceNumber) UnmarshalJSON(input []byte) error {
	v, err := unmarshalUint64(input)
	if err != nil {
		return fmt.Errorf("invalid sequence number: %w", err)
	}
	*s = SequenceNumber(v)
	return nil
}

// U64 is a uint64 that the node encodes as a decimal string to keep it safe for JavaScript clients.
type U64 uint64

func (u U64) String() string {
	return strconv.FormatUint(uint64(u), 10)
}

func (u U64) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, u.String()), nil
}

func (u *U64) UnmarshalJSON(input []byte) error {
	v, err := unmarshalUint64(input)
	if err != nil {
		return err
	}
	*u = U64(v)
	return nil
}

func unmarshalUint64(input []byte) (uint64, error) {
	input = bytes.TrimSpace(input)
	if len(input) >= 2 && input[0] == '"' && input[len(input)-1] == '"' {
		input = input[1 : len(input)-1]
	}
	return strconv.ParseUint(string(input), 10, 64)
}

// U128 holds values the node keeps as 128-bit integers (coin balances), encoded as decimal strings.
type U128 struct {
	uint256.Int
}

var maxU128 = new(uint256.Int).Sub(new(uint256.Int).Lsh(uint256.NewInt(1), 128), uint256.NewInt(1))

func NewU128(v uint64) U128 {
	return U128{*uint256.NewInt(v)}
}

func ParseU128(s string) (U128, error) {
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return U128{}, fmt.Errorf("invalid u128 %q: %w", s, err)
	}
	if v.Gt(maxU128) {
		return U128{}, fmt.Errorf("invalid u128 %q: value overflows 128 bits", s)
	}
	return U128{*v}, nil
}

// String returns the decimal representation.
func (u U128) String() string {
	return u.Int.Dec()
}

func (u U128) ToBig() *big.Int {
	return u.Int.ToBig()
}

func (u U128) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, u.String()), nil
}

func (u *U128) UnmarshalJSON(input []byte) error {
	var s string
	if len(input) > 0 && input[0] == '"' {
		if err := json.Unmarshal(input, &s); err != nil {
			return err
		}
	} else {
		s = string(bytes.TrimSpace(input))
	}
	parsed, err := ParseU128(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
