package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
)

// BigInt is an arbitrary precision integer.
// It is encoded as a decimal string; decoding also accepts a JSON number.
type BigInt struct {
	v big.Int
}

func NewBigInt(v uint64) *BigInt {
	b := new(BigInt)
	b.v.SetUint64(v)
	return b
}

func NewBigIntFromBig(v *big.Int) *BigInt {
	b := new(BigInt)
	b.v.Set(v)
	return b
}

func ParseBigInt(s string) (*BigInt, error) {
	b := new(BigInt)
	if _, ok := b.v.SetString(s, 10); !ok {
		return nil, fmt.Errorf("invalid big integer %q", s)
	}
	return b, nil
}

// Int returns a copy of the value.
func (b *BigInt) Int() *big.Int {
	return new(big.Int).Set(&b.v)
}

func (b *BigInt) Cmp(other *BigInt) int {
	return b.v.Cmp(&other.v)
}

func (b *BigInt) String() string {
	return b.v.String()
}

func (b *BigInt) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, b.v.String()), nil
}

func (b *BigInt) UnmarshalJSON(input []byte) error {
	s := string(bytes.TrimSpace(input))
	if len(s) > 0 && s[0] == '"' {
		if err := json.Unmarshal(input, &s); err != nil {
			return err
		}
	}
	parsed, err := ParseBigInt(s)
	if err != nil {
		return err
	}
	b.v.Set(&parsed.v)
	return nil
}
