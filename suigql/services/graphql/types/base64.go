package types

import "encoding/base64"

// Base64 is a byte string rendered in standard padded base64.
type Base64 []byte

func (b Base64) String() string {
	return base64.StdEncoding.EncodeToString(b)
}

func (b Base64) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *Base64) UnmarshalText(input []byte) error {
	raw, err := base64.StdEncoding.DecodeString(string(input))
	if err != nil {
		return err
	}
	*b = raw
	return nil
}
