package types

import (
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// SignatureScheme is the flag byte prepended to a public key before hashing it into an address.
type SignatureScheme byte

const (
	SchemeEd25519   SignatureScheme = 0x00
	SchemeSecp256k1 SignatureScheme = 0x01
	SchemeSecp256r1 SignatureScheme = 0x02
)

func (s SignatureScheme) publicKeySize() int {
	switch s {
	case SchemeEd25519:
		return 32
	case SchemeSecp256k1, SchemeSecp256r1:
		return 33
	}
	return 0
}

func (s SignatureScheme) String() string {
	switch s {
	case SchemeEd25519:
		return "ed25519"
	case SchemeSecp256k1:
		return "secp256k1"
	case SchemeSecp256r1:
		return "secp256r1"
	}
	return fmt.Sprintf("SignatureScheme(%d)", byte(s))
}

func ParseSignatureScheme(name string) (SignatureScheme, error) {
	for _, s := range []SignatureScheme{SchemeEd25519, SchemeSecp256k1, SchemeSecp256r1} {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown signature scheme %q", name)
}

// AddressFromPublicKey derives the account address: blake2b-256(flag || pubkey).
// Compressed keys are expected for the secp curves.
func AddressFromPublicKey(scheme SignatureScheme, pubKey []byte) (Address, error) {
	size := scheme.publicKeySize()
	if size == 0 {
		return EmptyAddress, fmt.Errorf("unsupported signature scheme %s", scheme)
	}
	if len(pubKey) != size {
		return EmptyAddress, fmt.Errorf("%s public key must be %d bytes, got %d", scheme, size, len(pubKey))
	}

	data := make([]byte, 0, 1+len(pubKey))
	data = append(data, byte(scheme))
	data = append(data, pubKey...)
	return Address(blake2b.Sum256(data)), nil
}
