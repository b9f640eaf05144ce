package types

import (
	"encoding/json"
	"errors"
	"fmt"
)

type OwnerKind uint8

const (
	AddressOwner OwnerKind = iota + 1
	ObjectOwner
	SharedOwner
	ImmutableOwner
)

func (k OwnerKind) String() string {
	switch k {
	case AddressOwner:
		return "AddressOwner"
	case ObjectOwner:
		return "ObjectOwner"
	case SharedOwner:
		return "Shared"
	case ImmutableOwner:
		return "Immutable"
	}
	return fmt.Sprintf("OwnerKind(%d)", uint8(k))
}

var ErrUnknownOwner = errors.New("unknown owner variant")

// Owner is the ownership variant of an object.
// Address is set for AddressOwner and ObjectOwner, InitialSharedVersion for Shared.
type Owner struct {
	Kind                 OwnerKind
	Address              Address
	InitialSharedVersion SequenceNumber
}

func NewAddressOwner(addr Address) Owner {
	return Owner{Kind: AddressOwner, Address: addr}
}

func NewObjectOwner(parent ObjectID) Owner {
	return Owner{Kind: ObjectOwner, Address: parent}
}

func NewSharedOwner(initialSharedVersion SequenceNumber) Owner {
	return Owner{Kind: SharedOwner, InitialSharedVersion: initialSharedVersion}
}

func NewImmutableOwner() Owner {
	return Owner{Kind: ImmutableOwner}
}

// OwnerAddress returns the address held by the address- and object-owned variants.
func (o Owner) OwnerAddress() (Address, bool) {
	switch o.Kind {
	case AddressOwner, ObjectOwner:
		return o.Address, true
	default:
		return EmptyAddress, false
	}
}

type sharedOwner struct {
	InitialSharedVersion SequenceNumber `json:"initial_shared_version"`
}

// MarshalJSON renders the owner the way the node does:
// {"AddressOwner":"0x.."}, {"ObjectOwner":"0x.."}, {"Shared":{"initial_shared_version":1}} or "Immutable".
func (o Owner) MarshalJSON() ([]byte, error) {
	switch o.Kind {
	case AddressOwner, ObjectOwner:
		return json.Marshal(map[string]Address{o.Kind.String(): o.Address})
	case SharedOwner:
		return json.Marshal(map[string]sharedOwner{o.Kind.String(): {o.InitialSharedVersion}})
	case ImmutableOwner:
		return json.Marshal(o.Kind.String())
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownOwner, o.Kind)
}

func (o *Owner) UnmarshalJSON(input []byte) error {
	var name string
	if err := json.Unmarshal(input, &name); err == nil {
		if name != ImmutableOwner.String() {
			return fmt.Errorf("%w: %q", ErrUnknownOwner, name)
		}
		*o = NewImmutableOwner()
		return nil
	}

	var variant map[string]json.RawMessage
	if err := json.Unmarshal(input, &variant); err != nil {
		return err
	}
	if len(variant) != 1 {
		return fmt.Errorf("%w: expected a single variant, got %d", ErrUnknownOwner, len(variant))
	}

	for key, body := range variant {
		switch key {
		case AddressOwner.String(), ObjectOwner.String():
			var addr Address
			if err := json.Unmarshal(body, &addr); err != nil {
				return err
			}
			kind := AddressOwner
			if key == ObjectOwner.String() {
				kind = ObjectOwner
			}
			*o = Owner{Kind: kind, Address: addr}
		case SharedOwner.String():
			var shared sharedOwner
			if err := json.Unmarshal(body, &shared); err != nil {
				return err
			}
			*o = NewSharedOwner(shared.InitialSharedVersion)
		default:
			return fmt.Errorf("%w: %q", ErrUnknownOwner, key)
		}
	}
	return nil
}
