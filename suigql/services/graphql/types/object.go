package types

import "fmt"

type ObjectKind uint8

const (
	// ObjectKindOwned objects are owned by an account address.
	ObjectKindOwned ObjectKind = iota + 1
	// ObjectKindChild objects are owned by another object.
	ObjectKindChild
	ObjectKindShared
	ObjectKindImmutable
)

var objectKindNames = map[ObjectKind]string{
	ObjectKindOwned:     "OWNED",
	ObjectKindChild:     "CHILD",
	ObjectKindShared:    "SHARED",
	ObjectKindImmutable: "IMMUTABLE",
}

func (k ObjectKind) String() string {
	if name, ok := objectKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ObjectKind(%d)", uint8(k))
}

func (k ObjectKind) MarshalText() ([]byte, error) {
	if _, ok := objectKindNames[k]; !ok {
		return nil, fmt.Errorf("unknown object kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}

func (k *ObjectKind) UnmarshalText(input []byte) error {
	for kind, name := range objectKindNames {
		if name == string(input) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown object kind %q", input)
}

// @component Object object object "An object at a specific version."
// @componentprop Version version integer true "The object version."
// @componentprop Digest digest string true "The base58 digest of the object contents."
// @componentprop StorageRebate storageRebate integer false "The storage rebate refunded when the object is deleted."
// @componentprop Address address string true "The object id."
// @componentprop Owner owner string false "The owning address or parent object; absent for shared and immutable objects."
// @componentprop Bcs bcs string false "Base64 BCS of the object contents."
// @componentprop PreviousTransaction previousTransaction string false "The digest of the transaction that last modified the object."
// @componentprop Kind kind string false "OWNED, CHILD, SHARED or IMMUTABLE."
type Object struct {
	Version             uint64      `json:"version"`
	Digest              string      `json:"digest"`
	StorageRebate       *uint64     `json:"storageRebate,omitempty"`
	Address             SuiAddress  `json:"address"`
	Owner               *SuiAddress `json:"owner,omitempty"`
	Bcs                 *Base64     `json:"bcs,omitempty"`
	PreviousTransaction *string     `json:"previousTransaction,omitempty"`
	Kind                *ObjectKind `json:"kind,omitempty"`
}

// ObjectFilter narrows object queries down by type, owner or ids.
type ObjectFilter struct {
	Package    *SuiAddress  `json:"package,omitempty"`
	Module     *string      `json:"module,omitempty"`
	Ty         *string      `json:"ty,omitempty"`
	Owner      *SuiAddress  `json:"owner,omitempty"`
	ObjectIds  []SuiAddress `json:"objectIds,omitempty"`
	ObjectKeys []ObjectKey  `json:"objectKeys,omitempty"`
}

type ObjectKey struct {
	ObjectId SuiAddress `json:"objectId"`
	Version  uint64     `json:"version"`
}
