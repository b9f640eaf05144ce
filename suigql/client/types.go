package client

import (
	"encoding/json"
	"fmt"

	"github.com/NilFoundation/suigql/suigql/internal/types"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type ObjectDataOptions struct {
	ShowType                bool `json:"showType"`
	ShowOwner               bool `json:"showOwner"`
	ShowPreviousTransaction bool `json:"showPreviousTransaction"`
	ShowDisplay             bool `json:"showDisplay"`
	ShowContent             bool `json:"showContent"`
	ShowBcs                 bool `json:"showBcs"`
	ShowStorageRebate       bool `json:"showStorageRebate"`
}

// FullObjectContent requests every part of the object the node can render.
func FullObjectContent() *ObjectDataOptions {
	return &ObjectDataOptions{
		ShowType:                true,
		ShowOwner:               true,
		ShowPreviousTransaction: true,
		ShowDisplay:             true,
		ShowContent:             true,
		ShowBcs:                 true,
		ShowStorageRebate:       true,
	}
}

type ObjectResponseQuery struct {
	Filter  json.RawMessage    `json:"filter,omitempty"`
	Options *ObjectDataOptions `json:"options,omitempty"`
}

type ObjectRef struct {
	ObjectId types.ObjectID       `json:"objectId"`
	Version  types.SequenceNumber `json:"version"`
	Digest   types.ObjectDigest   `json:"digest"`
}

// ObjectResponse carries either the object data or the reason it could not be returned.
type ObjectResponse struct {
	Data  *ObjectData          `json:"data,omitempty"`
	Error *ObjectResponseError `json:"error,omitempty"`
}

type ObjectData struct {
	ObjectId            types.ObjectID           `json:"objectId"`
	Version             types.SequenceNumber     `json:"version"`
	Digest              types.ObjectDigest       `json:"digest"`
	Type                *string                  `json:"type,omitempty"`
	Owner               *types.Owner             `json:"owner,omitempty"`
	PreviousTransaction *types.TransactionDigest `json:"previousTransaction,omitempty"`
	StorageRebate       *types.U64               `json:"storageRebate,omitempty"`
	Display             json.RawMessage          `json:"display,omitempty"`
	Content             json.RawMessage          `json:"content,omitempty"`
	Bcs                 *RawData                 `json:"bcs,omitempty"`
}

func (d *ObjectData) Ref() ObjectRef {
	return ObjectRef{ObjectId: d.ObjectId, Version: d.Version, Digest: d.Digest}
}

type ObjectResponseErrorCode string

const (
	ErrCodeNotExists            ObjectResponseErrorCode = "notExists"
	ErrCodeDynamicFieldNotFound ObjectResponseErrorCode = "dynamicFieldNotFound"
	ErrCodeDeleted              ObjectResponseErrorCode = "deleted"
	ErrCodeUnknown              ObjectResponseErrorCode = "unknown"
	ErrCodeDisplayError         ObjectResponseErrorCode = "displayError"
)

type ObjectResponseError struct {
	Code           ObjectResponseErrorCode `json:"code"`
	ObjectId       *types.ObjectID         `json:"object_id,omitempty"`
	ParentObjectId *types.ObjectID         `json:"parent_object_id,omitempty"`
	Version        *types.SequenceNumber   `json:"version,omitempty"`
	Digest         *types.ObjectDigest     `json:"digest,omitempty"`
	Message        string                  `json:"error,omitempty"`
}

func (e *ObjectResponseError) Error() string {
	switch e.Code {
	case ErrCodeNotExists:
		return fmt.Sprintf("Object %s does not exist.", optional(e.ObjectId))
	case ErrCodeDynamicFieldNotFound:
		return fmt.Sprintf("Cannot find dynamic field for parent object %s.", optional(e.ParentObjectId))
	case ErrCodeDeleted:
		return fmt.Sprintf("Object has been deleted object_id: %s at version: %s in digest %s",
			optional(e.ObjectId), optional(e.Version), optional(e.Digest))
	case ErrCodeUnknown:
		return "Unknown Error."
	case ErrCodeDisplayError:
		return "Display Error: " + e.Message
	}
	return fmt.Sprintf("unexpected object error %q", e.Code)
}

func optional[T any](v *T) string {
	if v == nil {
		return "<none>"
	}
	return fmt.Sprint(*v)
}

type ObjectsPage struct {
	Data        []*ObjectResponse `json:"data"`
	NextCursor  *types.ObjectID   `json:"nextCursor"`
	HasNextPage bool              `json:"hasNextPage"`
}

type Balance struct {
	CoinType        string                `json:"coinType"`
	CoinObjectCount uint64                `json:"coinObjectCount"`
	TotalBalance    types.U128            `json:"totalBalance"`
	LockedBalance   map[string]types.U128 `json:"lockedBalance"`
}

type TransactionBlockResponseOptions struct {
	ShowInput          bool `json:"showInput"`
	ShowRawInput       bool `json:"showRawInput"`
	ShowEffects        bool `json:"showEffects"`
	ShowEvents         bool `json:"showEvents"`
	ShowObjectChanges  bool `json:"showObjectChanges"`
	ShowBalanceChanges bool `json:"showBalanceChanges"`
}

func FullTransactionContent() *TransactionBlockResponseOptions {
	return &TransactionBlockResponseOptions{
		ShowInput:          true,
		ShowRawInput:       true,
		ShowEffects:        true,
		ShowEvents:         true,
		ShowObjectChanges:  true,
		ShowBalanceChanges: true,
	}
}

type TransactionBlockResponse struct {
	Digest         types.TransactionDigest  `json:"digest"`
	Transaction    *TransactionBlock        `json:"transaction,omitempty"`
	RawTransaction []byte                   `json:"rawTransaction,omitempty"`
	Effects        *TransactionBlockEffects `json:"effects,omitempty"`
	Events         json.RawMessage          `json:"events,omitempty"`
	ObjectChanges  json.RawMessage          `json:"objectChanges,omitempty"`
	BalanceChanges json.RawMessage          `json:"balanceChanges,omitempty"`
	TimestampMs    *types.U64               `json:"timestampMs,omitempty"`
	Checkpoint     *types.U64               `json:"checkpoint,omitempty"`
	Errors         []string                 `json:"errors,omitempty"`
}

type TransactionBlock struct {
	Data         TransactionBlockData `json:"data"`
	TxSignatures []string             `json:"txSignatures"`
}

type TransactionBlockData struct {
	MessageVersion string          `json:"messageVersion"`
	Transaction    json.RawMessage `json:"transaction,omitempty"`
	Sender         types.Address   `json:"sender"`
	GasData        GasData         `json:"gasData"`
}

type GasData struct {
	Payment []ObjectRef   `json:"payment"`
	Owner   types.Address `json:"owner"`
	Price   types.U64     `json:"price"`
	Budget  types.U64     `json:"budget"`
}

type ExecutionStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type GasCostSummary struct {
	ComputationCost         types.U64 `json:"computationCost"`
	StorageCost             types.U64 `json:"storageCost"`
	StorageRebate           types.U64 `json:"storageRebate"`
	NonRefundableStorageFee types.U64 `json:"nonRefundableStorageFee"`
}

type OwnedObjectRef struct {
	Owner     types.Owner `json:"owner"`
	Reference ObjectRef   `json:"reference"`
}

type TransactionBlockEffects struct {
	MessageVersion    string                    `json:"messageVersion"`
	Status            ExecutionStatus           `json:"status"`
	ExecutedEpoch     types.U64                 `json:"executedEpoch"`
	GasUsed           GasCostSummary            `json:"gasUsed"`
	TransactionDigest types.TransactionDigest   `json:"transactionDigest"`
	GasObject         OwnedObjectRef            `json:"gasObject"`
	Dependencies      []types.TransactionDigest `json:"dependencies,omitempty"`
}

// ProtocolConfigValue is a single typed protocol attribute, encoded by the node as {"<kind>": "<value>"}.
type ProtocolConfigValue struct {
	Kind  string
	Value string
}

var protocolConfigVariants = map[string]string{
	"u16":  "U16",
	"u32":  "U32",
	"u64":  "U64",
	"f64":  "F64",
	"bool": "Bool",
}

// String renders the value as Variant(value), e.g. U64(1000). Unknown kinds are kept as is.
func (v ProtocolConfigValue) String() string {
	kind, ok := protocolConfigVariants[v.Kind]
	if !ok {
		kind = v.Kind
	}
	return kind + "(" + v.Value + ")"
}

func (v ProtocolConfigValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{v.Kind: v.Value})
}

func (v *ProtocolConfigValue) UnmarshalJSON(input []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(input, &raw); err != nil {
		return err
	}
	if len(raw) != 1 {
		return fmt.Errorf("protocol config value must have exactly one kind, got %d", len(raw))
	}
	for kind, value := range raw {
		v.Kind, v.Value = kind, value
	}
	return nil
}

type ProtocolConfigResponse struct {
	MinSupportedProtocolVersion types.U64                                            `json:"minSupportedProtocolVersion"`
	MaxSupportedProtocolVersion types.U64                                            `json:"maxSupportedProtocolVersion"`
	ProtocolVersion             types.U64                                            `json:"protocolVersion"`
	FeatureFlags                *orderedmap.OrderedMap[string, bool]                 `json:"featureFlags"`
	Attributes                  *orderedmap.OrderedMap[string, *ProtocolConfigValue] `json:"attributes"`
}
