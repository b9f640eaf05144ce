package client

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/NilFoundation/suigql/suigql/internal/types"
	"github.com/fardream/go-bcs/bcs"
)

const (
	rawDataTypeMoveObject = "moveObject"
	rawDataTypePackage    = "package"
)

var ErrUnknownRawDataType = errors.New("unknown raw data type")

// RawData is the BCS view of an object: exactly one of MoveObject and Package is set.
type RawData struct {
	MoveObject *RawMoveObject
	Package    *RawMovePackage
}

type RawMoveObject struct {
	Type              string               `json:"type"`
	HasPublicTransfer bool                 `json:"hasPublicTransfer"`
	Version           types.SequenceNumber `json:"version"`
	BcsBytes          []byte               `json:"bcsBytes"`
}

type TypeOrigin struct {
	ModuleName string         `json:"module_name"`
	StructName string         `json:"struct_name"`
	Package    types.ObjectID `json:"package"`
}

type UpgradeInfo struct {
	UpgradedId      types.ObjectID       `json:"upgraded_id"`
	UpgradedVersion types.SequenceNumber `json:"upgraded_version"`
}

type RawMovePackage struct {
	Id              types.ObjectID                 `json:"id"`
	Version         types.SequenceNumber           `json:"version"`
	ModuleMap       map[string][]byte              `json:"moduleMap"`
	TypeOriginTable []TypeOrigin                   `json:"typeOriginTable"`
	LinkageTable    map[types.ObjectID]UpgradeInfo `json:"linkageTable"`
}

type bcsModule struct {
	Name string
	// Module bytecode as standard base64 text, the form the RPC package type carries.
	Code string
}

type bcsLinkage struct {
	Id   types.ObjectID
	Info UpgradeInfo
}

// bcsMovePackage is RawMovePackage with its maps flattened into key-sorted sequences.
type bcsMovePackage struct {
	Id              types.ObjectID
	Version         types.SequenceNumber
	ModuleMap       []bcsModule
	TypeOriginTable []TypeOrigin
	LinkageTable    []bcsLinkage
}

// MarshalBCS serializes the RPC form of the package. Maps are written as sequences sorted by key,
// module bytecode is written as its base64 string.
func (p *RawMovePackage) MarshalBCS() ([]byte, error) {
	names := make([]string, 0, len(p.ModuleMap))
	for name := range p.ModuleMap {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		return bytes.Compare([]byte(a), []byte(b))
	})

	ids := make([]types.ObjectID, 0, len(p.LinkageTable))
	for id := range p.LinkageTable {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b types.ObjectID) int {
		return bytes.Compare(a[:], b[:])
	})

	pkg := bcsMovePackage{
		Id:              p.Id,
		Version:         p.Version,
		ModuleMap:       make([]bcsModule, 0, len(names)),
		TypeOriginTable: p.TypeOriginTable,
		LinkageTable:    make([]bcsLinkage, 0, len(ids)),
	}
	if pkg.TypeOriginTable == nil {
		pkg.TypeOriginTable = []TypeOrigin{}
	}
	for _, name := range names {
		pkg.ModuleMap = append(pkg.ModuleMap, bcsModule{
			Name: name,
			Code: base64.StdEncoding.EncodeToString(p.ModuleMap[name]),
		})
	}
	for _, id := range ids {
		pkg.LinkageTable = append(pkg.LinkageTable, bcsLinkage{Id: id, Info: p.LinkageTable[id]})
	}

	data, err := bcs.Marshal(pkg)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize package %s: %w", p.Id, err)
	}
	return data, nil
}

// Bytes returns the serialized contents: the re-encoded package or the raw move object bytes.
func (r *RawData) Bytes() ([]byte, error) {
	switch {
	case r.Package != nil:
		return r.Package.MarshalBCS()
	case r.MoveObject != nil:
		return r.MoveObject.BcsBytes, nil
	}
	return nil, nil
}

type rawDataTag struct {
	DataType string `json:"dataType"`
}

func (r RawData) MarshalJSON() ([]byte, error) {
	var (
		tag  string
		body any
	)
	switch {
	case r.MoveObject != nil:
		tag, body = rawDataTypeMoveObject, r.MoveObject
	case r.Package != nil:
		tag, body = rawDataTypePackage, r.Package
	default:
		return nil, fmt.Errorf("%w: empty raw data", ErrUnknownRawDataType)
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	return append([]byte(`{"dataType":"`+tag+`",`), data[1:]...), nil
}

func (r *RawData) UnmarshalJSON(input []byte) error {
	var tag rawDataTag
	if err := json.Unmarshal(input, &tag); err != nil {
		return err
	}

	*r = RawData{}
	switch tag.DataType {
	case rawDataTypeMoveObject:
		r.MoveObject = new(RawMoveObject)
		return json.Unmarshal(input, r.MoveObject)
	case rawDataTypePackage:
		r.Package = new(RawMovePackage)
		return json.Unmarshal(input, r.Package)
	}
	return fmt.Errorf("%w: %q", ErrUnknownRawDataType, tag.DataType)
}
