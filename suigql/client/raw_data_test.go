package client

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/NilFoundation/suigql/suigql/internal/types"
	"github.com/stretchr/testify/require"
)

const rawPackageJson = `{
	"dataType": "package",
	"id": "0x0000000000000000000000000000000000000000000000000000000000000007",
	"version": 3,
	"moduleMap": {"zeta": "AQI=", "alpha": "oRzrCw=="},
	"typeOriginTable": [
		{"module_name": "alpha", "struct_name": "Pool", "package": "0x7"}
	],
	"linkageTable": {
		"0x1000000000000000000000000000000000000000000000000000000000000000": {
			"upgraded_id": "0x22", "upgraded_version": 5
		},
		"0x2": {"upgraded_id": "0x12", "upgraded_version": 1}
	}
}`

// Module names, then linkage ids, are written in ascending order regardless of the input order.
const rawPackageBcsHex = "0000000000000000000000000000000000000000000000000000000000000007" +
	"0300000000000000" +
	"02" + "05616c706861" + "08" + "6f527a7243773d3d" + "047a657461" + "04" + "4151493d" +
	"01" + "05616c706861" + "04506f6f6c" + "0000000000000000000000000000000000000000000000000000000000000007" +
	"02" +
	"0000000000000000000000000000000000000000000000000000000000000002" +
	"0000000000000000000000000000000000000000000000000000000000000012" + "0100000000000000" +
	"1000000000000000000000000000000000000000000000000000000000000000" +
	"0000000000000000000000000000000000000000000000000000000000000022" + "0500000000000000"

func TestRawPackageBcs(t *testing.T) {
	t.Parallel()

	var raw RawData
	require.NoError(t, json.Unmarshal([]byte(rawPackageJson), &raw))
	require.Nil(t, raw.MoveObject)
	require.NotNil(t, raw.Package)
	require.Equal(t, types.MustParseAddress("0x7"), raw.Package.Id)

	expected, err := hex.DecodeString(rawPackageBcsHex)
	require.NoError(t, err)
	data, err := raw.Package.MarshalBCS()
	require.NoError(t, err)
	require.Equal(t, expected, data)

	data, err = raw.Bytes()
	require.NoError(t, err)
	require.Equal(t, expected, data)
}

func TestRawPackageBcsEmptyTables(t *testing.T) {
	t.Parallel()

	pkg := &RawMovePackage{Id: types.SuiFrameworkAddress, Version: 1}
	data, err := pkg.MarshalBCS()
	require.NoError(t, err)
	require.Len(t, data, types.AddrSize+8+3)
	require.Equal(t, []byte{0, 0, 0}, data[types.AddrSize+8:])
}

func TestRawPackageModulesAsText(t *testing.T) {
	t.Parallel()

	pkg := &RawMovePackage{
		Id:        types.SuiFrameworkAddress,
		Version:   1,
		ModuleMap: map[string][]byte{"m": {0xa1, 0x1c, 0xeb, 0x0b}},
	}
	data, err := pkg.MarshalBCS()
	require.NoError(t, err)

	tail := data[types.AddrSize+8:]
	expected := append([]byte{1, 1, 'm', 8}, []byte("oRzrCw==")...)
	require.Equal(t, expected, tail[:len(expected)])
	require.NotContains(t, string(data), "\xa1\x1c\xeb\x0b")
}

func TestRawMoveObject(t *testing.T) {
	t.Parallel()

	input := `{"dataType":"moveObject","type":"0x2::coin::Coin<0x2::sui::SUI>","hasPublicTransfer":true,` +
		`"version":"12","bcsBytes":"AQIDBA=="}`

	var raw RawData
	require.NoError(t, json.Unmarshal([]byte(input), &raw))
	require.Nil(t, raw.Package)
	require.NotNil(t, raw.MoveObject)
	require.Equal(t, types.SequenceNumber(12), raw.MoveObject.Version)
	bcsBytes, err := raw.Bytes()
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4}, bcsBytes)

	data, err := json.Marshal(raw)
	require.NoError(t, err)

	var decoded RawData
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, raw, decoded)
}

func TestRawDataUnknownType(t *testing.T) {
	t.Parallel()

	var raw RawData
	require.ErrorIs(t, json.Unmarshal([]byte(`{"dataType":"module"}`), &raw), ErrUnknownRawDataType)

	_, err := json.Marshal(RawData{})
	require.ErrorIs(t, err, ErrUnknownRawDataType)
}
