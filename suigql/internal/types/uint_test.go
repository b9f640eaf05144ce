package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceNumberJSON(t *testing.T) {
	t.Parallel()

	var s SequenceNumber
	require.NoError(t, json.Unmarshal([]byte(`"42"`), &s))
	assert.Equal(t, SequenceNumber(42), s)

	require.NoError(t, json.Unmarshal([]byte(`43`), &s))
	assert.Equal(t, SequenceNumber(43), s)

	data, err := json.Marshal(SequenceNumber(7))
	require.NoError(t, err)
	assert.Equal(t, `7`, string(data))

	require.Error(t, json.Unmarshal([]byte(`"-1"`), &s))
}

func TestU64JSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(U64(18446744073709551615))
	require.NoError(t, err)
	assert.Equal(t, `"18446744073709551615"`, string(data))

	var u U64
	require.NoError(t, json.Unmarshal(data, &u))
	assert.Equal(t, U64(18446744073709551615), u)

	require.Error(t, json.Unmarshal([]byte(`"18446744073709551616"`), &u))
}

func TestU128(t *testing.T) {
	t.Parallel()

	const literal = "123456789012345678901234567890"

	var u U128
	require.NoError(t, json.Unmarshal([]byte(`"`+literal+`"`), &u))
	assert.Equal(t, literal, u.String())
	assert.Equal(t, literal, u.ToBig().String())

	data, err := json.Marshal(u)
	require.NoError(t, err)
	assert.Equal(t, `"`+literal+`"`, string(data))

	require.NoError(t, json.Unmarshal([]byte(`17`), &u))
	assert.Equal(t, NewU128(17).String(), u.String())

	maxValue := "340282366920938463463374607431768211455"
	_, err = ParseU128(maxValue)
	require.NoError(t, err)

	_, err = ParseU128("340282366920938463463374607431768211456")
	require.ErrorContains(t, err, "overflows 128 bits")

	_, err = ParseU128("12a")
	require.Error(t, err)
}
