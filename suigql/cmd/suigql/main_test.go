package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NilFoundation/suigql/suigql/client"
	"github.com/NilFoundation/suigql/suigql/internal/testaide"
	"github.com/NilFoundation/suigql/suigql/internal/types"
	gqltypes "github.com/NilFoundation/suigql/suigql/services/graphql/types"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	rc := newRootCommand()
	var out bytes.Buffer
	rc.baseCmd.SetOut(&out)
	rc.baseCmd.SetErr(&out)
	rc.baseCmd.SetArgs(args)
	err := rc.baseCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func executeOnNode(t *testing.T, node *testaide.Node, args ...string) (string, error) {
	t.Helper()
	return execute(t, append([]string{"--endpoint", node.Endpoint(), "--retries", "1"}, args...)...)
}

func TestChainId(t *testing.T) {
	t.Parallel()

	node := testaide.NewNode(t)
	out, err := executeOnNode(t, node, "chain-id")
	require.NoError(t, err)
	require.Equal(t, testaide.DefaultChainId+"\n", out)
}

func TestMetricsDump(t *testing.T) {
	t.Parallel()

	node := testaide.NewNode(t)
	out, err := executeOnNode(t, node, "--metrics", "chain-id")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, testaide.DefaultChainId+"\n"))
	require.Contains(t, out, `suigql_provider_requests_total{operation="fetch_chain_id",status="ok"} 1`)
	require.Contains(t, out, `suigql_provider_request_duration_seconds_count{operation="fetch_chain_id"} 1`)

	out, err = executeOnNode(t, node, "chain-id")
	require.NoError(t, err)
	require.NotContains(t, out, "suigql_provider")
}

func TestConfigFile(t *testing.T) {
	t.Parallel()

	node := testaide.NewNode(t)
	node.SetChainId("35834a8a")

	cfgFile := filepath.Join(t.TempDir(), "suigql.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("endpoint: "+node.Endpoint()+"\nretries: 1\n"), 0o600))

	out, err := execute(t, "chain-id", "--config", cfgFile)
	require.NoError(t, err)
	require.Equal(t, "35834a8a\n", out)

	_, err = execute(t, "chain-id", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestInvalidLogLevel(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "chain-id", "--log-level", "loud")
	require.ErrorContains(t, err, "invalid log-level")
}

func TestObject(t *testing.T) {
	t.Parallel()

	node := testaide.NewNode(t)
	obj := testaide.NewMoveObject(types.NewAddressOwner(testaide.RandomAddress()))
	node.AddObject(obj)

	out, err := executeOnNode(t, node, "object", obj.ObjectId.Hex())
	require.NoError(t, err)

	var res gqltypes.Object
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Equal(t, uint64(obj.Version), res.Version)
	require.Equal(t, obj.Digest.String(), res.Digest)
	require.Equal(t, gqltypes.ObjectKindOwned, *res.Kind)

	_, err = executeOnNode(t, node, "object", obj.ObjectId.Hex(), "--version", "0")
	require.ErrorIs(t, err, errNotFound)

	_, err = executeOnNode(t, node, "object", "not-an-address")
	require.ErrorIs(t, err, gqltypes.ErrInvalidSuiAddress)
}

func TestOwnedAllPages(t *testing.T) {
	t.Parallel()

	node := testaide.NewNode(t)
	owner := testaide.RandomAddress()
	for i := 0; i < 5; i++ {
		node.AddObject(testaide.NewMoveObject(types.NewAddressOwner(owner)))
	}

	out, err := executeOnNode(t, node, "owned", owner.Hex(), "--first", "2")
	require.NoError(t, err)
	var page gqltypes.Connection[*gqltypes.Object]
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	require.Len(t, page.Edges, 2)
	require.True(t, page.PageInfo.HasNextPage)

	out, err = executeOnNode(t, node, "owned", owner.Hex(), "--first", "2", "--all")
	require.NoError(t, err)
	page = gqltypes.Connection[*gqltypes.Object]{}
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	require.Len(t, page.Edges, 5)
	require.False(t, page.PageInfo.HasNextPage)
}

func TestBalance(t *testing.T) {
	t.Parallel()

	node := testaide.NewNode(t)
	owner := testaide.RandomAddress()
	node.SetBalance(owner, &client.Balance{
		CoinType:        testaide.DefaultCoinType,
		CoinObjectCount: 4,
		TotalBalance:    types.NewU128(1_500_000_000),
		LockedBalance:   map[string]types.U128{},
	})

	out, err := executeOnNode(t, node, "balance", owner.Hex())
	require.NoError(t, err)

	var res balanceOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Equal(t, uint64(4), res.CoinObjectCount)
	require.Equal(t, "1500000000", res.TotalBalance.String())
	require.Equal(t, "1.5", res.Formatted)

	out, err = executeOnNode(t, node, "balance", owner.Hex(), "--coin-type", "0x5::usdc::USDC", "--decimals", "6")
	require.NoError(t, err)
	require.Contains(t, out, `"coinType": "0x5::usdc::USDC"`)
	require.Contains(t, out, `"formatted": "0"`)
}

func TestFormatBalance(t *testing.T) {
	t.Parallel()

	require.Equal(t, "0.000000001", formatBalance(gqltypes.NewBigInt(1), suiDecimals))
	require.Equal(t, "42", formatBalance(gqltypes.NewBigInt(42_000_000_000), suiDecimals))
	require.Equal(t, "18446744073.709551615", formatBalance(gqltypes.NewBigInt(^uint64(0)), suiDecimals))
	require.Equal(t, "7", formatBalance(gqltypes.NewBigInt(7), 0))
}

func TestTransaction(t *testing.T) {
	t.Parallel()

	node := testaide.NewNode(t)
	sender := testaide.RandomAddress()
	gas := testaide.NewMoveObject(types.NewAddressOwner(sender))
	node.AddObject(gas)
	tx := testaide.NewTransaction(sender, gas)
	node.AddTransaction(tx)

	out, err := executeOnNode(t, node, "tx", tx.Digest.String())
	require.NoError(t, err)
	require.Contains(t, out, tx.Digest.String())
	require.Contains(t, out, sender.Hex())

	_, err = executeOnNode(t, node, "tx", "not-base58-0OIl")
	require.Error(t, err)
}

func TestProtocolConfig(t *testing.T) {
	t.Parallel()

	node := testaide.NewNode(t)
	node.AddProtocolConfig(&client.ProtocolConfigResponse{ProtocolVersion: 40})

	out, err := executeOnNode(t, node, "protocol-config")
	require.NoError(t, err)
	var res gqltypes.ProtocolConfigs
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Equal(t, uint64(40), res.ProtocolVersion)

	_, err = executeOnNode(t, node, "protocol-config", "--version", "3")
	require.Error(t, err)
}

func TestAddress(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "address", "0x"+strings.Repeat("00", 32))
	require.NoError(t, err)
	require.Equal(t, "0xd8908c165dee785924e7421a0fd0418a19d5daeec395fd505a92a0fd3117e428\n", out)

	out, err = execute(t, "address", "--scheme", "secp256k1", "AgAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA")
	require.NoError(t, err)
	require.Equal(t, "0xeb6ca47145bbda59b50e18e69c4f3c2557cc489550274b2b51beb59f643d7196\n", out)

	_, err = execute(t, "address", "--scheme", "bls", "0x00")
	require.Error(t, err)

	_, err = execute(t, "address", "0x0011")
	require.Error(t, err)
}
