package server

import (
	"context"
	"errors"
	"testing"

	"github.com/NilFoundation/suigql/suigql/client"
	"github.com/NilFoundation/suigql/suigql/common/logging"
	"github.com/NilFoundation/suigql/suigql/internal/testaide"
	suitypes "github.com/NilFoundation/suigql/suigql/internal/types"
	"github.com/NilFoundation/suigql/suigql/services/graphql/types"
	"github.com/stretchr/testify/suite"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var errTransport = errors.New("connection reset by peer")

type ProviderTestSuite struct {
	suite.Suite

	ctx        context.Context
	clientMock *client.ReadClientMock
	provider   *RpcDataProvider
}

func TestProviderTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ProviderTestSuite))
}

func (s *ProviderTestSuite) SetupSuite() {
	s.ctx = context.Background()
}

func (s *ProviderTestSuite) SetupTest() {
	s.clientMock = &client.ReadClientMock{}
	s.provider = NewRpcDataProvider(s.clientMock, WithLogger(logging.NewLogger("provider_test")))
}

func ptr[T any](v T) *T {
	return &v
}

func (s *ProviderTestSuite) TestFetchObjectLatest() {
	owner := testaide.RandomAddress()
	data := testaide.NewMoveObject(suitypes.NewAddressOwner(owner))
	testaide.ClientMockSetObjects(s.clientMock, data)

	obj, err := s.provider.FetchObject(s.ctx, SuiAddressFromNative(data.ObjectId), nil)
	s.Require().NoError(err)
	s.Require().NotNil(obj)
	s.Equal(uint64(data.Version), obj.Version)
	s.Equal(SuiAddressFromNative(owner), *obj.Owner)

	calls := s.clientMock.GetObjectWithOptionsCalls()
	s.Require().Len(calls, 1)
	s.Equal(client.FullObjectContent(), calls[0].Options)
	s.Empty(s.clientMock.TryGetPastObjectCalls())
}

func (s *ProviderTestSuite) TestFetchObjectNotFound() {
	testaide.ClientMockSetObjects(s.clientMock)

	obj, err := s.provider.FetchObject(s.ctx, SuiAddressFromNative(testaide.RandomAddress()), nil)
	s.Require().NoError(err)
	s.Nil(obj)
}

func (s *ProviderTestSuite) TestFetchObjectWithoutDataOrError() {
	s.clientMock.GetObjectWithOptionsFunc = func(
		context.Context, suitypes.ObjectID, *client.ObjectDataOptions,
	) (*client.ObjectResponse, error) {
		return &client.ObjectResponse{}, nil
	}

	obj, err := s.provider.FetchObject(s.ctx, SuiAddressFromNative(testaide.RandomAddress()), nil)
	s.Require().NoError(err)
	s.Nil(obj)
}

func (s *ProviderTestSuite) TestFetchObjectTransportError() {
	s.clientMock.GetObjectWithOptionsFunc = func(
		context.Context, suitypes.ObjectID, *client.ObjectDataOptions,
	) (*client.ObjectResponse, error) {
		return nil, errTransport
	}

	obj, err := s.provider.FetchObject(s.ctx, SuiAddressFromNative(testaide.RandomAddress()), nil)
	s.Require().ErrorIs(err, errTransport)
	s.Nil(obj)
}

func (s *ProviderTestSuite) TestFetchObjectAtVersion() {
	data := testaide.NewMoveObject(suitypes.NewSharedOwner(2))
	s.clientMock.TryGetPastObjectFunc = func(
		_ context.Context, id suitypes.ObjectID, version suitypes.SequenceNumber, _ *client.ObjectDataOptions,
	) (*client.PastObjectResponse, error) {
		if id == data.ObjectId && version == data.Version {
			return &client.PastObjectResponse{Status: client.VersionFound, Object: data}, nil
		}
		return &client.PastObjectResponse{Status: client.VersionNotFound, ObjectId: id, AskedVersion: version}, nil
	}

	obj, err := s.provider.FetchObject(s.ctx, SuiAddressFromNative(data.ObjectId), ptr(uint64(data.Version)))
	s.Require().NoError(err)
	s.Require().NotNil(obj)
	s.Equal(types.ObjectKindShared, *obj.Kind)
	s.Nil(obj.Owner)

	obj, err = s.provider.FetchObject(s.ctx, SuiAddressFromNative(data.ObjectId), ptr(uint64(data.Version)+1))
	s.Require().NoError(err)
	s.Nil(obj)

	s.Len(s.clientMock.TryGetPastObjectCalls(), 2)
	s.Empty(s.clientMock.GetObjectWithOptionsCalls())
}

func (s *ProviderTestSuite) TestFetchObjectAtVersionNonSuccessStatuses() {
	id := testaide.RandomAddress()
	for _, res := range []*client.PastObjectResponse{
		{Status: client.ObjectNotExists, ObjectId: id},
		{Status: client.ObjectDeleted, DeletedRef: &client.ObjectRef{ObjectId: id, Version: 4}},
		{Status: client.VersionTooHigh, ObjectId: id, AskedVersion: 9, LatestVersion: 4},
	} {
		s.clientMock.TryGetPastObjectFunc = func(
			context.Context, suitypes.ObjectID, suitypes.SequenceNumber, *client.ObjectDataOptions,
		) (*client.PastObjectResponse, error) {
			return res, nil
		}

		obj, err := s.provider.FetchObject(s.ctx, SuiAddressFromNative(id), ptr(uint64(9)))
		s.Require().NoError(err, res.Status)
		s.Nil(obj, res.Status)
	}
}

func (s *ProviderTestSuite) TestFetchOwnedObjectsRejectsCursorCombinations() {
	owner := SuiAddressFromNative(testaide.RandomAddress())
	cursor := testaide.RandomAddress().String()

	testCases := []struct {
		name     string
		args     types.ConnectionArgs
		expected error
	}{
		{"BeforeAndAfter", types.ConnectionArgs{Before: &cursor, After: &cursor}, ErrCursorNoBeforeAfter},
		{"AllArguments", types.ConnectionArgs{First: ptr[uint64](1), Last: ptr[uint64](1), Before: &cursor, After: &cursor}, ErrCursorNoBeforeAfter},
		{"FirstAndLast", types.ConnectionArgs{First: ptr[uint64](1), Last: ptr[uint64](1)}, ErrCursorNoFirstLast},
		{"FirstLastAndAfter", types.ConnectionArgs{First: ptr[uint64](1), Last: ptr[uint64](1), After: &cursor}, ErrCursorNoFirstLast},
		{"Before", types.ConnectionArgs{Before: &cursor}, ErrCursorNoReversePagination},
		{"Last", types.ConnectionArgs{Last: ptr[uint64](5)}, ErrCursorNoReversePagination},
		{"FirstAndBefore", types.ConnectionArgs{First: ptr[uint64](5), Before: &cursor}, ErrCursorNoReversePagination},
		{"MissingPrefix", types.ConnectionArgs{After: ptr("abcd")}, ErrInvalidCursor},
		{"NoDigits", types.ConnectionArgs{After: ptr("0x")}, ErrInvalidCursor},
		{"NotHex", types.ConnectionArgs{After: ptr("0xqq")}, ErrInvalidCursor},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			conn, err := s.provider.FetchOwnedObjects(s.ctx, owner, tc.args, nil)
			s.Require().ErrorIs(err, tc.expected)
			s.Nil(conn)
		})
	}

	s.Empty(s.clientMock.GetOwnedObjectsCalls(), "validation must not reach the node")
}

func (s *ProviderTestSuite) setOwnedObjectsPage(page *client.ObjectsPage) {
	s.clientMock.GetOwnedObjectsFunc = func(
		context.Context, suitypes.Address, *client.ObjectResponseQuery, *suitypes.ObjectID, *uint64,
	) (*client.ObjectsPage, error) {
		return page, nil
	}
}

func (s *ProviderTestSuite) TestFetchOwnedObjectsPage() {
	owner := testaide.RandomAddress()
	objects := []*client.ObjectData{
		testaide.NewMoveObject(suitypes.NewAddressOwner(owner)),
		testaide.NewMoveObject(suitypes.NewAddressOwner(owner)),
	}
	s.setOwnedObjectsPage(&client.ObjectsPage{
		Data:        []*client.ObjectResponse{{Data: objects[0]}, {Data: objects[1]}},
		NextCursor:  &objects[1].ObjectId,
		HasNextPage: true,
	})

	after := testaide.RandomAddress()
	args := types.ConnectionArgs{First: ptr[uint64](2), After: ptr(after.String())}
	filter := &types.ObjectFilter{Ty: ptr("0x2::coin::Coin")}

	conn, err := s.provider.FetchOwnedObjects(s.ctx, SuiAddressFromNative(owner), args, filter)
	s.Require().NoError(err)
	s.Require().Len(conn.Edges, 2)
	for i, edge := range conn.Edges {
		s.Equal(objects[i].ObjectId.String(), edge.Cursor)
		s.Equal(SuiAddressFromNative(objects[i].ObjectId), edge.Node.Address)
		s.Equal(types.ObjectKindOwned, *edge.Node.Kind)
	}
	s.True(conn.PageInfo.HasNextPage)
	s.False(conn.PageInfo.HasPreviousPage)

	calls := s.clientMock.GetOwnedObjectsCalls()
	s.Require().Len(calls, 1)
	s.Equal(owner, calls[0].Owner)
	s.Equal(after, *calls[0].Cursor)
	s.Equal(uint64(2), *calls[0].Limit)
	s.Equal(client.FullObjectContent(), calls[0].Query.Options)
	s.Empty(calls[0].Query.Filter)
}

func (s *ProviderTestSuite) TestFetchOwnedObjectsShortCursor() {
	s.setOwnedObjectsPage(&client.ObjectsPage{})

	conn, err := s.provider.FetchOwnedObjects(
		s.ctx, SuiAddressFromNative(testaide.RandomAddress()), types.ConnectionArgs{After: ptr("0x2")}, nil)
	s.Require().NoError(err)
	s.Empty(conn.Edges)
	s.False(conn.PageInfo.HasNextPage)

	calls := s.clientMock.GetOwnedObjectsCalls()
	s.Require().Len(calls, 1)
	s.Equal(suitypes.SuiFrameworkAddress, *calls[0].Cursor)
	s.Nil(calls[0].Limit)
}

func (s *ProviderTestSuite) TestFetchOwnedObjectsItemErrorFailsPage() {
	owner := testaide.RandomAddress()
	missing := testaide.RandomAddress()
	s.setOwnedObjectsPage(&client.ObjectsPage{
		Data: []*client.ObjectResponse{
			{Data: testaide.NewMoveObject(suitypes.NewAddressOwner(owner))},
			{Error: &client.ObjectResponseError{Code: client.ErrCodeNotExists, ObjectId: &missing}},
			{Data: testaide.NewMoveObject(suitypes.NewAddressOwner(owner))},
		},
	})

	conn, err := s.provider.FetchOwnedObjects(s.ctx, SuiAddressFromNative(owner), types.ConnectionArgs{}, nil)
	s.Require().ErrorIs(err, ErrCursorConnectionFetchFailed)
	s.Contains(err.Error(), "Object "+missing.Hex()+" does not exist.")
	s.Nil(conn)
}

func (s *ProviderTestSuite) TestFetchOwnedObjectsItemWithoutDataOrError() {
	owner := testaide.RandomAddress()
	s.setOwnedObjectsPage(&client.ObjectsPage{
		Data: []*client.ObjectResponse{
			{Data: testaide.NewMoveObject(suitypes.NewAddressOwner(owner))},
			{},
		},
	})

	conn, err := s.provider.FetchOwnedObjects(s.ctx, SuiAddressFromNative(owner), types.ConnectionArgs{}, nil)
	s.Require().ErrorIs(err, ErrInternal)
	s.Contains(err.Error(), "Expected either data or error fields, received neither")
	s.Nil(conn)
}

func (s *ProviderTestSuite) TestFetchBalance() {
	owner := testaide.RandomAddress()
	total, err := suitypes.ParseU128("123456789012345678901234567890")
	s.Require().NoError(err)
	s.clientMock.GetBalanceFunc = func(
		_ context.Context, _ suitypes.Address, coinType *string,
	) (*client.Balance, error) {
		s.Nil(coinType)
		return &client.Balance{CoinType: testaide.DefaultCoinType, CoinObjectCount: 3, TotalBalance: total}, nil
	}

	balance, err := s.provider.FetchBalance(s.ctx, SuiAddressFromNative(owner), nil)
	s.Require().NoError(err)
	s.Equal(uint64(3), balance.CoinObjectCount)
	s.Equal("123456789012345678901234567890", balance.TotalBalance.String())

	expected, err := types.ParseBigInt("123456789012345678901234567890")
	s.Require().NoError(err)
	s.Zero(expected.Cmp(balance.TotalBalance))
}

func (s *ProviderTestSuite) setTransaction(tx *client.TransactionBlockResponse) {
	s.clientMock.GetTransactionWithOptionsFunc = func(
		_ context.Context, digest suitypes.TransactionDigest, _ *client.TransactionBlockResponseOptions,
	) (*client.TransactionBlockResponse, error) {
		s.Equal(tx.Digest, digest)
		return tx, nil
	}
}

func (s *ProviderTestSuite) TestFetchTransaction() {
	sender := testaide.RandomAddress()
	gasCoins := []*client.ObjectData{
		testaide.NewMoveObject(suitypes.NewAddressOwner(sender)),
		testaide.NewMoveObject(suitypes.NewAddressOwner(sender)),
	}
	tx := testaide.NewTransaction(sender, gasCoins...)
	s.setTransaction(tx)
	testaide.ClientMockSetObjects(s.clientMock, gasCoins...)

	block, err := s.provider.FetchTransaction(s.ctx, tx.Digest.String())
	s.Require().NoError(err)

	s.Equal(tx.Digest.String(), block.Digest)
	s.Equal(SuiAddressFromNative(sender), block.Sender.Address)
	s.Equal(types.Base64(tx.RawTransaction), *block.Bcs)

	s.Require().NotNil(block.Effects)
	s.Equal(tx.Effects.TransactionDigest.String(), block.Effects.Digest)
	gasEffects := block.Effects.GasEffects
	s.Require().NotNil(gasEffects)
	s.Equal(SuiAddressFromNative(gasCoins[0].ObjectId), gasEffects.GasObject.Address)
	s.Equal("750000", gasEffects.GasSummary.ComputationCost.String())
	s.Equal("2964000", gasEffects.GasSummary.StorageCost.String())
	s.Equal("978120", gasEffects.GasSummary.StorageRebate.String())
	s.Equal("9880", gasEffects.GasSummary.NonRefundableStorageFee.String())

	gasInput := block.GasInput
	s.Require().NotNil(gasInput)
	s.Equal(SuiAddressFromNative(sender), gasInput.GasSponsor.Address)
	s.Require().Len(gasInput.GasPayment, 2)
	for i, coin := range gasCoins {
		s.Equal(SuiAddressFromNative(coin.ObjectId), gasInput.GasPayment[i].Address)
	}
	s.Equal("750", gasInput.GasPrice.String())
	s.Equal("50000000", gasInput.GasBudget.String())

	s.Len(s.clientMock.MultiGetObjectsWithOptionsCalls(), 1, "payment objects are fetched in one batch")
	s.Len(s.clientMock.GetObjectWithOptionsCalls(), 1)
}

func (s *ProviderTestSuite) TestFetchTransactionInvalidDigest() {
	for _, digest := range []string{"", "0OIl", "1111111111111111111111111111111"} {
		block, err := s.provider.FetchTransaction(s.ctx, digest)
		s.Require().Error(err, digest)
		s.Nil(block)
	}
	s.Empty(s.clientMock.GetTransactionWithOptionsCalls())
}

func (s *ProviderTestSuite) TestFetchTransactionWithoutEffects() {
	tx := testaide.NewTransaction(testaide.RandomAddress())
	tx.Effects = nil
	s.setTransaction(tx)

	block, err := s.provider.FetchTransaction(s.ctx, tx.Digest.String())
	s.Require().ErrorIs(err, ErrInternal)
	s.Nil(block)
}

func (s *ProviderTestSuite) TestFetchTransactionWithoutData() {
	tx := testaide.NewTransaction(testaide.RandomAddress())
	tx.Transaction = nil
	s.setTransaction(tx)

	block, err := s.provider.FetchTransaction(s.ctx, tx.Digest.String())
	s.Require().ErrorIs(err, ErrInternal)
	s.Nil(block)
}

func (s *ProviderTestSuite) TestFetchTransactionMissingGasObject() {
	sender := testaide.RandomAddress()
	gasCoin := testaide.NewMoveObject(suitypes.NewAddressOwner(sender))
	tx := testaide.NewTransaction(sender, gasCoin)
	s.setTransaction(tx)
	testaide.ClientMockSetObjects(s.clientMock)

	block, err := s.provider.FetchTransaction(s.ctx, tx.Digest.String())
	s.Require().ErrorIs(err, ErrInternal)
	s.Nil(block)
}

func (s *ProviderTestSuite) TestFetchTransactionPaymentFetchFails() {
	sender := testaide.RandomAddress()
	gasCoin := testaide.NewMoveObject(suitypes.NewAddressOwner(sender))
	tx := testaide.NewTransaction(sender, gasCoin)
	s.setTransaction(tx)
	testaide.ClientMockSetObjects(s.clientMock, gasCoin)
	s.clientMock.MultiGetObjectsWithOptionsFunc = func(
		context.Context, []suitypes.ObjectID, *client.ObjectDataOptions,
	) ([]*client.ObjectResponse, error) {
		return nil, errTransport
	}

	block, err := s.provider.FetchTransaction(s.ctx, tx.Digest.String())
	s.Require().ErrorIs(err, errTransport)
	s.Nil(block)
}

func (s *ProviderTestSuite) TestFetchChainId() {
	s.clientMock.GetChainIdentifierFunc = func(context.Context) (string, error) {
		return testaide.DefaultChainId, nil
	}

	chainId, err := s.provider.FetchChainId(s.ctx)
	s.Require().NoError(err)
	s.Equal(testaide.DefaultChainId, chainId)
}

func (s *ProviderTestSuite) TestFetchProtocolConfig() {
	attributes := orderedmap.New[string, *client.ProtocolConfigValue]()
	attributes.Set("max_tx_size_bytes", &client.ProtocolConfigValue{Kind: "u64", Value: "131072"})
	attributes.Set("random_beacon_reduction_lower_bound", nil)
	attributes.Set("gas_rounding_step", &client.ProtocolConfigValue{Kind: "u64", Value: "1000"})
	flags := orderedmap.New[string, bool]()
	flags.Set("zklogin_auth", true)
	flags.Set("enable_jwk_consensus_updates", false)

	s.clientMock.GetProtocolConfigFunc = func(_ context.Context, version *suitypes.U64) (*client.ProtocolConfigResponse, error) {
		s.Require().NotNil(version)
		s.Equal(suitypes.U64(42), *version)
		return &client.ProtocolConfigResponse{
			MinSupportedProtocolVersion: 1,
			MaxSupportedProtocolVersion: 42,
			ProtocolVersion:             42,
			FeatureFlags:                flags,
			Attributes:                  attributes,
		}, nil
	}

	cfg, err := s.provider.FetchProtocolConfig(s.ctx, ptr[uint64](42))
	s.Require().NoError(err)
	s.Equal(uint64(42), cfg.ProtocolVersion)
	s.Equal([]types.ProtocolConfigAttr{
		{Key: "max_tx_size_bytes", Value: "U64(131072)"},
		{Key: "random_beacon_reduction_lower_bound", Value: ""},
		{Key: "gas_rounding_step", Value: "U64(1000)"},
	}, cfg.Configs)
	s.Equal([]types.ProtocolConfigFeatureFlag{
		{Key: "zklogin_auth", Value: true},
		{Key: "enable_jwk_consensus_updates", Value: false},
	}, cfg.FeatureFlags)
}

func (s *ProviderTestSuite) TestFetchProtocolConfigCurrent() {
	s.clientMock.GetProtocolConfigFunc = func(_ context.Context, version *suitypes.U64) (*client.ProtocolConfigResponse, error) {
		s.Nil(version)
		return &client.ProtocolConfigResponse{ProtocolVersion: 7}, nil
	}

	cfg, err := s.provider.FetchProtocolConfig(s.ctx, nil)
	s.Require().NoError(err)
	s.Equal(uint64(7), cfg.ProtocolVersion)
	s.Empty(cfg.Configs)
	s.Empty(cfg.FeatureFlags)
}
