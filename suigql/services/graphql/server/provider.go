package server

import (
	"context"
	"fmt"
	"time"

	"github.com/NilFoundation/suigql/suigql/client"
	"github.com/NilFoundation/suigql/suigql/common/logging"
	suitypes "github.com/NilFoundation/suigql/suigql/internal/types"
	"github.com/NilFoundation/suigql/suigql/services/graphql/types"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	opFetchObject         = "fetch_object"
	opFetchOwnedObjects   = "fetch_owned_objects"
	opFetchBalance        = "fetch_balance"
	opFetchTransaction    = "fetch_transaction"
	opFetchChainId        = "fetch_chain_id"
	opFetchProtocolConfig = "fetch_protocol_config"
)

// RpcDataProvider serves GraphQL queries straight from a node's JSON-RPC read API.
// It keeps no state and is safe for concurrent use if the client is.
type RpcDataProvider struct {
	client  client.ReadClient
	logger  zerolog.Logger
	metrics *Metrics
	clock   clockwork.Clock
}

var _ DataProvider = (*RpcDataProvider)(nil)

type Option func(*RpcDataProvider)

func WithLogger(logger zerolog.Logger) Option {
	return func(p *RpcDataProvider) {
		p.logger = logger
	}
}

func WithMetrics(metrics *Metrics) Option {
	return func(p *RpcDataProvider) {
		p.metrics = metrics
	}
}

// WithClock sets the clock request durations are measured with.
func WithClock(clock clockwork.Clock) Option {
	return func(p *RpcDataProvider) {
		p.clock = clock
	}
}

func NewRpcDataProvider(client client.ReadClient, opts ...Option) *RpcDataProvider {
	p := &RpcDataProvider{
		client: client,
		logger: logging.NewLogger("graphql-provider"),
		clock:  clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *RpcDataProvider) track(operation string, start time.Time, err error) {
	elapsed := p.clock.Since(start)
	if err != nil {
		p.logger.Debug().
			Err(err).
			Str(logging.FieldOperation, operation).
			Dur(logging.FieldDuration, elapsed).
			Msg("request failed")
	}
	if p.metrics != nil {
		p.metrics.observe(operation, elapsed, err)
	}
}

func (p *RpcDataProvider) FetchObject(
	ctx context.Context, address types.SuiAddress, version *uint64,
) (obj *types.Object, err error) {
	defer func(start time.Time) { p.track(opFetchObject, start, err) }(p.clock.Now())

	id := NativeAddress(address)
	opts := client.FullObjectContent()

	var data *client.ObjectData
	if version != nil {
		res, err := p.client.TryGetPastObject(ctx, id, suitypes.SequenceNumber(*version), opts)
		if err != nil {
			return nil, err
		}
		if res == nil || res.Status != client.VersionFound || res.Object == nil {
			event := p.logger.Debug().Stringer(logging.FieldObjectId, id).Uint64(logging.FieldObjectVersion, *version)
			if res != nil {
				event = event.Str("status", string(res.Status))
			}
			event.Msg("object version is not available")
			return nil, nil
		}
		data = res.Object
	} else {
		res, err := p.client.GetObjectWithOptions(ctx, id, opts)
		if err != nil {
			return nil, err
		}
		if res == nil || res.Error != nil || res.Data == nil {
			event := p.logger.Debug().Stringer(logging.FieldObjectId, id)
			if res != nil && res.Error != nil {
				event = event.Str(logging.FieldError, res.Error.Error())
			}
			event.Msg("object is not available")
			return nil, nil
		}
		data = res.Data
	}

	return ConvertObject(data)
}

func (p *RpcDataProvider) FetchOwnedObjects(
	ctx context.Context,
	owner types.SuiAddress,
	args types.ConnectionArgs,
	filter *types.ObjectFilter,
) (conn *types.Connection[*types.Object], err error) {
	defer func(start time.Time) { p.track(opFetchOwnedObjects, start, err) }(p.clock.Now())

	if args.Before != nil && args.After != nil {
		return nil, ErrCursorNoBeforeAfter
	}
	if args.First != nil && args.Last != nil {
		return nil, ErrCursorNoFirstLast
	}
	if args.Before != nil || args.Last != nil {
		return nil, ErrCursorNoReversePagination
	}

	var cursor *suitypes.ObjectID
	if args.After != nil {
		id, err := suitypes.ParseHexLiteral(*args.After)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCursor, err)
		}
		cursor = &id
	}

	if filter != nil {
		p.logger.Debug().Msg("object filters are not applied to owned objects yet")
	}

	query := &client.ObjectResponseQuery{Options: client.FullObjectContent()}
	page, err := p.client.GetOwnedObjects(ctx, NativeAddress(owner), query, cursor, args.First)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, fmt.Errorf("%w: empty owned objects page", ErrInternal)
	}

	// Any failed item fails the whole page.
	for _, item := range page.Data {
		switch {
		case item != nil && item.Error != nil:
			return nil, fmt.Errorf("%w: %s", ErrCursorConnectionFetchFailed, item.Error.Error())
		case item == nil || item.Data == nil:
			return nil, fmt.Errorf("%w: Expected either data or error fields, received neither", ErrInternal)
		}
	}

	conn = types.NewConnection[*types.Object](false, page.HasNextPage)
	for _, item := range page.Data {
		obj, err := ConvertObject(item.Data)
		if err != nil {
			return nil, err
		}
		conn.Append(item.Data.ObjectId.String(), obj)
	}
	return conn, nil
}

func (p *RpcDataProvider) FetchBalance(
	ctx context.Context, owner types.SuiAddress, coinType *string,
) (balance *types.Balance, err error) {
	defer func(start time.Time) { p.track(opFetchBalance, start, err) }(p.clock.Now())

	res, err := p.client.GetBalance(ctx, NativeAddress(owner), coinType)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, fmt.Errorf("%w: empty balance response", ErrInternal)
	}
	return ConvertBalance(res)
}

func (p *RpcDataProvider) FetchTransaction(ctx context.Context, digest string) (tx *types.TransactionBlock, err error) {
	defer func(start time.Time) { p.track(opFetchTransaction, start, err) }(p.clock.Now())

	txDigest, err := suitypes.ParseDigest(digest)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction digest %q: %w", digest, err)
	}

	res, err := p.client.GetTransactionWithOptions(ctx, txDigest, client.FullTransactionContent())
	if err != nil {
		return nil, err
	}
	if res == nil || res.Transaction == nil {
		return nil, fmt.Errorf("%w: transaction %s has no data", ErrInternal, digest)
	}
	if res.Effects == nil {
		return nil, fmt.Errorf("%w: transaction %s has no effects", ErrInternal, digest)
	}
	data, effects := &res.Transaction.Data, res.Effects

	var (
		gasEffects *types.GasEffects
		gasInput   *types.GasInput
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		gasEffects, err = p.convertGasEffects(gctx, &effects.GasUsed, &effects.GasObject)
		return err
	})
	g.Go(func() error {
		var err error
		gasInput, err = p.convertGasInput(gctx, &data.GasData)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	bcs := types.Base64(res.RawTransaction)
	return &types.TransactionBlock{
		Digest: digest,
		Effects: &types.TransactionBlockEffects{
			Digest:     effects.TransactionDigest.String(),
			GasEffects: gasEffects,
		},
		Sender:   AddressFromNative(data.Sender),
		Bcs:      &bcs,
		GasInput: gasInput,
	}, nil
}

func (p *RpcDataProvider) convertGasEffects(
	ctx context.Context, summary *client.GasCostSummary, gasObject *client.OwnedObjectRef,
) (*types.GasEffects, error) {
	id := gasObject.Reference.ObjectId
	res, err := p.client.GetObjectWithOptions(ctx, id, client.FullObjectContent())
	if err != nil {
		return nil, err
	}
	if res == nil || res.Data == nil {
		return nil, fmt.Errorf("%w: gas object %s is not available", ErrInternal, id)
	}

	obj, err := ConvertObject(res.Data)
	if err != nil {
		return nil, err
	}
	return &types.GasEffects{
		GasObject:  obj,
		GasSummary: ConvertGasCostSummary(summary),
	}, nil
}

func (p *RpcDataProvider) convertGasInput(ctx context.Context, gasData *client.GasData) (*types.GasInput, error) {
	ids := make([]suitypes.ObjectID, 0, len(gasData.Payment))
	for _, ref := range gasData.Payment {
		ids = append(ids, ref.ObjectId)
	}

	responses, err := p.client.MultiGetObjectsWithOptions(ctx, ids, client.FullObjectContent())
	if err != nil {
		return nil, err
	}
	if len(responses) != len(ids) {
		return nil, fmt.Errorf("%w: requested %d payment objects, got %d", ErrInternal, len(ids), len(responses))
	}

	payment := make([]*types.Object, 0, len(responses))
	for i, res := range responses {
		if res == nil || res.Data == nil {
			return nil, fmt.Errorf("%w: payment object %s is not available", ErrInternal, ids[i])
		}
		obj, err := ConvertObject(res.Data)
		if err != nil {
			return nil, err
		}
		payment = append(payment, obj)
	}

	return &types.GasInput{
		GasSponsor: AddressFromNative(gasData.Owner),
		GasPayment: payment,
		GasPrice:   types.NewBigInt(uint64(gasData.Price)),
		GasBudget:  types.NewBigInt(uint64(gasData.Budget)),
	}, nil
}

func (p *RpcDataProvider) FetchChainId(ctx context.Context) (chainId string, err error) {
	defer func(start time.Time) { p.track(opFetchChainId, start, err) }(p.clock.Now())

	return p.client.GetChainIdentifier(ctx)
}

func (p *RpcDataProvider) FetchProtocolConfig(
	ctx context.Context, version *uint64,
) (cfg *types.ProtocolConfigs, err error) {
	defer func(start time.Time) { p.track(opFetchProtocolConfig, start, err) }(p.clock.Now())

	var requested *suitypes.U64
	if version != nil {
		v := suitypes.U64(*version)
		requested = &v
	}

	res, err := p.client.GetProtocolConfig(ctx, requested)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, fmt.Errorf("%w: empty protocol config response", ErrInternal)
	}
	return ConvertProtocolConfig(res), nil
}
