package client

import (
	"context"
	"encoding/json"

	"github.com/NilFoundation/suigql/suigql/internal/types"
)

//go:generate go run github.com/matryer/moq@v0.5.3 -out client_generated_mock.go -rm -stub -with-resets . ReadClient

// ReadClient is the read-only subset of the node JSON-RPC API the GraphQL data provider relies on.
type ReadClient interface {
	// GetObjectWithOptions returns the latest version of the object.
	// A missing object is reported inside the response, not as an error.
	GetObjectWithOptions(ctx context.Context, objectId types.ObjectID, options *ObjectDataOptions) (*ObjectResponse, error)

	// TryGetPastObject returns the object at the given version, if the node still keeps it.
	TryGetPastObject(
		ctx context.Context,
		objectId types.ObjectID,
		version types.SequenceNumber,
		options *ObjectDataOptions,
	) (*PastObjectResponse, error)

	// MultiGetObjectsWithOptions fetches several objects in a single request.
	// Responses are in the order of the requested ids.
	MultiGetObjectsWithOptions(ctx context.Context, objectIds []types.ObjectID, options *ObjectDataOptions) ([]*ObjectResponse, error)

	GetOwnedObjects(
		ctx context.Context,
		owner types.Address,
		query *ObjectResponseQuery,
		cursor *types.ObjectID,
		limit *uint64,
	) (*ObjectsPage, error)

	// GetBalance returns the total balance of the coin type; the node defaults to 0x2::sui::SUI when coinType is nil.
	GetBalance(ctx context.Context, owner types.Address, coinType *string) (*Balance, error)

	GetTransactionWithOptions(
		ctx context.Context,
		digest types.TransactionDigest,
		options *TransactionBlockResponseOptions,
	) (*TransactionBlockResponse, error)

	GetChainIdentifier(ctx context.Context) (string, error)

	// GetProtocolConfig returns the config of the given protocol version, or of the current one if version is nil.
	GetProtocolConfig(ctx context.Context, version *types.U64) (*ProtocolConfigResponse, error)
}

// RawClient gives access to node methods that have no typed wrapper.
type RawClient interface {
	// RawCall builds a JSON-RPC request and returns the "result" member of the response.
	RawCall(ctx context.Context, method string, params ...any) (json.RawMessage, error)

	// PlainTextCall posts the body unchanged and returns the whole response body.
	PlainTextCall(ctx context.Context, requestBody []byte) (json.RawMessage, error)
}

// Client is a full node JSON-RPC client.
type Client interface {
	RawClient
	ReadClient
}
