package server

import (
	"context"

	"github.com/NilFoundation/suigql/suigql/services/graphql/types"
)

// DataProvider is the read side of the GraphQL service.
// Not found objects are reported as nil results, all other failures as errors.
type DataProvider interface {
	// FetchObject returns the object at the given version, or the latest one if version is nil.
	FetchObject(ctx context.Context, address types.SuiAddress, version *uint64) (*types.Object, error)

	// FetchOwnedObjects pages forward through the objects owned by the address.
	// The cursor is an object id as returned in the edges of the previous page.
	FetchOwnedObjects(
		ctx context.Context,
		owner types.SuiAddress,
		args types.ConnectionArgs,
		filter *types.ObjectFilter,
	) (*types.Connection[*types.Object], error)

	// FetchBalance returns the balance of the coin type, SUI if coinType is nil.
	FetchBalance(ctx context.Context, owner types.SuiAddress, coinType *string) (*types.Balance, error)

	// FetchTransaction looks the transaction up by its base58 digest.
	FetchTransaction(ctx context.Context, digest string) (*types.TransactionBlock, error)

	FetchChainId(ctx context.Context) (string, error)

	// FetchProtocolConfig returns the given protocol version config, or the current one if version is nil.
	FetchProtocolConfig(ctx context.Context, version *uint64) (*types.ProtocolConfigs, error)
}
