package testaide

import (
	"bytes"
	"errors"
	"fmt"
	"net/http/httptest"
	"slices"
	"sync"
	"testing"

	"github.com/NilFoundation/suigql/suigql/client"
	"github.com/NilFoundation/suigql/suigql/internal/types"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/require"
)

const (
	DefaultChainId  = "4c78adac"
	DefaultCoinType = "0x2::sui::SUI"

	defaultPageSize = 50
)

var errTransactionNotFound = errors.New("Could not find the referenced transaction")

// Node is an in-memory Sui full node serving the read API over JSON-RPC.
type Node struct {
	mu sync.RWMutex

	chainId         string
	objects         map[types.ObjectID][]*client.ObjectData
	balances        map[types.Address]map[string]*client.Balance
	transactions    map[types.TransactionDigest]*client.TransactionBlockResponse
	protocolConfigs map[types.U64]*client.ProtocolConfigResponse
	protocolVersion types.U64

	server *httptest.Server
}

// NewNode starts the node; it is stopped when the test finishes.
func NewNode(t *testing.T) *Node {
	t.Helper()

	n := &Node{
		chainId:         DefaultChainId,
		objects:         make(map[types.ObjectID][]*client.ObjectData),
		balances:        make(map[types.Address]map[string]*client.Balance),
		transactions:    make(map[types.TransactionDigest]*client.TransactionBlockResponse),
		protocolConfigs: make(map[types.U64]*client.ProtocolConfigResponse),
	}

	handler := rpc.NewServer()
	require.NoError(t, handler.RegisterName("sui", &suiApi{node: n}))
	require.NoError(t, handler.RegisterName("suix", &suixApi{node: n}))

	n.server = httptest.NewServer(handler)
	t.Cleanup(func() {
		n.server.Close()
		handler.Stop()
	})
	return n
}

func (n *Node) Endpoint() string {
	return n.server.URL
}

func (n *Node) SetChainId(chainId string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.chainId = chainId
}

// AddObject stores a new version of the object. Versions must be added in increasing order.
func (n *Node) AddObject(objects ...*client.ObjectData) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, obj := range objects {
		n.objects[obj.ObjectId] = append(n.objects[obj.ObjectId], obj)
	}
}

func (n *Node) SetBalance(owner types.Address, balance *client.Balance) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.balances[owner] == nil {
		n.balances[owner] = make(map[string]*client.Balance)
	}
	n.balances[owner][balance.CoinType] = balance
}

func (n *Node) AddTransaction(tx *client.TransactionBlockResponse) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.transactions[tx.Digest] = tx
}

// AddProtocolConfig registers the config; the highest registered version becomes the current one.
func (n *Node) AddProtocolConfig(cfg *client.ProtocolConfigResponse) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.protocolConfigs[cfg.ProtocolVersion] = cfg
	n.protocolVersion = max(n.protocolVersion, cfg.ProtocolVersion)
}

func (n *Node) latest(id types.ObjectID) *client.ObjectData {
	versions := n.objects[id]
	if len(versions) == 0 {
		return nil
	}
	return versions[len(versions)-1]
}

func (n *Node) objectResponse(id types.ObjectID) *client.ObjectResponse {
	if obj := n.latest(id); obj != nil {
		return &client.ObjectResponse{Data: obj}
	}
	return &client.ObjectResponse{
		Error: &client.ObjectResponseError{Code: client.ErrCodeNotExists, ObjectId: &id},
	}
}

type suiApi struct {
	node *Node
}

func (api *suiApi) GetObject(id types.ObjectID, _ *client.ObjectDataOptions) (*client.ObjectResponse, error) {
	api.node.mu.RLock()
	defer api.node.mu.RUnlock()
	return api.node.objectResponse(id), nil
}

func (api *suiApi) TryGetPastObject(
	id types.ObjectID, version types.SequenceNumber, _ *client.ObjectDataOptions,
) (*client.PastObjectResponse, error) {
	api.node.mu.RLock()
	defer api.node.mu.RUnlock()

	latest := api.node.latest(id)
	if latest == nil {
		return &client.PastObjectResponse{Status: client.ObjectNotExists, ObjectId: id}, nil
	}
	if version > latest.Version {
		return &client.PastObjectResponse{
			Status:        client.VersionTooHigh,
			ObjectId:      id,
			AskedVersion:  version,
			LatestVersion: latest.Version,
		}, nil
	}
	for _, obj := range api.node.objects[id] {
		if obj.Version == version {
			return &client.PastObjectResponse{Status: client.VersionFound, Object: obj}, nil
		}
	}
	return &client.PastObjectResponse{Status: client.VersionNotFound, ObjectId: id, AskedVersion: version}, nil
}

func (api *suiApi) MultiGetObjects(ids []types.ObjectID, _ *client.ObjectDataOptions) ([]*client.ObjectResponse, error) {
	api.node.mu.RLock()
	defer api.node.mu.RUnlock()

	res := make([]*client.ObjectResponse, 0, len(ids))
	for _, id := range ids {
		res = append(res, api.node.objectResponse(id))
	}
	return res, nil
}

func (api *suiApi) GetTransactionBlock(
	digest types.TransactionDigest, _ *client.TransactionBlockResponseOptions,
) (*client.TransactionBlockResponse, error) {
	api.node.mu.RLock()
	defer api.node.mu.RUnlock()

	tx, ok := api.node.transactions[digest]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errTransactionNotFound, digest)
	}
	return tx, nil
}

func (api *suiApi) GetChainIdentifier() (string, error) {
	api.node.mu.RLock()
	defer api.node.mu.RUnlock()
	return api.node.chainId, nil
}

func (api *suiApi) GetProtocolConfig(version *types.U64) (*client.ProtocolConfigResponse, error) {
	api.node.mu.RLock()
	defer api.node.mu.RUnlock()

	requested := api.node.protocolVersion
	if version != nil {
		requested = *version
	}
	cfg, ok := api.node.protocolConfigs[requested]
	if !ok {
		return nil, fmt.Errorf("unsupported protocol version requested: %s", requested)
	}
	return cfg, nil
}

type suixApi struct {
	node *Node
}

func (api *suixApi) GetOwnedObjects(
	owner types.Address, _ *client.ObjectResponseQuery, cursor *types.ObjectID, limit *uint64,
) (*client.ObjectsPage, error) {
	api.node.mu.RLock()
	defer api.node.mu.RUnlock()

	var owned []*client.ObjectData
	for id := range api.node.objects {
		obj := api.node.latest(id)
		if obj.Owner == nil || obj.Owner.Kind != types.AddressOwner || obj.Owner.Address != owner {
			continue
		}
		if cursor != nil && bytes.Compare(id[:], cursor[:]) <= 0 {
			continue
		}
		owned = append(owned, obj)
	}
	slices.SortFunc(owned, func(a, b *client.ObjectData) int {
		return bytes.Compare(a.ObjectId[:], b.ObjectId[:])
	})

	pageSize := uint64(defaultPageSize)
	if limit != nil && *limit > 0 {
		pageSize = min(*limit, defaultPageSize)
	}

	page := &client.ObjectsPage{Data: make([]*client.ObjectResponse, 0, min(uint64(len(owned)), pageSize))}
	for _, obj := range owned {
		if uint64(len(page.Data)) == pageSize {
			page.HasNextPage = true
			break
		}
		page.Data = append(page.Data, &client.ObjectResponse{Data: obj})
		page.NextCursor = &obj.ObjectId
	}
	return page, nil
}

func (api *suixApi) GetBalance(owner types.Address, coinType *string) (*client.Balance, error) {
	api.node.mu.RLock()
	defer api.node.mu.RUnlock()

	coin := DefaultCoinType
	if coinType != nil {
		coin = *coinType
	}
	if balance, ok := api.node.balances[owner][coin]; ok {
		return balance, nil
	}
	return &client.Balance{
		CoinType:      coin,
		LockedBalance: map[string]types.U128{},
	}, nil
}
