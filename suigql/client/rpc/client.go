package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/NilFoundation/suigql/suigql/client"
	"github.com/NilFoundation/suigql/suigql/common"
	"github.com/NilFoundation/suigql/suigql/common/check"
	"github.com/NilFoundation/suigql/suigql/common/logging"
	"github.com/NilFoundation/suigql/suigql/internal/types"
	"github.com/rs/zerolog"
)

var (
	ErrFailedToMarshalRequest    = errors.New("failed to marshal request")
	ErrFailedToSendRequest       = errors.New("failed to send request")
	ErrUnexpectedStatusCode      = errors.New("unexpected status code")
	ErrFailedToReadResponse      = errors.New("failed to read response")
	ErrFailedToUnmarshalResponse = errors.New("failed to unmarshal response")
	ErrRPCError                  = errors.New("rpc error")
	ErrUnexpectedResponseCount   = errors.New("unexpected number of objects in response")
)

const (
	Sui_getObject           = "sui_getObject"
	Sui_tryGetPastObject    = "sui_tryGetPastObject"
	Sui_multiGetObjects     = "sui_multiGetObjects"
	Sui_getTransactionBlock = "sui_getTransactionBlock"
	Sui_getChainIdentifier  = "sui_getChainIdentifier"
	Sui_getProtocolConfig   = "sui_getProtocolConfig"
	Suix_getOwnedObjects    = "suix_getOwnedObjects"
	Suix_getBalance         = "suix_getBalance"
)

type Client struct {
	endpoint string
	seqno    atomic.Uint64
	client   http.Client
	headers  map[string]string
	logger   zerolog.Logger
	retrier  *common.RetryRunner
}

type Request struct {
	Version string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	Id      uint64 `json:"id"`
}

func NewRequest(id uint64, method string, params []any) *Request {
	if params == nil {
		params = []any{}
	}
	return &Request{
		Version: "2.0",
		Method:  method,
		Id:      id,
		Params:  params,
	}
}

var _ client.Client = (*Client)(nil)

func NewClient(endpoint string, logger zerolog.Logger, opts ...Option) *Client {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	httpClient, url := NewHttpClient(endpoint)
	httpClient.Timeout = cfg.timeout
	c := &Client{
		endpoint: url,
		logger:   logger,
		headers:  cfg.headers,
		client:   httpClient,
	}

	if cfg.retry != nil {
		retrier := common.NewRetryRunner(*cfg.retry, c.logger)
		c.retrier = &retrier
	}

	return c
}

func NewRawClient(endpoint string, logger zerolog.Logger, opts ...Option) client.RawClient {
	return NewClient(endpoint, logger, opts...)
}

// NewHttpClient understands unix:// (socket path) and tcp:// (plain http) endpoints besides regular URLs.
func NewHttpClient(url string) (http.Client, string) {
	client := http.Client{}
	endpoint := url
	if strings.HasPrefix(url, "unix://") {
		socketPath := strings.TrimPrefix(url, "unix://")
		endpoint = "http://unix"
		check.PanicIfNot(socketPath != "")
		client.Transport = &http.Transport{
			DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
				var d net.Dialer
				return d.DialContext(ctx, "unix", socketPath)
			},
		}
	} else if strings.HasPrefix(url, "tcp://") {
		endpoint = "http://" + strings.TrimPrefix(url, "tcp://")
	}
	return client, endpoint
}

func (c *Client) getNextId() uint64 {
	return c.seqno.Add(1)
}

func (c *Client) newRequest(method string, params ...any) *Request {
	return NewRequest(c.getNextId(), method, params)
}

func (c *Client) call(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	request := c.newRequest(method, params...)
	return c.performRequest(ctx, request)
}

func (c *Client) performRequest(ctx context.Context, request *Request) (json.RawMessage, error) {
	requestBody, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToMarshalRequest, err)
	}

	var result json.RawMessage
	call := func(ctx context.Context) error {
		body, err := c.PlainTextCall(ctx, requestBody)
		if err != nil {
			return err
		}

		var rpcResponse map[string]json.RawMessage
		if err := json.Unmarshal(body, &rpcResponse); err != nil {
			c.logger.Debug().Str("response", string(body)).Msg("failed to unmarshal response")
			return fmt.Errorf("%w: %w", ErrFailedToUnmarshalResponse, err)
		}
		c.logger.Trace().
			Str(logging.FieldRpcMethod, request.Method).
			Uint64(logging.FieldReqId, request.Id).
			RawJSON(logging.FieldRpcResult, body).
			Send()

		if errorMsg, ok := rpcResponse["error"]; ok {
			return fmt.Errorf("%w: %s", ErrRPCError, errorMsg)
		}
		result = rpcResponse["result"]
		return nil
	}

	if c.retrier != nil {
		err = c.retrier.Do(ctx, call)
	} else {
		err = call(ctx)
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) PlainTextCall(ctx context.Context, requestBody []byte) (json.RawMessage, error) {
	c.logger.Trace().RawJSON("request", requestBody).Send()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToSendRequest, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToReadResponse, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d: %s", ErrUnexpectedStatusCode, resp.StatusCode, body)
	}
	return body, nil
}

func (c *Client) RawCall(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	return c.call(ctx, method, params...)
}

func callInto[T any](ctx context.Context, c *Client, method string, params ...any) (T, error) {
	var res T
	raw, err := c.call(ctx, method, params...)
	if err != nil {
		return res, err
	}
	if err := json.Unmarshal(raw, &res); err != nil {
		return res, fmt.Errorf("%w: %s: %w", ErrFailedToUnmarshalResponse, method, err)
	}
	return res, nil
}

func (c *Client) GetObjectWithOptions(
	ctx context.Context, objectId types.ObjectID, options *client.ObjectDataOptions,
) (*client.ObjectResponse, error) {
	return callInto[*client.ObjectResponse](ctx, c, Sui_getObject, objectId, options)
}

func (c *Client) TryGetPastObject(
	ctx context.Context, objectId types.ObjectID, version types.SequenceNumber, options *client.ObjectDataOptions,
) (*client.PastObjectResponse, error) {
	return callInto[*client.PastObjectResponse](ctx, c, Sui_tryGetPastObject, objectId, version, options)
}

func (c *Client) MultiGetObjectsWithOptions(
	ctx context.Context, objectIds []types.ObjectID, options *client.ObjectDataOptions,
) ([]*client.ObjectResponse, error) {
	if len(objectIds) == 0 {
		return nil, nil
	}

	res, err := callInto[[]*client.ObjectResponse](ctx, c, Sui_multiGetObjects, objectIds, options)
	if err != nil {
		return nil, err
	}
	if len(res) != len(objectIds) {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrUnexpectedResponseCount, len(objectIds), len(res))
	}
	return res, nil
}

func (c *Client) GetOwnedObjects(
	ctx context.Context,
	owner types.Address,
	query *client.ObjectResponseQuery,
	cursor *types.ObjectID,
	limit *uint64,
) (*client.ObjectsPage, error) {
	return callInto[*client.ObjectsPage](ctx, c, Suix_getOwnedObjects, owner, query, cursor, limit)
}

func (c *Client) GetBalance(ctx context.Context, owner types.Address, coinType *string) (*client.Balance, error) {
	return callInto[*client.Balance](ctx, c, Suix_getBalance, owner, coinType)
}

func (c *Client) GetTransactionWithOptions(
	ctx context.Context, digest types.TransactionDigest, options *client.TransactionBlockResponseOptions,
) (*client.TransactionBlockResponse, error) {
	return callInto[*client.TransactionBlockResponse](ctx, c, Sui_getTransactionBlock, digest, options)
}

func (c *Client) GetChainIdentifier(ctx context.Context) (string, error) {
	return callInto[string](ctx, c, Sui_getChainIdentifier)
}

func (c *Client) GetProtocolConfig(ctx context.Context, version *types.U64) (*client.ProtocolConfigResponse, error) {
	return callInto[*client.ProtocolConfigResponse](ctx, c, Sui_getProtocolConfig, version)
}
