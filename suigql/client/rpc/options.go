package rpc

import (
	"time"

	"github.com/NilFoundation/suigql/suigql/common"
)

type config struct {
	retry   *common.RetryConfig
	headers map[string]string
	timeout time.Duration
}

type Option func(*config)

func RPCRetryConfig(rcfg *common.RetryConfig) Option {
	return func(cfg *config) {
		cfg.retry = rcfg
	}
}

// WithRetry retries requests that failed in transport up to maxAttempts times in total,
// doubling the delay between attempts from baseDelay up to maxDelay.
// Error responses of the node are returned without retrying.
func WithRetry(maxAttempts uint32, baseDelay, maxDelay time.Duration) Option {
	return RPCRetryConfig(&common.RetryConfig{
		ShouldRetry: common.ComposeRetryPolicies(
			common.LimitRetries(maxAttempts),
			common.DoNotRetryIf(ErrRPCError, ErrFailedToMarshalRequest, ErrFailedToUnmarshalResponse),
		),
		NextDelay: common.DelayExponential(baseDelay, maxDelay),
	})
}

func WithHeaders(headers map[string]string) Option {
	return func(cfg *config) {
		if cfg.headers == nil {
			cfg.headers = make(map[string]string, len(headers))
		}
		for k, v := range headers {
			cfg.headers[k] = v
		}
	}
}

// WithTimeout limits the duration of a single HTTP exchange. Zero means no limit.
func WithTimeout(timeout time.Duration) Option {
	return func(cfg *config) {
		cfg.timeout = timeout
	}
}
