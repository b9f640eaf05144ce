package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

type (
	RetryPolicyFunc func(attempt uint32, err error) bool
	NextDelayFunc   func(attempt uint32) time.Duration
)

type RetryConfig struct {
	ShouldRetry RetryPolicyFunc
	NextDelay   NextDelayFunc
}

type RetryRunner struct {
	config RetryConfig
	logger zerolog.Logger
}

func NewRetryRunner(config RetryConfig, logger zerolog.Logger) RetryRunner {
	return RetryRunner{
		config: config,
		logger: logger,
	}
}

func (r *RetryRunner) Do(ctx context.Context, action func(ctx context.Context) error) error {
	attemptNumber := uint32(0)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		attemptNumber++
		err := action(ctx)
		if err == nil || !r.config.ShouldRetry(attemptNumber, err) {
			return err
		}

		delay := r.config.NextDelay(attemptNumber)
		r.logger.Warn().Err(err).Msgf("operation failed, retrying in %s (try %d)", delay, attemptNumber)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
}

func LimitRetries(maxRetries uint32) RetryPolicyFunc {
	return func(attemptNumber uint32, _ error) bool {
		return attemptNumber < maxRetries
	}
}

func ComposeRetryPolicies(policies ...RetryPolicyFunc) RetryPolicyFunc {
	return func(attempt uint32, err error) bool {
		for _, policy := range policies {
			if !policy(attempt, err) {
				return false
			}
		}
		return true
	}
}

func DoNotRetryIf(nonRetryable ...error) RetryPolicyFunc {
	return func(_ uint32, err error) bool {
		for _, nonRetryableErr := range nonRetryable {
			if errors.Is(err, nonRetryableErr) {
				return false
			}
		}
		return true
	}
}

// DelayExponential doubles the delay on every attempt starting from baseDelay, capped by maxDelay.
func DelayExponential(baseDelay, maxDelay time.Duration) NextDelayFunc {
	if baseDelay > maxDelay {
		panic(fmt.Sprintf("baseDelay %s > maxDelay %s", baseDelay, maxDelay))
	}

	return func(attemptNumber uint32) time.Duration {
		result := baseDelay
		for i := uint32(1); i < attemptNumber; i++ {
			result *= 2
			if result >= maxDelay {
				return maxDelay
			}
		}
		return result
	}
}
