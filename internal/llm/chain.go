package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"github.com/closetarchive/archivist/internal/common"
)

// ChainConfig configures the fallback chain.
type ChainConfig struct {
	RequestsPerMinute int
	// BreakerTimeout is how long a tripped model stays out of rotation.
	BreakerTimeout time.Duration
}

type chainEntry struct {
	client  Client
	breaker *gobreaker.CircuitBreaker
}

// Chain tries a list of clients in order until one produces a judgment.
// Each model sits behind its own circuit breaker, so a model returning
// repeated garbage is skipped without waiting out its timeout every time,
// and the whole chain shares one rate limiter.
type Chain struct {
	limiter *rateLimiter
	entries []chainEntry
}

// NewChain builds a chain over the given clients, primary first.
func NewChain(cfg ChainConfig, clients ...Client) (*Chain, error) {
	if len(clients) == 0 {
		return nil, fmt.Errorf("at least one client is required")
	}

	breakerTimeout := cfg.BreakerTimeout
	if breakerTimeout == 0 {
		breakerTimeout = 60 * time.Second
	}

	entries := make([]chainEntry, 0, len(clients))
	for _, client := range clients {
		entries = append(entries, chainEntry{
			client: client,
			breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
				Name:    client.ModelID(),
				Timeout: breakerTimeout,
				ReadyToTrip: func(counts gobreaker.Counts) bool {
					return counts.ConsecutiveFailures >= 3
				},
			}),
		})
	}

	return &Chain{
		entries: entries,
		limiter: newRateLimiter(cfg.RequestsPerMinute),
	}, nil
}

// ModelID reports the primary model.
func (c *Chain) ModelID() string {
	return c.entries[0].client.ModelID()
}

// Judge walks the chain until a client succeeds. Every attempt takes a rate
// limiter token first. The error from the last attempted client is returned
// when all fail; a canceled context stops the walk immediately.
func (c *Chain) Judge(ctx context.Context, req Request) (Judgment, error) {
	var lastErr error

	for _, entry := range c.entries {
		if err := ctx.Err(); err != nil {
			return Judgment{}, err
		}

		if err := c.limiter.wait(ctx); err != nil {
			return Judgment{}, err
		}

		result, err := entry.breaker.Execute(func() (any, error) {
			return entry.client.Judge(ctx, req)
		})
		if err == nil {
			return result.(Judgment), nil
		}

		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			common.LogDebug("Model circuit open, skipping", common.Fields{
				"model": entry.client.ModelID(),
			})
		} else {
			lastErr = err
			slog.Warn("Model judgment failed, trying next",
				"model", entry.client.ModelID(),
				"error", err)
		}
	}

	// Callers treat an exhausted chain as a missing signal.
	if lastErr == nil {
		return Judgment{}, fmt.Errorf("%w: all model circuits open", common.ErrNoModelResult)
	}
	return Judgment{}, fmt.Errorf("%w: all models failed: %v", common.ErrNoModelResult, lastErr)
}

// Close releases the chain's rate limiter.
func (c *Chain) Close() {
	c.limiter.Close()
}
