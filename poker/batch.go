package poker

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

type batchConfig struct {
	workers int
	jokers  bool
}

// BatchOption configures EvaluateAll.
type BatchOption func(*batchConfig)

// WithWorkers caps the number of hands evaluated at once. Values below one
// fall back to runtime.NumCPU.
func WithWorkers(n int) BatchOption {
	return func(c *batchConfig) {
		c.workers = n
	}
}

// WithJokers selects BestWildHand (true, the default) or BestHand (false).
func WithJokers(enabled bool) BatchOption {
	return func(c *batchConfig) {
		c.jokers = enabled
	}
}

// EvaluateAll finds the best hand for each input hand concurrently. Results
// line up with hands by index. The first failing hand cancels the rest and
// its error is returned as a *HandError.
func EvaluateAll(ctx context.Context, hands [][]Card, opts ...BatchOption) ([]Result, error) {
	cfg := batchConfig{jokers: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = runtime.NumCPU()
	}

	evaluate := BestWildHand
	if !cfg.jokers {
		evaluate = BestHand
	}

	results := make([]Result, len(hands))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)

	for i, hand := range hands {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := evaluate(hand)
			if err != nil {
				return &HandError{Index: i, Err: err}
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Cancelling the parent before any work starts leaves g.Wait clean.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
