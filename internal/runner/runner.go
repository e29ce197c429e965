// Package runner evaluates many hands at once and collects a report.
package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/besthand/internal/report"
	"github.com/lox/besthand/poker"
)

// Runner evaluates batches of 7-card hands.
type Runner struct {
	logger  *log.Logger
	clock   quartz.Clock
	workers int
	jokers  bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers sets the evaluation concurrency (0 = one per CPU).
func WithWorkers(n int) Option {
	return func(r *Runner) { r.workers = n }
}

// WithJokers toggles wildcard evaluation. It is on by default.
func WithJokers(enabled bool) Option {
	return func(r *Runner) { r.jokers = enabled }
}

// New creates a Runner. The clock times each run.
func New(logger *log.Logger, clock quartz.Clock, opts ...Option) *Runner {
	r := &Runner{
		logger: logger.WithPrefix("runner"),
		clock:  clock,
		jokers: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Hand is one input hand and the line it came from.
type Hand struct {
	Line  int
	Cards []poker.Card
}

// Numbered wraps dealt hands, numbering them from 1.
func Numbered(hands [][]poker.Card) []Hand {
	out := make([]Hand, len(hands))
	for i, cards := range hands {
		out[i] = Hand{Line: i + 1, Cards: cards}
	}
	return out
}

// ReadHands parses one hand per line. Blank lines and lines starting with
// '#' are skipped; each hand keeps its line number.
func ReadHands(r io.Reader) ([]Hand, error) {
	var hands []Hand
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		hand, err := poker.ParseHand(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		hands = append(hands, Hand{Line: line, Cards: hand})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read hands: %w", err)
	}
	return hands, nil
}

// Run evaluates every hand and returns a report with a summary. A failing
// hand is reported by its line number.
func (r *Runner) Run(ctx context.Context, hands []Hand) (report.Report, error) {
	r.logger.Debug("Evaluating hands", "count", len(hands), "workers", r.workers, "jokers", r.jokers)

	cards := make([][]poker.Card, len(hands))
	for i, h := range hands {
		cards[i] = h.Cards
	}

	start := r.clock.Now()
	results, err := poker.EvaluateAll(ctx, cards,
		poker.WithWorkers(r.workers),
		poker.WithJokers(r.jokers))
	if err != nil {
		var herr *poker.HandError
		if errors.As(err, &herr) {
			err = fmt.Errorf("line %d: %w", hands[herr.Index].Line, herr.Err)
		}
		r.logger.Error("Evaluation failed", "error", err)
		return report.Report{}, err
	}
	elapsed := r.clock.Since(start)

	rep := report.Report{Hands: make([]report.Record, len(results))}
	for i, res := range results {
		rep.Hands[i] = report.NewRecord(hands[i].Cards, res)
		r.logger.Debug("Best hand", "input", strings.Join(rep.Hands[i].Input, " "), "best", res)
	}
	summary := report.Summarize(results, elapsed)
	rep.Summary = &summary

	r.logger.Info("Evaluated hands", "count", len(results), "elapsed", elapsed)
	return rep, nil
}
