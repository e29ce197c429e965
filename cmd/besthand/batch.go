package main

import (
	"fmt"
	"io"
	"os"

	"github.com/coder/quartz"

	"github.com/lox/besthand/internal/deck"
	"github.com/lox/besthand/internal/randutil"
	"github.com/lox/besthand/internal/runner"
	"github.com/lox/besthand/poker"
)

// BatchCmd evaluates hands read one per line.
type BatchCmd struct {
	File     string `arg:"" optional:"" default:"-" help:"File with one hand per line ('-' for stdin)"`
	Workers  *int   `help:"Concurrent evaluations (overrides config, 0 = one per CPU)"`
	NoJokers bool   `help:"Reject jokers and use the plain best-hand search"`

	Stdin io.Reader `kong:"-"`
}

func (c *BatchCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	in := c.Stdin
	if in == nil {
		in = os.Stdin
	}
	if c.File != "-" {
		f, err := os.Open(c.File)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	hands, err := runner.ReadHands(in)
	if err != nil {
		return err
	}
	return runHands(e, hands, c.Workers, !c.NoJokers)
}

// SampleCmd deals random hands and evaluates them.
type SampleCmd struct {
	Count   int    `short:"n" default:"10" help:"Number of hands to deal"`
	Seed    *int64 `help:"Random seed for reproducible hands"`
	Jokers  bool   `short:"j" help:"Add the black and red jokers to the deck"`
	Workers *int   `help:"Concurrent evaluations (overrides config, 0 = one per CPU)"`
}

// Validate rejects counts kong accepts but dealing cannot honour.
func (c *SampleCmd) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("count must not be negative, got %d", c.Count)
	}
	return nil
}

func (c *SampleCmd) Run(g *Globals) error {
	if err := c.Validate(); err != nil {
		return err
	}
	e, err := g.setup()
	if err != nil {
		return err
	}

	seed := randutil.Seed(c.Seed, quartz.NewReal())
	e.logger.Info("Dealing hands", "count", c.Count, "seed", seed, "jokers", c.Jokers)

	d := deck.New(randutil.New(seed), c.Jokers)
	return runHands(e, runner.Numbered(d.Hands(c.Count, poker.HandSize)), c.Workers, true)
}

func runHands(e *env, hands []runner.Hand, workers *int, jokers bool) error {
	n := e.cfg.Batch.Workers
	if workers != nil {
		n = *workers
	}

	ctx, cancel := signalContext(e.logger)
	defer cancel()

	r := runner.New(e.logger, quartz.NewReal(),
		runner.WithWorkers(n),
		runner.WithJokers(jokers))
	rep, err := r.Run(ctx, hands)
	if err != nil {
		return err
	}
	return e.write(rep)
}
