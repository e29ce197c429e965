package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lox/besthand/internal/config"
	"github.com/lox/besthand/internal/fileutil"
	"github.com/lox/besthand/internal/report"
)

// Globals are flags shared by every command.
type Globals struct {
	Config   string `short:"c" default:"${config_file}" help:"Path to HCL configuration file"`
	LogLevel string `short:"l" help:"Log level: debug, info, warn, error (overrides config)"`
	Format   string `short:"f" help:"Output format: text, json, toml (overrides config)"`
	NoColor  bool   `help:"Disable styled text output"`
	Output   string `short:"o" type:"path" help:"Write the report to this file instead of stdout"`

	Stdout io.Writer `kong:"-"`
	Stderr io.Writer `kong:"-"`
}

// env is everything a command needs once flags and config are resolved.
type env struct {
	cfg    *config.Config
	logger *log.Logger
	out    *report.Writer
	format report.Format
	path   string
}

// write renders the report to stdout, or atomically to --output.
func (e *env) write(rep report.Report) error {
	if e.path == "" {
		return e.out.Write(rep)
	}
	err := fileutil.WriteAtomic(e.path, 0o644, func(w io.Writer) error {
		return report.NewWriter(w, e.format, false).Write(rep)
	})
	if err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	e.logger.Info("Wrote report", "path", e.path, "hands", len(rep.Hands))
	return nil
}

func (g *Globals) setup() (*env, error) {
	stdout, stderr := g.Stdout, g.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}

	// Apply command line overrides
	if g.LogLevel != "" {
		cfg.Log.Level = strings.ToLower(g.LogLevel)
	}
	if g.Format != "" {
		cfg.Output.Format = strings.ToLower(g.Format)
	}
	if g.NoColor {
		off := false
		cfg.Output.Color = &off
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(stderr, cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded configuration",
		"config", g.Config,
		"format", format,
		"color", cfg.Output.ColorEnabled(),
		"workers", cfg.Batch.Workers)

	return &env{
		cfg:    cfg,
		logger: logger,
		out:    report.NewWriter(stdout, format, cfg.Output.ColorEnabled()),
		format: format,
		path:   g.Output,
	}, nil
}

// newLogger builds the CLI logger; every line carries a short run ID.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "besthand",
	})
	return logger.With("run", uuid.NewString()[:8]), nil
}

// signalContext is cancelled on interrupt signals
func signalContext(logger *log.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("Received signal, stopping", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}
