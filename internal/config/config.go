// Package config loads the besthand CLI configuration from an HCL file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is the config path used when none is given.
const DefaultFile = "besthand.hcl"

// Config is the complete CLI configuration.
type Config struct {
	Log    LogSettings    `hcl:"log,block"`
	Output OutputSettings `hcl:"output,block"`
	Batch  BatchSettings  `hcl:"batch,block"`
}

// LogSettings controls logging.
type LogSettings struct {
	Level string `hcl:"level,optional" validate:"oneof=debug info warn error"`
}

// OutputSettings controls how results are written.
type OutputSettings struct {
	Format string `hcl:"format,optional" validate:"oneof=text json toml"`
	Color  *bool  `hcl:"color,optional"`
}

// ColorEnabled reports whether text output should be styled.
func (o OutputSettings) ColorEnabled() bool {
	return o.Color == nil || *o.Color
}

// BatchSettings controls concurrent evaluation. Zero workers means one per CPU.
type BatchSettings struct {
	Workers int `hcl:"workers,optional" validate:"gte=0,lte=1024"`
}

// file mirrors Config with optional blocks.
type file struct {
	Log    *LogSettings    `hcl:"log,block"`
	Output *OutputSettings `hcl:"output,block"`
	Batch  *BatchSettings  `hcl:"batch,block"`
}

var validate = validator.New()

// Default returns the built-in configuration.
func Default() *Config {
	color := true
	return &Config{
		Log:    LogSettings{Level: "info"},
		Output: OutputSettings{Format: "text", Color: &color},
		Batch:  BatchSettings{Workers: 0},
	}
}

// Load reads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	cfg := Default()

	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw file
	diags = gohcl.DecodeBody(f.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply file values over defaults
	if raw.Log != nil && raw.Log.Level != "" {
		cfg.Log.Level = strings.ToLower(raw.Log.Level)
	}
	if raw.Output != nil {
		if raw.Output.Format != "" {
			cfg.Output.Format = strings.ToLower(raw.Output.Format)
		}
		if raw.Output.Color != nil {
			cfg.Output.Color = raw.Output.Color
		}
	}
	if raw.Batch != nil {
		cfg.Batch.Workers = raw.Batch.Workers
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
