// Package config loads the engine's startup configuration from a TOML file,
// mirroring the shape of the original implementation's config/arb.toml.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// OnUpdateReturn selects the parallel evaluator's selection policy.
type OnUpdateReturn string

const (
	OnUpdateFirst OnUpdateReturn = "first"
	OnUpdateBest  OnUpdateReturn = "best"
)

// EvaluatorKind selects which Evaluator variant the pipeline constructs.
type EvaluatorKind string

const (
	EvaluatorNaive  EvaluatorKind = "naive"
	EvaluatorEdge   EvaluatorKind = "edge"
	EvaluatorRayon  EvaluatorKind = "rayon"
)

// RayonScan holds the options specific to the parallel evaluator variant.
type RayonScan struct {
	OnUpdateReturn OnUpdateReturn `toml:"on_update_return"`
	Workers        int            `toml:"workers"`
}

// Config is the full recognized configuration surface. Unknown keys in the
// source file are ignored by BurntSushi/toml's default decode behavior.
type Config struct {
	HomeAsset        string        `toml:"home_asset"`
	Evaluator        EvaluatorKind `toml:"evaluator"`
	Targets          []string      `toml:"targets"`
	ExchangeInfoPath string        `toml:"exchange_info_path"`
	RayonScan        RayonScan     `toml:"rayon_scan"`
}

// Defaults returns the configuration used when a key is absent from the
// source file.
func Defaults() Config {
	return Config{
		HomeAsset: "USDT",
		Evaluator: EvaluatorEdge,
		RayonScan: RayonScan{
			OnUpdateReturn: OnUpdateBest,
		},
	}
}

// Load reads and validates a TOML configuration file at path. A malformed
// file, or a well-formed file with an invalid value, is reported as a
// single wrapped error — configuration failures are fatal at startup and
// are never retried.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks that every recognized field holds one of its accepted
// values. Malformed values fail with a clear, field-named message.
func (c *Config) Validate() error {
	if c.HomeAsset == "" {
		return fmt.Errorf("home_asset must not be empty")
	}
	switch c.Evaluator {
	case EvaluatorNaive, EvaluatorEdge, EvaluatorRayon:
	default:
		return fmt.Errorf("evaluator: unrecognized value %q (want naive, edge, or rayon)", c.Evaluator)
	}
	switch c.RayonScan.OnUpdateReturn {
	case OnUpdateFirst, OnUpdateBest:
	default:
		return fmt.Errorf("rayon_scan.on_update_return: unrecognized value %q (want first or best)", c.RayonScan.OnUpdateReturn)
	}
	if c.RayonScan.Workers < 0 {
		return fmt.Errorf("rayon_scan.workers must not be negative")
	}
	return nil
}
