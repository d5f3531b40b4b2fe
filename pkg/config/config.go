// Package config loads the settings shared by the alpha_abbrev commands from
// the environment, optionally seeded from a `.env` file. Command line flags
// are applied on top by each command.
package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	FormatTSV   = "tsv"
	FormatJSONL = "jsonl"
)

var (
	ErrParsingConfig = errors.New("failed to parse environment variables into config")
	ErrInvalidConfig = errors.New("invalid configuration")
)

type Config struct {
	// Word list used for expansion, a path or an http(s) URL. Empty means
	// the embedded list.
	Lexicon      string `env:"ABBREV_LEXICON"`
	LexiconCache string `env:"ABBREV_LEXICON_CACHE"`
	CacheSize    int    `env:"ABBREV_CACHE_SIZE" envDefault:"65536"`
	Threads      int    `env:"ABBREV_THREADS" envDefault:"4"`
	OutputFormat string `env:"ABBREV_OUTPUT_FORMAT" envDefault:"tsv"`
}

var dotenvLoaded sync.Once

// Load reads the configuration from the process environment, after loading
// `.env` from the working directory if there is one.
func Load() (Config, error) {
	dotenvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}
	return cfg, cfg.Validate()
}

// LoadFrom reads the configuration from `environment` instead of the process
// environment.
func LoadFrom(environment map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{
		Environment: environment,
	}); err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}
	return cfg, cfg.Validate()
}

func (cfg Config) Validate() error {
	var errs []error
	if cfg.CacheSize < 1 {
		errs = append(errs, fmt.Errorf("cache size must be positive, got %d",
			cfg.CacheSize))
	}
	if cfg.Threads < 1 {
		errs = append(errs, fmt.Errorf("threads must be positive, got %d",
			cfg.Threads))
	}
	switch cfg.OutputFormat {
	case FormatTSV, FormatJSONL:
	default:
		errs = append(errs, fmt.Errorf("output format must be %q or %q, got %q",
			FormatTSV, FormatJSONL, cfg.OutputFormat))
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}
	return nil
}
