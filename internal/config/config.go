package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"gitlab.com/gitlab-org/derp-numeric/internal/document"
	"gitlab.com/gitlab-org/derp-numeric/internal/logging"
	"gitlab.com/gitlab-org/derp-numeric/numeric"
)

const EnvPrefix = "DERP_NUMERIC_"

const DefaultMaxInputBytes = 4096

type Config struct {
	Format        string          `toml:"format" env:"FORMAT"`
	LogLevel      string          `toml:"log_level" env:"LOG_LEVEL"`
	LogFormat     string          `toml:"log_format" env:"LOG_FORMAT"`
	MaxInputBytes numeric.Numeric `toml:"max_input_bytes" env:"MAX_INPUT_BYTES"`
}

func Default() Config {
	return Config{
		Format:        document.JSON,
		LogLevel:      "info",
		LogFormat:     logging.TextFormat,
		MaxInputBytes: numeric.MustNew(DefaultMaxInputBytes),
	}
}

// Load applies, in order, the defaults, the TOML file at path (skipped when
// path is empty) and the DERP_NUMERIC_* variables in environ. A nil environ
// means the process environment.
func Load(path string, environ map[string]string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
		}
	}

	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("config env failed: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if !document.Supported(c.Format) {
		return fmt.Errorf("config: unsupported format %q", c.Format)
	}

	if c.LogFormat != logging.TextFormat && c.LogFormat != logging.JSONFormat {
		return fmt.Errorf("config: unsupported log_format %q", c.LogFormat)
	}

	if c.MaxInputBytes.IsZero() {
		return fmt.Errorf("config: max_input_bytes must be set")
	}

	return nil
}
