// Package config resolves the settings shared by every trains command: where
// data files live, the output language and how records are printed.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/InternatManhole/trains/internal/locale"
	"github.com/InternatManhole/trains/internal/store"
)

var (
	ErrInvalidConfig = errors.New("invalid configuration")
)

type Config struct {
	// DataDir is the directory data file names are resolved against
	DataDir string `yaml:"data_dir,omitempty"`

	// Lang selects the language of table headers and messages
	Lang string `yaml:"lang,omitempty"`

	// Color enables colored notices when stdout is a terminal
	Color bool `yaml:"color"`

	// JSON prints records as JSON instead of a table
	JSON bool `yaml:"json,omitempty"`
}

func Default() Config {
	return Config{
		DataDir: store.DefaultDataDir,
		Lang:    locale.DefaultLanguage,
		Color:   true,
	}
}

// Load reads a YAML config file. Keys missing from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.DataDir == "" {
		return errors.Join(ErrInvalidConfig, errors.New("data directory must not be empty"))
	}
	if !locale.IsSupported(c.Lang) {
		return errors.Join(ErrInvalidConfig, fmt.Errorf("language %q is not one of %v", c.Lang, locale.Languages()))
	}
	return nil
}

type key struct{}

var configKey = key{}

func WithConfig(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// FromContext returns the Config stored by WithConfig.
func FromContext(ctx context.Context) Config {
	if cfg, ok := ctx.Value(configKey).(Config); ok {
		return cfg
	}
	panic("config: configuration missing from context")
}
