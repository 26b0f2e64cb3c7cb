// Package config manages the promptkit configuration file at
// ~/.config/promptkit/config.toml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/promptkit/promptkit/model"
	"github.com/promptkit/promptkit/tokens"
)

// Config holds user-wide settings. Every field has a working default,
// so a missing config file is never an error.
type Config struct {
	CharsPerToken  float64 `toml:"chars_per_token" validate:"gt=0"`
	DefaultModel   string  `toml:"default_model"`
	Margin         float64 `toml:"margin" validate:"gte=0"`
	OverlapPercent float64 `toml:"overlap_percent" validate:"gte=0,lte=100"`
	Catalog        string  `toml:"catalog"`
	NoColor        bool    `toml:"no_color"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	// Report violations by their config file key, not the Go field name.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
}

// Default returns the built-in configuration values.
func Default() Config {
	return Config{
		CharsPerToken:  tokens.DefaultCharsPerToken,
		DefaultModel:   "claude-sonnet-4",
		Margin:         model.DefaultMargin,
		OverlapPercent: 10,
	}
}

// Path returns the location of the config file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "promptkit", "config.toml"), nil
}

// Load reads the config file if present, applies PROMPTKIT_* environment
// overrides, and validates the result.
func Load() (Config, error) {
	cfg := Default()

	path, err := Path()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if _, decodeErr := toml.DecodeFile(path, &cfg); decodeErr != nil {
				return cfg, fmt.Errorf("config: load %s: %w", path, decodeErr)
			}
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PROMPTKIT_MODEL"); v != "" {
		cfg.DefaultModel = v
	}
	if v := os.Getenv("PROMPTKIT_CATALOG"); v != "" {
		cfg.Catalog = v
	}
	if v := os.Getenv("PROMPTKIT_NO_COLOR"); v != "" {
		cfg.NoColor = v != "0" && !strings.EqualFold(v, "false")
	}
}

// Validate checks that all values are in range, naming the offending
// config key on failure.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("config: validate: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s violates %q (value %v)", e.Field(), e.Tag(), e.Value()))
	}
	return fmt.Errorf("config: %s", strings.Join(msgs, "; "))
}

// Save writes the config file, creating the directory if needed.
func Save(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: mkdir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
