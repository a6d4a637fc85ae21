package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Load reads the YAML query file at path on top of Default(). The result
// is not validated; callers apply overrides first, then call Validate.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrInvalidConfig, path, err)
	}

	cfg := Default()
	if err := Decode(bytes.NewReader(data), cfg); err != nil {
		return nil, fmt.Errorf("%w (file %s)", err, path)
	}

	return cfg, nil
}

// Decode overlays the YAML document read from r onto cfg. Unknown keys are
// rejected so that typos in a query file do not pass silently. An empty
// document leaves cfg untouched.
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: parsing yaml: %v", ErrInvalidConfig, err)
	}

	return nil
}

// envOverrides mirrors the Config fields that may come from the
// environment. Pointers stay nil when the variable is unset.
type envOverrides struct {
	LogLevel    string `envconfig:"LOG_LEVEL"`
	MaxVertices *int   `envconfig:"MAX_VERTICES"`
}

// ApplyEnv overlays the ABBA_* environment overrides onto cfg. Unset
// variables (and an empty ABBA_LOG_LEVEL) leave cfg alone; a value that does
// not parse fails with ErrInvalidConfig.
func ApplyEnv(cfg *Config) error {
	var env envOverrides
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if v := strings.TrimSpace(env.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if env.MaxVertices != nil {
		cfg.MaxVertices = *env.MaxVertices
	}

	return nil
}
