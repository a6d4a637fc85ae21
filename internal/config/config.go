package config

import (
	"errors"
	"strings"
)

// ErrInvalidConfig wraps every load, decode, override and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// envPrefix namespaces the variables read by ApplyEnv.
const envPrefix = "ABBA"

// Environment variables read by ApplyEnv.
const (
	EnvLogLevel    = "ABBA_LOG_LEVEL"
	EnvMaxVertices = "ABBA_MAX_VERTICES"
)

// Output formats understood by the report renderer.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Query asks for the palindrome distance of Start inside G_r(N, Alphabet).
// Alphabet entries are single symbols; duplicates are dropped when the
// alphabet is parsed, keeping the first occurrence.
type Query struct {
	N        int      `yaml:"n" validate:"gte=0"`
	Alphabet []string `yaml:"alphabet" validate:"dive,symbol"`
	Start    string   `yaml:"start"`
}

// Symbols renders the alphabet as one string, e.g. "once".
func (q Query) Symbols() string { return strings.Join(q.Alphabet, "") }

// Config is the full run configuration.
type Config struct {
	LogLevel    string  `yaml:"log_level" validate:"oneof=debug info warn error"`
	Format      string  `yaml:"format" validate:"oneof=text yaml"`
	MaxVertices int     `yaml:"max_vertices" validate:"gte=0"`
	PrintGraph  bool    `yaml:"print_graph"`
	Queries     []Query `yaml:"queries" validate:"required,min=1,dive"`
}

// Default returns the configuration used when nothing else is supplied:
// info logging, text output, no vertex limit, no queries.
func Default() *Config {
	return &Config{
		LogLevel:    "info",
		Format:      FormatText,
		MaxVertices: 0,
	}
}

// SplitSymbols turns a compact alphabet string such as "once" into one
// entry per rune, the form Query.Alphabet expects.
func SplitSymbols(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}

	return out
}
