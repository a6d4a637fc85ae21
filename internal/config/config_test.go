package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/abba/internal/config"
)

const sampleYAML = `
log_level: debug
format: yaml
max_vertices: 100000
print_graph: true
queries:
  - n: 4
    alphabet: [o, n, c, e]
    start: once
  - n: 2
    alphabet: [a, b]
    start: ab
`

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "queries.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, config.FormatText, cfg.Format)
	assert.Zero(t, cfg.MaxVertices)
	assert.False(t, cfg.PrintGraph)
	assert.Empty(t, cfg.Queries)
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load(writeFile(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, config.FormatYAML, cfg.Format)
	assert.Equal(t, 100000, cfg.MaxVertices)
	assert.True(t, cfg.PrintGraph)
	require.Len(t, cfg.Queries, 2)
	assert.Equal(t, config.Query{N: 4, Alphabet: []string{"o", "n", "c", "e"}, Start: "once"}, cfg.Queries[0])
	assert.Equal(t, "ab", cfg.Queries[1].Symbols())
	require.NoError(t, cfg.Validate())
}

func TestLoad_KeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := config.Load(writeFile(t, "queries:\n  - {n: 3, alphabet: [a, b, c], start: abc}\n"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, config.FormatText, cfg.Format)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(writeFile(t, "queries: [\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	// unknown key
	_, err = config.Load(writeFile(t, "querys: []\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestDecode_Empty(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, config.Decode(strings.NewReader(""), cfg))
	assert.Equal(t, config.Default(), cfg)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(config.EnvLogLevel, " WARN ")
	t.Setenv(config.EnvMaxVertices, "512")

	cfg := config.Default()
	require.NoError(t, config.ApplyEnv(cfg))
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 512, cfg.MaxVertices)
}

func TestApplyEnv_UnsetKeepsConfig(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")

	cfg := config.Default()
	cfg.MaxVertices = 77
	require.NoError(t, config.ApplyEnv(cfg))
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 77, cfg.MaxVertices)
}

func TestApplyEnv_Invalid(t *testing.T) {
	t.Setenv(config.EnvMaxVertices, "lots")

	err := config.ApplyEnv(config.Default())
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), config.EnvMaxVertices)
}

func TestValidate(t *testing.T) {
	valid := func() *config.Config {
		cfg := config.Default()
		cfg.Queries = []config.Query{{N: 4, Alphabet: config.SplitSymbols("once"), Start: "once"}}
		return cfg
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"no queries", func(c *config.Config) { c.Queries = nil }, "queries is required"},
		{"log level", func(c *config.Config) { c.LogLevel = "loud" }, "log_level must be one of"},
		{"format", func(c *config.Config) { c.Format = "json" }, "format must be one of"},
		{"max vertices", func(c *config.Config) { c.MaxVertices = -1 }, "max_vertices must be >= 0"},
		{"negative n", func(c *config.Config) { c.Queries[0].N = -2 }, "queries[0].n must be >= 0"},
		{"multi-rune symbol", func(c *config.Config) { c.Queries[0].Alphabet = []string{"on", "c"} }, `queries[0].alphabet[0] must be a single symbol, got "on"`},
		{"empty symbol", func(c *config.Config) { c.Queries[0].Alphabet = []string{"a", ""} }, "queries[0].alphabet[1] must be a single symbol"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, config.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

// n == 0 and an empty alphabet are valid queries; they ask for an absent graph.
func TestValidate_AbsentGraphQueriesPass(t *testing.T) {
	cfg := config.Default()
	cfg.Queries = []config.Query{{N: 0, Alphabet: []string{"a"}}, {N: 3}}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_ReportsAllViolations(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "loud"
	cfg.Format = "xml"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")
	assert.Contains(t, err.Error(), "format")
	assert.Contains(t, err.Error(), "queries")
}

func TestSplitSymbols(t *testing.T) {
	assert.Equal(t, []string{"o", "n", "c", "e"}, config.SplitSymbols("once"))
	assert.Equal(t, []string{"α", "β"}, config.SplitSymbols("αβ"))
	assert.Empty(t, config.SplitSymbols(""))
}
