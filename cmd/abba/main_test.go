package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/abba/internal/app"
	"github.com/katalvlaran/abba/internal/cli"
)

func TestRun_Demo(t *testing.T) {
	var out, logs bytes.Buffer

	err := run(&out, &logs, []string{"-n", "4", "-alphabet", "once", "-start", "once"})
	require.NoError(t, err)
	require.Equal(t,
		"once: distance 2 to ecce via once -> ence -> ecce (n=4, alphabet {o, n, c, e}, visited 29)\n",
		out.String())
	require.Contains(t, logs.String(), `"msg":"graph built"`)
}

func TestRun_ShouldExit(t *testing.T) {
	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when help is requested")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_UsageError(t *testing.T) {
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"-format", "json", "-start", "ab"})

	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, cli.ExitUsage, exitErr.Code)
}

func TestRun_QueryFileWithFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queries.yaml")
	body := "format: yaml\nqueries:\n  - {n: 2, alphabet: [a, b], start: ab}\n  - {n: 2, alphabet: [a, b], start: abc}\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	var out bytes.Buffer
	err := run(&out, &bytes.Buffer{}, []string{"-config", path, "-log-level", "error"})

	require.ErrorIs(t, err, app.ErrQueryFailed)
	require.Contains(t, out.String(), "results:")
	require.Contains(t, out.String(), "start: ab\n")
	require.Contains(t, out.String(), "start vertex not found")
}
