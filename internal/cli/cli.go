package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/abba/internal/config"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) error {
	return &ExitError{Code: ExitUsage, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a validated Config,
// a boolean indicating if the program should exit cleanly (help was
// printed), or an *ExitError with ExitUsage.
//
// Sources are layered as defaults < -config file < ABBA_* environment <
// explicitly set flags. A single query may be given with -start;
// -n and -alphabet default to the length and the distinct symbols of the
// start word.
func Parse(args []string, output io.Writer) (*config.Config, bool, error) {
	def := config.Default()
	flagSet := flag.NewFlagSet("abba", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
abba - minimum global symbol substitutions that turn a word into a palindrome.

Usage:
  abba -start WORD [-n N] [-alphabet SYMBOLS] [options]
  abba -config queries.yaml [options]

Environment:
  ABBA_LOG_LEVEL, ABBA_MAX_VERTICES override the query file; flags override both.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to a YAML query file.")
	nFlag := flagSet.Int("n", 0, "Word length. Defaults to the length of -start.")
	alphabetFlag := flagSet.String("alphabet", "", "Alphabet symbols as one string, e.g. 'once'. Defaults to the symbols of -start.")
	startFlag := flagSet.String("start", "", "Start word.")
	formatFlag := flagSet.String("format", def.Format, "Output format. Options: 'text' or 'yaml'.")
	logLevelFlag := flagSet.String("log-level", def.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	printGraphFlag := flagSet.Bool("print-graph", false, "Print each replacement graph before its result.")
	maxVerticesFlag := flagSet.Int("max-vertices", def.MaxVertices, "Refuse to build graphs with more vertices. 0 is unlimited.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError("%v", err)
	}
	if flagSet.NArg() > 0 {
		return nil, false, usageError("unexpected arguments: %s", strings.Join(flagSet.Args(), " "))
	}

	set := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if !set["config"] && !set["start"] && !set["n"] && !set["alphabet"] {
		flagSet.Usage()
		return nil, true, nil
	}

	cfg := def
	if set["config"] {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return nil, false, usageError("%v", err)
		}
		cfg = loaded
	}

	if err := config.ApplyEnv(cfg); err != nil {
		return nil, false, usageError("%v", err)
	}

	if set["format"] {
		cfg.Format = strings.ToLower(*formatFlag)
	}
	if set["log-level"] {
		cfg.LogLevel = strings.ToLower(*logLevelFlag)
	}
	if set["print-graph"] {
		cfg.PrintGraph = *printGraphFlag
	}
	if set["max-vertices"] {
		cfg.MaxVertices = *maxVerticesFlag
	}

	if set["start"] || set["n"] || set["alphabet"] {
		if !set["start"] {
			return nil, false, usageError("-start is required with -n or -alphabet")
		}
		cfg.Queries = append(cfg.Queries, singleQuery(*startFlag, *nFlag, set["n"], *alphabetFlag, set["alphabet"]))
	}

	if err := cfg.Validate(); err != nil {
		return nil, false, usageError("%v", err)
	}

	return cfg, false, nil
}

func singleQuery(start string, n int, nSet bool, alphabet string, alphabetSet bool) config.Query {
	if !nSet {
		n = len([]rune(start))
	}
	if !alphabetSet {
		alphabet = start
	}

	return config.Query{N: n, Alphabet: config.SplitSymbols(alphabet), Start: start}
}
