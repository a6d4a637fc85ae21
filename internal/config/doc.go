// Package config holds the run configuration of the abba command: which
// replacement graphs to build and which start words to measure.
//
// A Config is assembled in layers, lowest priority first:
//
//  1. Default() values.
//  2. A YAML query file (Load / Decode).
//  3. Environment overrides (ApplyEnv): ABBA_LOG_LEVEL, ABBA_MAX_VERTICES.
//  4. Command-line flags (applied by internal/cli).
//
// Validate checks the final struct with go-playground/validator struct tags
// and reports every violation at once, wrapped in ErrInvalidConfig.
//
// Query file
//
//	log_level: info
//	format: text
//	max_vertices: 100000
//	print_graph: false
//	queries:
//	  - n: 4
//	    alphabet: [o, n, c, e]
//	    start: once
package config
