// Package app runs the queries of a config.Config: it builds (and caches)
// one replacement graph per (n, alphabet), measures each start word's
// distance to the nearest palindrome, and renders the reports as text or
// YAML on the output writer. Diagnostics go to the injected zap logger.
package app
