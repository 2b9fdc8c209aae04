// Package processor contains the top-level conversion flow. It wires the
// primary converter and the pronunciation dictionary from CLI flags, then
// runs either single-phrase (--text) or line-by-line file (--file) mode,
// writing one IPA line per phrase to stdout and diagnostics to stderr.
package processor
