// Package xlog builds the zerolog.Logger used at CLI and kernel-invocation
// boundaries: human-readable console output by default, with a level
// parsed from configuration.
package xlog
