package config

import "errors"

// Sentinel errors for configuration validation.
var (
	// ErrInvalidThreads indicates Threads is non-positive.
	ErrInvalidThreads = errors.New("config: threads must be positive")

	// ErrInvalidMode indicates Mode is not one of seq, par, par-opt.
	ErrInvalidMode = errors.New("config: unknown mode")

	// ErrInvalidLogLevel indicates LogLevel is not a recognized zerolog level.
	ErrInvalidLogLevel = errors.New("config: unknown log level")
)
