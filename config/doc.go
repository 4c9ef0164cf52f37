// Package config resolves graphkit's CLI-level configuration — worker
// thread count, log level, and default kernel mode — through a layered
// viper.Viper (flag > environment > config file > default); the benchmark
// thread list is not part of Config. It then validates the result with the
// same fail-fast,
// sentinel-error discipline the kernel packages use.
package config
