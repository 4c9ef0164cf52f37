package config

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// validModes lists the kernel modes graphkit's subcommands accept.
var validModes = map[string]bool{"seq": true, "par": true, "par-opt": true}

// Config holds graphkit's resolved CLI-level settings.
type Config struct {
	Threads  int    `mapstructure:"threads"`
	Mode     string `mapstructure:"mode"`
	LogLevel string `mapstructure:"log_level"`
}

// Load resolves Config from, in increasing priority, built-in defaults, an
// optional config file at configPath (silently skipped if absent, per the
// same "use defaults" policy as perf-analysis's loader), environment
// variables prefixed GRAPHKIT_, and finally explicit flag values already
// bound into v by the caller (cobra binds flags into v before calling
// Load).
func Load(v *viper.Viper, configPath string) (*Config, error) {
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
				return nil, fmt.Errorf("config: read %s: %w", configPath, err)
			}
		}
	}

	v.SetEnvPrefix("GRAPHKIT")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults installs graphkit's built-in defaults into v, the lowest
// priority tier in viper's resolution order.
func setDefaults(v *viper.Viper) {
	v.SetDefault("threads", 4)
	v.SetDefault("mode", "seq")
	v.SetDefault("log_level", zerolog.InfoLevel.String())
}

// Validate enforces the invariants flag parsing alone cannot: threads > 0,
// mode is one of seq/par/par-opt, and log_level parses as a zerolog level.
func (c *Config) Validate() error {
	if c.Threads <= 0 {
		return fmt.Errorf("config: threads=%d: %w", c.Threads, ErrInvalidThreads)
	}
	if !validModes[c.Mode] {
		return fmt.Errorf("config: mode=%q: %w", c.Mode, ErrInvalidMode)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log_level=%q: %w", c.LogLevel, ErrInvalidLogLevel)
	}
	return nil
}
