package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces the environment overrides (NOIRBRIDGE_LOG_LEVEL, ...).
const EnvPrefix = "NOIRBRIDGE"

type Config struct {
	LogLevel     string `mapstructure:"log_level" json:"log_level"`
	LogFormat    string `mapstructure:"log_format" json:"log_format"`
	SRSPath      string `mapstructure:"srs_path" json:"srs_path"`
	OnChain      bool   `mapstructure:"on_chain" json:"on_chain"`
	LowMemory    bool   `mapstructure:"low_memory" json:"low_memory"`
	KeyCacheSize int    `mapstructure:"key_cache_size" json:"key_cache_size"`
	// Field names the field public input words belong to, it fixes the word width
	Field string `mapstructure:"field" json:"field"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel:     "info",
		LogFormat:    "console",
		SRSPath:      "",
		OnChain:      true,
		LowMemory:    false,
		KeyCacheSize: 8,
		Field:        "bn254",
	}
}

// Load resolves the configuration: defaults, then the optional config file,
// then NOIRBRIDGE_* environment variables, then whatever flags were bound
// on v beforehand.
func Load(v *viper.Viper, file string) (*Config, error) {
	defaults := DefaultConfig()
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_format", defaults.LogFormat)
	v.SetDefault("srs_path", defaults.SRSPath)
	v.SetDefault("on_chain", defaults.OnChain)
	v.SetDefault("low_memory", defaults.LowMemory)
	v.SetDefault("key_cache_size", defaults.KeyCacheSize)
	v.SetDefault("field", defaults.Field)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	return &cfg, nil
}
