package internal

import (
	"fmt"

	"github.com/spf13/viper"
)

// HarnessConfig drives the manual round-trip harness. It is dev tooling
// only: the artifact itself stays the sole persisted state of the library.
type HarnessConfig struct {
	Workdir  string `mapstructure:"workdir"`
	Artifact string `mapstructure:"artifact"`

	Rows      int     `mapstructure:"rows"`
	NullRatio float64 `mapstructure:"null_ratio"`

	Compression struct {
		Algorithm string `mapstructure:"algorithm"` // "gzip", "zstd" or "none"
		Level     int    `mapstructure:"level"`
	} `mapstructure:"compression"`
}

func LoadHarnessConfig(path string) (*HarnessConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("workdir", "data/test")
	v.SetDefault("artifact", "roundtrip.rowfile")
	v.SetDefault("rows", 100000)
	v.SetDefault("null_ratio", 0.01)
	v.SetDefault("compression.algorithm", "zstd")
	v.SetDefault("compression.level", 1)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg HarnessConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

// DefaultHarnessConfig returns the config used when no file is given.
func DefaultHarnessConfig() *HarnessConfig {
	cfg := &HarnessConfig{
		Workdir:   "data/test",
		Artifact:  "roundtrip.rowfile",
		Rows:      100000,
		NullRatio: 0.01,
	}
	cfg.Compression.Algorithm = "zstd"
	cfg.Compression.Level = 1
	return cfg
}
