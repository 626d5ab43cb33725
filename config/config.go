// Package config loads the pre-pass layer's configuration: which graph
// transformations to run (spec §6: "recognized entries in the caller's
// config ... {ilp.nodesup: enabled? yes/no, tred: enabled? yes/no}").
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the transformation toggles consumed by Pipeline, plus the
// ambient node-count safety cap referenced in spec §5's memory note.
type Config struct {
	ILP  ILPConfig `mapstructure:"ilp"`
	TRED bool      `mapstructure:"tred"`
}

// ILPConfig holds the Node-Superiority ILP Transformation's settings.
type ILPConfig struct {
	NodeSup  bool `mapstructure:"nodesup"`
	MaxNodes int  `mapstructure:"max_nodes"`
}

// Default returns the out-of-the-box configuration: both transformations
// enabled, and a conservative MaxNodes cap reflecting spec §5's "NSUP is
// intended for regions of a few hundred nodes at most".
func Default() Config {
	return Config{
		ILP:  ILPConfig{NodeSup: true, MaxNodes: 500},
		TRED: true,
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("ilp.nodesup", d.ILP.NodeSup)
	v.SetDefault("ilp.max_nodes", d.ILP.MaxNodes)
	v.SetDefault("tred", d.TRED)
}

// Load reads configuration from the given YAML file path, falling back to
// Default() for any key the file does not set. An empty path reads no
// file and returns Default().
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path == "" {
		return Default(), nil
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshalling: %w", err)
	}

	return cfg, nil
}
