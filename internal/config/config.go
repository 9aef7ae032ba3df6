// Package config loads the global churnprep configuration and schema
// descriptions. The global config comes from a YAML file via viper with
// flag overrides applied by the CLI; schema files are plain YAML.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"churnprep/dataset"
	"churnprep/pkg/errors"
	"churnprep/prepare"
)

// Global configuration structure.
type Global struct {
	Seed       int64  `mapstructure:"seed" yaml:"seed"`
	OutDir     string `mapstructure:"out_dir" yaml:"out_dir"`
	LogLevel   string `mapstructure:"log_level" yaml:"log_level"`
	SchemaFile string `mapstructure:"schema_file" yaml:"schema_file"`
}

// Load reads the configuration from cfgFile, or from
// ~/.churnprep/config.yaml when cfgFile is empty. A missing file is not
// an error: defaults are returned.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetDefault("seed", int64(prepare.DefaultSeed))
	v.SetDefault("out_dir", ".")
	v.SetDefault("log_level", "info")
	v.SetDefault("schema_file", "")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, "resolve home dir")
		}
		v.SetConfigFile(filepath.Join(home, ".churnprep", "config.yaml"))
	}

	// A missing config file falls back to defaults; anything else is fatal.
	if err := v.ReadInConfig(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return nil, errors.Wrap(err, "read config")
		}
	}

	var cfg Global
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	return &cfg, nil
}

// LoadSchema reads a schema description from a YAML file. An empty path
// returns the built-in telco churn schema.
func LoadSchema(path string) (dataset.Schema, error) {
	if path == "" {
		return dataset.DefaultChurnSchema(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return dataset.Schema{}, errors.Wrap(err, "read schema file")
	}
	var schema dataset.Schema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return dataset.Schema{}, errors.Wrap(err, "parse schema file")
	}
	if schema.Target == "" {
		return dataset.Schema{}, errors.New("schema file does not name a target column")
	}
	return schema, nil
}
