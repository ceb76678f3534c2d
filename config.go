// Package sharpgen generates C# API bindings from a language-agnostic API
// description. It wires the provider, the C# generation engine, and an
// output sink into one run.
package sharpgen

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
)

// Config holds the configuration for one generation run. Values can come
// from an optional sharpgen.toml file, with CLI flags taking precedence.
type Config struct {
	// APIPath is the path of the API description JSON file.
	// Default: "api.json".
	APIPath string `toml:"api"`

	// OutDir is the directory where generated files are written.
	OutDir string `toml:"out"`

	// Namespace is the C# namespace for generated declarations.
	// Default: "Api".
	Namespace string `toml:"namespace"`

	// SingleFile emits all declarations into one Types.cs file.
	SingleFile bool `toml:"single_file"`

	// EmitComments controls whether documentation summaries are emitted.
	// Supported values: "default" (emit) and "none". Default: "default".
	EmitComments string `toml:"comments"`

	// TypeMappings overrides entries of the built-in name override table.
	// e.g. number = "double"
	TypeMappings map[string]string `toml:"type_mappings"`

	// Verbose enables diagnostic logging.
	Verbose bool `toml:"-"`
}

// LoadConfig reads a TOML config file. A missing file is not an error:
// the zero Config is returned so defaults apply.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

// applyConfigDefaults applies default values to a copy of cfg.
func applyConfigDefaults(cfg *Config) *Config {
	result := *cfg
	if result.APIPath == "" {
		result.APIPath = "api.json"
	}
	if result.Namespace == "" {
		result.Namespace = "Api"
	}
	if result.EmitComments == "" {
		result.EmitComments = "default"
	}
	return &result
}
