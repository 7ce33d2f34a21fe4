// File: config.go
// Title: Configuration Loader
// Description: Implements loading, parsing and access of configuration
//              data from TOML and YAML files with environment variable
//              overrides. Values are addressed by dot-notation paths with
//              typed accessors and defaults.
// Version: v0.1.0
// Created: 2026-07-16
// Modified: 2026-07-16
//
// Change History:
// - 2026-07-16 v0.1.0: Initial TOML/YAML implementation

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/repliq/repliq/utils/stringx"
)

// Format represents the configuration file format.
type Format int

const (
	// FormatAuto detects the format from the file extension (default).
	FormatAuto Format = iota

	// FormatTOML forces TOML parsing.
	FormatTOML

	// FormatYAML forces YAML parsing.
	FormatYAML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// LoadOptions defines options for loading configuration.
type LoadOptions struct {
	// Format of the file (default: auto-detect from extension).
	Format Format

	// EnvPrefix enables environment overrides: the value for path
	// "loop.prompt" is overridden by "<PREFIX>_LOOP_PROMPT" when set.
	EnvPrefix string

	// Defaults supplies fallback values consulted after file data and
	// environment.
	Defaults map[string]interface{}
}

// Config holds parsed configuration data with dot-path access.
type Config struct {
	data      map[string]interface{}
	defaults  map[string]interface{}
	filePath  string
	envPrefix string
}

// New creates an empty Config carrying only the given defaults. Useful
// when no configuration file is present.
func New(defaults map[string]interface{}) *Config {
	return &Config{
		data:     make(map[string]interface{}),
		defaults: defaults,
	}
}

// Load reads and parses the configuration file at path.
func Load(path string, opts LoadOptions) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	format := opts.Format
	if format == FormatAuto {
		format, err = detectFormat(path)
		if err != nil {
			return nil, err
		}
	}

	data := make(map[string]interface{})
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config %s: %w", path, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format for %s", path)
	}

	return &Config{
		data:      data,
		defaults:  opts.Defaults,
		filePath:  path,
		envPrefix: opts.EnvPrefix,
	}, nil
}

func detectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatAuto, fmt.Errorf("cannot detect config format from extension of %s", path)
	}
}

// FilePath returns the path the configuration was loaded from, if any.
func (c *Config) FilePath() string {
	return c.filePath
}

// Get returns the value at the given dot-notation path. Environment
// overrides take precedence over file data, which takes precedence over
// defaults.
func (c *Config) Get(path string) (interface{}, bool) {
	if c.envPrefix != "" {
		if v, ok := os.LookupEnv(envKey(c.envPrefix, path)); ok {
			return v, true
		}
	}
	if v, ok := lookup(c.data, path); ok {
		return v, true
	}
	if c.defaults != nil {
		if v, ok := c.defaults[path]; ok {
			return v, true
		}
	}
	return nil, false
}

// GetString returns the string at path, or def when absent or blank.
func (c *Config) GetString(path, def string) string {
	v, ok := c.Get(path)
	if !ok {
		return def
	}
	s := fmt.Sprintf("%v", v)
	if stringx.IsBlank(s) {
		return def
	}
	return s
}

// GetBool returns the boolean at path, or def when absent or malformed.
func (c *Config) GetBool(path string, def bool) bool {
	v, ok := c.Get(path)
	if !ok {
		return def
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		if err != nil {
			return def
		}
		return b
	default:
		return def
	}
}

// GetInt returns the integer at path, or def when absent or malformed.
func (c *Config) GetInt(path string, def int) int {
	v, ok := c.Get(path)
	if !ok {
		return def
	}
	switch t := v.(type) {
	case int:
		return t
	case int64:
		return int(t)
	case float64:
		return int(t)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return def
		}
		return n
	default:
		return def
	}
}

// lookup traverses nested maps along a dot-notation path.
func lookup(data map[string]interface{}, path string) (interface{}, bool) {
	segments := strings.Split(path, ".")
	current := interface{}(data)
	for _, segment := range segments {
		switch m := current.(type) {
		case map[string]interface{}:
			v, ok := m[segment]
			if !ok {
				return nil, false
			}
			current = v
		case map[interface{}]interface{}: // yaml.v3 nested maps
			v, ok := m[segment]
			if !ok {
				return nil, false
			}
			current = v
		default:
			return nil, false
		}
	}
	return current, true
}

func envKey(prefix, path string) string {
	key := strings.ToUpper(strings.ReplaceAll(path, ".", "_"))
	return prefix + "_" + key
}
