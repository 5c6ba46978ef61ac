package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/viktoryBurm/vfsh/internal/util"
)

// Default configuration constants. See [Config] for field descriptions.
const (
	// DefaultUsername is the prompt identity used when the environment
	// provides none.
	DefaultUsername = "user"

	// DefaultHostname is the prompt host used when the environment
	// provides none.
	DefaultHostname = "localhost"

	// DefaultVerbose is the log verbosity between 1 (error) and 5 (trace)
	DefaultVerbose = 3
)

// Config contains runtime configuration values for a shell session.
// Username and Hostname are prompt cosmetics injected from outside; the
// VFS core never inspects the environment itself.
type Config struct {
	Username   string        // Prompt identity (Default "user")
	Hostname   string        // Prompt host (Default "localhost")
	VFSPath    string        // Path to the VFS document; empty selects the built-in tree
	ScriptPath string        // Path to a startup script of shell commands; empty skips playback
	LogLvl     util.LogLevel // Internal log level derived from the 1-5 verbosity scale
}

// ConfigOverride uses pointer fields to distinguish between unset and zero
// values when loading partial configuration. See [Config] for field
// descriptions.
type ConfigOverride struct {
	Username   *string `yaml:"username,omitempty" json:"username,omitempty"`
	Hostname   *string `yaml:"hostname,omitempty" json:"hostname,omitempty"`
	VFSPath    *string `yaml:"vfs_path,omitempty" json:"vfs_path,omitempty"`
	ScriptPath *string `yaml:"script_path,omitempty" json:"script_path,omitempty"`
	Verbose    *int    `yaml:"verbose,omitempty" json:"verbose,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		Username: DefaultUsername,
		Hostname: DefaultHostname,
		LogLvl:   VerboseToLevel(DefaultVerbose),
	}
}

// NewConfig creates a Config from defaults with the optional override
// applied on top.
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override.Username != nil {
		c.Username = *override.Username
	}
	if override.Hostname != nil {
		c.Hostname = *override.Hostname
	}
	if override.VFSPath != nil {
		c.VFSPath = *override.VFSPath
	}
	if override.ScriptPath != nil {
		c.ScriptPath = *override.ScriptPath
	}
	if override.Verbose != nil {
		c.LogLvl = VerboseToLevel(*override.Verbose)
	}
}

// VerboseToLevel converts the user-facing 1 (error) to 5 (trace) verbosity
// scale to an internal log level, clamping out-of-range values.
func VerboseToLevel(verbose int) util.LogLevel {
	if verbose < 1 {
		verbose = 1
	}
	if verbose > 5 {
		verbose = 5
	}
	levels := [5]util.LogLevel{util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel}
	return levels[verbose-1]
}

// LoadConfigOverrideFile loads configuration overrides from a file without merging.
// Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with defaults.
func NewConfigFromFile(path string) (*Config, error) {
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	return NewConfig(override), nil
}
