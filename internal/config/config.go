// Package config provides configuration loading and management.
package config

// Config is the modmeta CLI configuration schema.
type Config struct {
	// Basedir is the filesystem root prepended to /lib/modules when
	// locating the modules directory.
	Basedir string `mapstructure:"basedir" yaml:"basedir"`

	// Kversion overrides the running kernel's release when locating the
	// modules directory. Empty means use the running kernel.
	Kversion string `mapstructure:"kversion" yaml:"kversion,omitempty"`

	// Log holds logging settings.
	Log LogSettings `mapstructure:"log" yaml:"log"`
}

// LogSettings holds logging configuration.
type LogSettings struct {
	// Verbose enables debug-level output.
	Verbose bool `mapstructure:"verbose" yaml:"verbose"`

	// Timestamps enables timestamps in log output. nil means off.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// DefaultBasedir is the filesystem root used when none is configured.
const DefaultBasedir = "/"

// DefaultConfig returns a Config populated with default values.
func DefaultConfig() *Config {
	return &Config{
		Basedir: DefaultBasedir,
	}
}

// WithDefaults returns a copy of c with empty fields replaced by defaults.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.Basedir == "" {
		out.Basedir = DefaultBasedir
	}
	return &out
}
