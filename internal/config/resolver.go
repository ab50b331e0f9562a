package config

import "os"

// Source indicates where a configuration value came from.
type Source string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag Source = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv Source = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig Source = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault Source = "default"
)

// Resolved is a configuration value together with its provenance.
type Resolved struct {
	// Value is the resolved value.
	Value string
	// Source indicates where the value came from.
	Source Source
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[Source]string
}

// resolve applies the flag > env > config > default precedence chain.
func resolve(flagValue, envValue, configValue, defaultValue string) Resolved {
	r := Resolved{Shadowed: make(map[Source]string)}

	switch {
	case flagValue != "":
		r.Value = flagValue
		r.Source = SourceFlag
		if envValue != "" {
			r.Shadowed[SourceEnv] = envValue
		}
		if configValue != "" {
			r.Shadowed[SourceConfig] = configValue
		}
	case envValue != "":
		r.Value = envValue
		r.Source = SourceEnv
		if configValue != "" {
			r.Shadowed[SourceConfig] = configValue
		}
	case configValue != "":
		r.Value = configValue
		r.Source = SourceConfig
	default:
		r.Value = defaultValue
		r.Source = SourceDefault
	}

	return r
}

// ResolveOptions carries the flag values relevant to resolution.
type ResolveOptions struct {
	// BasedirFlag is the --basedir flag value (empty if not set).
	BasedirFlag string
	// KversionFlag is the --set-version flag value (empty if not set).
	KversionFlag string
	// Config is the loaded config file contents (may be nil).
	Config *Config
}

// ResolvedConfig holds every resolved configuration value.
type ResolvedConfig struct {
	// Basedir is the filesystem root for /lib/modules.
	Basedir Resolved
	// Kversion is the kernel release; empty means the running kernel.
	Kversion Resolved
}

// ResolveAll resolves all configuration values using precedence:
// (1) flag, (2) MODMETA_* env, (3) config file, (4) built-in default.
func ResolveAll(opts ResolveOptions) *ResolvedConfig {
	var cfgBasedir, cfgKversion string
	if opts.Config != nil {
		cfgBasedir = opts.Config.Basedir
		cfgKversion = opts.Config.Kversion
	}

	return &ResolvedConfig{
		Basedir:  resolve(opts.BasedirFlag, os.Getenv("MODMETA_BASEDIR"), cfgBasedir, DefaultBasedir),
		Kversion: resolve(opts.KversionFlag, os.Getenv("MODMETA_KVERSION"), cfgKversion, ""),
	}
}
