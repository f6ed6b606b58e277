// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"strings"

	"github.com/jjtimmons/chad/internal/chad"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override settings,
// ex: CHAD_SEED, CHAD_MAX_ATTEMPTS.
const EnvPrefix = "CHAD"

// Config is the root-level settings struct and is a mix
// of settings available in a settings file, the environment
// and those available from the command line
type Config struct {
	// Seed of the codon sampler. The same seed and input give the same output
	Seed int64 `mapstructure:"seed"`

	// MaxAttempts is the number of candidates sampled per sequence before giving up
	MaxAttempts int `mapstructure:"max-attempts"`

	// Enzymes is the path to an enzyme table (YAML or TSV). Empty uses the built in enzymes
	Enzymes string `mapstructure:"enzymes"`

	// Report is the path to write a JSON run report to. Empty skips the report
	Report string `mapstructure:"report"`

	// Verbose logs at debug level
	Verbose bool `mapstructure:"verbose"`

	// LogFormat is "text" or "json"
	LogFormat string `mapstructure:"log-format"`

	// Settings is the path to the settings file that was read, if any
	Settings string `mapstructure:"settings"`
}

// SetDefaults registers the default value of every setting.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("seed", chad.DefaultSeed)
	v.SetDefault("max-attempts", chad.DefaultMaxAttempts)
	v.SetDefault("enzymes", "")
	v.SetDefault("report", "")
	v.SetDefault("verbose", false)
	v.SetDefault("log-format", "text")
	v.SetDefault("settings", "")
}

// New returns a new Config populated by the global Viper instance:
// flags bound in /cmd, CHAD_ environment variables, and a settings file.
func New() (*Config, error) {
	return Load(viper.GetViper())
}

// Load returns a Config populated from v. If the "settings" key names a file it is
// read first. Priority is flags, then environment, then the settings file, then defaults.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if settings := v.GetString("settings"); settings != "" {
		v.SetConfigFile(settings)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %w", settings, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if c.MaxAttempts < 1 {
		return nil, fmt.Errorf("max-attempts must be at least 1, got %d", c.MaxAttempts)
	}

	return &c, nil
}
