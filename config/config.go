// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)

	// RootSettingsFile is the default settings file path
	RootSettingsFile = filepath.Join(home(), ".kcounter", "config.yaml")
)

const (
	// DefaultK is the k-mer length used when none is set
	DefaultK = 3

	// DefaultFormat is the output format used when none is set
	DefaultFormat = "json"
)

// Config is the root-level settings struct and is a mix
// of settings available in a settings file and those
// available from the command line
type Config struct {
	// K is the length of the k-mers to count
	K int `mapstructure:"k"`

	// Relative is whether to report relative frequencies rather than counts
	Relative bool `mapstructure:"relative"`

	// Canonical is whether to merge each k-mer with its reverse complement
	Canonical bool `mapstructure:"canonical"`

	// Format is the output format, "json" or "tsv"
	Format string `mapstructure:"format"`

	// Out is the path to write results to. Stdout if empty
	Out string `mapstructure:"out"`

	// Verbose is whether to log run details to stderr
	Verbose bool `mapstructure:"verbose"`
}

// New returns a new Config struct populated by Viper settings
// (either from a settings file) and/or command line arguments
func New() *Config {
	viper.SetDefault("k", DefaultK)
	viper.SetDefault("format", DefaultFormat)

	if settings := viper.GetString("settings"); settings != "" {
		if _, err := os.Stat(settings); err == nil {
			viper.SetConfigFile(settings)
			if err := viper.ReadInConfig(); err != nil {
				stderr.Fatalf("failed to read settings file %s: %v", settings, err)
			}
		}
	}

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		stderr.Fatalf("unable to decode into struct, %v", err)
	}

	return &c
}

// home returns the user's home directory, or the working directory if unknown
func home() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return dir
}
