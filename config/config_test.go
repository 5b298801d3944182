package config

import (
	"io/ioutil"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/spf13/viper"
)

func TestNew(t *testing.T) {
	dir, err := ioutil.TempDir("", "kcounter")
	if err != nil {
		t.Fatal(err)
	}

	settings := filepath.Join(dir, "config.yaml")
	yaml := []byte("k: 5\ncanonical: true\nformat: tsv\n")
	if err := ioutil.WriteFile(settings, yaml, 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		settings string
		want     *Config
	}{
		{
			"defaults without a settings file",
			filepath.Join(dir, "missing.yaml"),
			&Config{
				K:      DefaultK,
				Format: DefaultFormat,
			},
		},
		{
			"settings file overrides defaults",
			settings,
			&Config{
				K:         5,
				Canonical: true,
				Format:    "tsv",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			viper.Set("settings", tt.settings)

			if got := New(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("New() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNew_flagsOverrideSettings(t *testing.T) {
	viper.Reset()
	viper.Set("k", 7)
	viper.Set("relative", true)

	c := New()
	if c.K != 7 || !c.Relative {
		t.Errorf("New() = %+v, want K=7 and Relative", c)
	}
}
