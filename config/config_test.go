package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestConfig_defaults(t *testing.T) {
	c := New()

	tests := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"codon table", c.Translate.Table, 1},
		{"unknown symbol", c.Translate.Unknown, "X"},
		{"fasta wrap", c.Fasta.Wrap, 60},
		{"random seed", c.Random.Seed, int64(0)},
		{"window size", c.Window.Size, 15},
		{"window step", c.Window.Step, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("Config default %s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

// settings read after New() is called again must win over the defaults,
// so commands that call New() at run time see the settings file
func TestConfig_settingsOverride(t *testing.T) {
	viper.Set("window.size", 7)
	viper.Set("window.step", 3)
	defer func() {
		viper.Set("window.size", 15)
		viper.Set("window.step", 1)
	}()

	c := New()
	if c.Window.Size != 7 {
		t.Errorf("Config window size = %d, want 7", c.Window.Size)
	}
	if c.Window.Step != 3 {
		t.Errorf("Config window step = %d, want 3", c.Window.Step)
	}
}
