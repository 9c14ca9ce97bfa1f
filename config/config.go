// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// TranslateConfig is settings for codon translation
type TranslateConfig struct {
	// the NCBI transl_table number of the genetic code to use
	Table int `mapstructure:"table"`

	// the symbol substituted for codons the table has no entry for
	Unknown string `mapstructure:"unknown"`
}

// FastaConfig is settings for FASTA emission
type FastaConfig struct {
	// the number of symbols per body line; < 1 means a single line
	Wrap int `mapstructure:"wrap"`
}

// RandomConfig is settings for sequence randomization
type RandomConfig struct {
	// the seed for the random source; 0 means time-seeded
	Seed int64 `mapstructure:"seed"`
}

// WindowConfig is settings for window scanning
type WindowConfig struct {
	// the number of symbols per window
	Size int `mapstructure:"size"`

	// the offset between window starts
	Step int `mapstructure:"step"`
}

// Config is the root-level settings struct and is a mix of settings
// available in bioseq.yaml and those passed from the command line
type Config struct {
	// codon translation settings
	Translate TranslateConfig `mapstructure:"translate"`

	// FASTA emission settings
	Fasta FastaConfig `mapstructure:"fasta"`

	// randomization settings
	Random RandomConfig `mapstructure:"random"`

	// window scanning settings
	Window WindowConfig `mapstructure:"window"`
}

// New returns a new Config struct populated by Viper settings (either
// from a local bioseq.yaml or defaults)
func New() *Config {
	setDefaults()

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}
	return &c
}

// setDefaults registers the built-in defaults so an absent settings
// file still yields a usable Config
func setDefaults() {
	viper.SetDefault("translate.table", 1)
	viper.SetDefault("translate.unknown", "X")
	viper.SetDefault("fasta.wrap", 60)
	viper.SetDefault("random.seed", 0)
	viper.SetDefault("window.size", 15)
	viper.SetDefault("window.step", 1)
}
