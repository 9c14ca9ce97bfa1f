// Package cmd is for command line interactions with the bioseq application
package cmd

import (
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "bioseq",
	Short: `Inspect and transform nucleic acid and protein sequences:
composition, complements, translation, splicing, windows and shuffles`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

// initConfig reads the optional settings file and BIOSEQ_* env variables
// into viper before any command runs.
func initConfig() {
	viper.SetConfigName("bioseq")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("bioseq")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.ReadInConfig() // missing settings file is fine
}
