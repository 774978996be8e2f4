// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the roman CLI, which converts Roman
// numerals to integers.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/roman-numerals/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the roman CLI.
var rootCmd = &cobra.Command{
	Use:   "roman",
	Short: "Convert Roman numerals to integers",
	Long: `roman converts Roman numerals such as MCMXCIV to their integer value.

Numerals are matched case-insensitively against the standard grammar: up to
four M, then hundreds, tens and units using the subtractive pairs CM, CD, XC,
XL, IX and IV. Input that does not match converts to 0 unless --strict is set.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./roman.yaml or ~/.config/roman/config.yaml)")
	rootCmd.PersistentFlags().String("format", string(types.OutputText), "output format: text, json, or yaml")
	rootCmd.PersistentFlags().Bool("strict", false, "fail on an invalid numeral instead of printing 0")

	bindFlags()
}

// bindFlags connects persistent flags to their viper keys.
func bindFlags() {
	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("strict", rootCmd.PersistentFlags().Lookup("strict"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("roman")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "roman"))
		}
	}

	viper.SetEnvPrefix("ROMAN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig merges defaults, the config file, environment, and flags.
func loadConfig() (types.Config, error) {
	cfg := types.DefaultConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	format, err := types.ParseOutputFormat(string(cfg.Format))
	if err != nil {
		return cfg, err
	}
	cfg.Format = format
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
