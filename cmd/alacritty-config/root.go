// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "alacritty-config",
	Short: "Inspect and validate the terminal configuration file",
	Long: `alacritty-config loads the terminal emulator configuration file
(font, DPI, 16-color palette, render timer, tab width), validates it and
can print the effective settings, write a fresh default file or watch a
file for changes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "file", "f", "", "path to YAML configuration file")
}

// resolveConfigPath returns the explicit --file value, or the
// conventional location if a file exists there.
func resolveConfigPath() string {
	if configFile != "" {
		return configFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	for _, candidate := range []string{
		filepath.Join(home, ".config", "alacritty", "alacritty.yml"),
		filepath.Join(home, ".alacritty.yml"),
	} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
