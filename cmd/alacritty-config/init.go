// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/Valloric/alacritty/internal/config"
	"github.com/spf13/cobra"
)

var (
	initScheme string
	initForce  bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if configFile == "" {
			return fmt.Errorf("--file is required for init")
		}

		colors, ok := config.Scheme(initScheme)
		if !ok {
			return fmt.Errorf("unknown scheme %q (available: %s)",
				initScheme, strings.Join(config.SchemeNames, ", "))
		}

		if !initForce {
			if _, err := os.Stat(configFile); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", configFile)
			}
		}

		cfg := config.DefaultSettings()
		cfg.Colors = colors

		if err := config.NewManager(configFile).Save(cfg); err != nil {
			return err
		}

		fmt.Printf("wrote %s (%s scheme)\n", configFile, initScheme)
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initScheme, "scheme", "default", "color scheme: "+strings.Join(config.SchemeNames, " or "))
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing file")
	rootCmd.AddCommand(initCmd)
}
