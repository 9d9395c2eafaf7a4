// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/Valloric/alacritty/internal/config"
	"github.com/spf13/cobra"
)

var dumpFormat string

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective settings (defaults applied)",
	RunE: func(cmd *cobra.Command, args []string) error {
		// An empty path is fine here: dump then shows pure defaults.
		cfg, err := config.NewLoader(resolveConfigPath()).Load()
		if err != nil {
			return err
		}

		switch dumpFormat {
		case "yaml":
			return config.Encode(os.Stdout, cfg)
		case "json":
			return config.EncodeJSON(os.Stdout, cfg)
		default:
			return fmt.Errorf("unknown format %q (yaml or json)", dumpFormat)
		}
	},
}

func init() {
	dumpCmd.Flags().StringVar(&dumpFormat, "format", "yaml", "output format: yaml or json")
	rootCmd.AddCommand(dumpCmd)
}
