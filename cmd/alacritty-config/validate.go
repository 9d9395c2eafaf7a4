// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/Valloric/alacritty/internal/config"
	"github.com/spf13/cobra"
)

var validateStrict bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load a configuration file and report whether it is valid",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveConfigPath()
		if path == "" {
			return fmt.Errorf("no config file found (use --file)")
		}

		loader := config.NewLoader(path)
		loader.Strict = validateStrict
		if _, err := loader.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Configuration error in %s:\n  %v\n", path, err)
			return err
		}

		fmt.Printf("%s is valid\n", path)
		return nil
	},
}

func init() {
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "reject unknown fields")
	rootCmd.AddCommand(validateCmd)
}
