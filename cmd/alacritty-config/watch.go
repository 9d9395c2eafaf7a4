// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/Valloric/alacritty/internal/config"
	xglog "github.com/Valloric/alacritty/internal/log"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a configuration file and log reloads until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveConfigPath()
		if path == "" {
			return fmt.Errorf("no config file found (use --file)")
		}

		loader := config.NewLoader(path)
		initial, err := loader.Load()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		holder := config.NewHolder(initial, loader, path)
		if err := holder.Watch(ctx); err != nil {
			return err
		}
		defer holder.Stop()

		logger := xglog.WithComponent("watch")
		logger.Info().Str(xglog.FieldPath, path).Msg("watching; press Ctrl-C to stop")

		<-ctx.Done()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
