// SPDX-License-Identifier: MIT

// Command alacritty-config inspects, validates and watches the terminal
// emulator configuration file.
package main

import (
	"fmt"
	"os"

	xglog "github.com/Valloric/alacritty/internal/log"
)

func main() {
	xglog.Configure(xglog.Config{
		Level:   "info",
		Service: "alacritty-config",
	})

	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
