// SPDX-License-Identifier: MIT

// Package config loads, validates and persists the terminal emulator
// configuration file: font, DPI, the 16-color ANSI palette plus the
// primary foreground/background pair, the render timer flag and the
// tab width.
package config
