// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strconv"

	"github.com/Valloric/alacritty/internal/validate"
	"gopkg.in/yaml.v3"
)

// Rgb is a single palette entry. The file encodes it as a string scalar
// of the literal form 0xRRGGBB.
type Rgb struct {
	R uint8
	G uint8
	B uint8
}

// ParseRgb parses a 0xRRGGBB color scalar.
func ParseRgb(s string) (Rgb, error) {
	if !validate.IsHexColor(s) {
		return Rgb{}, fmt.Errorf("invalid color %q: must match 0xRRGGBB", s)
	}
	v, err := strconv.ParseUint(s[2:], 16, 32)
	if err != nil {
		return Rgb{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Rgb{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// String renders the color in the canonical 0xRRGGBB file form.
func (c Rgb) String() string {
	return fmt.Sprintf("0x%02x%02x%02x", c.R, c.G, c.B)
}

// MarshalYAML encodes the color as a quoted scalar so it round-trips as a
// string rather than being resolved as a hex integer.
func (c Rgb) MarshalYAML() (interface{}, error) {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Style: yaml.SingleQuotedStyle,
		Value: c.String(),
	}, nil
}

// MarshalText implements encoding.TextMarshaler (used by encoding/json).
func (c Rgb) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Rgb) UnmarshalText(text []byte) error {
	parsed, err := ParseRgb(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
