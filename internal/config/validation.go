// SPDX-License-Identifier: MIT

package config

import (
	"github.com/Valloric/alacritty/internal/validate"
)

// Validate checks every range and format constraint on a resolved
// Settings record. Color format is already enforced during merge, so
// only numeric ranges and required strings remain.
func Validate(cfg Settings) error {
	v := validate.New()

	v.PositiveFloat("dpi.x", cfg.Dpi.X)
	v.PositiveFloat("dpi.y", cfg.Dpi.Y)

	v.NotEmpty("font.family", cfg.Font.Family)
	v.NotEmpty("font.style", cfg.Font.Style)
	v.NotEmpty("font.bold_style", cfg.Font.BoldStyle)
	v.NotEmpty("font.italic_style", cfg.Font.ItalicStyle)
	v.PositiveFloat("font.size", cfg.Font.Size)

	v.Min("tabspaces", cfg.Tabspaces, 1)

	if !v.IsValid() {
		return v.Err()
	}
	return nil
}
