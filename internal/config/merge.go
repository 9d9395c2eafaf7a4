// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strconv"

	"github.com/Valloric/alacritty/internal/validate"
)

// mergeFile applies every field present in the document onto cfg.
// Coercion failures accumulate into a single ValidationError naming each
// offending field path; cfg is not usable when an error is returned.
func mergeFile(cfg *Settings, f *fileSettings) error {
	v := validate.New()

	if f.Dpi != nil {
		mergeFloat(v, &cfg.Dpi.X, f.Dpi.X, "dpi.x")
		mergeFloat(v, &cfg.Dpi.Y, f.Dpi.Y, "dpi.y")
	}

	if f.Font != nil {
		mergeString(&cfg.Font.Family, f.Font.Family)
		mergeString(&cfg.Font.Style, f.Font.Style)
		mergeString(&cfg.Font.BoldStyle, f.Font.BoldStyle)
		mergeString(&cfg.Font.ItalicStyle, f.Font.ItalicStyle)
		mergeFloat(v, &cfg.Font.Size, f.Font.Size, "font.size")
		if f.Font.Offset != nil {
			mergeFloat(v, &cfg.Font.Offset.X, f.Font.Offset.X, "font.offset.x")
			mergeFloat(v, &cfg.Font.Offset.Y, f.Font.Offset.Y, "font.offset.y")
		}
	}

	mergeBool(v, &cfg.RenderTimer, f.RenderTimer, "render_timer")

	if f.Colors != nil {
		if f.Colors.Primary != nil {
			mergeColor(v, &cfg.Colors.Primary.Background, f.Colors.Primary.Background, "colors.primary.background")
			mergeColor(v, &cfg.Colors.Primary.Foreground, f.Colors.Primary.Foreground, "colors.primary.foreground")
		}
		if f.Colors.Normal != nil {
			mergePalette(v, &cfg.Colors.Normal, f.Colors.Normal, "colors.normal")
		}
		if f.Colors.Bright != nil {
			mergePalette(v, &cfg.Colors.Bright, f.Colors.Bright, "colors.bright")
		}
	}

	mergeInt(v, &cfg.Tabspaces, f.Tabspaces, "tabspaces")

	if !v.IsValid() {
		return v.Err()
	}
	return nil
}

func mergePalette(v *validate.Validator, dst *Palette, src *filePalette, prefix string) {
	mergeColor(v, &dst.Black, src.Black, prefix+".black")
	mergeColor(v, &dst.Red, src.Red, prefix+".red")
	mergeColor(v, &dst.Green, src.Green, prefix+".green")
	mergeColor(v, &dst.Yellow, src.Yellow, prefix+".yellow")
	mergeColor(v, &dst.Blue, src.Blue, prefix+".blue")
	mergeColor(v, &dst.Magenta, src.Magenta, prefix+".magenta")
	mergeColor(v, &dst.Cyan, src.Cyan, prefix+".cyan")
	mergeColor(v, &dst.White, src.White, prefix+".white")
}

func mergeString(dst *string, src scalar) {
	if src.set {
		*dst = src.value
	}
}

func mergeFloat(v *validate.Validator, dst *float64, src scalar, field string) {
	if !src.set {
		return
	}
	parsed, err := strconv.ParseFloat(src.value, 64)
	if err != nil {
		v.AddError(field, fmt.Sprintf("must be a number, got %q", src.value), src.value)
		return
	}
	*dst = parsed
}

func mergeInt(v *validate.Validator, dst *int, src scalar, field string) {
	if !src.set {
		return
	}
	parsed, err := strconv.Atoi(src.value)
	if err != nil {
		v.AddError(field, fmt.Sprintf("must be an integer, got %q", src.value), src.value)
		return
	}
	*dst = parsed
}

func mergeBool(v *validate.Validator, dst *bool, src scalar, field string) {
	if !src.set {
		return
	}
	parsed, err := strconv.ParseBool(src.value)
	if err != nil {
		v.AddError(field, fmt.Sprintf("must be a boolean, got %q", src.value), src.value)
		return
	}
	*dst = parsed
}

func mergeColor(v *validate.Validator, dst *Rgb, src scalar, field string) {
	if !src.set {
		return
	}
	parsed, err := ParseRgb(src.value)
	if err != nil {
		v.HexColor(field, src.value)
		return
	}
	*dst = parsed
}
