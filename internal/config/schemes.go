// SPDX-License-Identifier: MIT

package config

// Predefined color schemes. Schemes are not selectable from the config
// file; the embedding application assigns one to Settings.Colors in code.

// SchemeNames lists the predefined schemes accepted by Scheme.
var SchemeNames = []string{"default", "solarized-dark"}

// Scheme returns the predefined scheme with the given name.
func Scheme(name string) (Colors, bool) {
	switch name {
	case "default":
		return DefaultColors(), true
	case "solarized-dark":
		return SolarizedDark(), true
	default:
		return Colors{}, false
	}
}

// SolarizedDark returns the Solarized Dark palette.
func SolarizedDark() Colors {
	return Colors{
		Primary: PrimaryColors{
			Background: Rgb{0x00, 0x2b, 0x36},
			Foreground: Rgb{0x83, 0x94, 0x96},
		},
		Normal: Palette{
			Black:   Rgb{0x07, 0x36, 0x42},
			Red:     Rgb{0xdc, 0x32, 0x2f},
			Green:   Rgb{0x85, 0x99, 0x00},
			Yellow:  Rgb{0xb5, 0x89, 0x00},
			Blue:    Rgb{0x26, 0x8b, 0xd2},
			Magenta: Rgb{0xd3, 0x36, 0x82},
			Cyan:    Rgb{0x2a, 0xa1, 0x98},
			White:   Rgb{0xee, 0xe8, 0xd5},
		},
		Bright: Palette{
			Black:   Rgb{0x00, 0x2b, 0x36},
			Red:     Rgb{0xcb, 0x4b, 0x16},
			Green:   Rgb{0x58, 0x6e, 0x75},
			Yellow:  Rgb{0x65, 0x7b, 0x83},
			Blue:    Rgb{0x83, 0x94, 0x96},
			Magenta: Rgb{0x6c, 0x71, 0xc4},
			Cyan:    Rgb{0x93, 0xa1, 0xa1},
			White:   Rgb{0xfd, 0xf6, 0xe3},
		},
	}
}
