// SPDX-License-Identifier: MIT

package config

// DefaultSettings returns the documented defaults. A document that omits
// a group loads with these values for it.
func DefaultSettings() Settings {
	return Settings{
		Dpi: Dpi{X: 96.0, Y: 96.0},
		Font: Font{
			Family:      "DejaVu Sans Mono",
			Style:       "Book",
			BoldStyle:   "Bold",
			ItalicStyle: "Italic",
			Size:        11.0,
			Offset:      Offset{X: 2.0, Y: -7.0},
		},
		RenderTimer: false,
		Colors:      DefaultColors(),
		Tabspaces:   8,
	}
}

// DefaultColors returns the default color scheme.
func DefaultColors() Colors {
	return Colors{
		Primary: PrimaryColors{
			Background: Rgb{0x00, 0x00, 0x00},
			Foreground: Rgb{0xea, 0xea, 0xea},
		},
		Normal: Palette{
			Black:   Rgb{0x00, 0x00, 0x00},
			Red:     Rgb{0xd5, 0x4e, 0x53},
			Green:   Rgb{0xb9, 0xca, 0x4a},
			Yellow:  Rgb{0xe6, 0xc5, 0x47},
			Blue:    Rgb{0x7a, 0xa6, 0xda},
			Magenta: Rgb{0xc3, 0x97, 0xd8},
			Cyan:    Rgb{0x70, 0xc0, 0xba},
			White:   Rgb{0xea, 0xea, 0xea},
		},
		Bright: Palette{
			Black:   Rgb{0x66, 0x66, 0x66},
			Red:     Rgb{0xff, 0x33, 0x34},
			Green:   Rgb{0x9e, 0xc4, 0x00},
			Yellow:  Rgb{0xe7, 0xc5, 0x47},
			Blue:    Rgb{0x7a, 0xa6, 0xda},
			Magenta: Rgb{0xb7, 0x7e, 0xe0},
			Cyan:    Rgb{0x54, 0xce, 0xd6},
			White:   Rgb{0xff, 0xff, 0xff},
		},
	}
}
