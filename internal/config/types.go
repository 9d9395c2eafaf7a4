// SPDX-License-Identifier: MIT

package config

// Settings is the fully resolved terminal configuration. It is immutable
// once loaded and safe to share across goroutines without locking.
type Settings struct {
	Dpi         Dpi
	Font        Font
	RenderTimer bool
	Colors      Colors
	Tabspaces   int
}

// Dpi scales font rendering to the physical display density.
type Dpi struct {
	X float64
	Y float64
}

// Font selects the face used for regular, bold and italic cells.
type Font struct {
	Family      string
	Style       string
	BoldStyle   string
	ItalicStyle string
	Size        float64
	Offset      Offset
}

// Offset shifts glyphs within their cells, in pixels. Either axis may be
// negative.
type Offset struct {
	X float64
	Y float64
}

// Colors holds the primary pair plus the 16-color ANSI palette.
type Colors struct {
	Primary PrimaryColors
	Normal  Palette
	Bright  Palette
}

// PrimaryColors is the default foreground/background pair used when no
// other color is specified.
type PrimaryColors struct {
	Background Rgb
	Foreground Rgb
}

// Palette holds one intensity tier of the ANSI palette.
type Palette struct {
	Black   Rgb
	Red     Rgb
	Green   Rgb
	Yellow  Rgb
	Blue    Rgb
	Magenta Rgb
	Cyan    Rgb
	White   Rgb
}

// list returns the palette entries in ANSI order.
func (p Palette) list() [8]Rgb {
	return [8]Rgb{p.Black, p.Red, p.Green, p.Yellow, p.Blue, p.Magenta, p.Cyan, p.White}
}

// ColorList returns the 16 named colors in ANSI index order: normal
// black through white, then bright black through white. Terminal cells
// index into this array when an SGR attribute names a color.
func (s Settings) ColorList() [16]Rgb {
	var out [16]Rgb
	normal := s.Colors.Normal.list()
	bright := s.Colors.Bright.list()
	copy(out[:8], normal[:])
	copy(out[8:], bright[:])
	return out
}

// Foreground returns the default text color.
func (s Settings) Foreground() Rgb {
	return s.Colors.Primary.Foreground
}

// Background returns the default background color.
func (s Settings) Background() Rgb {
	return s.Colors.Primary.Background
}
