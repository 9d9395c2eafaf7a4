// SPDX-License-Identifier: MIT

package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"
)

// yamlSettings is the marshal-side mirror of the document schema.
// Loading what Encode writes yields a field-for-field equal Settings.
type yamlSettings struct {
	Dpi         yamlDpi    `yaml:"dpi" json:"dpi"`
	Font        yamlFont   `yaml:"font" json:"font"`
	RenderTimer bool       `yaml:"render_timer" json:"render_timer"`
	Colors      yamlColors `yaml:"colors" json:"colors"`
	Tabspaces   int        `yaml:"tabspaces" json:"tabspaces"`
}

type yamlDpi struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

type yamlFont struct {
	Family      string     `yaml:"family" json:"family"`
	Style       string     `yaml:"style" json:"style"`
	BoldStyle   string     `yaml:"bold_style" json:"bold_style"`
	ItalicStyle string     `yaml:"italic_style" json:"italic_style"`
	Size        float64    `yaml:"size" json:"size"`
	Offset      yamlOffset `yaml:"offset" json:"offset"`
}

type yamlOffset struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

type yamlColors struct {
	Primary yamlPrimary `yaml:"primary" json:"primary"`
	Normal  yamlPalette `yaml:"normal" json:"normal"`
	Bright  yamlPalette `yaml:"bright" json:"bright"`
}

type yamlPrimary struct {
	Background Rgb `yaml:"background" json:"background"`
	Foreground Rgb `yaml:"foreground" json:"foreground"`
}

type yamlPalette struct {
	Black   Rgb `yaml:"black" json:"black"`
	Red     Rgb `yaml:"red" json:"red"`
	Green   Rgb `yaml:"green" json:"green"`
	Yellow  Rgb `yaml:"yellow" json:"yellow"`
	Blue    Rgb `yaml:"blue" json:"blue"`
	Magenta Rgb `yaml:"magenta" json:"magenta"`
	Cyan    Rgb `yaml:"cyan" json:"cyan"`
	White   Rgb `yaml:"white" json:"white"`
}

func toYAMLSettings(cfg Settings) yamlSettings {
	return yamlSettings{
		Dpi: yamlDpi{X: cfg.Dpi.X, Y: cfg.Dpi.Y},
		Font: yamlFont{
			Family:      cfg.Font.Family,
			Style:       cfg.Font.Style,
			BoldStyle:   cfg.Font.BoldStyle,
			ItalicStyle: cfg.Font.ItalicStyle,
			Size:        cfg.Font.Size,
			Offset:      yamlOffset{X: cfg.Font.Offset.X, Y: cfg.Font.Offset.Y},
		},
		RenderTimer: cfg.RenderTimer,
		Colors: yamlColors{
			Primary: yamlPrimary{
				Background: cfg.Colors.Primary.Background,
				Foreground: cfg.Colors.Primary.Foreground,
			},
			Normal: toYAMLPalette(cfg.Colors.Normal),
			Bright: toYAMLPalette(cfg.Colors.Bright),
		},
		Tabspaces: cfg.Tabspaces,
	}
}

func toYAMLPalette(p Palette) yamlPalette {
	return yamlPalette{
		Black:   p.Black,
		Red:     p.Red,
		Green:   p.Green,
		Yellow:  p.Yellow,
		Blue:    p.Blue,
		Magenta: p.Magenta,
		Cyan:    p.Cyan,
		White:   p.White,
	}
}

// Encode writes the settings as canonical YAML.
func Encode(w io.Writer, cfg Settings) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toYAMLSettings(cfg)); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close encoder: %w", err)
	}
	return nil
}

// EncodeJSON writes the settings as indented JSON, mirroring the YAML
// schema key for key.
func EncodeJSON(w io.Writer, cfg Settings) error {
	data, err := json.MarshalIndent(toYAMLSettings(cfg), "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Manager handles configuration persistence.
type Manager struct {
	configPath string
}

// NewManager creates a new configuration manager.
func NewManager(configPath string) *Manager {
	return &Manager{configPath: configPath}
}

// Save writes the configuration to disk atomically: the file is fully
// written and fsynced before it replaces (or creates) the target.
func (m *Manager) Save(cfg Settings) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(m.configPath), 0o750); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	pending, err := renameio.NewPendingFile(m.configPath)
	if err != nil {
		return fmt.Errorf("create pending config file: %w", err)
	}
	defer func() {
		_ = pending.Cleanup()
	}()

	if err := Encode(pending, cfg); err != nil {
		return err
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace config file: %w", err)
	}

	return nil
}
