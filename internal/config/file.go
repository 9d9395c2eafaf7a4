// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scalar captures a YAML leaf verbatim. Deferring type coercion to the
// merge step lets format problems be reported with the full field path
// instead of a document line number, and keeps quoted and unquoted
// scalars equivalent.
type scalar struct {
	set   bool
	value string
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *scalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected scalar value", node.Line)
	}
	if node.Tag == "!!null" {
		// Explicit null means the key is present but unset: keep the default.
		return nil
	}
	s.value = node.Value
	s.set = true
	return nil
}

// fileSettings mirrors the document schema. Groups are pointers and
// leaves are verbatim scalars so the merge step can distinguish absent
// fields from present ones.
type fileSettings struct {
	Dpi         *fileDpi    `yaml:"dpi"`
	Font        *fileFont   `yaml:"font"`
	RenderTimer scalar      `yaml:"render_timer"`
	Colors      *fileColors `yaml:"colors"`
	Tabspaces   scalar      `yaml:"tabspaces"`
}

type fileDpi struct {
	X scalar `yaml:"x"`
	Y scalar `yaml:"y"`
}

type fileFont struct {
	Family      scalar      `yaml:"family"`
	Style       scalar      `yaml:"style"`
	BoldStyle   scalar      `yaml:"bold_style"`
	ItalicStyle scalar      `yaml:"italic_style"`
	Size        scalar      `yaml:"size"`
	Offset      *fileOffset `yaml:"offset"`
}

type fileOffset struct {
	X scalar `yaml:"x"`
	Y scalar `yaml:"y"`
}

type fileColors struct {
	Primary *filePrimary `yaml:"primary"`
	Normal  *filePalette `yaml:"normal"`
	Bright  *filePalette `yaml:"bright"`
}

type filePrimary struct {
	Background scalar `yaml:"background"`
	Foreground scalar `yaml:"foreground"`
}

type filePalette struct {
	Black   scalar `yaml:"black"`
	Red     scalar `yaml:"red"`
	Green   scalar `yaml:"green"`
	Yellow  scalar `yaml:"yellow"`
	Blue    scalar `yaml:"blue"`
	Magenta scalar `yaml:"magenta"`
	Cyan    scalar `yaml:"cyan"`
	White   scalar `yaml:"white"`
}
