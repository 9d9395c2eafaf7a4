// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader loads a Settings record from a YAML configuration file.
// Load applies defaults first, then the file, then validates the result.
type Loader struct {
	configPath string

	// Strict rejects unknown document keys instead of ignoring them.
	// Off by default: unknown fields are forward-compatible.
	Strict bool
}

// NewLoader creates a loader for the given config file path. An empty
// path loads pure defaults.
func NewLoader(configPath string) *Loader {
	return &Loader{configPath: configPath}
}

// Load produces a validated Settings record or fails. On failure the
// returned Settings is the zero value: no partial configuration is ever
// produced.
func (l *Loader) Load() (Settings, error) {
	cfg := DefaultSettings()

	if l.configPath != "" {
		fileCfg, err := l.loadFile(l.configPath)
		if err != nil {
			return Settings{}, err
		}
		if err := mergeFile(&cfg, fileCfg); err != nil {
			return Settings{}, err
		}
	}

	if err := Validate(cfg); err != nil {
		return Settings{}, err
	}

	return cfg, nil
}

// LoadBytes loads settings from an in-memory document, applying the same
// defaults and validation as Load.
func LoadBytes(data []byte, strict bool) (Settings, error) {
	cfg := DefaultSettings()

	fileCfg, err := decode(data, "", strict)
	if err != nil {
		return Settings{}, err
	}
	if err := mergeFile(&cfg, fileCfg); err != nil {
		return Settings{}, err
	}
	if err := Validate(cfg); err != nil {
		return Settings{}, err
	}

	return cfg, nil
}

// loadFile reads and decodes a YAML config file.
func (l *Loader) loadFile(path string) (*fileSettings, error) {
	path = filepath.Clean(path)

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return nil, &ParseError{
			Path: path,
			Err:  fmt.Errorf("unsupported config format: %s (only YAML supported)", ext),
		}
	}

	// #nosec G304 -- configuration file paths are provided by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return decode(data, path, l.Strict)
}

// decode parses a YAML document into the file schema. Syntax failures
// become *ParseError; field-level format problems are left to the merge
// step so they carry a field path.
func decode(data []byte, path string, strict bool) (*fileSettings, error) {
	var fileCfg fileSettings
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if strict {
		dec.KnownFields(true)
	}

	if err := dec.Decode(&fileCfg); err != nil {
		if err == io.EOF {
			return &fileSettings{}, nil
		}
		if strict && strings.Contains(err.Error(), "not found") {
			return nil, &ParseError{Path: path, Err: fmt.Errorf("%w: %v", ErrUnknownField, err)}
		}
		return nil, &ParseError{Path: path, Err: err}
	}

	// A document must be a single mapping: trailing documents are a
	// misconfiguration, not forward compatibility.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("config contains multiple documents or trailing content")}
	}

	return &fileCfg, nil
}
