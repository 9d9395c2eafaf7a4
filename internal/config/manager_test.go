// SPDX-License-Identifier: MIT
package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alacritty.yaml")

	original := DefaultSettings()
	original.Font.Family = "Fira Code"
	original.Font.Size = 13.5
	original.Font.Offset = Offset{X: 1.0, Y: -2.5}
	original.RenderTimer = true
	original.Tabspaces = 4
	original.Colors = SolarizedDark()

	require.NoError(t, NewManager(path).Save(original))

	loaded, err := NewLoader(path).Load()
	require.NoError(t, err)

	if diff := cmp.Diff(original, loaded); diff != "" {
		t.Errorf("round-trip mismatch (-saved +loaded):\n%s", diff)
	}
}

func TestSaveLoadRoundTripDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alacritty.yml")

	require.NoError(t, NewManager(path).Save(DefaultSettings()))

	loaded, err := NewLoader(path).Load()
	require.NoError(t, err)

	if diff := cmp.Diff(DefaultSettings(), loaded); diff != "" {
		t.Errorf("round-trip mismatch (-saved +loaded):\n%s", diff)
	}
}

func TestSaveRejectsInvalidSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alacritty.yaml")

	bad := DefaultSettings()
	bad.Tabspaces = 0

	err := NewManager(path).Save(bad)
	require.Error(t, err)
	require.Contains(t, err.Error(), "tabspaces")
}

func TestSaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "alacritty.yaml")

	require.NoError(t, NewManager(path).Save(DefaultSettings()))

	_, err := NewLoader(path).Load()
	require.NoError(t, err)
}

func TestEncodeColorForm(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, DefaultSettings()))

	out := buf.String()
	// Colors must serialize as quoted 0xRRGGBB strings, never as integers.
	require.Contains(t, out, "'0x000000'")
	require.Contains(t, out, "'0xeaeaea'")
	require.True(t, strings.Contains(out, "render_timer: false"))
	require.True(t, strings.Contains(out, "tabspaces: 8"))
}
