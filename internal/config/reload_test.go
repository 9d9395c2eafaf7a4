// SPDX-License-Identifier: MIT
package config

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHolderReload(t *testing.T) {
	path := writeConfig(t, "tabspaces: 8\n")

	loader := NewLoader(path)
	initial, err := loader.Load()
	require.NoError(t, err)

	holder := NewHolder(initial, loader, path)
	require.Equal(t, 8, holder.Get().Tabspaces)

	require.NoError(t, os.WriteFile(path, []byte("tabspaces: 2\n"), 0o600))
	require.NoError(t, holder.Reload(context.Background()))
	require.Equal(t, 2, holder.Get().Tabspaces)
}

func TestHolderReloadFailureKeepsOldSettings(t *testing.T) {
	path := writeConfig(t, "tabspaces: 8\n")

	loader := NewLoader(path)
	initial, err := loader.Load()
	require.NoError(t, err)

	holder := NewHolder(initial, loader, path)

	// Invalid replacement must not disturb the current settings.
	require.NoError(t, os.WriteFile(path, []byte("tabspaces: 0\n"), 0o600))
	require.Error(t, holder.Reload(context.Background()))
	require.Equal(t, 8, holder.Get().Tabspaces)
}

func TestHolderNotifiesListeners(t *testing.T) {
	path := writeConfig(t, "tabspaces: 8\n")

	loader := NewLoader(path)
	initial, err := loader.Load()
	require.NoError(t, err)

	holder := NewHolder(initial, loader, path)
	ch := make(chan Settings, 1)
	holder.RegisterListener(ch)

	require.NoError(t, os.WriteFile(path, []byte("tabspaces: 3\n"), 0o600))
	require.NoError(t, holder.Reload(context.Background()))

	select {
	case got := <-ch:
		require.Equal(t, 3, got.Tabspaces)
	case <-time.After(time.Second):
		t.Fatal("listener was not notified")
	}
}

func TestHolderWatch(t *testing.T) {
	path := writeConfig(t, "tabspaces: 8\n")

	loader := NewLoader(path)
	initial, err := loader.Load()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	holder := NewHolder(initial, loader, path)
	require.NoError(t, holder.Watch(ctx))
	defer holder.Stop()

	require.NoError(t, os.WriteFile(path, []byte("tabspaces: 5\n"), 0o600))

	require.Eventually(t, func() bool {
		return holder.Get().Tabspaces == 5
	}, 5*time.Second, 50*time.Millisecond, "watcher should reload on file write")
}

func TestHolderWatchNoPath(t *testing.T) {
	holder := NewHolder(DefaultSettings(), NewLoader(""), "")
	require.NoError(t, holder.Watch(context.Background()))
	holder.Stop()
}
