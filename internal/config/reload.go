// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"fmt"
	"sync"
	"time"

	xglog "github.com/Valloric/alacritty/internal/log"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Holder holds settings with atomic reloading capability. Readers always
// see a fully validated record: a failed reload keeps the old settings.
type Holder struct {
	mu         sync.RWMutex
	current    Settings
	loader     *Loader
	configPath string
	watcher    *fsnotify.Watcher
	logger     zerolog.Logger

	reloadMu        sync.RWMutex
	reloadListeners []chan<- Settings
}

// NewHolder creates a settings holder with an initial validated record.
func NewHolder(initial Settings, loader *Loader, configPath string) *Holder {
	return &Holder{
		current:         initial,
		loader:          loader,
		configPath:      configPath,
		logger:          xglog.WithComponent("config"),
		reloadListeners: make([]chan<- Settings, 0),
	}
}

// Get returns the current settings (thread-safe read).
func (h *Holder) Get() Settings {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Reload reloads settings from file and validates them. If loading or
// validation fails, the old settings are kept and an error is returned.
func (h *Holder) Reload(_ context.Context) error {
	h.logger.Info().Str(xglog.FieldEvent, "config.reload_start").Msg("reloading configuration")

	newCfg, err := h.loader.Load()
	if err != nil {
		h.logger.Error().
			Err(err).
			Str(xglog.FieldEvent, "config.reload_failed").
			Msg("failed to load new configuration")
		return fmt.Errorf("load config: %w", err)
	}

	h.mu.Lock()
	oldCfg := h.current
	h.current = newCfg
	h.mu.Unlock()

	h.notifyListeners(newCfg)
	h.logChanges(oldCfg, newCfg)

	h.logger.Info().
		Str(xglog.FieldEvent, "config.reload_success").
		Msg("configuration reloaded successfully")

	return nil
}

// Watch starts watching the config file for changes. If configPath is
// empty this is a no-op (settings are defaults-only).
func (h *Holder) Watch(ctx context.Context) error {
	if h.configPath == "" {
		h.logger.Info().
			Str(xglog.FieldEvent, "config.watcher_disabled").
			Msg("config file watcher disabled (defaults-only configuration)")
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	h.watcher = watcher

	if err := watcher.Add(h.configPath); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch config file: %w", err)
	}

	h.logger.Info().
		Str(xglog.FieldEvent, "config.watcher_started").
		Str(xglog.FieldPath, h.configPath).
		Msg("watching config file for changes")

	go h.watchLoop(ctx)

	return nil
}

// watchLoop is the main file watcher loop.
func (h *Holder) watchLoop(ctx context.Context) {
	// Debounce timer to avoid multiple reloads for rapid file changes
	var debounceTimer *time.Timer
	debounceDuration := 500 * time.Millisecond

	for {
		select {
		case <-ctx.Done():
			h.logger.Info().Str(xglog.FieldEvent, "config.watcher_stopped").Msg("config watcher stopped")
			if h.watcher != nil {
				_ = h.watcher.Close()
			}
			return

		case event, ok := <-h.watcher.Events:
			if !ok {
				return
			}

			// Write and Create cover vim, nano and plain redirects
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				h.logger.Debug().
					Str(xglog.FieldEvent, "config.file_changed").
					Str(xglog.FieldOp, event.Op.String()).
					Msg("config file changed")

				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounceDuration, func() {
					if err := h.Reload(ctx); err != nil {
						h.logger.Error().
							Err(err).
							Str(xglog.FieldEvent, "config.auto_reload_failed").
							Msg("automatic config reload failed")
					}
				})
			}

		case err, ok := <-h.watcher.Errors:
			if !ok {
				return
			}
			h.logger.Error().
				Err(err).
				Str(xglog.FieldEvent, "config.watcher_error").
				Msg("config watcher error")
		}
	}
}

// Stop stops the config watcher (if running).
func (h *Holder) Stop() {
	if h.watcher != nil {
		_ = h.watcher.Close()
	}
}

// RegisterListener registers a channel to receive reload notifications.
// The channel receives the new settings whenever a reload succeeds. The
// caller owns the channel.
func (h *Holder) RegisterListener(ch chan<- Settings) {
	h.reloadMu.Lock()
	defer h.reloadMu.Unlock()
	h.reloadListeners = append(h.reloadListeners, ch)
}

// notifyListeners sends the new settings to all listeners (non-blocking).
func (h *Holder) notifyListeners(newCfg Settings) {
	h.reloadMu.RLock()
	defer h.reloadMu.RUnlock()

	for _, ch := range h.reloadListeners {
		select {
		case ch <- newCfg:
		default:
			h.logger.Warn().
				Str(xglog.FieldEvent, "config.listener_skip").
				Msg("skipped notifying listener (channel full)")
		}
	}
}

// logChanges logs the differences between old and new settings.
func (h *Holder) logChanges(old, newCfg Settings) {
	if old.Font.Family != newCfg.Font.Family {
		h.logger.Info().
			Str("old", old.Font.Family).
			Str("new", newCfg.Font.Family).
			Msg("config changed: font.family")
	}
	if old.Font.Size != newCfg.Font.Size {
		h.logger.Info().
			Float64("old", old.Font.Size).
			Float64("new", newCfg.Font.Size).
			Msg("config changed: font.size")
	}
	if old.Tabspaces != newCfg.Tabspaces {
		h.logger.Info().
			Int("old", old.Tabspaces).
			Int("new", newCfg.Tabspaces).
			Msg("config changed: tabspaces")
	}
	if old.RenderTimer != newCfg.RenderTimer {
		h.logger.Info().
			Bool("old", old.RenderTimer).
			Bool("new", newCfg.RenderTimer).
			Msg("config changed: render_timer")
	}
	if old.Colors.Primary != newCfg.Colors.Primary {
		h.logger.Info().
			Str("old", old.Background().String()+"/"+old.Foreground().String()).
			Str("new", newCfg.Background().String()+"/"+newCfg.Foreground().String()).
			Msg("config changed: colors.primary")
	}
}
