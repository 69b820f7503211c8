// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// FILE WATCHER
// =============================================================================

// Watch reloads the global config whenever the config file changes on disk,
// invoking onReload with the fresh config after each successful reload. It
// blocks until ctx is cancelled.
//
// Editors replace files rather than rewriting them in place, so the watcher
// follows the containing directory and filters on the config file name.
func Watch(ctx context.Context, onReload func(*Config)) error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := EnsureConfigDir(); err != nil {
		return err
	}
	if err := watcher.Add(dir); err != nil {
		return err
	}

	// Editors fire bursts of events per save; a short debounce collapses
	// them into one reload.
	var timer *time.Timer
	reload := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(200*time.Millisecond, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})

		case <-reload:
			if err := ReloadGlobal(); err != nil {
				// A half-written file fails validation; keep the old config
				// and wait for the next event.
				continue
			}
			if onReload != nil {
				onReload(Global())
			}

		case _, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
		}
	}
}
