package session

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/mj1618/tilerc/internal/config"
	"github.com/mj1618/tilerc/internal/log"
	"github.com/mj1618/tilerc/internal/model"
)

// DefaultDebounce is how long the reloader waits after the last change
// before reading the overrides file.
const DefaultDebounce = 500 * time.Millisecond

// Reloader holds the assembled configuration and rebuilds it when the
// overrides file changes. A reload that fails to parse or validate keeps
// the previous configuration.
type Reloader struct {
	path     string
	debounce time.Duration
	logger   zerolog.Logger

	mu        sync.RWMutex
	current   *model.Config
	listeners []func(*model.Config, []model.KeyChange)
}

// NewReloader returns a Reloader for the overrides file at path, starting
// from initial.
func NewReloader(path string, initial *model.Config) *Reloader {
	return &Reloader{
		path:     path,
		debounce: DefaultDebounce,
		logger:   log.WithComponent("reload"),
		current:  initial,
	}
}

// Current returns the configuration in effect.
func (r *Reloader) Current() *model.Config {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// OnReload registers fn to be called after every successful reload.
func (r *Reloader) OnReload(fn func(cfg *model.Config, changes []model.KeyChange)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, fn)
}

// Reload reads the overrides file now.
func (r *Reloader) Reload() error {
	next, err := config.Load(r.path)
	if err != nil {
		r.logger.Error().Err(err).Str(log.FieldEvent, "config.reload_failed").Msg("reload failed")
		return fmt.Errorf("load config: %w", err)
	}
	if err := config.Validate(next); err != nil {
		r.logger.Error().Err(err).Str(log.FieldEvent, "config.validation_failed").Msg("new configuration failed validation")
		return fmt.Errorf("validate config: %w", err)
	}

	r.mu.Lock()
	prev := r.current
	r.current = next
	listeners := append([]func(*model.Config, []model.KeyChange){}, r.listeners...)
	r.mu.Unlock()

	changes := model.DiffConfigs(prev, next)
	for _, c := range changes {
		r.logger.Info().
			Str("change", string(c.Type)).
			Str("chord", c.Chord).
			Str("desc", c.Desc).
			Msg("key binding changed")
	}
	r.logger.Info().Str(log.FieldEvent, "config.reload_success").Int("changes", len(changes)).Msg("configuration reloaded")

	for _, fn := range listeners {
		fn(next, changes)
	}
	return nil
}

// Watch reloads whenever the overrides file is written, created or renamed
// into place, until ctx is cancelled. The directory is watched rather than
// the file so that a file created later, or replaced by an editor, is seen.
func (r *Reloader) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(r.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	r.logger.Info().Str(log.FieldPath, r.path).Msg("watching overrides file")

	name := filepath.Clean(r.path)
	var timer *time.Timer
	fire := make(chan struct{}, 1)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != name {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			r.logger.Debug().Str("op", ev.Op.String()).Msg("overrides file changed")
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(r.debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			_ = r.Reload()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.logger.Error().Err(err).Msg("watcher error")
		}
	}
}
