// Package session drives the hook table from a live display: it keeps a
// window registry in step with client creation and destruction, fires the
// matching hooks, and applies minimized state back to the display server.
package session

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mj1618/tilerc/internal/hook"
	"github.com/mj1618/tilerc/internal/log"
	"github.com/mj1618/tilerc/internal/model"
	"github.com/mj1618/tilerc/internal/platform"
)

// Options configures a Session.
type Options struct {
	// Table is the hook table to fire. Defaults to hook.Default().
	Table *hook.Table
	// AutostartPath is passed to the startup hook.
	AutostartPath string
	// SkipStartup suppresses the startup event.
	SkipStartup bool
}

// Session owns the window registry for one display connection.
type Session struct {
	provider *platform.Provider
	table    *hook.Table
	opts     Options
	logger   zerolog.Logger

	mu       sync.Mutex
	windows  map[int]*model.Window
	floating model.FloatingLayout
}

// New returns a session over p. Only p.Events is required; a nil
// WindowManager leaves minimized state in the registry only.
func New(p *platform.Provider, opts Options) *Session {
	table := opts.Table
	if table == nil {
		table = hook.Default()
	}
	return &Session{
		provider: p,
		table:    table,
		opts:     opts,
		logger:   log.WithComponent("session"),
		windows:  make(map[int]*model.Window),
	}
}

// Snapshot returns copies of the registered windows ordered by id.
func (s *Session) Snapshot() []model.Window {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Window, 0, len(s.windows))
	for _, w := range s.windows {
		out = append(out, *w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Register adds w to the registry without firing any hook, replacing a
// window with the same id.
func (s *Session) Register(w model.Window) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.windows[w.ID] = &w
}

// SetConfig applies the floating rules of cfg to windows created from now
// on and to Floating queries. It is safe to call from a reload listener.
func (s *Session) SetConfig(cfg *model.Config) {
	if cfg == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.floating = cfg.Floating
}

// Floating reports whether the registered window id matches the current
// floating rules.
func (s *Session) Floating(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.windows[id]
	return ok && s.floating.ShouldFloat(w)
}

// env must be called with s.mu held; the registry it carries is the live map.
func (s *Session) env() hook.Env {
	env := hook.Env{
		Registry:      hook.MapRegistry(s.windows),
		AutostartPath: s.opts.AutostartPath,
	}
	if s.provider != nil {
		if s.provider.Processes != nil {
			env.Procs = s.provider.Processes
		}
		if s.provider.Launcher != nil {
			env.Runner = s.provider.Launcher
		}
		if s.provider.WindowManager != nil {
			env.Minimizer = s.provider.WindowManager
		}
	}
	return env
}

// Start seeds the registry with the clients that already exist and fires
// the startup event. Existing clients do not get client_new.
func (s *Session) Start(ctx context.Context) error {
	if s.provider != nil && s.provider.Windows != nil {
		existing, err := s.provider.Windows.ListWindows()
		if err != nil {
			return err
		}
		for _, w := range existing {
			s.Register(w)
		}
		s.logger.Info().Int("windows", len(existing)).Msg("registry seeded")
	}
	if s.opts.SkipStartup {
		return nil
	}
	s.mu.Lock()
	env := s.env()
	s.mu.Unlock()
	s.table.Fire(ctx, hook.EventStartup, env, nil)
	return nil
}

// Handle applies one window event: client_new fires before the window is
// registered, client_killed fires before it is dropped.
func (s *Session) Handle(ctx context.Context, ev platform.WindowEvent) hook.Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch ev.Kind {
	case platform.EventCreated:
		w := ev.Window
		report := s.table.Fire(ctx, hook.EventClientNew, s.env(), &w)
		s.windows[w.ID] = &w
		s.logger.Debug().
			Int(log.FieldWindowID, w.ID).
			Int(log.FieldPID, w.PID).
			Strs(log.FieldClass, w.Class).
			Bool("floating", s.floating.ShouldFloat(&w)).
			Msg("client registered")
		return report

	case platform.EventDestroyed:
		w, ok := s.windows[ev.Window.ID]
		if !ok {
			s.logger.Debug().Int(log.FieldWindowID, ev.Window.ID).Msg("unknown client destroyed")
			return hook.Report{Event: hook.EventClientKilled}
		}
		report := s.table.Fire(ctx, hook.EventClientKilled, s.env(), w)
		delete(s.windows, w.ID)
		for _, other := range s.windows {
			if other.Parent == w {
				other.Parent = nil
			}
		}
		return report
	}
	return hook.Report{}
}

// Run starts the session and handles events until ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	if err := s.Start(ctx); err != nil {
		return err
	}
	if s.provider == nil || s.provider.Events == nil {
		return platform.ErrUnsupported
	}
	err := s.provider.Events.Watch(ctx, func(ev platform.WindowEvent) {
		s.Handle(ctx, ev)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
