package hook

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mj1618/tilerc/internal/log"
	"github.com/mj1618/tilerc/internal/model"
)

// Event names a host lifecycle event.
type Event string

const (
	EventStartup      Event = "startup"
	EventClientNew    Event = "client_new"
	EventClientKilled Event = "client_killed"
)

// Runner runs a command to completion.
type Runner interface {
	Run(ctx context.Context, argv []string) error
}

// Minimizer applies a window's minimized state to the display server.
type Minimizer interface {
	SetMinimized(win *model.Window, minimized bool) error
}

// Env is what a hook may touch besides the window it was fired for.
// Fields a hook does not need may be nil.
type Env struct {
	Registry  Registry
	Procs     ProcessTable
	Runner    Runner
	Minimizer Minimizer

	// AutostartPath is the script run on startup.
	AutostartPath string
}

// Func is a hook callback. win is nil for EventStartup.
type Func func(ctx context.Context, env Env, win *model.Window) error

// Report summarizes one Fire call.
type Report struct {
	Event  Event
	Ran    int
	Failed []error
}

type entry struct {
	name string
	fn   Func
}

// Table maps events to their hooks. Hooks run in registration order.
type Table struct {
	mu       sync.RWMutex
	hooks    map[Event][]entry
	failures int
	logger   zerolog.Logger
}

// NewTable returns an empty table logging through the hook component logger.
func NewTable() *Table {
	return &Table{
		hooks:  make(map[Event][]entry),
		logger: log.WithComponent("hook"),
	}
}

// Default returns a table with autostart on startup, swallow on client_new
// and unswallow on client_killed.
func Default() *Table {
	t := NewTable()
	t.Register(EventStartup, "autostart", AutostartHook)
	t.Register(EventClientNew, "swallow", SwallowHook)
	t.Register(EventClientKilled, "unswallow", UnswallowHook)
	return t
}

// Register appends fn to the hooks of ev.
func (t *Table) Register(ev Event, name string, fn Func) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.hooks[ev] = append(t.hooks[ev], entry{name: name, fn: fn})
}

// Hooks returns the names of the hooks registered for ev, in order.
func (t *Table) Hooks(ev Event) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	names := make([]string, 0, len(t.hooks[ev]))
	for _, e := range t.hooks[ev] {
		names = append(names, e.name)
	}
	return names
}

// Failures returns how many hook runs have failed since the table was built.
func (t *Table) Failures() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.failures
}

// Fire runs every hook registered for ev. A failing or panicking hook is
// logged and counted; the remaining hooks still run.
func (t *Table) Fire(ctx context.Context, ev Event, env Env, win *model.Window) Report {
	t.mu.RLock()
	hooks := append([]entry(nil), t.hooks[ev]...)
	t.mu.RUnlock()

	report := Report{Event: ev}
	for _, e := range hooks {
		report.Ran++
		err := runHook(ctx, e.fn, env, win)
		if err == nil {
			continue
		}
		report.Failed = append(report.Failed, fmt.Errorf("%s: %w", e.name, err))

		t.mu.Lock()
		t.failures++
		t.mu.Unlock()

		logEvt := t.logger.Error().Err(err).
			Str(log.FieldEvent, string(ev)).
			Str(log.FieldHook, e.name)
		if win != nil {
			logEvt = logEvt.Int(log.FieldWindowID, win.ID).Int(log.FieldPID, win.PID)
		}
		logEvt.Msg("hook failed")
	}
	return report
}

func runHook(ctx context.Context, fn Func, env Env, win *model.Window) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn(ctx, env, win)
}
