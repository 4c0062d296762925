package platform

import (
	"context"

	"github.com/mj1618/tilerc/internal/model"
)

// WindowLister reads the managed client list from the display server.
type WindowLister interface {
	// ListWindows returns every managed client with its pid, class and title.
	ListWindows() ([]model.Window, error)
}

// WindowManager changes the state of client windows.
type WindowManager interface {
	SetMinimized(win *model.Window, minimized bool) error
	Focus(win *model.Window) error
}

// EventSource delivers client creation and destruction.
type EventSource interface {
	// Watch calls fn for every event until ctx is cancelled. It blocks.
	Watch(ctx context.Context, fn func(WindowEvent)) error
}

// ProcessTable answers questions about running processes.
type ProcessTable interface {
	// ParentPID returns the parent of pid, or 0 when it has none.
	ParentPID(pid int) (int, error)
	// Name returns the short command name of pid.
	Name(pid int) (string, error)
}

// Launcher starts commands.
type Launcher interface {
	// Spawn starts argv detached and returns once it has started.
	Spawn(argv []string) error
	// Run starts argv and waits for it to exit.
	Run(ctx context.Context, argv []string) error
}
