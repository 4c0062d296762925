package platform

import (
	"fmt"
	"strings"

	"github.com/mj1618/tilerc/internal/model"
)

// EventKind identifies a window lifecycle transition.
type EventKind int

const (
	EventCreated EventKind = iota
	EventDestroyed
)

func (k EventKind) String() string {
	switch k {
	case EventCreated:
		return "created"
	case EventDestroyed:
		return "destroyed"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// ParseEventKind converts a string value to EventKind. "open" and "close"
// are accepted as aliases.
func ParseEventKind(s string) (EventKind, error) {
	switch strings.ToLower(s) {
	case "created", "open":
		return EventCreated, nil
	case "destroyed", "close":
		return EventDestroyed, nil
	default:
		return EventCreated, fmt.Errorf("unknown window event: %q (expected created or destroyed)", s)
	}
}

// WindowEvent is one client creation or destruction. For EventDestroyed
// only Window.ID is reliable; the client's properties are already gone.
type WindowEvent struct {
	Kind   EventKind
	Window model.Window
}
