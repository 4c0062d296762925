package hook

import (
	"fmt"
	"sort"

	"github.com/mj1618/tilerc/internal/model"
)

const (
	// MaxAncestry is how many parent processes Swallow inspects. The
	// ancestor at hop MaxAncestry is still compared.
	MaxAncestry = 5

	// SwallowClass is the WM_CLASS instance of the only terminal that is
	// swallowed.
	SwallowClass = "Alacritty"
)

// Registry exposes the host's open windows keyed by window id.
type Registry interface {
	Windows() map[int]*model.Window
}

// ProcessTable resolves a process to its parent. A parent pid of 0 means
// the process has no parent worth following.
type ProcessTable interface {
	ParentPID(pid int) (int, error)
}

// MapRegistry is a Registry backed by a plain map.
type MapRegistry map[int]*model.Window

// Windows implements Registry.
func (r MapRegistry) Windows() map[int]*model.Window { return r }

// Swallow looks for an open terminal window among win's process ancestors.
// If the nearest ancestor owning a window is a SwallowClass terminal, that
// window is marked minimized, win.Parent is set to it, and it is returned.
// Any other outcome leaves every window untouched and returns nil.
//
// Process lookup errors are returned as they happen; the walk is not
// retried.
func Swallow(win *model.Window, reg Registry, procs ProcessTable) (*model.Window, error) {
	if win == nil || win.PID <= 0 {
		return nil, nil
	}
	ppid, err := procs.ParentPID(win.PID)
	if err != nil {
		return nil, fmt.Errorf("parent of pid %d: %w", win.PID, err)
	}

	windows := reg.Windows()
	owners := windowsByPID(windows, win)

	for hop := 1; hop <= MaxAncestry; hop++ {
		if ppid <= 0 {
			return nil, nil
		}
		if id, ok := owners[ppid]; ok {
			parent := windows[id]
			if parent.Instance() != SwallowClass {
				return nil, nil
			}
			parent.Minimized = true
			win.Parent = parent
			return parent, nil
		}
		if hop == MaxAncestry {
			break
		}
		pid := ppid
		if ppid, err = procs.ParentPID(pid); err != nil {
			return nil, fmt.Errorf("parent of pid %d: %w", pid, err)
		}
	}
	return nil, nil
}

// Unswallow restores the window win swallowed, if any, and returns it.
func Unswallow(win *model.Window) *model.Window {
	if win == nil || win.Parent == nil {
		return nil
	}
	win.Parent.Minimized = false
	return win.Parent
}

// windowsByPID maps each pid to the window that owns it, skipping self and
// windows without a pid. When several windows share a pid the one with the
// highest id wins.
func windowsByPID(windows map[int]*model.Window, self *model.Window) map[int]int {
	ids := make([]int, 0, len(windows))
	for id := range windows {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	owners := make(map[int]int, len(ids))
	for _, id := range ids {
		w := windows[id]
		if w == nil || w == self || w.PID <= 0 {
			continue
		}
		owners[w.PID] = id
	}
	return owners
}
