package x11

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/BurntSushi/xgbutil/xwindow"
	"github.com/rs/zerolog"

	"github.com/mj1618/tilerc/internal/log"
	"github.com/mj1618/tilerc/internal/model"
	"github.com/mj1618/tilerc/internal/platform"
)

// Conn is a connection to the X server.
type Conn struct {
	X      *xgbutil.XUtil
	logger zerolog.Logger

	mu    sync.Mutex
	known map[xproto.Window]bool
}

// Dial connects to the display named by $DISPLAY.
func Dial() (*Conn, error) {
	X, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect to X server: %w", err)
	}
	return &Conn{X: X, logger: log.WithComponent("x11")}, nil
}

// Close closes the connection.
func (c *Conn) Close() {
	c.X.Conn().Close()
}

// ListWindows returns every client in _NET_CLIENT_LIST. Clients whose
// properties cannot be read are skipped.
func (c *Conn) ListWindows() ([]model.Window, error) {
	clients, err := ewmh.ClientListGet(c.X)
	if err != nil {
		return nil, fmt.Errorf("read client list: %w", err)
	}
	windows := make([]model.Window, 0, len(clients))
	for _, id := range clients {
		w, err := c.window(id)
		if err != nil {
			c.logger.Debug().Err(err).Uint32(log.FieldWindowID, uint32(id)).Msg("skipping client")
			continue
		}
		windows = append(windows, w)
	}
	return windows, nil
}

// window reads the properties of a single client. A missing _NET_WM_PID
// leaves PID at zero.
func (c *Conn) window(id xproto.Window) (model.Window, error) {
	w := model.Window{ID: int(id)}
	if pid, err := ewmh.WmPidGet(c.X, id); err == nil {
		w.PID = int(pid)
	}
	class, err := icccm.WmClassGet(c.X, id)
	if err != nil {
		return w, fmt.Errorf("WM_CLASS of 0x%x: %w", uint32(id), err)
	}
	w.Class = []string{class.Instance, class.Class}

	if title, err := ewmh.WmNameGet(c.X, id); err == nil && title != "" {
		w.Title = title
	} else if title, err := icccm.WmNameGet(c.X, id); err == nil {
		w.Title = title
	}
	if types, err := ewmh.WmWindowTypeGet(c.X, id); err == nil && len(types) > 0 {
		w.Type = windowType(types[0])
	}
	if hints, err := icccm.WmNormalHintsGet(c.X, id); err == nil {
		w.FixedSize, w.FixedRatio = sizeHints(hints)
	}
	if owner, err := icccm.WmTransientForGet(c.X, id); err == nil && owner != 0 {
		w.Transient = true
	}
	return w, nil
}

// sizeHints reports whether WM_NORMAL_HINTS pin the window to one size or
// to one aspect ratio.
func sizeHints(h *icccm.NormalHints) (fixedSize, fixedRatio bool) {
	const minMax = icccm.SizeHintPMinSize | icccm.SizeHintPMaxSize
	fixedSize = h.Flags&minMax == minMax &&
		h.MinWidth > 0 && h.MinHeight > 0 &&
		h.MinWidth == h.MaxWidth && h.MinHeight == h.MaxHeight
	fixedRatio = h.Flags&icccm.SizeHintPAspect != 0 &&
		h.MinAspectDen > 0 && h.MaxAspectDen > 0 &&
		h.MinAspectNum*h.MaxAspectDen == h.MaxAspectNum*h.MinAspectDen
	return fixedSize, fixedRatio
}

// SetMinimized iconifies or restores win.
func (c *Conn) SetMinimized(win *model.Window, minimized bool) error {
	id := xproto.Window(win.ID)
	if minimized {
		if err := ewmh.ClientEvent(c.X, id, "WM_CHANGE_STATE", icccm.StateIconic); err != nil {
			return fmt.Errorf("iconify 0x%x: %w", win.ID, err)
		}
		return nil
	}
	if err := ewmh.ActiveWindowReq(c.X, id); err != nil {
		return fmt.Errorf("restore 0x%x: %w", win.ID, err)
	}
	return nil
}

// Focus asks the window manager to activate win.
func (c *Conn) Focus(win *model.Window) error {
	if err := ewmh.ActiveWindowReq(c.X, xproto.Window(win.ID)); err != nil {
		return fmt.Errorf("focus 0x%x: %w", win.ID, err)
	}
	return nil
}

// Watch reports client list changes until ctx is cancelled. Clients already
// present when Watch starts are not reported.
func (c *Conn) Watch(ctx context.Context, fn func(platform.WindowEvent)) error {
	root := c.X.RootWin()
	if err := xwindow.New(c.X, root).Listen(xproto.EventMaskPropertyChange); err != nil {
		return fmt.Errorf("listen on root window: %w", err)
	}

	initial, err := ewmh.ClientListGet(c.X)
	if err != nil {
		return fmt.Errorf("read client list: %w", err)
	}
	c.mu.Lock()
	c.known = make(map[xproto.Window]bool, len(initial))
	for _, id := range initial {
		c.known[id] = true
	}
	c.mu.Unlock()

	xevent.PropertyNotifyFun(func(X *xgbutil.XUtil, ev xevent.PropertyNotifyEvent) {
		name, err := xprop.AtomName(X, ev.Atom)
		if err != nil || name != "_NET_CLIENT_LIST" {
			return
		}
		c.clientListChanged(fn)
	}).Connect(c.X, root)

	before, after, quit := xevent.MainPing(c.X)
	for {
		select {
		case <-before:
			<-after
		case <-quit:
			return nil
		case <-ctx.Done():
			xevent.Quit(c.X)
			return ctx.Err()
		}
	}
}

func (c *Conn) clientListChanged(fn func(platform.WindowEvent)) {
	clients, err := ewmh.ClientListGet(c.X)
	if err != nil {
		c.logger.Warn().Err(err).Msg("read client list")
		return
	}

	c.mu.Lock()
	added, removed := diffClients(c.known, clients)
	for _, id := range added {
		c.known[id] = true
	}
	for _, id := range removed {
		delete(c.known, id)
	}
	c.mu.Unlock()

	for _, id := range removed {
		fn(platform.WindowEvent{Kind: platform.EventDestroyed, Window: model.Window{ID: int(id)}})
	}
	for _, id := range added {
		w, err := c.window(id)
		if err != nil {
			c.logger.Debug().Err(err).Uint32(log.FieldWindowID, uint32(id)).Msg("new client vanished")
			continue
		}
		fn(platform.WindowEvent{Kind: platform.EventCreated, Window: w})
	}
}

// diffClients compares the known set with the current client list. Both
// results are sorted by window id.
func diffClients(known map[xproto.Window]bool, current []xproto.Window) (added, removed []xproto.Window) {
	seen := make(map[xproto.Window]bool, len(current))
	for _, id := range current {
		seen[id] = true
		if !known[id] {
			added = append(added, id)
		}
	}
	for id := range known {
		if !seen[id] {
			removed = append(removed, id)
		}
	}
	sort.Slice(added, func(i, j int) bool { return added[i] < added[j] })
	sort.Slice(removed, func(i, j int) bool { return removed[i] < removed[j] })
	return added, removed
}

// windowType turns _NET_WM_WINDOW_TYPE_DIALOG into "dialog".
func windowType(atom string) string {
	return strings.ToLower(strings.TrimPrefix(atom, "_NET_WM_WINDOW_TYPE_"))
}
