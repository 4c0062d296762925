package platform

import (
	"fmt"
	"runtime"
)

// Provider bundles the display and process backends for the current host.
type Provider struct {
	Windows       WindowLister
	WindowManager WindowManager
	Events        EventSource
	Processes     ProcessTable
	Launcher      Launcher

	// Close releases the display connection.
	Close func()
}

// ErrUnsupported is returned when no display backend is registered.
var ErrUnsupported = fmt.Errorf("tilerc is not supported on %s/%s; supported: linux with an X11 display", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by display packages via init().
// See internal/platform/x11/init.go for the X11 registration.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current host.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}
