//go:build linux

package x11

import (
	"github.com/mj1618/tilerc/internal/platform"
	"github.com/mj1618/tilerc/internal/platform/launch"
	"github.com/mj1618/tilerc/internal/platform/proctable"
)

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		procs, err := proctable.New()
		if err != nil {
			return nil, err
		}
		conn, err := Dial()
		if err != nil {
			return nil, err
		}
		return &platform.Provider{
			Windows:       conn,
			WindowManager: conn,
			Events:        conn,
			Processes:     procs,
			Launcher:      launch.New(),
			Close:         conn.Close,
		}, nil
	}
}
