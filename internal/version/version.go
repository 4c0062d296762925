// Package version holds build metadata, set with -ldflags at release time:
//
//	go build -ldflags "-X github.com/mj1618/tilerc/internal/version.Version=v1.2.0"
package version

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)
