package app

import "fmt"

// Build metadata, overridden via ldflags:
//
//	go build -ldflags "-X github.com/kartuli-app/kartuli-backend/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion formats the build metadata for startup logs and the health
// endpoint.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
