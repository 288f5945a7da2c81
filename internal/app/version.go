package app

import "fmt"

// Build metadata, stamped by the release build into every binary:
//
//	go build -ldflags "-X github.com/heartmarshall/facility-backend/internal/app.Version=1.4.0" ./cmd/...
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the version line written at startup by the server and
// cron binaries.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
