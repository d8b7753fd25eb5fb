package app

import "fmt"

// Version, Commit, and BuildTime are stamped via ldflags when a dataset
// release is built, so every published CLDF build can be traced back to
// the converter revision that produced it. Example:
//
//	go build -ldflags "-X github.com/cldf-datasets/antipassives/internal/app.Version=v1.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns a formatted version string for startup logs.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
