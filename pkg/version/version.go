package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is overridden with -ldflags "-X".
	Version = "0.0.0-dev"

	Revision = revision()
)

// String returns the version and revision.
func String() string {
	return fmt.Sprintf("%s (%s)", Version, Revision)
}

func revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			return s.Value
		}
	}

	return "unknown"
}
