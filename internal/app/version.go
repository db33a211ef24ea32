package app

import (
	"fmt"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/heartmarshall/todo-backend/internal/app.Version=1.0.0".
// Commit and BuildTime fall back to the VCS stamp of the build when unset.
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion is reported in startup logs and by /health.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if commit == "" || built == "" {
		c, b := vcsStamp()
		commit, built = or(commit, c), or(built, b)
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, or(commit, "unknown"), or(built, "unknown"))
}

func vcsStamp() (revision, at string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
			if len(revision) > 12 {
				revision = revision[:12]
			}
		case "vcs.time":
			at = s.Value
		}
	}
	return revision, at
}

func or(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
