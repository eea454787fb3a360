// Package version exposes build metadata for logs, the health endpoint,
// and user-agent strings.
package version

import "runtime/debug"

// AppName is the application name used in version strings.
const AppName = "numveil"

// commitOverride is set via -ldflags for builds without VCS metadata
// (container builds stripping .git). Empty means no override.
var commitOverride string

// GitCommit is the short commit hash, with a "-dirty" suffix when built
// from a modified tree, or "dev" when no VCS info is available.
var GitCommit = resolveCommit()

func resolveCommit() string {
	if commitOverride != "" {
		return shorten(commitOverride)
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}

	var revision string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if revision == "" {
		return "dev"
	}
	if dirty {
		return shorten(revision) + "-dirty"
	}
	return shorten(revision)
}

func shorten(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns "numveil/<commit>".
func Full() string {
	return AppName + "/" + GitCommit
}
