// Package version carries the annotator's build identity.
package version

// Overridden at build time via -ldflags.
var (
	// Version is the release version of the annotator.
	Version = "0.1.0"

	// BuildTime is when this binary was built, in UTC.
	BuildTime = "unknown"

	// GitCommit is the source revision the binary was built from.
	GitCommit = "unknown"
)
