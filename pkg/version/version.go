package version

import (
	"strings"

	"github.com/compozy/semver/pkg/semver"
)

// Set with -ldflags "-X github.com/compozy/semver/pkg/version.Version=..." at release time.
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// Summary returns a human-friendly version string for CLI output.
// Release builds render as a v-prefixed canonical version; anything
// unparsable (such as "dev") is returned unchanged.
func Summary() string {
	raw := strings.TrimSpace(Version)
	v, err := semver.Parse(raw)
	if err != nil {
		if raw == "" {
			return "dev"
		}
		return raw
	}
	return v.Prefixed()
}
