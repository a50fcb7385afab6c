package version

import "fmt"

var (
	// Version is the semantic version of the binary, set at build time with
	// -ldflags "-X github.com/kest-labs/kest-admin/internal/version.Version=...".
	Version = "0.1.0"

	// GitCommit is the commit the binary was built from.
	GitCommit = ""
)

// String returns the full version string.
func String() string {
	if GitCommit == "" {
		return fmt.Sprintf("kest-admin v%s", Version)
	}
	return fmt.Sprintf("kest-admin v%s (%s)", Version, GitCommit)
}
