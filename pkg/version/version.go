// Package version provides the CLI version string.
// The value is injected at build time via ldflags:
//
//	go build -ldflags "-X github.com/akiselev/datasheet/pkg/version.Version=v1.2.3"
package version

// Version is the current CLI version. Overridden at build time; "dev" for
// local builds.
var Version = "dev" //nolint:gochecknoglobals // Set via ldflags at build time

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}
