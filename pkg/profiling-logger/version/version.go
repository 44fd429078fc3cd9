// Package version holds build information injected with ldflags.
package version

import "fmt"

// AppName is the application name, also used as tracing service name.
const AppName = "profiling-logger"

// AppVersion build information.
type AppVersion struct {
	Version   string `yaml:"version"`
	GitCommit string `yaml:"gitCommit"`
	BuildDate string `yaml:"buildDate"`
}

var (
	// Version is the current version.
	Version = ""
	// Metadata is an extra suffix.
	Metadata = "unreleased"
	// GitCommit is a git sha1.
	GitCommit = ""
	// BuildDate is the build date.
	BuildDate = ""
)

func buildVersion() string {
	if Metadata == "" {
		return Version
	}

	return Version + "-" + Metadata
}

// GetVersion returns the build information.
func GetVersion() *AppVersion {
	return &AppVersion{
		Version:   buildVersion(),
		GitCommit: GitCommit,
		BuildDate: BuildDate,
	}
}

func (v *AppVersion) String() string {
	return fmt.Sprintf("%s version: %s (git commit: %s) built on %s", AppName, v.Version, v.GitCommit, v.BuildDate)
}
