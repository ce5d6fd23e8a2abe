package config

// Build metadata, populated by the binary from its -ldflags values
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// SetBuildFlags overrides the build metadata
func SetBuildFlags(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date
}
