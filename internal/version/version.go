package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/dotrs/dotrs/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/dotrs/dotrs/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/dotrs/dotrs/internal/version.Date={{.Date}}
)
