package buildinfo

var (
	// Version is stamped via ldflags by the release build.
	Version = "dev"
	// Commit is stamped via ldflags by the release build.
	Commit = "none"
	// Date is stamped via ldflags by the release build.
	Date = "unknown"
)
