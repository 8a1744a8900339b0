package version

import "fmt"

// Version is the release chordsat was built from, set with -ldflags.
var Version string

// GitCommit indicates which git commit the binary was built from
var GitCommit string

// String returns a pretty string concatenation of Version and GitCommit
func String() string {
	return fmt.Sprintf("chordsat version: %s\n      Git commit: %s\n", orUnknown(Version), orUnknown(GitCommit))
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
