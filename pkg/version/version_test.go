package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	assert.Equal(t, "chordsat version: unknown\n      Git commit: unknown\n", String())

	Version, GitCommit = "v0.3.0", "abc123"
	defer func() { Version, GitCommit = "", "" }()
	assert.Equal(t, "chordsat version: v0.3.0\n      Git commit: abc123\n", String())
}
