package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	old := GitCommit
	GitCommit = "abc123"
	defer func() { GitCommit = old }()

	s := String()
	assert.Contains(t, s, "rcdetail v"+Version)
	assert.Contains(t, s, "abc123")
}
