package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOriginAllowed(t *testing.T) {
	patterns := []string{"revpilot.io", "*.revpilot.io", "localhost:*"}

	assert.True(t, originAllowed(patterns, "https://revpilot.io"))
	assert.True(t, originAllowed(patterns, "https://app.revpilot.io"))
	assert.True(t, originAllowed(patterns, "http://localhost:5173"))
	assert.False(t, originAllowed(patterns, "https://evil.example.com"))
	assert.False(t, originAllowed(patterns, "https://revpilot.io.example.com"))
}

func TestOriginAllowedWildcard(t *testing.T) {
	assert.True(t, originAllowed([]string{"*"}, "https://anything.example"))
	assert.False(t, originAllowed(nil, "https://anything.example"))
}
