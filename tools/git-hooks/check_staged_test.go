package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComponents(t *testing.T) {
	assert.Empty(t, components([]string{"", "DESIGN.md", "tools/git-hooks/check_staged.go"}))

	assert.Equal(t, []string{"core"}, components([]string{
		"app/core/controller.go",
		"app/core/controller_test.go",
	}))

	assert.Equal(t, []string{"app", "cli", "core", "telemetry"}, components([]string{
		"app/editor.go",
		"app/core/hooks.go",
		"app/telemetry/log.go",
		"root.go",
		"portwire.yaml",
	}))
}
