package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/antchfx/xmlquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const script = `
frames:
  - {at: box1, clicked: true}
  - {at: box2, released: true}
  - {pointer: [700, 500], clicked: true}
  - {released: true}
`

func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestReplayCommand(t *testing.T) {
	dir := t.TempDir()
	scriptPath := filepath.Join(dir, "session.yaml")
	require.NoError(t, os.WriteFile(scriptPath, []byte(script), 0o644))
	svgPath := filepath.Join(dir, "final.svg")
	config := filepath.Join(dir, "missing.yaml")

	out := runCLI(t, "replay", scriptPath, "--config", config, "--log-level", "error", "--json", "--svg", svgPath)
	assert.Equal(t, int64(4), gjson.Get(out, "frames").Int())
	assert.Equal(t, "Idle", gjson.Get(out, "mode").String())
	assert.Equal(t, "box1.center", gjson.Get(out, "connections.0.from").String())
	assert.Equal(t, "box2.center", gjson.Get(out, "connections.0.to").String())
	assert.Equal(t, int64(1), gjson.Get(out, "commits").Int())

	f, err := os.Open(svgPath)
	require.NoError(t, err)
	defer f.Close()
	doc, err := xmlquery.Parse(f)
	require.NoError(t, err)
	assert.Len(t, xmlquery.Find(doc, "//*[local-name()='line']"), 1)

	out = runCLI(t, "replay", scriptPath, "--config", config, "--log-level", "error", "--json=false", "--svg", "")
	assert.Contains(t, out, "4 frames, ended in Idle")
	assert.Contains(t, out, "box1.center -> box2.center")
}

func TestReplayCommand_BadScript(t *testing.T) {
	rootCmd.SetArgs([]string{"replay", filepath.Join(t.TempDir(), "nope.yaml")})
	assert.ErrorContains(t, rootCmd.Execute(), "reading replay script")
}
