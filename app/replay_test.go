package app

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/antchfx/xmlquery"
	"github.com/bvisness/portwire/app/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const twoConnections = `
frames:
  - {at: box1.center, clicked: true}
  - {pointer: [300, 200], down: true}
  - {at: box2, released: true}
  - {at: box1, clicked: true}
  - {at: box2.cent, released: true}
  - {pointer: [700, 500]}
`

func mustParseScript(t *testing.T, src string) *ReplayScript {
	t.Helper()
	script, err := ParseReplayScript([]byte(src))
	require.NoError(t, err)
	return script
}

func TestReplay_TwoConnections(t *testing.T) {
	var commits int
	hooks := core.Hooks{
		OnConnectionCommit: func(*core.GestureEvent) { commits++ },
	}

	report, out, err := Replay(DefaultSettings(), mustParseScript(t, twoConnections), hooks)
	require.NoError(t, err)

	assert.Equal(t, 6, report.Frames)
	assert.Equal(t, "Idle", report.Mode)
	assert.Equal(t, 2, report.Commits)
	assert.Equal(t, 2, commits)
	assert.Empty(t, report.Aborts)
	assert.Equal(t, []ReplayConnection{
		{From: "box1.center", To: "box2.center"},
		{From: "box1.center", To: "box2.center"},
	}, report.Connections)
	assert.Equal(t, out.Connections[0], out.Connections[1])

	data, err := json.Marshal(report)
	require.NoError(t, err)
	assert.Equal(t, int64(2), gjson.GetBytes(data, "connections.#").Int())
	assert.Equal(t, "box2.center", gjson.GetBytes(data, "connections.1.to").String())
	assert.Equal(t, 400.0, gjson.GetBytes(data, `nodes.#(name=="box2").x`).Float())
}

func TestReplay_DragAndAbort(t *testing.T) {
	script := mustParseScript(t, `
frames:
  - {pointer: [110, 110], clicked: true}
  - {pointer: [170, 180], down: true, repeat: 3}
  - {released: true}
  - {at: box2, clicked: true}
  - {pointer: [700, 500], released: true}
  - {at: box2, clicked: true}
  - {offscreen: true, released: true}
`)
	report, _, err := Replay(DefaultSettings(), script, core.Hooks{})
	require.NoError(t, err)

	assert.Equal(t, 9, report.Frames)
	assert.Equal(t, 1, report.Drags)
	assert.Equal(t, ReplayNode{Name: "box1", X: 160, Y: 170}, report.Nodes[0])
	assert.Equal(t, ReplayNode{Name: "box2", X: 400, Y: 100}, report.Nodes[1])
	assert.Equal(t, map[string]int{"no_port": 1, "no_pointer": 1}, report.Aborts)
	assert.Empty(t, report.Connections)
}

func TestReplay_UnknownPort(t *testing.T) {
	script := mustParseScript(t, `
frames:
  - {pointer: [0, 0]}
  - {at: widget, clicked: true}
`)
	_, _, err := Replay(DefaultSettings(), script, core.Hooks{})
	assert.ErrorContains(t, err, "frame 1")
	assert.ErrorContains(t, err, `node "widget"`)
}

func TestParseReplayScript_Errors(t *testing.T) {
	for name, src := range map[string]string{
		"no frames":        "frames: []",
		"short pointer":    "frames: [{pointer: [1, 2, 3]}]",
		"pointer and at":   "frames: [{pointer: [1, 2], at: box1}]",
		"click on release": "frames: [{clicked: true, released: true}]",
		"not yaml":         "frames: [",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseReplayScript([]byte(src))
			assert.Error(t, err)
		})
	}
}

func TestResolvePortRef(t *testing.T) {
	s := DefaultSettings()
	s.Nodes[1].Ports = append(s.Nodes[1].Ports, PortSettings{Name: "left", Anchor: "left-center", Radius: 5})
	e, err := NewEditor(s, NewMockInput(), core.Hooks{})
	require.NoError(t, err)
	nodes := e.Last().Nodes

	n, p, err := ResolvePortRef("box2.left", nodes)
	require.NoError(t, err)
	assert.Equal(t, "box2", n.Name)
	assert.Equal(t, core.V2{X: 400, Y: 150}, p.Center)

	n, p, err = ResolvePortRef("BX2", nodes)
	require.NoError(t, err)
	assert.Equal(t, "box2", n.Name)
	assert.Equal(t, "center", p.Name)

	_, _, err = ResolvePortRef("box", nodes)
	assert.ErrorContains(t, err, "ambiguous")

	_, _, err = ResolvePortRef("box1.right", nodes)
	assert.ErrorContains(t, err, "no match")
}

func TestWriteSVG(t *testing.T) {
	s := DefaultSettings()
	_, out, err := Replay(s, mustParseScript(t, twoConnections), core.Hooks{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, out, s))

	doc, err := xmlquery.Parse(&buf)
	require.NoError(t, err)

	svg := xmlquery.FindOne(doc, "//*[local-name()='svg']")
	require.NotNil(t, svg)
	assert.Equal(t, "800", svg.SelectAttr("width"))

	assert.Len(t, xmlquery.Find(doc, "//*[local-name()='rect']"), 3)
	assert.Len(t, xmlquery.Find(doc, "//*[local-name()='circle']"), 2)

	lines := xmlquery.Find(doc, "//*[local-name()='line']")
	require.Len(t, lines, 2)
	assert.Equal(t, "150", lines[0].SelectAttr("x1"))
	assert.Equal(t, "450", lines[0].SelectAttr("x2"))
	assert.Equal(t, "rgb(250,250,252)", lines[0].SelectAttr("stroke"))

	var labels []string
	for _, n := range xmlquery.Find(doc, "//*[local-name()='text']") {
		labels = append(labels, n.InnerText())
	}
	assert.Equal(t, []string{"Box1", "Box2"}, labels)
}
