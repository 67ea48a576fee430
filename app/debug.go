package app

import (
	"fmt"

	"github.com/bvisness/portwire/app/core"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DebugState collects what the debug panel shows about the last frame.
type DebugState struct {
	Down            bool
	LastClick       core.V2
	HasLastClick    bool
	LastClickOnPort bool

	Mode        core.Mode
	Nodes       []core.NodeView
	Connections int
}

func (d *DebugState) Observe(p core.Pointer, out core.FrameOutput) {
	d.Down = p.Down
	if p.Clicked && p.HasPos {
		d.LastClick = p.Pos
		d.HasLastClick = true
		d.LastClickOnPort = out.ClickedPort != nil
	}
	d.Mode = out.Mode
	d.Nodes = out.Nodes
	d.Connections = len(out.Connections)
}

func (d *DebugState) Lines() []string {
	title := cases.Title(language.English)

	lines := []string{fmt.Sprintf("Mouse1 pressed: %v", d.Down)}
	if d.HasLastClick {
		lines = append(lines, fmt.Sprintf("Last Mouse1 click: (%.1f, %.1f)", d.LastClick.X, d.LastClick.Y))
	}
	lines = append(lines,
		fmt.Sprintf("Last click on port: %v", d.LastClickOnPort),
		fmt.Sprintf("Mode: %s", d.Mode),
	)
	for _, n := range d.Nodes {
		lines = append(lines, fmt.Sprintf("%s position: (%.1f, %.1f)", title.String(n.Name), n.Pos.X, n.Pos.Y))
	}
	lines = append(lines, fmt.Sprintf("Connections: %d", d.Connections))
	return lines
}

// DrawDebugPanel draws the lines top to bottom from the top-left corner, in
// screen space.
func DrawDebugPanel(cv Canvas, lines []string) {
	for i, line := range lines {
		cv.Text(line, core.V2{X: S2, Y: S2 + float32(i)*(F2+S1)}, F2, White)
	}
}
