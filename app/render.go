package app

import (
	"github.com/bvisness/portwire/app/core"
	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Canvas receives the primitives that make up a frame, in draw order.
type Canvas interface {
	Rect(r rl.Rectangle, color rl.Color)
	Circle(center core.V2, radius float32, color rl.Color)
	Line(start, end core.V2, thickness float32, color rl.Color)
	Text(text string, pos core.V2, fontSize float32, color rl.Color)
}

// DrawFrame draws nodes, then ports, then committed wires, then the preview
// segment if a connection is being drawn.
func DrawFrame(cv Canvas, out core.FrameOutput) {
	title := cases.Title(language.English)
	for i, n := range out.Nodes {
		cv.Rect(n.Rect(), NodeColors[i%len(NodeColors)])
		cv.Text(title.String(n.Name), core.V2{X: n.Pos.X + S1, Y: n.Pos.Y + S1}, F1, White)
	}
	for _, n := range out.Nodes {
		for _, p := range n.Ports {
			cv.Circle(p.Center, p.Radius, White)
		}
	}
	for _, w := range out.Wires {
		cv.Line(w.Start, w.End, WireThickness, White)
	}
	if out.Preview != nil {
		cv.Line(out.Preview.Start, out.Preview.End, WireThickness, Yellow)
	}
}

type raylibCanvas struct{}

var _ Canvas = raylibCanvas{}

func (raylibCanvas) Rect(r rl.Rectangle, color rl.Color) {
	rl.DrawRectangleRec(r, color)
}

func (raylibCanvas) Circle(center core.V2, radius float32, color rl.Color) {
	rl.DrawCircleV(center, radius, color)
}

func (raylibCanvas) Line(start, end core.V2, thickness float32, color rl.Color) {
	rl.DrawLineEx(start, end, thickness, color)
}

func (raylibCanvas) Text(text string, pos core.V2, fontSize float32, color rl.Color) {
	rl.DrawText(text, int32(pos.X), int32(pos.Y), int32(fontSize), color)
}
