package app

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/bvisness/portwire/app/core"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// SVGCanvas records a frame as an SVG document.
type SVGCanvas struct {
	Width, Height int
	Background    rl.Color

	body bytes.Buffer
}

var _ Canvas = &SVGCanvas{}

func NewSVGCanvas(width, height int) *SVGCanvas {
	return &SVGCanvas{Width: width, Height: height, Background: Night}
}

func svgColor(c rl.Color) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func (c *SVGCanvas) Rect(r rl.Rectangle, color rl.Color) {
	fmt.Fprintf(&c.body, `<rect x="%g" y="%g" width="%g" height="%g" fill="%s"/>`+"\n",
		r.X, r.Y, r.Width, r.Height, svgColor(color))
}

func (c *SVGCanvas) Circle(center core.V2, radius float32, color rl.Color) {
	fmt.Fprintf(&c.body, `<circle cx="%g" cy="%g" r="%g" fill="%s"/>`+"\n",
		center.X, center.Y, radius, svgColor(color))
}

func (c *SVGCanvas) Line(start, end core.V2, thickness float32, color rl.Color) {
	fmt.Fprintf(&c.body, `<line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="%g"/>`+"\n",
		start.X, start.Y, end.X, end.Y, svgColor(color), thickness)
}

func (c *SVGCanvas) Text(text string, pos core.V2, fontSize float32, color rl.Color) {
	// SVG text is anchored at the baseline; raylib text at the top.
	fmt.Fprintf(&c.body, `<text x="%g" y="%g" font-size="%g" fill="%s">`,
		pos.X, pos.Y+fontSize, fontSize, svgColor(color))
	xml.EscapeText(&c.body, []byte(text))
	c.body.WriteString("</text>\n")
}

func (c *SVGCanvas) WriteTo(w io.Writer) (int64, error) {
	var doc bytes.Buffer
	fmt.Fprintf(&doc, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		c.Width, c.Height, c.Width, c.Height)
	fmt.Fprintf(&doc, `<rect x="0" y="0" width="%d" height="%d" fill="%s"/>`+"\n",
		c.Width, c.Height, svgColor(c.Background))
	doc.Write(c.body.Bytes())
	doc.WriteString("</svg>\n")
	return doc.WriteTo(w)
}
