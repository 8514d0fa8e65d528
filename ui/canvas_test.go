package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/OpticalFlyer/shapeui/geom"
)

// recordCanvas logs every call so tests can assert on draw order
type recordCanvas struct {
	calls []string
	depth int
}

func (c *recordCanvas) log(format string, args ...any) {
	c.calls = append(c.calls, fmt.Sprintf(format, args...))
}

func (c *recordCanvas) Push() {
	c.depth++
	c.log("push")
}

func (c *recordCanvas) Pop() {
	c.depth--
	c.log("pop")
}

func (c *recordCanvas) Translate(x, y float64) { c.log("translate %g %g", x, y) }
func (c *recordCanvas) Rotate(deg float64)     { c.log("rotate %g", deg) }

func (c *recordCanvas) SetColor(clr color.Color) {
	r, g, b, a := clr.RGBA()
	c.log("color %d %d %d %d", r>>8, g>>8, b>>8, a>>8)
}

func (c *recordCanvas) FillRect(x, y, w, h float64) { c.log("rect %g %g %g %g", x, y, w, h) }

func (c *recordCanvas) FillEllipse(cx, cy, w, h float64) {
	c.log("ellipse %g %g %g %g", cx, cy, w, h)
}

func (c *recordCanvas) FillPolygon(points []geom.Vec2) {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = fmt.Sprintf("%g,%g", p.X, p.Y)
	}
	c.log("polygon %s", strings.Join(parts, " "))
}

func (c *recordCanvas) DrawText(s string, x, y float64) { c.log("text %q %g %g", s, x, y) }
