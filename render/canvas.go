// Package render draws ui buttons with Ebitengine.
package render

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/OpticalFlyer/shapeui/geom"
	"github.com/OpticalFlyer/shapeui/ui"
)

var _ ui.Canvas = (*Canvas)(nil)

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily created 1x1 white image used as the
// texture of untextured fills.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.White)
	}
	return whitePixelImage
}

// Canvas implements ui.Canvas on top of an ebiten image.
// Calls made outside Begin/End are ignored.
type Canvas struct {
	dst       *ebiten.Image
	stack     []ebiten.GeoM
	color     color.Color
	face      text.Face
	AntiAlias bool
}

// NewCanvas creates a canvas that draws labels with the 7x13 basic font
func NewCanvas() *Canvas {
	return &Canvas{
		stack:     []ebiten.GeoM{{}},
		color:     color.White,
		face:      text.NewGoXFace(basicfont.Face7x13),
		AntiAlias: true,
	}
}

// Begin starts a frame on dst and resets the transform stack
func (c *Canvas) Begin(dst *ebiten.Image) {
	c.dst = dst
	c.stack = c.stack[:1]
	c.stack[0].Reset()
	c.color = color.White
}

// End finishes the frame. It logs unbalanced Push/Pop pairs.
func (c *Canvas) End() {
	if len(c.stack) != 1 {
		log.Printf("render: %d transform scopes left open", len(c.stack)-1)
	}
	c.dst = nil
}

// top returns the current transform
func (c *Canvas) top() *ebiten.GeoM {
	return &c.stack[len(c.stack)-1]
}

// GeoM returns a copy of the current transform
func (c *Canvas) GeoM() ebiten.GeoM {
	return *c.top()
}

func (c *Canvas) Push() {
	c.stack = append(c.stack, *c.top())
}

func (c *Canvas) Pop() {
	if len(c.stack) == 1 {
		log.Printf("render: Pop without Push")
		return
	}
	c.stack = c.stack[:len(c.stack)-1]
}

// prepend applies op before the current transform, so later draw calls see
// op in their local frame.
func (c *Canvas) prepend(op ebiten.GeoM) {
	op.Concat(*c.top())
	*c.top() = op
}

func (c *Canvas) Translate(x, y float64) {
	var op ebiten.GeoM
	op.Translate(x, y)
	c.prepend(op)
}

// Rotate turns the local frame clockwise by deg degrees
func (c *Canvas) Rotate(deg float64) {
	var op ebiten.GeoM
	op.Rotate(geom.Radians(deg))
	c.prepend(op)
}

func (c *Canvas) SetColor(clr color.Color) {
	c.color = clr
}

func (c *Canvas) FillRect(x, y, w, h float64) {
	pts := rectPoints(x, y, w, h)
	c.fill(pts, fanIndices(len(pts)))
}

func (c *Canvas) FillEllipse(cx, cy, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	pts := ellipsePoints(cx, cy, w, h)
	c.fill(pts, fanIndices(len(pts)))
}

// FillPolygon fills a closed polygon. Concave outlines are triangulated with
// earcut; if that fails the outline is filled as a fan.
func (c *Canvas) FillPolygon(points []geom.Vec2) {
	if len(points) < 3 {
		return
	}
	inds, err := earcutIndices(points)
	if err != nil || len(inds) == 0 {
		if err != nil {
			log.Printf("render: %v, falling back to fan", err)
		}
		inds = fanIndices(len(points))
	}
	c.fill(points, inds)
}

func (c *Canvas) fill(points []geom.Vec2, inds []uint16) {
	if c.dst == nil || len(inds) == 0 {
		return
	}
	verts := buildVertices(points, *c.top(), c.color)
	op := &ebiten.DrawTrianglesOptions{AntiAlias: c.AntiAlias}
	c.dst.DrawTriangles(verts, inds, ensureWhitePixel(), op)
}

// DrawText draws s with its baseline at (x, y) in the local frame
func (c *Canvas) DrawText(s string, x, y float64) {
	if c.dst == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-c.face.Metrics().HAscent)
	op.GeoM.Concat(*c.top())
	op.ColorScale.ScaleWithColor(c.color)
	text.Draw(c.dst, s, c.face, op)
}
