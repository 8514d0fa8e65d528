package render

import (
	"image/color"
	"math"

	"github.com/flywave/go-earcut"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"github.com/OpticalFlyer/shapeui/geom"
)

// Ellipse tessellation limits
const (
	minEllipseSegments = 16
	maxEllipseSegments = 256
)

// rectPoints returns the four corners of an axis-aligned rectangle
func rectPoints(x, y, w, h float64) []geom.Vec2 {
	return []geom.Vec2{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	}
}

// ellipseSegments picks a segment count so edges stay about 2px long
func ellipseSegments(rx, ry float64) int {
	n := int(math.Ceil(math.Pi * (rx + ry) / 2))
	return min(max(n, minEllipseSegments), maxEllipseSegments)
}

// ellipsePoints approximates an ellipse centered at (cx, cy) with full
// width w and height h.
func ellipsePoints(cx, cy, w, h float64) []geom.Vec2 {
	rx, ry := w/2, h/2
	n := ellipseSegments(rx, ry)
	pts := make([]geom.Vec2, n)
	for i := range pts {
		s, c := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		pts[i] = geom.Vec2{X: cx + rx*c, Y: cy + ry*s}
	}
	return pts
}

// fanIndices triangulates a convex polygon around vertex 0.
// N vertices, 3*(N-2) indices.
func fanIndices(n int) []uint16 {
	if n < 3 {
		return nil
	}
	inds := make([]uint16, 0, (n-2)*3)
	for i := 1; i < n-1; i++ {
		inds = append(inds, 0, uint16(i), uint16(i+1))
	}
	return inds
}

// earcutIndices triangulates an arbitrary simple polygon
func earcutIndices(points []geom.Vec2) ([]uint16, error) {
	if len(points) < 3 {
		return nil, nil
	}
	if len(points) > math.MaxUint16 {
		return nil, errors.Errorf("polygon has %d vertices, limit is %d", len(points), math.MaxUint16)
	}

	flat := make([]float64, 0, len(points)*2)
	for _, p := range points {
		flat = append(flat, p.X, p.Y)
	}

	tris, err := earcut.Earcut(flat, nil, 2)
	if err != nil {
		return nil, errors.Wrapf(err, "earcut %d vertices", len(points))
	}

	inds := make([]uint16, len(tris))
	for i, t := range tris {
		inds[i] = uint16(t)
	}
	return inds, nil
}

// buildVertices transforms points through g and paints them with clr.
// Sources map to the center of the 1x1 white pixel.
func buildVertices(points []geom.Vec2, g ebiten.GeoM, clr color.Color) []ebiten.Vertex {
	nc := color.NRGBAModel.Convert(clr).(color.NRGBA)
	r := float32(nc.R) / 0xff
	gr := float32(nc.G) / 0xff
	b := float32(nc.B) / 0xff
	a := float32(nc.A) / 0xff

	verts := make([]ebiten.Vertex, len(points))
	for i, p := range points {
		x, y := g.Apply(p.X, p.Y)
		verts[i] = ebiten.Vertex{
			DstX:   float32(x),
			DstY:   float32(y),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: r,
			ColorG: gr,
			ColorB: b,
			ColorA: a,
		}
	}
	return verts
}
