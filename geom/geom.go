package geom

import "math"

// Constants for angle conversion
const (
	degToRad = math.Pi / 180.0
	radToDeg = 180.0 / math.Pi
)

// Vec2 is a 2D point or extent in world units
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied by s on both axes
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Bounds returns the axis-aligned bounding box of points.
// Both corners are zero when points is empty.
func Bounds(points []Vec2) (lo, hi Vec2) {
	if len(points) == 0 {
		return Vec2{}, Vec2{}
	}
	lo, hi = points[0], points[0]
	for _, p := range points[1:] {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	return lo, hi
}

// Extent returns the width and height of the bounding box of points.
func Extent(points []Vec2) Vec2 {
	lo, hi := Bounds(points)
	return hi.Sub(lo)
}

// Offset returns a new slice holding each point shifted by d.
func Offset(points []Vec2, d Vec2) []Vec2 {
	out := make([]Vec2, len(points))
	for i, p := range points {
		out[i] = p.Add(d)
	}
	return out
}

// Rotate rotates p about the origin by deg degrees.
// Positive angles turn clockwise on a y-down screen.
func Rotate(p Vec2, deg float64) Vec2 {
	s, c := math.Sincos(deg * degToRad)
	return Vec2{
		X: p.X*c - p.Y*s,
		Y: p.X*s + p.Y*c,
	}
}

// WorldToLocalCentered converts a world point into the unrotated frame of a
// shape whose bounding box starts at position, spans size and is rotated by
// rotation degrees about its center. The origin of the result is the center.
//
// It is the exact inverse of LocalToWorldCentered, which is the transform
// used when drawing (translate to center, then rotate).
func WorldToLocalCentered(p, position, size Vec2, rotation float64) Vec2 {
	center := position.Add(size.Scale(0.5))
	return Rotate(p.Sub(center), -rotation)
}

// LocalToWorldCentered maps a center-origin local point back to world space.
func LocalToWorldCentered(local, position, size Vec2, rotation float64) Vec2 {
	center := position.Add(size.Scale(0.5))
	return Rotate(local, rotation).Add(center)
}

// NormalizeDegrees wraps deg into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Radians converts degrees to radians
func Radians(deg float64) float64 {
	return deg * degToRad
}

// Degrees converts radians to degrees
func Degrees(rad float64) float64 {
	return rad * radToDeg
}
