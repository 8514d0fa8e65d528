package ui

import (
	"github.com/OpticalFlyer/shapeui/geom"
)

// Button is a single interactive widget. Position is the top-left corner of
// its bounding box, Size the extent, and Rotation (degrees, clockwise) is
// applied about the center.
//
// Points holds polygon vertices relative to Position. They are centered
// (shifted by -Size/2) only when drawing or hit testing.
type Button struct {
	Position geom.Vec2
	Size     geom.Vec2
	Rotation float64
	Shape    Shape
	Points   []geom.Vec2
	Type     Type
	State    State
	Hovered  bool
	Label    string
	Action   Action
	Name     string
}

// Center returns the center of the bounding box in world space
func (b *Button) Center() geom.Vec2 {
	return b.Position.Add(b.Size.Scale(0.5))
}

// NormalizedRotation returns Rotation wrapped into [0, 360)
func (b *Button) NormalizedRotation() float64 {
	return geom.NormalizeDegrees(b.Rotation)
}

// LocalPoints returns the polygon vertices in the center-origin frame
func (b *Button) LocalPoints() []geom.Vec2 {
	return geom.Offset(b.Points, b.Size.Scale(-0.5))
}

// ToLocal maps a world point into the button's unrotated, center-origin frame
func (b *Button) ToLocal(p geom.Vec2) geom.Vec2 {
	return geom.WorldToLocalCentered(p, b.Position, b.Size, b.Rotation)
}

// Contains reports whether the world point p hits the button.
// Degenerate shapes (zero-radius ellipses, polygons with fewer than three
// points, unknown shapes) never hit.
func (b *Button) Contains(p geom.Vec2) bool {
	local := b.ToLocal(p)

	switch b.Shape {
	case Rectangle:
		hw := b.Size.X * 0.5
		hh := b.Size.Y * 0.5
		return local.X >= -hw && local.X <= hw &&
			local.Y >= -hh && local.Y <= hh
	case Ellipse:
		rx := b.Size.X * 0.5
		ry := b.Size.Y * 0.5
		if rx <= 0 || ry <= 0 {
			return false
		}
		return (local.X*local.X)/(rx*rx)+(local.Y*local.Y)/(ry*ry) <= 1
	case Polygon:
		return geom.PointInPolygon(local, b.LocalPoints())
	}
	return false
}

// press applies a hit press to the button
func (b *Button) press() {
	switch b.Type {
	case Push:
		b.invoke()
	case Toggle:
		b.State = b.State.Flip()
		b.invoke()
	}
}

func (b *Button) invoke() {
	if b.Action != nil {
		b.Action.Invoke()
	}
}
