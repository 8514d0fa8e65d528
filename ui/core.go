package ui

import (
	"image/color"

	"github.com/OpticalFlyer/shapeui/geom"
)

// Canvas is the drawing surface buttons are rendered onto.
// Transform calls affect everything drawn until the matching Pop.
type Canvas interface {
	Push()
	Pop()
	Translate(x, y float64)
	Rotate(deg float64)
	SetColor(c color.Color)
	FillRect(x, y, w, h float64)
	FillEllipse(cx, cy, w, h float64)
	FillPolygon(points []geom.Vec2)
	DrawText(s string, x, y float64)
}

// Shape selects the hit region and the draw call for a button
type Shape uint8

const (
	Rectangle Shape = iota
	Ellipse
	Polygon
)

func (s Shape) String() string {
	switch s {
	case Rectangle:
		return "rectangle"
	case Ellipse:
		return "ellipse"
	case Polygon:
		return "polygon"
	}
	return "unknown"
}

// Type is the interaction mode of a button
type Type uint8

const (
	// Push fires the action on every press.
	Push Type = iota
	// Toggle flips State and then fires the action.
	Toggle
)

func (t Type) String() string {
	switch t {
	case Push:
		return "push"
	case Toggle:
		return "toggle"
	}
	return "unknown"
}

// State is the two-valued state of a toggle button
type State uint8

const (
	Off State = iota
	On
)

func (s State) String() string {
	if s == On {
		return "on"
	}
	return "off"
}

// Flip returns the opposite state
func (s State) Flip() State {
	if s == On {
		return Off
	}
	return On
}

// Action is a command bound to a button
type Action interface {
	Invoke()
}

// ActionFunc adapts a plain function to Action
type ActionFunc func()

func (f ActionFunc) Invoke() {
	f()
}
