package ui

import "image/color"

// Palette holds the fill colors used by Manager.Draw
type Palette struct {
	Hover     color.Color
	Rectangle color.Color
	Ellipse   color.Color
	Fallback  color.Color // polygons and unknown shapes
	Label     color.Color
}

// DefaultPalette returns yellow hover, red rectangles, green ellipses,
// blue for everything else and black labels.
func DefaultPalette() Palette {
	return Palette{
		Hover:     color.RGBA{255, 255, 0, 255},
		Rectangle: color.RGBA{255, 0, 0, 255},
		Ellipse:   color.RGBA{0, 255, 0, 255},
		Fallback:  color.RGBA{0, 0, 255, 255},
		Label:     color.Black,
	}
}

// fill picks the color for a button
func (p Palette) fill(b *Button) color.Color {
	if b.Hovered {
		return p.Hover
	}
	switch b.Shape {
	case Rectangle:
		return p.Rectangle
	case Ellipse:
		return p.Ellipse
	}
	return p.Fallback
}
