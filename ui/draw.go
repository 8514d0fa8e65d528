package ui

// Label offset from the local top-left corner, in pixels
const (
	labelInsetX = 4.0
	labelInsetY = 14.0
)

func drawButton(c Canvas, b *Button, p Palette) {
	c.Push()
	defer c.Pop()

	center := b.Center()
	c.Translate(center.X, center.Y)
	c.Rotate(b.Rotation)

	c.SetColor(p.fill(b))

	hw := b.Size.X / 2
	hh := b.Size.Y / 2
	switch b.Shape {
	case Rectangle:
		c.FillRect(-hw, -hh, b.Size.X, b.Size.Y)
	case Ellipse:
		c.FillEllipse(0, 0, b.Size.X, b.Size.Y)
	case Polygon:
		c.FillPolygon(b.LocalPoints())
	}

	c.SetColor(p.Label)
	c.DrawText(b.Label, -hw+labelInsetX, -hh+labelInsetY)
}
