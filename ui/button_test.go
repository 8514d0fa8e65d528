package ui

import (
	"math"
	"testing"

	"github.com/OpticalFlyer/shapeui/geom"
)

func TestRectangleContains(t *testing.T) {
	b := &Button{
		Position: geom.Vec2{X: 100, Y: 100},
		Size:     geom.Vec2{X: 50, Y: 50},
		Shape:    Rectangle,
	}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 125, 125, true},
		{"inside", 101, 149, true},
		{"top-left corner", 100, 100, true},
		{"bottom-right corner", 150, 150, true},
		{"right edge", 150, 120, true},
		{"outside left", 99.9, 125, false},
		{"outside bottom", 125, 150.1, false},
		{"far away", 90, 90, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(geom.Vec2{X: tt.x, Y: tt.y}); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectangleContainsGrid(t *testing.T) {
	b := &Button{
		Position: geom.Vec2{X: 10, Y: 20},
		Size:     geom.Vec2{X: 30, Y: 15},
		Shape:    Rectangle,
	}
	for x := 0.0; x <= 50; x += 0.5 {
		for y := 10.0; y <= 45; y += 0.5 {
			want := x >= 10 && x <= 40 && y >= 20 && y <= 35
			if got := b.Contains(geom.Vec2{X: x, Y: y}); got != want {
				t.Fatalf("Contains(%v, %v) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestRotatedRectangle(t *testing.T) {
	// 80x40 rectangle turned 45 degrees about (290, 120)
	b := &Button{
		Position: geom.Vec2{X: 250, Y: 100},
		Size:     geom.Vec2{X: 80, Y: 40},
		Rotation: 45,
		Shape:    Rectangle,
	}

	if !b.Contains(geom.Vec2{X: 290, Y: 120}) {
		t.Error("center should hit")
	}
	// Unrotated corner region is now outside.
	if b.Contains(geom.Vec2{X: 251, Y: 139}) {
		t.Error("unrotated bottom-left corner should miss")
	}
	// 35 units along the rotated long axis stays inside.
	d := 35 / math.Sqrt2
	if !b.Contains(geom.Vec2{X: 290 + d, Y: 120 + d}) {
		t.Error("point on rotated long axis should hit")
	}
	// 35 units along the rotated short axis is past the half height.
	if b.Contains(geom.Vec2{X: 290 - d, Y: 120 + d}) {
		t.Error("point on rotated short axis should miss")
	}
}

func TestRotationInvariance(t *testing.T) {
	shapes := []*Button{
		{Position: geom.Vec2{X: 0, Y: 0}, Size: geom.Vec2{X: 60, Y: 20}, Shape: Rectangle},
		{Position: geom.Vec2{X: 5, Y: 5}, Size: geom.Vec2{X: 40, Y: 70}, Shape: Ellipse},
		{
			Position: geom.Vec2{X: 0, Y: 0},
			Shape:    Polygon,
			Points:   []geom.Vec2{{X: 0, Y: 0}, {X: 50, Y: 50}, {X: 50, Y: 0}},
			Size:     geom.Vec2{X: 50, Y: 50},
		},
	}

	for _, base := range shapes {
		for _, rot := range []float64{15, 45, 90, 133, 270, -60} {
			rotated := *base
			rotated.Rotation = rot
			center := base.Center()

			for x := -20.0; x <= 80; x += 3.7 {
				for y := -20.0; y <= 80; y += 3.7 {
					p := geom.Vec2{X: x, Y: y}
					// p relative to the center, turned back into the unrotated frame.
					unrotated := geom.Rotate(p.Sub(center), -rot).Add(center)
					if rotated.Contains(p) != base.Contains(unrotated) {
						t.Fatalf("%s rot %v: mismatch at %v", base.Shape, rot, p)
					}
				}
			}
		}
	}
}

func TestEllipseContains(t *testing.T) {
	b := &Button{
		Position: geom.Vec2{X: 200, Y: 200},
		Size:     geom.Vec2{X: 100, Y: 50},
		Shape:    Ellipse,
	}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 250, 225, true},
		{"right vertex", 300, 225, true},
		{"bottom vertex", 250, 250, true},
		{"inside", 280, 230, true},
		{"bounding box corner", 201, 201, false},
		{"past right vertex", 300.5, 225, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(geom.Vec2{X: tt.x, Y: tt.y}); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestZeroRadiusEllipseNeverHits(t *testing.T) {
	sizes := []geom.Vec2{{X: 0, Y: 0}, {X: 0, Y: 40}, {X: 40, Y: 0}}
	for _, size := range sizes {
		b := &Button{Position: geom.Vec2{X: 10, Y: 10}, Size: size, Shape: Ellipse}
		for x := 0.0; x <= 60; x += 1 {
			for y := 0.0; y <= 60; y += 1 {
				if b.Contains(geom.Vec2{X: x, Y: y}) {
					t.Fatalf("size %v: hit at (%v, %v)", size, x, y)
				}
			}
		}
	}
}

func TestPolygonContains(t *testing.T) {
	// Host triangle: anchor (100, 300), points {0,0},{50,50},{50,0}
	b := &Button{
		Position: geom.Vec2{X: 100, Y: 300},
		Size:     geom.Vec2{X: 50, Y: 50},
		Shape:    Polygon,
		Points:   []geom.Vec2{{X: 0, Y: 0}, {X: 50, Y: 50}, {X: 50, Y: 0}},
	}

	if !b.Contains(geom.Vec2{X: 140, Y: 310}) {
		t.Error("point in upper-right half should hit")
	}
	if b.Contains(geom.Vec2{X: 110, Y: 340}) {
		t.Error("point in lower-left half should miss")
	}
	if b.Contains(geom.Vec2{X: 90, Y: 310}) {
		t.Error("point left of the box should miss")
	}
}

func TestShortPolygonNeverHits(t *testing.T) {
	for _, pts := range [][]geom.Vec2{nil, {{X: 0, Y: 0}}, {{X: 0, Y: 0}, {X: 10, Y: 10}}} {
		b := &Button{
			Position: geom.Vec2{X: 0, Y: 0},
			Size:     geom.Extent(pts),
			Shape:    Polygon,
			Points:   pts,
		}
		for x := -5.0; x <= 15; x += 0.5 {
			for y := -5.0; y <= 15; y += 0.5 {
				if b.Contains(geom.Vec2{X: x, Y: y}) {
					t.Fatalf("points %v: hit at (%v, %v)", pts, x, y)
				}
			}
		}
	}
}

func TestUnknownShapeNeverHits(t *testing.T) {
	b := &Button{Size: geom.Vec2{X: 10, Y: 10}, Shape: Shape(9)}
	if b.Contains(geom.Vec2{X: 5, Y: 5}) {
		t.Error("unknown shape should never hit")
	}
}

func TestLocalPointsDoesNotModifyPoints(t *testing.T) {
	b := &Button{
		Size:   geom.Vec2{X: 50, Y: 50},
		Shape:  Polygon,
		Points: []geom.Vec2{{X: 0, Y: 0}, {X: 50, Y: 50}, {X: 50, Y: 0}},
	}
	local := b.LocalPoints()

	want := []geom.Vec2{{X: -25, Y: -25}, {X: 25, Y: 25}, {X: 25, Y: -25}}
	for i := range want {
		if local[i] != want[i] {
			t.Errorf("local[%d] = %v, want %v", i, local[i], want[i])
		}
	}
	if b.Points[1] != (geom.Vec2{X: 50, Y: 50}) {
		t.Errorf("stored points changed: %v", b.Points)
	}
}

func TestNormalizedRotation(t *testing.T) {
	b := &Button{Rotation: -45}
	if got := b.NormalizedRotation(); got != 315 {
		t.Errorf("NormalizedRotation() = %v, want 315", got)
	}
}

func TestPressTypes(t *testing.T) {
	calls := 0
	action := ActionFunc(func() { calls++ })

	push := &Button{Type: Push, Action: action}
	push.press()
	if calls != 1 || push.State != Off {
		t.Errorf("push: calls = %d, state = %s", calls, push.State)
	}

	toggle := &Button{Type: Toggle, Action: action}
	toggle.press()
	if calls != 2 || toggle.State != On {
		t.Errorf("toggle: calls = %d, state = %s", calls, toggle.State)
	}

	other := &Button{Type: Type(7), Action: action}
	other.press()
	if calls != 2 || other.State != Off {
		t.Errorf("unknown type: calls = %d, state = %s", calls, other.State)
	}

	// No action set is a no-op.
	(&Button{Type: Push}).press()
	(&Button{Type: Toggle}).press()
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{Rectangle.String(), "rectangle"},
		{Ellipse.String(), "ellipse"},
		{Polygon.String(), "polygon"},
		{Shape(42).String(), "unknown"},
		{Push.String(), "push"},
		{Toggle.String(), "toggle"},
		{Type(9).String(), "unknown"},
		{On.String(), "on"},
		{Off.String(), "off"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}
