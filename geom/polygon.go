package geom

// PointInPolygon reports whether p lies inside poly using the even-odd
// ray casting rule. poly must be in the same frame as p.
//
// Polygons with fewer than 3 vertices never contain anything. Points exactly
// on an edge may land on either side; self-intersecting polygons follow the
// even-odd rule as is.
func PointInPolygon(p Vec2, poly []Vec2) bool {
	n := len(poly)
	if n < 3 {
		return false
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}
