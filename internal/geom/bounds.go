package geom

// Bounds is an axis-aligned rectangle.
type Bounds struct {
	Min, Max Point
}

// BoundsOf returns the smallest box holding every point. The zero Bounds is
// returned for an empty slice.
func BoundsOf(pts []Point) Bounds {
	if len(pts) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		if p.X < b.Min.X {
			b.Min.X = p.X
		}
		if p.X > b.Max.X {
			b.Max.X = p.X
		}
		if p.Y < b.Min.Y {
			b.Min.Y = p.Y
		}
		if p.Y > b.Max.Y {
			b.Max.Y = p.Y
		}
	}
	return b
}

// Inflate grows the box by d on every side.
func (b Bounds) Inflate(d float64) Bounds {
	return Bounds{
		Min: Point{X: b.Min.X - d, Y: b.Min.Y - d},
		Max: Point{X: b.Max.X + d, Y: b.Max.Y + d},
	}
}

// Contains reports whether p lies inside the box or on its border.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Width returns the horizontal extent of the box.
func (b Bounds) Width() float64 { return b.Max.X - b.Min.X }

// Height returns the vertical extent of the box.
func (b Bounds) Height() float64 { return b.Max.Y - b.Min.Y }
