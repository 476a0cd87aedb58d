package geom

import "math"

// SearchTolerance is the width of the parameter interval at which
// TernaryDistanceToSegment stops.
const SearchTolerance = 1e-4

// HitEpsilon is the default edge distance under which a click selects a shape.
const HitEpsilon = 4.7

// DistanceToSegment returns the distance from p to the closed segment
// [a, b]: p is projected onto the line through a and b, the projection is
// clamped to the segment and measured. A point on the segment yields 0.
func DistanceToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	n := ab.Dot(ab)
	if n == 0 {
		return Distance(p, a)
	}
	t := p.Sub(a).Dot(ab) / n
	t = math.Max(0, math.Min(1, t))
	return Distance(p, a.Add(ab.Mul(t)))
}

// TernaryDistanceToSegment approximates DistanceToSegment by a ternary
// search over the arc-length parameter of [a, b].
//
// The distance to a point moving along the segment is unimodal in that
// parameter, so the search converges without treating projections outside
// the segment specially. It stops once the interval is no wider than
// SearchTolerance and returns the smallest distance sampled, a included.
func TernaryDistanceToSegment(p, a, b Point) float64 {
	best := Distance(p, a)
	r := Distance(a, b)
	if r == 0 {
		return best
	}
	dir := b.Sub(a).Mul(1 / r)
	l := 0.0
	for math.Abs(r-l) > SearchTolerance {
		m1 := l + (r-l)/3
		m2 := r - (r-l)/3
		d1 := Distance(p, a.Add(dir.Mul(m1)))
		d2 := Distance(p, a.Add(dir.Mul(m2)))
		if d1 < d2 {
			best = math.Min(best, d1)
			r = m2
		} else {
			best = math.Min(best, d2)
			l = m1
		}
	}
	return best
}

// PointInShape reports whether p lies closer than eps to any edge of the
// closed loop through vertices, the edge from the last vertex back to the
// first included. Points deep inside a large shape are not hits.
func PointInShape(p Point, vertices []Point, eps float64) bool {
	n := len(vertices)
	if n == 0 {
		return false
	}
	if !BoundsOf(vertices).Inflate(eps).Contains(p) {
		return false
	}
	for i := range vertices {
		next := (i + 1) % n
		if DistanceToSegment(p, vertices[i], vertices[next]) < eps {
			return true
		}
	}
	return false
}

// Turn is the direction of the path p -> q -> r.
type Turn int

const (
	Collinear Turn = iota
	Clockwise
	Counterclockwise
)

func (t Turn) String() string {
	switch t {
	case Clockwise:
		return "clockwise"
	case Counterclockwise:
		return "counterclockwise"
	default:
		return "collinear"
	}
}

// Orientation classifies the ordered triplet (p, q, r) by the sign of the
// cross product of pq and qr.
func Orientation(p, q, r Point) Turn {
	v := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	switch {
	case v == 0:
		return Collinear
	case v > 0:
		return Clockwise
	default:
		return Counterclockwise
	}
}

// onSegment reports whether q lies inside the bounding box of pr. Only
// meaningful when p, q and r are collinear.
func onSegment(p, q, r Point) bool {
	return q.X <= math.Max(p.X, r.X) && q.X >= math.Min(p.X, r.X) &&
		q.Y <= math.Max(p.Y, r.Y) && q.Y >= math.Min(p.Y, r.Y)
}

// SegmentsIntersect reports whether segment p1q1 and segment p2q2 share
// at least one point. Touching endpoints count as an intersection.
func SegmentsIntersect(p1, q1, p2, q2 Point) bool {
	o1 := Orientation(p1, q1, p2)
	o2 := Orientation(p1, q1, q2)
	o3 := Orientation(p2, q2, p1)
	o4 := Orientation(p2, q2, q1)

	if o1 != o2 && o3 != o4 {
		return true
	}
	if o1 == Collinear && onSegment(p1, p2, q1) {
		return true
	}
	if o2 == Collinear && onSegment(p1, q2, q1) {
		return true
	}
	if o3 == Collinear && onSegment(p2, p1, q2) {
		return true
	}
	if o4 == Collinear && onSegment(p2, q1, q2) {
		return true
	}
	return false
}
