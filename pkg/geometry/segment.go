package geometry

import (
	"math"
)

// parallelEpsilon is the denominator threshold below which two segments are
// treated as parallel.
const parallelEpsilon = 1e-10

// SegmentIntersection computes the intersection of segments p1-p2 and p3-p4.
// It solves the 2x2 parametric system for t1 along p1-p2 and t2 along p3-p4
// and reports an intersection only when both parameters lie in [0,1]
// inclusive, i.e. true segment overlap rather than line extension.
// Parallel and near-parallel segments yield ok=false.
func SegmentIntersection(p1, p2, p3, p4 Point2D) (Point2D, bool) {
	dx1 := p2.X - p1.X
	dy1 := p2.Y - p1.Y
	dx2 := p4.X - p3.X
	dy2 := p4.Y - p3.Y

	denominator := dx1*dy2 - dy1*dx2
	if math.Abs(denominator) < parallelEpsilon {
		return Point2D{}, false
	}

	dx3 := p1.X - p3.X
	dy3 := p1.Y - p3.Y
	t1 := (dx2*dy3 - dy2*dx3) / denominator
	t2 := (dx1*dy3 - dy1*dx3) / denominator

	if t1 < 0 || t1 > 1 || t2 < 0 || t2 > 1 {
		return Point2D{}, false
	}

	return Point2D{X: p1.X + t1*dx1, Y: p1.Y + t1*dy1}, true
}

// SegmentAngle returns the acute angle in degrees, in [0,90], between the
// direction vectors of segments p1-p2 and p3-p4. Zero-length segments have
// no direction and report 0.
func SegmentAngle(p1, p2, p3, p4 Point2D) float64 {
	v1 := p2.Sub(p1)
	v2 := p4.Sub(p3)

	len1 := math.Sqrt(v1.X*v1.X + v1.Y*v1.Y)
	len2 := math.Sqrt(v2.X*v2.X + v2.Y*v2.Y)
	if len1 == 0 || len2 == 0 {
		return 0
	}

	dot := (v1.X*v2.X + v1.Y*v2.Y) / (len1 * len2)
	// Clamp before arccos to guard against floating-point drift.
	if dot > 1 {
		dot = 1
	} else if dot < -1 {
		dot = -1
	}

	angle := math.Acos(dot) * 180 / math.Pi
	return math.Min(angle, 180-angle)
}

// PointToSegmentDistance calculates the minimum distance from a point to a
// line segment.
func PointToSegmentDistance(p, a, b Point2D) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y

	if dx == 0 && dy == 0 {
		// Segment is a point
		return p.Distance(a)
	}

	// Parameter t of closest point on infinite line
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / (dx*dx + dy*dy)

	// Clamp to segment
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return p.Distance(Point2D{X: a.X + t*dx, Y: a.Y + t*dy})
}
