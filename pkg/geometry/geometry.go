package geometry

import (
	"math"
)

type Point struct {
	X float64
	Y float64
}

type Vector2 = Point

type LineSegment struct {
	A Point
	B Point
}

type Rect struct {
	Min Point
	Max Point
}

func (a Vector2) Minus(b Vector2) Vector2 {
	return Vector2{
		X: a.X - b.X,
		Y: a.Y - b.Y,
	}
}

func (a Vector2) Add(b Vector2) Vector2 {
	return Vector2{
		X: a.X + b.X,
		Y: a.Y + b.Y,
	}
}

func (v Vector2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

func (a Vector2) CrossProductZ(b Vector2) float64 {
	return a.X*b.Y - a.Y*b.X
}

func (a Vector2) Dot(b Vector2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Distance returns the distance between two points.
func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Scale returns the point scaled by the given factor f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

func (s LineSegment) Length() float64 {
	return s.A.Distance(s.B)
}

// Direction returns the unit vector from A toward B. A zero-length segment
// yields the zero vector; callers filter those upstream.
func (s LineSegment) Direction() Vector2 {
	d := s.B.Minus(s.A)
	m := d.Magnitude()
	if m == 0 {
		return Vector2{}
	}
	return d.Scale(1 / m)
}

// Normal returns the unit normal, the direction rotated 90 degrees
// counterclockwise in the y-down SVG coordinate convention.
func (s LineSegment) Normal() Vector2 {
	d := s.Direction()
	return Vector2{X: d.Y, Y: -d.X}
}

// Angle returns the segment's angle in radians, atan2 convention.
func (s LineSegment) Angle() float64 {
	d := s.B.Minus(s.A)
	return math.Atan2(d.Y, d.X)
}

// PointAt returns the point at parameter t, with t=0 at A and t=1 at B.
func (s LineSegment) PointAt(t float64) Point {
	return Point{
		X: s.A.X + (s.B.X-s.A.X)*t,
		Y: s.A.Y + (s.B.Y-s.A.Y)*t,
	}
}

// ProjectT projects p onto the segment's line and returns the parameter of
// the closest point, clamped to [0, 1].
func (s LineSegment) ProjectT(p Point) float64 {
	ab := s.B.Minus(s.A)
	len2 := ab.Dot(ab)
	if len2 == 0 {
		return 0
	}
	t := p.Minus(s.A).Dot(ab) / len2
	return math.Max(0, math.Min(1, t))
}

// Distance returns the distance between a point and a line segment.
func (s LineSegment) Distance(p Point) float64 {
	AP := p.Minus(s.A)
	AB := s.A.Minus(s.B)
	mAP := AP.Magnitude()
	mBP := p.Minus(s.B).Magnitude()
	mAB := AB.Magnitude()

	if mAP > mAB || mBP > mAB {
		// closest point on line is outside segment boundaries, so the closest point
		// is the nearest of the two endpoints.
		return math.Min(mAP, mBP)
	}

	return math.Abs(AP.CrossProductZ(AB)) / mAB
}

// LineDistance returns the perpendicular distance from p to the segment's
// infinite supporting line, ignoring the segment's extent.
func (s LineSegment) LineDistance(p Point) float64 {
	ab := s.B.Minus(s.A)
	m := ab.Magnitude()
	if m == 0 {
		return p.Distance(s.A)
	}
	return math.Abs(p.Minus(s.A).CrossProductZ(ab)) / m
}

func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

func (r Rect) Center() Point {
	return Point{
		X: (r.Min.X + r.Max.X) / 2,
		Y: (r.Min.Y + r.Max.Y) / 2,
	}
}
