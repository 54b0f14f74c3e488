package geometry

import "math"

// Polygon is an ordered vertex list, implicitly closed from the last point
// back to the first.
type Polygon []Point

// Area returns the polygon's area via the shoelace formula, always
// non-negative regardless of winding order.
func (poly Polygon) Area() float64 {
	if len(poly) < 3 {
		return 0
	}
	area := 0.0
	for i := range poly {
		j := (i + 1) % len(poly)
		area += poly[i].X * poly[j].Y
		area -= poly[j].X * poly[i].Y
	}
	return math.Abs(area) / 2
}

// Centroid returns the vertex average. For the axis-ish rectilinear rooms
// this code deals with, that is close enough to the area centroid.
func (poly Polygon) Centroid() Point {
	if len(poly) == 0 {
		return Point{}
	}
	var sum Point
	for _, p := range poly {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(poly)))
}

// Bounds returns the axis-aligned bounding box of the polygon.
func (poly Polygon) Bounds() Rect {
	r := Rect{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
	for _, p := range poly {
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}
	return r
}

// Edges returns every consecutive vertex pair as a segment, wrapping from
// the last vertex back to the first.
func (poly Polygon) Edges() []LineSegment {
	if len(poly) < 2 {
		return nil
	}
	edges := make([]LineSegment, 0, len(poly))
	for i := range poly {
		j := (i + 1) % len(poly)
		edges = append(edges, LineSegment{A: poly[i], B: poly[j]})
	}
	return edges
}
