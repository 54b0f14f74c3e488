package geometry

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var approx = cmp.Comparer(func(x, y float64) bool {
	return math.Abs(x-y) < 1e-9
})

func TestSegmentProjectT(t *testing.T) {
	seg := LineSegment{A: Point{X: 0, Y: 0}, B: Point{X: 10, Y: 0}}
	tests := []struct {
		p    Point
		want float64
	}{
		{Point{X: 5, Y: 0}, 0.5},
		{Point{X: 5, Y: 3}, 0.5},
		{Point{X: 0, Y: 0}, 0},
		{Point{X: 10, Y: -2}, 1},
		{Point{X: -4, Y: 0}, 0},
		{Point{X: 14, Y: 0}, 1},
	}
	for _, test := range tests {
		got := seg.ProjectT(test.p)
		if diff := cmp.Diff(test.want, got, approx); diff != "" {
			t.Errorf("ProjectT(%v): %s", test.p, diff)
		}
	}
}

func TestSegmentDistance(t *testing.T) {
	seg := LineSegment{A: Point{X: 0, Y: 0}, B: Point{X: 10, Y: 0}}
	tests := []struct {
		p    Point
		want float64
	}{
		{Point{X: 5, Y: 3}, 3},
		{Point{X: 0, Y: 0}, 0},
		{Point{X: 13, Y: 4}, 5},
	}
	for _, test := range tests {
		got := seg.Distance(test.p)
		if diff := cmp.Diff(test.want, got, approx); diff != "" {
			t.Errorf("Distance(%v): %s", test.p, diff)
		}
	}
}

func TestSegmentFrame(t *testing.T) {
	seg := LineSegment{A: Point{X: 0, Y: 0}, B: Point{X: 0, Y: 10}}
	if diff := cmp.Diff(Vector2{X: 0, Y: 1}, seg.Direction(), approx); diff != "" {
		t.Errorf("Direction: %s", diff)
	}
	if diff := cmp.Diff(Vector2{X: 1, Y: 0}, seg.Normal(), approx); diff != "" {
		t.Errorf("Normal: %s", diff)
	}
	if diff := cmp.Diff(math.Pi/2, seg.Angle(), approx); diff != "" {
		t.Errorf("Angle: %s", diff)
	}
	if diff := cmp.Diff(Point{X: 0, Y: 2.5}, seg.PointAt(0.25), approx); diff != "" {
		t.Errorf("PointAt: %s", diff)
	}
}

func TestPolygonArea(t *testing.T) {
	tests := []struct {
		name string
		poly Polygon
		want float64
	}{
		{
			name: "unit square",
			poly: Polygon{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
			want: 1,
		},
		{
			name: "reverse winding",
			poly: Polygon{{0, 0}, {0, 1}, {1, 1}, {1, 0}},
			want: 1,
		},
		{
			name: "triangle",
			poly: Polygon{{0, 0}, {4, 0}, {0, 3}},
			want: 6,
		},
		{
			name: "degenerate",
			poly: Polygon{{0, 0}, {1, 1}},
			want: 0,
		},
	}
	for _, test := range tests {
		got := test.poly.Area()
		if diff := cmp.Diff(test.want, got, approx); diff != "" {
			t.Errorf("%s: Area: %s", test.name, diff)
		}
	}
}

func TestPolygonEdges(t *testing.T) {
	poly := Polygon{{0, 0}, {10, 0}, {10, 10}}
	edges := poly.Edges()
	want := []LineSegment{
		{A: Point{X: 0, Y: 0}, B: Point{X: 10, Y: 0}},
		{A: Point{X: 10, Y: 0}, B: Point{X: 10, Y: 10}},
		{A: Point{X: 10, Y: 10}, B: Point{X: 0, Y: 0}},
	}
	if diff := cmp.Diff(want, edges, approx); diff != "" {
		t.Errorf("Edges: %s", diff)
	}
}
