package placement

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"planedit/pkg/catalog"
	"planedit/pkg/geometry"
	"planedit/pkg/walls"
)

var approx = cmp.Comparer(func(x, y float64) bool {
	return math.Abs(x-y) < 1e-9
})

func interiorWall(id string, length float64) walls.Wall {
	return walls.Wall{
		ID:    id,
		Start: geometry.Point{X: 0, Y: 0},
		End:   geometry.Point{X: length, Y: 0},
		RoomA: "A",
		RoomB: "B",
	}
}

func exteriorWall(id string, length float64) walls.Wall {
	w := interiorWall(id, length)
	w.Exterior = true
	w.RoomB = ""
	return w
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		p        Placement
		wall     walls.Wall
		existing []Placement
		wantOK   bool
		want     Reason
	}{
		{
			name:   "centered door fits",
			p:      Placement{ID: "o1", Kind: catalog.KindInteriorSingleDoor, WallID: "w1", Position: 0.5, WidthInches: 36},
			wall:   interiorWall("w1", 100),
			wantOK: true,
		},
		{
			name: "wall shorter than opening",
			p:    Placement{ID: "o1", Kind: catalog.KindInteriorSingleDoor, WallID: "w1", Position: 0.5, WidthInches: 36},
			wall: interiorWall("w1", 30),
			want: ReasonWallTooShort,
		},
		{
			name: "hangs off the end",
			p:    Placement{ID: "o1", Kind: catalog.KindInteriorSingleDoor, WallID: "w1", Position: 0.95, WidthInches: 36},
			wall: interiorWall("w1", 100),
			want: ReasonExtendsBeyondWall,
		},
		{
			name: "too close to neighbor",
			p:    Placement{ID: "o1", Kind: catalog.KindInteriorSingleDoor, WallID: "w1", Position: 0.5, WidthInches: 36},
			wall: interiorWall("w1", 100),
			existing: []Placement{
				{ID: "o2", Kind: catalog.KindInteriorSingleDoor, WallID: "w1", Position: 0.3, WidthInches: 36},
			},
			want: ReasonOverlapsExistingOpening,
		},
		{
			name: "clear of neighbor",
			p:    Placement{ID: "o1", Kind: catalog.KindInteriorSingleDoor, WallID: "w1", Position: 0.8, WidthInches: 36},
			wall: interiorWall("w1", 100),
			existing: []Placement{
				{ID: "o2", Kind: catalog.KindInteriorSingleDoor, WallID: "w1", Position: 0.2, WidthInches: 36},
			},
			wantOK: true,
		},
		{
			name: "neighbor on another wall ignored",
			p:    Placement{ID: "o1", Kind: catalog.KindInteriorSingleDoor, WallID: "w1", Position: 0.5, WidthInches: 36},
			wall: interiorWall("w1", 100),
			existing: []Placement{
				{ID: "o2", Kind: catalog.KindInteriorSingleDoor, WallID: "w2", Position: 0.5, WidthInches: 36},
			},
			wantOK: true,
		},
		{
			name: "replacing itself is not an overlap",
			p:    Placement{ID: "o1", Kind: catalog.KindInteriorSingleDoor, WallID: "w1", Position: 0.5, WidthInches: 36},
			wall: interiorWall("w1", 100),
			existing: []Placement{
				{ID: "o1", Kind: catalog.KindInteriorSingleDoor, WallID: "w1", Position: 0.5, WidthInches: 36},
			},
			wantOK: true,
		},
		{
			name: "window needs exterior wall",
			p:    Placement{ID: "o1", Kind: catalog.KindWindow, WallID: "w1", Position: 0.5, WidthInches: 36},
			wall: interiorWall("w1", 100),
			want: ReasonRequiresExteriorWall,
		},
		{
			name:   "window on exterior wall",
			p:      Placement{ID: "o1", Kind: catalog.KindWindow, WallID: "w1", Position: 0.5, WidthInches: 36},
			wall:   exteriorWall("w1", 100),
			wantOK: true,
		},
		{
			name:   "interior door allowed on exterior wall",
			p:      Placement{ID: "o1", Kind: catalog.KindInteriorSingleDoor, WallID: "w1", Position: 0.5, WidthInches: 36},
			wall:   exteriorWall("w1", 100),
			wantOK: true,
		},
	}
	for _, test := range tests {
		ok, reason := Validate(test.p, test.wall, test.existing)
		if ok != test.wantOK || reason != test.want {
			t.Errorf("%s: Validate = %v, %q; want %v, %q",
				test.name, ok, reason, test.wantOK, test.want)
		}
	}
}

func TestFootprint(t *testing.T) {
	p := Placement{Position: 0.5, WidthInches: 36}
	lo, hi := p.Footprint(100)
	if diff := cmp.Diff(32.0, lo, approx); diff != "" {
		t.Errorf("lo: %s", diff)
	}
	if diff := cmp.Diff(68.0, hi, approx); diff != "" {
		t.Errorf("hi: %s", diff)
	}
}

func TestGenerateBreak(t *testing.T) {
	p := Placement{Kind: catalog.KindInteriorSingleDoor, Position: 0.5, WidthInches: 36}
	sym := Generate(p, interiorWall("w1", 100))

	// Opening width plus buffer by wall thickness plus buffer.
	want := geometry.Rect{
		Min: geometry.Point{X: -20, Y: -5},
		Max: geometry.Point{X: 20, Y: 5},
	}
	if diff := cmp.Diff(want, sym.Break, approx); diff != "" {
		t.Errorf("break: %s", diff)
	}
}

func TestGenerateSingleDoorSwing(t *testing.T) {
	p := Placement{Kind: catalog.KindInteriorSingleDoor, Position: 0.5, WidthInches: 36, Swing: SwingLeft}
	sym := Generate(p, interiorWall("w1", 100))

	if len(sym.Lines) != 1 || len(sym.Arcs) != 1 {
		t.Fatalf("got %d lines, %d arcs; want 1, 1", len(sym.Lines), len(sym.Arcs))
	}

	arc := sym.Arcs[0]
	if diff := cmp.Diff(36.0, arc.Radius, approx); diff != "" {
		t.Errorf("radius: %s", diff)
	}
	if diff := cmp.Diff(geometry.Point{X: -18, Y: 0}, arc.Center, approx); diff != "" {
		t.Errorf("hinge: %s", diff)
	}
	// Quarter-circle sweep from closed to open.
	sweep := math.Abs(arc.EndAngle - arc.StartAngle)
	if diff := cmp.Diff(math.Pi/2, sweep, approx); diff != "" {
		t.Errorf("sweep: %s", diff)
	}
	// Leaf runs from the hinge to the open position.
	leaf := sym.Lines[0]
	if diff := cmp.Diff(geometry.Point{X: -18, Y: -36}, leaf.To, approx); diff != "" {
		t.Errorf("leaf open end: %s", diff)
	}

	// Opposite hinge side mirrors the arc center.
	p.Swing = SwingRight
	sym = Generate(p, interiorWall("w1", 100))
	if diff := cmp.Diff(geometry.Point{X: 18, Y: 0}, sym.Arcs[0].Center, approx); diff != "" {
		t.Errorf("right hinge: %s", diff)
	}
}

func TestGenerateDoubleDoor(t *testing.T) {
	p := Placement{Kind: catalog.KindInteriorDoubleDoor, Position: 0.5, WidthInches: 48}
	sym := Generate(p, interiorWall("w1", 100))

	if len(sym.Lines) != 2 || len(sym.Arcs) != 2 {
		t.Fatalf("got %d lines, %d arcs; want 2, 2", len(sym.Lines), len(sym.Arcs))
	}
	for _, arc := range sym.Arcs {
		if diff := cmp.Diff(24.0, arc.Radius, approx); diff != "" {
			t.Errorf("half-width leaf radius: %s", diff)
		}
	}
}

func TestGenerateKindsProduceMarks(t *testing.T) {
	wall := exteriorWall("w1", 300)
	kinds := []catalog.Kind{
		catalog.KindExteriorSingleDoor, catalog.KindExteriorDoubleDoor,
		catalog.KindInteriorSingleDoor, catalog.KindInteriorDoubleDoor,
		catalog.KindSlidingDoor, catalog.KindBifoldDoor,
		catalog.KindWindow, catalog.KindBayWindow,
		catalog.KindGarageSingle, catalog.KindGarageDouble,
	}
	for _, kind := range kinds {
		p := Placement{Kind: kind, Position: 0.5, WidthInches: 36}
		sym := Generate(p, wall)
		if len(sym.Lines)+len(sym.Arcs) == 0 {
			t.Errorf("%s: no marks generated", kind)
		}
		if sym.Break.Width() <= 0 || sym.Break.Height() <= 0 {
			t.Errorf("%s: degenerate break", kind)
		}
	}
}

func TestApplyTransform(t *testing.T) {
	// A vertical wall: the local frame rotates a quarter turn.
	wall := walls.Wall{
		ID:    "w1",
		Start: geometry.Point{X: 50, Y: 0},
		End:   geometry.Point{X: 50, Y: 100},
		RoomA: "A", RoomB: "B",
	}
	p := Placement{Kind: catalog.KindInteriorSingleDoor, Position: 0.5, WidthInches: 36, Swing: SwingLeft}

	sym := Generate(p, wall).Apply(WallTransform(p, wall), wall.Angle())

	// Local hinge (-18, 0) lands 18 units before the wall midpoint.
	if diff := cmp.Diff(geometry.Point{X: 50, Y: 32}, sym.Arcs[0].Center, approx); diff != "" {
		t.Errorf("transformed hinge: %s", diff)
	}
	// Arc angles pick up the wall angle.
	if diff := cmp.Diff(math.Pi/2, sym.Arcs[0].StartAngle, approx); diff != "" {
		t.Errorf("start angle: %s", diff)
	}
}

func TestBreakCorners(t *testing.T) {
	wall := interiorWall("w1", 100)
	p := Placement{Kind: catalog.KindInteriorSingleDoor, Position: 0.5, WidthInches: 36}
	corners := BreakCorners(p, wall)
	if len(corners) != 4 {
		t.Fatalf("got %d corners, want 4", len(corners))
	}
	want := []geometry.Point{
		{X: 30, Y: -5}, {X: 70, Y: -5}, {X: 70, Y: 5}, {X: 30, Y: 5},
	}
	for _, w := range want {
		found := false
		for _, c := range corners {
			if cmp.Equal(w, c, approx) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("corner %v missing from %v", w, corners)
		}
	}
}
