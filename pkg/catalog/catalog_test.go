package catalog

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKindGroup(t *testing.T) {
	tests := []struct {
		kind Kind
		want Group
	}{
		{KindExteriorSingleDoor, GroupDoor},
		{KindInteriorDoubleDoor, GroupDoor},
		{KindSlidingDoor, GroupDoor},
		{KindBifoldDoor, GroupDoor},
		{KindWindow, GroupWindow},
		{KindBayWindow, GroupWindow},
		{KindGarageSingle, GroupGarage},
		{KindGarageDouble, GroupGarage},
	}
	for _, test := range tests {
		if got := test.kind.Group(); got != test.want {
			t.Errorf("%s.Group() = %s, want %s", test.kind, got, test.want)
		}
	}
}

func TestKindRequiresExterior(t *testing.T) {
	exterior := []Kind{
		KindExteriorSingleDoor, KindExteriorDoubleDoor, KindSlidingDoor,
		KindGarageSingle, KindGarageDouble, KindWindow, KindBayWindow,
	}
	interior := []Kind{KindInteriorSingleDoor, KindInteriorDoubleDoor, KindBifoldDoor}
	for _, k := range exterior {
		if !k.RequiresExterior() {
			t.Errorf("%s should require exterior", k)
		}
	}
	for _, k := range interior {
		if k.RequiresExterior() {
			t.Errorf("%s should not require exterior", k)
		}
	}
}

const manifestJSON = `{
  "assets": [
    {"id": "d30", "filename": "door30.svg", "kind": "interior_single_door", "width_inches": 30},
    {"id": "d36", "filename": "door36.svg", "kind": "interior_single_door", "width_inches": 36},
    {"id": "d36h", "filename": "door36h.svg", "kind": "interior_single_door", "width_inches": 36, "half_swing": true},
    {"id": "x36", "filename": "ext36.svg", "kind": "exterior_single_door", "width_inches": 36},
    {"id": "w24", "filename": "win24.svg", "kind": "window", "width_inches": 24},
    {"id": "w48", "filename": "win48.svg", "kind": "window", "width_inches": 48},
    {"id": "g96", "filename": "garage96.svg", "kind": "garage_single", "width_inches": 96}
  ]
}`

func manifestOpener(data string) func() (io.ReadCloser, error) {
	return func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(data)), nil
	}
}

func TestManifestProvider(t *testing.T) {
	opens := 0
	p := NewManifestProvider(func() (io.ReadCloser, error) {
		opens++
		return io.NopCloser(strings.NewReader(manifestJSON)), nil
	})

	first, err := p.Assets()
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != 7 {
		t.Fatalf("got %d assets, want 7", len(first))
	}
	if first[0].ID != "d30" || first[0].Kind != KindInteriorSingleDoor {
		t.Errorf("first asset = %+v", first[0])
	}

	// Second call serves the cache.
	if _, err := p.Assets(); err != nil {
		t.Fatal(err)
	}
	if opens != 1 {
		t.Errorf("manifest opened %d times, want 1", opens)
	}

	p.Invalidate()
	if _, err := p.Assets(); err != nil {
		t.Fatal(err)
	}
	if opens != 2 {
		t.Errorf("manifest opened %d times after Invalidate, want 2", opens)
	}
}

func TestManifestProviderErrors(t *testing.T) {
	p := NewManifestProvider(func() (io.ReadCloser, error) {
		return nil, errors.New("boom")
	})
	if _, err := p.Assets(); err == nil {
		t.Error("open failure should propagate")
	}

	p = NewManifestProvider(manifestOpener(`{"assets": [{"id": "bad", "width_inches": 0}]}`))
	if _, err := p.Assets(); err == nil {
		t.Error("entry without kind/width should fail")
	}

	p = NewManifestProvider(manifestOpener(`not json`))
	if _, err := p.Assets(); err == nil {
		t.Error("malformed manifest should fail")
	}
}

func testAssets(t *testing.T) []Asset {
	t.Helper()
	assets, err := NewManifestProvider(manifestOpener(manifestJSON)).Assets()
	if err != nil {
		t.Fatal(err)
	}
	return assets
}

func TestWidths(t *testing.T) {
	assets := testAssets(t)
	if diff := cmp.Diff([]float64{30, 36}, Widths(assets, GroupDoor)); diff != "" {
		t.Errorf("door widths: %s", diff)
	}
	if diff := cmp.Diff([]float64{24, 48}, Widths(assets, GroupWindow)); diff != "" {
		t.Errorf("window widths: %s", diff)
	}
}

func TestClosestWidth(t *testing.T) {
	assets := testAssets(t)

	got, ok := ClosestWidth(assets, GroupWindow, 40)
	if !ok || got != 48 {
		t.Errorf("ClosestWidth(window, 40) = %v, %v; want 48", got, ok)
	}
	// Unlike Snap, distance does not matter.
	got, ok = ClosestWidth(assets, GroupWindow, 200)
	if !ok || got != 48 {
		t.Errorf("ClosestWidth(window, 200) = %v, %v; want 48", got, ok)
	}
	if _, ok := ClosestWidth(nil, GroupWindow, 40); ok {
		t.Error("empty catalog should have no closest width")
	}
}

func TestSnap(t *testing.T) {
	assets := testAssets(t)
	tests := []struct {
		name   string
		group  Group
		width  float64
		want   float64
		wantOK bool
	}{
		{"snaps up", GroupDoor, 34, 36, true},
		{"snaps down", GroupDoor, 31, 30, true},
		{"exact", GroupDoor, 36, 36, true},
		{"at tolerance", GroupWindow, 28, 24, true},
		{"beyond tolerance", GroupWindow, 36, 0, false},
		{"no widths", GroupGarage, 20, 0, false},
	}
	for _, test := range tests {
		got, ok := Snap(assets, test.group, test.width)
		if got != test.want || ok != test.wantOK {
			t.Errorf("%s: Snap(%s, %v) = %v, %v; want %v, %v",
				test.name, test.group, test.width, got, ok, test.want, test.wantOK)
		}
	}
}

func TestBestMatch(t *testing.T) {
	assets := testAssets(t)

	// Interior wall: the exterior-only 36" door is filtered out.
	got, ok := BestMatch(assets, GroupDoor, 36, false, false)
	if !ok || got.ID != "d36" {
		t.Errorf("interior 36 = %+v, %v; want d36", got, ok)
	}

	// Half-swing preference picks the half-swing variant.
	got, ok = BestMatch(assets, GroupDoor, 36, false, true)
	if !ok || got.ID != "d36h" {
		t.Errorf("half swing 36 = %+v, %v; want d36h", got, ok)
	}

	// Windows are exterior-only; no match on an interior wall.
	if _, ok := BestMatch(assets, GroupWindow, 24, false, false); ok {
		t.Error("window should not match an interior wall")
	}
	got, ok = BestMatch(assets, GroupWindow, 24, true, false)
	if !ok || got.ID != "w24" {
		t.Errorf("exterior window 24 = %+v, %v; want w24", got, ok)
	}

	// No asset at that width.
	if _, ok := BestMatch(assets, GroupDoor, 33, false, false); ok {
		t.Error("width 33 should not match")
	}
}
