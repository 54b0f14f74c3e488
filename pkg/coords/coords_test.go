package coords

import (
	"bytes"
	"image"
	"image/png"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"planedit/pkg/geometry"
)

var approx = cmp.Comparer(func(x, y float64) bool {
	return math.Abs(x-y) < 1e-9
})

func viewport(x, y, w, h float64) geometry.Rect {
	return geometry.Rect{
		Min: geometry.Point{X: x, Y: y},
		Max: geometry.Point{X: x + w, Y: y + h},
	}
}

func TestMapperRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		viewport geometry.Rect
		raster   RasterSize
		points   []VectorPoint
	}{
		{
			name:     "uniform scale",
			viewport: viewport(0, 0, 768, 768),
			raster:   RasterSize{Width: 1536, Height: 1536},
			points:   []VectorPoint{{0, 0}, {768, 768}, {100.5, 33.25}},
		},
		{
			name:     "non-square pixels",
			viewport: viewport(0, 0, 768, 768),
			raster:   RasterSize{Width: 1024, Height: 768},
			points:   []VectorPoint{{384, 384}, {7, 700}},
		},
		{
			name:     "offset viewport",
			viewport: viewport(-50, 25, 400, 300),
			raster:   RasterSize{Width: 800, Height: 600},
			points:   []VectorPoint{{-50, 25}, {350, 325}, {0, 100}},
		},
	}
	for _, test := range tests {
		m, err := NewMapper(test.viewport, test.raster, 1)
		if err != nil {
			t.Fatalf("%s: NewMapper: %v", test.name, err)
		}
		for _, p := range test.points {
			got := m.RasterToVector(m.VectorToRaster(p))
			if diff := cmp.Diff(p, got, approx); diff != "" {
				t.Errorf("%s: round trip %v: %s", test.name, p, diff)
			}
		}
	}
}

func TestMapperScales(t *testing.T) {
	m, err := NewMapper(viewport(0, 0, 768, 768), RasterSize{Width: 1024, Height: 768}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(1024.0/768.0, m.ScaleX(), approx); diff != "" {
		t.Errorf("ScaleX: %s", diff)
	}
	if diff := cmp.Diff(1.0, m.ScaleY(), approx); diff != "" {
		t.Errorf("ScaleY: %s", diff)
	}
	if m.Generation() != 3 {
		t.Errorf("Generation = %d, want 3", m.Generation())
	}
}

func TestMapperRejectsDegenerate(t *testing.T) {
	if _, err := NewMapper(viewport(0, 0, 0, 768), RasterSize{Width: 100, Height: 100}, 0); err == nil {
		t.Error("zero-width viewport should fail")
	}
	if _, err := NewMapper(viewport(0, 0, 768, 768), RasterSize{Width: 0, Height: 100}, 0); err == nil {
		t.Error("zero-width raster should fail")
	}
}

func TestScreenComposition(t *testing.T) {
	raster := RasterSize{Width: 1536, Height: 1536}
	m, err := NewMapper(viewport(0, 0, 768, 768), raster, 1)
	if err != nil {
		t.Fatal(err)
	}
	// Element displayed at half the raster size.
	s, err := NewScreenMapper(768, 768, raster)
	if err != nil {
		t.Fatal(err)
	}

	// A screen pixel maps 1:1 onto vector units here.
	got, err := ScreenToVector(s, m, ScreenPoint{X: 100, Y: 200})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(VectorPoint{X: 100, Y: 200}, got, approx); diff != "" {
		t.Errorf("ScreenToVector: %s", diff)
	}

	back, err := VectorToScreen(s, m, got)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(ScreenPoint{X: 100, Y: 200}, back, approx); diff != "" {
		t.Errorf("VectorToScreen: %s", diff)
	}
}

func TestScreenCompositionMismatchedRasters(t *testing.T) {
	m, _ := NewMapper(viewport(0, 0, 768, 768), RasterSize{Width: 1536, Height: 1536}, 1)
	s, _ := NewScreenMapper(768, 768, RasterSize{Width: 1024, Height: 1024})
	if _, err := ScreenToVector(s, m, ScreenPoint{}); err == nil {
		t.Error("mismatched rasters should fail composition")
	}
}

func TestProbePNG(t *testing.T) {
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 320, 200))
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}

	size, err := ProbePNG(&buf)
	if err != nil {
		t.Fatal(err)
	}
	want := RasterSize{Width: 320, Height: 200}
	if size != want {
		t.Errorf("ProbePNG = %+v, want %+v", size, want)
	}
}

func TestProbePNGRejectsGarbage(t *testing.T) {
	if _, err := ProbePNG(bytes.NewReader([]byte("not a png"))); err == nil {
		t.Error("garbage input should fail")
	}
}
