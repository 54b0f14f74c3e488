// Package coords maintains the bidirectional mapping between the plan's
// vector space, the rendered raster's pixel space, and on-screen display
// pixels. Each space gets its own point type so a point can never cross
// spaces without an explicit transform.
package coords

import (
	"fmt"

	"planedit/pkg/geometry"
)

// VectorPoint is a point in the plan's logical coordinate space.
type VectorPoint struct {
	X float64
	Y float64
}

// RasterPoint is a point in the rendered image's pixel space.
type RasterPoint struct {
	X float64
	Y float64
}

// ScreenPoint is a point in on-screen display pixels.
type ScreenPoint struct {
	X float64
	Y float64
}

func (p VectorPoint) Point() geometry.Point {
	return geometry.Point{X: p.X, Y: p.Y}
}

func FromPoint(p geometry.Point) VectorPoint {
	return VectorPoint{X: p.X, Y: p.Y}
}

// RasterSize holds a raster's pixel dimensions.
type RasterSize struct {
	Width  int
	Height int
}

// Mapper is an immutable affine mapping between the vector viewport and a
// specific raster generation. Scales are independent per axis; the raster
// may legitimately have a different aspect ratio than the viewport.
type Mapper struct {
	viewport   geometry.Rect
	raster     RasterSize
	generation int
	scaleX     float64
	scaleY     float64
}

// NewMapper builds a mapper keyed to raster generation gen. It fails rather
// than produce a garbage transform when either space is degenerate.
func NewMapper(viewport geometry.Rect, raster RasterSize, gen int) (Mapper, error) {
	if viewport.Width() <= 0 || viewport.Height() <= 0 {
		return Mapper{}, fmt.Errorf("no mapping available: degenerate viewport %+v", viewport)
	}
	if raster.Width <= 0 || raster.Height <= 0 {
		return Mapper{}, fmt.Errorf("no mapping available: degenerate raster %+v", raster)
	}
	return Mapper{
		viewport:   viewport,
		raster:     raster,
		generation: gen,
		scaleX:     float64(raster.Width) / viewport.Width(),
		scaleY:     float64(raster.Height) / viewport.Height(),
	}, nil
}

// Generation identifies the raster this mapper was built for. Callers must
// rebuild the mapper whenever a new render arrives; mixing generations
// silently misplaces openings.
func (m Mapper) Generation() int {
	return m.generation
}

func (m Mapper) Viewport() geometry.Rect {
	return m.viewport
}

func (m Mapper) Raster() RasterSize {
	return m.raster
}

// ScaleX and ScaleY return raster pixels per vector unit.
func (m Mapper) ScaleX() float64 { return m.scaleX }
func (m Mapper) ScaleY() float64 { return m.scaleY }

func (m Mapper) VectorToRaster(p VectorPoint) RasterPoint {
	return RasterPoint{
		X: (p.X - m.viewport.Min.X) * m.scaleX,
		Y: (p.Y - m.viewport.Min.Y) * m.scaleY,
	}
}

func (m Mapper) RasterToVector(p RasterPoint) VectorPoint {
	return VectorPoint{
		X: p.X/m.scaleX + m.viewport.Min.X,
		Y: p.Y/m.scaleY + m.viewport.Min.Y,
	}
}

// ScreenMapper maps on-screen display pixels onto a raster's pixel space,
// absorbing CSS-level scaling of the displayed element.
type ScreenMapper struct {
	elementW float64
	elementH float64
	raster   RasterSize
}

func NewScreenMapper(elementW, elementH float64, raster RasterSize) (ScreenMapper, error) {
	if elementW <= 0 || elementH <= 0 {
		return ScreenMapper{}, fmt.Errorf("no mapping available: degenerate element box %gx%g", elementW, elementH)
	}
	if raster.Width <= 0 || raster.Height <= 0 {
		return ScreenMapper{}, fmt.Errorf("no mapping available: degenerate raster %+v", raster)
	}
	return ScreenMapper{elementW: elementW, elementH: elementH, raster: raster}, nil
}

func (s ScreenMapper) ScreenToRaster(p ScreenPoint) RasterPoint {
	return RasterPoint{
		X: p.X * float64(s.raster.Width) / s.elementW,
		Y: p.Y * float64(s.raster.Height) / s.elementH,
	}
}

func (s ScreenMapper) RasterToScreen(p RasterPoint) ScreenPoint {
	return ScreenPoint{
		X: p.X * s.elementW / float64(s.raster.Width),
		Y: p.Y * s.elementH / float64(s.raster.Height),
	}
}

// ScreenToVector composes both transforms for hit-testing. The two mappers
// must be keyed to the same raster.
func ScreenToVector(s ScreenMapper, m Mapper, p ScreenPoint) (VectorPoint, error) {
	if s.raster != m.raster {
		return VectorPoint{}, fmt.Errorf("mapper mismatch: screen mapper raster %+v, vector mapper raster %+v", s.raster, m.raster)
	}
	return m.RasterToVector(s.ScreenToRaster(p)), nil
}

// VectorToScreen is the inverse composition, for drawing overlays aligned
// to a wall.
func VectorToScreen(s ScreenMapper, m Mapper, p VectorPoint) (ScreenPoint, error) {
	if s.raster != m.raster {
		return ScreenPoint{}, fmt.Errorf("mapper mismatch: screen mapper raster %+v, vector mapper raster %+v", s.raster, m.raster)
	}
	return s.RasterToScreen(m.VectorToRaster(p)), nil
}
