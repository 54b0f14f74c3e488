package cfg

import "time"

// Plan markup coordinates are calibrated so that one SVG unit equals one
// inch of real space. Every inch<->unit conversion goes through this factor
// so that a recalibration is a one-line change.
var UnitsPerInch = 1.0

// MinWallLength is the shortest polygon edge (in SVG units) that can become
// a wall. Shorter edges are rounding noise from the generator and are dropped
// before adjacency matching.
var MinWallLength = 12.0

// CollinearTolerance bounds the normalized cross product of two edge
// directions for the edges to count as parallel.
var CollinearTolerance = 1e-6

// CoincidentTolerance is the maximum perpendicular distance (SVG units)
// between two parallel edges for them to lie on the same wall line.
var CoincidentTolerance = 1.0

// SnapToleranceInches is the maximum deviation from a catalog width at which
// a dragged width is coerced to that catalog size.
var SnapToleranceInches = 4.0

// DefaultOpeningWidthInches is used for single-click placement and for drags
// too short to be intentional.
var DefaultOpeningWidthInches = 36.0

// MinOpeningWidthInches is the floor for drag-derived widths.
var MinOpeningWidthInches = 12.0

// MinOpeningClearance is the required gap (SVG units) between the footprints
// of two openings on the same wall.
var MinOpeningClearance = 4.0

// WallThickness is the stroke thickness (SVG units) used when painting walls
// and sizing wall-break rectangles.
var WallThickness = 6.0

// Wall-break rectangles extend slightly past the opening and the wall stroke
// so the cut has no visible seams.
var BreakWidthBuffer = 2.0
var BreakDepthBuffer = 2.0

// A press-and-release faster than this, with less than ShortClickWidthDelta
// inches of width change, is treated as a plain click rather than a drag.
var ShortClickDuration = 250 * time.Millisecond
var ShortClickWidthDelta = 2.0

// WallHitMaxDistance is how far (SVG units) a click may land from a wall's
// center line and still select it.
var WallHitMaxDistance = 10.0
