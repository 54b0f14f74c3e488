// Package placement validates opening placements against their walls and
// generates the schematic symbol geometry for accepted ones.
package placement

import (
	"planedit/pkg/catalog"
	"planedit/pkg/cfg"
	"planedit/pkg/walls"
)

// Swing is the hinge side of a swinging door, viewed along the wall
// direction.
type Swing string

const (
	SwingNone  Swing = ""
	SwingLeft  Swing = "left"
	SwingRight Swing = "right"
)

// Placement positions one opening on a wall. Position is the opening
// center's location along the wall in [0, 1].
type Placement struct {
	ID          string
	Kind        catalog.Kind
	WallID      string
	Position    float64
	WidthInches float64
	Swing       Swing
}

// WidthUnits returns the opening width in SVG units.
func (p Placement) WidthUnits() float64 {
	return p.WidthInches * cfg.UnitsPerInch
}

// Footprint returns the span the opening occupies along a wall of the given
// length, in wall-length units from the wall start.
func (p Placement) Footprint(wallLength float64) (lo, hi float64) {
	center := p.Position * wallLength
	half := p.WidthUnits() / 2
	return center - half, center + half
}

// Reason identifies why a placement was rejected. These are expected
// user-facing outcomes, not errors.
type Reason string

const (
	ReasonWallTooShort            Reason = "WallTooShort"
	ReasonExtendsBeyondWall       Reason = "ExtendsBeyondWall"
	ReasonOverlapsExistingOpening Reason = "OverlapsExistingOpening"
	ReasonRequiresExteriorWall    Reason = "RequiresExteriorWall"
)

// Validate checks a placement against its wall and the existing placements,
// short-circuiting on the first failed constraint. The existing set may span
// any wall; only same-wall placements constrain the new one.
func Validate(p Placement, wall walls.Wall, existing []Placement) (bool, Reason) {
	width := p.WidthUnits()
	length := wall.Length()

	if length < width {
		return false, ReasonWallTooShort
	}

	lo, hi := p.Footprint(length)
	if lo < 0 || hi > length {
		return false, ReasonExtendsBeyondWall
	}

	center := p.Position * length
	for _, other := range existing {
		if other.WallID != wall.ID || other.ID == p.ID {
			continue
		}
		otherCenter := other.Position * length
		minGap := (width+other.WidthUnits())/2 + cfg.MinOpeningClearance
		gap := center - otherCenter
		if gap < 0 {
			gap = -gap
		}
		if gap < minGap {
			return false, ReasonOverlapsExistingOpening
		}
	}

	if p.Kind.RequiresExterior() && !wall.Exterior {
		return false, ReasonRequiresExteriorWall
	}

	return true, ""
}
