package placement

import (
	"planedit/pkg/catalog"
	"planedit/pkg/cfg"
	"planedit/pkg/geometry"
	"planedit/pkg/svgdoc"
	"planedit/pkg/walls"
)

// Symbols are generated in the wall's local frame: origin at the opening
// center, x along the wall direction, +y along the wall normal. Callers
// apply WallTransform to land the symbol on the wall's actual position and
// angle.

type Line struct {
	From geometry.Point
	To   geometry.Point
}

type Arc struct {
	Center     geometry.Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Clockwise  bool
}

// Symbol is a schematic opening: the wall-break rectangle plus the
// type-specific marks. The break paints first so it cuts the wall line
// under the marks.
type Symbol struct {
	Break geometry.Rect
	Lines []Line
	Arcs  []Arc
}

// WallTransform maps the symbol's local frame onto the wall.
func WallTransform(p Placement, wall walls.Wall) svgdoc.Matrix {
	center := wall.PointAt(p.Position)
	return svgdoc.Translation(center.X, center.Y).Multiply(svgdoc.Rotation(wall.Angle()))
}

// breakRect sizes the wall-break region: the opening width plus a buffer by
// the wall thickness plus a buffer.
func breakRect(width float64) geometry.Rect {
	halfW := width/2 + cfg.BreakWidthBuffer
	halfD := cfg.WallThickness/2 + cfg.BreakDepthBuffer
	return geometry.Rect{
		Min: geometry.Point{X: -halfW, Y: -halfD},
		Max: geometry.Point{X: halfW, Y: halfD},
	}
}

// Generate produces the local-frame schematic for the placement. The swing
// for hinged kinds extends toward -y (away from the wall normal) unless the
// placement swings outward.
func Generate(p Placement, wall walls.Wall) Symbol {
	w := p.WidthUnits()
	sym := Symbol{Break: breakRect(w)}

	switch p.Kind {
	case catalog.KindExteriorSingleDoor, catalog.KindInteriorSingleDoor:
		hinge := -w / 2
		if p.Swing == SwingRight {
			hinge = w / 2
		}
		leaf, arc := swingLeaf(hinge, -hinge, false)
		sym.Lines = append(sym.Lines, leaf)
		sym.Arcs = append(sym.Arcs, arc)

	case catalog.KindExteriorDoubleDoor, catalog.KindInteriorDoubleDoor:
		// Two opposed half-width leaves meeting at the center.
		left, leftArc := swingLeaf(-w/2, 0, false)
		right, rightArc := swingLeaf(w/2, 0, false)
		sym.Lines = append(sym.Lines, left, right)
		sym.Arcs = append(sym.Arcs, leftArc, rightArc)

	case catalog.KindSlidingDoor:
		// Two overlapping parallel panels offset across the wall line.
		offset := cfg.WallThickness / 4
		sym.Lines = append(sym.Lines,
			Line{From: geometry.Point{X: -w / 2, Y: -offset}, To: geometry.Point{X: w / 8, Y: -offset}},
			Line{From: geometry.Point{X: -w / 8, Y: offset}, To: geometry.Point{X: w / 2, Y: offset}},
		)

	case catalog.KindBifoldDoor:
		// Two folded leaves forming shallow Vs.
		peak := w / 6
		sym.Lines = append(sym.Lines,
			Line{From: geometry.Point{X: -w / 2, Y: 0}, To: geometry.Point{X: -w / 4, Y: -peak}},
			Line{From: geometry.Point{X: -w / 4, Y: -peak}, To: geometry.Point{X: 0, Y: 0}},
			Line{From: geometry.Point{X: 0, Y: 0}, To: geometry.Point{X: w / 4, Y: -peak}},
			Line{From: geometry.Point{X: w / 4, Y: -peak}, To: geometry.Point{X: w / 2, Y: 0}},
		)

	case catalog.KindWindow:
		// Sash frame with a center mullion along the wall.
		half := cfg.WallThickness / 2
		sym.Lines = append(sym.Lines,
			Line{From: geometry.Point{X: -w / 2, Y: -half}, To: geometry.Point{X: w / 2, Y: -half}},
			Line{From: geometry.Point{X: -w / 2, Y: half}, To: geometry.Point{X: w / 2, Y: half}},
			Line{From: geometry.Point{X: -w / 2, Y: 0}, To: geometry.Point{X: w / 2, Y: 0}},
			Line{From: geometry.Point{X: -w / 2, Y: -half}, To: geometry.Point{X: -w / 2, Y: half}},
			Line{From: geometry.Point{X: w / 2, Y: -half}, To: geometry.Point{X: w / 2, Y: half}},
		)

	case catalog.KindBayWindow:
		// Three segments projecting outward from the wall line.
		depth := w / 4
		sym.Lines = append(sym.Lines,
			Line{From: geometry.Point{X: -w / 2, Y: 0}, To: geometry.Point{X: -w / 4, Y: depth}},
			Line{From: geometry.Point{X: -w / 4, Y: depth}, To: geometry.Point{X: w / 4, Y: depth}},
			Line{From: geometry.Point{X: w / 4, Y: depth}, To: geometry.Point{X: w / 2, Y: 0}},
		)

	case catalog.KindGarageSingle, catalog.KindGarageDouble:
		// Panel line inset from the wall line.
		inset := cfg.WallThickness
		sym.Lines = append(sym.Lines,
			Line{From: geometry.Point{X: -w / 2, Y: -inset}, To: geometry.Point{X: w / 2, Y: -inset}},
		)
		if p.Kind == catalog.KindGarageDouble {
			sym.Lines = append(sym.Lines,
				Line{From: geometry.Point{X: 0, Y: -inset}, To: geometry.Point{X: 0, Y: 0}},
			)
		}
	}

	return sym
}

// Apply returns the symbol transformed by m, with angleOffset added to arc
// angles. m must be a rigid transform (rotation plus translation); arcs do
// not survive shear.
func (s Symbol) Apply(m svgdoc.Matrix, angleOffset float64) Symbol {
	out := Symbol{}

	corners := []geometry.Point{
		s.Break.Min,
		{X: s.Break.Max.X, Y: s.Break.Min.Y},
		s.Break.Max,
		{X: s.Break.Min.X, Y: s.Break.Max.Y},
	}
	// The transformed break is reported as the bounding box of the rotated
	// corners; renderers that need the oriented rect use BreakCorners.
	bounds := geometry.Polygon{}
	for _, c := range corners {
		bounds = append(bounds, m.Transform(c))
	}
	out.Break = bounds.Bounds()

	for _, line := range s.Lines {
		out.Lines = append(out.Lines, Line{From: m.Transform(line.From), To: m.Transform(line.To)})
	}
	for _, arc := range s.Arcs {
		out.Arcs = append(out.Arcs, Arc{
			Center:     m.Transform(arc.Center),
			Radius:     arc.Radius,
			StartAngle: arc.StartAngle + angleOffset,
			EndAngle:   arc.EndAngle + angleOffset,
			Clockwise:  arc.Clockwise,
		})
	}
	return out
}

// BreakCorners returns the oriented wall-break quad for the placement in
// vector space.
func BreakCorners(p Placement, wall walls.Wall) []geometry.Point {
	r := breakRect(p.WidthUnits())
	m := WallTransform(p, wall)
	return []geometry.Point{
		m.Transform(r.Min),
		m.Transform(geometry.Point{X: r.Max.X, Y: r.Min.Y}),
		m.Transform(r.Max),
		m.Transform(geometry.Point{X: r.Min.X, Y: r.Max.Y}),
	}
}
