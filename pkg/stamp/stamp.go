// Package stamp places pre-authored catalog asset graphics onto walls. A
// placed asset is a scale/rotate/translate of the asset's own coordinate
// space that lands its opening anchor rectangle on the wall line.
package stamp

import (
	"fmt"

	"planedit/pkg/cfg"
	"planedit/pkg/geometry"
	"planedit/pkg/placement"
	"planedit/pkg/svgdoc"
	"planedit/pkg/walls"
)

// AnchorID names the rectangle inside an asset graphic that marks the
// opening extent. Every catalog asset carries one.
const AnchorID = "opening-anchor"

// Graphic is a parsed asset graphic: its intrinsic viewBox and the opening
// anchor rectangle, both in the asset's own coordinate space.
type Graphic struct {
	ViewBox geometry.Rect
	Anchor  geometry.Rect
}

// ParseGraphic reads an asset SVG and locates its viewBox and anchor
// rectangle. An asset without a discoverable anchor cannot be placed.
func ParseGraphic(data []byte) (Graphic, error) {
	doc, err := svgdoc.Parse(data)
	if err != nil {
		return Graphic{}, fmt.Errorf("parse asset graphic: %w", err)
	}

	viewBox, err := doc.Viewport()
	if err != nil {
		return Graphic{}, fmt.Errorf("asset graphic: %w", err)
	}

	anchorNode := doc.FindByID(AnchorID)
	if anchorNode == nil || anchorNode.Name() != "rect" {
		return Graphic{}, fmt.Errorf("asset graphic has no %q rect", AnchorID)
	}
	w := svgdoc.ParseNumber(anchorNode.Width)
	h := svgdoc.ParseNumber(anchorNode.Height)
	if w <= 0 || h <= 0 {
		return Graphic{}, fmt.Errorf("asset anchor rect is degenerate (%gx%g)", w, h)
	}

	return Graphic{
		ViewBox: viewBox,
		Anchor: geometry.Rect{
			Min: geometry.Point{X: anchorNode.X, Y: anchorNode.Y},
			Max: geometry.Point{X: anchorNode.X + w, Y: anchorNode.Y + h},
		},
	}, nil
}

// Options control how an asset lands on the wall.
type Options struct {
	// SwingOutward aligns the anchor's bottom edge to the wall line so the
	// swing extends away from the wall; otherwise the top edge aligns and
	// the swing extends toward the room.
	SwingOutward bool
	// Mirror flips the asset across the wall-perpendicular axis for the
	// opposite hinge side.
	Mirror bool
}

// Transform computes the per-instance placement transform: the composition
// translate(wallPoint) * rotate(wallAngle) * scale * [flip] * translate(-anchorRef).
func Transform(g Graphic, wall walls.Wall, position, widthUnits float64, opts Options) svgdoc.Matrix {
	scale := widthUnits / g.Anchor.Width()

	refX := g.Anchor.Center().X
	refY := g.Anchor.Min.Y
	if opts.SwingOutward {
		refY = g.Anchor.Max.Y
	}

	wallPoint := wall.PointAt(position)
	m := svgdoc.Translation(wallPoint.X, wallPoint.Y).
		Multiply(svgdoc.Rotation(wall.Angle())).
		Multiply(svgdoc.Scaling(scale, scale))
	if opts.Mirror {
		m = m.Multiply(svgdoc.Scaling(-1, 1))
	}
	return m.Multiply(svgdoc.Translation(-refX, -refY))
}

// Stamp patches an asset instance into the markup: the wall-break rectangle
// first (so it paints under the asset), then the asset reference carrying
// the placement transform. Returns the inserted group.
func Stamp(doc *svgdoc.Node, p placement.Placement, wall walls.Wall, g Graphic, href string, opts Options) *svgdoc.Node {
	layer := doc.OpeningsLayer()
	placement.RemoveOpening(doc, p.ID)

	group := svgdoc.Element("g")
	group.ID = "opening-" + p.ID
	group.OpeningID = p.ID
	group.OpeningKind = string(p.Kind)
	group.OpeningWall = p.WallID
	group.OpeningPos = svgdoc.FormatNumber(p.Position)
	group.OpeningWidth = svgdoc.FormatNumber(p.WidthInches)
	if p.Swing != placement.SwingNone {
		group.OpeningSwing = string(p.Swing)
	}

	breakNode := svgdoc.Element("path")
	breakNode.D = breakPath(placement.BreakCorners(p, wall))
	breakNode.SetStyle("fill", "white")
	breakNode.SetStyle("stroke", "none")
	group.AppendChild(breakNode)

	asset := svgdoc.Element("use")
	asset.Href = href
	asset.Transform = Transform(g, wall, p.Position, p.WidthUnits(), opts).String()
	group.AppendChild(asset)

	layer.AppendChild(group)
	return group
}

func breakPath(corners []geometry.Point) string {
	d := ""
	for i, c := range corners {
		if i == 0 {
			d += "M "
		} else {
			d += " L "
		}
		d += svgdoc.FormatNumber(c.X) + " " + svgdoc.FormatNumber(c.Y)
	}
	return d + " Z"
}

// BreakSize returns the wall-break extent for a given opening width: the
// width plus a small buffer by the wall thickness plus a small buffer.
func BreakSize(widthUnits float64) (alongWall, acrossWall float64) {
	return widthUnits + 2*cfg.BreakWidthBuffer, cfg.WallThickness + 2*cfg.BreakDepthBuffer
}
