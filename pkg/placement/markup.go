package placement

import (
	"math"
	"strings"

	"planedit/pkg/geometry"
	"planedit/pkg/svgdoc"
	"planedit/pkg/walls"
)

// InsertOpening patches the placement's schematic symbol into the markup as
// a named group under the openings layer. The break rectangle is emitted
// first so it paints under the symbol marks.
func InsertOpening(doc *svgdoc.Node, p Placement, wall walls.Wall) *svgdoc.Node {
	layer := doc.OpeningsLayer()

	// Replace any previous group for the same opening id.
	RemoveOpening(doc, p.ID)

	group := svgdoc.Element("g")
	group.ID = "opening-" + p.ID
	group.OpeningID = p.ID
	group.OpeningKind = string(p.Kind)
	group.OpeningWall = p.WallID
	group.OpeningPos = svgdoc.FormatNumber(p.Position)
	group.OpeningWidth = svgdoc.FormatNumber(p.WidthInches)
	if p.Swing != SwingNone {
		group.OpeningSwing = string(p.Swing)
	}

	sym := Generate(p, wall).Apply(WallTransform(p, wall), wall.Angle())

	breakNode := svgdoc.Element("path")
	breakNode.D = breakPath(BreakCorners(p, wall))
	breakNode.SetStyle("fill", "white")
	breakNode.SetStyle("stroke", "none")
	group.AppendChild(breakNode)

	if marks := symbolPath(sym); marks != "" {
		marksNode := svgdoc.Element("path")
		marksNode.D = marks
		marksNode.SetStyle("fill", "none")
		marksNode.SetStyle("stroke", "black")
		group.AppendChild(marksNode)
	}

	layer.AppendChild(group)
	return group
}

// RemoveOpening deletes the opening group with the given id and reports
// whether it existed.
func RemoveOpening(doc *svgdoc.Node, id string) bool {
	layer := doc.FindByID(svgdoc.OpeningsLayerID)
	if layer == nil {
		return false
	}
	for i, child := range layer.Children {
		if child.OpeningID == id {
			layer.Children = append(layer.Children[:i], layer.Children[i+1:]...)
			return true
		}
	}
	return false
}

func breakPath(corners []geometry.Point) string {
	var buf strings.Builder
	for i, c := range corners {
		if i == 0 {
			buf.WriteString("M ")
		} else {
			buf.WriteString(" L ")
		}
		buf.WriteString(svgdoc.FormatNumber(c.X) + " " + svgdoc.FormatNumber(c.Y))
	}
	buf.WriteString(" Z")
	return buf.String()
}

func symbolPath(sym Symbol) string {
	var parts []string
	for _, line := range sym.Lines {
		parts = append(parts,
			"M "+svgdoc.FormatNumber(line.From.X)+" "+svgdoc.FormatNumber(line.From.Y)+
				" L "+svgdoc.FormatNumber(line.To.X)+" "+svgdoc.FormatNumber(line.To.Y))
	}
	for _, arc := range sym.Arcs {
		parts = append(parts, arcPath(arc))
	}
	return strings.Join(parts, " ")
}

// arcPath serializes an arc as an SVG elliptical-arc command. Quarter-circle
// swings never need the large-arc flag.
func arcPath(arc Arc) string {
	start := geometry.Point{
		X: arc.Center.X + arc.Radius*math.Cos(arc.StartAngle),
		Y: arc.Center.Y + arc.Radius*math.Sin(arc.StartAngle),
	}
	end := geometry.Point{
		X: arc.Center.X + arc.Radius*math.Cos(arc.EndAngle),
		Y: arc.Center.Y + arc.Radius*math.Sin(arc.EndAngle),
	}
	sweep := "1"
	if arc.Clockwise {
		sweep = "0"
	}
	r := svgdoc.FormatNumber(arc.Radius)
	return "M " + svgdoc.FormatNumber(start.X) + " " + svgdoc.FormatNumber(start.Y) +
		" A " + r + " " + r + " 0 0 " + sweep + " " +
		svgdoc.FormatNumber(end.X) + " " + svgdoc.FormatNumber(end.Y)
}
