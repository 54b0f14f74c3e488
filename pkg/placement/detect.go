package placement

import (
	"planedit/pkg/catalog"
	"planedit/pkg/svgdoc"
)

// Detect re-derives the placements already present in a plan's markup so
// they can be re-selected and edited after reload. Groups missing the
// opening attributes are skipped rather than guessed at.
func Detect(doc *svgdoc.Node) []Placement {
	layer := doc.FindByID(svgdoc.OpeningsLayerID)
	if layer == nil {
		return nil
	}

	var placements []Placement
	for _, group := range layer.Children {
		if group.OpeningID == "" || group.OpeningKind == "" || group.OpeningWall == "" {
			continue
		}
		width := svgdoc.ParseNumber(group.OpeningWidth)
		if width <= 0 {
			continue
		}
		pos := svgdoc.ParseNumber(group.OpeningPos)
		if pos < 0 || pos > 1 {
			// hand-edited markup; an off-wall center is unusable
			continue
		}
		placements = append(placements, Placement{
			ID:          group.OpeningID,
			Kind:        catalog.Kind(group.OpeningKind),
			WallID:      group.OpeningWall,
			Position:    pos,
			WidthInches: width,
			Swing:       Swing(group.OpeningSwing),
		})
	}
	return placements
}
