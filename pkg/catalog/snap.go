package catalog

import (
	"math"
	"sort"

	"planedit/pkg/cfg"
)

// Widths returns the sorted distinct widths available for a group.
func Widths(assets []Asset, group Group) []float64 {
	seen := map[float64]bool{}
	var widths []float64
	for _, a := range assets {
		if a.Group() != group || seen[a.WidthInches] {
			continue
		}
		seen[a.WidthInches] = true
		widths = append(widths, a.WidthInches)
	}
	sort.Float64s(widths)
	return widths
}

// ClosestWidth returns the catalog width nearest to width for the group,
// regardless of distance. The second return is false when the group has no
// widths at all.
func ClosestWidth(assets []Asset, group Group, width float64) (float64, bool) {
	best := 0.0
	bestDist := math.Inf(1)
	found := false
	for _, w := range Widths(assets, group) {
		if d := math.Abs(w - width); d < bestDist {
			best = w
			bestDist = d
			found = true
		}
	}
	return best, found
}

// Snap coerces width to the nearest catalog width for the group when it is
// within the snap tolerance. The second return is false when no catalog
// width is close enough.
func Snap(assets []Asset, group Group, width float64) (float64, bool) {
	best, found := ClosestWidth(assets, group, width)
	if !found || math.Abs(best-width) > cfg.SnapToleranceInches {
		return 0, false
	}
	return best, true
}

// BestMatch resolves the asset for a snapped width within a group, honoring
// the wall type and the half-swing preference. Exterior-only assets never
// match an interior wall. Ties resolve to the first manifest entry.
func BestMatch(assets []Asset, group Group, widthInches float64, wallExterior, halfSwing bool) (Asset, bool) {
	var best Asset
	bestScore := math.Inf(-1)
	found := false
	for _, a := range assets {
		if a.Group() != group {
			continue
		}
		if a.Exterior() && !wallExterior {
			continue
		}
		if a.WidthInches != widthInches {
			continue
		}
		score := 0.0
		if a.HalfSwing == halfSwing {
			score++
		}
		if score > bestScore {
			best = a
			bestScore = score
			found = true
		}
	}
	return best, found
}
