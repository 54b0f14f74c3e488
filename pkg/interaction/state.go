// Package interaction drives the pointer-drag placement flow: size an
// opening by dragging along a wall, snap to catalog sizes, pick a type and
// swing in the draft phase, then hand off to the asynchronous render job.
//
// State is an explicit value: every transition takes the current state and
// returns the next one, so each edge is unit-testable in isolation. The
// only legal edges are idle→dragging, idle→draft, dragging→draft,
// draft→rendering, rendering→idle, dragging→idle, and draft→idle.
package interaction

import (
	"errors"
	"fmt"
	"math"
	"time"

	"planedit/pkg/catalog"
	"planedit/pkg/cfg"
	"planedit/pkg/coords"
	"planedit/pkg/placement"
	"planedit/pkg/walls"
)

type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseDragging  Phase = "dragging"
	PhaseDraft     Phase = "draft"
	PhaseRendering Phase = "rendering"
)

// ErrIllegalTransition marks an edge outside the state machine's graph.
// Hitting it is a programming error in the caller, not a user-reachable
// outcome.
var ErrIllegalTransition = errors.New("illegal transition")

// State is one interaction's transient state. The zero value is not valid;
// start from Idle.
type State struct {
	Phase Phase

	Wall       *walls.Wall
	Group      catalog.Group
	Center     float64 // position along the wall, 0-1
	ClickPoint coords.VectorPoint
	PressedAt  time.Time
	MapperGen  int

	StartWidth   float64 // inches, at drag start
	CurrentWidth float64 // inches, raw from pointer delta
	SnappedWidth float64 // inches, valid only when Snapped
	Snapped      bool
	Matched      catalog.Asset
	HasMatch     bool
	Swing        placement.Swing
}

func Idle() State {
	return State{Phase: PhaseIdle}
}

func illegal(event string, phase Phase) error {
	return fmt.Errorf("%w: %s in phase %s", ErrIllegalTransition, event, phase)
}

// Begin starts an interaction from a wall click. Width-bearing groups
// (windows) enter the dragging phase with live width tracking; doors and
// garage doors have no drag phase and jump straight to draft at the default
// width.
func Begin(s State, wall *walls.Wall, click coords.VectorPoint, group catalog.Group, assets []catalog.Asset, mapperGen int, now time.Time) (State, error) {
	if s.Phase != PhaseIdle {
		return s, illegal("begin", s.Phase)
	}
	if wall == nil {
		return s, errors.New("begin: no wall")
	}

	next := State{
		Phase:        PhaseDragging,
		Wall:         wall,
		Group:        group,
		Center:       wall.ProjectT(click.Point()),
		ClickPoint:   click,
		PressedAt:    now,
		MapperGen:    mapperGen,
		StartWidth:   cfg.DefaultOpeningWidthInches,
		CurrentWidth: cfg.DefaultOpeningWidthInches,
	}
	next.CurrentWidth = clampWidth(next, next.StartWidth)

	if group == catalog.GroupDoor || group == catalog.GroupGarage {
		// Single-click kinds: no drag phase.
		next.Phase = PhaseDraft
		next = resnap(next, assets)
	}
	return next, nil
}

// Move updates the live width from a pointer position while dragging. The
// signed pointer delta is projected onto the wall direction; the width
// changes at twice the projected delta because the drag measures one side
// of a symmetric opening. Pulling against the wall direction shrinks the
// opening below its starting width, down to the configured minimum.
func Move(s State, pointer coords.VectorPoint, assets []catalog.Asset, mapperGen int) (State, error) {
	if s.Phase != PhaseDragging {
		return s, illegal("move", s.Phase)
	}
	if mapperGen != s.MapperGen {
		return s, fmt.Errorf("move: pointer from mapper generation %d, interaction started on %d", mapperGen, s.MapperGen)
	}

	delta := pointer.Point().Minus(s.ClickPoint.Point()).Dot(s.Wall.Direction())
	deltaInches := delta / cfg.UnitsPerInch

	s.CurrentWidth = clampWidth(s, s.StartWidth+2*deltaInches)
	return resnap(s, assets), nil
}

// clampWidth bounds a raw width to the configured minimum and to the widest
// opening that can fit at the current center: the smaller of the wall length
// and twice the distance from the center to the nearer wall end.
func clampWidth(s State, widthInches float64) float64 {
	length := s.Wall.Length()
	centerUnits := s.Center * length
	nearest := math.Min(centerUnits, length-centerUnits)
	maxUnits := math.Min(length, 2*nearest)

	width := math.Max(cfg.MinOpeningWidthInches, widthInches)
	return math.Min(width, maxUnits/cfg.UnitsPerInch)
}

// Release ends the drag phase. A press-and-release short enough, with
// little enough width change, is a plain click: the width falls back to the
// default rather than keeping an accidental near-zero drag.
func Release(s State, assets []catalog.Asset, now time.Time) (State, error) {
	if s.Phase != PhaseDragging {
		return s, illegal("release", s.Phase)
	}

	if now.Sub(s.PressedAt) < cfg.ShortClickDuration &&
		math.Abs(s.CurrentWidth-s.StartWidth) < cfg.ShortClickWidthDelta {
		s.CurrentWidth = clampWidth(s, cfg.DefaultOpeningWidthInches)
	}

	s.Phase = PhaseDraft
	return resnap(s, assets), nil
}

// Reposition moves the draft center along the wall, bounded so the
// footprint never leaves the wall.
func Reposition(s State, center float64, assets []catalog.Asset) (State, error) {
	if s.Phase != PhaseDraft {
		return s, illegal("reposition", s.Phase)
	}

	halfT := s.CurrentWidth * cfg.UnitsPerInch / 2 / s.Wall.Length()
	s.Center = math.Max(halfT, math.Min(1-halfT, center))
	return resnap(s, assets), nil
}

// SetGroup switches the category group in draft, re-resolving the matched
// asset for the current width.
func SetGroup(s State, group catalog.Group, assets []catalog.Asset) (State, error) {
	if s.Phase != PhaseDraft {
		return s, illegal("set group", s.Phase)
	}
	s.Group = group
	return resnap(s, assets), nil
}

// SetSwing changes the swing direction in draft.
func SetSwing(s State, swing placement.Swing, assets []catalog.Asset) (State, error) {
	if s.Phase != PhaseDraft {
		return s, illegal("set swing", s.Phase)
	}
	s.Swing = swing
	return resnap(s, assets), nil
}

// SetAsset pins an explicit catalog asset in draft, adopting its width.
func SetAsset(s State, asset catalog.Asset) (State, error) {
	if s.Phase != PhaseDraft {
		return s, illegal("set asset", s.Phase)
	}
	s.Group = asset.Group()
	s.CurrentWidth = clampWidth(s, asset.WidthInches)
	if s.CurrentWidth != asset.WidthInches {
		// Asset cannot fit at this position; leave it unmatched.
		s.Snapped = false
		s.HasMatch = false
		return s, nil
	}
	s.SnappedWidth = asset.WidthInches
	s.Snapped = true
	s.Matched = asset
	s.HasMatch = true
	return s, nil
}

// resnap finds the catalog width closest to the current raw width. Within
// tolerance the width snaps and the best matching asset is resolved;
// otherwise no asset is matched and confirmation stays disabled.
func resnap(s State, assets []catalog.Asset) State {
	s.Snapped = false
	s.HasMatch = false
	s.SnappedWidth = 0
	s.Matched = catalog.Asset{}

	snapped, ok := catalog.Snap(assets, s.Group, s.CurrentWidth)
	if !ok {
		return s
	}
	s.SnappedWidth = snapped
	s.Snapped = true

	if asset, found := catalog.BestMatch(assets, s.Group, snapped, s.Wall.Exterior, false); found {
		s.Matched = asset
		s.HasMatch = true
	}
	return s
}

// Confirm finalizes the draft into an OpeningPlacement and moves to the
// rendering phase. Only reachable with a matched asset and a passing
// validation; otherwise the state is returned unchanged with the failure.
func Confirm(s State, id string, existing []placement.Placement) (State, placement.Placement, error) {
	if s.Phase != PhaseDraft {
		return s, placement.Placement{}, illegal("confirm", s.Phase)
	}
	if !s.HasMatch {
		return s, placement.Placement{}, errors.New("confirm: no matched asset")
	}

	p := placement.Placement{
		ID:          id,
		Kind:        s.Matched.Kind,
		WallID:      s.Wall.ID,
		Position:    s.Center,
		WidthInches: s.SnappedWidth,
		Swing:       s.Swing,
	}
	if ok, reason := placement.Validate(p, *s.Wall, existing); !ok {
		return s, placement.Placement{}, &RejectedError{Reason: reason}
	}

	s.Phase = PhaseRendering
	return s, p, nil
}

// RejectedError carries a placement constraint violation out of Confirm so
// the interaction layer can show a specific message.
type RejectedError struct {
	Reason placement.Reason
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("placement rejected: %s", e.Reason)
}

// Cancel abandons the interaction, legal from dragging or draft. All
// transient state is discarded; nothing is partially committed.
func Cancel(s State) (State, error) {
	if s.Phase != PhaseDragging && s.Phase != PhaseDraft {
		return s, illegal("cancel", s.Phase)
	}
	return Idle(), nil
}

// JobUpdate applies a render-job status while rendering. Intermediate
// statuses keep the machine in place; a terminal status returns it to idle.
// The second return reports whether the tentative placement must be rolled
// back (failure is idempotent with cancellation).
func JobUpdate(s State, status Status) (State, bool, error) {
	if s.Phase != PhaseRendering {
		return s, false, illegal(fmt.Sprintf("job status %s", status), s.Phase)
	}
	switch status {
	case StatusPending, StatusRendering, StatusBlending:
		return s, false, nil
	case StatusComplete:
		return Idle(), false, nil
	case StatusFailed:
		return Idle(), true, nil
	default:
		return s, false, fmt.Errorf("unknown job status %q", status)
	}
}
