package interaction

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"planedit/pkg/catalog"
	"planedit/pkg/coords"
	"planedit/pkg/placement"
	"planedit/pkg/walls"
)

// Session owns the single active interaction for one plan: the wall index,
// the current mapper generation, the working set of placements, and the
// state machine instance. Events are processed one at a time in arrival
// order; a second wall click while an interaction is mid-flight is
// rejected, not raced.
type Session struct {
	Index  *walls.Index
	Mapper coords.Mapper
	Assets []catalog.Asset

	State      State
	Placements []placement.Placement

	pending    placement.Placement
	hasPending bool
}

func NewSession(index *walls.Index, mapper coords.Mapper, assets []catalog.Asset) *Session {
	return &Session{
		Index:  index,
		Mapper: mapper,
		Assets: assets,
		State:  Idle(),
	}
}

// Rekey swaps in the mapper for a new raster generation. Must be called
// whenever the raster's pixel dimensions change between renders.
func (sess *Session) Rekey(mapper coords.Mapper) {
	sess.Mapper = mapper
}

// Click starts an interaction at a vector-space point, resolving the wall
// under the click. A click during an active interaction is rejected.
func (sess *Session) Click(pt coords.VectorPoint, group catalog.Group, now time.Time) error {
	if sess.State.Phase != PhaseIdle {
		return fmt.Errorf("interaction already active in phase %s", sess.State.Phase)
	}
	wall := sess.Index.Nearest(pt.Point(), 0)
	if wall == nil {
		return errors.New("no wall near click")
	}
	next, err := Begin(sess.State, wall, pt, group, sess.Assets, sess.Mapper.Generation(), now)
	if err != nil {
		return err
	}
	sess.State = next
	return nil
}

func (sess *Session) PointerMove(pt coords.VectorPoint) error {
	next, err := Move(sess.State, pt, sess.Assets, sess.Mapper.Generation())
	if err != nil {
		return err
	}
	sess.State = next
	return nil
}

func (sess *Session) PointerUp(now time.Time) error {
	next, err := Release(sess.State, sess.Assets, now)
	if err != nil {
		return err
	}
	sess.State = next
	return nil
}

// Confirm finalizes the draft, adds the tentative placement to the working
// set, and returns it so the caller can submit the render job. The
// placement stays tentative until the job reports a terminal status.
func (sess *Session) Confirm() (placement.Placement, error) {
	next, p, err := Confirm(sess.State, uuid.NewString(), sess.Placements)
	if err != nil {
		return placement.Placement{}, err
	}
	sess.State = next
	sess.pending = p
	sess.hasPending = true
	sess.Placements = append(sess.Placements, p)
	return p, nil
}

func (sess *Session) Cancel() error {
	next, err := Cancel(sess.State)
	if err != nil {
		return err
	}
	sess.State = next
	return nil
}

// HandleStatus applies a render-job status update. On failure the tentative
// placement is removed from the working set entirely.
func (sess *Session) HandleStatus(status Status) error {
	next, rollback, err := JobUpdate(sess.State, status)
	if err != nil {
		return err
	}
	sess.State = next

	if !status.Terminal() {
		return nil
	}
	if rollback && sess.hasPending {
		for i, p := range sess.Placements {
			if p.ID == sess.pending.ID {
				sess.Placements = append(sess.Placements[:i], sess.Placements[i+1:]...)
				break
			}
		}
	}
	sess.pending = placement.Placement{}
	sess.hasPending = false
	return nil
}
