package interaction

import (
	"context"

	"github.com/google/uuid"

	"planedit/pkg/catalog"
	"planedit/pkg/placement"
	"planedit/pkg/walls"
)

// Status is the render job's status vocabulary. The core interprets these;
// it does not define the transport that delivers them.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRendering Status = "rendering"
	StatusBlending  Status = "blending"
	StatusComplete  Status = "complete"
	StatusFailed    Status = "failed"
)

// Terminal reports whether the status ends the job.
func (s Status) Terminal() bool {
	return s == StatusComplete || s == StatusFailed
}

// WallGeometry is the wall snapshot a render job needs to cut the opening.
type WallGeometry struct {
	ID       string  `json:"id"`
	StartX   float64 `json:"start_x"`
	StartY   float64 `json:"start_y"`
	EndX     float64 `json:"end_x"`
	EndY     float64 `json:"end_y"`
	Exterior bool    `json:"exterior"`
}

// RenderRequest is everything the external render job needs to produce a
// new raster with the opening baked in.
type RenderRequest struct {
	JobID   string              `json:"job_id"`
	PlanID  string              `json:"plan_id"`
	Markup  []byte              `json:"markup"`
	Raster  []byte              `json:"raster"`
	Opening placement.Placement `json:"opening"`
	Wall    WallGeometry        `json:"wall"`
	Asset   catalog.Asset       `json:"asset"`
}

// JobResult is a status update for a submitted job. RenderedRaster is only
// present on completion.
type JobResult struct {
	JobID          string `json:"job_id"`
	Status         Status `json:"status"`
	RenderedRaster []byte `json:"rendered_raster,omitempty"`
	Error          string `json:"error,omitempty"`
}

// JobRunner submits render jobs. Submission is fire-and-forget; status
// updates arrive later through whatever channel the caller wires up.
type JobRunner interface {
	Submit(ctx context.Context, req RenderRequest) error
}

// BuildRequest assembles a render request for a confirmed placement.
func BuildRequest(planID string, markup, raster []byte, p placement.Placement, wall walls.Wall, asset catalog.Asset) RenderRequest {
	return RenderRequest{
		JobID:   uuid.NewString(),
		PlanID:  planID,
		Markup:  markup,
		Raster:  raster,
		Opening: p,
		Wall: WallGeometry{
			ID:       wall.ID,
			StartX:   wall.Start.X,
			StartY:   wall.Start.Y,
			EndX:     wall.End.X,
			EndY:     wall.End.Y,
			Exterior: wall.Exterior,
		},
		Asset: asset,
	}
}
