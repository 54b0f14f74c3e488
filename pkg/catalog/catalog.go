// Package catalog provides the door/window/garage asset manifest. The
// provider is an explicitly constructed value with its own cache lifetime;
// nothing here is process-global.
package catalog

import (
	"encoding/json"
	"fmt"
	"io"
)

// Kind enumerates every opening variety the editor can place.
type Kind string

const (
	KindExteriorSingleDoor Kind = "exterior_single_door"
	KindExteriorDoubleDoor Kind = "exterior_double_door"
	KindInteriorSingleDoor Kind = "interior_single_door"
	KindInteriorDoubleDoor Kind = "interior_double_door"
	KindSlidingDoor        Kind = "sliding_door"
	KindBifoldDoor         Kind = "bifold_door"
	KindGarageSingle       Kind = "garage_single"
	KindGarageDouble       Kind = "garage_double"
	KindWindow             Kind = "window"
	KindBayWindow          Kind = "bay_window"
)

// Group is the coarse category a kind belongs to.
type Group string

const (
	GroupDoor   Group = "door"
	GroupWindow Group = "window"
	GroupGarage Group = "garage"
)

func (k Kind) Group() Group {
	switch k {
	case KindGarageSingle, KindGarageDouble:
		return GroupGarage
	case KindWindow, KindBayWindow:
		return GroupWindow
	default:
		return GroupDoor
	}
}

// RequiresExterior reports whether the kind may only be placed on an
// exterior wall.
func (k Kind) RequiresExterior() bool {
	switch k {
	case KindExteriorSingleDoor, KindExteriorDoubleDoor, KindSlidingDoor,
		KindGarageSingle, KindGarageDouble, KindWindow, KindBayWindow:
		return true
	}
	return false
}

// HasSwing reports whether the kind renders a door swing.
func (k Kind) HasSwing() bool {
	switch k {
	case KindExteriorSingleDoor, KindExteriorDoubleDoor,
		KindInteriorSingleDoor, KindInteriorDoubleDoor, KindBifoldDoor:
		return true
	}
	return false
}

// Asset is one catalog entry: a pre-authored opening graphic with a
// physical width. Entries are immutable once loaded.
type Asset struct {
	ID          string  `json:"id"`
	Filename    string  `json:"filename"`
	Kind        Kind    `json:"kind"`
	WidthInches float64 `json:"width_inches"`
	HalfSwing   bool    `json:"half_swing,omitempty"`
}

func (a Asset) Group() Group {
	return a.Kind.Group()
}

func (a Asset) Exterior() bool {
	return a.Kind.RequiresExterior()
}

// Provider exposes the available assets.
type Provider interface {
	Assets() ([]Asset, error)
}

// ManifestProvider loads a JSON manifest once and caches it for its own
// lifetime. Invalidate drops the cache so the next call reloads.
type ManifestProvider struct {
	// Open returns a fresh reader over the manifest bytes.
	Open func() (io.ReadCloser, error)

	cached []Asset
	loaded bool
}

func NewManifestProvider(open func() (io.ReadCloser, error)) *ManifestProvider {
	return &ManifestProvider{Open: open}
}

func (p *ManifestProvider) Assets() ([]Asset, error) {
	if p.loaded {
		return p.cached, nil
	}
	r, err := p.Open()
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer r.Close()

	var manifest struct {
		Assets []Asset `json:"assets"`
	}
	if err := json.NewDecoder(r).Decode(&manifest); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	for i, a := range manifest.Assets {
		if a.Kind == "" || a.WidthInches <= 0 {
			return nil, fmt.Errorf("manifest entry %d (%s) missing kind or width", i, a.ID)
		}
	}
	p.cached = manifest.Assets
	p.loaded = true
	return p.cached, nil
}

func (p *ManifestProvider) Invalidate() {
	p.cached = nil
	p.loaded = false
}

// StaticProvider serves a fixed asset list, mainly for tests.
type StaticProvider []Asset

func (p StaticProvider) Assets() ([]Asset, error) {
	return p, nil
}
