package design

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"
)

// Position and scale bounds enforced on every mutation.
const (
	DefaultX     = 40.0
	DefaultY     = 30.0
	DefaultScale = 1.0
	MinScale     = 0.2
	MaxScale     = 3.0
)

// Asset is an image the user uploaded into the studio. The session owns
// the raw bytes until the asset is removed or the session ends; the
// decoded image is kept alongside so the compositor never re-decodes.
type Asset struct {
	ID    string
	Name  string
	Data  []byte
	Image image.Image
}

// Placement is one instance of an asset rendered on a garment side.
// X and Y are percentages (0-100) of the printable container; Scale is a
// multiple of the fixed base width. Rotation is reserved and currently
// always zero.
type Placement struct {
	ID       string
	AssetID  string
	Side     Side
	X        float64
	Y        float64
	Scale    float64
	Rotation float64
}

// Session holds one design-studio editing session: the garment
// configuration, the uploaded assets, and their placements in creation
// order. A session is single-threaded by design — it mirrors an event-loop
// driven editor — so none of its methods lock.
type Session struct {
	Product ProductType
	Color   GarmentColor
	Name    string
	Tags    []string

	assets     []*Asset
	placements []*Placement
	selectedID string
}

// NewSession creates an empty session for the given garment configuration.
func NewSession(product ProductType, garmentColor GarmentColor) *Session {
	return &Session{
		Product: product,
		Color:   garmentColor,
	}
}

// AddAsset registers uploaded image bytes as a new asset. The bytes are
// decoded eagerly so a corrupt upload is rejected before it can be placed.
func (s *Session) AddAsset(data []byte, name string) (*Asset, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode uploaded image %q: %w", name, err)
	}

	asset := &Asset{
		ID:    uuid.NewString(),
		Name:  name,
		Data:  data,
		Image: img,
	}
	s.assets = append(s.assets, asset)
	return asset, nil
}

// RemoveAsset drops an asset and cascades removal of every placement that
// references it. Selection is cleared if the cascade took the selected
// placement with it. Unknown ids are a no-op.
func (s *Session) RemoveAsset(assetID string) {
	kept := s.assets[:0]
	for _, a := range s.assets {
		if a.ID != assetID {
			kept = append(kept, a)
		}
	}
	s.assets = kept

	keptPlacements := s.placements[:0]
	for _, p := range s.placements {
		if p.AssetID != assetID {
			keptPlacements = append(keptPlacements, p)
			continue
		}
		if s.selectedID == p.ID {
			s.selectedID = ""
		}
	}
	s.placements = keptPlacements
}

// AddPlacement places an asset on a side at the default position and scale
// and selects it for editing. Placing an asset that is not part of the
// session is a precondition violation.
func (s *Session) AddPlacement(assetID string, side Side) (*Placement, error) {
	if s.AssetByID(assetID) == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAsset, assetID)
	}

	p := &Placement{
		ID:      uuid.NewString(),
		AssetID: assetID,
		Side:    side,
		X:       DefaultX,
		Y:       DefaultY,
		Scale:   DefaultScale,
	}
	s.placements = append(s.placements, p)
	s.selectedID = p.ID
	return p, nil
}

// RemovePlacement removes a single placement, clearing selection if it was
// selected. Unknown ids are a no-op.
func (s *Session) RemovePlacement(placementID string) {
	kept := s.placements[:0]
	for _, p := range s.placements {
		if p.ID != placementID {
			kept = append(kept, p)
		}
	}
	s.placements = kept
	if s.selectedID == placementID {
		s.selectedID = ""
	}
}

// UpdatePosition moves a placement by a percentage delta, clamped to the
// container. No-op for unknown ids.
func (s *Session) UpdatePosition(placementID string, dx, dy float64) {
	p := s.PlacementByID(placementID)
	if p == nil {
		return
	}
	p.X = Clamp(p.X+dx, 0, 100)
	p.Y = Clamp(p.Y+dy, 0, 100)
}

// UpdateScale grows or shrinks a placement, clamped to [MinScale,
// MaxScale]. No-op for unknown ids.
func (s *Session) UpdateScale(placementID string, delta float64) {
	p := s.PlacementByID(placementID)
	if p == nil {
		return
	}
	p.Scale = Clamp(p.Scale+delta, MinScale, MaxScale)
}

// SetSelected marks a placement as the one being edited. An empty id
// clears the selection.
func (s *Session) SetSelected(placementID string) {
	s.selectedID = placementID
}

// Selected returns the currently selected placement, or nil.
func (s *Session) Selected() *Placement {
	return s.PlacementByID(s.selectedID)
}

// AssetByID returns the asset with the given id, or nil.
func (s *Session) AssetByID(id string) *Asset {
	for _, a := range s.assets {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// PlacementByID returns the placement with the given id, or nil.
func (s *Session) PlacementByID(id string) *Placement {
	for _, p := range s.placements {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Assets returns the session's assets in upload order.
func (s *Session) Assets() []*Asset {
	return s.assets
}

// Placements returns every placement in creation order, which is also the
// compositing draw order.
func (s *Session) Placements() []*Placement {
	return s.placements
}

// PlacementsOn returns the placements of one side, in creation order.
func (s *Session) PlacementsOn(side Side) []*Placement {
	var out []*Placement
	for _, p := range s.placements {
		if p.Side == side {
			out = append(out, p)
		}
	}
	return out
}

// Empty reports whether there is nothing placed on either side.
func (s *Session) Empty() bool {
	return len(s.placements) == 0
}

// Reset clears assets, placements, selection and metadata after a
// successful submission. The garment configuration itself is kept.
func (s *Session) Reset() {
	s.assets = nil
	s.placements = nil
	s.selectedID = ""
	s.Name = ""
	s.Tags = nil
}
