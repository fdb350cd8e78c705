package design

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngSquare returns an opaque single-color PNG of the given size,
// used as stand-in artwork throughout the package tests.
func pngSquare(t *testing.T, size int, c color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newSessionWithAsset(t *testing.T) (*Session, *Asset) {
	t.Helper()
	s := NewSession(ProductTShirt, ColorWhite)
	asset, err := s.AddAsset(pngSquare(t, 64, color.NRGBA{R: 255, A: 255}), "art.png")
	require.NoError(t, err)
	return s, asset
}

func TestAddAssetDecodesImage(t *testing.T) {
	s, asset := newSessionWithAsset(t)

	assert.NotEmpty(t, asset.ID)
	assert.Equal(t, "art.png", asset.Name)
	require.NotNil(t, asset.Image)
	assert.Equal(t, 64, asset.Image.Bounds().Dx())
	assert.Len(t, s.Assets(), 1)
}

func TestAddAssetRejectsGarbage(t *testing.T) {
	s := NewSession(ProductTShirt, ColorWhite)
	_, err := s.AddAsset([]byte("not an image"), "bad.png")
	assert.Error(t, err)
	assert.Empty(t, s.Assets())
}

func TestAddPlacementDefaultsAndSelection(t *testing.T) {
	s, asset := newSessionWithAsset(t)

	p, err := s.AddPlacement(asset.ID, SideFront)
	require.NoError(t, err)

	assert.Equal(t, DefaultX, p.X)
	assert.Equal(t, DefaultY, p.Y)
	assert.Equal(t, DefaultScale, p.Scale)
	assert.Equal(t, SideFront, p.Side)

	// A new placement becomes the current selection.
	sel := s.Selected()
	require.NotNil(t, sel)
	assert.Equal(t, p.ID, sel.ID)
}

func TestAddPlacementUnknownAsset(t *testing.T) {
	s := NewSession(ProductTShirt, ColorWhite)
	_, err := s.AddPlacement("no-such-asset", SideFront)
	assert.ErrorIs(t, err, ErrUnknownAsset)
}

func TestUpdatePositionClampsUnderRepeatedDrag(t *testing.T) {
	s, asset := newSessionWithAsset(t)
	p, err := s.AddPlacement(asset.ID, SideFront)
	require.NoError(t, err)

	// Dragging far past the right edge must pin at the boundary no
	// matter how many deltas arrive.
	for i := 0; i < 50; i++ {
		s.UpdatePosition(p.ID, 10, 10)
		assert.LessOrEqual(t, p.X, 100.0)
		assert.LessOrEqual(t, p.Y, 100.0)
	}
	assert.Equal(t, 100.0, p.X)
	assert.Equal(t, 100.0, p.Y)

	// And dragging back must respond immediately, with no pent-up
	// overshoot to burn off.
	s.UpdatePosition(p.ID, -5, -5)
	assert.Equal(t, 95.0, p.X)
	assert.Equal(t, 95.0, p.Y)

	s.UpdatePosition(p.ID, -1000, -1000)
	assert.Equal(t, 0.0, p.X)
	assert.Equal(t, 0.0, p.Y)
}

func TestUpdateScaleBounds(t *testing.T) {
	s, asset := newSessionWithAsset(t)
	p, err := s.AddPlacement(asset.ID, SideFront)
	require.NoError(t, err)

	s.UpdateScale(p.ID, 10)
	assert.Equal(t, MaxScale, p.Scale)

	s.UpdateScale(p.ID, -10)
	assert.Equal(t, MinScale, p.Scale)

	s.UpdateScale(p.ID, 0.3)
	assert.InDelta(t, 0.5, p.Scale, 1e-9)
}

func TestMutationsOnUnknownIDAreNoOps(t *testing.T) {
	s, asset := newSessionWithAsset(t)
	p, err := s.AddPlacement(asset.ID, SideFront)
	require.NoError(t, err)

	s.UpdatePosition("nope", 10, 10)
	s.UpdateScale("nope", 1)
	s.RemovePlacement("nope")
	s.RemoveAsset("nope")

	assert.Equal(t, DefaultX, p.X)
	assert.Equal(t, DefaultScale, p.Scale)
	assert.Len(t, s.Assets(), 1)
	assert.Len(t, s.Placements(), 1)
}

func TestRemoveAssetCascades(t *testing.T) {
	s, asset := newSessionWithAsset(t)
	other, err := s.AddAsset(pngSquare(t, 32, color.NRGBA{B: 255, A: 255}), "other.png")
	require.NoError(t, err)

	p1, err := s.AddPlacement(asset.ID, SideFront)
	require.NoError(t, err)
	_, err = s.AddPlacement(asset.ID, SideBack)
	require.NoError(t, err)
	p3, err := s.AddPlacement(other.ID, SideFront)
	require.NoError(t, err)

	s.SetSelected(p1.ID)
	s.RemoveAsset(asset.ID)

	assert.Nil(t, s.AssetByID(asset.ID))
	require.Len(t, s.Placements(), 1)
	assert.Equal(t, p3.ID, s.Placements()[0].ID)
	// Selection pointed at a removed placement, so it is cleared.
	assert.Nil(t, s.Selected())
}

func TestRemovePlacementClearsSelection(t *testing.T) {
	s, asset := newSessionWithAsset(t)
	p, err := s.AddPlacement(asset.ID, SideFront)
	require.NoError(t, err)

	s.RemovePlacement(p.ID)
	assert.Empty(t, s.Placements())
	assert.Nil(t, s.Selected())
	assert.Len(t, s.Assets(), 1)
}

func TestPlacementsOnFiltersBySide(t *testing.T) {
	s, asset := newSessionWithAsset(t)
	_, err := s.AddPlacement(asset.ID, SideFront)
	require.NoError(t, err)
	_, err = s.AddPlacement(asset.ID, SideBack)
	require.NoError(t, err)
	_, err = s.AddPlacement(asset.ID, SideFront)
	require.NoError(t, err)

	assert.Len(t, s.PlacementsOn(SideFront), 2)
	assert.Len(t, s.PlacementsOn(SideBack), 1)
}

func TestResetKeepsGarmentConfig(t *testing.T) {
	s, asset := newSessionWithAsset(t)
	_, err := s.AddPlacement(asset.ID, SideFront)
	require.NoError(t, err)
	s.Name = "Summer Tee"
	s.Tags = []string{"summer"}

	s.Reset()

	assert.True(t, s.Empty())
	assert.Empty(t, s.Assets())
	assert.Nil(t, s.Selected())
	assert.Empty(t, s.Name)
	assert.Empty(t, s.Tags)
	assert.Equal(t, ProductTShirt, s.Product)
	assert.Equal(t, ColorWhite, s.Color)
}
