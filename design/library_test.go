package design

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFallbackChain(t *testing.T) {
	lib := NewBaseLibrary()
	white := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	black := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	lib.Add(ProductTShirt, ColorWhite, SideFront, white)
	lib.Add(ProductTShirt, ColorBlack, SideFront, black)

	img, exact, err := lib.Resolve(ProductTShirt, ColorBlack, SideFront)
	require.NoError(t, err)
	assert.True(t, exact)
	assert.Equal(t, 20, img.Bounds().Dx())

	// No red variant: fall back to white, flagged for tinting.
	img, exact, err = lib.Resolve(ProductTShirt, ColorRed, SideFront)
	require.NoError(t, err)
	assert.False(t, exact)
	assert.Equal(t, 10, img.Bounds().Dx())

	_, _, err = lib.Resolve(ProductTShirt, ColorRed, SideBack)
	assert.ErrorIs(t, err, ErrMissingBaseAsset)

	_, _, err = lib.Resolve(ProductHoodie, ColorWhite, SideFront)
	assert.ErrorIs(t, err, ErrMissingBaseAsset)
}

func TestSweatshirtSharesHoodieFamily(t *testing.T) {
	lib := NewBaseLibrary()
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	lib.Add(ProductHoodie, ColorWhite, SideFront, img)

	_, _, err := lib.Resolve(ProductSweatshirt, ColorWhite, SideFront)
	assert.NoError(t, err)

	// Registration normalizes the other way around too.
	lib.Add(ProductSweatshirt, ColorWhite, SideBack, img)
	_, _, err = lib.Resolve(ProductHoodie, ColorWhite, SideBack)
	assert.NoError(t, err)

	assert.Equal(t, 2, lib.Len())
}

func TestLoadBaseLibrary(t *testing.T) {
	dir := t.TempDir()
	art := pngSquare(t, 8, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	for _, name := range []string{
		"tshirt_white_front.png",
		"tshirt_white_back.png",
		"hoodie_black_front.png",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), art, 0o644))
	}
	// Non-garment clutter is tolerated.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.txt"), []byte("notes"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tshirt_purple_front.png"), art, 0o644))

	lib, err := LoadBaseLibrary(dir)
	require.NoError(t, err)
	assert.Equal(t, 3, lib.Len())

	_, exact, err := lib.Resolve(ProductTShirt, ColorWhite, SideFront)
	require.NoError(t, err)
	assert.True(t, exact)

	_, exact, err = lib.Resolve(ProductHoodie, ColorBlack, SideFront)
	require.NoError(t, err)
	assert.True(t, exact)
}

func TestLoadBaseLibraryMissingDir(t *testing.T) {
	_, err := LoadBaseLibrary(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestLoadBaseLibraryNoUsableAssets(t *testing.T) {
	// A directory with nothing the compositor can use must refuse to
	// load rather than hand back a library that fails every render.
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.txt"), []byte("notes"), 0o644))

	_, err := LoadBaseLibrary(dir)
	assert.ErrorContains(t, err, "no usable garment assets")
}
