package design

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/disintegration/imaging"
)

// Output canvas dimensions for the rendered product shots.
const (
	CanvasWidth  = 800
	CanvasHeight = 1000
)

// The printable container is a fixed sub-rectangle of the fitted base
// garment: left 20%, top 15%, width 60%, height 70% of the drawn (not
// canvas) dimensions. Placement coordinates are percentages of this
// rectangle, and a placement at scale 1 is 30% of its width.
const (
	printableLeft   = 0.20
	printableTop    = 0.15
	printableWidth  = 0.60
	printableHeight = 0.70
	baseDesignWidth = 0.30
)

// SideImages is the compositor output: one encoded PNG per garment side.
type SideImages struct {
	Front []byte
	Back  []byte
}

// Compositor rasterizes a session's layered placements over the base
// garment artwork. Compositing reads the session synchronously and is
// fully deterministic: the same session composites to byte-identical
// output.
type Compositor struct {
	library *BaseLibrary
}

// NewCompositor creates a compositor over a base garment library.
func NewCompositor(library *BaseLibrary) *Compositor {
	return &Compositor{library: library}
}

// Composite renders both sides of the garment. A session with zero
// placements across both sides is ErrEmptyDesign; a garment with no base
// image (not even the white fallback) is ErrMissingBaseAsset.
func (c *Compositor) Composite(session *Session) (*SideImages, error) {
	if session.Empty() {
		return nil, ErrEmptyDesign
	}

	front, err := c.CompositeSide(session, SideFront)
	if err != nil {
		return nil, err
	}
	back, err := c.CompositeSide(session, SideBack)
	if err != nil {
		return nil, err
	}

	return &SideImages{Front: front, Back: back}, nil
}

// CompositeSide renders a single side to an encoded PNG.
func (c *Compositor) CompositeSide(session *Session, side Side) ([]byte, error) {
	baseImg, exact, err := c.library.Resolve(session.Product, session.Color, side)
	if err != nil {
		return nil, err
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight))

	// Fit the base garment into the canvas preserving aspect ratio
	// ("contain"), centered.
	baseBounds := baseImg.Bounds()
	baseW := float64(baseBounds.Dx())
	baseH := float64(baseBounds.Dy())
	if baseW <= 0 || baseH <= 0 {
		return nil, fmt.Errorf("%w: base image for %s/%s has no pixels", ErrMissingBaseAsset, session.Product, side)
	}

	scaleFactor := CanvasWidth / baseW
	if h := CanvasHeight / baseH; h < scaleFactor {
		scaleFactor = h
	}
	drawW := int(baseW*scaleFactor + 0.5)
	drawH := int(baseH*scaleFactor + 0.5)
	offsetX := (CanvasWidth - drawW) / 2
	offsetY := (CanvasHeight - drawH) / 2

	fitted := imaging.Resize(baseImg, drawW, drawH, imaging.Lanczos)
	draw.Draw(canvas, image.Rect(offsetX, offsetY, offsetX+drawW, offsetY+drawH), fitted, image.Point{}, draw.Over)

	// Tint only when no dedicated colored variant existed. The tint is a
	// multiply fill masked to the base image's own alpha channel, so
	// garment pixels darken toward the palette color while the background
	// outside the silhouette stays untouched.
	if !exact && session.Color != ColorWhite {
		tintGarment(canvas, fitted, offsetX, offsetY, Palette[session.Color])
	}

	containerX := float64(offsetX) + float64(drawW)*printableLeft
	containerY := float64(offsetY) + float64(drawH)*printableTop
	containerW := float64(drawW) * printableWidth
	containerH := float64(drawH) * printableHeight

	// Placements paint in creation order: later placements land on top.
	for _, p := range session.PlacementsOn(side) {
		asset := session.AssetByID(p.AssetID)
		if asset == nil {
			// Dangling reference; the session cascades removals so this
			// only happens on an internal bug. Skip rather than fail.
			continue
		}

		assetBounds := asset.Image.Bounds()
		if assetBounds.Dx() <= 0 || assetBounds.Dy() <= 0 {
			continue
		}

		designW := containerW * baseDesignWidth * p.Scale
		designH := designW * float64(assetBounds.Dy()) / float64(assetBounds.Dx())
		widthPx := int(designW + 0.5)
		heightPx := int(designH + 0.5)
		if widthPx < 1 || heightPx < 1 {
			continue
		}

		resized := imaging.Resize(asset.Image, widthPx, heightPx, imaging.Lanczos)

		centerX := containerX + containerW*p.X/100
		centerY := containerY + containerH*p.Y/100
		drawX := int(centerX - designW/2 + 0.5)
		drawY := int(centerY - designH/2 + 0.5)

		draw.Draw(canvas, image.Rect(drawX, drawY, drawX+widthPx, drawY+heightPx), resized, image.Point{}, draw.Over)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("failed to encode %s composite: %w", side, err)
	}
	return buf.Bytes(), nil
}

// tintGarment multiplies tint into the canvas region covered by the fitted
// base image, weighted by the base's alpha so soft edges tint softly.
func tintGarment(canvas *image.NRGBA, fitted *image.NRGBA, offsetX, offsetY int, tint color.NRGBA) {
	bounds := fitted.Bounds()
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			maskIdx := fitted.PixOffset(x, y)
			alpha := uint32(fitted.Pix[maskIdx+3])
			if alpha == 0 {
				continue
			}

			idx := canvas.PixOffset(offsetX+x, offsetY+y)
			canvas.Pix[idx+0] = blendMultiply(canvas.Pix[idx+0], tint.R, alpha)
			canvas.Pix[idx+1] = blendMultiply(canvas.Pix[idx+1], tint.G, alpha)
			canvas.Pix[idx+2] = blendMultiply(canvas.Pix[idx+2], tint.B, alpha)
		}
	}
}

// blendMultiply mixes base toward base*tint by the mask alpha.
func blendMultiply(base, tint byte, alpha uint32) byte {
	multiplied := uint32(base) * uint32(tint) / 255
	out := (uint32(base)*(255-alpha) + multiplied*alpha) / 255
	return byte(out)
}
