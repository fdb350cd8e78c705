package design

import (
	"errors"
	"image/color"
)

// Side identifies which face of the garment a placement lives on.
type Side string

const (
	SideFront Side = "front"
	SideBack  Side = "back"
)

// Sides lists both garment sides in compositing order.
var Sides = []Side{SideFront, SideBack}

// ProductType is the garment family offered in the studio.
type ProductType string

const (
	ProductTShirt     ProductType = "T-shirt"
	ProductHoodie     ProductType = "Hoodie"
	ProductSweatshirt ProductType = "Sweatshirt"
)

// AssetFamily returns the base-image family for a product type.
// Sweatshirts share the hoodie artwork since there is no dedicated set.
func (p ProductType) AssetFamily() ProductType {
	if p == ProductSweatshirt {
		return ProductHoodie
	}
	return p
}

// Valid reports whether p is one of the offered product types.
func (p ProductType) Valid() bool {
	switch p {
	case ProductTShirt, ProductHoodie, ProductSweatshirt:
		return true
	}
	return false
}

// GarmentColor is a color from the fixed studio palette.
type GarmentColor string

const (
	ColorWhite GarmentColor = "white"
	ColorBlack GarmentColor = "black"
	ColorRed   GarmentColor = "red"
	ColorBlue  GarmentColor = "blue"
)

// Palette maps each offered color to the fill used when tinting a base
// garment that has no dedicated colored variant.
var Palette = map[GarmentColor]color.NRGBA{
	ColorWhite: {R: 255, G: 255, B: 255, A: 255},
	ColorBlack: {R: 30, G: 30, B: 30, A: 255},
	ColorRed:   {R: 220, G: 38, B: 38, A: 255},
	ColorBlue:  {R: 37, G: 99, B: 235, A: 255},
}

// Valid reports whether c belongs to the palette.
func (c GarmentColor) Valid() bool {
	_, ok := Palette[c]
	return ok
}

// Errors surfaced by the design engine. Precondition violations inside the
// session (unknown placement ids etc.) are silent no-ops and never reach
// these.
var (
	// ErrEmptyDesign means there was nothing to composite: zero placements
	// across both sides at submission time.
	ErrEmptyDesign = errors.New("design: nothing placed on the garment")

	// ErrMissingBaseAsset means the base library has no image for the
	// requested product/side, not even the white fallback.
	ErrMissingBaseAsset = errors.New("design: no base garment image available")

	// ErrUnknownAsset means a placement referenced an asset id that is not
	// part of the session.
	ErrUnknownAsset = errors.New("design: unknown asset id")

	// ErrMissingName means the design metadata was incomplete at submit time.
	ErrMissingName = errors.New("design: name is required")
)
