package design

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/Imraj-Rabbani/GoCart/utils"
)

// BaseKey addresses one base garment image in the library.
type BaseKey struct {
	Product ProductType
	Color   GarmentColor
	Side    Side
}

// BaseLibrary holds the base garment images the compositor layers designs
// onto. Lookups go through an explicit fallback chain (exact color → white
// variant) instead of the stringly-typed key concatenation the studio UI
// grew up with, so a missing asset is a first-class error.
type BaseLibrary struct {
	images map[BaseKey]image.Image
}

// NewBaseLibrary creates an empty library.
func NewBaseLibrary() *BaseLibrary {
	return &BaseLibrary{images: map[BaseKey]image.Image{}}
}

// Add registers a base image. Sweatshirt is normalized to the hoodie
// family before storage.
func (l *BaseLibrary) Add(product ProductType, garmentColor GarmentColor, side Side, img image.Image) {
	key := BaseKey{Product: product.AssetFamily(), Color: garmentColor, Side: side}
	l.images[key] = img
}

// Resolve returns the base image for (product, color, side). exact reports
// whether a dedicated colored variant existed; when it did not, the white
// variant is returned and the caller is expected to tint it. With no white
// variant either, the result is ErrMissingBaseAsset.
func (l *BaseLibrary) Resolve(product ProductType, garmentColor GarmentColor, side Side) (img image.Image, exact bool, err error) {
	family := product.AssetFamily()

	if img, ok := l.images[BaseKey{Product: family, Color: garmentColor, Side: side}]; ok {
		return img, true, nil
	}
	if img, ok := l.images[BaseKey{Product: family, Color: ColorWhite, Side: side}]; ok {
		return img, false, nil
	}
	return nil, false, fmt.Errorf("%w: %s/%s/%s", ErrMissingBaseAsset, product, garmentColor, side)
}

// Len returns the number of loaded base images.
func (l *BaseLibrary) Len() int {
	return len(l.images)
}

// LoadBaseLibrary loads every garment image in dir whose filename follows
// the `family_color_side.png` convention (e.g. tshirt_white_front.png).
// Files that do not match the pattern are skipped with a warning so the
// directory can hold unrelated assets.
func LoadBaseLibrary(dir string) (*BaseLibrary, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read base asset directory: %w", err)
	}

	library := NewBaseLibrary()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		parsed, err := utils.ParseGarmentFileName(entry.Name())
		if err != nil {
			log.Printf("⚠️  Skipping base asset %s: %v", entry.Name(), err)
			continue
		}

		product, garmentColor, side, err := garmentKeyFromParsed(parsed)
		if err != nil {
			log.Printf("⚠️  Skipping base asset %s: %v", entry.Name(), err)
			continue
		}

		img, err := imaging.Open(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to open base asset %s: %w", entry.Name(), err)
		}

		library.Add(product, garmentColor, side, img)
		log.Printf("✓ Base asset loaded: %s", entry.Name())
	}

	// A compositor with no base art fails every submission, so refuse to
	// start without at least one garment image.
	if library.Len() == 0 {
		return nil, fmt.Errorf("no usable garment assets in %s: expected files named family_color_side.png (e.g. tshirt_white_front.png)", dir)
	}

	return library, nil
}

func garmentKeyFromParsed(parsed *utils.GarmentFileName) (ProductType, GarmentColor, Side, error) {
	var product ProductType
	switch parsed.Family {
	case "tshirt":
		product = ProductTShirt
	case "hoodie":
		product = ProductHoodie
	default:
		return "", "", "", fmt.Errorf("unknown garment family %q", parsed.Family)
	}

	garmentColor := GarmentColor(parsed.Color)
	if !garmentColor.Valid() {
		return "", "", "", fmt.Errorf("color %q is not in the palette", parsed.Color)
	}

	var side Side
	switch parsed.Side {
	case "front":
		side = SideFront
	case "back":
		side = SideBack
	default:
		return "", "", "", fmt.Errorf("unknown side %q", parsed.Side)
	}

	return product, garmentColor, side, nil
}
