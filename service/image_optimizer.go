package service

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"log"

	"github.com/disintegration/imaging"
)

const (
	// Quality settings
	qualityLogo    = 80
	qualityProduct = 85
	// Size settings (max dimension)
	maxSizeLogo    = 512
	maxSizeProduct = 1024
)

// OptimizeImage optimizes an image by converting to JPEG and resizing.
// imageData: raw image bytes (PNG, JPEG, etc.)
// kind: "logo" or "product"
// Returns optimized JPEG image bytes.
// Note: Using JPEG instead of WebP to avoid CGO dependency. Can be changed to WebP later if needed.
func OptimizeImage(imageData []byte, kind string) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	log.Printf("📸 Image decoded: format=%s, bounds=%v", format, img.Bounds())

	var maxDim int
	var quality int

	switch kind {
	case "logo":
		maxDim = maxSizeLogo
		quality = qualityLogo
	case "product":
		maxDim = maxSizeProduct
		quality = qualityProduct
	default:
		maxDim = maxSizeProduct
		quality = qualityProduct
		log.Printf("⚠️  Unknown image kind '%s', defaulting to product", kind)
	}

	// Resize image if needed, maintaining aspect ratio
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	var resizedImg image.Image = img
	if width > maxDim || height > maxDim {
		var newWidth, newHeight int
		if width > height {
			newWidth = maxDim
			newHeight = int(float64(height) * float64(maxDim) / float64(width))
		} else {
			newHeight = maxDim
			newWidth = int(float64(width) * float64(maxDim) / float64(height))
		}

		log.Printf("🔄 Resizing image: %dx%d -> %dx%d", width, height, newWidth, newHeight)
		resizedImg = imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	opts := &jpeg.Options{
		Quality: quality,
	}
	if err := jpeg.Encode(&buf, resizedImg, opts); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}
	optimizedData := buf.Bytes()

	log.Printf("✓ Image optimized: kind=%s, quality=%d, output_size=%d bytes", kind, quality, len(optimizedData))
	return optimizedData, nil
}
