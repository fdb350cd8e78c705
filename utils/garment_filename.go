package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// GarmentFileName is the parsed form of a base garment asset filename.
type GarmentFileName struct {
	Family string // tshirt, hoodie
	Color  string // white, black, red, blue
	Side   string // front, back
}

var garmentFileRegex = regexp.MustCompile(`^([a-z]+)_([a-z]+)_(front|back)$`)

// ParseGarmentFileName parses a base garment asset filename following the
// pattern FAMILY_COLOR_SIDE.PNG, e.g. tshirt_white_front.png.
func ParseGarmentFileName(filename string) (*GarmentFileName, error) {
	// Remove extension (case-insensitive)
	extRegex := regexp.MustCompile(`\.(png|jpg|jpeg)$`)
	name := strings.ToLower(filename)
	nameWithoutExt := extRegex.ReplaceAllString(name, "")
	if nameWithoutExt == name && strings.Contains(name, ".") {
		return nil, fmt.Errorf("unsupported file extension: %s", filename)
	}

	matches := garmentFileRegex.FindStringSubmatch(nameWithoutExt)
	if matches == nil {
		return nil, fmt.Errorf("invalid garment filename: expected FAMILY_COLOR_SIDE, got %s", filename)
	}

	return &GarmentFileName{
		Family: matches[1],
		Color:  matches[2],
		Side:   matches[3],
	}, nil
}
