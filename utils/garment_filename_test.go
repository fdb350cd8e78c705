package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGarmentFileName(t *testing.T) {
	tests := []struct {
		filename string
		family   string
		color    string
		side     string
	}{
		{"tshirt_white_front.png", "tshirt", "white", "front"},
		{"hoodie_black_back.png", "hoodie", "black", "back"},
		{"TSHIRT_RED_FRONT.PNG", "tshirt", "red", "front"},
		{"tshirt_blue_back.jpg", "tshirt", "blue", "back"},
		{"hoodie_white_front.jpeg", "hoodie", "white", "front"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			parsed, err := ParseGarmentFileName(tt.filename)
			require.NoError(t, err)
			assert.Equal(t, tt.family, parsed.Family)
			assert.Equal(t, tt.color, parsed.Color)
			assert.Equal(t, tt.side, parsed.Side)
		})
	}
}

func TestParseGarmentFileNameErrors(t *testing.T) {
	tests := []struct {
		name     string
		filename string
	}{
		{"wrong extension", "tshirt_white_front.gif"},
		{"missing side", "tshirt_white.png"},
		{"extra segment", "tshirt_white_front_v2.png"},
		{"wrong side token", "tshirt_white_left.png"},
		{"digits in family", "tshirt2_white_front.png"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGarmentFileName(tt.filename)
			assert.Error(t, err)
		})
	}
}
