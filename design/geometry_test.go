package design

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPixelDeltaToPercent(t *testing.T) {
	pct, ok := PixelDeltaToPercent(50, 200)
	assert.True(t, ok)
	assert.Equal(t, 25.0, pct)

	pct, ok = PixelDeltaToPercent(-30, 300)
	assert.True(t, ok)
	assert.InDelta(t, -10.0, pct, 1e-9)
}

func TestPixelDeltaToPercentUnknownContainer(t *testing.T) {
	// Division by an unknown container size must be refused, not attempted.
	_, ok := PixelDeltaToPercent(50, 0)
	assert.False(t, ok)

	_, ok = PixelDeltaToPercent(50, -10)
	assert.False(t, ok)
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		lo, hi   float64
		expected float64
	}{
		{"inside", 40, 0, 100, 40},
		{"below", -5, 0, 100, 0},
		{"above", 120, 0, 100, 100},
		{"at lower bound", 0, 0, 100, 0},
		{"at upper bound", 100, 0, 100, 100},
		{"scale below", 0.1, 0.2, 3.0, 0.2},
		{"scale above", 3.5, 0.2, 3.0, 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clamp(tt.v, tt.lo, tt.hi))
		})
	}
}
