package pricing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pricing.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// newEngine resets the process-wide instance so each test loads its own
// config.
func newEngine(t *testing.T, body string) (*Engine, error) {
	t.Helper()
	engineInstance = nil
	t.Cleanup(func() { engineInstance = nil })
	return NewEngine(writeConfig(t, body))
}

func TestNewEngine(t *testing.T) {
	e, err := newEngine(t, `{"currency":"USD","designMrp":499,"shippingFlat":50,"freeShippingOver":1000}`)
	require.NoError(t, err)

	assert.Equal(t, int64(499), e.DesignMRP())
	assert.Same(t, e, GetEngine())
}

func TestShippingFee(t *testing.T) {
	e, err := newEngine(t, `{"currency":"USD","designMrp":499,"shippingFlat":50,"freeShippingOver":1000}`)
	require.NoError(t, err)

	assert.Equal(t, int64(50), e.ShippingFee(999))
	assert.Equal(t, int64(0), e.ShippingFee(1000))
	assert.Equal(t, int64(1049), e.OrderTotal(999))
	assert.Equal(t, int64(1000), e.OrderTotal(1000))
}

func TestShippingNeverFreeWhenThresholdZero(t *testing.T) {
	e, err := newEngine(t, `{"currency":"USD","designMrp":499,"shippingFlat":50}`)
	require.NoError(t, err)

	assert.Equal(t, int64(50), e.ShippingFee(1_000_000))
}

func TestNewEngineInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing currency", `{"designMrp":499}`},
		{"zero mrp", `{"currency":"USD","designMrp":0}`},
		{"negative shipping", `{"currency":"USD","designMrp":499,"shippingFlat":-1}`},
		{"malformed json", `{"currency":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newEngine(t, tt.body)
			assert.Error(t, err)
		})
	}
}

func TestNewEngineMissingFile(t *testing.T) {
	engineInstance = nil
	t.Cleanup(func() { engineInstance = nil })
	_, err := NewEngine(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
