package design

// Placement coordinates are percentages of the printable container, so the
// same placement renders identically in the interactive editor and on the
// higher-resolution compositing canvas. These helpers convert pointer
// deltas into that percentage space.

// PixelDeltaToPercent converts a pointer movement in pixels into a
// percentage of the container dimension it happened in. ok is false when
// the container size is unknown or zero; callers must skip the update
// instead of dividing by zero.
func PixelDeltaToPercent(deltaPx, containerPx float64) (percent float64, ok bool) {
	if containerPx <= 0 {
		return 0, false
	}
	return deltaPx / containerPx * 100, true
}

// Clamp limits v to the inclusive range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
