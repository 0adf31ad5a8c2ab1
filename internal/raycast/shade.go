package raycast

import "math"

// maxSliceHeight bounds SliceHeight so rows/d never overflows int.
const maxSliceHeight = math.MaxInt32

// SliceHeight is the on-screen height of a wall slice at distance d for a
// view rows pixels tall.
func SliceHeight(rows int, d float64) int {
	if d <= 0 || math.IsNaN(d) {
		return rows
	}
	h := math.Round(float64(rows) / d)
	if h > maxSliceHeight {
		return maxSliceHeight
	}
	return int(h)
}

// Brightness is the grey level of a wall slice at distance d using an
// inverse-square falloff, saturating at 255.
func Brightness(d float64) uint8 {
	if d <= 0 || math.IsNaN(d) {
		return 255
	}
	half := d / 2
	v := math.Round(255 / (half * half))
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}
