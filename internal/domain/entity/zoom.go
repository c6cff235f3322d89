package entity

import "math"

// Zoom constants
const (
	ZoomDefault = 1.0
	ZoomMin     = 0.25 // 25%
	ZoomMax     = 5.0  // 500%
	ZoomStep    = 0.05 // 5% increments
)

// ClampZoom bounds factor to [ZoomMin, ZoomMax] and rounds away float drift
// from repeated stepping. NaN resets to the default.
func ClampZoom(factor float64) float64 {
	if math.IsNaN(factor) {
		return ZoomDefault
	}
	factor = math.Round(factor*1000) / 1000
	if factor < ZoomMin {
		return ZoomMin
	}
	if factor > ZoomMax {
		return ZoomMax
	}
	return factor
}

// ZoomPercentage returns the zoom factor as a percentage (e.g., 150 for 1.5).
func ZoomPercentage(factor float64) int {
	return int(math.Round(factor * 100))
}
