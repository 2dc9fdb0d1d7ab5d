package retro

import "math"

// ResolveDisplayScale returns the largest integer scale at which a
// width x height canvas fits in ratio of a displayW x displayH display.
// The result is never below 1.
func ResolveDisplayScale(displayW, displayH, width, height int, ratio float64) int {
	fit := math.Min(float64(displayW)/float64(width), float64(displayH)/float64(height))
	return max(int(math.Floor(fit*ratio)), 1)
}
