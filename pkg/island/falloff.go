package island

import "math"

// Falloff returns the radial attenuation for grid coordinate (x, y) on a
// size×size grid: 1 at the center, falling off quadratically and reaching 0
// at normalized distance 1/√2 from the center. Multiplying the heightmap by
// it rounds the noise field into an island silhouette with water at the rim.
func Falloff(x, y, size int) float32 {
	half := float64(size) / 2
	dx := (float64(x) - half) / half
	dy := (float64(y) - half) / half
	dist := math.Sqrt(dx*dx + dy*dy)

	v := 1 - 2*dist*dist
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return float32(v)
}
