package mesh

import "math"

// ring returns the Y-Z coordinates of the i-th of n points on the unit
// circle, starting at angle 2π/n (i=0) and ending at 2π (i=n-1).
func ring(i, n int) (y, z float32) {
	angle := float64(i+1) / float64(n) * 2 * math.Pi
	return float32(math.Cos(angle)), float32(math.Sin(angle))
}
