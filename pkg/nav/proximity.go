package nav

import "github.com/quillon/waymark/pkg/vec"

// Proximity converts a distance into the normalized intensity factor in
// [0,1]: 1 at the listener, 0 at maxDistance and beyond. The square
// emphasizes near-field change, where players need the finest resolution.
func Proximity(distance, maxDistance float64) float64 {
	if maxDistance <= 0 {
		return 0
	}
	n := 1 - vec.Clamp01(distance/maxDistance)
	return n * n
}

// Pan maps a target position into a stereo position in [-1,1] relative to
// the listener's facing: -1 hard left, 0 dead ahead (or directly above),
// +1 hard right. Elevation is ignored; only the horizontal angle matters
// for stereo.
func Pan(listener, target, forward vec.Vec3) float64 {
	dir := target.Sub(listener).Horizontal()
	right := vec.Up.Cross(forward).Horizontal()
	return vec.Clamp(right.Dot(dir), -1, 1)
}
