package physics

import (
	"math"

	"github.com/IsaacLagoy/GoPhysicsAlgorithms/math/lin"
)

// support_point returns the vertex of points that maximizes the dot product
// with direction. Ties are broken by first-seen, matching the source
// convention of only replacing the running best on a strict improvement.
func support_point(points []lin.V3, direction lin.V3) lin.V3 {
	best := lin.V3{}
	best_dot := -math.MaxFloat64
	for i := range points {
		if dot := points[i].Dot(&direction); dot > best_dot {
			best = points[i]
			best_dot = dot
		}
	}
	return best
}

// support_point_of_minkowski_difference returns the support point of the
// Minkowski difference A-B along direction: supportA(direction) minus
// supportB(-direction). Both vertex sets are expected to already be in
// world space.
func support_point_of_minkowski_difference(pointsA, pointsB []lin.V3, direction lin.V3) lin.V3 {
	neg := *lin.NewV3().Scale(&direction, -1)
	supportA := support_point(pointsA, direction)
	supportB := support_point(pointsB, neg)
	return *lin.NewV3().Sub(&supportA, &supportB)
}
