package physics

import (
	"testing"

	"github.com/IsaacLagoy/GoPhysicsAlgorithms/math/lin"
)

// TestSupportPointMaxDot checks testable property 1: support(P, d) satisfies
// <support, d> = max_{p in P} <p, d>.
func TestSupportPointMaxDot(t *testing.T) {
	points := UnitCube()
	directions := []lin.V3{
		{X: 1, Y: 0, Z: 0},
		{X: -1, Y: 2, Z: 0},
		{X: 1, Y: 1, Z: 1},
		{X: 0, Y: 0, Z: -1},
	}
	for _, d := range directions {
		got := support_point(points, d)
		gotDot := got.Dot(&d)
		want := -1e18
		for i := range points {
			if dot := points[i].Dot(&d); dot > want {
				want = dot
			}
		}
		if !lin.Aeq(gotDot, want) {
			t.Errorf("support_point(%v) dot = %v, want %v", d, gotDot, want)
		}
	}
}

func TestSupportPointOfMinkowskiDifference(t *testing.T) {
	a := []lin.V3{{X: 1, Y: 0, Z: 0}}
	b := []lin.V3{{X: 3, Y: 0, Z: 0}}
	d := lin.V3{X: 1, Y: 0, Z: 0}
	got := support_point_of_minkowski_difference(a, b, d)
	want := lin.V3{X: -2, Y: 0, Z: 0}
	if !got.Aeq(&want) {
		t.Errorf("support_point_of_minkowski_difference = %v, want %v", got, want)
	}
}
