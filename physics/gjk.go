package physics

import (
	"github.com/IsaacLagoy/GoPhysicsAlgorithms/math/lin"
)

// gjk_max_iterations caps the simplex-refinement loop so degenerate input
// can never spin forever. Hitting the cap reports no collision together
// with ErrIterationCap, which the scene logs and treats as no-collision.
const gjk_max_iterations = 32

// gjk_Simplex is the up-to-four-point figure GJK refines while searching
// the Minkowski difference for the origin.
type gjk_Simplex struct {
	a, b, c, d lin.V3
	num        int
}

// add_to_simplex pushes point onto the front of the simplex, shifting the
// older points back. a is always the most recently added point.
func add_to_simplex(simplex *gjk_Simplex, point lin.V3) {
	switch simplex.num {
	case 0:
		simplex.a = point
	case 1:
		simplex.b, simplex.a = simplex.a, point
	case 2:
		simplex.c, simplex.b, simplex.a = simplex.b, simplex.a, point
	case 3:
		simplex.d, simplex.c, simplex.b, simplex.a = simplex.c, simplex.b, simplex.a, point
	}
	simplex.num++
}

// triple_cross computes (a x b) x c, used to find a direction perpendicular
// to an edge but still in the plane containing the origin.
func triple_cross(a, b, c lin.V3) lin.V3 {
	var tc lin.V3
	tc.Cross(&a, &b)
	tc.Cross(&tc, &c)
	return tc
}

// do_simplex_2 handles the line-segment case: the search direction is
// perpendicular to AB, pointing toward the origin.
func do_simplex_2(simplex *gjk_Simplex, direction *lin.V3) bool {
	a, b := simplex.a, simplex.b
	ao := *lin.NewV3().Neg(&a)
	ab := *lin.NewV3().Sub(&b, &a)
	simplex.a, simplex.b, simplex.num = a, b, 2
	*direction = triple_cross(ab, ao, ab)
	return false
}

// do_simplex_3 classifies the origin against the Voronoi regions of
// triangle ABC and reduces the simplex to the region containing it.
func do_simplex_3(simplex *gjk_Simplex, direction *lin.V3) bool {
	a, b, c := simplex.a, simplex.b, simplex.c
	ao := *lin.NewV3().Neg(&a)
	ab := *lin.NewV3().Sub(&b, &a)
	ac := *lin.NewV3().Sub(&c, &a)
	abc := *lin.NewV3().Cross(&ab, &ac)

	if lin.NewV3().Cross(&abc, &ac).Dot(&ao) >= 0.0 {
		if ac.Dot(&ao) >= 0.0 {
			simplex.a, simplex.b, simplex.num = a, c, 2
			*direction = triple_cross(ac, ao, ac)
		} else if ab.Dot(&ao) >= 0.0 {
			simplex.a, simplex.b, simplex.num = a, b, 2
			*direction = triple_cross(ab, ao, ab)
		} else {
			simplex.a, simplex.num = a, 1
			*direction = ao
		}
		return false
	}
	if lin.NewV3().Cross(&ab, &abc).Dot(&ao) >= 0.0 {
		if ab.Dot(&ao) >= 0.0 {
			simplex.a, simplex.b, simplex.num = a, b, 2
			*direction = triple_cross(ab, ao, ab)
		} else {
			simplex.a, simplex.num = a, 1
			*direction = ao
		}
		return false
	}
	if abc.Dot(&ao) >= 0.0 {
		simplex.a, simplex.b, simplex.c, simplex.num = a, b, c, 3
		*direction = abc
	} else {
		simplex.a, simplex.b, simplex.c, simplex.num = a, c, b, 3
		*direction = *lin.NewV3().Neg(&abc)
	}
	return false
}

// do_simplex_4 tests the four faces of tetrahedron ABCD against the origin.
// If every face has the origin on its inward side, the origin is enclosed
// and the pair of shapes intersect.
func do_simplex_4(simplex *gjk_Simplex, direction *lin.V3) bool {
	a, b, c, d := simplex.a, simplex.b, simplex.c, simplex.d
	ao := *lin.NewV3().Neg(&a)
	ab := *lin.NewV3().Sub(&b, &a)
	ac := *lin.NewV3().Sub(&c, &a)
	ad := *lin.NewV3().Sub(&d, &a)
	abc := *lin.NewV3().Cross(&ab, &ac)
	acd := *lin.NewV3().Cross(&ac, &ad)
	adb := *lin.NewV3().Cross(&ad, &ab)

	if abc.Dot(&ao) >= 0.0 {
		simplex.a, simplex.b, simplex.c, simplex.num = a, b, c, 3
		return do_simplex_3(simplex, direction)
	}
	if acd.Dot(&ao) >= 0.0 {
		simplex.a, simplex.b, simplex.c, simplex.num = a, c, d, 3
		return do_simplex_3(simplex, direction)
	}
	if adb.Dot(&ao) >= 0.0 {
		simplex.a, simplex.b, simplex.c, simplex.num = a, d, b, 3
		return do_simplex_3(simplex, direction)
	}
	// Origin is on the inward side of all four faces: enclosed.
	simplex.a, simplex.b, simplex.c, simplex.d, simplex.num = a, b, c, d, 4
	return true
}

// do_simplex dispatches to the line, triangle, or tetrahedron case based on
// the current simplex size.
func do_simplex(simplex *gjk_Simplex, direction *lin.V3) bool {
	switch simplex.num {
	case 2:
		return do_simplex_2(simplex, direction)
	case 3:
		return do_simplex_3(simplex, direction)
	case 4:
		return do_simplex_4(simplex, direction)
	}
	return false
}

// gjk_collides runs the GJK origin-containment test over the Minkowski
// difference of pointsA and pointsB, both already in world space. It
// reports whether the shapes intersect and, on a hit, the terminal
// tetrahedral simplex for EPA to expand.
//
// Hitting the iteration cap or failing to build a non-degenerate seed
// simplex are both reported as ErrIterationCap / ErrDegenerateGeometry;
// callers treat either as no-collision.
func gjk_collides(pointsA, pointsB []lin.V3) (collided bool, simplex gjk_Simplex, err error) {
	if len(pointsA) == 0 || len(pointsB) == 0 {
		return false, simplex, ErrDegenerateGeometry
	}

	seed := support_point_of_minkowski_difference(pointsA, pointsB, lin.V3{X: 0, Y: 0, Z: 1})
	add_to_simplex(&simplex, seed)
	direction := *lin.NewV3().Neg(&seed)

	previous := seed
	for i := 0; i < gjk_max_iterations; i++ {
		next := support_point_of_minkowski_difference(pointsA, pointsB, direction)
		if next.Dot(&direction) < 0.0 {
			return false, simplex, nil // separating axis found.
		}
		if next.Eq(&previous) {
			return false, simplex, ErrDegenerateGeometry
		}
		previous = next
		add_to_simplex(&simplex, next)
		if do_simplex(&simplex, &direction) {
			return true, simplex, nil
		}
	}
	return false, simplex, ErrIterationCap
}
