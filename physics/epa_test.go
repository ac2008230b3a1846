package physics

import (
	"testing"

	"github.com/IsaacLagoy/GoPhysicsAlgorithms/math/lin"
)

// TestEPACubeCubeFaceContact checks the cube-cube face contact scenario
// from §8: two unit cubes, A at origin, B at (1.5,0,0), overlapping 0.5
// along x. Expect normal (±1,0,0) and depth ≈ 0.5.
func TestEPACubeCubeFaceContact(t *testing.T) {
	a := translated(UnitCube(), lin.V3{})
	b := translated(UnitCube(), lin.V3{X: 1.5})

	collided, simplex, err := gjk_collides(a, b)
	if err != nil || !collided {
		t.Fatalf("expected collision, got collided=%v err=%v", collided, err)
	}

	normal, depth, _, _, err := epa(a, b, simplex)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	absX := normal.X
	if absX < 0 {
		absX = -absX
	}
	if !lin.Aeq(absX, 1) || !lin.Aeq(normal.Y, 0) || !lin.Aeq(normal.Z, 0) {
		t.Errorf("expected normal (+-1,0,0), got %v", normal)
	}
	if depth < 0.49 || depth > 0.51 {
		t.Errorf("expected depth ~0.5, got %v", depth)
	}
}

// TestEPANormalOrientation checks testable property 3 via Narrow, which
// flips the raw EPA normal to point from A toward B.
func TestEPANormalOrientation(t *testing.T) {
	a := translated(UnitCube(), lin.V3{})
	b := translated(UnitCube(), lin.V3{X: 0.6})

	normal, depth, _ := Narrow(a, b, lin.V3{}, lin.V3{X: 0.6})
	if depth <= 0 {
		t.Fatalf("expected a hit, got depth %v", depth)
	}
	centerDiff := lin.V3{X: 0.6}
	if normal.Dot(&centerDiff) < 0 {
		t.Errorf("expected normal %v to point from A toward B (%v)", normal, centerDiff)
	}
}
