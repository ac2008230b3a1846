package physics

import (
	"testing"

	"github.com/IsaacLagoy/GoPhysicsAlgorithms/math/lin"
)

func TestNarrowCubeCubeContactPointX(t *testing.T) {
	a := translated(UnitCube(), lin.V3{})
	b := translated(UnitCube(), lin.V3{X: 1.5})

	normal, depth, contactA := Narrow(a, b, lin.V3{}, lin.V3{X: 1.5})
	if depth <= 0 {
		t.Fatalf("expected cubes to collide, got depth %v", depth)
	}
	if normal.X <= 0 {
		t.Errorf("expected normal pointing toward +x, got %v", normal)
	}
	if contactA.X < 0.9 || contactA.X > 1.1 {
		t.Errorf("expected contact point x ~= 1.0, got %v", contactA.X)
	}
}

func TestNarrowNoCollision(t *testing.T) {
	a := translated(UnitCube(), lin.V3{})
	b := translated(UnitCube(), lin.V3{X: 3})

	normal, depth, contact := Narrow(a, b, lin.V3{}, lin.V3{X: 3})
	zero := lin.V3{}
	if depth != 0 || !normal.Eq(&zero) || !contact.Eq(&zero) {
		t.Errorf("expected zero normal/depth/contact on no-hit, got n=%v d=%v c=%v", normal, depth, contact)
	}
}
