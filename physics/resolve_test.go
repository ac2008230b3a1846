package physics

import (
	"testing"

	"github.com/IsaacLagoy/GoPhysicsAlgorithms/math/lin"
)

// headOnParties builds two non-rotating rigid bodies of equal mass, A at
// rest at the origin and B approaching along -x, plus colliders whose
// geometric centers sit at those positions (needed for RadiusTo/angular
// terms, which are zero here since both velocities are purely linear and
// the contact point is coincident with both centers).
func headOnParties(t *testing.T, massA, massB float64) (a, b ContactParty, contact lin.V3) {
	t.Helper()
	table := NewPrefabTable()
	h := table.Add(UnitCube())

	da := DefaultColliderData()
	ca := NewCollider(table.Get(h), da, false)
	ba := NewRigidBody(massA)

	db := DefaultColliderData()
	db.TX = 0
	cb := NewCollider(table.Get(h), db, false)
	bb := NewRigidBody(massB)
	bb.Velocity = lin.V3{X: -1}

	return ContactParty{Body: ba, Collider: ca}, ContactParty{Body: bb, Collider: cb}, ca.GeometricCenter()
}

// TestResolveElasticBounce checks the elastic-bounce scenario from §8: cube
// A at rest, cube B approaching at (-1,0,0), e=1, equal mass. After
// resolution A moves at (-1,0,0) and B is at rest.
func TestResolveElasticBounce(t *testing.T) {
	a, b, contact := headOnParties(t, 1, 1)
	n := lin.V3{X: 1, Y: 0, Z: 0}
	manifold := ContactManifold{Normal: n, Depth: 0.1, Points: []lin.V3{contact}}

	Resolve(manifold, a, b, 1, 0, 0)

	wantA := lin.V3{X: -1}
	wantB := lin.V3{}
	if !a.Body.Velocity.Aeq(&wantA) {
		t.Errorf("expected A velocity %v, got %v", wantA, a.Body.Velocity)
	}
	if !b.Body.Velocity.Aeq(&wantB) {
		t.Errorf("expected B velocity %v, got %v", wantB, b.Body.Velocity)
	}
}

// TestResolveInelasticSticking checks the inelastic-sticking scenario: e=0,
// equal mass, head-on. Post-collision relative normal velocity is 0.
func TestResolveInelasticSticking(t *testing.T) {
	a, b, contact := headOnParties(t, 1, 1)
	n := lin.V3{X: 1, Y: 0, Z: 0}
	manifold := ContactManifold{Normal: n, Depth: 0.1, Points: []lin.V3{contact}}

	Resolve(manifold, a, b, 0, 0, 0)

	rel := *lin.NewV3().Sub(&a.Body.Velocity, &b.Body.Velocity)
	vn := rel.Dot(&n)
	if !lin.Aeq(vn, 0) {
		t.Errorf("expected zero relative normal velocity after inelastic collision, got %v", vn)
	}
}

// TestResolveImpulseConservation checks testable property 4: for two
// dynamic bodies of equal mass with no friction, m1*dv1 + m2*dv2 = 0.
func TestResolveImpulseConservation(t *testing.T) {
	a, b, contact := headOnParties(t, 1, 1)
	n := lin.V3{X: 1, Y: 0, Z: 0}
	manifold := ContactManifold{Normal: n, Depth: 0.1, Points: []lin.V3{contact}}

	beforeA, beforeB := a.Body.Velocity, b.Body.Velocity
	Resolve(manifold, a, b, 0.6, 0, 0)

	dvA := *lin.NewV3().Sub(&a.Body.Velocity, &beforeA)
	dvB := *lin.NewV3().Sub(&b.Body.Velocity, &beforeB)
	momentum := *lin.NewV3().Add(lin.NewV3().Scale(&dvA, a.Body.Mass), lin.NewV3().Scale(&dvB, b.Body.Mass))
	zero := lin.V3{}
	if !momentum.Aeq(&zero) {
		t.Errorf("expected conserved momentum delta ~0, got %v", momentum)
	}
}

// TestResolveEnergyNonIncrease checks testable property 5: for e<1, kinetic
// energy strictly decreases.
func TestResolveEnergyNonIncrease(t *testing.T) {
	a, b, contact := headOnParties(t, 1, 1)
	n := lin.V3{X: 1, Y: 0, Z: 0}
	manifold := ContactManifold{Normal: n, Depth: 0.1, Points: []lin.V3{contact}}

	ke := func(v lin.V3, m float64) float64 { return 0.5 * m * v.Dot(&v) }
	before := ke(a.Body.Velocity, a.Body.Mass) + ke(b.Body.Velocity, b.Body.Mass)

	Resolve(manifold, a, b, 0.4, 0, 0)

	after := ke(a.Body.Velocity, a.Body.Mass) + ke(b.Body.Velocity, b.Body.Mass)
	if after >= before {
		t.Errorf("expected KE to strictly decrease for e<1: before=%v after=%v", before, after)
	}
}

func TestResolveStaticBodyOmitsTerm(t *testing.T) {
	a, b, contact := headOnParties(t, 1, 1)
	static := ContactParty{Body: nil, Collider: a.Collider}
	n := lin.V3{X: 1, Y: 0, Z: 0}
	manifold := ContactManifold{Normal: n, Depth: 0.1, Points: []lin.V3{contact}}

	before := b.Body.Velocity
	Resolve(manifold, static, b, 1, 0, 0)
	if b.Body.Velocity.Eq(&before) {
		t.Errorf("expected moving body's velocity to change against a static party")
	}
}
