package physics

import (
	"github.com/IsaacLagoy/GoPhysicsAlgorithms/math/lin"
)

// denominator_epsilon guards every impulse division; when a computed
// denominator falls below this magnitude the impulse for that contact
// point is skipped rather than risking a blow-up.
const denominator_epsilon = 1e-9

// tangent_epsilon is the threshold below which relative tangential speed
// is treated as zero and no friction impulse is applied. Per the open
// question in §9, both the one-body and two-body resolve paths use this
// same value; the source's two-body path compared against 1e6 instead of
// 1e-6, which this implementation treats as a bug and does not replicate.
const tangent_epsilon = 1e-6

// ContactParty bundles the state the resolver needs for one side of a
// contact: the rigid body (nil if the party is static or has no physics),
// and the collider supplying the geometric center the contact radius is
// measured from.
type ContactParty struct {
	Body     *RigidBody
	Collider *Collider
}

// Resolve applies the normal and friction impulses described in §4.6 to
// one or both parties of a contact, given the manifold's normal, depth,
// and contact points, and the combined restitution/friction coefficients.
// Either party may have a nil Body (static or non-physics); the impulse
// equation omits that party's term, matching the source's single-body and
// two-body paths collapsed into one.
func Resolve(manifold ContactManifold, a, b ContactParty, elasticity, staticFriction, kineticFriction float64) {
	_ = staticFriction // static friction is currently unused; see §9.
	n := manifold.Normal
	points := manifold.Points
	if len(points) == 0 {
		return
	}
	count := float64(len(points))

	for _, p := range points {
		resolveContactPoint(p, n, a, b, elasticity, kineticFriction, count)
	}
}

// resolveContactPoint applies the impulse equations of §4.6 for a single
// contact point, dividing the result by pointCount to distribute it across
// the manifold's contacts.
func resolveContactPoint(point, n lin.V3, a, b ContactParty, elasticity, kinetic, pointCount float64) {
	var invMass1, invMass2 float64
	var invInertia1, invInertia2 lin.M3
	var r1, r2, omega1, omega2 lin.V3
	has1, has2 := a.Body != nil, b.Body != nil

	if has1 {
		invMass1 = 1 / a.Body.Mass
		invInertia1 = *lin.NewM3().Inv(inertiaTensorOf(a))
		r1 = a.Collider.RadiusTo(point)
		omega1 = a.Body.AngularVelocity()
	}
	if has2 {
		invMass2 = 1 / b.Body.Mass
		invInertia2 = *lin.NewM3().Inv(inertiaTensorOf(b))
		r2 = b.Collider.RadiusTo(point)
		omega2 = b.Body.AngularVelocity()
	}

	v1 := velocityAtPoint(a, r1, omega1, has1)
	v2 := velocityAtPoint(b, r2, omega2, has2)
	vRel := *lin.NewV3().Sub(&v1, &v2)
	vn := vRel.Dot(&n)

	denom := invMass1 + invMass2
	if has1 {
		denom += angularTerm(&invInertia1, r1, n)
	}
	if has2 {
		denom += angularTerm(&invInertia2, r2, n)
	}
	if denom < denominator_epsilon {
		return
	}

	j := -(1 + elasticity) * vn / denom
	impulse := *lin.NewV3().Scale(&n, j)

	vt := *lin.NewV3().Sub(&vRel, lin.NewV3().Scale(&n, vn))
	if vt.Len() >= tangent_epsilon {
		friction := *lin.NewV3().Scale(vt.Unit(), -kinetic*absF(j))
		impulse.Add(&impulse, &friction)
	}
	impulse.Scale(&impulse, 1/pointCount)

	if has1 {
		applyImpulse(a.Body, invMass1, invInertia1, r1, impulse, omega1, 1)
	}
	if has2 {
		applyImpulse(b.Body, invMass2, invInertia2, r2, impulse, omega2, -1)
	}
}

// velocityAtPoint returns the velocity of party's surface at a point
// r = point - center away from its geometric center, v = linVel + w x r.
// An absent party contributes zero velocity so the relative velocity
// reduces to the present party's own motion.
func velocityAtPoint(party ContactParty, r, omega lin.V3, present bool) lin.V3 {
	if !present {
		return lin.V3{}
	}
	spin := *lin.NewV3().Cross(&omega, &r)
	return *lin.NewV3().Add(&party.Body.Velocity, &spin)
}

// angularTerm computes <n, (I^-1 (r x n)) x r>, the contribution of one
// body's rotational inertia to the impulse denominator.
func angularTerm(invInertia *lin.M3, r, n lin.V3) float64 {
	rxn := *lin.NewV3().Cross(&r, &n)
	iInv := *lin.NewV3().MultMv(invInertia, &rxn)
	cross := *lin.NewV3().Cross(&iInv, &r)
	return n.Dot(&cross)
}

// inertiaTensorOf returns the world-space inertia tensor for a contact
// party's current mass and rotation-aware collider cache.
func inertiaTensorOf(party ContactParty) *lin.M3 {
	t := party.Collider.InertiaTensor(party.Body.Mass)
	return &t
}

// applyImpulse updates a body's linear and angular velocity from a signed
// impulse: sign is +1 for the first party of a contact and -1 for the
// second, per §4.6.
func applyImpulse(body *RigidBody, invMass float64, invInertia lin.M3, r, impulse lin.V3, omega lin.V3, sign float64) {
	signed := *lin.NewV3().Scale(&impulse, sign)

	delta := *lin.NewV3().Scale(&signed, invMass)
	body.Velocity.Add(&body.Velocity, &delta)

	deltaOmega := *lin.NewV3().MultMv(&invInertia, lin.NewV3().Cross(&r, &signed))
	newOmega := *lin.NewV3().Add(&omega, &deltaOmega)
	body.SetAngularVelocity(newOmega)
}

func absF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
