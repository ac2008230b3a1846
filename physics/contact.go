package physics

import (
	"github.com/IsaacLagoy/GoPhysicsAlgorithms/math/lin"
)

// contact_point_epsilon guards the barycentric reconstruction against a
// degenerate (zero-area) nearest face.
const contact_point_epsilon = 1e-9

// ContactManifold is the transient, per-pair, per-tick result of a narrow
// phase test: a unit normal from body1 toward body2, a non-negative
// penetration depth, and one or more contact points in world space.
type ContactManifold struct {
	Normal lin.V3
	Depth  float64
	Points []lin.V3
}

// Narrow runs GJK followed by EPA and contact reconstruction over two
// world-space vertex sets, returning the separating normal (from A toward
// B), penetration depth, and the contact point on body A. On no-hit it
// returns a zero normal, zero depth, and a zero contact point, matching the
// external narrow-collision interface in §6.
//
// posA and posB are not used to transform the vertex sets (those are
// expected to already be world-space); they are only used to guard the
// normal's orientation (testable property 3) against EPA tie-breaks on a
// degenerate polytope.
func Narrow(vertsA, vertsB []lin.V3, posA, posB lin.V3) (normal lin.V3, depth float64, contactA lin.V3) {
	collided, simplex, err := gjk_collides(vertsA, vertsB)
	if err != nil || !collided {
		return lin.V3{}, 0, lin.V3{}
	}
	n, d, polytope, face, err := epa(vertsA, vertsB, simplex)
	if err != nil {
		return lin.V3{}, 0, lin.V3{}
	}

	toB := *lin.NewV3().Sub(&posB, &posA)
	if n.Dot(&toB) < 0 {
		n = *lin.NewV3().Neg(&n)
	}

	contactA, _ = reconstructContactPoints(vertsA, vertsB, polytope, face, n)
	return n, d, contactA
}

// reconstructContactPoints recovers the contact point on each original body
// from the barycentric weights of the EPA face nearest the origin, per
// §4.4. When the face's total signed volume collapses below
// contact_point_epsilon, the contact point is the geometric mean of the
// face vertices projected on body A.
func reconstructContactPoints(vertsA, vertsB []lin.V3, polytope []lin.V3, face epa_face, normal lin.V3) (contactA, contactB lin.V3) {
	a, b, c := polytope[face.a], polytope[face.b], polytope[face.c]

	signedVolume := func(p1, p2, p3 lin.V3) float64 {
		e1 := *lin.NewV3().Sub(&p1, &p3)
		e2 := *lin.NewV3().Sub(&p2, &p3)
		cr := *lin.NewV3().Cross(&e1, &e2)
		return cr.Dot(&normal) / 6.0
	}

	total := signedVolume(a, b, c)
	if total < contact_point_epsilon && total > -contact_point_epsilon {
		mean := lin.V3{
			X: (a.X + b.X + c.X) / 3,
			Y: (a.Y + b.Y + c.Y) / 3,
			Z: (a.Z + b.Z + c.Z) / 3,
		}
		supportA := support_point(vertsA, mean)
		return supportA, support_point(vertsB, *lin.NewV3().Neg(&mean))
	}

	origin := lin.V3{}
	u := signedVolume(origin, b, c) / total
	v := signedVolume(origin, c, a) / total
	w := signedVolume(origin, a, b) / total
	if sum := u + v + w; sum != 0 {
		u, v, w = u/sum, v/sum, w/sum
	}

	supportPair := func(mk lin.V3) (sa, sb lin.V3) {
		neg := *lin.NewV3().Neg(&mk)
		return support_point(vertsA, mk), support_point(vertsB, neg)
	}
	s1a, s2a := supportPair(a)
	s1b, s2b := supportPair(b)
	s1c, s2c := supportPair(c)

	contactA = lin.V3{
		X: u*s1a.X + v*s1b.X + w*s1c.X,
		Y: u*s1a.Y + v*s1b.Y + w*s1c.Y,
		Z: u*s1a.Z + v*s1b.Z + w*s1c.Z,
	}
	contactB = lin.V3{
		X: u*s2a.X + v*s2b.X + w*s2c.X,
		Y: u*s2a.Y + v*s2b.Y + w*s2c.Y,
		Z: u*s2a.Z + v*s2b.Z + w*s2c.Z,
	}
	return contactA, contactB
}
