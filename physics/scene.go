package physics

import (
	"log/slog"

	"github.com/IsaacLagoy/GoPhysicsAlgorithms/math/lin"
)

// Entity is a scene-owned collider paired with optional rigid-body state.
// A nil Body marks a static or purely-kinematic entity: it still
// participates in collision as an immovable obstacle, but the resolver
// omits its half of the impulse equation.
type Entity struct {
	Collider *Collider
	Body     *RigidBody
}

// Pair is a candidate collision pair supplied by an external broad phase;
// the scene does not cull pairs itself (§1, out of scope).
type Pair struct {
	A, B int // indices into Scene.Entities
}

// JointBinding ties a Joint's parent/child constraint to two scene
// entities by index.
type JointBinding struct {
	Joint        *Joint
	Parent, Child int
}

// Scene owns every collider, body, and joint for one simulation and drives
// the per-tick control flow described in §2: integrate velocities, run
// narrow phase over the candidate pairs, resolve impulses, then post-correct
// joints and commit positions. It is the collection handler referenced by
// the external "Scene update call" interface; pair culling is supplied by
// the caller via Pairs.
type Scene struct {
	Prefabs *PrefabTable

	Entities []Entity
	Pairs    []Pair
	Joints   []JointBinding

	Accelerations []Acceleration
}

// NewScene returns an empty scene backed by the given prefab table.
func NewScene(prefabs *PrefabTable) *Scene {
	return &Scene{Prefabs: prefabs}
}

// AddEntity registers a collider/body pair and returns its index, for use
// in Pairs and JointBindings. body may be nil for static or kinematic
// colliders.
func (s *Scene) AddEntity(collider *Collider, body *RigidBody) int {
	s.Entities = append(s.Entities, Entity{Collider: collider, Body: body})
	return len(s.Entities) - 1
}

// AddJoint binds joint between the entities at the given indices.
func (s *Scene) AddJoint(joint *Joint, parent, child int) {
	s.Joints = append(s.Joints, JointBinding{Joint: joint, Parent: parent, Child: child})
}

// Update advances the scene by dt: integrate velocities under the scene's
// accelerations, resolve every candidate pair's contact (in the order
// supplied by Pairs — Gauss-Seidel, per §5: a pair's impulse is immediately
// visible to the next pair in the same tick), restrict every joint, then
// commit positions and orientations.
func (s *Scene) Update(dt float64) {
	for i := range s.Entities {
		if b := s.Entities[i].Body; b != nil {
			b.IntegrateVelocity(s.Accelerations, dt)
		}
	}

	for _, pair := range s.Pairs {
		s.resolvePair(pair)
	}

	for _, jb := range s.Joints {
		s.restrictJoint(jb, dt)
	}

	for i := range s.Entities {
		s.commit(i, dt)
	}
}

// resolvePair runs the narrow phase between two entities and, on a hit,
// resolves the contact. Either side may be static (nil Body); the resolver
// omits that side's term per §4.6.
func (s *Scene) resolvePair(pair Pair) {
	ea, eb := s.Entities[pair.A], s.Entities[pair.B]
	if ea.Collider == nil || eb.Collider == nil {
		return
	}

	posA := ea.Collider.GeometricCenter()
	posB := eb.Collider.GeometricCenter()
	vertsA := ea.Collider.WorldVertices()
	vertsB := eb.Collider.WorldVertices()

	collided, simplex, err := gjk_collides(vertsA, vertsB)
	if err != nil {
		if err == ErrIterationCap {
			slog.Warn("gjk did not converge, treating as no-collision", "pairA", pair.A, "pairB", pair.B)
		}
		return
	}
	if !collided {
		return
	}

	normal, depth, polytope, face, err := epa(vertsA, vertsB, simplex)
	if err != nil {
		if err == ErrIterationCap {
			slog.Warn("epa did not converge, treating as no-collision", "pairA", pair.A, "pairB", pair.B)
		}
		return
	}
	toB := *lin.NewV3().Sub(&posB, &posA)
	if normal.Dot(&toB) < 0 {
		normal = *lin.NewV3().Neg(&normal)
	}

	contactA, _ := reconstructContactPoints(vertsA, vertsB, polytope, face, normal)
	manifold := ContactManifold{Normal: normal, Depth: depth, Points: []lin.V3{contactA}}

	elasticity := maxF(ea.Collider.Elasticity, eb.Collider.Elasticity)
	kineticFriction := minF(ea.Collider.KineticFriction, eb.Collider.KineticFriction)
	staticFriction := minF(ea.Collider.StaticFriction, eb.Collider.StaticFriction)

	Resolve(manifold,
		ContactParty{Body: ea.Body, Collider: ea.Collider},
		ContactParty{Body: eb.Body, Collider: eb.Collider},
		elasticity, staticFriction, kineticFriction)
}

// restrictJoint adapts a scene-owned parent/child pair to the JointParty
// view Joint.Restrict expects, re-deriving the rotated parent offset first.
// Restrict only ever corrects velocity for a party with a Body (position
// integration happens once, in commit) or snaps the child's position
// directly (Locked and Rotator always; the spring variants only when
// neither party has a Body), so the delta picked up here is exclusively
// the direct-snap case.
func (s *Scene) restrictJoint(jb JointBinding, dt float64) {
	parent, child := s.Entities[jb.Parent], s.Entities[jb.Child]
	if parent.Collider == nil || child.Collider == nil {
		return
	}

	parentPos := parent.Collider.GeometricCenter()
	childPos := child.Collider.GeometricCenter()
	oldChildPos := childPos

	var parentRotation lin.Q
	if parent.Body != nil {
		parentRotation = parent.Body.Orientation
	} else {
		parentRotation = lin.Q{W: 1}
	}
	jb.Joint.RotateParentOffset(parentRotation)

	parentParty := JointParty{Position: &parentPos}
	childParty := JointParty{Position: &childPos}
	if parent.Body != nil {
		parentParty.Rotation = &parent.Body.Orientation
		parentParty.Body = &parent.Body.PointBody
	}
	if child.Body != nil {
		childParty.Rotation = &child.Body.Orientation
		childParty.Body = &child.Body.PointBody
	}

	jb.Joint.Restrict(parentParty, childParty, dt)

	delta := *lin.NewV3().Sub(&childPos, &oldChildPos)
	if delta.Len() > 0 {
		d := child.Collider.Data()
		d.TX, d.TY, d.TZ = d.TX+delta.X, d.TY+delta.Y, d.TZ+delta.Z
		child.Collider.SetData(d)
	}
}

// commit advances entity i's collider transform by its body's velocity
// over dt (§4.7): position by linVel*dt, and, for rigid bodies, orientation
// by the accumulated quaternion projected back to the collider's Euler
// fields.
func (s *Scene) commit(i int, dt float64) {
	e := s.Entities[i]
	if e.Body == nil || e.Collider == nil || e.Collider.Static {
		return
	}

	delta := e.Body.DeltaPosition(dt)
	d := e.Collider.Data()
	d.TX, d.TY, d.TZ = d.TX+delta.X, d.TY+delta.Y, d.TZ+delta.Z

	e.Body.IntegrateOrientation(dt)
	d.RX, d.RY, d.RZ = e.Body.EulerAngles()

	e.Collider.SetData(d)
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
