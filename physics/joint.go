package physics

import (
	"math"

	"github.com/IsaacLagoy/GoPhysicsAlgorithms/math/lin"
)

// JointKind selects which positional constraint a Joint enforces between a
// parent and child. A single Joint value carries the parameters for every
// kind; restrict() dispatches on Kind rather than relying on a type
// hierarchy.
type JointKind int

const (
	JointBasic JointKind = iota
	JointBall
	JointHinge
	JointRotator
	JointLocked
)

// jointAnchorEpsilon is the minimum parent-to-child displacement a joint
// will act on; below it every variant early-exits to avoid dividing by a
// near-zero direction.
const jointAnchorEpsilon = 1e-7

// JointParty is the positional and (optional) physics state a joint acts
// on. Position is authoritative; Body is nil for colliders without
// physics. Locked and Rotator joints always snap the child's position;
// the spring variants snap it only when neither party has a Body and
// otherwise correct the velocity of whichever parties have one.
type JointParty struct {
	Position *lin.V3
	Rotation *lin.Q // nil if the party has no tracked orientation.
	Body     *PointBody
}

// Joint ties a child party to a parent party. ParentOffset is the
// attachment point in the parent's local frame; OriginalParentOffset is the
// same vector preserved across parent rotation so it can be re-derived each
// tick via the sandwich product q^-1 * offset * q. ChildOffset is the
// target radial distance from anchor to child.
type Joint struct {
	Kind JointKind

	ParentOffset         lin.V3
	OriginalParentOffset lin.V3
	ChildOffset          float64

	SpringConstant float64
	MinRadius      float64
	MaxRadius      float64

	// HingeAxis / RotatorAxis constrain JointHinge / JointRotator to a
	// single rotational degree of freedom. HingeAxis is used as given and
	// is not rotated with the parent's orientation.
	HingeAxis   lin.V3
	RotatorAxis lin.V3
}

// NewJoint returns a joint of the given kind with the spring defaults used
// across the source's joint variants (spring constant 100, min radius 0,
// max radius 1), anchored at parentOffset with the given child radius.
func NewJoint(kind JointKind, parentOffset lin.V3, childOffset float64) *Joint {
	return &Joint{
		Kind:                 kind,
		ParentOffset:         parentOffset,
		OriginalParentOffset: parentOffset,
		ChildOffset:          childOffset,
		SpringConstant:       1e2,
		MinRadius:            0,
		MaxRadius:            1,
	}
}

// RotateParentOffset re-derives ParentOffset from OriginalParentOffset and
// the parent's current orientation via the sandwich product
// q^-1 * (0, offset) * q, so the attachment point turns with the parent.
func (j *Joint) RotateParentOffset(parentRotation lin.Q) {
	inv := *lin.NewQ().Inv(&parentRotation)
	rotated := *lin.NewQ().MultQV(&inv, &j.OriginalParentOffset)
	rotated.Mult(&parentRotation, &rotated) // lin's Mult(r, s) is s*r.
	j.ParentOffset = lin.V3{X: rotated.X, Y: rotated.Y, Z: rotated.Z}
}

// anchor returns the current world-space attachment point: the parent's
// position plus its (possibly rotated) local offset.
func (j *Joint) anchor(parent JointParty) lin.V3 {
	return *lin.NewV3().Add(parent.Position, &j.ParentOffset)
}

// Restrict enforces the joint's constraint between parent and child over
// dt, dispatching on Kind. Every variant early-exits when the anchor is
// within jointAnchorEpsilon of the child's current position.
func (j *Joint) Restrict(parent, child JointParty, dt float64) {
	anchor := j.anchor(parent)
	displacement := *lin.NewV3().Sub(&anchor, child.Position)
	if displacement.Len() < jointAnchorEpsilon {
		return
	}

	switch j.Kind {
	case JointLocked:
		*child.Position = anchor
		if child.Rotation != nil && parent.Rotation != nil {
			*child.Rotation = *parent.Rotation
		}
	case JointRotator:
		*child.Position = anchor
		// Rotation about RotatorAxis is left free: nothing else to enforce.
	case JointHinge:
		j.restrictSpring(parent, child, anchor, displacement, dt, true)
	case JointBall:
		j.restrictSpring(parent, child, anchor, displacement, dt, false)
		j.faceAnchor(child, anchor)
	default: // JointBasic
		j.restrictSpring(parent, child, anchor, displacement, dt, false)
	}
}

// restrictSpring implements the common Basic/Ball/Hinge behavior: snap the
// child to the anchor when neither party has a physics body, otherwise
// apply a damped spring force split between whichever parties do have one.
// When projectToHinge is true, the force is projected onto the joint's
// configured hinge axis (taken as given, not rotated by the parent's
// orientation) before being applied,
// restricting the correction to a single rotational degree of freedom.
func (j *Joint) restrictSpring(parent, child JointParty, anchor, displacement lin.V3, dt float64, projectToHinge bool) {
	if child.Body == nil && parent.Body == nil {
		*child.Position = anchor
		return
	}

	direction := *lin.NewV3().Scale(&displacement, 1/displacement.Len())
	radial := anchor.Dist(child.Position) - j.ChildOffset
	springForce := *lin.NewV3().Scale(&direction, j.SpringConstant*radial)

	var dampingVelocity lin.V3
	if child.Body != nil {
		dampingVelocity = child.Body.Velocity
	} else {
		dampingVelocity = parent.Body.Velocity
	}
	damping := *lin.NewV3().Scale(&dampingVelocity, -math.Sqrt(j.SpringConstant))

	total := *lin.NewV3().Add(&springForce, &damping)
	if child.Body != nil && parent.Body != nil {
		total.Scale(&total, 0.5)
	}
	if projectToHinge && j.HingeAxis.Len() > 0 {
		axis := *lin.NewV3().Scale(&j.HingeAxis, 1/j.HingeAxis.Len())
		total = *lin.NewV3().Scale(&axis, total.Dot(&axis))
	}

	// Only velocity is corrected here; position is left to the caller's own
	// integration step so a jointed body's displacement is counted once per
	// tick rather than once here and again during integration.
	if child.Body != nil {
		accel := *lin.NewV3().Scale(&total, 1/child.Body.Mass)
		child.Body.Velocity.Add(&child.Body.Velocity, lin.NewV3().Scale(&accel, dt))
	}
	if parent.Body != nil {
		negTotal := *lin.NewV3().Neg(&total)
		accel := *lin.NewV3().Scale(&negTotal, 1/parent.Body.Mass)
		parent.Body.Velocity.Add(&parent.Body.Velocity, lin.NewV3().Scale(&accel, dt))
	}
}

// faceAnchor orients the child to face the anchor point; stable when
// |offset| -> 0 because the direction is only computed once it clears
// jointAnchorEpsilon in Restrict.
func (j *Joint) faceAnchor(child JointParty, anchor lin.V3) {
	if child.Rotation == nil {
		return
	}
	toAnchor := *lin.NewV3().Sub(&anchor, child.Position)
	if toAnchor.Len() < jointAnchorEpsilon {
		return
	}
	forward := lin.V3{X: 0, Y: 0, Z: 1}
	direction := *lin.NewV3().Scale(&toAnchor, 1/toAnchor.Len())
	axis := *lin.NewV3().Cross(&forward, &direction)
	cosAngle := forward.Dot(&direction)
	if axis.Len() < jointAnchorEpsilon {
		if cosAngle < 0 {
			*child.Rotation = *lin.NewQ().SetAa(0, 1, 0, math.Pi)
		}
		return
	}
	angle := math.Acos(clamp(cosAngle, -1, 1))
	*child.Rotation = *lin.NewQ().SetAa(axis.X, axis.Y, axis.Z, angle)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
