package physics

import (
	"math"

	"github.com/IsaacLagoy/GoPhysicsAlgorithms/math/lin"
)

// Acceleration is a constant acceleration applied to every dynamic body each
// tick, e.g. gravity.
type Acceleration = lin.V3

// PointBody is the minimal physics state needed to move a point through
// space: a mass and a linear velocity. RigidBody builds on it by adding
// rotation.
type PointBody struct {
	Mass     float64
	Velocity lin.V3
}

// NewPointBody returns a point body with the given mass and zero velocity.
// Mass must be positive; NewPointBody panics with ErrInvalidMass otherwise,
// matching the policy that invalid mass is fatal to construction.
func NewPointBody(mass float64) *PointBody {
	if mass <= 0 {
		panic(ErrInvalidMass)
	}
	return &PointBody{Mass: mass}
}

// DeltaPosition returns how far the point body would travel over dt at its
// current velocity.
func (b *PointBody) DeltaPosition(dt float64) lin.V3 {
	return *lin.NewV3().Scale(&b.Velocity, dt)
}

// RigidBody extends PointBody with rotational state: a scalar rotational
// speed about a unit axis, plus the orientation quaternion that accumulates
// angular motion over time. The axis must be unit-length whenever
// RotationSpeed is non-zero.
type RigidBody struct {
	PointBody

	RotationSpeed float64 // scalar angular speed, radians/sec.
	Axis          lin.V3  // unit axis of rotation.
	Orientation   lin.Q   // accumulated rotation; identity at construction.
}

// NewRigidBody returns a rigid body with the given mass, zero velocities,
// and identity orientation. The default rotation axis is (1,0,0), matching
// the external construction defaults in §6. Mass must be positive;
// NewRigidBody panics with ErrInvalidMass otherwise, matching NewPointBody.
func NewRigidBody(mass float64) *RigidBody {
	if mass <= 0 {
		panic(ErrInvalidMass)
	}
	return &RigidBody{
		PointBody:   PointBody{Mass: mass, Velocity: lin.V3{}},
		Axis:        lin.V3{X: 1, Y: 0, Z: 0},
		Orientation: lin.Q{W: 1},
	}
}

// AngularVelocity returns the body's angular velocity vector, RotationSpeed
// scaled along Axis.
func (b *RigidBody) AngularVelocity() lin.V3 {
	return *lin.NewV3().Scale(&b.Axis, b.RotationSpeed)
}

// SetAngularVelocity sets RotationSpeed and Axis from an angular velocity
// vector. A near-zero vector (length < 1e-6) resets rotation to rest with
// the canonical (1,0,0) axis rather than normalizing noise into a direction.
func (b *RigidBody) SetAngularVelocity(w lin.V3) {
	length := w.Len()
	if length < 1e-6 {
		b.RotationSpeed = 0
		b.Axis = lin.V3{X: 1, Y: 0, Z: 0}
		return
	}
	b.RotationSpeed = length
	b.Axis = *lin.NewV3().Scale(&w, 1/length)
}

// IntegrateVelocity advances the body's linear velocity under a set of
// constant external accelerations (e.g. gravity) over dt. Called once per
// tick before narrow-phase collision detection.
func (b *PointBody) IntegrateVelocity(accelerations []Acceleration, dt float64) {
	for i := range accelerations {
		a := accelerations[i]
		b.Velocity.X += a.X * dt
		b.Velocity.Y += a.Y * dt
		b.Velocity.Z += a.Z * dt
	}
}

// IntegrateOrientation advances the body's orientation quaternion by the
// current angular velocity over dt, q <- q (x) angleAxis(-w*dt, axis), the
// sign matching the source's counter-clockwise-positive convention.
func (b *RigidBody) IntegrateOrientation(dt float64) {
	if b.RotationSpeed == 0 {
		return
	}
	theta := -b.RotationSpeed * dt
	step := lin.NewQ().SetAa(b.Axis.X, b.Axis.Y, b.Axis.Z, theta)
	b.Orientation.Mult(&b.Orientation, step)
}

// EulerAngles projects the body's accumulated orientation quaternion down
// to Euler XYZ angles (radians), the externally observed rotation a
// collider's transform would be set to after a tick.
func (b *RigidBody) EulerAngles() (rx, ry, rz float64) {
	return quaternionToEuler(&b.Orientation)
}

// quaternionToEuler converts a unit quaternion to intrinsic XYZ Euler
// angles using the standard closed-form extraction; singular (gimbal-lock)
// configurations clamp the middle angle instead of producing NaN.
func quaternionToEuler(q *lin.Q) (rx, ry, rz float64) {
	x, y, z, w := q.X, q.Y, q.Z, q.W

	sinrCosp := 2 * (w*x + y*z)
	cosrCosp := 1 - 2*(x*x+y*y)
	rx = math.Atan2(sinrCosp, cosrCosp)

	sinp := 2 * (w*y - z*x)
	if sinp > 1 {
		sinp = 1
	} else if sinp < -1 {
		sinp = -1
	}
	ry = math.Asin(sinp)

	sinyCosp := 2 * (w*z + x*y)
	cosyCosp := 1 - 2*(y*y+z*z)
	rz = math.Atan2(sinyCosp, cosyCosp)
	return rx, ry, rz
}
