package physics

import (
	"testing"

	"github.com/IsaacLagoy/GoPhysicsAlgorithms/math/lin"
)

func TestNewPointBodyInvalidMassPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != ErrInvalidMass {
			t.Errorf("expected panic ErrInvalidMass, got %v", r)
		}
	}()
	NewPointBody(0)
}

func TestNewRigidBodyInvalidMassPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != ErrInvalidMass {
			t.Errorf("expected panic ErrInvalidMass, got %v", r)
		}
	}()
	NewRigidBody(0)
}

// TestGravityFreeDrift checks the gravity-free drift scenario from §8: a
// body with velocity (1,0,0) and dt=1 advances position by exactly (1,0,0).
func TestGravityFreeDrift(t *testing.T) {
	b := NewPointBody(1)
	b.Velocity = lin.V3{X: 1}
	delta := b.DeltaPosition(1)
	want := lin.V3{X: 1}
	if !delta.Aeq(&want) {
		t.Errorf("expected drift delta %v, got %v", want, delta)
	}
}

func TestIntegrateVelocityAppliesAcceleration(t *testing.T) {
	b := NewPointBody(1)
	gravity := lin.V3{Y: -10}
	b.IntegrateVelocity([]Acceleration{gravity}, 0.5)
	want := lin.V3{Y: -5}
	if !b.Velocity.Aeq(&want) {
		t.Errorf("expected velocity %v after half-second of gravity, got %v", want, b.Velocity)
	}
}

func TestSetAngularVelocityNearZeroResets(t *testing.T) {
	rb := NewRigidBody(1)
	rb.SetAngularVelocity(lin.V3{X: 1e-9})
	if rb.RotationSpeed != 0 {
		t.Errorf("expected RotationSpeed reset to 0, got %v", rb.RotationSpeed)
	}
	want := lin.V3{X: 1}
	if !rb.Axis.Aeq(&want) {
		t.Errorf("expected canonical axis %v, got %v", want, rb.Axis)
	}
}

func TestAngularVelocityRoundTrip(t *testing.T) {
	rb := NewRigidBody(1)
	w := lin.V3{X: 0, Y: 2, Z: 0}
	rb.SetAngularVelocity(w)
	got := rb.AngularVelocity()
	if !got.Aeq(&w) {
		t.Errorf("expected angular velocity %v, got %v", w, got)
	}
}

func TestIntegrateOrientationNoRotationIsNoop(t *testing.T) {
	rb := NewRigidBody(1)
	before := rb.Orientation
	rb.IntegrateOrientation(1)
	if !rb.Orientation.Eq(&before) {
		t.Errorf("expected orientation unchanged at zero rotation speed, got %v", rb.Orientation)
	}
}

func TestEulerAnglesIdentityIsZero(t *testing.T) {
	rb := NewRigidBody(1)
	rx, ry, rz := rb.EulerAngles()
	if !lin.Aeq(rx, 0) || !lin.Aeq(ry, 0) || !lin.Aeq(rz, 0) {
		t.Errorf("expected zero Euler angles at identity orientation, got (%v,%v,%v)", rx, ry, rz)
	}
}
