package physics

import "errors"

// Error kinds surfaced by the narrow-phase and construction paths. Per the
// engine's error policy, DegenerateGeometry and IterationCap are recoverable
// (the caller sees them as no-collision) while InvalidMass is fatal to body
// construction.
var (
	// ErrDegenerateGeometry is returned when GJK cannot build a non-singular
	// simplex because both inputs reduce to effectively a point or a single
	// direction.
	ErrDegenerateGeometry = errors.New("physics: degenerate geometry")

	// ErrIterationCap is returned when GJK or EPA exceed their iteration
	// budget without converging.
	ErrIterationCap = errors.New("physics: iteration cap exceeded")

	// ErrInvalidMass is the value NewPointBody and NewRigidBody panic with
	// when a body is constructed with mass <= 0.
	ErrInvalidMass = errors.New("physics: mass must be positive")
)
