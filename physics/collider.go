package physics

import (
	"math"

	"github.com/IsaacLagoy/GoPhysicsAlgorithms/math/lin"
)

// ColliderHandle identifies a Collider within a scene.
type ColliderHandle string

// ColliderData is the nine-element external transform vector accepted at
// construction and on every update: position, scale, then Euler rotation
// (radians) about X, Y, Z.
type ColliderData struct {
	TX, TY, TZ float64
	SX, SY, SZ float64
	RX, RY, RZ float64
}

// DefaultColliderData returns an untranslated, unit-scaled, unrotated
// transform vector.
func DefaultColliderData() ColliderData {
	return ColliderData{SX: 1, SY: 1, SZ: 1}
}

// Collider is the per-body transform and derived-geometry cache described in
// the data model: a mutable transform over an immutable shared prefab.
// World vertices, dimensions, center, and inertia tensor are recomputed
// whenever the transform is replaced via SetData.
type Collider struct {
	data   ColliderData
	prefab *Prefab

	Static     bool
	Elasticity float64

	StaticFriction  float64
	KineticFriction float64

	// baseVolume is the volume of the prefab's assumed unit-cube shape
	// before scaling; see Volume.
	baseVolume float64

	worldVertices  []lin.V3
	dimensions     lin.V3
	geometricCenter lin.V3
	inertiaTensor  lin.M3
}

// NewCollider constructs a collider bound to prefab, with the given initial
// transform. Elasticity defaults to 0.2, static friction to 0.8, and
// kinetic friction to 0.4, matching the engine's construction defaults.
func NewCollider(prefab *Prefab, data ColliderData, static bool) *Collider {
	c := &Collider{
		data:            data,
		prefab:          prefab,
		Static:          static,
		Elasticity:      0.2,
		StaticFriction:  0.8,
		KineticFriction: 0.4,
		baseVolume:      8,
	}
	c.recompute(ColliderData{}, true, true)
	return c
}

// Data returns the collider's current external transform vector.
func (c *Collider) Data() ColliderData { return c.data }

// SetData replaces the collider's transform and refreshes every cache that
// depends on the changed fields: world vertices and geometric center always,
// dimensions when scale changed, and the inertia tensor when scale or
// rotation changed. Calling SetData twice with the same data is idempotent:
// the caches end up identical both times (testable property 8).
func (c *Collider) SetData(data ColliderData) {
	old := c.data
	c.data = data
	scaleChanged := old.SX != data.SX || old.SY != data.SY || old.SZ != data.SZ
	rotationChanged := old.RX != data.RX || old.RY != data.RY || old.RZ != data.RZ
	c.recompute(old, scaleChanged, scaleChanged || rotationChanged)
}

// SetPosition updates only the translation component of the transform.
func (c *Collider) SetPosition(x, y, z float64) {
	d := c.data
	d.TX, d.TY, d.TZ = x, y, z
	c.SetData(d)
}

// SetScale updates only the scale component of the transform.
func (c *Collider) SetScale(x, y, z float64) {
	d := c.data
	d.SX, d.SY, d.SZ = x, y, z
	c.SetData(d)
}

// SetRotation updates only the Euler rotation component of the transform.
func (c *Collider) SetRotation(x, y, z float64) {
	d := c.data
	d.RX, d.RY, d.RZ = x, y, z
	c.SetData(d)
}

// modelRotation returns the 3x3 rotation matrix rotateX(-rx)*rotateY(-ry)*rotateZ(-rz),
// matching the source engine's negative-axis convention, which this
// implementation preserves for compatibility.
func (c *Collider) modelRotation() lin.M3 {
	rx := *lin.NewM3().SetAa(1, 0, 0, -c.data.RX)
	ry := *lin.NewM3().SetAa(0, 1, 0, -c.data.RY)
	rz := *lin.NewM3().SetAa(0, 0, 1, -c.data.RZ)
	r := *lin.NewM3().Mult(&rx, &ry)
	r = *lin.NewM3().Mult(&r, &rz)
	return r
}

// worldVertex applies the model transform translate*rotateX(-rx)*rotateY(-ry)*rotateZ(-rz)*scale
// to a single prefab-local vertex.
func (c *Collider) worldVertex(r *lin.M3, v lin.V3) lin.V3 {
	scaled := lin.V3{X: v.X * c.data.SX, Y: v.Y * c.data.SY, Z: v.Z * c.data.SZ}
	rotated := *lin.NewV3().MultMv(r, &scaled)
	translated := *lin.NewV3().Add(&rotated, &lin.V3{X: c.data.TX, Y: c.data.TY, Z: c.data.TZ})
	return translated
}

// recompute refreshes world vertices and geometric center unconditionally,
// and dimensions / inertia tensor only when their respective dependent
// fields changed (per the invariants in §3).
func (c *Collider) recompute(_ ColliderData, dimsChanged, inertiaChanged bool) {
	r := c.modelRotation()
	verts := c.prefab.Vertices()
	world := make([]lin.V3, len(verts))
	for i, v := range verts {
		world[i] = c.worldVertex(&r, v)
	}
	c.worldVertices = world
	c.geometricCenter = aabbCenter(world)

	if dimsChanged {
		c.dimensions = c.localDimensions()
	}
	if inertiaChanged {
		c.inertiaTensor = c.computeInertiaTensor(1)
	}
}

// WorldVertices returns the collider's current world-space vertex cache.
// Callers must not mutate the returned slice.
func (c *Collider) WorldVertices() []lin.V3 { return c.worldVertices }

// GeometricCenter returns the AABB midpoint of the current world vertices.
func (c *Collider) GeometricCenter() lin.V3 { return c.geometricCenter }

// Dimensions returns the local-space AABB extent of the scaled prefab
// (rotation-invariant, used for broad queries).
func (c *Collider) Dimensions() lin.V3 { return c.dimensions }

// localDimensions computes max-min per axis over the prefab vertices scaled
// component-wise, without rotation or translation.
func (c *Collider) localDimensions() lin.V3 {
	min := lin.V3{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64}
	max := lin.V3{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64}
	for _, v := range c.prefab.Vertices() {
		p := lin.V3{X: v.X * c.data.SX, Y: v.Y * c.data.SY, Z: v.Z * c.data.SZ}
		min.X, max.X = math.Min(min.X, p.X), math.Max(max.X, p.X)
		min.Y, max.Y = math.Min(min.Y, p.Y), math.Max(max.Y, p.Y)
		min.Z, max.Z = math.Min(min.Z, p.Z), math.Max(max.Z, p.Z)
	}
	return lin.V3{X: max.X - min.X, Y: max.Y - min.Y, Z: max.Z - min.Z}
}

// aabbCenter returns the midpoint of the axis-aligned bounding box of points.
func aabbCenter(points []lin.V3) lin.V3 {
	min := lin.V3{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64}
	max := lin.V3{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64}
	for _, p := range points {
		min.X, max.X = math.Min(min.X, p.X), math.Max(max.X, p.X)
		min.Y, max.Y = math.Min(min.Y, p.Y), math.Max(max.Y, p.Y)
		min.Z, max.Z = math.Min(min.Z, p.Z), math.Max(max.Z, p.Z)
	}
	return lin.V3{X: (min.X + max.X) / 2, Y: (min.Y + max.Y) / 2, Z: (min.Z + max.Z) / 2}
}

// InertiaTensor returns the collider's cached point-cloud inertia tensor for
// a body of the given mass, scaled from the unit-mass cache. This is a
// point-cloud approximation over the vertex cloud, not an integral over the
// solid volume; callers must not depend on solid-body values.
func (c *Collider) InertiaTensor(mass float64) lin.M3 {
	t := c.inertiaTensor
	return lin.M3{
		Xx: t.Xx * mass, Xy: t.Xy * mass, Xz: t.Xz * mass,
		Yx: t.Yx * mass, Yy: t.Yy * mass, Yz: t.Yz * mass,
		Zx: t.Zx * mass, Zy: t.Zy * mass, Zz: t.Zz * mass,
	}
}

// computeInertiaTensor accumulates the rotation-aware point-cloud inertia
// tensor described in §4.5, for the given unit mass, over the current
// world vertices relative to the geometric center.
func (c *Collider) computeInertiaTensor(mass float64) lin.M3 {
	var ixx, iyy, izz, ixy, ixz, iyz float64
	for _, v := range c.worldVertices {
		r := *lin.NewV3().Sub(&v, &c.geometricCenter)
		ixx += r.Y*r.Y + r.Z*r.Z
		iyy += r.X*r.X + r.Z*r.Z
		izz += r.X*r.X + r.Y*r.Y
		ixy -= r.X * r.Y
		ixz -= r.X * r.Z
		iyz -= r.Y * r.Z
	}
	n := float64(len(c.worldVertices))
	if n == 0 {
		n = 1
	}
	s := mass / n
	return lin.M3{
		Xx: ixx * s, Xy: ixy * s, Xz: ixz * s,
		Yx: ixy * s, Yy: iyy * s, Yz: iyz * s,
		Zx: ixz * s, Zy: iyz * s, Zz: izz * s,
	}
}

// Volume returns the collider's volume, assuming the unit-cube prefab base
// volume of 8 scaled by the transform's scale components.
func (c *Collider) Volume() float64 {
	return c.baseVolume * c.data.SX * c.data.SY * c.data.SZ
}

// RadiusTo returns the vector from the collider's geometric center to point.
func (c *Collider) RadiusTo(point lin.V3) lin.V3 {
	return *lin.NewV3().Sub(&point, &c.geometricCenter)
}
