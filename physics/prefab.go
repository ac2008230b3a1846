// Package physics implements the narrow-phase collision and impulse-response
// core of a small 3D physics engine: convex-convex intersection (GJK/EPA),
// contact reconstruction, rigid-body integration, impulse resolution, and
// joint constraints. Broad-phase pair culling, asset loading, and rendering
// are external collaborators and are not part of this package.
package physics

import (
	"github.com/IsaacLagoy/GoPhysicsAlgorithms/math/lin"
	"github.com/google/uuid"
)

// PrefabHandle identifies a Prefab within a PrefabTable. Colliders do not
// store the handle: NewCollider takes and keeps a direct *Prefab pointer,
// so a prefab replaced in the table is not seen by existing colliders.
type PrefabHandle string

// Prefab is an immutable convex polyhedron template: an ordered sequence of
// unique local-space vertices. Prefabs are shared by many colliders and live
// for the lifetime of the scene; nothing in this package mutates one after
// creation.
type Prefab struct {
	handle   PrefabHandle
	vertices []lin.V3
}

// PrefabTable owns the set of prefabs available to colliders in a scene.
// It is the handle-indexed analogue of the scene's prefab_handler in the
// original engine.
type PrefabTable struct {
	prefabs map[PrefabHandle]*Prefab
}

// NewPrefabTable returns an empty prefab table.
func NewPrefabTable() *PrefabTable {
	return &PrefabTable{prefabs: map[PrefabHandle]*Prefab{}}
}

// Add registers a new prefab built from the given local-space vertices and
// returns a handle to it. The vertex slice is copied so the caller's backing
// array can't mutate the prefab afterwards.
func (t *PrefabTable) Add(vertices []lin.V3) PrefabHandle {
	h := PrefabHandle(uuid.NewString())
	verts := make([]lin.V3, len(vertices))
	copy(verts, vertices)
	t.prefabs[h] = &Prefab{handle: h, vertices: verts}
	return h
}

// Get returns the prefab for the given handle, or nil if the handle is
// unknown.
func (t *PrefabTable) Get(h PrefabHandle) *Prefab {
	return t.prefabs[h]
}

// Vertices returns the prefab's local-space vertex list. Callers must not
// mutate the returned slice.
func (p *Prefab) Vertices() []lin.V3 { return p.vertices }

// UnitCube is the prefab vertex set assumed by the collider's baseVolume: an
// axis-aligned cube with side length 2 (half-extent 1) centered at the
// origin, matching baseVolume's 2*2*2 assumption.
func UnitCube() []lin.V3 {
	return []lin.V3{
		{X: -1, Y: -1, Z: -1},
		{X: -1, Y: -1, Z: 1},
		{X: -1, Y: 1, Z: -1},
		{X: -1, Y: 1, Z: 1},
		{X: 1, Y: -1, Z: -1},
		{X: 1, Y: -1, Z: 1},
		{X: 1, Y: 1, Z: -1},
		{X: 1, Y: 1, Z: 1},
	}
}
