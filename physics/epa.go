package physics

import (
	"github.com/IsaacLagoy/GoPhysicsAlgorithms/math/lin"
)

const (
	epa_max_iterations = 64
	epa_epsilon        = 1e-4
)

// epa_face indexes three polytope vertices, winding outward.
type epa_face struct {
	a, b, c int
}

// epa_edge indexes two polytope vertices forming one edge of a face.
type epa_edge struct {
	a, b int
}

// polytope_from_gjk_simplex seeds the EPA polytope from the terminal GJK
// tetrahedron.
func polytope_from_gjk_simplex(s *gjk_Simplex) (polytope []lin.V3, faces []epa_face) {
	polytope = []lin.V3{s.a, s.b, s.c, s.d}
	faces = []epa_face{
		{0, 1, 2}, // ABC
		{0, 2, 3}, // ACD
		{0, 3, 1}, // ADB
		{1, 2, 3}, // BCD
	}
	return polytope, faces
}

// face_normal_and_distance returns the outward unit normal of face and its
// (non-negative) distance from the origin to the face's plane.
func face_normal_and_distance(face epa_face, polytope []lin.V3) (normal lin.V3, distance float64) {
	a, b, c := polytope[face.a], polytope[face.b], polytope[face.c]
	ab := *lin.NewV3().Sub(&b, &a)
	ac := *lin.NewV3().Sub(&c, &a)
	n := lin.NewV3().Cross(&ab, &ac).Unit()

	// Orient n away from the polytope's centroid, which lies inside the
	// polytope even when the origin sits on this face's plane.
	var centroid lin.V3
	for i := range polytope {
		centroid.Add(&centroid, &polytope[i])
	}
	centroid.Scale(&centroid, 1/float64(len(polytope)))
	if n.Dot(lin.NewV3().Sub(&a, &centroid)) < 0 {
		n.Neg(n)
	}
	return *n, n.Dot(&a)
}

// add_edge toggles edge in edges: a shared edge between two removed faces
// cancels out (it is interior to the hole), otherwise it is recorded as
// silhouette.
func add_edge(edges []epa_edge, edge epa_edge) []epa_edge {
	for i, e := range edges {
		if (e.a == edge.a && e.b == edge.b) || (e.a == edge.b && e.b == edge.a) {
			return append(edges[:i], edges[i+1:]...)
		}
	}
	return append(edges, edge)
}

// epa expands the GJK terminal simplex into a polytope and walks toward the
// surface of the Minkowski difference to find the minimum-penetration
// separating normal, distance, and the face that produced it.
func epa(pointsA, pointsB []lin.V3, simplex gjk_Simplex) (normal lin.V3, depth float64, polytope []lin.V3, face epa_face, err error) {
	var faces []epa_face
	polytope, faces = polytope_from_gjk_simplex(&simplex)

	normals := make([]lin.V3, len(faces))
	distances := make([]float64, len(faces))
	for i, f := range faces {
		normals[i], distances[i] = face_normal_and_distance(f, polytope)
	}

	for it := 0; it < epa_max_iterations; it++ {
		minIdx := 0
		for i := 1; i < len(distances); i++ {
			if distances[i] < distances[minIdx] {
				minIdx = i
			}
		}
		minNormal, minDistance := normals[minIdx], distances[minIdx]

		support := support_point_of_minkowski_difference(pointsA, pointsB, minNormal)
		d := minNormal.Dot(&support)
		if d-minDistance < epa_epsilon {
			return minNormal, minDistance, polytope, faces[minIdx], nil
		}

		// Remove every face the new point can see, collecting the
		// silhouette edges that border the resulting hole.
		newIndex := len(polytope)
		polytope = append(polytope, support)

		edges := []epa_edge{}
		keptFaces := faces[:0]
		keptNormals := normals[:0]
		keptDistances := distances[:0]
		for i, f := range faces {
			if normals[i].Dot(lin.NewV3().Sub(&support, &polytope[f.a])) > 0 {
				edges = add_edge(edges, epa_edge{f.a, f.b})
				edges = add_edge(edges, epa_edge{f.b, f.c})
				edges = add_edge(edges, epa_edge{f.c, f.a})
				continue
			}
			keptFaces = append(keptFaces, f)
			keptNormals = append(keptNormals, normals[i])
			keptDistances = append(keptDistances, distances[i])
		}
		faces, normals, distances = keptFaces, keptNormals, keptDistances

		for _, e := range edges {
			nf := epa_face{e.a, e.b, newIndex}
			n, d := face_normal_and_distance(nf, polytope)
			faces = append(faces, nf)
			normals = append(normals, n)
			distances = append(distances, d)
		}
	}
	return normal, depth, polytope, face, ErrIterationCap
}
