package island

import "github.com/Faultbox/islandgen/pkg/geom"

// Collision is a static concave collision soup: consecutive vertex triples
// form triangles. It is built from the union of every surface's geometry —
// not just the first one — so physics always matches the visible terrain
// even when low bands are empty.
type Collision struct {
	Vertices []geom.Vec3
}

// TriangleCount returns the number of collision triangles.
func (c *Collision) TriangleCount() int {
	return len(c.Vertices) / 3
}

// buildCollision concatenates all surface positions in surface order. The
// same vertex data drives rendering and collision, so the two can never
// drift apart.
func buildCollision(mesh *Mesh) *Collision {
	total := 0
	for i := range mesh.Surfaces {
		total += mesh.Surfaces[i].VertexCount()
	}

	verts := make([]geom.Vec3, 0, total)
	for i := range mesh.Surfaces {
		verts = append(verts, mesh.Surfaces[i].Positions...)
	}
	return &Collision{Vertices: verts}
}
