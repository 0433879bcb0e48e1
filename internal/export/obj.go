// Package export writes baked terrain to Wavefront OBJ files so the result
// can be inspected in any model viewer or imported by an engine.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/islandgen/pkg/island"
)

// WriteMeshOBJ writes the mesh as one OBJ object per surface. Position, UV
// and normal buffers are parallel, so every face index triplet reuses the
// same running vertex counter.
func WriteMeshOBJ(w io.Writer, mesh *island.Mesh) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# islandgen terrain, seed %d\n", mesh.Seed)

	base := 1 // OBJ indices are 1-based and global across the file
	for i := range mesh.Surfaces {
		s := &mesh.Surfaces[i]

		fmt.Fprintf(bw, "o %s\n", s.Band)
		for _, p := range s.Positions {
			fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z)
		}
		for _, uv := range s.UVs {
			fmt.Fprintf(bw, "vt %g %g\n", uv.X, uv.Y)
		}
		for _, n := range s.Normals {
			fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
		}

		if name, ok := s.Material.(string); ok && name != "" {
			fmt.Fprintf(bw, "usemtl %s\n", name)
		}

		for v := 0; v < s.VertexCount(); v += 3 {
			a, b, c := base+v, base+v+1, base+v+2
			fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
		}
		base += s.VertexCount()
	}

	return bw.Flush()
}

// WriteCollisionOBJ writes the collision soup as bare triangles, positions
// only.
func WriteCollisionOBJ(w io.Writer, col *island.Collision) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# islandgen collision soup")
	fmt.Fprintln(bw, "o collision")
	for _, p := range col.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z)
	}
	for v := 0; v < len(col.Vertices); v += 3 {
		fmt.Fprintf(bw, "f %d %d %d\n", v+1, v+2, v+3)
	}

	return bw.Flush()
}

// MeshToFile writes the mesh OBJ to path.
func MeshToFile(path string, mesh *island.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteMeshOBJ(f, mesh); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// CollisionToFile writes the collision OBJ to path.
func CollisionToFile(path string, col *island.Collision) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCollisionOBJ(f, col); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
