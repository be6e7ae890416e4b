package mesh

import v3 "github.com/deadsy/sdfx/vec/v3"

// RenderMesh is a triangle mesh suitable for rendering.
// All arrays are flat: vertices has 3 floats per vertex (x,y,z),
// normals has 3 floats per vertex, indices has 3 uint32s per triangle.
type RenderMesh struct {
	Vertices []float32 `json:"vertices"` // [x0,y0,z0, x1,y1,z1, ...]
	Normals  []float32 `json:"normals"`  // [nx0,ny0,nz0, ...]
	Indices  []uint32  `json:"indices"`  // [i0,i1,i2, ...] triangles
	PartName string    `json:"partName"` // which scene solid this came from
}

// TriangleCount returns the number of triangles.
func (m *RenderMesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the render mesh has no geometry.
func (m *RenderMesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Render converts the polygon mesh into a flat triangle mesh by fan
// triangulation. Polygons are assumed convex with counter-clockwise
// winding, so each fan triangle inherits the face normal.
func (m *Mesh) Render(name string) *RenderMesh {
	r := &RenderMesh{PartName: name}

	for _, face := range m.Faces {
		if len(face) < 3 {
			continue
		}
		a := m.Vertices[face[0]]
		b := m.Vertices[face[1]]
		c := m.Vertices[face[2]]
		n := faceNormal(a, b, c)
		nx := float32(n.X)
		ny := float32(n.Y)
		nz := float32(n.Z)

		for i := 1; i < len(face)-1; i++ {
			for _, vi := range []int{face[0], face[i], face[i+1]} {
				v := m.Vertices[vi]
				base := uint32(len(r.Vertices) / 3)
				r.Vertices = append(r.Vertices, float32(v.X), float32(v.Y), float32(v.Z))
				r.Normals = append(r.Normals, nx, ny, nz)
				r.Indices = append(r.Indices, base)
			}
		}
	}
	return r
}

// faceNormal computes the unit normal of the triangle (a, b, c).
func faceNormal(a, b, c v3.Vec) v3.Vec {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Length() == 0 {
		return v3.Vec{}
	}
	return n.Normalize()
}
