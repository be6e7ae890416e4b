// Package mesh assembles extracted polygon faces into indexed meshes.
// A mesh holds a deduplicated vertex list and faces as index lists into
// it, which is the whole contract a renderer or exporter needs.
package mesh

import v3 "github.com/deadsy/sdfx/vec/v3"

// Mesh is an immutable indexed polygon mesh.
type Mesh struct {
	Vertices []v3.Vec
	Faces    [][]int
}

// VertexCount returns the number of deduplicated vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}
