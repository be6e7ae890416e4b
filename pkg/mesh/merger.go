package mesh

import v3 "github.com/deadsy/sdfx/vec/v3"

// VertexMerger accumulates polygon faces into an indexed mesh,
// collapsing identical vertex positions to one shared index. Dedup is
// global for the lifetime of one merger and never reaches across
// mergers.
type VertexMerger struct {
	vertices []v3.Vec
	faces    [][]int
	index    map[[3]float64]int
}

// NewVertexMerger creates an empty vertex-merging mesh builder.
func NewVertexMerger() *VertexMerger {
	return &VertexMerger{index: make(map[[3]float64]int)}
}

// AddVertex returns the index of the given position, appending it to
// the vertex list on first sight.
func (b *VertexMerger) AddVertex(p v3.Vec) int {
	key := [3]float64{p.X, p.Y, p.Z}
	if i, ok := b.index[key]; ok {
		return i
	}
	i := len(b.vertices)
	b.vertices = append(b.vertices, p)
	b.index[key] = i
	return i
}

// AddFace appends one polygon face, deduplicating its vertices.
func (b *VertexMerger) AddFace(polygon []v3.Vec) {
	face := make([]int, len(polygon))
	for i, p := range polygon {
		face[i] = b.AddVertex(p)
	}
	b.faces = append(b.faces, face)
}

// Mesh finalizes the accumulated geometry into an immutable mesh. The
// merger must not be reused afterwards.
func (b *VertexMerger) Mesh() *Mesh {
	return &Mesh{Vertices: b.vertices, Faces: b.faces}
}
