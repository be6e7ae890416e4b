package mesh

import (
	"math"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

func TestRenderFanTriangulation(t *testing.T) {
	b := NewVertexMerger()
	// A quad in the XY plane, counter-clockwise.
	b.AddFace([]v3.Vec{
		{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2},
	})
	// A triangle.
	b.AddFace([]v3.Vec{
		{X: 5, Y: 0}, {X: 6, Y: 0}, {X: 5, Y: 1},
	})
	m := b.Mesh()

	r := m.Render("part")
	if r.PartName != "part" {
		t.Errorf("part name = %q", r.PartName)
	}
	// Quad fans into 2 triangles, triangle stays 1.
	if r.TriangleCount() != 3 {
		t.Fatalf("expected 3 triangles, got %d", r.TriangleCount())
	}
	if len(r.Vertices) != 9*3 {
		t.Errorf("expected 27 vertex floats, got %d", len(r.Vertices))
	}
	if len(r.Normals) != len(r.Vertices) {
		t.Errorf("normals length %d != vertices length %d", len(r.Normals), len(r.Vertices))
	}
	if len(r.Indices) != 9 {
		t.Errorf("expected 9 indices, got %d", len(r.Indices))
	}

	// Counter-clockwise in the XY plane means +Z normals throughout.
	for i := 0; i < len(r.Normals); i += 3 {
		nx, ny, nz := r.Normals[i], r.Normals[i+1], r.Normals[i+2]
		if math.Abs(float64(nx)) > 1e-6 || math.Abs(float64(ny)) > 1e-6 ||
			math.Abs(float64(nz)-1) > 1e-6 {
			t.Fatalf("normal %d = (%g, %g, %g), want (0, 0, 1)", i/3, nx, ny, nz)
		}
	}
}

func TestRenderSkipsDegenerateFaces(t *testing.T) {
	m := &Mesh{
		Vertices: []v3.Vec{{X: 0}, {X: 1}},
		Faces:    [][]int{{0, 1}},
	}
	r := m.Render("bad")
	if !r.IsEmpty() {
		t.Error("faces with fewer than 3 vertices should render nothing")
	}
}

func TestRenderEmptyMesh(t *testing.T) {
	r := (&Mesh{}).Render("empty")
	if !r.IsEmpty() || r.TriangleCount() != 0 {
		t.Error("empty mesh should render empty")
	}
}
