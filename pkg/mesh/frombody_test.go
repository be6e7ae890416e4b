package mesh_test

import (
	"errors"
	"testing"

	"github.com/chazu/burl/pkg/brep"
	"github.com/chazu/burl/pkg/mesh"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// twoSquareLump builds a lump with two adjacent unit squares sharing one
// edge: 8 raw vertex mentions, 6 unique positions.
func twoSquareLump(t *testing.T) *brep.Lump {
	t.Helper()
	body, err := brep.Polyhedron(
		[]v3.Vec{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
			{X: 2, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 1},
		},
		[][]int{
			{0, 1, 4, 5},
			{1, 2, 3, 4},
		},
	)
	if err != nil {
		t.Fatal(err)
	}
	return body.Lump
}

func TestFromBodyTypeGuard(t *testing.T) {
	for _, e := range []brep.Entity{&brep.Lump{}, &brep.Face{}, &brep.Vertex{}} {
		if _, err := mesh.FromBody(e, true); !errors.Is(err, brep.ErrEntityType) {
			t.Errorf("FromBody(%s): err = %v, want ErrEntityType", e.Kind(), err)
		}
	}
}

func TestFromBodyMergedSingleLump(t *testing.T) {
	body := &brep.Body{Lump: twoSquareLump(t)}

	meshes, err := mesh.FromBody(body, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(meshes) != 1 {
		t.Fatalf("merged extraction should yield 1 mesh, got %d", len(meshes))
	}
	m := meshes[0]
	if m.VertexCount() != 6 {
		t.Errorf("expected 6 vertices, got %d", m.VertexCount())
	}
	if m.FaceCount() != 2 {
		t.Errorf("expected 2 faces, got %d", m.FaceCount())
	}
	for i, face := range m.Faces {
		if len(face) != 4 {
			t.Errorf("face %d has %d indices, want 4", i, len(face))
		}
	}

	// One lump: the unmerged result is the same single mesh.
	meshes, err = mesh.FromBody(body, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(meshes) != 1 || meshes[0].VertexCount() != 6 || meshes[0].FaceCount() != 2 {
		t.Errorf("unmerged single-lump extraction differs: %d meshes", len(meshes))
	}
}

func TestFromBodySplineFaceExcluded(t *testing.T) {
	lump := twoSquareLump(t)
	// Degrade the first face; only the second one stays extractable.
	lump.Shell.Face.Surface.Type = brep.SurfaceSpline
	body := &brep.Body{Lump: lump}

	meshes, err := mesh.FromBody(body, true)
	if err != nil {
		t.Fatal(err)
	}
	m := meshes[0]
	if m.FaceCount() != 1 {
		t.Fatalf("expected 1 face, got %d", m.FaceCount())
	}
	// Only the 4 positions the surviving face uses are present.
	if m.VertexCount() != 4 {
		t.Errorf("expected 4 vertices, got %d", m.VertexCount())
	}
}

func TestFromBodyMergePolicy(t *testing.T) {
	lump1 := twoSquareLump(t)
	lump2 := twoSquareLump(t)
	empty := &brep.Lump{}
	lump1.NextLump = lump2
	lump2.NextLump = empty
	body := &brep.Body{Lump: lump1}

	// Merged: one mesh summing both lumps. The two lumps have identical
	// geometry, so the shared builder also dedups across them.
	merged, err := mesh.FromBody(body, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(merged) != 1 {
		t.Fatalf("merged: expected 1 mesh, got %d", len(merged))
	}
	if merged[0].FaceCount() != 4 {
		t.Errorf("merged face count = %d, want 4", merged[0].FaceCount())
	}
	if merged[0].VertexCount() != 6 {
		t.Errorf("merged vertex count = %d, want 6 (dedup is builder-wide)", merged[0].VertexCount())
	}

	// Unmerged: one mesh per lump in chain order, the faceless lump
	// included as an empty mesh.
	separate, err := mesh.FromBody(body, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(separate) != 3 {
		t.Fatalf("unmerged: expected 3 meshes, got %d", len(separate))
	}
	for i := 0; i < 2; i++ {
		if separate[i].FaceCount() != 2 || separate[i].VertexCount() != 6 {
			t.Errorf("mesh %d: %d faces, %d vertices; want 2 and 6",
				i, separate[i].FaceCount(), separate[i].VertexCount())
		}
	}
	if !separate[2].IsEmpty() {
		t.Error("faceless lump should produce an empty mesh")
	}

	// Dedup never crosses builders: total vertices across separate
	// meshes exceed the merged count.
	if separate[0].VertexCount()+separate[1].VertexCount() <= merged[0].VertexCount() {
		t.Error("per-lump builders should not share dedup state")
	}
}

func TestFromBodyBoxEndToEnd(t *testing.T) {
	body, err := brep.Box(2, 3, 4)
	if err != nil {
		t.Fatal(err)
	}
	meshes, err := mesh.FromBody(body, true)
	if err != nil {
		t.Fatal(err)
	}
	m := meshes[0]
	if m.VertexCount() != 8 {
		t.Errorf("box mesh has %d vertices, want 8", m.VertexCount())
	}
	if m.FaceCount() != 6 {
		t.Errorf("box mesh has %d faces, want 6", m.FaceCount())
	}
	for _, face := range m.Faces {
		for _, idx := range face {
			if idx < 0 || idx >= m.VertexCount() {
				t.Fatalf("face index %d out of range", idx)
			}
		}
	}
}
