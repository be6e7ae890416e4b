package mesh

import (
	"github.com/chazu/burl/pkg/brep"
	"github.com/chazu/burl/pkg/extract"
)

// FromBody extracts all flat polygon faces of a body into indexed
// meshes. With mergeLumps true every lump feeds one shared
// vertex-merging builder and exactly one mesh is returned. With
// mergeLumps false each lump produces its own mesh in lump-chain
// order; a lump that contributed no extractable faces still produces
// an empty mesh, so the result corresponds positionally to the lump
// chain.
//
// The entity must be a body; any other kind fails with
// brep.ErrEntityType.
func FromBody(e brep.Entity, mergeLumps bool) ([]*Mesh, error) {
	lumps, err := extract.FacesFromBody(e)
	if err != nil {
		return nil, err
	}

	var meshes []*Mesh
	builder := NewVertexMerger()
	for polygons := range lumps {
		for _, polygon := range polygons {
			builder.AddFace(polygon)
		}
		if !mergeLumps {
			meshes = append(meshes, builder.Mesh())
			builder = NewVertexMerger()
		}
	}
	if mergeLumps {
		meshes = append(meshes, builder.Mesh())
	}
	return meshes, nil
}
