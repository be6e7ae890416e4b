// Package extract walks boundary-representation bodies and produces flat
// polygon faces. Only planar faces bounded by straight edges are
// extractable; any other face is skipped, never reported as an error.
// Traversal is read-only and lazy: sequences produce polygons on demand
// and a consumer may stop pulling at any point.
package extract

import (
	"fmt"
	"iter"

	"github.com/chazu/burl/pkg/brep"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Polygon is an ordered, closed ring of face vertices. The winding is
// counter-clockwise with the face normal pointing away from the solid,
// following the kernel convention.
type Polygon []v3.Vec

// maxLoopEdges bounds the coedge walk. A well-formed loop always closes
// by returning to its first coedge; a loop longer than this is treated
// as malformed and its face is skipped.
const maxLoopEdges = 1 << 20

// FacesFromBody returns a lazy sequence over the body's lump chain,
// yielding the realized list of flat polygon faces for each lump in
// chain order. The body transform, when present, is resolved once and
// applied to every polygon of every lump.
//
// The entity must be a body; any other kind fails with
// brep.ErrEntityType.
func FacesFromBody(e brep.Entity) (iter.Seq[[]Polygon], error) {
	body, ok := e.(*brep.Body)
	if !ok {
		return nil, fmt.Errorf("expected a body entity, got %s: %w", e.Kind(), brep.ErrEntityType)
	}

	var m *sdf.M44
	if t := body.Transform; !t.IsNone() {
		matrix := t.Matrix
		m = &matrix
	}

	return func(yield func([]Polygon) bool) {
		for lump := body.Lump; !lump.IsNone(); lump = lump.NextLump {
			var polygons []Polygon
			for p := range lumpFaces(lump, m) {
				polygons = append(polygons, p)
			}
			if !yield(polygons) {
				return
			}
		}
	}, nil
}

// FacesFromLump returns a lazy sequence of the lump's flat polygon
// faces. The transform m, when non-nil, is applied to every polygon
// vertex as a point transform. A lump without a shell yields an empty
// sequence.
//
// The entity must be a lump; any other kind fails with
// brep.ErrEntityType.
func FacesFromLump(e brep.Entity, m *sdf.M44) (iter.Seq[Polygon], error) {
	lump, ok := e.(*brep.Lump)
	if !ok {
		return nil, fmt.Errorf("expected a lump entity, got %s: %w", e.Kind(), brep.ErrEntityType)
	}
	return lumpFaces(lump, m), nil
}

// lumpFaces walks the face chain of the lump's shell. Each call to the
// returned sequence walks the graph fresh; nothing is cached.
func lumpFaces(lump *brep.Lump, m *sdf.M44) iter.Seq[Polygon] {
	return func(yield func(Polygon) bool) {
		shell := lump.Shell
		if shell.IsNone() {
			return // not a shell
		}
		for face := shell.Face; !face.IsNone(); face = face.NextFace {
			polygon, ok := flatPolygon(face)
			if !ok {
				continue
			}
			if m != nil {
				for i, p := range polygon {
					polygon[i] = m.MulPosition(p)
				}
			}
			if !yield(polygon) {
				return
			}
		}
	}
}

// flatPolygon collects the closed vertex ring of one face. ok is false
// when the face is ineligible: non-planar surface, missing loop, a
// curved or incomplete edge anywhere in the loop, or a coedge chain
// that never closes. An ineligible face contributes nothing; there is
// no partial polygon.
func flatPolygon(face *brep.Face) (Polygon, bool) {
	if face.SurfaceType() != brep.SurfacePlane {
		return nil, false
	}
	first := face.FirstCoedge()
	if first.IsNone() {
		return nil, false
	}

	var polygon Polygon
	for coedge := first; len(polygon) < maxLoopEdges; {
		edge := coedge.Edge
		if edge.CurveType() != brep.CurveStraight {
			return nil, false
		}
		// Sense selects which end of the edge leads in traversal order.
		vertex := edge.StartVertex
		if coedge.Sense {
			vertex = edge.EndVertex
		}
		location, ok := vertex.Location()
		if !ok {
			return nil, false
		}
		polygon = append(polygon, location)

		coedge = coedge.NextCoedge
		if coedge.IsNone() {
			return nil, false // broken chain, face is not closed
		}
		if coedge == first {
			return polygon, true
		}
	}
	return nil, false
}
