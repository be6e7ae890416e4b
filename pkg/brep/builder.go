package brep

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Polyhedron builds a body with a single lump and shell from indexed
// polygon faces. Faces are given as vertex index lists with
// counter-clockwise winding viewed from outside the solid. Edges shared
// between adjacent faces are built once; the second use runs against the
// edge's direction and gets a reversed-sense coedge. All surfaces are
// planar and all curves straight, so the result is fully extractable.
func Polyhedron(verts []v3.Vec, faces [][]int) (*Body, error) {
	vertices := make([]*Vertex, len(verts))
	for i, p := range verts {
		vertices[i] = &Vertex{Point: &Point{Location: p}}
	}

	// Edges keyed by their creation direction (start, end).
	edges := make(map[[2]int]*Edge)

	var firstFace, lastFace *Face
	for fi, face := range faces {
		if len(face) < 3 {
			return nil, fmt.Errorf("face %d has %d vertices, need at least 3", fi, len(face))
		}
		var firstCoedge, lastCoedge *Coedge
		for i, a := range face {
			b := face[(i+1)%len(face)]
			if a == b {
				return nil, fmt.Errorf("face %d has a degenerate segment at vertex %d", fi, a)
			}
			if a < 0 || a >= len(verts) || b < 0 || b >= len(verts) {
				return nil, fmt.Errorf("face %d references vertex out of range", fi)
			}

			ce := &Coedge{}
			if e, ok := edges[[2]int{a, b}]; ok {
				ce.Edge = e
			} else if e, ok := edges[[2]int{b, a}]; ok {
				ce.Edge = e
				ce.Sense = true
			} else {
				e := &Edge{
					Curve:       &Curve{Type: CurveStraight},
					StartVertex: vertices[a],
					EndVertex:   vertices[b],
				}
				edges[[2]int{a, b}] = e
				ce.Edge = e
			}

			if firstCoedge == nil {
				firstCoedge = ce
			} else {
				lastCoedge.NextCoedge = ce
			}
			lastCoedge = ce
		}
		// Close the coedge cycle.
		lastCoedge.NextCoedge = firstCoedge

		f := &Face{
			Surface: &Surface{Type: SurfacePlane},
			Loop:    &Loop{Coedge: firstCoedge},
		}
		if firstFace == nil {
			firstFace = f
		} else {
			lastFace.NextFace = f
		}
		lastFace = f
	}

	return &Body{Lump: &Lump{Shell: &Shell{Face: firstFace}}}, nil
}

// Box builds an axis-aligned box body with its minimum corner at the
// origin, so that placement translations work intuitively. The six quad
// faces wind counter-clockwise with outward normals.
func Box(x, y, z float64) (*Body, error) {
	if x <= 0 || y <= 0 || z <= 0 {
		return nil, fmt.Errorf("box dimensions must be positive, got %g x %g x %g", x, y, z)
	}
	verts := []v3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: x, Y: 0, Z: 0},
		{X: x, Y: y, Z: 0},
		{X: 0, Y: y, Z: 0},
		{X: 0, Y: 0, Z: z},
		{X: x, Y: 0, Z: z},
		{X: x, Y: y, Z: z},
		{X: 0, Y: y, Z: z},
	}
	faces := [][]int{
		{0, 3, 2, 1}, // bottom
		{4, 5, 6, 7}, // top
		{0, 1, 5, 4}, // front
		{2, 3, 7, 6}, // back
		{0, 4, 7, 3}, // left
		{1, 2, 6, 5}, // right
	}
	return Polyhedron(verts, faces)
}
