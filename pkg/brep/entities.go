package brep

import (
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// An absent link is a nil pointer. Every entity type carries an IsNone
// method that is safe on a nil receiver, so a link can be checked before
// it is dereferenced and "absent" stays a first-class state.

// Transform is an optional affine transformation attached to a body.
type Transform struct {
	Matrix sdf.M44
}

// IsNone reports whether the transform link is absent.
func (t *Transform) IsNone() bool { return t == nil }

// Body is the root of a solid model: a chain of lumps plus an optional
// transform applied to every lump.
type Body struct {
	Lump      *Lump
	Transform *Transform
}

func (b *Body) Kind() Kind   { return KindBody }
func (b *Body) IsNone() bool { return b == nil }

// Lump is one maximal connected solid component of a body. Lumps form a
// singly linked chain terminated by a none link.
type Lump struct {
	NextLump *Lump
	Shell    *Shell
}

func (l *Lump) Kind() Kind   { return KindLump }
func (l *Lump) IsNone() bool { return l == nil }

// Shell is a collection of faces bounding a lump region.
type Shell struct {
	Face *Face
}

func (s *Shell) Kind() Kind   { return KindShell }
func (s *Shell) IsNone() bool { return s == nil }

// Face is one bounded surface patch. Faces form a singly linked chain
// owned by their shell.
type Face struct {
	NextFace *Face
	Surface  *Surface
	Loop     *Loop
}

func (f *Face) Kind() Kind   { return KindFace }
func (f *Face) IsNone() bool { return f == nil }

// SurfaceType returns the face's surface tag, or the empty tag if the
// surface link is absent.
func (f *Face) SurfaceType() SurfaceType {
	if f == nil || f.Surface == nil {
		return ""
	}
	return f.Surface.Type
}

// FirstCoedge returns the first coedge of the face's bounding loop, or
// none if the face has no loop.
func (f *Face) FirstCoedge() *Coedge {
	if f == nil || f.Loop == nil {
		return nil
	}
	return f.Loop.Coedge
}

// Surface carries the geometry tag of a face.
type Surface struct {
	Type SurfaceType
}

// Loop is the ordered boundary of a face, a cycle of coedges.
type Loop struct {
	Coedge *Coedge
}

func (l *Loop) Kind() Kind   { return KindLoop }
func (l *Loop) IsNone() bool { return l == nil }

// Coedge is a directed use of an edge by one loop. Coedges form a
// circular chain; traversal closes when the start coedge is reached
// again, not at a none link. Sense reports whether the coedge runs
// against the underlying edge's start-to-end direction.
type Coedge struct {
	NextCoedge *Coedge
	Sense      bool
	Edge       *Edge
}

func (c *Coedge) Kind() Kind   { return KindCoedge }
func (c *Coedge) IsNone() bool { return c == nil }

// Edge connects two vertices along a curve.
type Edge struct {
	Curve       *Curve
	StartVertex *Vertex
	EndVertex   *Vertex
}

func (e *Edge) Kind() Kind   { return KindEdge }
func (e *Edge) IsNone() bool { return e == nil }

// CurveType returns the edge's curve tag, or the empty tag if the curve
// link is absent.
func (e *Edge) CurveType() CurveType {
	if e == nil || e.Curve == nil {
		return ""
	}
	return e.Curve.Type
}

// Curve carries the geometry tag of an edge.
type Curve struct {
	Type CurveType
}

// Vertex anchors edge ends at a point in space.
type Vertex struct {
	Point *Point
}

func (v *Vertex) Kind() Kind   { return KindVertex }
func (v *Vertex) IsNone() bool { return v == nil }

// Location returns the vertex position. ok is false when the vertex or
// its point link is absent.
func (v *Vertex) Location() (v3.Vec, bool) {
	if v == nil || v.Point == nil {
		return v3.Vec{}, false
	}
	return v.Point.Location, true
}

// Point carries a vertex position.
type Point struct {
	Location v3.Vec
}
