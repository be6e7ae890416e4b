package brep

import "errors"

// ErrEntityType is returned when an operation receives an entity of the
// wrong topological kind, e.g. a lump where a body is required.
var ErrEntityType = errors.New("invalid entity type")

// Kind enumerates the topological entity kinds.
type Kind int

const (
	KindBody Kind = iota
	KindLump
	KindShell
	KindFace
	KindLoop
	KindCoedge
	KindEdge
	KindVertex
)

func (k Kind) String() string {
	switch k {
	case KindBody:
		return "body"
	case KindLump:
		return "lump"
	case KindShell:
		return "shell"
	case KindFace:
		return "face"
	case KindLoop:
		return "loop"
	case KindCoedge:
		return "coedge"
	case KindEdge:
		return "edge"
	case KindVertex:
		return "vertex"
	default:
		return "unknown"
	}
}

// Entity is implemented by every topological entity in a body graph.
type Entity interface {
	Kind() Kind
}

// SurfaceType tags the geometry carried by a face.
type SurfaceType string

const (
	SurfacePlane  SurfaceType = "plane-surface"
	SurfaceSpline SurfaceType = "spline-surface"
	SurfaceCone   SurfaceType = "cone-surface"
	SurfaceTorus  SurfaceType = "torus-surface"
	SurfaceSphere SurfaceType = "sphere-surface"
)

// CurveType tags the geometry carried by an edge.
type CurveType string

const (
	CurveStraight CurveType = "straight-curve"
	CurveSpline   CurveType = "spline-curve"
	CurveEllipse  CurveType = "ellipse-curve"
)
