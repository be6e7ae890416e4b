package brep

import "fmt"

// Solid is a named body inside a scene.
type Solid struct {
	Name string
	Body *Body
}

// Scene is the ordered collection of named solids produced by one
// evaluation. Order is insertion order.
type Scene struct {
	Solids []*Solid

	names map[string]*Solid
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{names: make(map[string]*Solid)}
}

// Add registers a body under the given name. A repeated name replaces
// the earlier solid in the lookup index but keeps scene order.
func (s *Scene) Add(name string, body *Body) *Solid {
	solid := &Solid{Name: name, Body: body}
	s.Solids = append(s.Solids, solid)
	s.names[name] = solid
	return solid
}

// Lookup returns the solid with the given name, or nil.
func (s *Scene) Lookup(name string) *Solid {
	return s.names[name]
}

// MustLookup returns the solid with the given name, or panics.
func (s *Scene) MustLookup(name string) *Solid {
	solid := s.Lookup(name)
	if solid == nil {
		panic(fmt.Sprintf("scene: no solid named %q", name))
	}
	return solid
}

// SolidCount returns the number of solids in the scene.
func (s *Scene) SolidCount() int {
	return len(s.Solids)
}
