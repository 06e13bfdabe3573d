package atomsbase

import (
	"fmt"
	"reflect"
)

// FlexibleSystem stores its species as a slice of Atoms, each with its own
// extra properties, plus an ordered map of system-level properties.
type FlexibleSystem struct {
	atoms []Atom
	box   Box
	bcs   []BoundaryCondition
	props Properties
}

// NewFlexibleSystem validates and builds a system. Atoms and box are copied.
// Every problem found is reported in a single *ValidationError.
func NewFlexibleSystem(atoms []Atom, box Box, bcs []BoundaryCondition, props ...Property) (*FlexibleSystem, error) {
	verr := &ValidationError{}
	if err := box.Validate(); err != nil {
		verr.Add(err)
	}
	if len(bcs) != len(box) {
		verr.Add(fmt.Errorf("%w: %d boundary conditions for a %d-dimensional box", ErrDimensionMismatch, len(bcs), len(box)))
	}
	for i, a := range atoms {
		if a.NDimensions() != len(box) {
			verr.Add(fmt.Errorf("%w: atom at index %d has %d dimensions, box has %d", ErrDimensionMismatch, i, a.NDimensions(), len(box)))
		}
	}
	sysProps := NewProperties(props...)
	if err := verr.Err(); err != nil {
		return nil, err
	}

	owned := make([]Atom, len(atoms))
	for i, a := range atoms {
		owned[i] = a.clone()
	}
	return &FlexibleSystem{
		atoms: owned,
		box:   box.Clone(),
		bcs:   append([]BoundaryCondition(nil), bcs...),
		props: sysProps,
	}, nil
}

func (s *FlexibleSystem) BoundingBox() Box {
	return s.box.Clone()
}

func (s *FlexibleSystem) BoundaryConditions() []BoundaryCondition {
	return append([]BoundaryCondition(nil), s.bcs...)
}

func (s *FlexibleSystem) SpeciesType() reflect.Type {
	return reflect.TypeFor[Atom]()
}

func (s *FlexibleSystem) Len() int {
	return len(s.atoms)
}

func (s *FlexibleSystem) At(i int) Species {
	return s.atoms[i]
}

// Atom returns atom i as its concrete type.
func (s *FlexibleSystem) Atom(i int) Atom {
	return s.atoms[i]
}

// Atoms returns a copy of the atom slice.
func (s *FlexibleSystem) Atoms() []Atom {
	return append([]Atom(nil), s.atoms...)
}

func (s *FlexibleSystem) Property(key Key) (Value, error) {
	if v, ok := s.props.Get(key); ok {
		return v, nil
	}
	return Value{}, unknownKey("system", key)
}

func (s *FlexibleSystem) HasProperty(key Key) bool {
	return s.props.Has(key)
}

func (s *FlexibleSystem) PropertyKeys() []Key {
	return s.props.Keys()
}
