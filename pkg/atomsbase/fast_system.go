package atomsbase

import (
	"fmt"
	"reflect"

	"github.com/daniacca/atomsbase/pkg/atomsbase/units"
)

// FastSystem stores species as parallel slices: positions, symbols, numbers
// and masses. It carries no velocities, extra properties or system-level
// properties. Its species are AtomViews into the slices.
type FastSystem struct {
	box       Box
	bcs       []BoundaryCondition
	positions []units.Vector
	symbols   []Symbol
	numbers   []int
	masses    []units.Quantity
	velocity  units.Unit
}

// NewFastSystem validates and builds a struct-of-arrays system. All four
// slices must have the same length.
func NewFastSystem(box Box, bcs []BoundaryCondition, positions []units.Vector, symbols []Symbol, numbers []int, masses []units.Quantity) (*FastSystem, error) {
	verr := &ValidationError{}
	if err := box.Validate(); err != nil {
		verr.Add(err)
	}
	if len(bcs) != len(box) {
		verr.Add(fmt.Errorf("%w: %d boundary conditions for a %d-dimensional box", ErrDimensionMismatch, len(bcs), len(box)))
	}
	n := len(positions)
	if len(symbols) != n || len(numbers) != n || len(masses) != n {
		verr.Add(fmt.Errorf("%w: %d positions, %d symbols, %d numbers, %d masses", ErrDimensionMismatch, n, len(symbols), len(numbers), len(masses)))
	}
	for i, p := range positions {
		if p.Len() != len(box) {
			verr.Add(fmt.Errorf("%w: position at index %d has %d dimensions, box has %d", ErrDimensionMismatch, i, p.Len(), len(box)))
		}
		if p.Dim() != units.Length {
			verr.Add(fmt.Errorf("position at index %d: %w: expected length, got %s", i, units.ErrIncompatible, p.Dim()))
		}
	}
	for i, m := range masses {
		if m.Dim() != units.Mass {
			verr.Add(fmt.Errorf("atomic_mass at index %d: %w: expected mass, got %s", i, units.ErrIncompatible, m.Dim()))
		}
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}
	return &FastSystem{
		box:       box.Clone(),
		bcs:       append([]BoundaryCondition(nil), bcs...),
		positions: append([]units.Vector(nil), positions...),
		symbols:   append([]Symbol(nil), symbols...),
		numbers:   append([]int(nil), numbers...),
		masses:    append([]units.Quantity(nil), masses...),
		velocity:  DefaultUnits().Velocity,
	}, nil
}

// FastSystemFrom copies the positions, symbols, numbers and masses of any
// system. Velocities and properties are dropped.
func FastSystemFrom(sys System) (*FastSystem, error) {
	return NewFastSystem(sys.BoundingBox(), sys.BoundaryConditions(),
		Positions(sys), AtomicSymbols(sys), AtomicNumbers(sys), AtomicMasses(sys))
}

func (s *FastSystem) BoundingBox() Box {
	return s.box.Clone()
}

func (s *FastSystem) BoundaryConditions() []BoundaryCondition {
	return append([]BoundaryCondition(nil), s.bcs...)
}

func (s *FastSystem) SpeciesType() reflect.Type {
	return reflect.TypeFor[AtomView]()
}

func (s *FastSystem) Len() int {
	return len(s.positions)
}

func (s *FastSystem) At(i int) Species {
	_ = s.positions[i]
	return AtomView{sys: s, index: i}
}

func (s *FastSystem) Property(key Key) (Value, error) {
	return Value{}, unknownKey("fast system", key)
}

func (s *FastSystem) HasProperty(Key) bool {
	return false
}

func (s *FastSystem) PropertyKeys() []Key {
	return []Key{}
}

// AtomView is a species of a FastSystem, read through to the system's slices.
type AtomView struct {
	sys   *FastSystem
	index int
}

func (v AtomView) Index() int                 { return v.index }
func (v AtomView) Position() units.Vector     { return v.sys.positions[v.index] }
func (v AtomView) AtomicSymbol() Symbol       { return v.sys.symbols[v.index] }
func (v AtomView) AtomicNumber() int          { return v.sys.numbers[v.index] }
func (v AtomView) AtomicMass() units.Quantity { return v.sys.masses[v.index] }

// Velocity is always zero: a FastSystem does not store velocities.
func (v AtomView) Velocity() units.Vector {
	return units.Zeros(v.sys.velocity, v.sys.positions[v.index].Len())
}

func (v AtomView) Get(key Key) (Value, error) {
	switch key {
	case KeyPosition:
		return VectorValue(v.Position()), nil
	case KeyVelocity:
		return VectorValue(v.Velocity()), nil
	case KeyAtomicSymbol:
		return SymbolValue(v.AtomicSymbol()), nil
	case KeyAtomicNumber:
		return IntValue(int64(v.AtomicNumber())), nil
	case KeyAtomicMass:
		return QuantityValue(v.AtomicMass()), nil
	}
	return Value{}, unknownKey(fmt.Sprintf("atom view %d", v.index), key)
}

func (v AtomView) HasKey(key Key) bool {
	return IsReserved(key)
}

func (v AtomView) Keys() []Key {
	return append([]Key(nil), fixedKeys...)
}
