package atomsbase

import (
	"fmt"

	"github.com/daniacca/atomsbase/pkg/atomsbase/units"
)

// AtomInput is accepted wherever an Atom is expected: an Atom or a Pair.
type AtomInput interface {
	toAtom(b *Builder) (Atom, error)
}

func (a Atom) toAtom(*Builder) (Atom, error) {
	return a.clone(), nil
}

// Pair is the raw (identifier, position) form of an atom. It converts to an
// Atom with zero velocity and species data from the lookup.
type Pair struct {
	ID       Identifier
	Position units.Vector
}

// FractionalPair builds a pair whose position is given in fractional
// coordinates of the box it will be placed in. See PeriodicSystem.
func FractionalPair(id Identifier, coords ...float64) Pair {
	return Pair{ID: id, Position: units.NewVector(units.One, coords...)}
}

func (p Pair) toAtom(b *Builder) (Atom, error) {
	return b.NewAtom(p.ID, p.Position)
}

// Atom converts the pair using the default builder.
func (p Pair) Atom() (Atom, error) {
	return p.toAtom(defaultBuilder)
}

// SystemOption configures a system constructor.
type SystemOption func(*systemOptions)

type systemOptions struct {
	props      []Property
	fractional bool
}

// WithSystemProperty attaches a system-level property.
func WithSystemProperty(key Key, v Value) SystemOption {
	return func(o *systemOptions) {
		o.props = append(o.props, Property{Key: key, Value: v})
	}
}

// Fractional makes PeriodicSystem read Pair positions as fractional coordinates.
func Fractional() SystemOption {
	return func(o *systemOptions) { o.fractional = true }
}

func collectSystemOptions(opts []SystemOption) systemOptions {
	var o systemOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// AtomicSystem builds a system from atoms or pairs using the default builder.
func AtomicSystem(atoms []AtomInput, box Box, bcs []BoundaryCondition, opts ...SystemOption) (*FlexibleSystem, error) {
	return defaultBuilder.AtomicSystem(atoms, box, bcs, opts...)
}

// IsolatedSystem builds a vacuum-embedded system using the default builder.
func IsolatedSystem(atoms []AtomInput, opts ...SystemOption) (*FlexibleSystem, error) {
	return defaultBuilder.IsolatedSystem(atoms, opts...)
}

// PeriodicSystem builds a fully periodic system using the default builder.
func PeriodicSystem(atoms []AtomInput, box Box, opts ...SystemOption) (*FlexibleSystem, error) {
	return defaultBuilder.PeriodicSystem(atoms, box, opts...)
}

// AtomicSystem converts every input to an Atom and builds a FlexibleSystem.
// It fails when an atom's dimensionality differs from len(box) or when
// len(bcs) != len(box).
func (b *Builder) AtomicSystem(atoms []AtomInput, box Box, bcs []BoundaryCondition, opts ...SystemOption) (*FlexibleSystem, error) {
	o := collectSystemOptions(opts)
	converted, err := b.convertAll(atoms)
	if err != nil {
		return nil, err
	}
	sys, err := NewFlexibleSystem(converted, box, bcs, o.props...)
	if err != nil {
		return nil, err
	}
	b.logger.Debugf("built system: atoms=%d dimensions=%d periodicity=%v", sys.Len(), NDimensions(sys), Periodicity(sys))
	return sys, nil
}

// IsolatedSystem builds a system in an infinite box with DirichletZero
// boundaries on every axis. The dimension is taken from the first atom, so an
// empty input fails with ErrEmptySystem.
func (b *Builder) IsolatedSystem(atoms []AtomInput, opts ...SystemOption) (*FlexibleSystem, error) {
	if len(atoms) == 0 {
		return nil, ErrEmptySystem
	}
	converted, err := b.convertAll(atoms)
	if err != nil {
		return nil, err
	}
	d := converted[0].NDimensions()
	box, err := b.InfiniteBox(d)
	if err != nil {
		return nil, err
	}
	return b.AtomicSystem(asInputs(converted), box, Fill(DirichletZero, d), opts...)
}

// PeriodicSystem builds a system with Periodic boundaries on every axis.
//
// With Fractional, every Pair position is read as fractional coordinates and
// mapped to Cartesian as M * frac, where M has the box vectors as columns.
// Atom inputs are already Cartesian and pass through unchanged.
func (b *Builder) PeriodicSystem(atoms []AtomInput, box Box, opts ...SystemOption) (*FlexibleSystem, error) {
	o := collectSystemOptions(opts)
	bcs := Fill(Periodic, len(box))
	if !o.fractional {
		return b.AtomicSystem(atoms, box, bcs, opts...)
	}

	inputs := make([]AtomInput, len(atoms))
	for i, in := range atoms {
		p, ok := in.(Pair)
		if !ok {
			inputs[i] = in
			continue
		}
		if p.Position.Dim() != units.Dimensionless {
			return nil, fmt.Errorf("pair at index %d: %w: fractional coordinates must be dimensionless, got %s", i, units.ErrIncompatible, p.Position.Dim())
		}
		cart, err := box.Cartesian(p.Position.Values())
		if err != nil {
			return nil, fmt.Errorf("pair at index %d: %w", i, err)
		}
		inputs[i] = Pair{ID: p.ID, Position: cart}
	}
	return b.AtomicSystem(inputs, box, bcs, opts...)
}

func (b *Builder) convertAll(atoms []AtomInput) ([]Atom, error) {
	out := make([]Atom, len(atoms))
	for i, in := range atoms {
		if in == nil {
			return nil, fmt.Errorf("atom at index %d: %w", i, ErrMissingIdentifier)
		}
		a, err := in.toAtom(b)
		if err != nil {
			return nil, fmt.Errorf("atom at index %d: %w", i, err)
		}
		out[i] = a
	}
	return out, nil
}

func asInputs(atoms []Atom) []AtomInput {
	out := make([]AtomInput, len(atoms))
	for i, a := range atoms {
		out[i] = a
	}
	return out
}

// Inputs adapts a slice of atoms for the system constructors.
func Inputs(atoms ...Atom) []AtomInput {
	return asInputs(atoms)
}
