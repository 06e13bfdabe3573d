package atomsbase

import (
	"fmt"

	"github.com/daniacca/atomsbase/pkg/atomsbase/elements"
	"github.com/daniacca/atomsbase/pkg/atomsbase/units"
)

// Units are the default units a Builder applies when it has to invent a
// quantity: infinite boxes, zero velocities and unknown masses.
type Units struct {
	Length   units.Unit
	Velocity units.Unit
	Mass     units.Unit
}

// DefaultUnits returns bohr, bohr/s and dalton.
func DefaultUnits() Units {
	return Units{
		Length:   units.Bohr,
		Velocity: units.BohrPerSecond,
		Mass:     units.Dalton,
	}
}

// Validate checks that every unit has the dimension of its slot.
func (u Units) Validate() error {
	err := &ValidationError{Subject: "units"}
	check := func(slot string, got units.Unit, want units.Dimension) {
		if got.Dim != want {
			err.Add(fmt.Errorf("%s unit %q: %w: expected %s, got %s", slot, got.Symbol, units.ErrIncompatible, want, got.Dim))
		}
	}
	check("length", u.Length, units.Length)
	check("velocity", u.Velocity, units.Velocity)
	check("mass", u.Mass, units.Mass)
	return err.Err()
}

// Builder constructs atoms and systems with a configurable species lookup,
// default units and logger. The zero Builder is not usable; use NewBuilder.
type Builder struct {
	lookup SpeciesLookup
	units  Units
	logger Logger
}

// NewBuilder returns a builder backed by the default periodic table,
// DefaultUnits and a no-op logger.
func NewBuilder() *Builder {
	return &Builder{
		lookup: TableLookup(elements.Default()),
		units:  DefaultUnits(),
		logger: NewNoOpLogger(),
	}
}

// WithLookup returns a copy of the builder using l for species resolution.
func (b *Builder) WithLookup(l SpeciesLookup) *Builder {
	out := *b
	out.lookup = l
	return &out
}

// WithUnits returns a copy of the builder using u as default units.
// Units with a wrong dimension are rejected by Units.Validate; callers loading
// units from configuration should validate them first.
func (b *Builder) WithUnits(u Units) *Builder {
	out := *b
	out.units = u
	return &out
}

// WithLogger returns a copy of the builder logging to l.
func (b *Builder) WithLogger(l Logger) *Builder {
	out := *b
	if l == nil {
		l = NewNoOpLogger()
	}
	out.logger = l
	return &out
}

func (b *Builder) Units() Units {
	return b.units
}

// InfiniteBox returns the d-dimensional infinite box in the builder's length unit.
func (b *Builder) InfiniteBox(d int) (Box, error) {
	return infiniteBox(d, b.units.Length)
}

var defaultBuilder = NewBuilder()
