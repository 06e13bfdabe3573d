// Package atomsbase defines a common interface for systems of particles
// (atoms, molecules, solids) embedded in a D-dimensional space, together with
// a flexible Atom type and constructors for isolated and periodic systems.
//
// Concrete systems implement a handful of primitives (System); everything
// else, from periodicity to per-atom accessors, is derived once in this file
// and therefore behaves the same for every storage backend.
package atomsbase

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/daniacca/atomsbase/pkg/atomsbase/units"
)

// Species is the per-particle side of the property protocol.
type Species interface {
	Position() units.Vector
	Velocity() units.Vector
	AtomicSymbol() Symbol
	AtomicNumber() int
	AtomicMass() units.Quantity

	// Get returns the property stored under key, or ErrUnknownKey.
	Get(key Key) (Value, error)
	HasKey(key Key) bool
	Keys() []Key
}

// System is the contract every concrete system type implements.
type System interface {
	BoundingBox() Box
	BoundaryConditions() []BoundaryCondition

	// SpeciesType is the concrete type returned by At.
	SpeciesType() reflect.Type

	// Len returns the number of species.
	Len() int

	// At returns species i, 0 <= i < Len(). It panics if i is out of range.
	At(i int) Species

	// Property returns the system-level property key, or ErrUnknownKey.
	Property(key Key) (Value, error)
	HasProperty(key Key) bool
	PropertyKeys() []Key
}

// NDimensions returns the dimensionality D of the embedding space.
func NDimensions(sys System) int {
	return len(sys.BoundingBox())
}

// Periodicity reports, per axis, whether the boundary condition is Periodic.
func Periodicity(sys System) []bool {
	bcs := sys.BoundaryConditions()
	out := make([]bool, len(bcs))
	for i, bc := range bcs {
		out[i] = bc == Periodic
	}
	return out
}

// IsInfinite reports whether the bounding box is exactly InfiniteBox(D).
// Large but finite boxes are not infinite.
func IsInfinite(sys System) bool {
	inf, err := InfiniteBox(NDimensions(sys))
	if err != nil {
		return false
	}
	return sys.BoundingBox().Equal(inf)
}

// All iterates over the species of sys in index order. Each range over the
// returned sequence starts again from index 0.
func All(sys System) iter.Seq2[int, Species] {
	return func(yield func(int, Species) bool) {
		for i := 0; i < sys.Len(); i++ {
			if !yield(i, sys.At(i)) {
				return
			}
		}
	}
}

// Size returns the shape of sys viewed as a one-dimensional collection.
func Size(sys System) [1]int {
	return [1]int{sys.Len()}
}

// PropertyOr returns the system-level property key, or def when absent.
func PropertyOr(sys System, key Key, def Value) Value {
	if !sys.HasProperty(key) {
		return def
	}
	v, err := sys.Property(key)
	if err != nil {
		return def
	}
	return v
}

// SystemProperties returns all system-level key/value pairs in key order.
func SystemProperties(sys System) []Property {
	keys := sys.PropertyKeys()
	out := make([]Property, 0, len(keys))
	for _, k := range keys {
		v, err := sys.Property(k)
		if err != nil {
			continue
		}
		out = append(out, Property{Key: k, Value: v})
	}
	return out
}

func mapSpecies[T any](sys System, f func(Species) T) []T {
	out := make([]T, sys.Len())
	for i := range out {
		out[i] = f(sys.At(i))
	}
	return out
}

// Positions returns the position of every species, in index order.
func Positions(sys System) []units.Vector {
	return mapSpecies(sys, Species.Position)
}

// Position returns the position of species i.
func Position(sys System, i int) units.Vector {
	return sys.At(i).Position()
}

// Velocities returns the velocity of every species, in index order.
func Velocities(sys System) []units.Vector {
	return mapSpecies(sys, Species.Velocity)
}

// Velocity returns the velocity of species i.
func Velocity(sys System, i int) units.Vector {
	return sys.At(i).Velocity()
}

// AtomicMasses returns the atomic mass of every species, in index order.
func AtomicMasses(sys System) []units.Quantity {
	return mapSpecies(sys, Species.AtomicMass)
}

// AtomicMass returns the atomic mass of species i.
func AtomicMass(sys System, i int) units.Quantity {
	return sys.At(i).AtomicMass()
}

// AtomicSymbols returns the atomic symbol of every species, in index order.
func AtomicSymbols(sys System) []Symbol {
	return mapSpecies(sys, Species.AtomicSymbol)
}

// AtomicSymbol returns the atomic symbol of species i.
func AtomicSymbol(sys System, i int) Symbol {
	return sys.At(i).AtomicSymbol()
}

// AtomicNumbers returns the atomic number of every species, in index order.
func AtomicNumbers(sys System) []int {
	return mapSpecies(sys, Species.AtomicNumber)
}

// AtomicNumber returns the atomic number of species i.
func AtomicNumber(sys System, i int) int {
	return sys.At(i).AtomicNumber()
}

// AtomKeys returns the keys present on every species, in the key order of the
// first species. A system without species has no atom keys.
func AtomKeys(sys System) []Key {
	if sys.Len() == 0 {
		return []Key{}
	}
	out := make([]Key, 0)
	for _, k := range sys.At(0).Keys() {
		if HasAtomKey(sys, k) {
			out = append(out, k)
		}
	}
	return out
}

// HasAtomKey reports whether every species has key. A system without species
// vacuously has every key, although AtomKeys lists none.
func HasAtomKey(sys System, key Key) bool {
	for _, sp := range All(sys) {
		if !sp.HasKey(key) {
			return false
		}
	}
	return true
}

func unknownKey(owner string, key Key) error {
	return fmt.Errorf("%w: %s has no property %q", ErrUnknownKey, owner, key)
}
