// Package units provides the small set of dimensioned quantities atomsbase
// needs: lengths, velocities and masses, as scalars or homogeneous vectors.
package units

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrIncompatible = errors.New("incompatible dimensions")
	ErrUnknownUnit  = errors.New("unknown unit")
)

// Dimension is the physical dimension of a unit.
type Dimension uint8

const (
	Dimensionless Dimension = iota
	Length
	Velocity
	Mass
)

func (d Dimension) String() string {
	switch d {
	case Dimensionless:
		return "dimensionless"
	case Length:
		return "length"
	case Velocity:
		return "velocity"
	case Mass:
		return "mass"
	default:
		return "unknown"
	}
}

// Unit is a named scale of a dimension. Units are comparable values.
type Unit struct {
	Symbol string
	Dim    Dimension
	toSI   float64
}

const (
	bohrInMeters   = 5.29177210903e-11
	daltonInKg     = 1.66053906660e-27
	electronMassKg = 9.1093837015e-31
)

var (
	One = Unit{Symbol: "", Dim: Dimensionless, toSI: 1}

	Bohr      = Unit{Symbol: "bohr", Dim: Length, toSI: bohrInMeters}
	Angstrom  = Unit{Symbol: "Å", Dim: Length, toSI: 1e-10}
	Nanometer = Unit{Symbol: "nm", Dim: Length, toSI: 1e-9}
	Meter     = Unit{Symbol: "m", Dim: Length, toSI: 1}

	BohrPerSecond          = Unit{Symbol: "bohr/s", Dim: Velocity, toSI: bohrInMeters}
	AngstromPerFemtosecond = Unit{Symbol: "Å/fs", Dim: Velocity, toSI: 1e5}
	MeterPerSecond         = Unit{Symbol: "m/s", Dim: Velocity, toSI: 1}

	Dalton       = Unit{Symbol: "u", Dim: Mass, toSI: daltonInKg}
	Kilogram     = Unit{Symbol: "kg", Dim: Mass, toSI: 1}
	ElectronMass = Unit{Symbol: "me", Dim: Mass, toSI: electronMassKg}
)

var registry = map[string]Unit{
	"bohr":        Bohr,
	"a0":          Bohr,
	"Å":           Angstrom,
	"angstrom":    Angstrom,
	"nm":          Nanometer,
	"m":           Meter,
	"bohr/s":      BohrPerSecond,
	"Å/fs":        AngstromPerFemtosecond,
	"angstrom/fs": AngstromPerFemtosecond,
	"m/s":         MeterPerSecond,
	"u":           Dalton,
	"da":          Dalton,
	"dalton":      Dalton,
	"kg":          Kilogram,
	"me":          ElectronMass,
}

// Parse resolves a unit from its symbol or one of its aliases. Lookup is
// case-insensitive except for the Å symbol itself.
func Parse(symbol string) (Unit, error) {
	s := strings.TrimSpace(symbol)
	if u, ok := registry[s]; ok {
		return u, nil
	}
	if u, ok := registry[strings.ToLower(s)]; ok {
		return u, nil
	}
	return Unit{}, fmt.Errorf("%w: %q", ErrUnknownUnit, symbol)
}

func (u Unit) String() string {
	return u.Symbol
}

// factor returns the multiplier converting a value in u into a value in to.
func (u Unit) factor(to Unit) (float64, error) {
	if u.Dim != to.Dim {
		return 0, fmt.Errorf("%w: cannot convert %s (%s) to %s (%s)", ErrIncompatible, u.Symbol, u.Dim, to.Symbol, to.Dim)
	}
	if u == to {
		return 1, nil
	}
	return u.toSI / to.toSI, nil
}

// Quantity is a scalar value tagged with a unit.
type Quantity struct {
	Value float64
	Unit  Unit
}

// Q is shorthand for Quantity{Value: v, Unit: u}.
func Q(v float64, u Unit) Quantity {
	return Quantity{Value: v, Unit: u}
}

// Inf returns +Inf in the given unit.
func Inf(u Unit) Quantity {
	return Quantity{Value: math.Inf(1), Unit: u}
}

// NaN returns NaN in the given unit, used as the "unknown" value of a dimension.
func NaN(u Unit) Quantity {
	return Quantity{Value: math.NaN(), Unit: u}
}

func (q Quantity) Dim() Dimension {
	return q.Unit.Dim
}

func (q Quantity) IsNaN() bool {
	return math.IsNaN(q.Value)
}

// Convert returns q expressed in unit to.
func (q Quantity) Convert(to Unit) (Quantity, error) {
	f, err := q.Unit.factor(to)
	if err != nil {
		return Quantity{}, err
	}
	if f == 1 {
		return Quantity{Value: q.Value, Unit: to}, nil
	}
	return Quantity{Value: q.Value * f, Unit: to}, nil
}

// Equal reports exact equality after converting o into q's unit.
// Quantities of different dimensions are never equal.
func (q Quantity) Equal(o Quantity) bool {
	c, err := o.Convert(q.Unit)
	if err != nil {
		return false
	}
	return q.Value == c.Value
}

func (q Quantity) String() string {
	if q.Unit.Symbol == "" {
		return fmt.Sprintf("%g", q.Value)
	}
	return fmt.Sprintf("%g %s", q.Value, q.Unit.Symbol)
}
