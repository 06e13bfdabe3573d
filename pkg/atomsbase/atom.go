package atomsbase

import (
	"errors"
	"fmt"

	"github.com/daniacca/atomsbase/pkg/atomsbase/units"
)

// Atom is a single particle: fixed physical fields plus an ordered map of
// extra properties. Atoms are values; every change produces a new Atom.
type Atom struct {
	position units.Vector
	velocity units.Vector
	symbol   Symbol
	number   int
	mass     units.Quantity
	extra    Properties
}

// AtomOption sets one named field of an atom under construction.
type AtomOption func(*atomFields)

type atomFields struct {
	position *units.Vector
	velocity *units.Vector
	symbol   *Symbol
	number   *int
	mass     *units.Quantity
	extra    Properties
	errs     []error
}

func WithPosition(v units.Vector) AtomOption {
	return func(f *atomFields) { f.position = &v }
}

func WithVelocity(v units.Vector) AtomOption {
	return func(f *atomFields) { f.velocity = &v }
}

func WithAtomicSymbol(s Symbol) AtomOption {
	return func(f *atomFields) { f.symbol = &s }
}

func WithAtomicNumber(n int) AtomOption {
	return func(f *atomFields) { f.number = &n }
}

func WithAtomicMass(m units.Quantity) AtomOption {
	return func(f *atomFields) { f.mass = &m }
}

// WithProperty stores an extra property. The fixed field names are reserved:
// using one fails construction with ErrReservedKey.
func WithProperty(key Key, v Value) AtomOption {
	return func(f *atomFields) {
		if IsReserved(key) {
			f.errs = append(f.errs, fmt.Errorf("%w: %q is a fixed atom field, use its dedicated option", ErrReservedKey, key))
			return
		}
		f.extra.Set(key, v)
	}
}

func collectFields(opts []AtomOption) *atomFields {
	f := &atomFields{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewAtom builds an atom of species id at position using the default builder.
func NewAtom(id Identifier, position units.Vector, opts ...AtomOption) (Atom, error) {
	return defaultBuilder.NewAtom(id, position, opts...)
}

// NewAtomFromFields builds an atom from named fields only, using the default builder.
func NewAtomFromFields(opts ...AtomOption) (Atom, error) {
	return defaultBuilder.NewAtomFromFields(opts...)
}

// NewAtom builds an atom of species id at position.
//
// Symbol, number and mass are resolved in order: explicit option, the
// identifier itself (a Symbol gives the symbol, a Number the number), the
// species lookup, and finally UnknownSymbol, 0 and NaN. A missing velocity is
// the zero vector of the position's dimension.
func (b *Builder) NewAtom(id Identifier, position units.Vector, opts ...AtomOption) (Atom, error) {
	f := collectFields(opts)
	if len(f.errs) > 0 {
		return Atom{}, errors.Join(f.errs...)
	}
	if f.position != nil {
		position = *f.position
	}

	a := Atom{position: position, extra: f.extra}
	symbolSet, numberSet, massSet := f.symbol != nil, f.number != nil, f.mass != nil
	if symbolSet {
		a.symbol = *f.symbol
	}
	if numberSet {
		a.number = *f.number
	}
	if massSet {
		a.mass = *f.mass
	}

	switch v := id.(type) {
	case Symbol:
		if !symbolSet {
			a.symbol, symbolSet = v, true
		}
	case Number:
		if !numberSet {
			a.number, numberSet = int(v), true
		}
	}

	if id != nil && !(symbolSet && numberSet && massSet) {
		if el, ok := b.lookup.Lookup(id); ok {
			if !symbolSet {
				a.symbol, symbolSet = Symbol(el.Symbol), true
			}
			if !numberSet {
				a.number, numberSet = el.Number, true
			}
			if !massSet {
				m, err := units.Q(el.AtomicMass, units.Dalton).Convert(b.units.Mass)
				if err != nil {
					return Atom{}, fmt.Errorf("atomic_mass: %w", err)
				}
				a.mass, massSet = m, true
			}
		} else {
			b.logger.Debugf("species lookup found no entry for %q, using fallback defaults", id.String())
		}
	}

	if !symbolSet {
		a.symbol = UnknownSymbol
	}
	if !massSet {
		a.mass = units.NaN(b.units.Mass)
	}

	if f.velocity != nil {
		a.velocity = *f.velocity
	} else {
		a.velocity = units.Zeros(b.units.Velocity, position.Len())
	}

	if err := a.validate(); err != nil {
		return Atom{}, err
	}
	return a, nil
}

// NewAtomFromFields builds an atom from named fields only. WithPosition and
// at least one of WithAtomicNumber or WithAtomicSymbol are required; the
// number, when given, identifies the species.
func (b *Builder) NewAtomFromFields(opts ...AtomOption) (Atom, error) {
	f := collectFields(opts)
	var id Identifier
	switch {
	case f.number != nil:
		id = Number(*f.number)
	case f.symbol != nil:
		id = *f.symbol
	default:
		return Atom{}, ErrMissingIdentifier
	}
	if f.position == nil {
		return Atom{}, ErrMissingPosition
	}
	return b.NewAtom(id, *f.position, opts...)
}

func (a Atom) validate() error {
	if a.position.Len() == 0 {
		return ErrMissingPosition
	}
	if a.position.Dim() != units.Length {
		return fmt.Errorf("position: %w: expected length, got %s", units.ErrIncompatible, a.position.Dim())
	}
	if a.velocity.Dim() != units.Velocity {
		return fmt.Errorf("velocity: %w: expected velocity, got %s", units.ErrIncompatible, a.velocity.Dim())
	}
	if a.mass.Dim() != units.Mass {
		return fmt.Errorf("atomic_mass: %w: expected mass, got %s", units.ErrIncompatible, a.mass.Dim())
	}
	if a.velocity.Len() != a.position.Len() {
		return fmt.Errorf("%w: velocity has %d components, position has %d", ErrDimensionMismatch, a.velocity.Len(), a.position.Len())
	}
	return nil
}

// With returns a new atom with all of a's fields and properties, overridden
// by opts. The receiver is left untouched. It validates with the default
// builder; use Builder.Update to keep a configured builder's logger.
func (a Atom) With(opts ...AtomOption) (Atom, error) {
	return defaultBuilder.Update(a, opts...)
}

// Update is Atom.With run through b.
func (b *Builder) Update(a Atom, opts ...AtomOption) (Atom, error) {
	base := make([]AtomOption, 0, 5+a.extra.Len()+len(opts))
	base = append(base,
		WithPosition(a.position),
		WithVelocity(a.velocity),
		WithAtomicSymbol(a.symbol),
		WithAtomicNumber(a.number),
		WithAtomicMass(a.mass),
	)
	for _, p := range a.extra.Pairs() {
		base = append(base, WithProperty(p.Key, p.Value))
	}
	return b.NewAtomFromFields(append(base, opts...)...)
}

func (a Atom) Position() units.Vector     { return a.position }
func (a Atom) Velocity() units.Vector     { return a.velocity }
func (a Atom) AtomicSymbol() Symbol       { return a.symbol }
func (a Atom) AtomicNumber() int          { return a.number }
func (a Atom) AtomicMass() units.Quantity { return a.mass }

// NDimensions returns the number of position components.
func (a Atom) NDimensions() int {
	return a.position.Len()
}

// Get returns the fixed field or extra property named key, or ErrUnknownKey.
func (a Atom) Get(key Key) (Value, error) {
	switch key {
	case KeyPosition:
		return VectorValue(a.position), nil
	case KeyVelocity:
		return VectorValue(a.velocity), nil
	case KeyAtomicSymbol:
		return SymbolValue(a.symbol), nil
	case KeyAtomicNumber:
		return IntValue(int64(a.number)), nil
	case KeyAtomicMass:
		return QuantityValue(a.mass), nil
	}
	if v, ok := a.extra.Get(key); ok {
		return v, nil
	}
	return Value{}, unknownKey("atom "+string(a.symbol), key)
}

// GetOr returns the property named key, or def when the atom has none.
func (a Atom) GetOr(key Key, def Value) Value {
	v, err := a.Get(key)
	if err != nil {
		return def
	}
	return v
}

func (a Atom) HasKey(key Key) bool {
	return IsReserved(key) || a.extra.Has(key)
}

// Keys returns the fixed field names followed by the extra keys in insertion order.
func (a Atom) Keys() []Key {
	out := make([]Key, 0, len(fixedKeys)+a.extra.Len())
	out = append(out, fixedKeys...)
	return append(out, a.extra.Keys()...)
}

// Pairs returns every key with its value, in Keys order.
func (a Atom) Pairs() []Property {
	keys := a.Keys()
	out := make([]Property, len(keys))
	for i, k := range keys {
		v, _ := a.Get(k)
		out[i] = Property{Key: k, Value: v}
	}
	return out
}

// Extra returns a copy of the extra properties.
func (a Atom) Extra() Properties {
	return a.extra.Clone()
}

func (a Atom) clone() Atom {
	a.extra = a.extra.Clone()
	return a
}
