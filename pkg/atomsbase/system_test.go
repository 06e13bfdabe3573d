package atomsbase

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniacca/atomsbase/pkg/atomsbase/units"
)

func waterLike(t *testing.T) *FlexibleSystem {
	t.Helper()
	o, err := NewAtom(Symbol("O"), units.NewVector(units.Bohr, 0, 0, 0), WithProperty("tag", StringValue("center")), WithProperty("charge", FloatValue(-0.8)))
	require.NoError(t, err)
	h1, err := NewAtom(Symbol("H"), units.NewVector(units.Bohr, 1.4, 1.1, 0), WithProperty("charge", FloatValue(0.4)))
	require.NoError(t, err)
	h2, err := NewAtom(Symbol("H"), units.NewVector(units.Bohr, -1.4, 1.1, 0), WithProperty("charge", FloatValue(0.4)),
		WithVelocity(units.NewVector(units.BohrPerSecond, 0, 0, 1)))
	require.NoError(t, err)

	sys, err := IsolatedSystem(Inputs(o, h1, h2), WithSystemProperty("charge", FloatValue(0)))
	require.NoError(t, err)
	return sys
}

func TestDerived_PerSpeciesAccessors(t *testing.T) {
	sys := waterLike(t)

	assert.Equal(t, [1]int{3}, Size(sys))
	assert.Equal(t, []Symbol{"O", "H", "H"}, AtomicSymbols(sys))
	assert.Equal(t, []int{8, 1, 1}, AtomicNumbers(sys))

	masses := AtomicMasses(sys)
	require.Len(t, masses, 3)
	assert.True(t, masses[0].Equal(AtomicMass(sys, 0)))
	assert.True(t, masses[1].Equal(units.Q(1.008, units.Dalton)))

	positions := Positions(sys)
	require.Len(t, positions, 3)
	for i := range positions {
		assert.True(t, positions[i].Equal(Position(sys, i)))
	}

	vels := Velocities(sys)
	require.Len(t, vels, 3)
	assert.True(t, vels[0].Equal(units.Zeros(units.BohrPerSecond, 3)))
	assert.True(t, Velocity(sys, 2).Equal(units.NewVector(units.BohrPerSecond, 0, 0, 1)))
	assert.Equal(t, Symbol("H"), AtomicSymbol(sys, 1))
	assert.Equal(t, 8, AtomicNumber(sys, 0))
}

func TestDerived_AtomKeys(t *testing.T) {
	sys := waterLike(t)

	keys := AtomKeys(sys)
	assert.Equal(t, []Key{KeyPosition, KeyVelocity, KeyAtomicSymbol, KeyAtomicNumber, KeyAtomicMass, "charge"}, keys)
	assert.NotContains(t, keys, Key("tag"))
	assert.False(t, HasAtomKey(sys, "tag"))
	assert.True(t, HasAtomKey(sys, "charge"))
	assert.True(t, HasAtomKey(sys, KeyAtomicMass))

	empty, err := NewFlexibleSystem(nil, cubicBox(1, units.Bohr), Fill(Periodic, 3))
	require.NoError(t, err)
	assert.Empty(t, AtomKeys(empty))
	assert.Equal(t, 0, empty.Len())
}

func TestDerived_Iteration(t *testing.T) {
	sys := waterLike(t)

	collect := func() []Symbol {
		var out []Symbol
		for i, sp := range All(sys) {
			assert.Equal(t, sys.At(i).AtomicSymbol(), sp.AtomicSymbol())
			out = append(out, sp.AtomicSymbol())
		}
		return out
	}
	assert.Equal(t, []Symbol{"O", "H", "H"}, collect())
	assert.Equal(t, []Symbol{"O", "H", "H"}, collect(), "iteration restarts from the first species")

	var first []int
	for i := range All(sys) {
		first = append(first, i)
		if i == 1 {
			break
		}
	}
	assert.Equal(t, []int{0, 1}, first)

	assert.Panics(t, func() { sys.At(3) })
}

func TestDerived_SystemProperties(t *testing.T) {
	sys := waterLike(t)

	assert.True(t, sys.HasProperty("charge"))
	assert.False(t, sys.HasProperty("tag"))
	assert.True(t, PropertyOr(sys, "charge", IntValue(1)).Equal(FloatValue(0)))
	assert.True(t, PropertyOr(sys, "tag", StringValue("none")).Equal(StringValue("none")))
	assert.Equal(t, []Property{{Key: "charge", Value: FloatValue(0)}}, SystemProperties(sys))
}

func TestDerived_PeriodicityMatchesBoundaryConditions(t *testing.T) {
	a, err := NewAtom(Symbol("C"), units.Zeros(units.Bohr, 3))
	require.NoError(t, err)

	cases := [][]BoundaryCondition{
		Fill(Periodic, 3),
		Fill(DirichletZero, 3),
		{Periodic, DirichletZero, Periodic},
	}
	for _, bcs := range cases {
		sys, err := AtomicSystem(Inputs(a), cubicBox(2, units.Bohr), bcs)
		require.NoError(t, err)
		per := Periodicity(sys)
		require.Len(t, per, NDimensions(sys))
		for i, bc := range sys.BoundaryConditions() {
			assert.Equal(t, bc == Periodic, per[i])
		}
	}
}

func TestSpeciesType(t *testing.T) {
	sys := waterLike(t)
	assert.Equal(t, reflect.TypeFor[Atom](), sys.SpeciesType())
	assert.Equal(t, sys.SpeciesType(), reflect.TypeOf(sys.At(0)))

	fast, err := FastSystemFrom(sys)
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeFor[AtomView](), fast.SpeciesType())
	assert.Equal(t, fast.SpeciesType(), reflect.TypeOf(fast.At(0)))
}

func TestFastSystem(t *testing.T) {
	flex := waterLike(t)
	fast, err := FastSystemFrom(flex)
	require.NoError(t, err)

	assert.Equal(t, flex.Len(), fast.Len())
	assert.Equal(t, AtomicSymbols(flex), AtomicSymbols(fast))
	assert.Equal(t, AtomicNumbers(flex), AtomicNumbers(fast))
	assert.True(t, IsInfinite(fast))
	assert.Equal(t, Periodicity(flex), Periodicity(fast))
	for i := 0; i < fast.Len(); i++ {
		assert.True(t, Position(fast, i).Equal(Position(flex, i)))
		assert.True(t, Velocity(fast, i).Equal(units.Zeros(units.BohrPerSecond, 3)))
	}

	assert.Empty(t, fast.PropertyKeys())
	_, err = fast.Property("charge")
	require.ErrorIs(t, err, ErrUnknownKey)
	assert.True(t, PropertyOr(fast, "charge", IntValue(3)).Equal(IntValue(3)))

	assert.False(t, HasAtomKey(fast, "charge"), "views carry no extra properties")
	assert.Equal(t, []Key{KeyPosition, KeyVelocity, KeyAtomicSymbol, KeyAtomicNumber, KeyAtomicMass}, AtomKeys(fast))

	view := fast.At(1)
	mass, err := view.Get(KeyAtomicMass)
	require.NoError(t, err)
	q, ok := mass.Quantity()
	require.True(t, ok)
	assert.True(t, q.Equal(units.Q(1.008, units.Dalton)))
	_, err = view.Get("charge")
	require.ErrorIs(t, err, ErrUnknownKey)
}

func TestNewFastSystem_Validation(t *testing.T) {
	box := cubicBox(1, units.Bohr)
	_, err := NewFastSystem(box, Fill(Periodic, 3),
		[]units.Vector{units.Zeros(units.Bohr, 3), units.Zeros(units.Bohr, 2)},
		[]Symbol{"H"},
		[]int{1, 1},
		[]units.Quantity{units.Q(1, units.Dalton), units.Q(1, units.Bohr)},
	)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.ErrorIs(t, err, ErrDimensionMismatch)
	require.ErrorIs(t, err, units.ErrIncompatible)
	assert.Len(t, verr.Issues, 3)
}
