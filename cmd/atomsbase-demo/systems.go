package main

import (
	"fmt"

	"github.com/daniacca/atomsbase/pkg/atomsbase"
	"github.com/daniacca/atomsbase/pkg/atomsbase/units"
)

type namedSystem struct {
	name string
	sys  atomsbase.System
}

// siliconLattice is the diamond cubic lattice constant of silicon in Å.
const siliconLattice = 5.431

func buildH2(b *atomsbase.Builder) (atomsbase.System, error) {
	return b.IsolatedSystem([]atomsbase.AtomInput{
		atomsbase.Pair{ID: atomsbase.Symbol("H"), Position: units.NewVector(units.Bohr, 0, 0, 0)},
		atomsbase.Pair{ID: atomsbase.Symbol("H"), Position: units.NewVector(units.Bohr, 0, 0, 1.4)},
	}, atomsbase.WithSystemProperty("name", atomsbase.StringValue("hydrogen molecule")))
}

// buildSilicon builds the two-atom primitive cell of diamond silicon from
// fractional coordinates.
func buildSilicon(b *atomsbase.Builder) (atomsbase.System, error) {
	h := siliconLattice / 2
	box := atomsbase.Box{
		units.NewVector(units.Angstrom, 0, h, h),
		units.NewVector(units.Angstrom, h, 0, h),
		units.NewVector(units.Angstrom, h, h, 0),
	}
	return b.PeriodicSystem([]atomsbase.AtomInput{
		atomsbase.FractionalPair(atomsbase.Symbol("Si"), 1.0/8, 1.0/8, 1.0/8),
		atomsbase.FractionalPair(atomsbase.Symbol("Si"), -1.0/8, -1.0/8, -1.0/8),
	}, box,
		atomsbase.Fractional(),
		atomsbase.WithSystemProperty("name", atomsbase.StringValue("diamond silicon")),
		atomsbase.WithSystemProperty("lattice_constant", atomsbase.QuantityValue(units.Q(siliconLattice, units.Angstrom))),
	)
}

// buildSystems builds the systems selected by name, in a fixed order.
func buildSystems(b *atomsbase.Builder, which string) ([]namedSystem, error) {
	builders := []struct {
		name  string
		build func(*atomsbase.Builder) (atomsbase.System, error)
	}{
		{"h2", buildH2},
		{"silicon", buildSilicon},
	}

	var out []namedSystem
	for _, sb := range builders {
		if which != "all" && which != sb.name {
			continue
		}
		sys, err := sb.build(b)
		if err != nil {
			return nil, fmt.Errorf("building %s: %w", sb.name, err)
		}
		out = append(out, namedSystem{name: sb.name, sys: sys})
	}
	return out, nil
}
