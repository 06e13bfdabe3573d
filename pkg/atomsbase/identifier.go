package atomsbase

import (
	"strconv"
	"strings"

	"github.com/daniacca/atomsbase/pkg/atomsbase/elements"
)

// Symbol is a chemical symbol or user-chosen species label, e.g. "Si" or "D".
type Symbol string

// UnknownSymbol is assigned when neither the identifier nor the lookup service
// provides a symbol.
const UnknownSymbol Symbol = "unknown"

// Identifier selects a species. It is implemented by Symbol, Label and Number.
type Identifier interface {
	identifier()
	String() string
}

// Label identifies a species by free-form text, matched against element names
// and then symbols.
type Label string

// Number identifies a species by atomic number.
type Number int

func (Symbol) identifier() {}
func (Label) identifier()  {}
func (Number) identifier() {}

func (s Symbol) String() string { return string(s) }
func (l Label) String() string  { return string(l) }
func (n Number) String() string { return strconv.Itoa(int(n)) }

// SpeciesLookup resolves identifiers to canonical element data. The boolean
// result is false when the identifier is unknown.
type SpeciesLookup interface {
	Lookup(id Identifier) (elements.Element, bool)
}

// TableLookup adapts an element table to the SpeciesLookup interface.
func TableLookup(t *elements.Table) SpeciesLookup {
	return tableLookup{table: t}
}

type tableLookup struct {
	table *elements.Table
}

func (l tableLookup) Lookup(id Identifier) (elements.Element, bool) {
	switch v := id.(type) {
	case Symbol:
		return l.table.BySymbol(string(v))
	case Number:
		return l.table.ByNumber(int(v))
	case Label:
		if el, ok := l.table.ByName(string(v)); ok {
			return el, true
		}
		return l.table.BySymbol(strings.TrimSpace(string(v)))
	}
	return elements.Element{}, false
}
