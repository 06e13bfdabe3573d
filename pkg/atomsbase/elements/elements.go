// Package elements implements the species lookup service: resolving a chemical
// symbol, element name or atomic number into canonical element data.
package elements

import "strings"

// Element holds the canonical data of one chemical species.
// AtomicMass is expressed in dalton.
type Element struct {
	Symbol     string
	Name       string
	Number     int
	AtomicMass float64
}

// Table is an immutable lookup table of elements indexed by symbol, name and number.
type Table struct {
	bySymbol map[string]Element
	byName   map[string]Element
	byNumber map[int]Element
	order    []string
}

// NewTable builds a table from the given elements. Later entries with an
// already registered symbol replace the earlier entry.
func NewTable(elements ...Element) *Table {
	t := &Table{
		bySymbol: make(map[string]Element, len(elements)),
		byName:   make(map[string]Element, len(elements)),
		byNumber: make(map[int]Element, len(elements)),
		order:    make([]string, 0, len(elements)),
	}
	t.add(elements...)
	return t
}

func (t *Table) add(elements ...Element) {
	for _, el := range elements {
		if prev, exists := t.bySymbol[el.Symbol]; exists {
			t.forget(prev)
		} else {
			t.order = append(t.order, el.Symbol)
		}
		t.bySymbol[el.Symbol] = el
		if el.Name != "" {
			t.byName[strings.ToLower(el.Name)] = el
		}
		// Isotopes and custom labels share a number with their element; the
		// number slot stays with the first symbol registered for it.
		if el.Number <= 0 {
			continue
		}
		if prev, exists := t.byNumber[el.Number]; !exists || prev.Symbol == el.Symbol {
			t.byNumber[el.Number] = el
		}
	}
}

// forget drops the name and number entries still pointing at prev.
func (t *Table) forget(prev Element) {
	key := strings.ToLower(prev.Name)
	if cur, ok := t.byName[key]; ok && cur.Symbol == prev.Symbol {
		delete(t.byName, key)
	}
	if cur, ok := t.byNumber[prev.Number]; ok && cur.Symbol == prev.Symbol {
		delete(t.byNumber, prev.Number)
	}
}

// With returns a copy of the table extended with the given elements.
func (t *Table) With(elements ...Element) *Table {
	out := NewTable()
	for _, sym := range t.order {
		out.add(t.bySymbol[sym])
	}
	out.add(elements...)
	return out
}

// BySymbol looks up an element by its exact symbol, e.g. "He".
func (t *Table) BySymbol(symbol string) (Element, bool) {
	el, ok := t.bySymbol[symbol]
	return el, ok
}

// ByName looks up an element by its name, ignoring case.
func (t *Table) ByName(name string) (Element, bool) {
	el, ok := t.byName[strings.ToLower(strings.TrimSpace(name))]
	return el, ok
}

// ByNumber looks up an element by its atomic number.
func (t *Table) ByNumber(number int) (Element, bool) {
	el, ok := t.byNumber[number]
	return el, ok
}

// Len returns the number of registered symbols.
func (t *Table) Len() int {
	return len(t.order)
}

// Symbols returns the registered symbols in registration order.
func (t *Table) Symbols() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

var defaultTable = NewTable(periodicTable...)

// Default returns the periodic table of the 118 known elements.
func Default() *Table {
	return defaultTable
}
