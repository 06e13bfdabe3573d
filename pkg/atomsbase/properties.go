package atomsbase

// Key names a property of a species or of a system.
type Key string

// Keys of the fixed atom fields. They form a reserved namespace: no extra
// property may use them.
const (
	KeyPosition     Key = "position"
	KeyVelocity     Key = "velocity"
	KeyAtomicSymbol Key = "atomic_symbol"
	KeyAtomicNumber Key = "atomic_number"
	KeyAtomicMass   Key = "atomic_mass"
)

var fixedKeys = []Key{KeyPosition, KeyVelocity, KeyAtomicSymbol, KeyAtomicNumber, KeyAtomicMass}

// IsReserved reports whether k names one of the fixed atom fields.
func IsReserved(k Key) bool {
	for _, fk := range fixedKeys {
		if k == fk {
			return true
		}
	}
	return false
}

// Property is a single key/value pair.
type Property struct {
	Key   Key
	Value Value
}

// Properties is an insertion-ordered key/value map. The zero value is empty
// and ready to use. Copies made with Clone do not share storage.
type Properties struct {
	keys []Key
	vals map[Key]Value
}

// NewProperties builds a map from pairs; later duplicates overwrite earlier ones.
func NewProperties(pairs ...Property) Properties {
	var p Properties
	for _, kv := range pairs {
		p.Set(kv.Key, kv.Value)
	}
	return p
}

// Set inserts or replaces k. Replacing keeps the original position.
func (p *Properties) Set(k Key, v Value) {
	if p.vals == nil {
		p.vals = make(map[Key]Value)
	}
	if _, ok := p.vals[k]; !ok {
		p.keys = append(p.keys, k)
	}
	p.vals[k] = v
}

func (p Properties) Get(k Key) (Value, bool) {
	v, ok := p.vals[k]
	return v, ok
}

func (p Properties) Has(k Key) bool {
	_, ok := p.vals[k]
	return ok
}

func (p Properties) Len() int {
	return len(p.keys)
}

// Keys returns the keys in insertion order.
func (p Properties) Keys() []Key {
	out := make([]Key, len(p.keys))
	copy(out, p.keys)
	return out
}

// Pairs returns the entries in insertion order.
func (p Properties) Pairs() []Property {
	out := make([]Property, len(p.keys))
	for i, k := range p.keys {
		out[i] = Property{Key: k, Value: p.vals[k]}
	}
	return out
}

func (p Properties) Clone() Properties {
	return NewProperties(p.Pairs()...)
}
