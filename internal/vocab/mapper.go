// Package vocab translates operator-entered sheet labels into the target
// platform's vocabulary through closed lookup tables.
package vocab

// Kind tags how a Resolution was produced
type Kind int

const (
	Mapped   Kind = iota // input found in the table
	Fallback             // blank input, fallback value used
	Unmapped             // non-blank input missing from the table, fallback value used
)

func (k Kind) String() string {
	switch k {
	case Mapped:
		return "mapped"
	case Fallback:
		return "fallback"
	case Unmapped:
		return "unmapped"
	default:
		return "unknown"
	}
}

// Resolution is the outcome of looking up one label
type Resolution[T any] struct {
	Kind     Kind
	Value    T      // resolved value; the fallback unless Kind is Mapped
	Original string // input text, kept for Unmapped reporting
}

// Mapper is a closed lookup table with a declared fallback
type Mapper[T any] struct {
	category Category
	table    map[string]T
	fallback T
}

// NewMapper creates a mapper. Lookups are exact: case and wording matter.
func NewMapper[T any](category Category, table map[string]T, fallback T) *Mapper[T] {
	return &Mapper[T]{
		category: category,
		table:    table,
		fallback: fallback,
	}
}

// Category returns the warning category unmapped values are filed under
func (m *Mapper[T]) Category() Category {
	return m.category
}

// Resolve looks up a cleaned label
func (m *Mapper[T]) Resolve(label string) Resolution[T] {
	if label == "" {
		return Resolution[T]{Kind: Fallback, Value: m.fallback}
	}
	if v, ok := m.table[label]; ok {
		return Resolution[T]{Kind: Mapped, Value: v, Original: label}
	}
	return Resolution[T]{Kind: Unmapped, Value: m.fallback, Original: label}
}

// Apply resolves label, files unmapped input into acc and returns the value
func (m *Mapper[T]) Apply(label string, acc *UnmappedSet) T {
	r := m.Resolve(label)
	if r.Kind == Unmapped && acc != nil {
		acc.Add(m.category, r.Original)
	}
	return r.Value
}
