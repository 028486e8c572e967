package vocab

import "sort"

// Category names a vocabulary whose drift is reported after a run
type Category string

const (
	CategoryFirstRating  Category = "First Rating"
	CategorySecondRating Category = "Second Rating"
	CategoryJobType      Category = "Job Type"
	CategoryMarkAs       Category = "Mark As" // dispositions that fell back to ARCHIVE
)

// Categories lists every category in report order
var Categories = []Category{
	CategoryFirstRating,
	CategorySecondRating,
	CategoryJobType,
	CategoryMarkAs,
}

// MapperCategories are the categories fed by the vocabulary mappers
var MapperCategories = Categories[:3]

// UnmappedSet accumulates distinct unmapped labels per category over one build
type UnmappedSet struct {
	values map[Category]map[string]struct{}
}

// NewUnmappedSet creates an empty accumulator
func NewUnmappedSet() *UnmappedSet {
	return &UnmappedSet{
		values: make(map[Category]map[string]struct{}),
	}
}

// Add records label under category. Blank labels are ignored.
func (u *UnmappedSet) Add(category Category, label string) {
	if label == "" {
		return
	}
	set, ok := u.values[category]
	if !ok {
		set = make(map[string]struct{})
		u.values[category] = set
	}
	set[label] = struct{}{}
}

// Values returns the labels recorded for category, sorted
func (u *UnmappedSet) Values(category Category) []string {
	set := u.values[category]
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Len returns the total number of distinct labels across categories
func (u *UnmappedSet) Len() int {
	n := 0
	for _, set := range u.values {
		n += len(set)
	}
	return n
}

// Empty reports whether nothing was recorded. With categories given, only
// those are considered.
func (u *UnmappedSet) Empty(categories ...Category) bool {
	if len(categories) == 0 {
		return u.Len() == 0
	}
	for _, c := range categories {
		if len(u.values[c]) > 0 {
			return false
		}
	}
	return true
}
