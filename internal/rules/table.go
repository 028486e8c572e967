package rules

import (
	"sort"

	"github.com/ppiankov/rulegen/internal/model"
)

// Table maps codes and their space-stripped aliases to rules
type Table struct {
	rules      map[string]model.Rule
	aliasOwner map[string]string // alias key -> code that registered it
}

// NewTable creates an empty table
func NewTable() *Table {
	return &Table{
		rules:      make(map[string]model.Rule),
		aliasOwner: make(map[string]string),
	}
}

// Get returns the rule stored under key
func (t *Table) Get(key string) (model.Rule, bool) {
	r, ok := t.rules[key]
	return r, ok
}

// Len returns the number of keys, aliases included
func (t *Table) Len() int {
	return len(t.rules)
}

// IsAlias reports whether key is a space-stripped alias rather than a code
func (t *Table) IsAlias(key string) bool {
	_, ok := t.aliasOwner[key]
	return ok
}

// Keys returns every key in sorted order
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.rules))
	for k := range t.rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Rules returns a copy of the key -> rule mapping
func (t *Table) Rules() map[string]model.Rule {
	out := make(map[string]model.Rule, len(t.rules))
	for k, v := range t.rules {
		out[k] = v
	}
	return out
}
