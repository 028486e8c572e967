// Package rules folds sheet rows into the code -> rule lookup table.
//
// The build is a single left-to-right pass: later rows overwrite earlier
// ones, every code containing spaces also gets a space-stripped alias, and
// nothing about the data can make it fail. Anything worth an operator's
// attention is collected in Diagnostics.
package rules

import (
	"github.com/ppiankov/rulegen/internal/model"
	"github.com/ppiankov/rulegen/internal/normalize"
	"github.com/ppiankov/rulegen/internal/vocab"
)

// AliasConflict describes an alias key that could not point at Code's rule
type AliasConflict struct {
	Alias  string // space-stripped key
	Code   string // code whose alias was dropped
	Holder string // code that owns the key instead
}

// Diagnostics collects everything a run wants to warn about
type Diagnostics struct {
	RowsRead        int
	SkippedRows     int      // rows without a code
	Duplicates      []string // each overwritten key once, in order of first repeat
	DuplicateHits   int      // number of overwrites
	NullCritical    []string
	SkippedAliases  []AliasConflict // alias slot already taken
	ShadowedAliases []AliasConflict // alias replaced by a row with that exact code
	Unmapped        *vocab.UnmappedSet
}

// Result is the output of one build
type Result struct {
	Table       *Table
	Diagnostics *Diagnostics
}

// Builder accumulates rows into a Table
type Builder struct {
	table        *Table
	diag         *Diagnostics
	repeated     map[string]bool
	skippedAlias map[AliasConflict]bool
}

// NewBuilder creates a builder with an empty table
func NewBuilder() *Builder {
	return &Builder{
		table: NewTable(),
		diag: &Diagnostics{
			Unmapped: vocab.NewUnmappedSet(),
		},
		repeated:     make(map[string]bool),
		skippedAlias: make(map[AliasConflict]bool),
	}
}

// Build folds rows, in order, into a fresh table
func Build(rows []model.RawRow) *Result {
	b := NewBuilder()
	for _, row := range rows {
		b.Add(row)
	}
	return b.Result()
}

// Add processes one row
func (b *Builder) Add(row model.RawRow) {
	b.diag.RowsRead++

	code := normalize.Code(normalize.String(row[model.ColCode]))
	if code == "" {
		b.diag.SkippedRows++
		return
	}

	row, nullCritical := Classify(row)
	if nullCritical {
		b.diag.NullCritical = append(b.diag.NullCritical, code)
	}

	b.insert(code, b.rule(row))
}

// Result returns the table and diagnostics built so far
func (b *Builder) Result() *Result {
	return &Result{
		Table:       b.table,
		Diagnostics: b.diag,
	}
}

// rule maps a classified row to its canonical record
func (b *Builder) rule(row model.RawRow) model.Rule {
	acc := b.diag.Unmapped

	markAs := normalize.String(row[model.ColMarkAs])
	if !normalize.MarkAsKnown(markAs) {
		acc.Add(vocab.CategoryMarkAs, markAs)
	}

	return model.Rule{
		CallTypeID:    model.CellValue(row[model.ColCallTypeID]),
		LawTypeBroad:  normalize.String(row[model.ColLawTypeBroad]),
		LawTypeNarrow: normalize.String(row[model.ColLawTypeNarrow]),
		Qualified:     normalize.Qualified(row[model.ColQualified]),
		Description:   normalize.String(row[model.ColDescription]),
		MarkAs:        normalize.MarkAs(markAs),
		JobType:       vocab.JobTypes.Apply(normalize.String(row[model.ColJobType]), acc),
		Price:         normalize.Price(normalize.String(row[model.ColPrice])),
		Rating:        vocab.FirstRating.Apply(normalize.String(row[model.ColFirstRating]), acc),
		Reason:        vocab.SecondRating.Apply(normalize.String(row[model.ColSecondRating]), acc),
	}
}

// insert stores rule under code and registers the space-stripped alias
func (b *Builder) insert(code string, rule model.Rule) {
	t := b.table

	if _, exists := t.rules[code]; exists {
		b.diag.DuplicateHits++
		if !b.repeated[code] {
			b.repeated[code] = true
			b.diag.Duplicates = append(b.diag.Duplicates, code)
		}
	}
	if owner, isAlias := t.aliasOwner[code]; isAlias {
		delete(t.aliasOwner, code)
		b.diag.ShadowedAliases = append(b.diag.ShadowedAliases, AliasConflict{
			Alias:  code,
			Code:   owner,
			Holder: code,
		})
	}
	t.rules[code] = rule

	alias := normalize.StripSpaces(code)
	if alias == code {
		return
	}

	if _, taken := t.rules[alias]; !taken {
		t.rules[alias] = rule
		t.aliasOwner[alias] = code
		return
	}

	// an occupied slot is never overwritten, not even by its own code
	holder := alias
	if owner, ok := t.aliasOwner[alias]; ok {
		if owner == code {
			return
		}
		holder = owner
	}
	conflict := AliasConflict{Alias: alias, Code: code, Holder: holder}
	if !b.skippedAlias[conflict] {
		b.skippedAlias[conflict] = true
		b.diag.SkippedAliases = append(b.diag.SkippedAliases, conflict)
	}
}
