package rules

import (
	"strings"

	"github.com/ppiankov/rulegen/internal/model"
	"github.com/ppiankov/rulegen/internal/normalize"
)

// Labels written into a null-critical row before mapping. They resolve to
// ARCHIVE / "Somewhat dissatisfied" / "It is for a service the business
// does not provide".
const (
	nullCriticalMarkAs       = "Archive"
	nullCriticalFirstRating  = "Somewhat Dissatisfied"
	nullCriticalSecondRating = "Not preferred Service"
)

// IsNullCritical reports whether a row has neither a disposition nor a first
// rating. Inputs are cleaned cell text.
func IsNullCritical(markAs, firstRating string) bool {
	if firstRating != "" {
		return false
	}
	switch strings.ToLower(markAs) {
	case "", "none", "null":
		return true
	}
	return false
}

// Classify returns row unchanged, or, for a null-critical row, a copy with
// disposition and both ratings replaced by the archive defaults.
func Classify(row model.RawRow) (model.RawRow, bool) {
	markAs := normalize.String(row[model.ColMarkAs])
	firstRating := normalize.String(row[model.ColFirstRating])
	if !IsNullCritical(markAs, firstRating) {
		return row, false
	}

	row[model.ColMarkAs] = nullCriticalMarkAs
	row[model.ColFirstRating] = nullCriticalFirstRating
	row[model.ColSecondRating] = nullCriticalSecondRating
	return row, true
}
