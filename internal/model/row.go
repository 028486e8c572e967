package model

// RowWidth is the number of positional columns a source row carries
const RowWidth = 11

// Column positions in the "General Settings" sheet
const (
	ColCode = iota
	ColCallTypeID
	ColLawTypeBroad
	ColLawTypeNarrow
	ColQualified
	ColDescription
	ColMarkAs
	ColJobType
	ColPrice
	ColFirstRating
	ColSecondRating
)

// RawRow is one unprocessed sheet row, addressed by the Col* constants
type RawRow [RowWidth]string

// NewRawRow copies cells into a RawRow. Missing trailing cells stay blank
// and cells past RowWidth are dropped.
func NewRawRow(cells []string) RawRow {
	var r RawRow
	copy(r[:], cells)
	return r
}
