// Package normalize converts raw sheet cell text into canonical scalar values.
// None of these functions fail: malformed input degrades to a fixed fallback.
package normalize

import (
	"math"
	"strconv"
	"strings"

	"github.com/ppiankov/rulegen/internal/model"
)

// noPriceTokens are compared after lower-casing
var noPriceTokens = map[string]bool{
	"":     true,
	"n/a":  true,
	"null": true,
	"none": true,
}

// String returns the trimmed cell text. Absent cells arrive as "" and stay "".
func String(cell string) string {
	return strings.TrimSpace(cell)
}

// Code upper-cases and trims a code. An empty result means the row has no code.
func Code(text string) string {
	return strings.TrimSpace(strings.ToUpper(text))
}

// StripSpaces removes every space character from a code to form its alias
func StripSpaces(code string) string {
	return strings.ReplaceAll(code, " ", "")
}

// Price parses a price cell, truncating toward zero. It returns nil for the
// no-price tokens and for anything that is not a finite number in int64 range.
func Price(text string) *int64 {
	if noPriceTokens[strings.ToLower(text)] {
		return nil
	}

	digits, ok := dropDigitSeparators(strings.TrimSpace(text))
	if !ok {
		return nil
	}

	f, err := strconv.ParseFloat(digits, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}

	f = math.Trunc(f)
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return nil
	}

	n := int64(f)
	return &n
}

// dropDigitSeparators removes underscores written between two digits, as in
// "1_000". Any other underscore makes the text unparseable.
func dropDigitSeparators(text string) (string, bool) {
	if !strings.Contains(text, "_") {
		return text, true
	}
	var b strings.Builder
	for i := 0; i < len(text); i++ {
		if text[i] != '_' {
			b.WriteByte(text[i])
			continue
		}
		if i == 0 || i == len(text)-1 || !isDigit(text[i-1]) || !isDigit(text[i+1]) {
			return "", false
		}
	}
	return b.String(), true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// MarkAs maps disposition text to BOOKED or ARCHIVE. Blank and unrecognized
// values both become ARCHIVE.
func MarkAs(text string) model.MarkAs {
	if m, ok := markAsLabel(text); ok {
		return m
	}
	return model.MarkAsArchive
}

// MarkAsKnown reports whether text is blank or one of the two recognized
// disposition labels. False means MarkAs fell back to ARCHIVE on a value it
// did not understand.
func MarkAsKnown(text string) bool {
	if strings.TrimSpace(text) == "" {
		return true
	}
	_, ok := markAsLabel(text)
	return ok
}

func markAsLabel(text string) (model.MarkAs, bool) {
	switch up := model.MarkAs(strings.ToUpper(strings.TrimSpace(text))); up {
	case model.MarkAsBooked, model.MarkAsArchive:
		return up, true
	}
	return "", false
}

// Qualified reports whether the qualification flag is exactly "Yes"
func Qualified(text string) bool {
	return strings.TrimSpace(text) == "Yes"
}
