package model

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// MarkAs is the disposition the automation applies to a classified call
type MarkAs string

const (
	MarkAsBooked  MarkAs = "BOOKED"
	MarkAsArchive MarkAs = "ARCHIVE"
)

// JobType is the platform job-type tag. The zero value means "no job type"
// and serializes as JSON null.
type JobType string

const (
	JobTypeNone                JobType = ""
	JobTypePersonalInjury      JobType = "personal_injury"
	JobTypeWorkersCompensation JobType = "workers_compensation"
)

// MarshalJSON writes null for JobTypeNone
func (j JobType) MarshalJSON() ([]byte, error) {
	if j == JobTypeNone {
		return []byte("null"), nil
	}
	return json.Marshal(string(j))
}

// CellValue is a spreadsheet cell carried through without normalization.
// Blank cells serialize as null, canonical integer literals as JSON numbers
// (the way numeric ids come out of a workbook) and everything else as the
// raw string.
type CellValue string

// MarshalJSON implements json.Marshaler
func (c CellValue) MarshalJSON() ([]byte, error) {
	if c == "" {
		return []byte("null"), nil
	}
	if n, err := strconv.ParseInt(string(c), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(c) {
		return []byte(c), nil
	}

	// json.Marshal would escape <, > and &; ids are written as typed
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(string(c)); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Rule is the normalized classification for one call-type code.
// Field order is the serialized order consumed by the automation pipeline.
type Rule struct {
	CallTypeID    CellValue `json:"call_type_id"`
	LawTypeBroad  string    `json:"law_type_broad"`
	LawTypeNarrow string    `json:"law_type_narrow"`
	Qualified     bool      `json:"qualified"`
	Description   string    `json:"description"`
	MarkAs        MarkAs    `json:"mark_as"`
	JobType       JobType   `json:"job_type"`
	Price         *int64    `json:"price"` // nil when the sheet has no usable price
	Rating        string    `json:"rating"`
	Reason        string    `json:"reason"`
}
