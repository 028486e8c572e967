package render

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/ppiankov/rulegen/internal/model"
)

func sampleRules() map[string]model.Rule {
	price := int64(450)
	booked := model.Rule{
		CallTypeID:    "714",
		LawTypeBroad:  "Personal Injury",
		LawTypeNarrow: "Slip & Fall <premises>",
		Qualified:     true,
		Description:   "Caller slipped in a café",
		MarkAs:        model.MarkAsBooked,
		JobType:       model.JobTypePersonalInjury,
		Price:         &price,
		Rating:        "Very satisfied",
		Reason:        "",
	}
	return map[string]model.Rule{
		"PI AUTO": booked,
		"PIAUTO":  booked,
		"NEC": {
			MarkAs: model.MarkAsArchive,
			Rating: "Somewhat dissatisfied",
			Reason: "It is for a service the business does not provide",
		},
	}
}

func TestJSON_Format(t *testing.T) {
	got, err := JSON(map[string]model.Rule{
		"NEC": {
			CallTypeID: "590",
			MarkAs:     model.MarkAsArchive,
			Rating:     "Somewhat dissatisfied",
		},
	})
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	want := `{
  "NEC": {
    "call_type_id": 590,
    "law_type_broad": "",
    "law_type_narrow": "",
    "qualified": false,
    "description": "",
    "mark_as": "ARCHIVE",
    "job_type": null,
    "price": null,
    "rating": "Somewhat dissatisfied",
    "reason": ""
  }
}`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("JSON mismatch (-want +got):\n%s", diff)
	}
}

func TestJSON_NoEscaping(t *testing.T) {
	got, err := JSON(sampleRules())
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	for _, s := range []string{`"Slip & Fall <premises>"`, `"Caller slipped in a café"`, `"job_type": "personal_injury"`, `"price": 450`} {
		if !bytes.Contains(got, []byte(s)) {
			t.Errorf("Expected %s in output:\n%s", s, got)
		}
	}
}

func TestJSON_CallTypeIDForms(t *testing.T) {
	tests := []struct {
		id   model.CellValue
		want string
	}{
		{"", `"call_type_id": null`},
		{"590", `"call_type_id": 590`},
		{"-4", `"call_type_id": -4`},
		{"007", `"call_type_id": "007"`},
		{"+5", `"call_type_id": "+5"`},
		{"A-12", `"call_type_id": "A-12"`},
		{"<x>", `"call_type_id": "<x>"`},
	}

	for _, tt := range tests {
		got, err := JSON(map[string]model.Rule{"K": {CallTypeID: tt.id}})
		if err != nil {
			t.Fatalf("JSON failed: %v", err)
		}
		if !strings.Contains(string(got), tt.want) {
			t.Errorf("CallTypeID %q: expected %s in\n%s", tt.id, tt.want, got)
		}
	}
}

func TestJSON_Deterministic(t *testing.T) {
	first, err := JSON(sampleRules())
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := JSON(sampleRules())
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("Output differs between runs:\n%s\n---\n%s", first, again)
		}
	}
}

func TestSnippet(t *testing.T) {
	r := NewRenderer("")
	r.now = func() time.Time { return time.Date(2026, 3, 9, 14, 5, 0, 0, time.UTC) }

	got := string(r.Snippet([]byte(`{}`), 0))
	want := "// ========== GENERATED RULES (from Excel via rulegen) ==========\n" +
		"// DO NOT EDIT MANUALLY - regenerate from Excel\n" +
		"// Generated: 2026-03-09 14:05 | Total entries: 0 (incl. no-space aliases)\n" +
		"const RULES = {};\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Snippet mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_Write(t *testing.T) {
	dir := t.TempDir() + "/rules"
	r := NewRenderer("LSA_RULES")

	out, err := r.Write(sampleRules(), dir, "rules.json", "rules_n8n_snippet.js")
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	payload, err := os.ReadFile(out.JSONPath)
	if err != nil {
		t.Fatal(err)
	}
	snippet, err := os.ReadFile(out.SnippetPath)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(string(snippet), "Total entries: 3 (incl. no-space aliases)") {
		t.Errorf("Expected entry count in banner:\n%s", snippet)
	}

	// the snippet embeds the JSON file byte for byte
	_, body, ok := strings.Cut(string(snippet), "const LSA_RULES = ")
	if !ok {
		t.Fatalf("Expected const declaration in snippet:\n%s", snippet)
	}
	if diff := cmp.Diff(string(payload)+";\n", body); diff != "" {
		t.Errorf("Snippet payload differs from JSON (-json +snippet):\n%s", diff)
	}
}
