package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ppiankov/rulegen/internal/model"
	"github.com/ppiankov/rulegen/internal/source"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, path string, rows [][]interface{}) {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := "General Settings"
	if _, err := f.NewSheet(sheet); err != nil {
		t.Fatal(err)
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		row := r
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
}

func testConfig(t *testing.T) *model.Config {
	t.Helper()
	dir := t.TempDir()

	cfg := model.DefaultConfig()
	cfg.Source.Path = filepath.Join(dir, "signal.xlsx")
	cfg.Output.Dir = filepath.Join(dir, "rules")
	cfg.Cache.Dir = filepath.Join(dir, "cache")

	writeWorkbook(t, cfg.Source.Path, [][]interface{}{
		{"Code", "Call Type ID", "Broad", "Narrow", "Qualified", "Description", "Mark As", "Job Type", "Price", "First Rating", "Second Rating"},
		{"  c43 rs ", 714, "Personal Injury", "Premises", "Yes", "Slip at store", "Booked", "Slip and Fall", "450.9", "Very Satisfied", "High Value"},
		{"NEC", 590, "Other", "", "No", "", "None"},
		{"wc-1", "", "Workers Comp", "", "Yes", "", "Archive", "Workers Compensation", "n/a", "Somewhat Satisfied", "N/A"},
	})
	return cfg
}

func TestPipeline_Run(t *testing.T) {
	cfg := testConfig(t)

	var out bytes.Buffer
	res, err := NewPipeline(cfg, &out).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	payload, err := os.ReadFile(res.Artifacts.JSONPath)
	if err != nil {
		t.Fatal(err)
	}

	var table map[string]map[string]interface{}
	if err := json.Unmarshal(payload, &table); err != nil {
		t.Fatalf("rules.json is not valid JSON: %v", err)
	}

	for _, key := range []string{"C43 RS", "C43RS", "NEC", "WC-1"} {
		if _, ok := table[key]; !ok {
			t.Errorf("Expected key %q in rules.json", key)
		}
	}
	if len(table) != 4 {
		t.Errorf("Expected 4 entries, got %d", len(table))
	}

	c43 := table["C43RS"]
	if c43["mark_as"] != "BOOKED" || c43["job_type"] != "personal_injury" || c43["price"] != float64(450) {
		t.Errorf("Unexpected alias entry: %v", c43)
	}
	if c43["call_type_id"] != float64(714) {
		t.Errorf("Expected numeric call_type_id, got %v", c43["call_type_id"])
	}

	wc := table["WC-1"]
	if wc["call_type_id"] != nil || wc["price"] != nil || wc["reason"] != "" {
		t.Errorf("Unexpected WC-1 entry: %v", wc)
	}

	if !strings.Contains(out.String(), "Null-critical (defaulted): [NEC]") {
		t.Errorf("Expected summary on output:\n%s", out.String())
	}

	if _, err := os.Stat(filepath.Join(cfg.Output.Dir, "rules_n8n_snippet.js")); err != nil {
		t.Errorf("Expected snippet to be written: %v", err)
	}
}

func TestPipeline_RunTwiceIsByteIdentical(t *testing.T) {
	cfg := testConfig(t)

	first, err := NewPipeline(cfg, &bytes.Buffer{}).Run(context.Background())
	if err != nil {
		t.Fatalf("first Run failed: %v", err)
	}
	a, err := os.ReadFile(first.Artifacts.JSONPath)
	if err != nil {
		t.Fatal(err)
	}

	// second run goes through the row cache
	second, err := NewPipeline(cfg, &bytes.Buffer{}).Run(context.Background())
	if err != nil {
		t.Fatalf("second Run failed: %v", err)
	}
	b, err := os.ReadFile(second.Artifacts.JSONPath)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(a, b) {
		t.Errorf("rules.json differs between runs:\n%s\n---\n%s", a, b)
	}
}

func TestPipeline_MissingWorkbook(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Source.Path = filepath.Join(t.TempDir(), "missing.xlsx")
	cfg.Output.Dir = filepath.Join(t.TempDir(), "rules")
	cfg.Cache.Enabled = false

	_, err := NewPipeline(cfg, &bytes.Buffer{}).Run(context.Background())
	if !errors.Is(err, source.ErrWorkbookNotFound) {
		t.Fatalf("Expected ErrWorkbookNotFound, got %v", err)
	}
	if _, statErr := os.Stat(cfg.Output.Dir); !os.IsNotExist(statErr) {
		t.Error("Expected no output to be written when the workbook is missing")
	}
}
