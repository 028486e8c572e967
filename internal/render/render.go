// Package render serializes a rule table into the artifacts consumed by the
// n8n automation: a plain JSON file and a JS snippet declaring a constant.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ppiankov/rulegen/internal/model"
)

// Renderer writes the artifacts
type Renderer struct {
	constName string
	now       func() time.Time
}

// NewRenderer creates a renderer declaring constName in the snippet
func NewRenderer(constName string) *Renderer {
	if constName == "" {
		constName = "RULES"
	}
	return &Renderer{
		constName: constName,
		now:       time.Now,
	}
}

// JSON returns the table as an indented object with sorted keys. Non-ASCII
// text and HTML characters are written unescaped.
func JSON(rules map[string]model.Rule) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rules); err != nil {
		return nil, fmt.Errorf("encode rules: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Snippet wraps payload in a provenance banner and a const declaration
func (r *Renderer) Snippet(payload []byte, entries int) []byte {
	var buf bytes.Buffer
	buf.WriteString("// ========== GENERATED RULES (from Excel via rulegen) ==========\n")
	buf.WriteString("// DO NOT EDIT MANUALLY - regenerate from Excel\n")
	fmt.Fprintf(&buf, "// Generated: %s | Total entries: %d (incl. no-space aliases)\n",
		r.now().Format("2006-01-02 15:04"), entries)
	fmt.Fprintf(&buf, "const %s = ", r.constName)
	buf.Write(payload)
	buf.WriteString(";\n")
	return buf.Bytes()
}

// Artifacts holds the paths that were written
type Artifacts struct {
	JSONPath    string
	SnippetPath string
}

// Write renders rules into dir/jsonName and dir/snippetName, creating dir
func (r *Renderer) Write(rules map[string]model.Rule, dir, jsonName, snippetName string) (*Artifacts, error) {
	payload, err := JSON(rules)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	out := &Artifacts{
		JSONPath:    filepath.Join(dir, jsonName),
		SnippetPath: filepath.Join(dir, snippetName),
	}

	if err := os.WriteFile(out.JSONPath, payload, 0644); err != nil {
		return nil, fmt.Errorf("write %s: %w", out.JSONPath, err)
	}
	if err := os.WriteFile(out.SnippetPath, r.Snippet(payload, len(rules)), 0644); err != nil {
		return nil, fmt.Errorf("write %s: %w", out.SnippetPath, err)
	}

	return out, nil
}
