// Package report prints the end-of-run summary for the operator.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/ppiankov/rulegen/internal/model"
	"github.com/ppiankov/rulegen/internal/render"
	"github.com/ppiankov/rulegen/internal/rules"
	"github.com/ppiankov/rulegen/internal/vocab"
)

// maxDuplicatesShown caps the duplicate list in the summary
const maxDuplicatesShown = 10

// Count is one bucket of a distribution
type Count struct {
	Value string
	N     int
}

// Distribution counts table entries (aliases included) by the value key
// extracts, sorted by value
func Distribution(t *rules.Table, key func(model.Rule) string) []Count {
	counts := make(map[string]int)
	for _, k := range t.Keys() {
		r, _ := t.Get(k)
		counts[key(r)]++
	}

	out := make([]Count, 0, len(counts))
	for v, n := range counts {
		out = append(out, Count{Value: v, N: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}

// Reporter writes summaries to an io.Writer
type Reporter struct {
	w io.Writer
}

// NewReporter creates a reporter writing to w
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Print writes the summary of one build. artifacts may be nil when nothing
// was written.
func (p *Reporter) Print(res *rules.Result, artifacts *render.Artifacts) {
	d := res.Diagnostics
	rule := strings.Repeat("=", 60)

	p.printf("\n%s\nGENERATION SUMMARY\n%s\n", rule, rule)
	p.printf("  Excel rows read:       %d\n", d.RowsRead)
	p.printf("  Rules generated:       %d (incl. no-space aliases)\n", res.Table.Len())
	p.printf("  Duplicate codes:       %d %s\n", len(d.Duplicates), formatList(d.Duplicates, maxDuplicatesShown))
	p.printf("  Null-critical (defaulted): %s\n", formatList(d.NullCritical, 0))
	if len(d.SkippedAliases) > 0 {
		p.printf("  Aliases skipped:       %s\n", formatConflicts(d.SkippedAliases))
	}
	if len(d.ShadowedAliases) > 0 {
		p.printf("  Aliases replaced:      %s\n", formatConflicts(d.ShadowedAliases))
	}
	p.printf("\n")

	if artifacts != nil {
		p.printf("  Output JSON:  %s\n", artifacts.JSONPath)
		p.printf("  Output JS:    %s\n\n", artifacts.SnippetPath)
	}

	p.printf("  Mark-as distribution:\n%s\n", distributionTable("Mark as",
		Distribution(res.Table, func(r model.Rule) string { return string(r.MarkAs) })))
	p.printf("  Rating distribution:\n%s\n", distributionTable("Rating",
		Distribution(res.Table, func(r model.Rule) string { return r.Rating })))
	p.printf("\n")

	if d.Unmapped.Empty(vocab.MapperCategories...) {
		p.printf("  No unmapped values - all Excel values cleanly mapped!\n")
	}
	for _, c := range vocab.Categories {
		if values := d.Unmapped.Values(c); len(values) > 0 {
			p.printf("  WARNING - Unmapped %s values: %s\n", c, formatList(values, 0))
		}
	}
	p.printf("\n")
}

func (p *Reporter) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(p.w, format, a...)
}

func distributionTable(title string, counts []Count) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{title, "Entries"})
	for _, c := range counts {
		tw.AppendRow(table.Row{c.Value, c.N})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	return indent(tw.Render(), "    ")
}

// formatList renders values as [a, b, c]; limit > 0 truncates with a count
func formatList(values []string, limit int) string {
	if len(values) == 0 {
		return "[]"
	}
	shown := values
	more := ""
	if limit > 0 && len(values) > limit {
		shown = values[:limit]
		more = fmt.Sprintf(" ... (+%d more)", len(values)-limit)
	}
	return "[" + strings.Join(shown, ", ") + "]" + more
}

func formatConflicts(conflicts []rules.AliasConflict) string {
	parts := make([]string, len(conflicts))
	for i, c := range conflicts {
		parts[i] = fmt.Sprintf("%s (from %q, held by %q)", c.Alias, c.Code, c.Holder)
	}
	return strings.Join(parts, "; ")
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
