package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ppiankov/rulegen/internal/cache"
	"github.com/ppiankov/rulegen/internal/logging"
	"github.com/ppiankov/rulegen/internal/model"
	"github.com/ppiankov/rulegen/internal/render"
	"github.com/ppiankov/rulegen/internal/report"
	"github.com/ppiankov/rulegen/internal/rules"
	"github.com/ppiankov/rulegen/internal/source"
)

// Pipeline runs one full rebuild: read workbook, build table, write
// artifacts, print the summary
type Pipeline struct {
	reader   *source.Reader
	renderer *render.Renderer
	reporter *report.Reporter
	config   *model.Config
	log      *slog.Logger
}

// NewPipeline creates a pipeline printing its summary to out
func NewPipeline(cfg *model.Config, out io.Writer) *Pipeline {
	var rowCache cache.Cache
	if cfg.Cache.Enabled {
		rowCache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}

	return &Pipeline{
		reader:   source.NewReader(rowCache),
		renderer: render.NewRenderer(cfg.Output.ConstName),
		reporter: report.NewReporter(out),
		config:   cfg,
		log:      logging.New("pipeline"),
	}
}

// RunResult contains the outcome of a rebuild
type RunResult struct {
	Build     *rules.Result
	Artifacts *render.Artifacts
}

// Run rebuilds the artifacts from scratch
func (p *Pipeline) Run(ctx context.Context) (*RunResult, error) {
	cfg := p.config

	// 1. Read rows
	rows, err := p.reader.ReadFile(ctx, cfg.Source.Path, cfg.Source.Sheet)
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	p.log.Info("rows read", slog.String("path", cfg.Source.Path), slog.Int("rows", len(rows)))

	// 2. Build table
	built := rules.Build(rows)
	p.logDiagnostics(built.Diagnostics)

	// 3. Write artifacts
	artifacts, err := p.renderer.Write(built.Table.Rules(), cfg.Output.Dir, cfg.Output.JSONFile, cfg.Output.SnippetFile)
	if err != nil {
		return nil, fmt.Errorf("write artifacts: %w", err)
	}
	p.log.Info("artifacts written",
		slog.String("json", artifacts.JSONPath),
		slog.String("snippet", artifacts.SnippetPath),
		slog.Int("entries", built.Table.Len()))

	// 4. Print summary
	p.reporter.Print(built, artifacts)

	return &RunResult{
		Build:     built,
		Artifacts: artifacts,
	}, nil
}

func (p *Pipeline) logDiagnostics(d *rules.Diagnostics) {
	for _, c := range d.SkippedAliases {
		p.log.Debug("alias skipped", slog.String("alias", c.Alias), slog.String("code", c.Code), slog.String("holder", c.Holder))
	}
	for _, c := range d.ShadowedAliases {
		p.log.Debug("alias replaced by code", slog.String("alias", c.Alias), slog.String("code", c.Code))
	}
	if d.SkippedRows > 0 {
		p.log.Debug("rows without code skipped", slog.Int("count", d.SkippedRows))
	}
}
