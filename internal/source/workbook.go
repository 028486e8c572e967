// Package source reads classification rows out of an xlsx workbook.
package source

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/ppiankov/rulegen/internal/cache"
	"github.com/ppiankov/rulegen/internal/logging"
	"github.com/ppiankov/rulegen/internal/model"
	"github.com/xuri/excelize/v2"
)

var (
	// ErrWorkbookNotFound is returned when the workbook path does not exist
	ErrWorkbookNotFound = errors.New("workbook not found")
	// ErrSheetNotFound is returned when the workbook lacks the requested sheet
	ErrSheetNotFound = errors.New("sheet not found")
)

// Reader loads sheet rows, consulting an optional cache keyed by workbook content
type Reader struct {
	cache cache.Cache
	log   *slog.Logger
}

// NewReader creates a reader. A nil cache disables caching.
func NewReader(c cache.Cache) *Reader {
	return &Reader{
		cache: c,
		log:   logging.New("source"),
	}
}

// ReadFile returns the data rows of sheet in the workbook at path. The header
// row is dropped and every row is fitted to model.RowWidth cells.
func (r *Reader) ReadFile(ctx context.Context, path, sheet string) ([]model.RawRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrWorkbookNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read workbook: %w", err)
	}

	key := cache.RowsKey(data, sheet)
	if cells, ok := r.cached(key); ok {
		r.log.Debug("rows served from cache", slog.String("path", path), slog.Int("rows", len(cells)))
		return toRawRows(cells), nil
	}

	cells, err := ReadCells(bytes.NewReader(data), sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	r.store(key, cells)
	return toRawRows(cells), nil
}

// ReadCells returns the text of every row of sheet after the header
func ReadCells(rd io.Reader, sheet string) ([][]string, error) {
	f, err := excelize.OpenReader(rd)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return nil, fmt.Errorf("look up sheet: %w", err)
	}
	if idx == -1 {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrSheetNotFound, sheet, f.GetSheetList())
	}

	// raw values keep prices and ids free of display formatting
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	if len(rows) == 0 {
		return [][]string{}, nil
	}
	return rows[1:], nil
}

func toRawRows(cells [][]string) []model.RawRow {
	rows := make([]model.RawRow, len(cells))
	for i, c := range cells {
		rows[i] = model.NewRawRow(c)
	}
	return rows
}

func (r *Reader) cached(key string) ([][]string, bool) {
	if r.cache == nil {
		return nil, false
	}

	raw, found := r.cache.Get(key)
	if !found {
		return nil, false
	}

	var cells [][]string
	if err := json.Unmarshal(raw, &cells); err != nil {
		r.log.Warn("discarding unreadable cache entry", slog.String("error", err.Error()))
		_ = r.cache.Delete(key)
		return nil, false
	}
	return cells, true
}

func (r *Reader) store(key string, cells [][]string) {
	if r.cache == nil {
		return
	}

	raw, err := json.Marshal(cells)
	if err == nil {
		err = r.cache.Set(key, raw, 0)
	}
	if err != nil {
		r.log.Warn("caching rows failed", slog.String("error", err.Error()))
	}
}
