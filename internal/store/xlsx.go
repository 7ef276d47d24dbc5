package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/nguyentantai21042004/soap-notes/internal/record"
)

// xlsxStore keeps records on the first sheet of a workbook, header in row 1.
type xlsxStore struct {
	path string
}

func (s *xlsxStore) Path() string { return s.path }

func (s *xlsxStore) Load(ctx context.Context) ([]record.MediaRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("stat store: %w", err)
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrCorrupt, s.path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %s has no sheets", ErrCorrupt, s.path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: read rows: %v", ErrCorrupt, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s has no header row", ErrCorrupt, s.path)
	}
	if err := record.CheckHeader(rows[0]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	var out []record.MediaRecord
	for i, cells := range rows[1:] {
		if blank(cells) {
			continue
		}
		rec, err := record.FromRow(cells)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrCorrupt, i+2, err)
		}
		out = append(out, rec)
	}

	if err := checkUnique(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *xlsxStore) Upsert(ctx context.Context, rec record.MediaRecord) (bool, error) {
	if err := checkCellLimits(rec); err != nil {
		return false, err
	}

	rows, err := s.Load(ctx)
	if err != nil {
		return false, err
	}

	rows, replaced := merge(rows, rec)
	if err := s.save(ctx, rows); err != nil {
		return false, err
	}
	return replaced, nil
}

// save rewrites the whole workbook through a temp file in the same directory.
func (s *xlsxStore) save(ctx context.Context, rows []record.MediaRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := make([]interface{}, 0, len(record.Columns()))
	for _, c := range record.Columns() {
		header = append(header, c)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range rows {
		if err := checkCellLimits(r); err != nil {
			return err
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{
			r.FileName, r.DurationSec, r.GeneratedText, r.Summary,
			r.Subjective, r.Objective, r.Assessment, r.Plan,
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".records-*.xlsx")
	if err != nil {
		return fmt.Errorf("create temp store: %w", err)
	}
	defer os.Remove(tmp.Name())
	_ = tmp.Chmod(0644)

	if _, err := f.WriteTo(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("write store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp store: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace store: %w", err)
	}
	return nil
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// checkCellLimits rejects records that excelize would silently truncate.
func checkCellLimits(rec record.MediaRecord) error {
	for i, v := range rec.Row() {
		if n := utf8.RuneCountInString(v); n > excelize.TotalCellChars {
			return fmt.Errorf("%w: %s %q has %d characters, xlsx cells hold %d",
				ErrFieldTooLong, rec.FileName, record.Columns()[i], n, excelize.TotalCellChars)
		}
	}
	return nil
}
