// Package record defines the Media Record row persisted by the record store.
package record

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nguyentantai21042004/soap-notes/internal/soap"
)

// Column headers, in storage order.
const (
	ColFileName      = "File Name"
	ColDuration      = "Duration (sec)"
	ColGeneratedText = "Generated Text"
	ColSummary       = "Summary"
	ColSubjective    = "Subjective"
	ColObjective     = "Objective"
	ColAssessment    = "Assessment"
	ColPlan          = "Plan"
)

// SummaryLimit is the number of characters kept in Summary.
const SummaryLimit = 150

const ellipsis = "..."

// Columns returns the header row.
func Columns() []string {
	return []string{
		ColFileName, ColDuration, ColGeneratedText, ColSummary,
		ColSubjective, ColObjective, ColAssessment, ColPlan,
	}
}

// MediaRecord is one processed media file.
type MediaRecord struct {
	FileName      string
	DurationSec   int
	GeneratedText string
	Summary       string
	Subjective    string
	Objective     string
	Assessment    string
	Plan          string
}

// New assembles a record from the pipeline outputs. Duration is truncated
// to whole seconds.
func New(fileName string, duration time.Duration, transcript string, note soap.Note) MediaRecord {
	text := strings.TrimSpace(transcript)
	return MediaRecord{
		FileName:      fileName,
		DurationSec:   int(duration / time.Second),
		GeneratedText: text,
		Summary:       Summarize(text),
		Subjective:    note.Subjective,
		Objective:     note.Objective,
		Assessment:    note.Assessment,
		Plan:          note.Plan,
	}
}

// Summarize keeps the first SummaryLimit characters and appends "..." when
// text is longer; shorter text is returned unchanged.
func Summarize(text string) string {
	r := []rune(text)
	if len(r) <= SummaryLimit {
		return text
	}
	return string(r[:SummaryLimit]) + ellipsis
}

// Note returns the SOAP sections of r.
func (r MediaRecord) Note() soap.Note {
	return soap.Note{
		Subjective: r.Subjective,
		Objective:  r.Objective,
		Assessment: r.Assessment,
		Plan:       r.Plan,
	}
}

// Row returns the cell values in column order.
func (r MediaRecord) Row() []string {
	return []string{
		r.FileName, strconv.Itoa(r.DurationSec), r.GeneratedText, r.Summary,
		r.Subjective, r.Objective, r.Assessment, r.Plan,
	}
}

// FromRow parses a row in column order. Missing trailing cells are empty.
func FromRow(cells []string) (MediaRecord, error) {
	cols := Columns()
	if len(cells) > len(cols) {
		return MediaRecord{}, fmt.Errorf("row has %d cells, want at most %d", len(cells), len(cols))
	}
	padded := make([]string, len(cols))
	copy(padded, cells)

	if strings.TrimSpace(padded[0]) == "" {
		return MediaRecord{}, fmt.Errorf("empty %q", ColFileName)
	}
	dur, err := parseDuration(padded[1])
	if err != nil {
		return MediaRecord{}, fmt.Errorf("%q: %w", ColDuration, err)
	}

	return MediaRecord{
		FileName:      padded[0],
		DurationSec:   dur,
		GeneratedText: padded[2],
		Summary:       padded[3],
		Subjective:    padded[4],
		Objective:     padded[5],
		Assessment:    padded[6],
		Plan:          padded[7],
	}, nil
}

// parseDuration accepts integers and integral floats ("42", "42.0").
func parseDuration(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	return int(f), nil
}

// CheckHeader reports whether header matches Columns exactly.
func CheckHeader(header []string) error {
	cols := Columns()
	if len(header) != len(cols) {
		return fmt.Errorf("header has %d columns, want %d", len(header), len(cols))
	}
	for i, c := range cols {
		if strings.TrimSpace(header[i]) != c {
			return fmt.Errorf("column %d is %q, want %q", i+1, header[i], c)
		}
	}
	return nil
}
