package record

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/nguyentantai21042004/soap-notes/internal/soap"
)

func TestSummarize(t *testing.T) {
	exact := strings.Repeat("a", SummaryLimit)
	long := strings.Repeat("b", SummaryLimit) + "tail"
	accented := strings.Repeat("é", SummaryLimit+1)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"empty", "", ""},
		{"short", "Patient reports pain.", "Patient reports pain."},
		{"exactly at limit", exact, exact},
		{"over limit", long, strings.Repeat("b", SummaryLimit) + "..."},
		{"counts characters not bytes", accented, strings.Repeat("é", SummaryLimit) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summarize(tt.text); got != tt.want {
				t.Errorf("Summarize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	note := soap.Note{Subjective: "I feel pain.", Objective: "N/A", Assessment: "N/A", Plan: "N/A"}
	got := New("visit.mp4", 42900*time.Millisecond, "  I feel pain.  ", note)

	want := MediaRecord{
		FileName:      "visit.mp4",
		DurationSec:   42,
		GeneratedText: "I feel pain.",
		Summary:       "I feel pain.",
		Subjective:    "I feel pain.",
		Objective:     "N/A",
		Assessment:    "N/A",
		Plan:          "N/A",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("New() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(note, got.Note()); diff != "" {
		t.Errorf("Note() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewSummaryWindowSkipsLeadingWhitespace(t *testing.T) {
	body := "x" + strings.Repeat("y", SummaryLimit)
	got := New("visit.wav", time.Second, " "+body+"\n", soap.Note{})

	if got.GeneratedText != body {
		t.Errorf("GeneratedText = %q, want trimmed transcript", got.GeneratedText)
	}
	want := "x" + strings.Repeat("y", SummaryLimit-1) + "..."
	if got.Summary != want {
		t.Errorf("Summary = %q, want %q", got.Summary, want)
	}
}

func TestRowRoundTrip(t *testing.T) {
	rec := MediaRecord{
		FileName: "a.wav", DurationSec: 7, GeneratedText: "text", Summary: "text",
		Subjective: "s", Objective: "o", Assessment: "a", Plan: "p",
	}
	got, err := FromRow(rec.Row())
	if err != nil {
		t.Fatalf("FromRow() error = %v", err)
	}
	if diff := cmp.Diff(rec, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFromRow(t *testing.T) {
	tests := []struct {
		name    string
		cells   []string
		want    MediaRecord
		wantErr bool
	}{
		{
			name:  "trailing cells missing",
			cells: []string{"a.mp3", "12", ""},
			want:  MediaRecord{FileName: "a.mp3", DurationSec: 12},
		},
		{
			name:  "float duration",
			cells: []string{"a.mp3", "12.0"},
			want:  MediaRecord{FileName: "a.mp3", DurationSec: 12},
		},
		{name: "empty file name", cells: []string{" ", "12"}, wantErr: true},
		{name: "fractional duration", cells: []string{"a.mp3", "12.5"}, wantErr: true},
		{name: "text duration", cells: []string{"a.mp3", "long"}, wantErr: true},
		{name: "too many cells", cells: []string{"a", "1", "", "", "", "", "", "", "extra"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromRow(tt.cells)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromRow() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromRow() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCheckHeader(t *testing.T) {
	if err := CheckHeader(Columns()); err != nil {
		t.Errorf("CheckHeader(Columns()) error = %v", err)
	}

	renamed := Columns()
	renamed[3] = "Abstract"
	if err := CheckHeader(renamed); err == nil {
		t.Error("CheckHeader() should reject a renamed column")
	}
	if err := CheckHeader(Columns()[:7]); err == nil {
		t.Error("CheckHeader() should reject a missing column")
	}
}
