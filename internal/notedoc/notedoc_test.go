package notedoc

import (
	"archive/zip"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/soap-notes/internal/record"
)

func TestPath(t *testing.T) {
	tests := []struct {
		dir, file, want string
	}{
		{"notes", "visit.mp4", filepath.Join("notes", "visit.mp4.docx")},
		{"notes", "visit.mp3", filepath.Join("notes", "visit.mp3.docx")},
		{"notes", "uploads/clinic.visit.wav", filepath.Join("notes", "clinic.visit.wav.docx")},
		{"", "noext", "noext.docx"},
	}
	for _, tt := range tests {
		if got := Path(tt.dir, tt.file); got != tt.want {
			t.Errorf("Path(%q, %q) = %q, want %q", tt.dir, tt.file, got, tt.want)
		}
	}
}

func TestRender(t *testing.T) {
	rec := record.MediaRecord{
		FileName:      "visit.mp4",
		DurationSec:   61,
		GeneratedText: "I feel a sharp pain. Recommend rest.",
		Summary:       "I feel a sharp pain. Recommend rest.",
		Subjective:    "I feel a sharp pain.",
		Objective:     "N/A",
		Assessment:    "N/A",
		Plan:          "Recommend rest.",
	}
	out := filepath.Join(t.TempDir(), "nested", "visit.docx")

	if err := Render(rec, out); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	zr, err := zip.OpenReader(out)
	if err != nil {
		t.Fatalf("output is not a docx archive: %v", err)
	}
	defer zr.Close()

	var body string
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		b, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatal(err)
		}
		body = string(b)
	}
	if body == "" {
		t.Fatal("word/document.xml missing")
	}

	for _, want := range []string{"SOAP Note: visit.mp4", "Duration: 61 sec", "Subjective", "I feel a sharp pain.", "Plan", "Recommend rest."} {
		if !strings.Contains(body, want) {
			t.Errorf("document missing %q", want)
		}
	}
}
