// Package notedoc renders a Media Record as a Word document.
package notedoc

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/soap-notes/internal/record"
)

const (
	fontName = "Times New Roman"
	fontSize = 12
)

// Path returns where the note for fileName is written inside dir. The media
// extension is kept so visit.mp4 and visit.mp3 get separate notes.
func Path(dir, fileName string) string {
	return filepath.Join(dir, filepath.Base(fileName)+".docx")
}

// Render writes rec as a SOAP note to outputPath.
func Render(rec record.MediaRecord, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), "SOAP Note: "+rec.FileName, true, 16)
	addStyledRun(doc.AddParagraph(""), fmt.Sprintf("Duration: %d sec", rec.DurationSec), false, fontSize)

	for _, s := range sections(rec) {
		addStyledRun(doc.AddParagraph(""), s.title, true, 14)
		addStyledRun(doc.AddParagraph(""), s.body, false, fontSize)
	}

	addStyledRun(doc.AddParagraph(""), record.ColGeneratedText, true, 14)
	text := rec.GeneratedText
	if text == "" {
		text = "(empty transcript)"
	}
	addStyledRun(doc.AddParagraph(""), text, false, fontSize)

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("create notes dir: %w", err)
	}
	return doc.SaveTo(outputPath)
}

type section struct {
	title string
	body  string
}

func sections(rec record.MediaRecord) []section {
	return []section{
		{record.ColSubjective, rec.Subjective},
		{record.ColObjective, rec.Objective},
		{record.ColAssessment, rec.Assessment},
		{record.ColPlan, rec.Plan},
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
