// Package segmenter splits a transcript into sentences.
package segmenter

import (
	"strings"

	"github.com/jdkato/prose/v2"
)

// Segmenter turns raw text into ordered, trimmed, non-empty sentences.
type Segmenter interface {
	Segment(text string) ([]string, error)
}

type proseSegmenter struct{}

// New returns a Segmenter backed by prose's punkt sentence tokenizer.
func New() Segmenter {
	return proseSegmenter{}
}

func (proseSegmenter) Segment(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithTokenization(false),
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, s := range doc.Sentences() {
		if t := strings.TrimSpace(s.Text); t != "" {
			out = append(out, t)
		}
	}
	return out, nil
}
