package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/soap-notes/internal/record"
)

// Process runs the pipeline for mediaPath and discards the record
func (p *implProcessor) Process(ctx context.Context, mediaPath string) error {
	_, err := p.Run(ctx, mediaPath)
	return err
}

// Run loads, transcribes, segments and classifies mediaPath, then upserts
// the resulting record. Nothing is stored if any step before the upsert fails.
func (p *implProcessor) Run(ctx context.Context, mediaPath string) (record.MediaRecord, error) {
	startTime := time.Now()
	fileName := filepath.Base(mediaPath)

	p.logger.Info(ctx, "Starting SOAP note generation: %s", mediaPath)

	// Step 1: Load audio
	audio, err := p.deps.Loader.Load(ctx, mediaPath)
	if err != nil {
		return record.MediaRecord{}, fmt.Errorf("load media: %w", err)
	}
	p.logger.Info(ctx, "Audio ready (%s): %s", audio.Kind, audio.Path)

	// Step 2: Transcribe
	transcript, err := p.deps.Transcriber.Transcribe(ctx, audio.Path)
	if err != nil {
		return record.MediaRecord{}, fmt.Errorf("transcribe: %w", err)
	}
	p.logger.Debug(ctx, "Generated text: %s", transcript)

	// Step 3: Split into sentences
	sentences, err := p.deps.Segmenter.Segment(transcript)
	if err != nil {
		return record.MediaRecord{}, fmt.Errorf("segment: %w", err)
	}
	p.logger.Info(ctx, "Transcript has %d sentences", len(sentences))

	// Step 4: Classify into SOAP sections
	note := p.deps.Classifier.Classify(sentences)
	p.logger.Info(ctx, "Subjective: %s", note.Subjective)
	p.logger.Info(ctx, "Objective: %s", note.Objective)
	p.logger.Info(ctx, "Assessment: %s", note.Assessment)
	p.logger.Info(ctx, "Plan: %s", note.Plan)

	// Step 5: Persist
	rec := record.New(fileName, audio.Duration, transcript, note)
	replaced, err := p.deps.Store.Upsert(ctx, rec)
	if err != nil {
		return record.MediaRecord{}, fmt.Errorf("save record: %w", err)
	}
	if replaced {
		p.logger.Info(ctx, "Existing record for %s updated in %s", fileName, p.deps.Store.Path())
	} else {
		p.logger.Info(ctx, "New record for %s added to %s", fileName, p.deps.Store.Path())
	}

	// Step 6: Render the note document (optional)
	if p.paths.Notes != "" {
		if err := p.renderNote(ctx, rec); err != nil {
			p.logger.Warn(ctx, "Failed to render note document: %v", err)
		}
	}

	// Step 7: Hand the updated store to the user
	if p.paths.Download != "" {
		if err := p.download(ctx); err != nil {
			return rec, fmt.Errorf("download store: %w", err)
		}
	}

	p.logger.Info(ctx, "Processing completed in %s", time.Since(startTime))
	return rec, nil
}
