package transcriber

import "context"

// Transcriber converts an audio file into a single transcript string
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}
