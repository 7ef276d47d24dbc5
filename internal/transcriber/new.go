package transcriber

import (
	"errors"
	"fmt"

	"github.com/nguyentantai21042004/soap-notes/internal/config"
	"github.com/nguyentantai21042004/soap-notes/internal/logger"
	"github.com/nguyentantai21042004/soap-notes/pkg/executor"
)

// ErrNoAPIKeys is returned when the Gemini backend has no keys to use
var ErrNoAPIKeys = errors.New("no Gemini API keys configured")

// New creates the Transcriber selected by cfg.Transcriber.Backend
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Transcriber, error) {
	switch cfg.Transcriber.Backend {
	case config.BackendWhisper, "":
		return NewWhisper(cfg.Whisper, cfg.FFmpeg.BinaryPath, cfg.Paths.Work, exec, log), nil
	case config.BackendGemini:
		return NewGemini(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
	default:
		return nil, fmt.Errorf("unknown transcriber backend: %s", cfg.Transcriber.Backend)
	}
}
