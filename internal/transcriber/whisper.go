package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/soap-notes/internal/config"
	"github.com/nguyentantai21042004/soap-notes/internal/logger"
	"github.com/nguyentantai21042004/soap-notes/internal/media"
	"github.com/nguyentantai21042004/soap-notes/pkg/executor"
)

type whisperTranscriber struct {
	cfg      config.WhisperConfig
	ffmpeg   string
	workDir  string
	executor executor.Executor
	logger   logger.Logger
}

// NewWhisper creates a Transcriber that runs the whisper.cpp CLI
func NewWhisper(cfg config.WhisperConfig, ffmpegPath, workDir string, exec executor.Executor, log logger.Logger) Transcriber {
	return &whisperTranscriber{
		cfg:      cfg,
		ffmpeg:   ffmpegPath,
		workDir:  workDir,
		executor: exec,
		logger:   log,
	}
}

// Transcribe runs whisper with plain-text output and returns the text
// with segment lines joined by spaces.
func (w *whisperTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if err := os.MkdirAll(w.workDir, 0755); err != nil {
		return "", fmt.Errorf("create work dir: %w", err)
	}

	// whisper.cpp only reads WAV
	input := audioPath
	if !strings.EqualFold(filepath.Ext(audioPath), ".wav") {
		input = filepath.Join(w.workDir, "transcribe_input.wav")
		w.logger.Info(ctx, "Converting %s to WAV for whisper", audioPath)
		if err := media.ExtractWAV(ctx, w.executor, w.ffmpeg, audioPath, input); err != nil {
			return "", err
		}
		defer w.cleanup(ctx, input)
	}

	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	outputPrefix := filepath.Join(w.workDir, base)

	w.logger.Info(ctx, "Starting transcription with %d threads: %s", w.cfg.Threads, input)

	// -otxt: plain text, one segment per line
	// -l: force language
	// --output-file: prefix; whisper appends .txt
	args := []string{
		"-m", w.cfg.ModelPath,
		"-f", input,
		"-otxt",
		"-l", w.cfg.Language,
		"-t", strconv.Itoa(w.cfg.Threads),
		"--output-file", outputPrefix,
	}
	if w.cfg.Prompt != "" {
		args = append(args, "--prompt", w.cfg.Prompt)
	}

	if _, err := w.executor.Execute(ctx, w.cfg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	txtPath := outputPrefix + ".txt"
	data, err := os.ReadFile(txtPath)
	if err != nil {
		return "", fmt.Errorf("read whisper output: %w", err)
	}
	defer w.cleanup(ctx, txtPath)

	text := joinLines(string(data))
	w.logger.Info(ctx, "Transcription completed: %d characters", len(text))
	return text, nil
}

func (w *whisperTranscriber) cleanup(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil {
		w.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", path, err)
	}
}

func joinLines(s string) string {
	var parts []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}
