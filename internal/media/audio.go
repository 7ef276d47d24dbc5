package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/soap-notes/pkg/executor"
)

// Load probes path and, for video containers, extracts the audio track to
// the fixed work path. Audio-only files are passed through.
func (l *implLoader) Load(ctx context.Context, path string) (Audio, error) {
	l.logger.Info(ctx, "Probing media: %s", path)

	res, err := l.probe(ctx, path)
	if err != nil {
		return Audio{}, err
	}
	if !res.hasAudio {
		return Audio{}, fmt.Errorf("%s: %w", path, ErrNoAudio)
	}

	audio := Audio{
		SourcePath: path,
		Path:       path,
		Kind:       AudioOnly,
		Duration:   res.duration,
	}
	if !res.hasVideo {
		l.logger.Info(ctx, "No video track, using audio directly (%s)", res.duration)
		return audio, nil
	}

	if err := os.MkdirAll(l.workDir, 0755); err != nil {
		return Audio{}, fmt.Errorf("create work dir: %w", err)
	}
	out := filepath.Join(l.workDir, ExtractedName)

	l.logger.Info(ctx, "Extracting audio track: %s -> %s", path, out)
	if err := ExtractWAV(ctx, l.executor, l.ffmpeg, path, out); err != nil {
		return Audio{}, err
	}

	audio.Path = out
	audio.Kind = VideoWithAudio
	l.logger.Info(ctx, "Audio extracted successfully (%s)", res.duration)
	return audio, nil
}

// ExtractWAV converts the audio of in to 16kHz mono PCM WAV at out.
func ExtractWAV(ctx context.Context, exec executor.Executor, ffmpeg, in, out string) error {
	// -vn drops video; 16kHz mono s16le is what whisper expects
	args := []string{
		"-hide_banner",
		"-i", in,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		out,
	}

	if _, err := exec.Execute(ctx, ffmpeg, args...); err != nil {
		return fmt.Errorf("ffmpeg extract audio: %w", err)
	}
	return nil
}
