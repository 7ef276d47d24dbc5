// Package media inspects an uploaded recording and produces the audio
// waveform handed to the transcriber.
package media

import (
	"context"
	"errors"
	"time"

	"github.com/nguyentantai21042004/soap-notes/internal/logger"
	"github.com/nguyentantai21042004/soap-notes/pkg/executor"
)

// ErrNoAudio is returned for files without any audio stream.
var ErrNoAudio = errors.New("no audio stream")

// ExtractedName is the file written under the work directory when audio is
// pulled out of a video container.
const ExtractedName = "extracted_audio.wav"

// Kind tells how the audio was obtained.
type Kind int

const (
	// AudioOnly files are passed through untouched.
	AudioOnly Kind = iota + 1
	// VideoWithAudio files have their audio track extracted to WAV.
	VideoWithAudio
)

func (k Kind) String() string {
	switch k {
	case AudioOnly:
		return "audio-only"
	case VideoWithAudio:
		return "video-with-audio"
	default:
		return "unknown"
	}
}

// Audio is the result of loading one media file.
type Audio struct {
	SourcePath string
	Path       string
	Kind       Kind
	Duration   time.Duration
}

// Extracted reports whether Path is a temporary artifact rather than the source.
func (a Audio) Extracted() bool {
	return a.Path != a.SourcePath
}

// Loader probes a media file and returns its audio.
type Loader interface {
	Load(ctx context.Context, path string) (Audio, error)
}

type implLoader struct {
	ffmpeg   string
	ffprobe  string
	workDir  string
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Loader that shells out to ffprobe and ffmpeg.
func New(ffmpegPath, ffprobePath, workDir string, exec executor.Executor, log logger.Logger) Loader {
	return &implLoader{
		ffmpeg:   ffmpegPath,
		ffprobe:  ffprobePath,
		workDir:  workDir,
		executor: exec,
		logger:   log,
	}
}
