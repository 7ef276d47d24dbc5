package media

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/nguyentantai21042004/soap-notes/internal/logger"
)

type call struct {
	name string
	args []string
}

type fakeExecutor struct {
	probeOut string
	probeErr error
	ffmpeg   error
	calls    []call
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, call{name: name, args: args})
	switch name {
	case "ffprobe":
		return f.probeOut, f.probeErr
	case "ffmpeg":
		return "", f.ffmpeg
	}
	return "", errors.New("unexpected command " + name)
}

func testLogger() logger.Logger {
	return logger.NewWithWriter("debug", "text", io.Discard)
}

const videoProbe = `{
  "streams": [
    {"codec_type": "video", "disposition": {"attached_pic": 0}},
    {"codec_type": "audio", "duration": "61.2", "disposition": {"attached_pic": 0}}
  ],
  "format": {"duration": "61.532"}
}`

const audioProbe = `{
  "streams": [
    {"codec_type": "audio", "disposition": {"attached_pic": 0}},
    {"codec_type": "video", "disposition": {"attached_pic": 1}}
  ],
  "format": {"duration": "12.9"}
}`

func TestLoadVideoExtractsAudio(t *testing.T) {
	work := t.TempDir()
	exec := &fakeExecutor{probeOut: videoProbe}
	l := New("ffmpeg", "ffprobe", work, exec, testLogger())

	got, err := l.Load(context.Background(), "visit.mp4")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got.Kind != VideoWithAudio {
		t.Errorf("Kind = %v, want %v", got.Kind, VideoWithAudio)
	}
	if want := filepath.Join(work, ExtractedName); got.Path != want {
		t.Errorf("Path = %v, want %v", got.Path, want)
	}
	if !got.Extracted() {
		t.Error("Extracted() = false for a video source")
	}
	if got.Duration != 61532*time.Millisecond {
		t.Errorf("Duration = %v", got.Duration)
	}
	if len(exec.calls) != 2 || exec.calls[1].name != "ffmpeg" {
		t.Fatalf("calls = %+v, want ffprobe then ffmpeg", exec.calls)
	}
}

func TestLoadAudioPassesThrough(t *testing.T) {
	exec := &fakeExecutor{probeOut: audioProbe}
	l := New("ffmpeg", "ffprobe", t.TempDir(), exec, testLogger())

	got, err := l.Load(context.Background(), "visit.mp3")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Kind != AudioOnly {
		t.Errorf("Kind = %v, want %v", got.Kind, AudioOnly)
	}
	if got.Path != "visit.mp3" || got.Extracted() {
		t.Errorf("Path = %v, want pass-through", got.Path)
	}
	if len(exec.calls) != 1 {
		t.Errorf("calls = %+v, want only ffprobe", exec.calls)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name   string
		exec   *fakeExecutor
		target error
	}{
		{
			name:   "no audio stream",
			exec:   &fakeExecutor{probeOut: `{"streams":[{"codec_type":"video"}],"format":{"duration":"3"}}`},
			target: ErrNoAudio,
		},
		{
			name: "probe failure",
			exec: &fakeExecutor{probeErr: errors.New("invalid data found")},
		},
		{
			name: "extraction failure",
			exec: &fakeExecutor{probeOut: videoProbe, ffmpeg: errors.New("exit status 1")},
		},
		{
			name: "garbage probe output",
			exec: &fakeExecutor{probeOut: "not json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New("ffmpeg", "ffprobe", t.TempDir(), tt.exec, testLogger())
			_, err := l.Load(context.Background(), "in.bin")
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("Load() error = %v, want %v", err, tt.target)
			}
		})
	}
}

func TestParseProbeDurationFallback(t *testing.T) {
	res, err := parseProbe(`{"streams":[{"codec_type":"audio","duration":"4.5"},{"codec_type":"audio","duration":"9.25"}],"format":{"duration":"N/A"}}`)
	if err != nil {
		t.Fatalf("parseProbe() error = %v", err)
	}
	if res.duration != 9250*time.Millisecond {
		t.Errorf("duration = %v, want 9.25s", res.duration)
	}
	if res.hasVideo || !res.hasAudio {
		t.Errorf("res = %+v", res)
	}
}

func TestKindString(t *testing.T) {
	if AudioOnly.String() != "audio-only" || VideoWithAudio.String() != "video-with-audio" || Kind(0).String() != "unknown" {
		t.Error("unexpected Kind strings")
	}
}
