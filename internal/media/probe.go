package media

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

type probeOutput struct {
	Streams []struct {
		CodecType   string `json:"codec_type"`
		Duration    string `json:"duration"`
		Disposition struct {
			AttachedPic int `json:"attached_pic"`
		} `json:"disposition"`
	} `json:"streams"`
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

type probeResult struct {
	hasVideo bool
	hasAudio bool
	duration time.Duration
}

// probe asks ffprobe for stream types and duration.
func (l *implLoader) probe(ctx context.Context, path string) (probeResult, error) {
	args := []string{
		"-v", "error",
		"-show_entries", "format=duration:stream=codec_type,duration:stream_disposition=attached_pic",
		"-of", "json",
		path,
	}

	out, err := l.executor.Execute(ctx, l.ffprobe, args...)
	if err != nil {
		return probeResult{}, fmt.Errorf("ffprobe: %w", err)
	}
	return parseProbe(out)
}

func parseProbe(out string) (probeResult, error) {
	var p probeOutput
	if err := json.Unmarshal([]byte(out), &p); err != nil {
		return probeResult{}, fmt.Errorf("parse ffprobe output: %w", err)
	}

	var res probeResult
	var longest time.Duration
	for _, s := range p.Streams {
		switch s.CodecType {
		case "video":
			// Cover art in audio files shows up as a video stream.
			if s.Disposition.AttachedPic == 0 {
				res.hasVideo = true
			}
		case "audio":
			res.hasAudio = true
		}
		if d, ok := parseSeconds(s.Duration); ok && d > longest {
			longest = d
		}
	}

	if d, ok := parseSeconds(p.Format.Duration); ok {
		res.duration = d
	} else {
		res.duration = longest
	}
	return res, nil
}

func parseSeconds(s string) (time.Duration, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "N/A" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0, false
	}
	return time.Duration(math.Round(f * float64(time.Second))), true
}
