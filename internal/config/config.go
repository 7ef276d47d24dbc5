package config

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/soap-notes/internal/store"
)

type Config struct {
	Transcriber TranscriberConfig `yaml:"transcriber"`
	Whisper     WhisperConfig     `yaml:"whisper"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Paths       PathsConfig       `yaml:"paths"`
	Store       StoreConfig       `yaml:"store"`
	Logging     LoggingConfig     `yaml:"logging"`
	Watch       WatchConfig       `yaml:"watch"`
	SOAP        SOAPConfig        `yaml:"soap"`
}

type TranscriberConfig struct {
	Backend string `yaml:"backend"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

type GeminiConfig struct {
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"-"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ProbePath  string `yaml:"probe_path"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Work     string `yaml:"work"`
	Download string `yaml:"download"`
	Notes    string `yaml:"notes"`
}

type StoreConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type WatchConfig struct {
	SettleDelayMS int `yaml:"settle_delay_ms"`
}

// SOAPConfig overrides the classifier keyword sets. Empty lists keep the defaults.
type SOAPConfig struct {
	Subjective []string `yaml:"subjective"`
	Objective  []string `yaml:"objective"`
	Assessment []string `yaml:"assessment"`
	Plan       []string `yaml:"plan"`
}

const (
	BackendWhisper = "whisper"
	BackendGemini  = "gemini"
)

func (c *Config) Validate() error {
	if c.Transcriber.Backend == "" {
		c.Transcriber.Backend = BackendWhisper
	}
	c.Transcriber.Backend = strings.ToLower(c.Transcriber.Backend)

	switch c.Transcriber.Backend {
	case BackendWhisper:
		if c.Whisper.ModelPath == "" {
			return fmt.Errorf("whisper.model_path is required")
		}
		if c.Whisper.BinaryPath == "" {
			return fmt.Errorf("whisper.binary_path is required")
		}
	case BackendGemini:
		if len(c.Gemini.APIKeys) == 0 {
			return fmt.Errorf("gemini backend requires GEMINI_API_KEYS or GEMINI_API_KEY")
		}
	default:
		return fmt.Errorf("transcriber.backend %q is not supported", c.Transcriber.Backend)
	}

	if c.Store.Driver == "" {
		c.Store.Driver = store.DriverXLSX
	}
	c.Store.Driver = strings.ToLower(c.Store.Driver)
	if c.Store.Driver != store.DriverXLSX && c.Store.Driver != store.DriverSQLite {
		return fmt.Errorf("store.driver %q is not supported", c.Store.Driver)
	}
	if c.Store.Path == "" {
		if c.Store.Driver == store.DriverSQLite {
			c.Store.Path = "media_records.db"
		} else {
			c.Store.Path = "media_records.xlsx"
		}
	}

	if c.Whisper.Language == "" {
		c.Whisper.Language = "en"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 8
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.ProbePath == "" {
		c.FFmpeg.ProbePath = "ffprobe"
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Work == "" {
		c.Paths.Work = "data/work"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Watch.SettleDelayMS == 0 {
		c.Watch.SettleDelayMS = 500
	}

	return nil
}
