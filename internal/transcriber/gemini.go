package transcriber

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/soap-notes/internal/logger"
)

const transcribePrompt = `Transcribe this recording of a medical consultation verbatim in its original language.
Return only the transcript as plain text with normal sentence punctuation.
Do not add speaker labels, timestamps, headings or commentary.`

type generateFunc func(ctx context.Context, apiKey, model string, contents []*genai.Content) (*genai.GenerateContentResponse, error)

type geminiTranscriber struct {
	apiKeys    []string
	currentKey int
	model      string
	logger     logger.Logger
	generate   generateFunc
}

// NewGemini creates a Transcriber that sends audio inline to Gemini,
// rotating through apiKeys when one is rate limited.
func NewGemini(apiKeys []string, model string, log logger.Logger) (Transcriber, error) {
	if len(apiKeys) == 0 {
		return nil, ErrNoAPIKeys
	}
	return &geminiTranscriber{
		apiKeys:  apiKeys,
		model:    model,
		logger:   log,
		generate: generateContent,
	}, nil
}

func generateContent(ctx context.Context, apiKey, model string, contents []*genai.Content) (*genai.GenerateContentResponse, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return client.Models.GenerateContent(ctx, model, contents, nil)
}

func (g *geminiTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	data, err := os.ReadFile(audioPath)
	if err != nil {
		return "", fmt.Errorf("read audio: %w", err)
	}

	parts := []*genai.Part{
		genai.NewPartFromText(transcribePrompt),
		genai.NewPartFromBytes(data, audioMIMEType(audioPath)),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	g.logger.Info(ctx, "Sending %d bytes of audio to %s", len(data), g.model)

	var lastErr error
	for range len(g.apiKeys) {
		key := g.apiKeys[g.currentKey]

		result, err := g.generate(ctx, key, g.model, contents)
		if err != nil {
			if rateLimited(err) {
				g.logger.Warn(ctx, "Key %d rate limited, rotating...", g.currentKey+1)
				g.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text strings.Builder
			for _, part := range result.Candidates[0].Content.Parts {
				text.WriteString(part.Text)
			}
			return strings.TrimSpace(text.String()), nil
		}
		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (g *geminiTranscriber) rotateKey() {
	g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
}

func rateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func audioMIMEType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav":
		return "audio/wav"
	case ".mp3":
		return "audio/mp3"
	case ".m4a", ".aac":
		return "audio/aac"
	case ".flac":
		return "audio/flac"
	case ".ogg":
		return "audio/ogg"
	}
	if t := mime.TypeByExtension(ext); strings.HasPrefix(t, "audio/") {
		return t
	}
	return "audio/wav"
}
