package utils

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type AIConfig struct {
	APIKey   string
	GenModel string
}

func (c AIConfig) Enabled() bool {
	return c.APIKey != ""
}

func NewAIClient(ctx context.Context, cfg AIConfig) (*genai.Client, error) {
	return genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
}

// GenerateText concatenates the text parts of every candidate.
func GenerateText(ctx context.Context, client *genai.Client, model string, parts ...genai.Part) (string, error) {
	m := client.GenerativeModel(model)
	resp, err := m.GenerateContent(ctx, parts...)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if resp != nil {
		for _, c := range resp.Candidates {
			if c == nil || c.Content == nil {
				continue
			}
			for _, p := range c.Content.Parts {
				if t, ok := p.(genai.Text); ok {
					b.WriteString(string(t))
				}
			}
		}
	}
	return strings.TrimSpace(stripFences(b.String())), nil
}

// Summarize sends a single prompt and returns the model's text, or "" when AI
// is not configured.
func Summarize(ctx context.Context, cfg AIConfig, prompt string) (string, error) {
	if !cfg.Enabled() {
		return "", nil
	}
	client, err := NewAIClient(ctx, cfg)
	if err != nil {
		return "", err
	}
	defer client.Close()
	return GenerateText(ctx, client, cfg.GenModel, genai.Text(prompt))
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```markdown")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return s
}
