package summary

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"plume.ink/plume-blog-server/app/utils/logger"
	"plume.ink/plume-blog-server/config/environment_variables"
)

const (
	excerptModel     = openai.GPT4oMini
	excerptMaxTokens = 120
	excerptPrompt    = "Summarize the following blog article in at most two sentences, in the article's own language. Return only the summary."

	// fallbackExcerptRunes caps the truncation excerpt when no model is
	// configured.
	fallbackExcerptRunes = 200
)

// SummaryService produces article excerpts. When no API key is configured it
// degrades to plain truncation, so authoring never depends on an upstream.
type SummaryService struct {
	client *openai.Client
}

func NewSummaryService() *SummaryService {
	apiKey := environment_variables.EnvironmentVariables.OPENAI_API_KEY
	if apiKey == "" {
		return &SummaryService{}
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL := environment_variables.EnvironmentVariables.OPENAI_BASE_URL; baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &SummaryService{
		client: openai.NewClientWithConfig(cfg),
	}
}

func (s *SummaryService) Enabled() bool {
	return s.client != nil
}

// Excerpt returns a short summary for the article body. Model failures fall
// back to truncation; the caller always gets a usable excerpt.
func (s *SummaryService) Excerpt(ctx context.Context, body string) string {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return ""
	}
	if !s.Enabled() {
		return truncate(trimmed)
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     excerptModel,
		MaxTokens: excerptMaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: excerptPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: trimmed,
			},
		},
	})
	if err != nil {
		logger.GetLogger().Errorf("excerpt generation failed, falling back to truncation: %v", err)
		return truncate(trimmed)
	}
	if len(resp.Choices) == 0 {
		return truncate(trimmed)
	}
	generated := strings.TrimSpace(resp.Choices[0].Message.Content)
	if generated == "" {
		return truncate(trimmed)
	}
	return generated
}

func truncate(body string) string {
	runes := []rune(body)
	if len(runes) <= fallbackExcerptRunes {
		return body
	}
	return fmt.Sprintf("%s...", string(runes[:fallbackExcerptRunes]))
}
