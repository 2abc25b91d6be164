// internal/services/ai_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/eventide-app/eventide-backend/internal/config"
)

// ErrAINotConfigured is returned when no text-generation API key is set.
var ErrAINotConfigured = errors.New("ai: text generation is not configured")

// DescriptionService generates event descriptions from keywords and details.
// It is a UI convenience; nothing in the data layer depends on it.
type DescriptionService struct {
	client *openai.Client
	model  string
}

func NewDescriptionService(cfg *config.Config) *DescriptionService {
	if cfg.AI.APIKey == "" {
		return &DescriptionService{}
	}

	clientConfig := openai.DefaultConfig(cfg.AI.APIKey)
	if cfg.AI.BaseURL != "" {
		clientConfig.BaseURL = cfg.AI.BaseURL
	}
	return &DescriptionService{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.AI.Model,
	}
}

func (s *DescriptionService) Configured() bool {
	return s.client != nil
}

// GenerateEventDescription takes free-text keywords and details and returns
// a description suitable for an event listing.
func (s *DescriptionService) GenerateEventDescription(ctx context.Context, keywords, details string) (string, error) {
	if s.client == nil {
		return "", ErrAINotConfigured
	}

	prompt := fmt.Sprintf(`You are an AI assistant designed to generate engaging event descriptions.

Based on the following keywords and details, create a compelling event description:

Keywords: %s
Details: %s

Description:`, keywords, details)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate description: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("ai: empty completion response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
