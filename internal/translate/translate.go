// Package translate is the translation collaborator around the summarizer
// core. The core hands over a finished summary string and a target-language
// identifier and imposes nothing else; implementations here fulfil that
// contract either through an OpenAI-compatible chat endpoint (a local
// Ollama works) or as a no-op for offline runs.
package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Translator renders a summary into the target language. targetLang is a
// free-form identifier such as "ta", "hi" or "Tamil".
type Translator interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

// Client is the minimal chat surface needed to translate. Any
// OpenAI-compatible backend can be adapted to it.
type Client interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIProvider adapts *openai.Client to Client.
type OpenAIProvider struct {
	Inner *openai.Client
}

func (p *OpenAIProvider) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return p.Inner.CreateChatCompletion(ctx, request)
}

const systemMessage = "You are a translator for government communications. Translate the user's text into the requested language. Preserve names, dates, numbers and the meaning of every obligation. Output only the translation, no narration."

// LLMTranslator translates through a chat model.
type LLMTranslator struct {
	Client Client
	Model  string
}

// Translate sends text to the model and returns its output verbatim.
// Empty input translates to itself without a call.
func (t *LLMTranslator) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if t.Client == nil || t.Model == "" {
		return "", errors.New("translator not configured")
	}
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	if strings.TrimSpace(targetLang) == "" {
		return "", errors.New("no target language")
	}

	user := fmt.Sprintf("Target language: %s\n\n%s", targetLang, text)
	resp, err := t.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: t.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemMessage},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0.1,
		N:           1,
	})
	if err != nil {
		return "", fmt.Errorf("translate call: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Noop passes text through unchanged. Used when no endpoint is configured.
type Noop struct{}

func (Noop) Translate(_ context.Context, text, _ string) (string, error) {
	return text, nil
}
