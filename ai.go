package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// ErrAIUnavailable indicates the AI service is not reachable or returned an error.
var ErrAIUnavailable = errors.New("AI service unavailable")

// errAIDisabled is returned when explain runs with ai.enabled=false.
var errAIDisabled = errors.New("AI is disabled in config (ai.enabled=false)")

// explainer asks an OpenAI-compatible model to summarize a puzzle.
type explainer struct {
	client openai.Client
	model  string
	log    *logger
}

func newExplainer(cfg appConfig, log *logger) (*explainer, error) {
	if !cfg.AI.Enabled {
		return nil, errAIDisabled
	}

	apiKey := strings.TrimSpace(cfg.AI.APIKey)
	if apiKey == "" {
		apiKey = strings.TrimSpace(os.Getenv(envOpenAIKey))
	}
	if apiKey == "" {
		return nil, errors.New("missing API key (set ai.api_key in config or " + envOpenAIKey + " env)")
	}

	modelName := strings.TrimSpace(cfg.AI.Model)
	if modelName == "" {
		modelName = defaultAIModel
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if baseURL := strings.TrimSpace(cfg.AI.BaseURL); baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
		log.infof("AI using custom endpoint: %s", baseURL)
	}

	return &explainer{client: openai.NewClient(opts...), model: modelName, log: log}, nil
}

const explainPrompt = `You summarize programming puzzles.

Given a puzzle description in Markdown, reply in plain text with:
1. One paragraph describing the task.
2. The exact quantity the answer asks for.
3. Any edge cases the description calls out.

Do not solve the puzzle and do not write code.`

// Explain returns the model's summary of a puzzle description.
func (e *explainer) Explain(ctx context.Context, readme string) (string, error) {
	if strings.TrimSpace(readme) == "" {
		return "", errors.New("empty puzzle description")
	}

	e.log.infof("asking %s for a summary...", e.model)
	resp, err := e.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(e.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(explainPrompt),
			openai.UserMessage(readme),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAIUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices in response")
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", errors.New("no content in response")
	}
	return content, nil
}
