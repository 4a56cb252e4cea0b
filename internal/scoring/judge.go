package scoring

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Prompt carries the inputs the judge grades.
type Prompt struct {
	Question     string
	IdealAnswer  string
	ActualAnswer string
}

// Judge grades an answer and returns the raw textual verdict.
type Judge interface {
	Evaluate(ctx context.Context, prompt Prompt) (string, error)
}

const systemPrompt = "You are an expert evaluator of interview answers."

const userPromptTemplate = `Question: %s
Ideal Answer: %s
Actual Answer: %s

Evaluate the actual answer based on the following criteria:
1. Relevance to the question
2. Accuracy of information
3. Completeness of the response
4. Clarity and articulation

Provide a score out of 10 and a brief explanation for your scoring.

Score (out of 10):
Explanation:`

// UserPrompt renders the grading request sent to the judge.
func UserPrompt(prompt Prompt) string {
	return fmt.Sprintf(userPromptTemplate, prompt.Question, prompt.IdealAnswer, prompt.ActualAnswer)
}

// DefaultTemperature keeps judge replies mostly deterministic.
const DefaultTemperature = 0.2

// OpenAIConfig configures an OpenAI-compatible chat completion endpoint.
type OpenAIConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	HTTPClient  *http.Client
}

// OpenAIJudge grades answers through a chat completion API.
type OpenAIJudge struct {
	client      *openai.Client
	model       string
	temperature float32
}

// NewOpenAIJudge validates cfg and builds a judge.
func NewOpenAIJudge(cfg OpenAIConfig) (*OpenAIJudge, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("scoring: api key is required")
	}
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, errors.New("scoring: model is required")
	}
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	if cfg.HTTPClient != nil {
		config.HTTPClient = cfg.HTTPClient
	}
	return &OpenAIJudge{
		client:      openai.NewClientWithConfig(config),
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}, nil
}

// Evaluate sends the grading prompt and returns the first choice's content.
func (j *OpenAIJudge) Evaluate(ctx context.Context, prompt Prompt) (string, error) {
	resp, err := j.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       j.model,
		Temperature: j.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: UserPrompt(prompt)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("judge completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("judge completion: no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}
