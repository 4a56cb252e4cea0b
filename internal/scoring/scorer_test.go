package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

// stubJudge returns a fixed reply and remembers the last prompt.
type stubJudge struct {
	reply  string
	err    error
	prompt Prompt
}

func (s *stubJudge) Evaluate(_ context.Context, prompt Prompt) (string, error) {
	s.prompt = prompt
	return s.reply, s.err
}

func quietLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

// TestScoreWithoutJudge verifies ROUGE-only scoring.
func TestScoreWithoutJudge(t *testing.T) {
	result, err := NewScorer(nil, quietLogger()).Score(context.Background(), "q", "same words", "same words")
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if !approx(result.FinalScore, 1) {
		t.Fatalf("expected final score 1, got %f", result.FinalScore)
	}
	if result.LLMScore != nil || result.LLMEvaluation != "" {
		t.Fatalf("expected no judge fields, got %+v", result)
	}
	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "llm_score") {
		t.Fatalf("expected llm_score to be omitted: %s", data)
	}
}

// TestScoreWithJudge verifies the final score blends ROUGE and the judge.
func TestScoreWithJudge(t *testing.T) {
	judge := &stubJudge{reply: "Score (out of 10): 6/10\nExplanation: partial"}
	result, err := NewScorer(judge, quietLogger()).Score(context.Background(), "Why Go?", "fast simple", "fast simple")
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if judge.prompt.Question != "Why Go?" || judge.prompt.IdealAnswer != "fast simple" {
		t.Fatalf("unexpected prompt: %+v", judge.prompt)
	}
	if result.LLMScore == nil || !approx(*result.LLMScore, 0.6) {
		t.Fatalf("unexpected llm score: %v", result.LLMScore)
	}
	if !approx(result.FinalScore, 0.8) {
		t.Fatalf("expected final score 0.8, got %f", result.FinalScore)
	}
}

// TestScoreFallsBackOnUnparsableReply verifies the default judge score is used.
func TestScoreFallsBackOnUnparsableReply(t *testing.T) {
	judge := &stubJudge{reply: "Great answer!"}
	result, err := NewScorer(judge, quietLogger()).Score(context.Background(), "q", "x", "y")
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if result.LLMScore == nil || *result.LLMScore != DefaultLLMScore {
		t.Fatalf("expected default score, got %v", result.LLMScore)
	}
	if !approx(result.FinalScore, 0.25) {
		t.Fatalf("expected final score 0.25, got %f", result.FinalScore)
	}
}

// TestScoreJudgeError verifies judge failures are returned.
func TestScoreJudgeError(t *testing.T) {
	judge := &stubJudge{err: errors.New("rate limited")}
	if _, err := NewScorer(judge, quietLogger()).Score(context.Background(), "q", "x", "y"); err == nil {
		t.Fatalf("expected error")
	}
}

// TestOpenAIJudgeEvaluate verifies the chat completion request and reply handling.
func TestOpenAIJudgeEvaluate(t *testing.T) {
	var request struct {
		Model       string  `json:"model"`
		Temperature float32 `json:"temperature"`
		Messages    []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			http.NotFound(w, r)
			return
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected authorization header %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"cmpl-1","object":"chat.completion","created":0,"model":"judge","choices":[{"index":0,"message":{"role":"assistant","content":"Score (out of 10): 9/10\nExplanation: clear"},"finish_reason":"stop"}],"usage":{"prompt_tokens":1,"completion_tokens":1,"total_tokens":2}}`)
	}))
	defer server.Close()

	judge, err := NewOpenAIJudge(OpenAIConfig{
		APIKey:      "test-key",
		BaseURL:     server.URL + "/v1/",
		Model:       "judge",
		Temperature: DefaultTemperature,
	})
	if err != nil {
		t.Fatalf("new judge: %v", err)
	}
	reply, err := judge.Evaluate(context.Background(), Prompt{Question: "Q?", IdealAnswer: "I", ActualAnswer: "A"})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !strings.HasPrefix(reply, "Score (out of 10): 9/10") {
		t.Fatalf("unexpected reply %q", reply)
	}
	if request.Model != "judge" || len(request.Messages) != 2 {
		t.Fatalf("unexpected request: %+v", request)
	}
	if request.Messages[0].Role != "system" || !strings.Contains(request.Messages[1].Content, "Question: Q?") {
		t.Fatalf("unexpected messages: %+v", request.Messages)
	}
}

// TestNewOpenAIJudgeValidation verifies required settings.
func TestNewOpenAIJudgeValidation(t *testing.T) {
	if _, err := NewOpenAIJudge(OpenAIConfig{Model: "m"}); err == nil {
		t.Fatalf("expected api key error")
	}
	if _, err := NewOpenAIJudge(OpenAIConfig{APIKey: "k"}); err == nil {
		t.Fatalf("expected model error")
	}
}
