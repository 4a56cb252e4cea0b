package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"qahistory/internal/scoring"
)

type appendPayload struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Evaluation any    `json:"evaluation"`
}

type evaluatePayload struct {
	Question    string `json:"question"`
	IdealAnswer string `json:"ideal_answer"`
	Answer      string `json:"answer"`
}

// EvaluateResult mirrors the POST /evaluate response body.
type EvaluateResult struct {
	Text       string             `json:"text"`
	EntryID    string             `json:"entry_id"`
	Evaluation scoring.Evaluation `json:"evaluation"`
}

// HTTPAppend sends a POST /history request and returns the entry fragment.
func HTTPAppend(t testing.TB, baseURL, question, answer string, evaluation any) string {
	t.Helper()
	data, err := json.Marshal(appendPayload{Question: question, Answer: answer, Evaluation: evaluation})
	if err != nil {
		t.Fatalf("marshal append request: %v", err)
	}
	return string(doRequest(t, http.MethodPost, baseURL+"/history", data))
}

// HTTPEvaluate sends a POST /evaluate request.
func HTTPEvaluate(t testing.TB, baseURL, question, ideal, answer string) EvaluateResult {
	t.Helper()
	var resp EvaluateResult
	data, err := json.Marshal(evaluatePayload{Question: question, IdealAnswer: ideal, Answer: answer})
	if err != nil {
		t.Fatalf("marshal evaluate request: %v", err)
	}
	body := doRequest(t, http.MethodPost, baseURL+"/evaluate", data)
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode evaluate response: %v", err)
	}
	return resp
}

// HTTPGetHistory sends a GET /history request and returns the container fragment.
func HTTPGetHistory(t testing.TB, baseURL string) string {
	t.Helper()
	return string(doRequest(t, http.MethodGet, baseURL+"/history", nil))
}

// doRequest executes an HTTP request with a JSON payload and returns the body.
func doRequest(t testing.TB, method, url string, payload []byte) []byte {
	t.Helper()
	ctx := Context(t, 2*time.Second)
	reader := bytes.NewReader(payload)
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("http request: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		t.Fatalf("unexpected status %d for %s %s: %s", resp.StatusCode, method, url, string(body))
	}
	return body
}
