package scoring

import (
	"errors"
	"testing"
)

// TestParseLLMScore verifies common judge reply shapes.
func TestParseLLMScore(t *testing.T) {
	cases := map[string]float64{
		"Score (out of 10): 8/10\nExplanation: solid":  0.8,
		"Some preamble\n  Score: 7.5\nExplanation: ok": 0.75,
		"Score: 10 / 10":                               1,
	}
	for reply, want := range cases {
		got, err := ParseLLMScore(reply)
		if err != nil {
			t.Fatalf("parse %q: %v", reply, err)
		}
		if !approx(got, want) {
			t.Fatalf("parse %q: expected %f, got %f", reply, want, got)
		}
	}
}

// TestParseLLMScoreFailures verifies missing or malformed scores are errors.
func TestParseLLMScoreFailures(t *testing.T) {
	if _, err := ParseLLMScore("Explanation only"); !errors.Is(err, ErrMissingScore) {
		t.Fatalf("expected ErrMissingScore, got %v", err)
	}
	if _, err := ParseLLMScore("Score: excellent"); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := ParseLLMScore("Score 8"); err == nil {
		t.Fatalf("expected missing colon error")
	}
}
