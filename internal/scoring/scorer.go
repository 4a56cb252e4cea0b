package scoring

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Evaluation is the structured grade attached to a history entry.
type Evaluation struct {
	FinalScore    float64     `json:"final_score"`
	RougeScores   RougeScores `json:"rouge_scores"`
	LLMEvaluation string      `json:"llm_evaluation,omitempty"`
	LLMScore      *float64    `json:"llm_score,omitempty"`
}

// Scorer combines lexical overlap with an optional LLM judge.
type Scorer struct {
	judge Judge
	log   *logrus.Entry
}

// NewScorer builds a scorer. A nil judge scores on ROUGE alone.
func NewScorer(judge Judge, log *logrus.Entry) *Scorer {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Scorer{judge: judge, log: log.WithField("component", "scoring")}
}

// Score grades actual against ideal. With a judge the final score is the
// mean of the ROUGE average and the normalized judge score.
func (s *Scorer) Score(ctx context.Context, question, ideal, actual string) (Evaluation, error) {
	rouge := ComputeRouge(ideal, actual)
	result := Evaluation{
		FinalScore:  rouge.Mean(),
		RougeScores: rouge,
	}
	if s.judge == nil {
		return result, nil
	}

	reply, err := s.judge.Evaluate(ctx, Prompt{Question: question, IdealAnswer: ideal, ActualAnswer: actual})
	if err != nil {
		return Evaluation{}, fmt.Errorf("score answer: %w", err)
	}
	llmScore, err := ParseLLMScore(reply)
	if err != nil {
		s.log.WithError(err).Warn("falling back to default judge score")
		llmScore = DefaultLLMScore
	}
	result.LLMEvaluation = reply
	result.LLMScore = &llmScore
	result.FinalScore = 0.5*rouge.Mean() + 0.5*llmScore
	return result, nil
}
