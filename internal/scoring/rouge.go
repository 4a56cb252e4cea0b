package scoring

import (
	"strings"
	"unicode"
)

// RougeScores holds ROUGE F-measures of an answer against the ideal answer.
type RougeScores struct {
	Rouge1 float64 `json:"rouge-1"`
	Rouge2 float64 `json:"rouge-2"`
	RougeL float64 `json:"rouge-l"`
}

// Mean averages the three F-measures.
func (r RougeScores) Mean() float64 {
	return (r.Rouge1 + r.Rouge2 + r.RougeL) / 3
}

// ComputeRouge scores actual against ideal. Empty input on either side scores zero.
func ComputeRouge(ideal, actual string) RougeScores {
	reference := tokenize(ideal)
	candidate := tokenize(actual)
	if len(reference) == 0 || len(candidate) == 0 {
		return RougeScores{}
	}
	return RougeScores{
		Rouge1: ngramF(reference, candidate, 1),
		Rouge2: ngramF(reference, candidate, 2),
		RougeL: lcsF(reference, candidate),
	}
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func ngrams(tokens []string, n int) map[string]int {
	counts := map[string]int{}
	for i := 0; i+n <= len(tokens); i++ {
		counts[strings.Join(tokens[i:i+n], " ")]++
	}
	return counts
}

func ngramF(reference, candidate []string, n int) float64 {
	refGrams := ngrams(reference, n)
	candGrams := ngrams(candidate, n)
	refTotal, candTotal := 0, 0
	for _, count := range refGrams {
		refTotal += count
	}
	overlap := 0
	for gram, count := range candGrams {
		candTotal += count
		overlap += min(count, refGrams[gram])
	}
	if refTotal == 0 || candTotal == 0 {
		return 0
	}
	return fMeasure(float64(overlap)/float64(candTotal), float64(overlap)/float64(refTotal))
}

func lcsF(reference, candidate []string) float64 {
	length := lcsLength(reference, candidate)
	return fMeasure(float64(length)/float64(len(candidate)), float64(length)/float64(len(reference)))
}

// lcsLength computes the longest common subsequence with a rolling row.
func lcsLength(a, b []string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else {
				curr[j] = max(prev[j], curr[j-1])
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func fMeasure(precision, recall float64) float64 {
	if precision+recall == 0 {
		return 0
	}
	return 2 * precision * recall / (precision + recall)
}
