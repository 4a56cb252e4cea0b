package scoring

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestComputeRougeIdentical verifies identical answers score one.
func TestComputeRougeIdentical(t *testing.T) {
	scores := ComputeRouge("Goroutines are cheap threads.", "goroutines are cheap threads")
	if !approx(scores.Rouge1, 1) || !approx(scores.Rouge2, 1) || !approx(scores.RougeL, 1) {
		t.Fatalf("expected perfect scores, got %+v", scores)
	}
	if !approx(scores.Mean(), 1) {
		t.Fatalf("expected mean 1, got %f", scores.Mean())
	}
}

// TestComputeRougePartialOverlap verifies precision and recall combine into F.
func TestComputeRougePartialOverlap(t *testing.T) {
	// reference: the cat sat on the mat (6), candidate: the cat ran (3)
	scores := ComputeRouge("the cat sat on the mat", "the cat ran")
	// unigram overlap 2: P=2/3 R=2/6 F=4/9
	if !approx(scores.Rouge1, 4.0/9.0) {
		t.Fatalf("unexpected rouge-1 %f", scores.Rouge1)
	}
	// bigram overlap 1 ("the cat"): P=1/2 R=1/5 F=2/7
	if !approx(scores.Rouge2, 2.0/7.0) {
		t.Fatalf("unexpected rouge-2 %f", scores.Rouge2)
	}
	// lcs 2: same as unigram here
	if !approx(scores.RougeL, 4.0/9.0) {
		t.Fatalf("unexpected rouge-l %f", scores.RougeL)
	}
}

// TestComputeRougeEmpty verifies empty answers score zero.
func TestComputeRougeEmpty(t *testing.T) {
	if scores := ComputeRouge("ideal", "  ...  "); scores != (RougeScores{}) {
		t.Fatalf("expected zero scores, got %+v", scores)
	}
	if scores := ComputeRouge("", "answer"); scores != (RougeScores{}) {
		t.Fatalf("expected zero scores, got %+v", scores)
	}
}

// TestComputeRougeOrderMatters verifies LCS penalizes reordering while unigrams do not.
func TestComputeRougeOrderMatters(t *testing.T) {
	scores := ComputeRouge("a b c d", "d c b a")
	if !approx(scores.Rouge1, 1) {
		t.Fatalf("expected rouge-1 of 1, got %f", scores.Rouge1)
	}
	if scores.Rouge2 != 0 {
		t.Fatalf("expected rouge-2 of 0, got %f", scores.Rouge2)
	}
	if !approx(scores.RougeL, 0.25) {
		t.Fatalf("expected rouge-l of 0.25, got %f", scores.RougeL)
	}
}
