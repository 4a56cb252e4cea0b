package scoring

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultLLMScore is used when the judge's reply has no parsable score.
const DefaultLLMScore = 0.5

// ErrMissingScore indicates the judge reply had no "Score" line.
var ErrMissingScore = errors.New("missing score line")

// ParseLLMScore reads the first line starting with "Score" and normalizes
// its "N/10" value to the 0-1 range.
func ParseLLMScore(reply string) (float64, error) {
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "Score") {
			continue
		}
		_, value, ok := strings.Cut(line, ":")
		if !ok {
			return 0, fmt.Errorf("parse score line %q: missing ':'", line)
		}
		value, _, _ = strings.Cut(strings.TrimSpace(value), "/")
		score, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 0, fmt.Errorf("parse score line %q: %w", line, err)
		}
		return score / 10, nil
	}
	return 0, ErrMissingScore
}
