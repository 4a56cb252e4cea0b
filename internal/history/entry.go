package history

import (
	"strings"
	"time"
)

// NodeClass is the CSS class carried by every rendered history record.
const NodeClass = "qa-pair"

// Entry is one question/answer/evaluation record.
type Entry struct {
	ID             string
	Question       string
	Answer         string
	Evaluation     any
	EvaluationText string
	AppendedAt     time.Time
}

// Node is a rendered entry ready to be placed in a container.
type Node struct {
	ID    string
	Class string
	HTML  string
	Entry Entry
}

// Text returns the node's visible text content.
func (n Node) Text() string {
	var b strings.Builder
	b.WriteString("Q: ")
	b.WriteString(n.Entry.Question)
	b.WriteString("\nA: ")
	b.WriteString(n.Entry.Answer)
	b.WriteString("\nEvaluation: ")
	b.WriteString(n.Entry.EvaluationText)
	return b.String()
}
