package transcript

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"qahistory/internal/history"
)

var (
	labelColor = lipgloss.Color("33")
	ruleColor  = lipgloss.Color("240")
	evalColor  = lipgloss.Color("244")
)

// Container prints each appended node as a numbered block on a writer.
type Container struct {
	mu      sync.Mutex
	w       io.Writer
	noColor bool
	count   int
}

// New builds a terminal container writing to w.
func New(w io.Writer, noColor bool) *Container {
	return &Container{w: w, noColor: noColor}
}

// ColorEnabled reports whether w is a terminal.
func ColorEnabled(w io.Writer) bool {
	file, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// AppendChild prints node after the previously printed blocks.
func (c *Container) AppendChild(node history.Node) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := io.WriteString(c.w, RenderEntry(c.count+1, node.Entry, c.noColor)+"\n"); err != nil {
		return err
	}
	c.count++
	return nil
}

// RenderEntry formats one entry as a terminal block.
func RenderEntry(index int, entry history.Entry, noColor bool) string {
	lines := []string{
		stylize(fmt.Sprintf("── #%d", index), noColor, ruleColor),
		stylize("Q:", noColor, labelColor) + " " + entry.Question,
		stylize("A:", noColor, labelColor) + " " + entry.Answer,
		stylize("Evaluation:", noColor, labelColor),
	}
	for _, line := range strings.Split(entry.EvaluationText, "\n") {
		lines = append(lines, stylize(line, noColor, evalColor))
	}
	return strings.Join(lines, "\n")
}

// RenderList formats nodes in order, separated by blank lines.
func RenderList(nodes []history.Node, noColor bool) string {
	blocks := make([]string, 0, len(nodes))
	for i, node := range nodes {
		blocks = append(blocks, RenderEntry(i+1, node.Entry, noColor))
	}
	return strings.Join(blocks, "\n\n")
}

func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor || text == "" {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
