package history

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// EntryView renders one history record. Question, answer and evaluation
// text are escaped; they are never interpreted as markup.
func EntryView(entry Entry) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div class="` + NodeClass + `"`)
		if entry.ID != "" {
			b.WriteString(` id="` + templ.EscapeString(nodeID(entry.ID)) + `"`)
		}
		b.WriteString(`><p><strong>Q:</strong> `)
		b.WriteString(templ.EscapeString(entry.Question))
		b.WriteString(`</p><p><strong>A:</strong> `)
		b.WriteString(templ.EscapeString(entry.Answer))
		b.WriteString(`</p><p><strong>Evaluation:</strong></p><pre class="evaluation">`)
		b.WriteString(templ.EscapeString(entry.EvaluationText))
		b.WriteString(`</pre></div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// ListView renders a container element holding already rendered nodes.
func ListView(id string, nodes []Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div id="`+templ.EscapeString(id)+`">`); err != nil {
			return err
		}
		for _, node := range nodes {
			if _, err := io.WriteString(w, node.HTML); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// RenderNode renders entry into a Node.
func RenderNode(ctx context.Context, entry Entry) (Node, error) {
	var b strings.Builder
	if err := EntryView(entry).Render(ctx, &b); err != nil {
		return Node{}, err
	}
	return Node{
		ID:    nodeID(entry.ID),
		Class: NodeClass,
		HTML:  b.String(),
		Entry: entry,
	}, nil
}

func nodeID(entryID string) string {
	if entryID == "" {
		return ""
	}
	return "qa-" + entryID
}
