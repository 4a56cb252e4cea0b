package history

import (
	"context"
	"strings"
	"testing"
)

// TestListRenderWrapsChildren verifies the container element wraps children in order.
func TestListRenderWrapsChildren(t *testing.T) {
	list := NewList(DefaultContainerID)
	appender := NewAppender(list, WithRecorder(&recordingRecorder{}), WithIDGenerator(sequentialIDs()))
	for _, question := range []string{"first", "second"} {
		if _, err := appender.Append(question, "a", nil); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	var b strings.Builder
	if err := list.Render(context.Background(), &b); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := b.String()
	if !strings.HasPrefix(out, `<div id="conversation-history">`) || !strings.HasSuffix(out, `</div>`) {
		t.Fatalf("unexpected container markup: %q", out)
	}
	first := strings.Index(out, `id="qa-id-1"`)
	second := strings.Index(out, `id="qa-id-2"`)
	if first == -1 || second == -1 || first > second {
		t.Fatalf("expected children in append order: %q", out)
	}
}

// TestEntryViewNullEvaluation verifies a nil evaluation renders as null.
func TestEntryViewNullEvaluation(t *testing.T) {
	text, err := JSONSerializer{}.Serialize(nil)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	node, err := RenderNode(context.Background(), Entry{Question: "q", Answer: "a", EvaluationText: text})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(node.HTML, `<pre class="evaluation">null</pre>`) {
		t.Fatalf("unexpected markup: %q", node.HTML)
	}
	if node.ID != "" || strings.Contains(node.HTML, ` id=`) {
		t.Fatalf("expected no id attribute for entry without id: %q", node.HTML)
	}
}

// TestJSONSerializerKeepsHTMLCharacters verifies the serializer leaves escaping to the renderer.
func TestJSONSerializerKeepsHTMLCharacters(t *testing.T) {
	text, err := JSONSerializer{}.Serialize(map[string]string{"note": "a < b & c"})
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	want := "{\n  \"note\": \"a < b & c\"\n}"
	if text != want {
		t.Fatalf("expected %q, got %q", want, text)
	}
}

// TestJSONSerializerKeepsLineSeparatorsRaw verifies U+2028 and U+2029 are emitted as characters.
func TestJSONSerializerKeepsLineSeparatorsRaw(t *testing.T) {
	text, err := JSONSerializer{}.Serialize(map[string]string{
		"raw":     "a\u2028b\u2029c",
		"literal": `path\u2028`,
	})
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	want := "{\n  \"literal\": \"path\\\\u2028\",\n  \"raw\": \"a\u2028b\u2029c\"\n}"
	if text != want {
		t.Fatalf("expected %q, got %q", want, text)
	}
}
