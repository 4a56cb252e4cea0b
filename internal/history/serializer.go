package history

import (
	"bytes"
	"encoding/json"
	"strings"
)

// DefaultIndent is the indentation used when pretty-printing evaluations.
const DefaultIndent = "  "

// Serializer converts an evaluation value into display text.
type Serializer interface {
	Serialize(value any) (string, error)
}

// JSONSerializer pretty-prints values as JSON. Map keys come out sorted.
type JSONSerializer struct {
	Indent string
}

// Serialize encodes value as indented JSON without HTML escaping; markup
// escaping is the renderer's job.
func (s JSONSerializer) Serialize(value any) (string, error) {
	indent := s.Indent
	if indent == "" {
		indent = DefaultIndent
	}
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", indent)
	if err := encoder.Encode(value); err != nil {
		return "", err
	}
	return unescapeLineSeparators(strings.TrimSuffix(buf.String(), "\n")), nil
}

// unescapeLineSeparators turns the \u2028 and \u2029 escapes encoding/json
// always emits back into the raw characters. Escape pairs are consumed whole
// so an escaped backslash followed by "u2028" stays literal text.
func unescapeLineSeparators(text string) string {
	if !strings.Contains(text, `\u202`) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if text[i] != '\\' || i+1 >= len(text) {
			b.WriteByte(text[i])
			continue
		}
		switch rest := text[i:]; {
		case strings.HasPrefix(rest, `\u2028`):
			b.WriteRune('\u2028')
			i += 5
		case strings.HasPrefix(rest, `\u2029`):
			b.WriteRune('\u2029')
			i += 5
		default:
			b.WriteString(text[i : i+2])
			i++
		}
	}
	return b.String()
}
