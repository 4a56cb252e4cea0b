package eval

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
)

// JSONKind identifies the concrete type stored in a JSONValue.
type JSONKind int

const (
	JSONNull JSONKind = iota
	JSONString
	JSONNumber
	JSONBool
	JSONObject
	JSONArray
)

// maxDepth bounds nesting so self-referencing objects fail instead of recursing forever.
const maxDepth = 1000

// ErrTooDeep reports a value nested beyond maxDepth, which in practice means a cycle.
var ErrTooDeep = errors.New("json value nested too deeply (cycle?)")

// JSONValue represents an arbitrary evaluation payload without using empty interfaces.
type JSONValue struct {
	Kind   JSONKind
	String string
	Number float64
	Bool   bool
	Object map[string]JSONValue
	Array  []JSONValue
}

// Null returns the JSON null value.
func Null() JSONValue { return JSONValue{Kind: JSONNull} }

// Str wraps a string.
func Str(value string) JSONValue { return JSONValue{Kind: JSONString, String: value} }

// Num wraps a number.
func Num(value float64) JSONValue { return JSONValue{Kind: JSONNumber, Number: value} }

// Bool wraps a boolean.
func Bool(value bool) JSONValue { return JSONValue{Kind: JSONBool, Bool: value} }

// Obj wraps an object. A nil map becomes an empty object.
func Obj(fields map[string]JSONValue) JSONValue {
	if fields == nil {
		fields = map[string]JSONValue{}
	}
	return JSONValue{Kind: JSONObject, Object: fields}
}

// Arr wraps an array.
func Arr(items ...JSONValue) JSONValue {
	if items == nil {
		items = []JSONValue{}
	}
	return JSONValue{Kind: JSONArray, Array: items}
}

// Parse decodes raw JSON into a JSONValue.
func Parse(data []byte) (JSONValue, error) {
	var v JSONValue
	if err := json.Unmarshal(data, &v); err != nil {
		return JSONValue{}, fmt.Errorf("parse evaluation: %w", err)
	}
	return v, nil
}

// UnmarshalJSON decodes a JSON value into the typed JSONValue representation.
func (v *JSONValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty json value")
	}
	switch trimmed[0] {
	case '{':
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return err
		}
		v.Kind = JSONObject
		v.Object = make(map[string]JSONValue, len(raw))
		for key, value := range raw {
			var child JSONValue
			if err := json.Unmarshal(value, &child); err != nil {
				return err
			}
			v.Object[key] = child
		}
		return nil
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return err
		}
		v.Kind = JSONArray
		v.Array = make([]JSONValue, 0, len(raw))
		for _, value := range raw {
			var child JSONValue
			if err := json.Unmarshal(value, &child); err != nil {
				return err
			}
			v.Array = append(v.Array, child)
		}
		return nil
	case '"':
		var value string
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return err
		}
		v.Kind = JSONString
		v.String = value
		return nil
	case 't', 'f':
		var value bool
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return err
		}
		v.Kind = JSONBool
		v.Bool = value
		return nil
	case 'n':
		if string(trimmed) != "null" {
			return fmt.Errorf("invalid json literal")
		}
		v.Kind = JSONNull
		return nil
	default:
		var value float64
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return err
		}
		v.Kind = JSONNumber
		v.Number = value
		return nil
	}
}

// MarshalJSON encodes the value compactly with object keys sorted.
func (v JSONValue) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v JSONValue) encode(buf *bytes.Buffer, depth int) error {
	if depth > maxDepth {
		return ErrTooDeep
	}
	switch v.Kind {
	case JSONNull:
		buf.WriteString("null")
	case JSONString:
		data, err := json.Marshal(v.String)
		if err != nil {
			return err
		}
		buf.Write(data)
	case JSONNumber:
		if math.IsNaN(v.Number) || math.IsInf(v.Number, 0) {
			return fmt.Errorf("unsupported number %v", v.Number)
		}
		data, err := json.Marshal(v.Number)
		if err != nil {
			return err
		}
		buf.Write(data)
	case JSONBool:
		if v.Bool {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case JSONObject:
		keys := make([]string, 0, len(v.Object))
		for key := range v.Object {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		buf.WriteByte('{')
		for i, key := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			name, err := json.Marshal(key)
			if err != nil {
				return err
			}
			buf.Write(name)
			buf.WriteByte(':')
			if err := v.Object[key].encode(buf, depth+1); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case JSONArray:
		buf.WriteByte('[')
		for i, item := range v.Array {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.encode(buf, depth+1); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	default:
		return fmt.Errorf("unknown json kind %d", v.Kind)
	}
	return nil
}

// ObjectValue returns the object map when the value is an object.
func (v JSONValue) ObjectValue() (map[string]JSONValue, bool) {
	if v.Kind != JSONObject {
		return nil, false
	}
	return v.Object, true
}

// ArrayValue returns the array slice when the value is an array.
func (v JSONValue) ArrayValue() ([]JSONValue, bool) {
	if v.Kind != JSONArray {
		return nil, false
	}
	return v.Array, true
}

// StringValue returns the string when the value is a string.
func (v JSONValue) StringValue() (string, bool) {
	if v.Kind != JSONString {
		return "", false
	}
	return v.String, true
}

// NumberValue returns the number when the value is numeric.
func (v JSONValue) NumberValue() (float64, bool) {
	if v.Kind != JSONNumber {
		return 0, false
	}
	return v.Number, true
}

// BoolValue returns the boolean when the value is a bool.
func (v JSONValue) BoolValue() (bool, bool) {
	if v.Kind != JSONBool {
		return false, false
	}
	return v.Bool, true
}
