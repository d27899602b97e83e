package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/mailru/easyjson/jwriter"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Node is a value in a content tree. It is one of Scalar, List or *Map.
type Node interface {
	isNode()
}

// Scalar holds a leaf value: string, json.Number, bool or nil.
type Scalar struct {
	Value any
}

// List is an ordered sequence of nodes.
type List []Node

// Map is a string-keyed map that remembers insertion order.
type Map struct {
	om *orderedmap.OrderedMap[string, Node]
}

func (Scalar) isNode() {}
func (List) isNode()   {}
func (*Map) isNode()   {}

// String returns a string scalar.
func String(s string) Scalar { return Scalar{Value: s} }

// Number returns a numeric scalar. Numbers are always stored as json.Number
// so that decoded trees compare equal to constructed ones.
func Number(n int) Scalar { return Scalar{Value: json.Number(strconv.Itoa(n))} }

// Bool returns a boolean scalar.
func Bool(b bool) Scalar { return Scalar{Value: b} }

// Null returns the null scalar.
func Null() Scalar { return Scalar{} }

// Text returns the display form of the scalar.
func (s Scalar) Text() string {
	switch v := s.Value.(type) {
	case nil:
		return "null"
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// Strings builds a List of string scalars.
func Strings(ss ...string) List {
	l := make(List, 0, len(ss))
	for _, s := range ss {
		l = append(l, String(s))
	}
	return l
}

// NewMap returns an empty ordered map.
func NewMap() *Map {
	return &Map{om: orderedmap.New[string, Node]()}
}

// Set stores v under key. An existing key keeps its position.
func (m *Map) Set(key string, v Node) *Map {
	if m.om == nil {
		m.om = orderedmap.New[string, Node]()
	}
	m.om.Set(key, v)
	return m
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (Node, bool) {
	if m == nil || m.om == nil {
		return nil, false
	}
	return m.om.Get(key)
}

// GetString returns the string scalar stored under key.
func (m *Map) GetString(key string) (string, bool) {
	v, ok := m.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(Scalar)
	if !ok {
		return "", false
	}
	str, ok := s.Value.(string)
	return str, ok
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, 0, m.Len())
	for p := m.om.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}
	return out
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return m.om.Len()
}

// Rewrite returns a copy of n with every string scalar passed through f.
// Map keys are left untouched.
func Rewrite(n Node, f func(string) string) Node {
	switch v := n.(type) {
	case Scalar:
		if s, ok := v.Value.(string); ok {
			return String(f(s))
		}
		return v
	case List:
		out := make(List, 0, len(v))
		for _, item := range v {
			out = append(out, Rewrite(item, f))
		}
		return out
	case *Map:
		out := NewMap()
		for p := v.oldest(); p != nil; p = p.Next() {
			out.Set(p.Key, Rewrite(p.Value, f))
		}
		return out
	default:
		return n
	}
}

func (m *Map) oldest() *orderedmap.Pair[string, Node] {
	if m == nil {
		return nil
	}
	return m.om.Oldest()
}

func (s Scalar) MarshalJSON() ([]byte, error) { return encode(s) }
func (l List) MarshalJSON() ([]byte, error)   { return encode(l) }
func (m *Map) MarshalJSON() ([]byte, error)   { return encode(m) }

// UnmarshalJSON decodes a JSON object, keeping key order.
func (m *Map) UnmarshalJSON(data []byte) error {
	n, err := Decode(data)
	if err != nil {
		return err
	}
	decoded, ok := n.(*Map)
	if !ok {
		return fmt.Errorf("expected JSON object, got %T", n)
	}
	*m = *decoded
	return nil
}

// encode writes HTML characters verbatim so that option text such as
// "my_list = <>" is stored as written.
func encode(n Node) ([]byte, error) {
	w := jwriter.Writer{NoEscapeHTML: true}
	if err := writeNode(&w, n); err != nil {
		return nil, err
	}
	return w.BuildBytes()
}

func writeNode(w *jwriter.Writer, n Node) error {
	switch v := n.(type) {
	case nil:
		w.RawString("null")
	case Scalar:
		return writeScalar(w, v.Value)
	case List:
		w.RawByte('[')
		for i, item := range v {
			if i > 0 {
				w.RawByte(',')
			}
			if err := writeNode(w, item); err != nil {
				return err
			}
		}
		w.RawByte(']')
	case *Map:
		if v == nil {
			w.RawString("null")
			return nil
		}
		w.RawByte('{')
		for p, first := v.oldest(), true; p != nil; p, first = p.Next(), false {
			if !first {
				w.RawByte(',')
			}
			w.String(p.Key)
			w.RawByte(':')
			if err := writeNode(w, p.Value); err != nil {
				return err
			}
		}
		w.RawByte('}')
	default:
		return fmt.Errorf("unsupported node type %T", n)
	}
	return nil
}

func writeScalar(w *jwriter.Writer, v any) error {
	switch s := v.(type) {
	case nil:
		w.RawString("null")
	case string:
		w.String(s)
	case bool:
		w.Bool(s)
	case json.Number:
		if !json.Valid([]byte(s)) {
			return fmt.Errorf("invalid number literal %q", s)
		}
		w.RawString(s.String())
	default:
		return fmt.Errorf("unsupported scalar type %T", v)
	}
	return nil
}

// Decode parses JSON into a tree, preserving object key order.
func Decode(data []byte) (Node, error) {
	if !json.Valid(data) {
		return nil, errors.New("decode tree: invalid JSON or trailing data")
	}
	n, err := decodeRaw(data)
	if err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}
	return n, nil
}

// decodeRaw expects data to be a single valid JSON value.
func decodeRaw(data []byte) (Node, error) {
	data = bytes.TrimSpace(data)
	switch data[0] {
	case '{':
		raw := orderedmap.New[string, json.RawMessage]()
		if err := raw.UnmarshalJSON(data); err != nil {
			return nil, err
		}
		m := NewMap()
		for p := raw.Oldest(); p != nil; p = p.Next() {
			v, err := decodeRaw(p.Value)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", p.Key, err)
			}
			m.Set(p.Key, v)
		}
		return m, nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, err
		}
		l := make(List, 0, len(items))
		for i, item := range items {
			v, err := decodeRaw(item)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			l = append(l, v)
		}
		return l, nil
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
		return Scalar{Value: v}, nil
	}
}
