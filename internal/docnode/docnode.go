// Package docnode implements the canonical document tree the serializer
// emits: an ordered tree of maps, lists, and tagged scalars, renderable to
// either JSON or YAML without the AST leaking into the rendering layer.
//
// Every node owns every string and composite it produces, following the
// ordered, key-preserving map style the ecosystem's YAML libraries expect.
package docnode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// Kind discriminates the primitive shapes a Node can take.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindMap
)

// Node is one value in the document tree. Exactly one of its fields is
// meaningful, selected by Kind.
type Node struct {
	kind  Kind
	bool_ bool
	int_  int64
	float_ float64
	str   string
	list  []*Node
	mp    *Map
}

// Null returns the JSON/YAML null scalar.
func Null() *Node { return &Node{kind: KindNull} }

// Bool wraps a boolean scalar.
func Bool(v bool) *Node { return &Node{kind: KindBool, bool_: v} }

// Int wraps an integer scalar.
func Int(v int64) *Node { return &Node{kind: KindInt, int_: v} }

// Float wraps a floating-point scalar.
func Float(v float64) *Node { return &Node{kind: KindFloat, float_: v} }

// String wraps a string scalar.
func String(v string) *Node { return &Node{kind: KindString, str: v} }

// List wraps an ordered list of nodes. A nil or empty items slice still
// renders as `[]`.
func List(items []*Node) *Node { return &Node{kind: KindList, list: items} }

// MapNode wraps an ordered map.
func MapNode(m *Map) *Node { return &Node{kind: KindMap, mp: m} }

// Kind reports the node's primitive shape.
func (n *Node) Kind() Kind { return n.kind }

// Map is an insertion-ordered string-keyed map. Unlike a Go map, iterating
// or marshaling a Map always visits entries in the order they were Set,
// which is required for the serializer's output to be byte-stable.
type Map struct {
	keys   []string
	values []*Node
}

// NewMap returns an empty ordered map.
func NewMap() *Map { return &Map{} }

// Set appends (or, if key already exists, overwrites in place) one entry
// and returns the receiver so calls can be chained.
func (m *Map) Set(key string, value *Node) *Map {
	for i, k := range m.keys {
		if k == key {
			m.values[i] = value
			return m
		}
	}
	m.keys = append(m.keys, key)
	m.values = append(m.values, value)
	return m
}

// Len reports the number of entries.
func (m *Map) Len() int { return len(m.keys) }

// Single builds the one-entry "tagged variant" map used throughout the
// serializer: every Definition and every member is wrapped in a
// single-entry map keyed by its variant tag.
func Single(tag string, value *Node) *Node {
	return MapNode(NewMap().Set(tag, value))
}

// MarshalJSON renders the tree as JSON, preserving map key order (which
// encoding/json's native map support cannot do).
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (n *Node) writeJSON(buf *bytes.Buffer) error {
	switch n.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		if n.bool_ {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindInt:
		fmt.Fprintf(buf, "%d", n.int_)
	case KindFloat:
		fmt.Fprintf(buf, "%v", n.float_)
	case KindString:
		enc, err := json.Marshal(n.str)
		if err != nil {
			return err
		}
		buf.Write(enc)
	case KindList:
		buf.WriteByte('[')
		for i, item := range n.list {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindMap:
		buf.WriteByte('{')
		for i, k := range n.mp.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(k)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := n.mp.values[i].writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

// toYAMLValue converts the tree into the plain interface{} shape
// goccy/go-yaml expects, using yaml.MapSlice to keep map entries ordered.
func (n *Node) toYAMLValue() any {
	switch n.kind {
	case KindNull:
		return nil
	case KindBool:
		return n.bool_
	case KindInt:
		return n.int_
	case KindFloat:
		return n.float_
	case KindString:
		return n.str
	case KindList:
		out := make([]any, len(n.list))
		for i, item := range n.list {
			out[i] = item.toYAMLValue()
		}
		return out
	case KindMap:
		slice := make(yaml.MapSlice, n.mp.Len())
		for i, k := range n.mp.keys {
			slice[i] = yaml.MapItem{Key: k, Value: n.mp.values[i].toYAMLValue()}
		}
		return slice
	default:
		return nil
	}
}

// EncodeYAML renders the tree as YAML to w, preserving map key order.
func (n *Node) EncodeYAML(w io.Writer) error {
	return yaml.NewEncoder(w).Encode(n.toYAMLValue())
}
