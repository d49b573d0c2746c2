package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Document is a JSON-LD document: a @context mapping vocabulary prefixes
// and a @graph array of nodes.
type Document struct {
	Context map[string]any `json:"@context"`
	Graph   []*Node        `json:"@graph"`
}

// Bytes serializes the document with stable formatting. Identical documents
// produce byte-identical output: context keys are sorted by encoding/json,
// node keys keep their stored order.
func (d *Document) Bytes() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// ParseDocument parses a JSON-LD document, preserving node key order and
// number precision.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return &doc, nil
}

// Node is one JSON-LD graph node. Keys keep insertion order so declared
// field order survives a round trip; encoding/json's map ordering would
// destroy it.
type Node struct {
	keys   []string
	values map[string]any
}

// NewNode creates a node with the given @id.
func NewNode(id string) *Node {
	n := &Node{values: make(map[string]any)}
	n.Set("@id", id)
	return n
}

// ID returns the node's @id, or "".
func (n *Node) ID() string {
	if v, ok := n.values["@id"].(string); ok {
		return v
	}
	return ""
}

// Types returns the node's @type values. A single string @type is returned
// as a one-element slice.
func (n *Node) Types() []string {
	switch v := n.values["@type"].(type) {
	case string:
		return []string{v}
	case []any:
		out := make([]string, 0, len(v))
		for _, t := range v {
			if s, ok := t.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// Keys returns the node's keys in insertion order.
func (n *Node) Keys() []string {
	return n.keys
}

// Get returns the value stored under key.
func (n *Node) Get(key string) (any, bool) {
	v, ok := n.values[key]
	return v, ok
}

// Set stores a value, appending the key on first use and replacing the
// value afterwards.
func (n *Node) Set(key string, value any) {
	if _, ok := n.values[key]; !ok {
		n.keys = append(n.keys, key)
	}
	n.values[key] = value
}

// Add appends a value under key. A second value converts the entry to a
// JSON array, matching JSON-LD's set semantics.
func (n *Node) Add(key string, value any) {
	existing, ok := n.values[key]
	if !ok {
		n.Set(key, value)
		return
	}
	if list, isList := existing.([]any); isList {
		n.values[key] = append(list, value)
		return
	}
	n.values[key] = []any{existing, value}
}

// MarshalJSON writes the node's keys in insertion order.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range n.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(n.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object preserving key order. Numbers decode
// as json.Number so integer precision survives.
func (n *Node) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("node: expected object, got %v", tok)
	}

	n.values = make(map[string]any)
	n.keys = nil
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("node: expected string key, got %v", keyTok)
		}
		value, err := decodeValue(dec)
		if err != nil {
			return err
		}
		n.Set(key, value)
	}
	// Consume the closing brace.
	_, err = dec.Token()
	return err
}

// decodeValue reads one JSON value from the decoder, mapping objects to
// map[string]any and arrays to []any.
func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			obj := make(map[string]any)
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("node: expected string key, got %v", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				obj[key] = val
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			var list []any
			for dec.More() {
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				list = append(list, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return list, nil
		default:
			return nil, fmt.Errorf("node: unexpected delimiter %v", v)
		}
	default:
		return tok, nil
	}
}
