package codec

import (
	"encoding/json"
	"fmt"

	"github.com/piprate/json-gold/ld"

	"github.com/c360studio/semcrate/vocabulary"
)

// Canonicalize produces the URDNA2015 canonical N-Quads form of the
// document. Two documents with the same canonical form are isomorphic as
// RDF graphs regardless of node order, prefix choice, or key order.
func Canonicalize(doc *Document) (string, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("canonicalizing document: %w", err)
	}
	var generic map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return "", fmt.Errorf("canonicalizing document: %w", err)
	}

	proc := ld.NewJsonLdProcessor()
	// Relative node ids resolve against the crate-local namespace when the
	// document's context declares no @base of its own. With an empty base
	// the processor would drop every statement about a relative subject.
	opts := ld.NewJsonLdOptions(vocabulary.BaseNamespace)
	opts.Algorithm = ld.AlgorithmURDNA2015
	opts.Format = "application/n-quads"

	normalized, err := proc.Normalize(generic, opts)
	if err != nil {
		return "", fmt.Errorf("canonicalizing document: %w", err)
	}
	quads, ok := normalized.(string)
	if !ok {
		return "", fmt.Errorf("canonicalizing document: unexpected result type %T", normalized)
	}
	return quads, nil
}

// Isomorphic reports whether two documents describe the same RDF graph.
func Isomorphic(a, b *Document) (bool, error) {
	ca, err := Canonicalize(a)
	if err != nil {
		return false, err
	}
	cb, err := Canonicalize(b)
	if err != nil {
		return false, err
	}
	return ca == cb, nil
}
