// Package graph provides the RDF triple model and the deterministic graph
// builder that merges schema and instance triples into one collection.
package graph

import (
	"fmt"
	"strconv"
	"time"

	"github.com/c360studio/semcrate/vocabulary"
)

// Term is an RDF term appearing in the object position of a triple.
// Subjects and predicates are always IRIs.
type Term interface {
	// Key returns a canonical string form used for deduplication and
	// N-Triples output.
	Key() string

	isTerm()
}

// IRI identifies a resource.
type IRI string

// Key returns the canonical form of the IRI.
func (i IRI) Key() string { return "<" + string(i) + ">" }

func (IRI) isTerm() {}

// Literal is a typed literal value. Value holds one of string, int64,
// float64, bool, or time.Time; Datatype is the XSD datatype IRI.
type Literal struct {
	Value    any
	Datatype string
}

// NewLiteral builds a Literal with the datatype derived from the value's
// Go kind. Integer kinds are widened to int64 and float32 to float64 so a
// literal compares equal regardless of the declared width.
func NewLiteral(value any) Literal {
	switch v := value.(type) {
	case int:
		return Literal{Value: int64(v), Datatype: vocabulary.XSDInteger}
	case int32:
		return Literal{Value: int64(v), Datatype: vocabulary.XSDInteger}
	case float32:
		return Literal{Value: float64(v), Datatype: vocabulary.XSDDouble}
	default:
		return Literal{Value: value, Datatype: vocabulary.DatatypeFor(value)}
	}
}

// Lexical returns the lexical form of the literal value. Date/time values
// use RFC 3339 (ISO-8601), floats use the shortest round-trippable form.
func (l Literal) Lexical() string {
	switch v := l.Value.(type) {
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Key returns the canonical form of the literal.
func (l Literal) Key() string {
	return strconv.Quote(l.Lexical()) + "^^<" + l.Datatype + ">"
}

func (Literal) isTerm() {}

// Triple is a single RDF (subject, predicate, object) statement.
type Triple struct {
	Subject   IRI
	Predicate IRI
	Object    Term
}

// Key returns the canonical form of the triple, used for deduplication.
func (t Triple) Key() string {
	return t.Subject.Key() + " " + t.Predicate.Key() + " " + t.Object.Key()
}

// TripleSource is implemented by every schema and instance entity that can
// emit itself as triples.
type TripleSource interface {
	Triples() []Triple
}
