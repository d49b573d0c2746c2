package entity

import (
	"strings"

	"github.com/c360studio/semcrate/graph"
	"github.com/c360studio/semcrate/schema"
	"github.com/c360studio/semcrate/vocabulary"
)

// Property is one literal value on an entry. Value holds string, int64,
// float64, bool, or time.Time.
type Property struct {
	Name  string
	Value any
}

// Reference links an entry to one or more other entries by id. List marks
// the reference as list-valued even when it currently holds a single id,
// so single-vs-list shape survives a round trip.
type Reference struct {
	Name string
	IDs  []string
	List bool
}

// Entry is one resolved metadata record: an instance of a declared type
// with literal properties and id-valued references. Relationships are
// represented purely as id references, never embedded ownership, which
// keeps cyclic instance graphs flat.
type Entry struct {
	// ID is the entry identifier, unique within a session.
	ID string

	// ClassID references the declared Type, or "unknown" for nodes
	// imported without a resolvable @type.
	ClassID string

	// Properties holds the literal values in declared-field order.
	Properties []Property

	// References holds the id references in declared-field order.
	References []Reference
}

// ClassUnknown is the class id given to imported nodes whose @type cannot
// be resolved. Such nodes round-trip as opaque entries instead of being
// dropped.
const ClassUnknown = "unknown"

// placeholderPrefix marks transient ids allocated mid-extraction.
const placeholderPrefix = "placeholder-"

// IsPlaceholder reports whether id is a transient placeholder allocated by
// the resolver. Placeholders never appear in finalized output.
func IsPlaceholder(id string) bool {
	return strings.HasPrefix(id, placeholderPrefix)
}

// Property returns the literal value with the given name.
func (e *Entry) Property(name string) (any, bool) {
	for _, p := range e.Properties {
		if p.Name == name {
			return p.Value, true
		}
	}
	return nil, false
}

// Reference returns the reference with the given name, or nil.
func (e *Entry) Reference(name string) *Reference {
	for i := range e.References {
		if e.References[i].Name == name {
			return &e.References[i]
		}
	}
	return nil
}

// SetProperty appends or replaces a literal property, keeping first-set
// order on replacement.
func (e *Entry) SetProperty(name string, value any) {
	for i := range e.Properties {
		if e.Properties[i].Name == name {
			e.Properties[i].Value = value
			return
		}
	}
	e.Properties = append(e.Properties, Property{Name: name, Value: value})
}

// AddReference appends a reference.
func (e *Entry) AddReference(name string, ids []string, list bool) {
	e.References = append(e.References, Reference{Name: name, IDs: ids, List: list})
}

// Triples emits the instance triples: the class assertion, one literal
// triple per property, and one reference triple per referenced id, in
// declared-field order.
func (e *Entry) Triples() []graph.Triple {
	subj := schema.BaseIRI(e.ID)
	triples := []graph.Triple{
		{Subject: subj, Predicate: vocabulary.RdfType, Object: schema.BaseIRI(e.ClassID)},
	}

	for _, p := range e.Properties {
		triples = append(triples, graph.Triple{
			Subject:   subj,
			Predicate: schema.BaseIRI(p.Name),
			Object:    graph.NewLiteral(p.Value),
		})
	}

	for _, ref := range e.References {
		for _, id := range ref.IDs {
			triples = append(triples, graph.Triple{
				Subject:   subj,
				Predicate: schema.BaseIRI(ref.Name),
				Object:    schema.BaseIRI(id),
			})
		}
	}

	return triples
}
