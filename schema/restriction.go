package schema

import (
	"fmt"

	"github.com/c360studio/semcrate/graph"
	"github.com/c360studio/semcrate/vocabulary"
)

// Restriction is an OWL cardinality restriction on a property. A type links
// to its restrictions via rdfs:subClassOf.
type Restriction struct {
	// ID identifies the restriction node. Left empty on type-owned
	// restrictions, the id derives from the owning type and property.
	ID string

	// Property is the id of the constrained property.
	Property string

	// Min is the minimum occurrence count. Required properties have Min 1.
	Min int

	// Max is the maximum occurrence count; nil means unbounded
	// (list-valued properties).
	Max *int
}

// MaxCardinality returns a bounded Restriction.Max value.
func MaxCardinality(n int) *int {
	return &n
}

// EffectiveID returns the restriction's node id, deriving
// "<owner>_<property>_restriction" when no explicit id is set.
func (r *Restriction) EffectiveID(owner string) string {
	if r.ID != "" {
		return r.ID
	}
	return fmt.Sprintf("%s_%s_restriction", owner, r.Property)
}

// Validate checks the internal consistency of the bounds.
func (r *Restriction) Validate() error {
	if r.Property == "" {
		return fmt.Errorf("restriction %q: missing property id", r.ID)
	}
	if r.Min < 0 {
		return fmt.Errorf("restriction on %q: negative min cardinality %d", r.Property, r.Min)
	}
	if r.Max != nil && *r.Max < r.Min {
		return fmt.Errorf("restriction on %q: max cardinality %d below min %d", r.Property, *r.Max, r.Min)
	}
	return nil
}

// Triples emits the restriction node under its explicit ID. Type-owned
// restrictions are emitted by their owning type instead, which supplies
// the derived id.
func (r *Restriction) Triples() []graph.Triple {
	return r.triplesAs(r.ID)
}

func (r *Restriction) triplesAs(id string) []graph.Triple {
	subj := BaseIRI(id)
	triples := []graph.Triple{
		{Subject: subj, Predicate: vocabulary.RdfType, Object: graph.IRI(vocabulary.OwlRestriction)},
		{Subject: subj, Predicate: vocabulary.OwlOnProperty, Object: BaseIRI(r.Property)},
		{Subject: subj, Predicate: vocabulary.OwlMinCardinality, Object: graph.NewLiteral(r.Min)},
	}
	if r.Max != nil {
		triples = append(triples, graph.Triple{Subject: subj, Predicate: vocabulary.OwlMaxCardinality, Object: graph.NewLiteral(*r.Max)})
	}
	return triples
}
