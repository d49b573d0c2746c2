package schema

import (
	"strings"

	"github.com/c360studio/semcrate/graph"
	"github.com/c360studio/semcrate/vocabulary"
)

// Type is an RDFS class definition. Once registered it is treated as
// immutable; re-registering the same id replaces the whole definition.
type Type struct {
	// ID is the crate-local class identifier, unique within a registry.
	ID string

	// Label is the human-readable name (rdfs:label).
	Label string

	// Comment is the free-text description (rdfs:comment).
	Comment string

	// SubClassOf lists parent class IRIs or crate-local type ids.
	SubClassOf []string

	// Annotations lists external ontology class IRIs this type is declared
	// equivalent to (owl:equivalentClass).
	Annotations []string

	// Properties is the ordered list of properties declared on this type.
	Properties []*TypeProperty

	// Restrictions lists the cardinality restrictions owned by this type.
	Restrictions []*Restriction
}

// BaseIRI resolves a crate-local id, prefixed name, or full IRI to a
// graph.IRI in the appropriate namespace.
func BaseIRI(id string) graph.IRI {
	if strings.Contains(id, "://") {
		return graph.IRI(id)
	}
	return graph.IRI(vocabulary.DefaultPrefixes().Expand(id))
}

// Triples emits the class definition: the owl:Class assertion, label and
// comment when set, one owl:equivalentClass per annotation, one
// rdfs:subClassOf per parent and per owned restriction, then delegates to
// the owned restrictions and properties.
func (t *Type) Triples() []graph.Triple {
	subj := BaseIRI(t.ID)
	triples := []graph.Triple{
		{Subject: subj, Predicate: vocabulary.RdfType, Object: graph.IRI(vocabulary.OwlClass)},
	}

	if t.Label != "" {
		triples = append(triples, graph.Triple{Subject: subj, Predicate: vocabulary.RdfsLabel, Object: graph.NewLiteral(t.Label)})
	}
	if t.Comment != "" {
		triples = append(triples, graph.Triple{Subject: subj, Predicate: vocabulary.RdfsComment, Object: graph.NewLiteral(t.Comment)})
	}

	for _, ann := range t.Annotations {
		triples = append(triples, graph.Triple{Subject: subj, Predicate: vocabulary.OwlEquivalentClass, Object: BaseIRI(ann)})
	}
	for _, parent := range t.SubClassOf {
		triples = append(triples, graph.Triple{Subject: subj, Predicate: vocabulary.RdfsSubClassOf, Object: BaseIRI(parent)})
	}

	for _, r := range t.Restrictions {
		rid := r.EffectiveID(t.ID)
		triples = append(triples, graph.Triple{Subject: subj, Predicate: vocabulary.RdfsSubClassOf, Object: BaseIRI(rid)})
		triples = append(triples, r.triplesAs(rid)...)
	}

	for _, p := range t.Properties {
		triples = append(triples, p.triplesWithDomain(t.ID)...)
	}

	return triples
}

// Property returns the declared property with the given id, or nil.
func (t *Type) Property(id string) *TypeProperty {
	for _, p := range t.Properties {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Restriction returns the restriction constraining the given property id,
// or nil when the property is unconstrained.
func (t *Type) Restriction(propertyID string) *Restriction {
	for _, r := range t.Restrictions {
		if r.Property == propertyID {
			return r
		}
	}
	return nil
}
