package schema

import (
	"github.com/c360studio/semcrate/graph"
	"github.com/c360studio/semcrate/vocabulary"
)

// TypeProperty is an RDF property definition: which classes may carry it
// (domain), what values it may hold (range), and whether instances must
// provide it.
type TypeProperty struct {
	// ID is the crate-local property identifier.
	ID string

	// Label is the human-readable name (rdfs:label).
	Label string

	// Comment is the free-text description (rdfs:comment).
	Comment string

	// Domain lists the Type ids that may carry this property.
	Domain []string

	// Range lists allowed value types: XSD datatype IRIs for literal
	// values, or Type ids for references.
	Range []string

	// Annotations lists external ontology property IRIs this property is
	// declared equivalent to (owl:equivalentProperty).
	Annotations []string

	// Required marks the property as mandatory on instances. A required
	// property yields a min-cardinality-1 restriction on its owning type.
	Required bool
}

// Triples emits the property definition with its declared domain.
func (p *TypeProperty) Triples() []graph.Triple {
	return p.triplesWithDomain("")
}

// triplesWithDomain emits the property definition. When owner is non-empty
// and not already declared, it is prepended to the emitted domains so a
// property attached to a type always names that type.
func (p *TypeProperty) triplesWithDomain(owner string) []graph.Triple {
	subj := BaseIRI(p.ID)
	triples := []graph.Triple{
		{Subject: subj, Predicate: vocabulary.RdfType, Object: graph.IRI(vocabulary.RdfProperty)},
	}

	if p.Label != "" {
		triples = append(triples, graph.Triple{Subject: subj, Predicate: vocabulary.RdfsLabel, Object: graph.NewLiteral(p.Label)})
	}
	if p.Comment != "" {
		triples = append(triples, graph.Triple{Subject: subj, Predicate: vocabulary.RdfsComment, Object: graph.NewLiteral(p.Comment)})
	}

	domains := p.Domain
	if owner != "" && !contains(domains, owner) {
		domains = append([]string{owner}, domains...)
	}
	for _, d := range domains {
		triples = append(triples, graph.Triple{Subject: subj, Predicate: vocabulary.RdfsDomain, Object: BaseIRI(d)})
	}

	for _, r := range p.Range {
		triples = append(triples, graph.Triple{Subject: subj, Predicate: vocabulary.RdfsRange, Object: BaseIRI(r)})
	}

	for _, ann := range p.Annotations {
		triples = append(triples, graph.Triple{Subject: subj, Predicate: vocabulary.OwlEquivalentProperty, Object: BaseIRI(ann)})
	}

	return triples
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
