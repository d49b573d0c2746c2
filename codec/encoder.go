package codec

import (
	"time"

	"github.com/c360studio/semcrate/graph"
	"github.com/c360studio/semcrate/vocabulary"
)

// Encode serializes a merged triple list as a JSON-LD document. Nodes
// appear in first-seen subject order, so a builder fed schema first and
// entries second yields the conventional @graph layout: types, properties,
// restrictions, then metadata entries. Node keys follow triple emission
// order, with @id and @type leading.
func Encode(triples []graph.Triple, prefixes *vocabulary.PrefixMap) (*Document, error) {
	if prefixes == nil {
		prefixes = vocabulary.DefaultPrefixes()
	}

	ctx := make(map[string]any, len(prefixes.Prefixes())+4)
	for _, prefix := range prefixes.Prefixes() {
		ctx[prefix] = prefixes.Namespace(prefix)
	}
	// Bare local names resolve in the crate-local namespace: @base covers
	// node ids, @vocab covers keys and type names. Without these a JSON-LD
	// processor would treat them as relative IRIs.
	ctx["@base"] = prefixes.Namespace("base")
	ctx["@vocab"] = prefixes.Namespace("base")

	// Cardinality values are integers; the context declares their datatype
	// so compacted documents keep them as plain JSON numbers.
	ctx["owl:minCardinality"] = map[string]any{"@type": "xsd:integer"}
	ctx["owl:maxCardinality"] = map[string]any{"@type": "xsd:integer"}

	doc := &Document{Context: ctx}
	nodes := make(map[string]*Node)

	for _, t := range triples {
		id := prefixes.Compact(string(t.Subject))
		node, ok := nodes[id]
		if !ok {
			node = NewNode(id)
			nodes[id] = node
			doc.Graph = append(doc.Graph, node)
		}

		if string(t.Predicate) == vocabulary.RdfType {
			if iri, isIRI := t.Object.(graph.IRI); isIRI {
				node.Add("@type", prefixes.Compact(string(iri)))
				continue
			}
		}

		key := prefixes.Compact(string(t.Predicate))
		node.Add(key, encodeTerm(t.Object, prefixes))
	}

	return doc, nil
}

// encodeTerm maps an RDF term to its JSON-LD value form. IRIs become @id
// references; string, integer, double, and boolean literals become native
// JSON values; date/time literals keep an explicit @type so the datatype
// survives the round trip.
func encodeTerm(term graph.Term, prefixes *vocabulary.PrefixMap) any {
	switch v := term.(type) {
	case graph.IRI:
		return map[string]any{"@id": prefixes.Compact(string(v))}
	case graph.Literal:
		switch val := v.Value.(type) {
		case string:
			return val
		case int64:
			return val
		case float64:
			return val
		case bool:
			return val
		case time.Time:
			return map[string]any{
				"@value": v.Lexical(),
				"@type":  prefixes.Compact(vocabulary.XSDDateTime),
			}
		default:
			return v.Lexical()
		}
	default:
		return term.Key()
	}
}
