// Package codec serializes the merged RDF graph to JSON-LD and parses
// JSON-LD documents back into schema and entry collections.
//
// Export is deterministic: @context prefixes are sorted, @graph nodes keep
// first-seen subject order, and node keys keep triple emission order, so
// identical inputs yield byte-identical documents across runs. Import
// classifies each @graph node by its @type — owl:Class (or the legacy
// rdfs:Class) becomes a Type, rdf:Property a TypeProperty, owl:Restriction
// a Restriction, and any other typed node a metadata entry. Nodes without
// a resolvable @type become opaque entries with class id "unknown" rather
// than being dropped, preserving round-trip fidelity.
//
// Canonicalize produces URDNA2015 canonical N-Quads for graph-isomorphism
// comparison, which the round-trip contract is stated in terms of.
package codec
