// Package vocabulary provides the namespace IRIs, XSD datatypes, and prefix
// maps used when emitting and parsing RDF triples and JSON-LD documents.
//
// The package consolidates the W3C standard vocabularies the schema engine
// depends on:
//   - RDF/RDFS: type assertions, labels, comments, domain/range
//   - OWL: class/property equivalence and cardinality restrictions
//   - XSD: literal datatypes
//   - Schema.org: the default parent class for declared types
//
// Prefix maps control how full IRIs are compacted in JSON-LD output. The
// default map covers the standard vocabularies plus the crate-local "base"
// namespace; custom maps can be parsed from YAML:
//
//	prefixes, err := vocabulary.ParsePrefixes(data)
//	if err != nil {
//	    return err
//	}
//	prefixes.Bind("lab", "https://lab.example.org/vocab/")
package vocabulary
