package vocabulary

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// PrefixMap maps namespace prefixes to their base IRIs. It drives IRI
// compaction in JSON-LD output and expansion on import.
type PrefixMap struct {
	prefixes map[string]string
}

// DefaultPrefixes returns the standard prefix map covering the vocabularies
// the schema engine emits, plus the crate-local "base" namespace.
func DefaultPrefixes() *PrefixMap {
	return &PrefixMap{
		prefixes: map[string]string{
			"rdf":    RDFNamespace,
			"rdfs":   RDFSNamespace,
			"owl":    OWLNamespace,
			"xsd":    XSDNamespace,
			"schema": SchemaNamespace,
			"base":   BaseNamespace,
		},
	}
}

// ParsePrefixes parses a YAML prefix definition of the form:
//
//	prefixes:
//	  lab: https://lab.example.org/vocab/
//	  obis: http://openbis.org/
//
// The parsed entries are layered on top of the default map, so the standard
// vocabularies are always available.
func ParsePrefixes(data []byte) (*PrefixMap, error) {
	var raw struct {
		Prefixes map[string]string `yaml:"prefixes"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing prefix map: %w", err)
	}

	pm := DefaultPrefixes()
	for prefix, ns := range raw.Prefixes {
		if prefix == "" || ns == "" {
			return nil, fmt.Errorf("parsing prefix map: empty prefix or namespace")
		}
		pm.prefixes[prefix] = ns
	}
	return pm, nil
}

// Bind adds or replaces a prefix binding.
func (pm *PrefixMap) Bind(prefix, namespace string) {
	pm.prefixes[prefix] = namespace
}

// Namespace returns the base IRI bound to prefix, or "" when unbound.
func (pm *PrefixMap) Namespace(prefix string) string {
	return pm.prefixes[prefix]
}

// Prefixes returns the bound prefixes in sorted order. Sorting keeps
// @context emission deterministic across runs.
func (pm *PrefixMap) Prefixes() []string {
	keys := make([]string, 0, len(pm.prefixes))
	for k := range pm.prefixes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Compact rewrites iri as a prefixed name when a bound namespace matches.
// IRIs in the base namespace compact to the bare local name, so crate-local
// identifiers stay readable in JSON-LD output. Unmatched IRIs are returned
// unchanged. The longest matching namespace wins.
func (pm *PrefixMap) Compact(iri string) string {
	bestPrefix, bestNS := "", ""
	for prefix, ns := range pm.prefixes {
		if strings.HasPrefix(iri, ns) && len(ns) > len(bestNS) {
			bestPrefix, bestNS = prefix, ns
		}
	}
	if bestNS == "" || len(iri) == len(bestNS) {
		return iri
	}
	local := iri[len(bestNS):]
	if bestPrefix == "base" {
		return local
	}
	return bestPrefix + ":" + local
}

// Expand resolves a prefixed name or bare local name back to a full IRI.
// Bare names resolve against the base namespace; full IRIs pass through.
func (pm *PrefixMap) Expand(name string) string {
	if strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") {
		return name
	}
	if i := strings.Index(name, ":"); i > 0 {
		if ns, ok := pm.prefixes[name[:i]]; ok {
			return ns + name[i+1:]
		}
		return name
	}
	return pm.prefixes["base"] + name
}

// Local strips the namespace from an IRI or prefixed name, returning the
// local identifier.
func Local(name string) string {
	if i := strings.LastIndexAny(name, "#/"); i >= 0 && i < len(name)-1 {
		return name[i+1:]
	}
	if i := strings.Index(name, ":"); i > 0 && !strings.HasPrefix(name, "http") {
		return name[i+1:]
	}
	return name
}
