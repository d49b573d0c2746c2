package codec

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/c360studio/semcrate/entity"
	"github.com/c360studio/semcrate/schema"
	"github.com/c360studio/semcrate/vocabulary"
)

// Result holds the collections parsed from a JSON-LD document. Properties
// and Restrictions list the standalone definitions not attached to any
// type; type-owned ones are reachable through Types.
type Result struct {
	Types        []*schema.Type
	Properties   []*schema.TypeProperty
	Restrictions []*schema.Restriction
	Entries      []*entity.Entry
	Prefixes     *vocabulary.PrefixMap
}

// Decode parses a JSON-LD document back into schema and entry collections.
// Nodes are classified by @type; the RO-Crate structural nodes "./" and
// "ro-crate-metadata.json" are skipped. A node without @id aborts the
// import with a MalformedDocumentError.
func Decode(doc *Document) (*Result, error) {
	pm := contextPrefixes(doc)

	var classNodes, propertyNodes, restrictionNodes, entryNodes []*Node
	for i, node := range doc.Graph {
		id := node.ID()
		if id == "" {
			return nil, NewMalformedDocumentError("graph node %d has no @id", i)
		}
		if id == "./" || id == "ro-crate-metadata.json" {
			continue
		}

		switch {
		case hasType(node, pm, isClassIRI):
			classNodes = append(classNodes, node)
		case hasType(node, pm, isPropertyIRI):
			propertyNodes = append(propertyNodes, node)
		case hasType(node, pm, isRestrictionIRI):
			restrictionNodes = append(restrictionNodes, node)
		default:
			entryNodes = append(entryNodes, node)
		}
	}

	properties := make([]*schema.TypeProperty, 0, len(propertyNodes))
	propByID := make(map[string]*schema.TypeProperty)
	for _, node := range propertyNodes {
		p := decodeProperty(node, pm)
		properties = append(properties, p)
		propByID[p.ID] = p
	}

	restrictions := make([]*schema.Restriction, 0, len(restrictionNodes))
	restrByID := make(map[string]*schema.Restriction)
	for _, node := range restrictionNodes {
		r, err := decodeRestriction(node, pm)
		if err != nil {
			return nil, err
		}
		restrictions = append(restrictions, r)
		restrByID[r.ID] = r
	}

	types := make([]*schema.Type, 0, len(classNodes))
	linkedProps := make(map[string]bool)
	ownedRestrs := make(map[string]bool)
	for _, node := range classNodes {
		t := decodeType(node, pm, properties, propByID, restrByID, linkedProps, ownedRestrs)
		types = append(types, t)
	}

	entries := make([]*entity.Entry, 0, len(entryNodes))
	for _, node := range entryNodes {
		entries = append(entries, decodeEntry(node, pm))
	}

	result := &Result{Types: types, Entries: entries, Prefixes: pm}
	for _, p := range properties {
		if !linkedProps[p.ID] {
			result.Properties = append(result.Properties, p)
		}
	}
	for _, r := range restrictions {
		if !ownedRestrs[r.ID] {
			result.Restrictions = append(result.Restrictions, r)
		}
	}
	return result, nil
}

// contextPrefixes layers the document's @context prefix bindings on top of
// the default map.
func contextPrefixes(doc *Document) *vocabulary.PrefixMap {
	pm := vocabulary.DefaultPrefixes()
	for prefix, v := range doc.Context {
		if ns, ok := v.(string); ok && !strings.HasPrefix(prefix, "@") {
			pm.Bind(prefix, ns)
		}
	}
	return pm
}

func hasType(node *Node, pm *vocabulary.PrefixMap, match func(string) bool) bool {
	for _, t := range node.Types() {
		if match(pm.Expand(t)) {
			return true
		}
	}
	return false
}

// Schema nodes are recognized by their exact vocabulary IRIs. A crate-local
// class that happens to be named Class, Property, or Restriction stays a
// metadata entry.
func isClassIRI(iri string) bool {
	return iri == vocabulary.OwlClass || iri == vocabulary.RdfsClass
}

func isPropertyIRI(iri string) bool {
	return iri == vocabulary.RdfProperty
}

func isRestrictionIRI(iri string) bool {
	return iri == vocabulary.OwlRestriction
}

// normalizeRef expands a compacted id and strips the base namespace, so
// crate-local references come back as bare local ids while external IRIs
// stay fully expanded.
func normalizeRef(pm *vocabulary.PrefixMap, raw string) string {
	expanded := pm.Expand(raw)
	base := pm.Namespace("base")
	if base != "" && strings.HasPrefix(expanded, base) && len(expanded) > len(base) {
		return expanded[len(base):]
	}
	return expanded
}

// stringValue reads a plain string value stored under the given predicate
// IRI, trying every key on the node whose expansion matches.
func stringValue(node *Node, pm *vocabulary.PrefixMap, predicate string) string {
	for _, key := range node.Keys() {
		if pm.Expand(key) != predicate {
			continue
		}
		if v, ok := node.Get(key); ok {
			if s, isString := v.(string); isString {
				return s
			}
		}
	}
	return ""
}

// refValues reads the id references stored under the given predicate IRI,
// accepting a single @id object, a list, or a plain string.
func refValues(node *Node, pm *vocabulary.PrefixMap, predicate string) []string {
	for _, key := range node.Keys() {
		if pm.Expand(key) != predicate {
			continue
		}
		v, _ := node.Get(key)
		return refIDs(v, pm)
	}
	return nil
}

func refIDs(value any, pm *vocabulary.PrefixMap) []string {
	switch v := value.(type) {
	case map[string]any:
		if id, ok := v["@id"].(string); ok {
			return []string{normalizeRef(pm, id)}
		}
	case []any:
		var ids []string
		for _, item := range v {
			ids = append(ids, refIDs(item, pm)...)
		}
		return ids
	case string:
		return []string{normalizeRef(pm, v)}
	}
	return nil
}

// intValue reads an integer stored under the given predicate IRI. Returns
// (0, false) when absent or not numeric.
func intValue(node *Node, pm *vocabulary.PrefixMap, predicate string) (int, bool) {
	for _, key := range node.Keys() {
		if pm.Expand(key) != predicate {
			continue
		}
		v, _ := node.Get(key)
		switch n := v.(type) {
		case json.Number:
			if i, err := n.Int64(); err == nil {
				return int(i), true
			}
		case float64:
			return int(n), true
		case int64:
			return int(n), true
		}
	}
	return 0, false
}

func decodeProperty(node *Node, pm *vocabulary.PrefixMap) *schema.TypeProperty {
	return &schema.TypeProperty{
		ID:          normalizeRef(pm, node.ID()),
		Label:       stringValue(node, pm, vocabulary.RdfsLabel),
		Comment:     stringValue(node, pm, vocabulary.RdfsComment),
		Domain:      refValues(node, pm, vocabulary.RdfsDomain),
		Range:       refValues(node, pm, vocabulary.RdfsRange),
		Annotations: refValues(node, pm, vocabulary.OwlEquivalentProperty),
	}
}

func decodeRestriction(node *Node, pm *vocabulary.PrefixMap) (*schema.Restriction, error) {
	onProp := refValues(node, pm, vocabulary.OwlOnProperty)
	if len(onProp) == 0 {
		return nil, NewMalformedDocumentError("restriction %q has no owl:onProperty", node.ID())
	}

	r := &schema.Restriction{
		ID:       normalizeRef(pm, node.ID()),
		Property: onProp[0],
	}
	if min, ok := intValue(node, pm, vocabulary.OwlMinCardinality); ok {
		r.Min = min
	}
	if max, ok := intValue(node, pm, vocabulary.OwlMaxCardinality); ok {
		r.Max = schema.MaxCardinality(max)
	}
	return r, nil
}

func decodeType(node *Node, pm *vocabulary.PrefixMap, properties []*schema.TypeProperty,
	propByID map[string]*schema.TypeProperty, restrByID map[string]*schema.Restriction,
	linkedProps, ownedRestrs map[string]bool) *schema.Type {

	t := &schema.Type{
		ID:          normalizeRef(pm, node.ID()),
		Label:       stringValue(node, pm, vocabulary.RdfsLabel),
		Comment:     stringValue(node, pm, vocabulary.RdfsComment),
		Annotations: refValues(node, pm, vocabulary.OwlEquivalentClass),
	}

	// rdfs:subClassOf carries both parent classes and restriction links;
	// ids that resolve to restriction nodes are owned restrictions.
	for _, ref := range refValues(node, pm, vocabulary.RdfsSubClassOf) {
		if r, ok := restrByID[ref]; ok {
			t.Restrictions = append(t.Restrictions, r)
			ownedRestrs[ref] = true
			if p, found := propByID[r.Property]; found {
				cp := *p
				cp.Required = r.Min > 0
				t.Properties = append(t.Properties, &cp)
				linkedProps[p.ID] = true
			}
			continue
		}
		t.SubClassOf = append(t.SubClassOf, ref)
	}

	// Fallback for properties declared via rdfs:domain without a
	// restriction link. Walks the ordered slice so re-export stays
	// deterministic.
	for _, p := range properties {
		if linkedProps[p.ID] || t.Property(p.ID) != nil {
			continue
		}
		for _, d := range p.Domain {
			if d == t.ID {
				cp := *p
				cp.Required = false
				t.Properties = append(t.Properties, &cp)
				linkedProps[p.ID] = true
				break
			}
		}
	}

	return t
}

func decodeEntry(node *Node, pm *vocabulary.PrefixMap) *entity.Entry {
	classID := entity.ClassUnknown
	if types := node.Types(); len(types) > 0 {
		classID = normalizeRef(pm, types[0])
	}

	e := &entity.Entry{
		ID:      normalizeRef(pm, node.ID()),
		ClassID: classID,
	}

	for _, key := range node.Keys() {
		if key == "@id" || key == "@type" {
			continue
		}
		v, _ := node.Get(key)
		name := vocabulary.Local(key)

		switch value := v.(type) {
		case map[string]any:
			if id, ok := value["@id"].(string); ok {
				e.AddReference(name, []string{normalizeRef(pm, id)}, false)
			} else if lit, ok := decodeTypedLiteral(value, pm); ok {
				e.SetProperty(name, lit)
			}
		case []any:
			var ids []string
			var literals []any
			for _, item := range value {
				if m, isMap := item.(map[string]any); isMap {
					if id, ok := m["@id"].(string); ok {
						ids = append(ids, normalizeRef(pm, id))
						continue
					}
					if lit, ok := decodeTypedLiteral(m, pm); ok {
						literals = append(literals, lit)
						continue
					}
				}
				literals = append(literals, decodeScalar(item))
			}
			if len(ids) > 0 {
				e.AddReference(name, ids, true)
			}
			for _, lit := range literals {
				e.SetProperty(name, lit)
			}
		default:
			e.SetProperty(name, decodeScalar(v))
		}
	}

	return e
}

// decodeTypedLiteral handles expanded @value objects, currently date/time
// literals.
func decodeTypedLiteral(m map[string]any, pm *vocabulary.PrefixMap) (any, bool) {
	raw, ok := m["@value"].(string)
	if !ok {
		return nil, false
	}
	if dt, hasType := m["@type"].(string); hasType && pm.Expand(dt) == vocabulary.XSDDateTime {
		if ts, err := time.Parse(time.RFC3339, raw); err == nil {
			return ts, true
		}
	}
	return raw, true
}

// decodeScalar maps a JSON scalar to the entry value kinds: integers to
// int64, other numbers to float64.
func decodeScalar(v any) any {
	switch n := v.(type) {
	case json.Number:
		if !strings.ContainsAny(n.String(), ".eE") {
			if i, err := n.Int64(); err == nil {
				return i
			}
		}
		if f, err := n.Float64(); err == nil {
			return f
		}
		return n.String()
	default:
		return v
	}
}
