package graph

// Builder merges triples from schema definitions and resolved metadata
// entries into one deterministic collection. Repeated triples (shared type
// references, properties declared on several classes) are emitted once, at
// their first occurrence. Not safe for concurrent use; one Builder per
// build session.
type Builder struct {
	triples []Triple
	seen    map[string]struct{}
}

// NewBuilder creates an empty graph builder.
func NewBuilder() *Builder {
	return &Builder{
		seen: make(map[string]struct{}),
	}
}

// Add merges all triples from each source, preserving source order and
// per-source emission order.
func (b *Builder) Add(sources ...TripleSource) {
	for _, src := range sources {
		for _, t := range src.Triples() {
			b.AddTriple(t)
		}
	}
}

// AddTriple appends one triple, dropping exact duplicates.
func (b *Builder) AddTriple(t Triple) {
	key := t.Key()
	if _, ok := b.seen[key]; ok {
		return
	}
	b.seen[key] = struct{}{}
	b.triples = append(b.triples, t)
}

// Triples returns the merged triples in insertion order.
func (b *Builder) Triples() []Triple {
	out := make([]Triple, len(b.triples))
	copy(out, b.triples)
	return out
}

// Len returns the number of distinct triples added so far.
func (b *Builder) Len() int {
	return len(b.triples)
}
