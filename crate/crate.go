package crate

import (
	"fmt"
	"log/slog"

	"github.com/c360studio/semcrate/check"
	"github.com/c360studio/semcrate/codec"
	"github.com/c360studio/semcrate/entity"
	"github.com/c360studio/semcrate/graph"
	"github.com/c360studio/semcrate/schema"
	"github.com/c360studio/semcrate/vocabulary"
)

const (
	// RootID is the node id of the crate root Dataset.
	RootID = "./"

	// MetadataDescriptorID is the node id of the metadata descriptor.
	MetadataDescriptorID = "ro-crate-metadata.json"

	// ROCrateProfile is the specification version the descriptor declares
	// conformance to.
	ROCrateProfile = "https://w3id.org/ro/crate/1.1"

	// fileClass is the @type of file description nodes.
	fileClass = "File"
)

// Crate is one build session: declared types, standalone definitions,
// resolved entries, and file descriptors, serialized together as a JSON-LD
// document. Not safe for concurrent use.
type Crate struct {
	logger   *slog.Logger
	registry *schema.Registry
	resolver *entity.Resolver
	prefixes *vocabulary.PrefixMap

	properties []*schema.TypeProperty
	propIndex  map[string]int

	restrictions []*schema.Restriction
	restrIndex   map[string]int

	files     []FileDescriptor
	fileIndex map[string]int
}

// New creates an empty crate. A nil logger falls back to slog.Default.
func New(logger *slog.Logger) *Crate {
	if logger == nil {
		logger = slog.Default()
	}
	return &Crate{
		logger:     logger,
		registry:   schema.NewRegistry(),
		resolver:   entity.NewResolver(logger),
		prefixes:   vocabulary.DefaultPrefixes(),
		propIndex:  make(map[string]int),
		restrIndex: make(map[string]int),
		fileIndex:  make(map[string]int),
	}
}

// Registry exposes the crate's type registry.
func (c *Crate) Registry() *schema.Registry {
	return c.registry
}

// Prefixes exposes the crate's prefix map for additional bindings.
func (c *Crate) Prefixes() *vocabulary.PrefixMap {
	return c.prefixes
}

// RegisterType declares a type. Re-registering an id overwrites the
// previous definition.
func (c *Crate) RegisterType(t *schema.Type) {
	c.registry.Register(t)
	c.logger.Debug("Registered type", slog.String("id", t.ID))
}

// AddProperty records a standalone property definition not owned by any
// type. Re-adding an id replaces the previous definition in place.
func (c *Crate) AddProperty(p *schema.TypeProperty) {
	if i, ok := c.propIndex[p.ID]; ok {
		c.properties[i] = p
		return
	}
	c.propIndex[p.ID] = len(c.properties)
	c.properties = append(c.properties, p)
}

// AddRestriction records a standalone restriction. It needs an explicit id
// since no owning type can derive one. Re-adding an id replaces the
// previous definition in place.
func (c *Crate) AddRestriction(r *schema.Restriction) error {
	if r.ID == "" {
		return fmt.Errorf("adding restriction on %q: standalone restrictions need an explicit id", r.Property)
	}
	if err := r.Validate(); err != nil {
		return fmt.Errorf("adding restriction %q: %w", r.ID, err)
	}
	if i, ok := c.restrIndex[r.ID]; ok {
		c.restrictions[i] = r
		return nil
	}
	c.restrIndex[r.ID] = len(c.restrictions)
	c.restrictions = append(c.restrictions, r)
	return nil
}

// AddEntry records an already-resolved entry. An entry with a known id is
// ignored; the first registration wins.
func (c *Crate) AddEntry(e *entity.Entry) *entity.Entry {
	return c.resolver.AddEntry(e)
}

// AddObject extracts the given objects and everything they reference into
// entries, resolving forward references and cycles.
func (c *Crate) AddObject(objects ...entity.Object) ([]*entity.Entry, error) {
	return c.resolver.Resolve(objects...)
}

// Entries returns the resolved entries in registration order.
func (c *Crate) Entries() []*entity.Entry {
	return c.resolver.Entries()
}

// Entry returns the entry with the given id, or nil.
func (c *Crate) Entry(id string) *entity.Entry {
	return c.resolver.Entry(id)
}

// EntriesByClass returns the entries declared with the given class id, in
// registration order.
func (c *Crate) EntriesByClass(classID string) []*entity.Entry {
	var out []*entity.Entry
	for _, e := range c.resolver.Entries() {
		if e.ClassID == classID {
			out = append(out, e)
		}
	}
	return out
}

// AddFile records a file descriptor. Re-adding a path replaces the
// previous descriptor.
func (c *Crate) AddFile(path, mediaType, description string) {
	d := FileDescriptor{Path: path, MediaType: mediaType, Description: description}
	if i, ok := c.fileIndex[path]; ok {
		c.files[i] = d
		return
	}
	c.fileIndex[path] = len(c.files)
	c.files = append(c.files, d)
	c.logger.Debug("Added file descriptor", slog.String("path", path))
}

// Files returns the recorded file descriptors in registration order.
func (c *Crate) Files() []FileDescriptor {
	return c.files
}

// Validate runs the cardinality and reference checks over the crate's
// entries.
func (c *Crate) Validate() *check.Report {
	return check.Validate(c.registry, c.Entries())
}

// BuildGraph merges every declared definition and entry into one
// deduplicated triple list: types first, then standalone properties and
// restrictions, then entries.
func (c *Crate) BuildGraph() []graph.Triple {
	b := graph.NewBuilder()
	for _, t := range c.registry.List() {
		b.Add(t)
	}
	for _, p := range c.properties {
		b.Add(p)
	}
	for _, r := range c.restrictions {
		b.Add(r)
	}
	for _, e := range c.Entries() {
		b.Add(e)
	}
	return b.Triples()
}

// ToDocument serializes the crate as a JSON-LD document. The graph opens
// with the metadata descriptor, the root Dataset listing the attached
// files, and one File node per descriptor, followed by the schema and
// entry nodes.
func (c *Crate) ToDocument() (*codec.Document, error) {
	doc, err := codec.Encode(c.BuildGraph(), c.prefixes)
	if err != nil {
		return nil, err
	}
	doc.Graph = append(c.preamble(), doc.Graph...)
	return doc, nil
}

func (c *Crate) preamble() []*codec.Node {
	pm := c.prefixes

	descriptor := codec.NewNode(MetadataDescriptorID)
	descriptor.Set("@type", pm.Compact(vocabulary.SchemaCreativeWork))
	descriptor.Set("conformsTo", map[string]any{"@id": ROCrateProfile})
	descriptor.Set(pm.Compact(vocabulary.SchemaAbout), map[string]any{"@id": RootID})

	root := codec.NewNode(RootID)
	root.Set("@type", pm.Compact(vocabulary.SchemaDataset))
	for _, f := range c.files {
		root.Add(pm.Compact(vocabulary.SchemaHasPart), map[string]any{"@id": f.Path})
	}

	nodes := []*codec.Node{descriptor, root}
	for _, f := range c.files {
		n := codec.NewNode(f.Path)
		n.Set("@type", fileClass)
		if f.MediaType != "" {
			n.Set(pm.Compact(vocabulary.SchemaEncodingFormat), f.MediaType)
		}
		if f.Description != "" {
			n.Set(pm.Compact(vocabulary.SchemaDescription), f.Description)
		}
		nodes = append(nodes, n)
	}
	return nodes
}

// FromDocument reconstructs a crate from a parsed document. Decoded types
// register under their ids, standalone definitions are re-added, and
// File-classed entries lift back into file descriptors; everything else
// becomes an entry. A nil logger falls back to slog.Default.
func FromDocument(doc *codec.Document, logger *slog.Logger) (*Crate, error) {
	res, err := codec.Decode(doc)
	if err != nil {
		return nil, err
	}

	c := New(logger)
	c.prefixes = res.Prefixes

	for _, t := range res.Types {
		c.RegisterType(t)
	}
	for _, p := range res.Properties {
		c.AddProperty(p)
	}
	for _, r := range res.Restrictions {
		if err := c.AddRestriction(r); err != nil {
			return nil, err
		}
	}
	for _, e := range res.Entries {
		if e.ClassID == fileClass {
			mediaType, _ := e.Property(vocabulary.Local(vocabulary.SchemaEncodingFormat))
			description, _ := e.Property(vocabulary.Local(vocabulary.SchemaDescription))
			c.AddFile(e.ID, asString(mediaType), asString(description))
			continue
		}
		c.AddEntry(e)
	}
	return c, nil
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
