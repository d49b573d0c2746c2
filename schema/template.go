package schema

import (
	"fmt"

	"github.com/c360studio/semcrate/vocabulary"
)

// FieldSpec describes one field of a structured model: its name, semantic
// type, and cardinality flags. Any modeling front-end that can introspect
// its types into ordered FieldSpec lists can drive schema generation.
type FieldSpec struct {
	// Name is the field name, used as the property id.
	Name string

	// Datatype is the XSD datatype IRI for literal-valued fields.
	Datatype string

	// TypeRef is the referenced Type id for object-valued fields. Exactly
	// one of Datatype and TypeRef must be set.
	TypeRef string

	// List marks the field as holding multiple values.
	List bool

	// Required marks the field as mandatory.
	Required bool

	// Ontology is an optional external property IRI this field maps to.
	Ontology string

	// Comment is an optional field description.
	Comment string
}

// TypeTemplate assembles a Type from an ordered field description. Each
// field becomes a TypeProperty plus a cardinality restriction: required
// fields get min 1, list fields are unbounded, single-valued fields get
// max 1.
type TypeTemplate struct {
	ID          string
	Label       string
	Comment     string
	SubClassOf  []string
	Annotations []string
	Fields      []FieldSpec
}

// Build validates the template and constructs the Type.
func (tt TypeTemplate) Build() (*Type, error) {
	if tt.ID == "" {
		return nil, fmt.Errorf("building type template: missing id")
	}

	label := tt.Label
	if label == "" {
		label = tt.ID
	}
	parents := tt.SubClassOf
	if len(parents) == 0 {
		parents = []string{vocabulary.SchemaThing}
	}

	t := &Type{
		ID:          tt.ID,
		Label:       label,
		Comment:     tt.Comment,
		SubClassOf:  parents,
		Annotations: tt.Annotations,
	}

	for _, f := range tt.Fields {
		if f.Name == "" {
			return nil, fmt.Errorf("building type %q: field with empty name", tt.ID)
		}
		if (f.Datatype == "") == (f.TypeRef == "") {
			return nil, fmt.Errorf("building type %q: field %q must set exactly one of datatype or type ref", tt.ID, f.Name)
		}

		rangeEntry := f.Datatype
		if rangeEntry == "" {
			rangeEntry = f.TypeRef
		}

		prop := &TypeProperty{
			ID:       f.Name,
			Label:    f.Name,
			Comment:  f.Comment,
			Domain:   []string{tt.ID},
			Range:    []string{rangeEntry},
			Required: f.Required,
		}
		if f.Ontology != "" {
			prop.Annotations = []string{f.Ontology}
		}
		t.Properties = append(t.Properties, prop)

		restriction := &Restriction{Property: f.Name}
		if f.Required {
			restriction.Min = 1
		}
		if !f.List {
			restriction.Max = MaxCardinality(1)
		}
		if err := restriction.Validate(); err != nil {
			return nil, fmt.Errorf("building type %q: %w", tt.ID, err)
		}
		t.Restrictions = append(t.Restrictions, restriction)
	}

	return t, nil
}
