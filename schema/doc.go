// Package schema provides the Type/Property/Restriction model and the
// per-session registry of declared types.
//
// A Type is an RDFS class definition: an identifier, ontological
// annotations, an ordered list of properties, and cardinality restrictions.
// Each schema entity knows how to emit itself as RDF triples, so the graph
// builder can merge schema and instance data without knowing their shape.
//
// Types are built either directly or from a TypeTemplate, the structural
// field-description adapter any modeling front-end can target:
//
//	person, err := schema.TypeTemplate{
//	    ID:      "Person",
//	    Comment: "A research participant",
//	    Fields: []schema.FieldSpec{
//	        {Name: "name", Datatype: vocabulary.XSDString, Required: true},
//	        {Name: "colleagues", TypeRef: "Person", List: true},
//	    },
//	}.Build()
package schema
