package vocabulary

// Namespace IRIs for the standard vocabularies.
const (
	// RDFNamespace is the RDF syntax namespace.
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// RDFSNamespace is the RDF Schema namespace.
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"

	// OWLNamespace is the Web Ontology Language namespace.
	OWLNamespace = "http://www.w3.org/2002/07/owl#"

	// XSDNamespace is the XML Schema datatype namespace.
	XSDNamespace = "http://www.w3.org/2001/XMLSchema#"

	// SchemaNamespace is the Schema.org namespace.
	SchemaNamespace = "https://schema.org/"

	// BaseNamespace is the default namespace for crate-local identifiers.
	// Types, properties, and metadata entries declared without an explicit
	// namespace resolve here.
	BaseNamespace = "http://example.com/"
)

// RDF and RDFS term IRIs.
const (
	// RdfType asserts that a resource is an instance of a class.
	RdfType = RDFNamespace + "type"

	// RdfProperty is the class of RDF properties.
	RdfProperty = RDFNamespace + "Property"

	// RdfsClass is the class of RDFS classes. Accepted as a synonym for
	// owl:Class on import.
	RdfsClass = RDFSNamespace + "Class"

	// RdfsLabel provides a human-readable name for a resource.
	RdfsLabel = RDFSNamespace + "label"

	// RdfsComment provides a human-readable description.
	RdfsComment = RDFSNamespace + "comment"

	// RdfsSubClassOf links a class to its parent class or to an owned
	// cardinality restriction node.
	RdfsSubClassOf = RDFSNamespace + "subClassOf"

	// RdfsDomain declares which classes may carry a property.
	RdfsDomain = RDFSNamespace + "domain"

	// RdfsRange declares the allowed value types of a property.
	RdfsRange = RDFSNamespace + "range"
)

// OWL term IRIs.
const (
	// OwlClass is the class of OWL classes.
	OwlClass = OWLNamespace + "Class"

	// OwlRestriction is the class of anonymous cardinality restrictions.
	OwlRestriction = OWLNamespace + "Restriction"

	// OwlOnProperty links a restriction to the property it constrains.
	OwlOnProperty = OWLNamespace + "onProperty"

	// OwlMinCardinality is the minimum occurrence count on a restriction.
	OwlMinCardinality = OWLNamespace + "minCardinality"

	// OwlMaxCardinality is the maximum occurrence count on a restriction.
	OwlMaxCardinality = OWLNamespace + "maxCardinality"

	// OwlEquivalentClass maps a local class to an external ontology class.
	OwlEquivalentClass = OWLNamespace + "equivalentClass"

	// OwlEquivalentProperty maps a local property to an external ontology
	// property.
	OwlEquivalentProperty = OWLNamespace + "equivalentProperty"
)

// Schema.org term IRIs.
const (
	// SchemaThing is the default parent class for declared types.
	SchemaThing = SchemaNamespace + "Thing"

	// SchemaName is the name of an item.
	SchemaName = SchemaNamespace + "name"

	// SchemaDescription describes an item.
	SchemaDescription = SchemaNamespace + "description"

	// SchemaHasPart links a dataset to its constituent files.
	SchemaHasPart = SchemaNamespace + "hasPart"

	// SchemaEncodingFormat is the media type of a file.
	SchemaEncodingFormat = SchemaNamespace + "encodingFormat"

	// SchemaAbout links the metadata descriptor to the dataset it describes.
	SchemaAbout = SchemaNamespace + "about"

	// SchemaDataset is the class of the crate root node.
	SchemaDataset = SchemaNamespace + "Dataset"

	// SchemaCreativeWork is the class of the metadata descriptor node.
	SchemaCreativeWork = SchemaNamespace + "CreativeWork"
)
