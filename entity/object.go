package entity

// Object is the narrow extraction contract any modeling front-end
// implements to feed instances into the resolver. The graph engine depends
// on this contract only, never on how model types are authored.
type Object interface {
	// Identity returns the stable identifier of this object. It must be
	// derivable deterministically; returning an empty id or an error makes
	// resolution fail with IdentityMissing.
	Identity() (string, error)

	// ClassID returns the id of the declared Type this object instantiates.
	ClassID() string

	// Fields returns the object's fields in declared order.
	Fields() []Field
}

// Field is one extracted field: either a literal value or a reference to
// other objects. A field with neither a value nor referenced objects is
// skipped.
type Field struct {
	// Name is the field name, matching the declared property id.
	Name string

	// Value is the literal value for literal fields: string, int, int64,
	// float64, bool, or time.Time.
	Value any

	// Refs holds the referenced objects for reference fields.
	Refs []Object

	// List marks a reference field as list-valued.
	List bool
}
