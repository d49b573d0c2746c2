package vocabulary

import "time"

// XSD datatype IRIs for literal values.
const (
	// XSDString is the string datatype.
	XSDString = XSDNamespace + "string"

	// XSDInteger is the arbitrary-precision integer datatype.
	XSDInteger = XSDNamespace + "integer"

	// XSDDouble is the 64-bit floating point datatype.
	XSDDouble = XSDNamespace + "double"

	// XSDDecimal is the arbitrary-precision decimal datatype.
	XSDDecimal = XSDNamespace + "decimal"

	// XSDBoolean is the boolean datatype.
	XSDBoolean = XSDNamespace + "boolean"

	// XSDDateTime is the ISO-8601 date/time datatype.
	XSDDateTime = XSDNamespace + "dateTime"

	// XSDDate is the ISO-8601 date datatype.
	XSDDate = XSDNamespace + "date"
)

// DatatypeFor returns the XSD datatype IRI for a literal value based on its
// Go kind. Unknown kinds default to xsd:string, matching how unrecognized
// values are serialized.
func DatatypeFor(value any) string {
	switch value.(type) {
	case string:
		return XSDString
	case int, int32, int64:
		return XSDInteger
	case float32, float64:
		return XSDDouble
	case bool:
		return XSDBoolean
	case time.Time:
		return XSDDateTime
	default:
		return XSDString
	}
}

// IsXSDDatatype reports whether iri names an XSD datatype. Used to decide
// whether a property range entry is a literal datatype or a type reference.
func IsXSDDatatype(iri string) bool {
	return len(iri) > len(XSDNamespace) && iri[:len(XSDNamespace)] == XSDNamespace
}
