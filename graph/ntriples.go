package graph

import (
	"strings"

	"github.com/c360studio/semcrate/vocabulary"
)

// NTriples serializes the triples in N-Triples format, one statement per
// line in insertion order. Identical triple lists produce byte-identical
// output.
func NTriples(triples []Triple) string {
	var sb strings.Builder

	for _, t := range triples {
		sb.WriteString("<")
		sb.WriteString(string(t.Subject))
		sb.WriteString("> <")
		sb.WriteString(string(t.Predicate))
		sb.WriteString("> ")
		sb.WriteString(formatObjectNTriples(t.Object))
		sb.WriteString(" .\n")
	}

	return sb.String()
}

func formatObjectNTriples(obj Term) string {
	switch v := obj.(type) {
	case IRI:
		return "<" + string(v) + ">"
	case Literal:
		lex := escapeString(v.Lexical())
		if v.Datatype == "" || v.Datatype == vocabulary.XSDString {
			return "\"" + lex + "\""
		}
		return "\"" + lex + "\"^^<" + v.Datatype + ">"
	default:
		return "\"" + escapeString(obj.Key()) + "\""
	}
}

// escapeString escapes special characters for N-Triples literal output.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
