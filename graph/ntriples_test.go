package graph_test

import (
	"strings"
	"testing"
	"time"

	"github.com/c360studio/semcrate/graph"
	"github.com/c360studio/semcrate/vocabulary"
)

func TestNTriples(t *testing.T) {
	triples := []graph.Triple{
		{
			Subject:   graph.IRI("http://example.com/sarah"),
			Predicate: graph.IRI(vocabulary.RdfType),
			Object:    graph.IRI("http://example.com/Person"),
		},
		{
			Subject:   graph.IRI("http://example.com/sarah"),
			Predicate: graph.IRI(vocabulary.SchemaName),
			Object:    graph.NewLiteral("Sarah"),
		},
		{
			Subject:   graph.IRI("http://example.com/sarah"),
			Predicate: graph.IRI("http://example.com/age"),
			Object:    graph.NewLiteral(34),
		},
	}

	out := graph.NTriples(triples)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 statements, got %d:\n%s", len(lines), out)
	}

	if !strings.Contains(out, "<http://example.com/sarah> <"+vocabulary.RdfType+"> <http://example.com/Person> .") {
		t.Errorf("missing class assertion:\n%s", out)
	}
	if !strings.Contains(out, `"Sarah"`) {
		t.Errorf("missing name literal:\n%s", out)
	}
	if strings.Contains(lines[1], "^^") {
		t.Errorf("xsd:string literals should carry no datatype suffix:\n%s", out)
	}
	for _, line := range lines {
		if !strings.HasSuffix(line, " .") {
			t.Errorf("statement missing terminator: %s", line)
		}
	}
	if !strings.Contains(out, vocabulary.XSDInteger) {
		t.Errorf("integer literal should carry its datatype:\n%s", out)
	}
}

func TestNTriples_EscapesLiterals(t *testing.T) {
	triples := []graph.Triple{
		{
			Subject:   graph.IRI("http://example.com/note-1"),
			Predicate: graph.IRI(vocabulary.SchemaDescription),
			Object:    graph.NewLiteral("line one\nline \"two\" \\ end"),
		},
	}

	out := graph.NTriples(triples)

	if strings.Count(out, "\n") != 1 {
		t.Errorf("newline in literal must be escaped:\n%s", out)
	}
	for _, escaped := range []string{`\n`, `\"`, `\\`} {
		if !strings.Contains(out, escaped) {
			t.Errorf("expected escape sequence %s in output:\n%s", escaped, out)
		}
	}
}

func TestNTriples_DateTime(t *testing.T) {
	ts := time.Date(1991, 4, 12, 8, 30, 0, 0, time.UTC)
	triples := []graph.Triple{
		{
			Subject:   graph.IRI("http://example.com/sarah"),
			Predicate: graph.IRI("http://example.com/born"),
			Object:    graph.NewLiteral(ts),
		},
	}

	out := graph.NTriples(triples)

	if !strings.Contains(out, "1991-04-12T08:30:00Z") {
		t.Errorf("expected RFC 3339 lexical form:\n%s", out)
	}
	if !strings.Contains(out, vocabulary.XSDDateTime) {
		t.Errorf("expected xsd:dateTime datatype:\n%s", out)
	}
}

func TestNTriples_Deterministic(t *testing.T) {
	triples := []graph.Triple{
		{Subject: "http://example.com/a", Predicate: "http://example.com/p", Object: graph.NewLiteral("x")},
		{Subject: "http://example.com/b", Predicate: "http://example.com/p", Object: graph.NewLiteral(true)},
	}

	if graph.NTriples(triples) != graph.NTriples(triples) {
		t.Error("identical input must serialize identically")
	}
}
