package graph_test

import (
	"testing"
	"time"

	"github.com/c360studio/semcrate/graph"
	"github.com/c360studio/semcrate/vocabulary"
)

type staticSource []graph.Triple

func (s staticSource) Triples() []graph.Triple { return s }

func TestBuilder_Deduplicates(t *testing.T) {
	b := graph.NewBuilder()

	shared := graph.Triple{
		Subject:   graph.IRI(vocabulary.BaseNamespace + "name"),
		Predicate: graph.IRI(vocabulary.RdfType),
		Object:    graph.IRI(vocabulary.RdfProperty),
	}
	b.Add(staticSource{shared}, staticSource{shared})

	if b.Len() != 1 {
		t.Errorf("expected 1 distinct triple, got %d", b.Len())
	}
}

func TestBuilder_PreservesOrder(t *testing.T) {
	b := graph.NewBuilder()
	subj := graph.IRI(vocabulary.BaseNamespace + "Person")

	b.AddTriple(graph.Triple{Subject: subj, Predicate: graph.IRI(vocabulary.RdfType), Object: graph.IRI(vocabulary.OwlClass)})
	b.AddTriple(graph.Triple{Subject: subj, Predicate: graph.IRI(vocabulary.RdfsLabel), Object: graph.NewLiteral("Person")})
	b.AddTriple(graph.Triple{Subject: subj, Predicate: graph.IRI(vocabulary.RdfsComment), Object: graph.NewLiteral("A person")})

	triples := b.Triples()
	if len(triples) != 3 {
		t.Fatalf("expected 3 triples, got %d", len(triples))
	}
	if triples[0].Predicate != graph.IRI(vocabulary.RdfType) {
		t.Error("first triple should be the type assertion")
	}
	if triples[2].Predicate != graph.IRI(vocabulary.RdfsComment) {
		t.Error("third triple should be the comment")
	}
}

func TestNewLiteral_Datatypes(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    string
		lexical string
	}{
		{"string", "Alice", vocabulary.XSDString, "Alice"},
		{"int widened", 7, vocabulary.XSDInteger, "7"},
		{"int64", int64(7), vocabulary.XSDInteger, "7"},
		{"float", 2.5, vocabulary.XSDDouble, "2.5"},
		{"bool", true, vocabulary.XSDBoolean, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lit := graph.NewLiteral(tt.value)
			if lit.Datatype != tt.want {
				t.Errorf("datatype = %s, want %s", lit.Datatype, tt.want)
			}
			if lit.Lexical() != tt.lexical {
				t.Errorf("lexical = %s, want %s", lit.Lexical(), tt.lexical)
			}
		})
	}
}

func TestNewLiteral_DateTime(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	lit := graph.NewLiteral(ts)

	if lit.Datatype != vocabulary.XSDDateTime {
		t.Errorf("datatype = %s, want xsd:dateTime", lit.Datatype)
	}
	if lit.Lexical() != "2024-03-01T12:00:00Z" {
		t.Errorf("lexical = %s", lit.Lexical())
	}
}
