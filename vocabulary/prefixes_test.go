package vocabulary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPrefixes(t *testing.T) {
	pm := DefaultPrefixes()

	assert.Equal(t, RDFSNamespace, pm.Namespace("rdfs"))
	assert.Equal(t, BaseNamespace, pm.Namespace("base"))
	assert.Equal(t, "", pm.Namespace("unknown"))
}

func TestParsePrefixes(t *testing.T) {
	t.Run("layered on defaults", func(t *testing.T) {
		pm, err := ParsePrefixes([]byte("prefixes:\n  obis: http://openbis.org/\n"))
		require.NoError(t, err)

		assert.Equal(t, "http://openbis.org/", pm.Namespace("obis"))
		assert.Equal(t, OWLNamespace, pm.Namespace("owl"))
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := ParsePrefixes([]byte("prefixes: [not a map"))
		assert.Error(t, err)
	})

	t.Run("empty prefix rejected", func(t *testing.T) {
		_, err := ParsePrefixes([]byte("prefixes:\n  \"\": http://example.org/\n"))
		assert.Error(t, err)
	})
}

func TestPrefixMap_Compact(t *testing.T) {
	pm := DefaultPrefixes()

	tests := []struct {
		name string
		iri  string
		want string
	}{
		{"rdfs term", RdfsLabel, "rdfs:label"},
		{"owl term", OwlMinCardinality, "owl:minCardinality"},
		{"xsd datatype", XSDString, "xsd:string"},
		{"base local name", BaseNamespace + "Person", "Person"},
		{"unbound namespace", "https://other.org/thing", "https://other.org/thing"},
		{"bare namespace passes through", RDFSNamespace, RDFSNamespace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pm.Compact(tt.iri))
		})
	}
}

func TestPrefixMap_Expand(t *testing.T) {
	pm := DefaultPrefixes()

	assert.Equal(t, RdfsLabel, pm.Expand("rdfs:label"))
	assert.Equal(t, BaseNamespace+"Person", pm.Expand("Person"))
	assert.Equal(t, "https://schema.org/name", pm.Expand("schema:name"))
	assert.Equal(t, "https://other.org/x", pm.Expand("https://other.org/x"))
	assert.Equal(t, "unknown:x", pm.Expand("unknown:x"))
}

func TestPrefixMap_RoundTrip(t *testing.T) {
	pm := DefaultPrefixes()
	pm.Bind("lab", "https://lab.example.org/vocab/")

	iris := []string{
		RdfsComment,
		OwlOnProperty,
		BaseNamespace + "colleagues",
		"https://lab.example.org/vocab/sampleOf",
	}
	for _, iri := range iris {
		assert.Equal(t, iri, pm.Expand(pm.Compact(iri)))
	}
}

func TestPrefixMap_PrefixesSorted(t *testing.T) {
	pm := DefaultPrefixes()
	pm.Bind("aaa", "https://aaa.example.org/")

	keys := pm.Prefixes()
	require.NotEmpty(t, keys)
	assert.Equal(t, "aaa", keys[0])
	for i := 1; i < len(keys); i++ {
		assert.Less(t, keys[i-1], keys[i])
	}
}

func TestDatatypeFor(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "Alice", XSDString},
		{"int", 42, XSDInteger},
		{"int64", int64(42), XSDInteger},
		{"float", 3.14, XSDDouble},
		{"bool", true, XSDBoolean},
		{"time", time.Now(), XSDDateTime},
		{"unknown kind", struct{}{}, XSDString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DatatypeFor(tt.value))
		})
	}
}

func TestLocal(t *testing.T) {
	assert.Equal(t, "Person", Local(BaseNamespace+"Person"))
	assert.Equal(t, "label", Local("rdfs:label"))
	assert.Equal(t, "dateTime", Local(XSDDateTime))
	assert.Equal(t, "name", Local("name"))
}
