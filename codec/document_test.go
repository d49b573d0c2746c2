package codec_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semcrate/codec"
)

func TestNode_KeyOrderPreserved(t *testing.T) {
	n := codec.NewNode("sarah")
	n.Set("@type", "Person")
	n.Set("name", "Sarah")
	n.Set("age", int64(34))

	data, err := json.Marshal(n)
	require.NoError(t, err)
	assert.Equal(t, `{"@id":"sarah","@type":"Person","name":"Sarah","age":34}`, string(data))
}

func TestNode_UnmarshalPreservesOrderAndNumbers(t *testing.T) {
	raw := `{"@id":"x","zeta":1,"alpha":2.5,"flag":true}`

	var n codec.Node
	require.NoError(t, json.Unmarshal([]byte(raw), &n))

	assert.Equal(t, []string{"@id", "zeta", "alpha", "flag"}, n.Keys())

	zeta, _ := n.Get("zeta")
	num, ok := zeta.(json.Number)
	require.True(t, ok, "numbers decode as json.Number")
	assert.Equal(t, "1", num.String())

	// Round trip is byte-stable.
	data, err := json.Marshal(&n)
	require.NoError(t, err)
	assert.Equal(t, raw, string(data))
}

func TestNode_Add(t *testing.T) {
	n := codec.NewNode("x")
	n.Add("rdfs:subClassOf", map[string]any{"@id": "schema:Thing"})
	n.Add("rdfs:subClassOf", map[string]any{"@id": "r1"})

	v, ok := n.Get("rdfs:subClassOf")
	require.True(t, ok)
	list, isList := v.([]any)
	require.True(t, isList, "second value converts the entry to an array")
	assert.Len(t, list, 2)
}

func TestNode_Types(t *testing.T) {
	single := codec.NewNode("a")
	single.Set("@type", "Person")
	assert.Equal(t, []string{"Person"}, single.Types())

	multi := codec.NewNode("b")
	multi.Set("@type", []any{"Person", "Agent"})
	assert.Equal(t, []string{"Person", "Agent"}, multi.Types())

	none := codec.NewNode("c")
	assert.Nil(t, none.Types())
}

func TestParseDocument(t *testing.T) {
	raw := `{
	  "@context": {"base": "http://example.com/"},
	  "@graph": [
	    {"@id": "p1", "@type": "Person", "name": "Alice"}
	  ]
	}`

	doc, err := codec.ParseDocument([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/", doc.Context["base"])
	require.Len(t, doc.Graph, 1)
	assert.Equal(t, "p1", doc.Graph[0].ID())
}

func TestParseDocument_Invalid(t *testing.T) {
	_, err := codec.ParseDocument([]byte(`{"@graph": [`))
	assert.Error(t, err)
}

func TestDocument_BytesDeterministic(t *testing.T) {
	build := func() []byte {
		n := codec.NewNode("p1")
		n.Set("@type", "Person")
		n.Set("name", "Alice")
		doc := &codec.Document{
			Context: map[string]any{"zz": "http://z.example/", "aa": "http://a.example/"},
			Graph:   []*codec.Node{n},
		}
		data, err := doc.Bytes()
		require.NoError(t, err)
		return data
	}

	assert.Equal(t, build(), build(), "identical documents serialize byte-identically")
}
