package check_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semcrate/check"
	"github.com/c360studio/semcrate/entity"
	"github.com/c360studio/semcrate/schema"
	"github.com/c360studio/semcrate/vocabulary"
)

func personRegistry(t *testing.T) *schema.Registry {
	t.Helper()
	typ, err := schema.TypeTemplate{
		ID: "Person",
		Fields: []schema.FieldSpec{
			{Name: "name", Datatype: vocabulary.XSDString, Required: true},
			{Name: "email", Datatype: vocabulary.XSDString},
			{Name: "colleagues", TypeRef: "Person", List: true},
		},
	}.Build()
	require.NoError(t, err)

	reg := schema.NewRegistry()
	reg.Register(typ)
	return reg
}

func TestValidate_CleanEntries(t *testing.T) {
	sarah := &entity.Entry{ID: "sarah", ClassID: "Person"}
	sarah.SetProperty("name", "Sarah")
	sarah.AddReference("colleagues", []string{"marcus"}, true)

	marcus := &entity.Entry{ID: "marcus", ClassID: "Person"}
	marcus.SetProperty("name", "Marcus")

	report := check.Validate(personRegistry(t), []*entity.Entry{sarah, marcus})
	assert.True(t, report.OK())
}

func TestValidate_MissingRequiredProperty(t *testing.T) {
	e := &entity.Entry{ID: "anon", ClassID: "Person"}
	e.SetProperty("email", "anon@example.org")

	report := check.Validate(personRegistry(t), []*entity.Entry{e})

	require.Len(t, report.Violations, 1)
	v := report.Violations[0]
	assert.Equal(t, "anon", v.EntryID)
	assert.Equal(t, "name", v.Property)
	assert.Equal(t, 0, v.Count)
	assert.Equal(t, 1, v.Min)
	assert.Contains(t, v.String(), "at least 1 required")
}

func TestValidate_TooManyValues(t *testing.T) {
	// Two references under a max-1 property.
	e := &entity.Entry{ID: "sarah", ClassID: "Person"}
	e.SetProperty("name", "Sarah")
	e.AddReference("email", []string{"a@example.org", "b@example.org"}, true)

	other1 := &entity.Entry{ID: "a@example.org", ClassID: "Person"}
	other1.SetProperty("name", "A")
	other2 := &entity.Entry{ID: "b@example.org", ClassID: "Person"}
	other2.SetProperty("name", "B")

	report := check.Validate(personRegistry(t), []*entity.Entry{e, other1, other2})

	require.Len(t, report.Violations, 1)
	v := report.Violations[0]
	assert.Equal(t, "email", v.Property)
	assert.Equal(t, 2, v.Count)
	assert.Contains(t, v.String(), "at most 1 allowed")
}

func TestValidate_ListPropertyUnbounded(t *testing.T) {
	e := &entity.Entry{ID: "sarah", ClassID: "Person"}
	e.SetProperty("name", "Sarah")
	e.AddReference("colleagues", []string{"a", "b", "c"}, true)

	team := []*entity.Entry{
		e,
		{ID: "a", ClassID: "Person", Properties: []entity.Property{{Name: "name", Value: "A"}}},
		{ID: "b", ClassID: "Person", Properties: []entity.Property{{Name: "name", Value: "B"}}},
		{ID: "c", ClassID: "Person", Properties: []entity.Property{{Name: "name", Value: "C"}}},
	}

	report := check.Validate(personRegistry(t), team)
	assert.True(t, report.OK())
}

func TestValidate_DanglingReference(t *testing.T) {
	e := &entity.Entry{ID: "sarah", ClassID: "Person"}
	e.SetProperty("name", "Sarah")
	e.AddReference("colleagues", []string{"ghost"}, true)

	report := check.Validate(personRegistry(t), []*entity.Entry{e})

	assert.Empty(t, report.Violations)
	require.Len(t, report.Unresolved, 1)
	u := report.Unresolved[0]
	assert.Equal(t, "sarah", u.EntryID)
	assert.Equal(t, "colleagues", u.Name)
	assert.Equal(t, "ghost", u.TargetID)
}

func TestValidate_ExternalIRIsNotFlagged(t *testing.T) {
	e := &entity.Entry{ID: "sarah", ClassID: "Person"}
	e.SetProperty("name", "Sarah")
	e.AddReference("homepage", []string{"https://example.org/~sarah"}, false)

	report := check.Validate(personRegistry(t), []*entity.Entry{e})
	assert.Empty(t, report.Unresolved)
}

func TestValidate_UnregisteredClassSkipped(t *testing.T) {
	e := &entity.Entry{ID: "artifact-9", ClassID: entity.ClassUnknown}
	e.SetProperty("note", "imported")

	report := check.Validate(personRegistry(t), []*entity.Entry{e})
	assert.True(t, report.OK())
}
