package jsonparse_test

import (
	"testing"

	"github.com/fivetwenty-io/jira-client/internal/jsonparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type named struct {
	Name string
}

var namedDecoder = jsonparse.ObjectDecoder(func(node jsonparse.Node) (named, error) {
	name, err := jsonparse.RequiredString(node, "name")
	if err != nil {
		return named{}, err
	}

	return named{Name: name}, nil
})

func TestDecoder_DecodeBodyByKind(t *testing.T) {
	t.Parallel()

	value, err := namedDecoder.DecodeBody([]byte(`{"name": "a"}`))
	require.NoError(t, err)
	assert.Equal(t, named{Name: "a"}, value)

	_, err = namedDecoder.DecodeBody([]byte(`[{"name": "a"}]`))
	requireDecodeError(t, err, "$")

	collection := jsonparse.CollectionOf(namedDecoder)
	assert.Equal(t, jsonparse.KindArray, collection.Kind())
	assert.Equal(t, jsonparse.KindObject, namedDecoder.Kind())

	values, err := collection.DecodeBody([]byte(`[{"name": "a"}, {"name": "b"}]`))
	require.NoError(t, err)
	assert.Equal(t, []named{{Name: "a"}, {Name: "b"}}, values)

	_, err = collection.DecodeBody([]byte(`{"name": "a"}`))
	requireDecodeError(t, err, "$")
}

func TestCollection_OneBadElementFailsAll(t *testing.T) {
	t.Parallel()

	_, err := jsonparse.CollectionOf(namedDecoder).DecodeBody([]byte(`[{"name": "a"}, {}, {"name": "c"}]`))
	requireDecodeError(t, err, "$[1].name")
}

func TestDecodeArray(t *testing.T) {
	t.Parallel()

	node := mustParse(t, `{"versions": [{"name": "1.0"}], "none": null}`)

	values, err := jsonparse.DecodeArray(node, "versions", namedDecoder)
	require.NoError(t, err)
	assert.Equal(t, []named{{Name: "1.0"}}, values)

	_, err = jsonparse.DecodeArray(node, "none", namedDecoder)
	requireDecodeError(t, err, "$.none")

	optional, err := jsonparse.DecodeOptionalArray(node, "missing", namedDecoder)
	require.NoError(t, err)
	assert.Nil(t, optional)
}

func TestNested(t *testing.T) {
	t.Parallel()

	node := mustParse(t, `{"fields": {"project": {"key": "TST", "archived": false}, "labels": []}, "flat": "x"}`)

	project, err := jsonparse.NestedObject(node, "fields", "project")
	require.NoError(t, err)
	assert.Equal(t, "$.fields.project", project.Path())

	key, err := jsonparse.NestedString(node, "fields", "project", "key")
	require.NoError(t, err)
	assert.Equal(t, "TST", key)

	archived, err := jsonparse.NestedBoolean(node, "fields", "project", "archived")
	require.NoError(t, err)
	assert.False(t, archived)

	_, err = jsonparse.NestedArray(node, "fields", "labels")
	require.NoError(t, err)

	_, err = jsonparse.NestedString(node, "fields", "status", "name")
	requireDecodeError(t, err, "$.fields.status")

	_, err = jsonparse.NestedString(node, "flat", "inner")
	requireDecodeError(t, err, "$.flat")

	_, ok, err := jsonparse.NestedOptionalObject(node, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = jsonparse.NestedOptionalArray(node, "flat")
	requireDecodeError(t, err, "$.flat")
}

func TestDecodeExpandable(t *testing.T) {
	t.Parallel()

	t.Run("empty items means collapsed", func(t *testing.T) {
		t.Parallel()

		property, err := jsonparse.ExpandableOf(namedDecoder).DecodeBody([]byte(`{"size": 3, "items": []}`))
		require.NoError(t, err)
		assert.Equal(t, 3, property.Size)
		assert.False(t, property.IsExpanded())
		assert.Nil(t, property.Items)
	})

	t.Run("materialized items", func(t *testing.T) {
		t.Parallel()

		property, err := jsonparse.ExpandableOf(namedDecoder).DecodeBody(
			[]byte(`{"size": 3, "items": [{"name": "a"}, {"name": "b"}, {"name": "c"}]}`))
		require.NoError(t, err)
		assert.Equal(t, 3, property.Size)
		assert.True(t, property.IsExpanded())
		assert.Len(t, property.Items, 3)
	})

	t.Run("paginated items", func(t *testing.T) {
		t.Parallel()

		property, err := jsonparse.ExpandableOf(namedDecoder).DecodeBody([]byte(`{"size": 10, "items": [{"name": "a"}]}`))
		require.NoError(t, err)
		assert.Equal(t, 10, property.Size)
		assert.Len(t, property.Items, 1)
	})

	t.Run("size is required", func(t *testing.T) {
		t.Parallel()

		_, err := jsonparse.ExpandableOf(namedDecoder).DecodeBody([]byte(`{"items": []}`))
		requireDecodeError(t, err, "$.size")
	})

	t.Run("items is required", func(t *testing.T) {
		t.Parallel()

		_, err := jsonparse.ExpandableOf(namedDecoder).DecodeBody([]byte(`{"size": 1}`))
		requireDecodeError(t, err, "$.items")
	})
}
