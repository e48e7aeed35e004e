package schema_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/schema"
)

func TestError_Leaf(t *testing.T) {
	t.Parallel()

	t.Run("type-check failure is a leaf", func(t *testing.T) {
		res := schema.String().Validate(42)
		require.False(t, res.Success)
		require.NotNil(t, res.Error)
		assert.True(t, res.Error.Leaf())
		assert.Equal(t, "Value must be a string", res.Error.Message)
		assert.Nil(t, res.Error.Fields)
	})

	t.Run("aggregated failure is not a leaf", func(t *testing.T) {
		res := schema.Object(schema.Fields{
			"name": schema.String(),
		}).Validate(map[string]any{"name": 1})
		require.False(t, res.Success)
		require.NotNil(t, res.Error)
		assert.False(t, res.Error.Leaf())
		assert.Empty(t, res.Error.Message)
	})
}

func TestError_Field(t *testing.T) {
	t.Parallel()

	t.Run("returns nested error for failing field", func(t *testing.T) {
		res := schema.Object(schema.Fields{
			"name": schema.String(),
			"age":  schema.Number(),
		}).Validate(map[string]any{"name": "Ann", "age": "old"})
		require.False(t, res.Success)

		fieldErr := res.Error.Field("age")
		require.NotNil(t, fieldErr)
		assert.True(t, fieldErr.Leaf())
		assert.Equal(t, "Value must be a valid number", fieldErr.Message)
	})

	t.Run("returns nil for passing field", func(t *testing.T) {
		res := schema.Object(schema.Fields{
			"name": schema.String(),
			"age":  schema.Number(),
		}).Validate(map[string]any{"name": "Ann", "age": "old"})
		require.False(t, res.Success)

		assert.Nil(t, res.Error.Field("name"))
	})

	t.Run("returns nil on a leaf error", func(t *testing.T) {
		res := schema.String().Validate(42)
		require.False(t, res.Success)

		assert.Nil(t, res.Error.Field("anything"))
	})
}

func TestError_Walk(t *testing.T) {
	t.Parallel()

	t.Run("visits nested leaves with dot-joined paths", func(t *testing.T) {
		v := schema.Object(schema.Fields{
			"items": schema.Array[float64](schema.Number().Min(0)),
			"name":  schema.String(),
		})
		res := v.Validate(map[string]any{
			"items": []any{1.0, -2.0},
			"name":  false,
		})
		require.False(t, res.Success)

		visited := map[string]string{}
		res.Error.Walk(func(path, message string) {
			visited[path] = message
		})

		assert.Equal(t, map[string]string{
			"items.1": "Number must be at least 0",
			"name":    "Value must be a string",
		}, visited)
	})

	t.Run("visits a root leaf with empty path", func(t *testing.T) {
		res := schema.Number().Validate("nope")
		require.False(t, res.Success)

		var paths []string
		res.Error.Walk(func(path, message string) {
			paths = append(paths, path)
		})
		assert.Equal(t, []string{""}, paths)
	})
}

func TestError_Error(t *testing.T) {
	t.Parallel()

	t.Run("leaf renders its message", func(t *testing.T) {
		res := schema.Boolean().Validate("yes")
		require.False(t, res.Success)
		assert.Equal(t, "Value must be a boolean", res.Error.Error())
	})

	t.Run("aggregate renders path-prefixed summary", func(t *testing.T) {
		res := schema.Object(schema.Fields{
			"age": schema.Number(),
		}).Validate(map[string]any{"age": "old"})
		require.False(t, res.Success)
		assert.Equal(t, "validation failed: age: Value must be a valid number", res.Error.Error())
	})
}

func TestError_JSON(t *testing.T) {
	t.Parallel()

	t.Run("encodes nested structure", func(t *testing.T) {
		res := schema.Object(schema.Fields{
			"items": schema.Array[float64](schema.Number()),
		}).Validate(map[string]any{"items": []any{"bad"}})
		require.False(t, res.Success)

		raw, err := json.Marshal(res.Error)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(raw, &decoded))

		fields, ok := decoded["fields"].(map[string]any)
		require.True(t, ok)
		items, ok := fields["items"].(map[string]any)
		require.True(t, ok)
		itemFields, ok := items["fields"].(map[string]any)
		require.True(t, ok)
		leaf, ok := itemFields["0"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Value must be a valid number", leaf["message"])
	})

	t.Run("omits fields key on a leaf", func(t *testing.T) {
		res := schema.String().Validate(1)
		require.False(t, res.Success)

		raw, err := json.Marshal(res.Error)
		require.NoError(t, err)
		assert.JSONEq(t, `{"message":"Value must be a string"}`, string(raw))
	})
}
