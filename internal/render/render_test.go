package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bravactl/internal/bravia"
	"bravactl/internal/render"
)

func TestTruthy(t *testing.T) {
	falsy := []any{nil, false, float64(0), "", []any{}, map[string]any{}}
	for _, v := range falsy {
		assert.False(t, render.Truthy(v), "%#v should be falsy", v)
	}

	truthy := []any{true, float64(1), "x", []any{1}, map[string]any{"a": 1}}
	for _, v := range truthy {
		assert.True(t, render.Truthy(v), "%#v should be truthy", v)
	}
}

func TestUnwrap(t *testing.T) {
	t.Run("unwraps a single-element list result", func(t *testing.T) {
		rows := []any{map[string]any{"a": float64(1)}, map[string]any{"a": float64(2)}}
		result := []any{any(rows)}

		assert.Equal(t, rows, render.Unwrap(result))
	})

	t.Run("leaves a single non-list row alone", func(t *testing.T) {
		result := []any{map[string]any{"status": "active"}}
		assert.Equal(t, result, render.Unwrap(result))
	})

	t.Run("leaves multi-element results alone", func(t *testing.T) {
		result := []any{[]any{"a"}, []any{"b"}}
		assert.Equal(t, result, render.Unwrap(result))
	})
}

func TestFlatten(t *testing.T) {
	row := map[string]any{"title": "Netflix", "uri": "app://netflix"}

	t.Run("strips braces only", func(t *testing.T) {
		text, err := render.Flatten(row, false)
		require.NoError(t, err)

		assert.NotContains(t, text, "{")
		assert.NotContains(t, text, "}")
		assert.Contains(t, text, `"title": "Netflix"`)
	})

	t.Run("optionally strips quotes", func(t *testing.T) {
		text, err := render.Flatten(row, true)
		require.NoError(t, err)

		assert.NotContains(t, text, "{")
		assert.NotContains(t, text, "}")
		assert.NotContains(t, text, `"`)
		assert.Contains(t, text, "title: Netflix")
	})

	t.Run("nested objects lose every brace", func(t *testing.T) {
		text, err := render.Flatten(map[string]any{"outer": map[string]any{"inner": float64(1)}}, false)
		require.NoError(t, err)
		assert.NotContains(t, text, "{")
		assert.NotContains(t, text, "}")
	})
}

func TestFormatError(t *testing.T) {
	args := map[string]any{"status": "blue"}

	t.Run("prints message and arguments", func(t *testing.T) {
		text := render.FormatError(&bravia.DeviceError{Code: 3, Message: "Illegal Argument"}, args)
		assert.Contains(t, text, "Illegal Argument | ")
		assert.Contains(t, text, `"status":"blue"`)
	})

	t.Run("hints at a version mismatch for unknown methods", func(t *testing.T) {
		text := render.FormatError(&bravia.DeviceError{Code: 12, Message: "No Such Method"}, nil)
		assert.Contains(t, text, "No Such Method | ")
		assert.Contains(t, text, "No Such Method (Check version)")
	})

	t.Run("hints for unsupported versions", func(t *testing.T) {
		text := render.FormatError(&bravia.DeviceError{Code: 14, Message: "Unsupported version"}, nil)
		assert.Contains(t, text, "Unsupported Version")
	})

	t.Run("other codes get no hint", func(t *testing.T) {
		text := render.FormatError(&bravia.DeviceError{Code: 7, Message: "Clock is not set"}, nil)
		assert.NotContains(t, text, "Check version")
		assert.NotContains(t, text, "Unsupported Version")
	})
}

func TestRows(t *testing.T) {
	t.Run("prints each row of a wrapped list", func(t *testing.T) {
		result := []any{
			[]any{
				map[string]any{"a": float64(1)},
				map[string]any{"a": float64(2)},
			},
		}

		text, ok, err := render.Rows(result, true)
		require.NoError(t, err)
		require.True(t, ok)

		assert.Contains(t, text, "a: 1")
		assert.Contains(t, text, "a: 2")
		assert.NotContains(t, text, "{")
	})

	t.Run("empty result prints nothing", func(t *testing.T) {
		_, ok, err := render.Rows([]any{}, true)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("falsy first element prints nothing", func(t *testing.T) {
		_, ok, err := render.Rows([]any{false}, true)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("single plain row prints once", func(t *testing.T) {
		text, ok, err := render.Rows([]any{map[string]any{"status": "active"}}, true)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Contains(t, text, "status: active")
	})
}

func TestFormatArgs(t *testing.T) {
	text := render.FormatArgs(map[string]any{"volume": "+5", "ui": "on"})
	assert.Contains(t, text, `"volume":"+5"`)
	assert.Contains(t, text, `"ui":"on"`)
}
