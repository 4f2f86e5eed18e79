package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseList(t *testing.T) {
	t.Run("domain stays opaque", func(t *testing.T) {
		domain, err := parseList(`[[["name", "=", "ZExample1"]]]`)

		require.NoError(t, err)
		require.Len(t, domain, 1)
		// nested lists survive untouched
		assert.Equal(t, []interface{}{[]interface{}{"name", "=", "ZExample1"}}, domain[0])
	})

	t.Run("rejects objects", func(t *testing.T) {
		_, err := parseList(`{"name": "ZExample1"}`)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected a JSON array")
	})
}

func TestParseMap(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		values, err := parseMap(`{"name": "ZExample1", "email": "zexample1@example.com"}`)

		require.NoError(t, err)
		assert.Equal(t, "ZExample1", values["name"])
	})

	t.Run("rejects arrays", func(t *testing.T) {
		_, err := parseMap(`[1, 2]`)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected a JSON object")
	})
}

func TestParseMatrix(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		rows, err := parseMatrix(`[["ZExample1", "zexample1@example.com"], ["ZExample2", "zexample2@example.com"]]`)

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, []interface{}{"ZExample1", "zexample1@example.com"}, rows[0])
	})

	t.Run("rejects flat arrays", func(t *testing.T) {
		_, err := parseMatrix(`["ZExample1", "zexample1@example.com"]`)

		require.Error(t, err)
	})
}
