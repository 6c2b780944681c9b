package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDoc() map[string]any {
	return map[string]any{
		"age":  float64(30),
		"name": map[string]any{"first": "Ann", "last": "Lee"},
	}
}

func TestSplitPath(t *testing.T) {
	parts, err := SplitPath("name.first")
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "first"}, parts)

	for _, bad := range []string{"", ".", "name.", ".first", "a..b"} {
		_, err := SplitPath(bad)
		assert.ErrorIs(t, err, ErrInvalidPath, bad)
	}
}

func TestGetPath(t *testing.T) {
	doc := testDoc()

	v, ok := GetPath(doc, "name.last")
	require.True(t, ok)
	assert.Equal(t, "Lee", v)

	v, ok = GetPath(doc, "age")
	require.True(t, ok)
	assert.Equal(t, float64(30), v)

	_, ok = GetPath(doc, "age.years")
	assert.False(t, ok)
	_, ok = GetPath(doc, "name.middle")
	assert.False(t, ok)
}

func TestSetPath(t *testing.T) {
	doc := testDoc()

	require.NoError(t, SetPath(doc, "name.first", "Anna"))
	require.NoError(t, SetPath(doc, "age", float64(31)))

	assert.Equal(t, "Anna", doc["name"].(map[string]any)["first"])
	assert.Equal(t, float64(31), doc["age"])
}

func TestSetPath_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"empty", ""},
		{"missing leaf", "name.middle"},
		{"missing top level", "nickname"},
		{"through scalar", "age.years"},
		{"missing branch", "address.city"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := testDoc()
			err := SetPath(doc, tt.path, "x")
			assert.ErrorIs(t, err, ErrInvalidPath)
			assert.Equal(t, testDoc(), doc)
		})
	}
}
