package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	cases, err := Load("testdata/cases.json")
	require.NoError(t, err)
	require.NotEmpty(t, cases)

	names := make(map[string]bool)
	for _, c := range cases {
		names[c.Name] = true
	}
	assert.True(t, names["simple_function"])
	assert.True(t, names["bad_character"])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.json")
	assert.Error(t, err)
}
