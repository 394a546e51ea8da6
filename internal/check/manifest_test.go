package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doglang/dogc/internal/fixtures"
)

func TestCheckAgainstFixtureManifest(t *testing.T) {
	cases, err := fixtures.Load("testdata/cases.json")
	require.NoError(t, err)
	require.NotEmpty(t, cases)

	for _, c := range cases {
		c := c
		t.Run(c.Name, func(t *testing.T) {
			result := Text(c.Source, c.Name+".dog", c.Name+".dog")
			assert.Equal(t, c.WantValid, result.OK(), "%s: %v", c.Name, result.Err)
		})
	}
}
