package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	v, err := Lookup(" JiraKiller ")
	require.NoError(t, err)
	assert.Equal(t, "jirakiller", v.Name)
	assert.Len(t, v.Models, 4)
	assert.NotNil(t, v.Seed)

	blog, err := Lookup("blog")
	require.NoError(t, err)
	assert.Len(t, blog.Models, 5)

	_, err = Lookup("northwind")
	assert.ErrorContains(t, err, "unknown schema")
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"blog", "jirakiller", "test5"}, Names())
}
