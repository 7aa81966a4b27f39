package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	list := c.List()
	require.NotEmpty(t, list)
	assert.Equal(t, "House Cleaning", list[0].Name)
	assert.True(t, c.Known("Salon Service"))

	d := c.Details("House Cleaning")
	assert.Equal(t, "2-4 hours", d.Duration)
}

func TestDetailsFallback(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	d := c.Details("Underwater Basket Weaving")
	assert.Equal(t, "Underwater Basket Weaving", d.Name)
	assert.Equal(t, "Professional service with quality assurance", d.Description)
	assert.Equal(t, "Varies", d.Duration)
	assert.Equal(t, "Custom solutions", d.Includes)
	assert.False(t, c.Known("Underwater Basket Weaving"))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "services.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
fallback:
  description: d
services:
  - id: 7
    name: Window Washing
`), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	require.Len(t, c.List(), 1)
	assert.Equal(t, 7, c.List()[0].ID)
}

func TestParseRejectsDuplicates(t *testing.T) {
	_, err := Parse([]byte(`
services:
  - {id: 1, name: A}
  - {id: 2, name: A}
`))
	assert.Error(t, err)
}
