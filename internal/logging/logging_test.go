package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "booking.log")

	log, err := New("production", path)
	require.NoError(t, err)
	log.Info("booking created")
	_ = log.Sync()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"booking created"`)
}

func TestDevelopmentDefault(t *testing.T) {
	log, err := New("", "")
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(-1), "development logs debug")
}
