package firebase

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialsClientOptions(t *testing.T) {
	opts, err := Credentials{JSON: `{"type":"service_account"}`, Path: "/ignored"}.ClientOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 1)

	_, err = Credentials{Path: filepath.Join(t.TempDir(), "missing.json")}.ClientOptions()
	assert.Error(t, err)

	opts, err = Credentials{}.ClientOptions()
	require.NoError(t, err)
	assert.Empty(t, opts)
}
