package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedassist/cli/internal/models"
)

func TestSetTokenPersistsAcrossStores(t *testing.T) {
	tokenPath := filepath.Join(t.TempDir(), "nested", "token")

	first := NewStore(tokenPath, nil)
	first.SetToken("tok-abc")

	second := NewStore(tokenPath, nil)
	second.Load()
	assert.Equal(t, "tok-abc", second.Token())
}

func TestLoadMissingFileMeansLoggedOut(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "absent"), nil)
	s.Load()
	assert.Empty(t, s.Token())
	assert.False(t, s.Authenticated())
}

func TestAuthenticatedNeedsBothTokenAndUser(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "token"), nil)
	assert.False(t, s.Authenticated())

	s.SetToken("tok")
	assert.False(t, s.Authenticated(), "token alone is not a session")

	s.SetUser(&models.User{Username: "dana"})
	assert.True(t, s.Authenticated())
}

func TestClearRemovesTokenFile(t *testing.T) {
	tokenPath := filepath.Join(t.TempDir(), "token")
	s := NewStore(tokenPath, nil)
	s.SetToken("tok")
	s.SetUser(&models.User{Username: "dana"})

	s.Clear()

	assert.Empty(t, s.Token())
	assert.Nil(t, s.User())
	_, err := os.Stat(tokenPath)
	assert.True(t, os.IsNotExist(err))
}

func TestClearWithoutFileIsHarmless(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "absent"), nil)
	require.NotPanics(t, s.Clear)
}

func TestTokenFileModeIsPrivate(t *testing.T) {
	tokenPath := filepath.Join(t.TempDir(), "token")
	s := NewStore(tokenPath, nil)
	s.SetToken("tok")

	info, err := os.Stat(tokenPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
