package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguageSurvivesReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")

	p, err := LoadPreferences(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultLanguage, p.Language())

	require.NoError(t, p.SetLanguage("hi"))

	reloaded, err := LoadPreferences(path)
	require.NoError(t, err)
	assert.Equal(t, "hi", reloaded.Language())
	assert.Empty(t, reloaded.Token())
}

func TestClearTokenKeepsLanguage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.json")
	p, err := LoadPreferences(path)
	require.NoError(t, err)
	require.NoError(t, p.SetLanguage("te"))
	require.NoError(t, p.SetToken("abc"))
	require.NoError(t, p.ClearToken())

	reloaded, err := LoadPreferences(path)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Token())
	assert.Equal(t, "te", reloaded.Language())
}

func TestLoadPreferencesRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
	_, err := LoadPreferences(path)
	assert.Error(t, err)
}

func TestThemeIsNotPersisted(t *testing.T) {
	var th Theme
	assert.False(t, th.Dark())
	assert.True(t, th.Toggle())
	assert.False(t, th.Toggle())
}
