package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorage_GetSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "local_storage.json")
	s := NewFileStorage(path)

	_, ok := s.GetItem("theme")
	assert.False(t, ok)

	require.NoError(t, s.SetItem("theme", "dark"))
	require.NoError(t, s.SetItem("other", "x"))

	v, ok := NewFileStorage(path).GetItem("theme")
	assert.True(t, ok)
	assert.Equal(t, "dark", v)
	assert.NoFileExists(t, path+".tmp")
}

func TestFileStorage_CorruptFileIsReplacedOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local_storage.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))
	s := NewFileStorage(path)

	_, ok := s.GetItem("theme")
	assert.False(t, ok)

	require.NoError(t, s.SetItem("theme", "light"))
	v, ok := NewFileStorage(path).GetItem("theme")
	assert.True(t, ok)
	assert.Equal(t, "light", v)
}

func TestNoopStorage(t *testing.T) {
	var s LocalStorage = NoopStorage{}
	assert.False(t, s.Available())
	assert.NoError(t, s.SetItem("theme", "dark"))
	_, ok := s.GetItem("theme")
	assert.False(t, ok)
}

func TestSetAttributeJS(t *testing.T) {
	assert.Equal(t,
		`document.documentElement.setAttribute("data-theme", "dark");`,
		setAttributeJS("data-theme", "dark"))
	assert.Equal(t,
		`document.documentElement.setAttribute("data-x", "a\"b");`,
		setAttributeJS("data-x", `a"b`))
}
