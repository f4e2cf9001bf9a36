package filestorage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaan/examportal/internal/pkg/apperrors"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	ls, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	return ls
}

func writeStoredFile(t *testing.T, ls *LocalStorage, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(ls.BasePath(), name), []byte(content), 0o644))
}

func TestResolveStoredFile(t *testing.T) {
	ls := newTestStorage(t)
	writeStoredFile(t, ls, "doc.pdf", "content")

	full, err := ls.Resolve("doc.pdf")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(full, ls.BasePath()))
}

func TestResolveStripsTraversal(t *testing.T) {
	ls := newTestStorage(t)
	writeStoredFile(t, ls, "passwd", "not the real one")

	// Traversal segments reduce to the basename, which stays inside the
	// root. The resolved path must never leave it.
	full, err := ls.Resolve("../../etc/passwd")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(ls.BasePath(), "passwd"), full)
}

func TestResolveRejectsDotNames(t *testing.T) {
	ls := newTestStorage(t)

	for _, name := range []string{".", "..", "../", "..\\"} {
		_, err := ls.Resolve(name)
		assert.ErrorIs(t, err, apperrors.ErrPathEscape, "name %q", name)
	}
}

func TestResolveMissingFile(t *testing.T) {
	ls := newTestStorage(t)

	_, err := ls.Resolve("nope.pdf")
	assert.ErrorIs(t, err, apperrors.ErrFileNotFound)
}

func TestResolveWindowsSeparators(t *testing.T) {
	ls := newTestStorage(t)
	writeStoredFile(t, ls, "doc.pdf", "content")

	full, err := ls.Resolve("..\\..\\doc.pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(ls.BasePath(), "doc.pdf"), full)
}

func TestDeleteMissingFileIsNoError(t *testing.T) {
	ls := newTestStorage(t)
	assert.NoError(t, ls.Delete("gone.pdf"))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/pdf", ContentType("doc.pdf"))
	assert.Equal(t, "application/pdf", ContentType("DOC.PDF"))
	assert.Equal(t, "image/png", ContentType("img.png"))
	assert.Equal(t, "application/octet-stream", ContentType("weird.xyz"))
	assert.Equal(t, "application/octet-stream", ContentType("noext"))
}

func TestIsAllowedExtension(t *testing.T) {
	assert.True(t, IsAllowedExtension(".pdf"))
	assert.True(t, IsAllowedExtension(".PNG"))
	assert.False(t, IsAllowedExtension(".exe"))
	assert.False(t, IsAllowedExtension(""))
}
