package services_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokobaju/internal/apperrors"
	"tokobaju/internal/services"
)

func TestFileService_NameFor(t *testing.T) {
	svc := services.NewFileService(t.TempDir(), "http://localhost:8080/api/v1")

	name, err := svc.NameFor("photo.JPG")
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".jpg"))
	assert.Len(t, name, 36+len(".jpg"), "name must be a uuid plus extension")

	again, err := svc.NameFor("photo.jpg")
	assert.NoError(t, err)
	assert.NotEqual(t, name, again, "every upload gets a fresh name")

	_, err = svc.NameFor("malware.exe")
	assert.Error(t, err)
	_, err = svc.NameFor("noextension")
	assert.Error(t, err)
}

func TestFileService_SecureURL(t *testing.T) {
	svc := services.NewFileService(t.TempDir(), "http://localhost:8080/api/v1/")
	assert.Equal(t,
		"http://localhost:8080/api/v1/files/product/abc.png",
		svc.SecureURL("abc.png"))
}

func TestFileService_ResolveImage(t *testing.T) {
	dir := t.TempDir()
	svc := services.NewFileService(dir, "http://localhost:8080/api/v1")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "exists.jpg"), []byte("img"), 0o644))

	path, err := svc.ResolveImage("exists.jpg")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "exists.jpg"), path)

	_, err = svc.ResolveImage("missing.jpg")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// Traversal attempts never leave the upload dir.
	_, err = svc.ResolveImage("../secret.txt")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFileService_StorePathCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	svc := services.NewFileService(dir, "http://localhost:8080/api/v1")

	path, err := svc.StorePath("abc.jpg")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "abc.jpg"), path)

	info, err := os.Stat(dir)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}
