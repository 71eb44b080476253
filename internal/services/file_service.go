package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"tokobaju/internal/apperrors"
)

// validImageExtensions lists the upload extensions accepted for product images.
var validImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// FileService names uploaded product images and resolves stored ones.
// Storage itself is plain local disk under UploadDir.
type FileService struct {
	uploadDir string
	hostAPI   string
}

// NewFileService creates a FileService rooted at uploadDir. Absolute URLs
// are built from hostAPI.
func NewFileService(uploadDir, hostAPI string) *FileService {
	return &FileService{
		uploadDir: uploadDir,
		hostAPI:   strings.TrimRight(hostAPI, "/"),
	}
}

// NameFor validates the original filename's extension and returns the
// stored name: a fresh UUID keeping the extension.
func (s *FileService) NameFor(originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !validImageExtensions[ext] {
		return "", fmt.Errorf("file extension %q is not an accepted image type", ext)
	}
	return uuid.New().String() + ext, nil
}

// StorePath returns the on-disk destination for a stored name, creating
// the upload directory if needed.
func (s *FileService) StorePath(storedName string) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}
	return filepath.Join(s.uploadDir, storedName), nil
}

// SecureURL builds the absolute URL a stored image is served from.
func (s *FileService) SecureURL(storedName string) string {
	return fmt.Sprintf("%s/files/product/%s", s.hostAPI, storedName)
}

// ResolveImage maps an image name back to its on-disk path, rejecting
// names that escape the upload directory and files that do not exist.
func (s *FileService) ResolveImage(imageName string) (string, error) {
	if imageName != filepath.Base(imageName) {
		return "", apperrors.ErrNotFound
	}
	path := filepath.Join(s.uploadDir, imageName)
	if _, err := os.Stat(path); err != nil {
		return "", apperrors.ErrNotFound
	}
	return path, nil
}
