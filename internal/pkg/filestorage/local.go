package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/kaan/examportal/internal/pkg/apperrors"
	"github.com/kaan/examportal/internal/pkg/logger"
)

// mimeTypes is the fixed extension to content-type table used when serving
// stored documents. Unknown extensions fall back to octet-stream.
var mimeTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".ppt":  "application/vnd.ms-powerpoint",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".xls":  "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".txt":  "text/plain; charset=utf-8",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".zip":  "application/zip",
}

// ContentType returns the content type for a stored filename.
func ContentType(filename string) string {
	if ct, ok := mimeTypes[strings.ToLower(filepath.Ext(filename))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// IsAllowedExtension reports whether uploads with this extension are accepted.
func IsAllowedExtension(ext string) bool {
	_, ok := mimeTypes[strings.ToLower(ext)]
	return ok
}

// LocalStorage stores and resolves files under a single storage root.
// Resolution never reads outside the root.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates the storage root if needed and returns a storage
// handle with an absolute base path.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage directory %s: %w", basePath, err)
	}

	logger.Info().Str("path", absPath).Msg("Local storage directory ensured")
	return &LocalStorage{basePath: absPath}, nil
}

// BasePath returns the absolute storage root.
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}

// Resolve maps a client-supplied filename to an absolute path inside the
// storage root. The name is reduced to its basename, so traversal segments
// are stripped before lookup; a resolved path outside the root or a name
// with no usable basename fails with ErrPathEscape, a missing file with
// ErrFileNotFound.
func (ls *LocalStorage) Resolve(filename string) (string, error) {
	if filename == "" {
		return "", apperrors.NewBadRequestError("filename is required")
	}

	// Windows-style separators also count as separators here.
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	if base == "" || base == "." || base == ".." || base == string(filepath.Separator) {
		return "", apperrors.ErrPathEscape
	}

	full := filepath.Join(ls.basePath, base)
	if !strings.HasPrefix(full, ls.basePath+string(filepath.Separator)) {
		return "", apperrors.ErrPathEscape
	}

	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return "", apperrors.ErrFileNotFound
	}

	return full, nil
}

// SaveUpload stores an uploaded file under a generated unique name and
// returns the stored basename.
func (ls *LocalStorage) SaveUpload(fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	storedName := uuid.New().String() + ext
	dstPath := filepath.Join(ls.basePath, storedName)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("storedAs", storedName).Msg("File saved")
	return storedName, nil
}

// Delete removes a stored file. Deleting a missing file is not an error.
func (ls *LocalStorage) Delete(storedName string) error {
	full, err := ls.Resolve(storedName)
	if err != nil {
		if err == apperrors.ErrFileNotFound {
			logger.Warn().Str("filename", storedName).Msg("File to delete does not exist")
			return nil
		}
		return err
	}

	if err := os.Remove(full); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
