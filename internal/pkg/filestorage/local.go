package filestorage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/yigit/schoolportal/internal/pkg/apperrors"
	"github.com/yigit/schoolportal/internal/pkg/logger"
)

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath      string
	preserveNames bool
}

// NewLocalStorage creates a new LocalStorage rooted at basePath.
// With preserveNames the blob key is the sanitized file name itself, so a
// second upload of the same name replaces the first blob. Otherwise every
// blob gets a unique "<uuid>_<name>" key.
func NewLocalStorage(basePath string, preserveNames bool) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Bool("preserveNames", preserveNames).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath:      basePath,
		preserveNames: preserveNames,
	}, nil
}

// Save writes the uploaded file into the storage directory
func (ls *LocalStorage) Save(fileHeader *multipart.FileHeader) (*StoredFile, error) {
	if fileHeader == nil || fileHeader.Filename == "" {
		return nil, apperrors.ErrNoFileSelected
	}

	fileName := SanitizeFilename(fileHeader.Filename)
	if fileName == "" {
		return nil, apperrors.ErrInvalidFilename
	}

	storedName := fileName
	if !ls.preserveNames {
		storedName = uuid.NewString() + "_" + fileName
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dstPath := filepath.Join(ls.basePath, storedName)
	dst, err := os.Create(dstPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create destination file: %w", err)
	}

	size, err := io.Copy(dst, src)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(dstPath)
		return nil, fmt.Errorf("failed to save file content: %w", err)
	}

	mimeType := "application/octet-stream"
	if mt, err := mimetype.DetectFile(dstPath); err == nil {
		mimeType = mt.String()
	}

	logger.Info().
		Str("filename", fileHeader.Filename).
		Str("storedAs", storedName).
		Int64("size", size).
		Msg("File saved successfully")

	return &StoredFile{
		FileName:   fileName,
		StoredName: storedName,
		FileSize:   size,
		MimeType:   mimeType,
	}, nil
}

// Path returns the full path of a stored blob
func (ls *LocalStorage) Path(storedName string) (string, error) {
	fullPath, err := ls.resolve(storedName)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", apperrors.ErrBlobMissing
		}
		return "", fmt.Errorf("failed to stat stored file: %w", err)
	}
	if info.IsDir() {
		return "", apperrors.ErrBlobMissing
	}
	return fullPath, nil
}

// Delete removes a blob from the storage directory
func (ls *LocalStorage) Delete(storedName string) error {
	fullPath, err := ls.resolve(storedName)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Error().Err(err).Str("path", fullPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// resolve maps a blob key to a path that cannot leave basePath
func (ls *LocalStorage) resolve(storedName string) (string, error) {
	name := filepath.Base(storedName)
	if storedName == "" || name != storedName || name == "." || name == ".." {
		return "", apperrors.ErrBlobMissing
	}
	return filepath.Join(ls.basePath, name), nil
}
