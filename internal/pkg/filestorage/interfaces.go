package filestorage

import (
	"mime/multipart"
)

// StoredFile describes a blob written to storage
type StoredFile struct {
	FileName   string // sanitized client file name
	StoredName string // key of the blob inside the storage directory
	FileSize   int64  // size in bytes
	MimeType   string // detected MIME type
}

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// Save writes an uploaded file and reports where it was stored
	Save(fileHeader *multipart.FileHeader) (*StoredFile, error)

	// Path returns the filesystem path of a stored blob; apperrors.ErrBlobMissing if absent
	Path(storedName string) (string, error)

	// Delete removes a stored blob; deleting a missing blob is not an error
	Delete(storedName string) error
}
