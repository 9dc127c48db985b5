package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/rs/zerolog"

	"github.com/yigit/schoolportal/internal/app/models"
	"github.com/yigit/schoolportal/internal/app/models/dto"
	"github.com/yigit/schoolportal/internal/app/repositories"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
	"github.com/yigit/schoolportal/internal/pkg/filestorage"
)

// FileService defines the upload and download operations
type FileService interface {
	Upload(ctx context.Context, fileHeader *multipart.FileHeader) (*dto.FileResponse, error)
	Download(ctx context.Context, id int64) (*models.File, string, error)
	ListFiles(ctx context.Context) ([]dto.FileResponse, error)
}

type fileServiceImpl struct {
	fileRepo repositories.FileRepository
	storage  filestorage.FileStorage
	logger   zerolog.Logger
}

// NewFileService creates a new FileService
func NewFileService(fileRepo repositories.FileRepository, storage filestorage.FileStorage, logger zerolog.Logger) FileService {
	return &fileServiceImpl{
		fileRepo: fileRepo,
		storage:  storage,
		logger:   logger,
	}
}

// Upload stores the bytes and records a metadata row
func (s *fileServiceImpl) Upload(ctx context.Context, fileHeader *multipart.FileHeader) (*dto.FileResponse, error) {
	stored, err := s.storage.Save(fileHeader)
	if err != nil {
		return nil, err
	}

	file := &models.File{
		FileName:   stored.FileName,
		StoredName: stored.StoredName,
		FileSize:   stored.FileSize,
		FileType:   stored.MimeType,
	}
	if err := s.fileRepo.Create(ctx, file); err != nil {
		// a preserved name may still be referenced by older rows
		if stored.StoredName != stored.FileName {
			if delErr := s.storage.Delete(stored.StoredName); delErr != nil {
				s.logger.Error().Err(delErr).Str("storedName", stored.StoredName).Msg("Failed to clean up orphaned blob")
			}
		}
		return nil, fmt.Errorf("error saving file metadata: %w", err)
	}

	s.logger.Info().
		Int64("fileID", file.ID).
		Str("fileName", file.FileName).
		Int64("size", file.FileSize).
		Msg("File uploaded")

	resp := dto.NewFileResponse(file)
	return &resp, nil
}

// Download returns the metadata row and the blob path of a file
func (s *fileServiceImpl) Download(ctx context.Context, id int64) (*models.File, string, error) {
	file, err := s.fileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	path, err := s.storage.Path(file.StoredName)
	if err != nil {
		if errors.Is(err, apperrors.ErrBlobMissing) {
			s.logger.Warn().Int64("fileID", id).Str("storedName", file.StoredName).Msg("File row has no stored content")
		}
		return nil, "", err
	}
	return file, path, nil
}

// ListFiles returns the metadata of every upload, newest first
func (s *fileServiceImpl) ListFiles(ctx context.Context) ([]dto.FileResponse, error) {
	files, err := s.fileRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing files: %w", err)
	}
	return dto.NewFileListResponse(files), nil
}
