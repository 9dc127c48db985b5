package dto

import (
	"time"

	"github.com/yigit/schoolportal/internal/app/models"
)

// FileResponse represents the response for a file
type FileResponse struct {
	ID          int64  `json:"id" example:"123"`
	FileName    string `json:"fileName" example:"lecture_slides.pdf"`
	FileSize    int64  `json:"fileSize" example:"1048576"`
	FileType    string `json:"fileType" example:"application/pdf"`
	DownloadURL string `json:"downloadUrl" example:"/file/download/123"`
	CreatedAt   string `json:"createdAt" example:"2024-01-15T10:00:00Z"`
}

// NewFileResponse converts a file row into its wire form
func NewFileResponse(file *models.File) FileResponse {
	return FileResponse{
		ID:          file.ID,
		FileName:    file.FileName,
		FileSize:    file.FileSize,
		FileType:    file.FileType,
		DownloadURL: DownloadPath(file.ID),
		CreatedAt:   file.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// NewFileListResponse converts file rows
func NewFileListResponse(files []*models.File) []FileResponse {
	out := make([]FileResponse, 0, len(files))
	for _, f := range files {
		out = append(out, NewFileResponse(f))
	}
	return out
}
