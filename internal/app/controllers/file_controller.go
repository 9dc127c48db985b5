package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/schoolportal/internal/app/services"
	"github.com/yigit/schoolportal/internal/middleware"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
	"github.com/yigit/schoolportal/internal/pkg/metrics"
	"github.com/yigit/schoolportal/internal/web"
)

const (
	uploadFormField = "file"
	uploadPath      = "/file"
)

// FileController handles uploads and downloads
type FileController struct {
	fileService services.FileService
	metrics     *metrics.Metrics
	logger      zerolog.Logger
}

// NewFileController creates a new FileController
func NewFileController(fileService services.FileService, metrics *metrics.Metrics, logger zerolog.Logger) *FileController {
	return &FileController{
		fileService: fileService,
		metrics:     metrics,
		logger:      logger,
	}
}

// ShowUpload renders the upload form
func (c *FileController) ShowUpload(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, web.PageUpload, pageData(ctx, "Upload new File"))
}

// Upload stores the submitted file and renders the form again
func (c *FileController) Upload(ctx *gin.Context) {
	fileHeader, err := uploadedFile(ctx)
	if err != nil {
		flashRedirect(ctx, c.logger, apperrors.Message(err), uploadPath)
		return
	}

	uploaded, err := c.fileService.Upload(ctx.Request.Context(), fileHeader)
	if err != nil {
		if errors.Is(err, apperrors.ErrBadRequest) {
			flashRedirect(ctx, c.logger, apperrors.Message(err), uploadPath)
			return
		}
		c.logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to store upload")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.metrics.UploadStored()
	data := pageData(ctx, "Upload new File")
	data["Uploaded"] = uploaded
	ctx.HTML(http.StatusOK, web.PageUpload, data)
}

// uploadedFile distinguishes a request without a file part from a part with no file chosen
func uploadedFile(ctx *gin.Context) (*multipart.FileHeader, error) {
	fileHeader, err := ctx.FormFile(uploadFormField)
	if err == nil {
		if fileHeader.Filename == "" {
			return nil, apperrors.ErrNoFileSelected
		}
		return fileHeader, nil
	}

	if errors.Is(err, http.ErrMissingFile) {
		// browsers send an empty filename when nothing was chosen; Go parses that part as a value
		if form := ctx.Request.MultipartForm; form != nil {
			if _, ok := form.Value[uploadFormField]; ok {
				return nil, apperrors.ErrNoFileSelected
			}
		}
	}
	return nil, apperrors.ErrNoFilePart
}

// DownloadFile sends a stored file as an attachment
// @Summary Download a file
// @Tags files
// @Produce octet-stream
// @Param id path int true "File ID" Format(int64)
// @Success 200 {file} binary "File content"
// @Failure 404 {object} dto.ErrorResponse "File not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /file/download/{id} [get]
func (c *FileController) DownloadFile(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		middleware.HandleAPIError(ctx, apperrors.ErrFileNotFound)
		return
	}

	file, path, err := c.fileService.Download(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.FileAttachment(path, file.FileName)
}

// ListFiles returns the metadata of every upload
// @Summary List uploaded files
// @Tags files
// @Produce json
// @Success 200 {array} dto.FileResponse "Files, newest first"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/files [get]
func (c *FileController) ListFiles(ctx *gin.Context) {
	files, err := c.fileService.ListFiles(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, files)
}
