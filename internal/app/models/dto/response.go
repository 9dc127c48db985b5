package dto

import "strconv"

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"ok"`
}

// DownloadPath returns the download route of a stored file
func DownloadPath(fileID int64) string {
	return "/file/download/" + strconv.FormatInt(fileID, 10)
}
