package models

import "time"

// File represents an uploaded file. The bytes live in the upload directory
// under StoredName; FileName is the sanitized client name offered on download.
type File struct {
	ID         int64     `json:"id" db:"id" gorm:"primaryKey"`
	FileName   string    `json:"fileName" db:"file_name" gorm:"size:255;not null"`
	StoredName string    `json:"-" db:"stored_name" gorm:"size:255;not null"`
	FileSize   int64     `json:"fileSize" db:"file_size"`
	FileType   string    `json:"fileType" db:"file_type" gorm:"size:255"` // MIME type
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// TableName pins the gorm table name to the one used by the SQL migrations
func (File) TableName() string {
	return "files"
}
