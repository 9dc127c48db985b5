package repositories

import (
	"context"
	"fmt"

	"github.com/yigit/schoolportal/internal/app/models"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
	"github.com/yigit/schoolportal/internal/pkg/dberrors"
)

// PgFileRepository handles database operations for files
type PgFileRepository struct {
	db PgxPool
}

// NewPgFileRepository creates a new PgFileRepository
func NewPgFileRepository(db PgxPool) *PgFileRepository {
	return &PgFileRepository{db: db}
}

// Create inserts a file record; ID and CreatedAt come from the database
func (r *PgFileRepository) Create(ctx context.Context, file *models.File) error {
	query := `
		INSERT INTO files (file_name, stored_name, file_size, file_type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		file.FileName,
		file.StoredName,
		file.FileSize,
		file.FileType,
	).Scan(&file.ID, &file.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}

	return nil
}

// GetByID retrieves a file by ID
func (r *PgFileRepository) GetByID(ctx context.Context, id int64) (*models.File, error) {
	query := `
		SELECT id, file_name, stored_name, file_size, file_type, created_at
		FROM files
		WHERE id = $1
	`

	var file models.File
	err := r.db.QueryRow(ctx, query, id).Scan(
		&file.ID,
		&file.FileName,
		&file.StoredName,
		&file.FileSize,
		&file.FileType,
		&file.CreatedAt,
	)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrFileNotFound
		}
		return nil, fmt.Errorf("error getting file: %w", err)
	}

	return &file, nil
}

// List returns all file records, newest first
func (r *PgFileRepository) List(ctx context.Context) ([]*models.File, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, file_name, stored_name, file_size, file_type, created_at
		FROM files
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("error listing files: %w", err)
	}
	defer rows.Close()

	files := make([]*models.File, 0)
	for rows.Next() {
		f := &models.File{}
		if err := rows.Scan(&f.ID, &f.FileName, &f.StoredName, &f.FileSize, &f.FileType, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning file: %w", err)
		}
		files = append(files, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating files: %w", err)
	}
	return files, nil
}
