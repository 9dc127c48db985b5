package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yigit/schoolportal/internal/app/models"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
	"github.com/yigit/schoolportal/internal/pkg/dberrors"
)

// GormUserRepository handles user rows through gorm
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Create inserts a user and sets its ID
func (r *GormUserRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrUserAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by ID
func (r *GormUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting user %d: %w", id, err)
	}
	return &user, nil
}

// GetByName retrieves a user by its unique name
func (r *GormUserRepository) GetByName(ctx context.Context, name string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&user).Error; err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting user by name: %w", err)
	}
	return &user, nil
}

// NameExists checks if a user name is taken
func (r *GormUserRepository) NameExists(ctx context.Context, name string) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("name = ?", name).Count(&n).Error; err != nil {
		return false, fmt.Errorf("error checking user name: %w", err)
	}
	return n > 0, nil
}

// List returns every user ordered by ID
func (r *GormUserRepository) List(ctx context.Context) ([]*models.User, error) {
	users := make([]*models.User, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return users, nil
}

// GormEventRepository handles calendar events through gorm
type GormEventRepository struct {
	db *gorm.DB
}

// NewGormEventRepository creates a new GormEventRepository
func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

// Create inserts an event and sets its ID
func (r *GormEventRepository) Create(ctx context.Context, event *models.Event) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("error creating event: %w", err)
	}
	return nil
}

// GetByID retrieves an event by ID
func (r *GormEventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).First(&event, id).Error; err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error getting event %d: %w", id, err)
	}
	return &event, nil
}

// List returns all events ordered by ID
func (r *GormEventRepository) List(ctx context.Context) ([]*models.Event, error) {
	events := make([]*models.Event, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("error listing events: %w", err)
	}
	return events, nil
}

// Update overwrites title and date of an existing event
func (r *GormEventRepository) Update(ctx context.Context, event *models.Event) error {
	result := r.db.WithContext(ctx).Model(&models.Event{}).
		Where("id = ?", event.ID).
		Updates(map[string]interface{}{"title": event.Title, "date": event.Date})
	if result.Error != nil {
		return fmt.Errorf("error updating event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

// Delete removes an event
func (r *GormEventRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Event{}, id)
	if result.Error != nil {
		return fmt.Errorf("error deleting event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

// Count returns the number of stored events
func (r *GormEventRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Event{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("error counting events: %w", err)
	}
	return n, nil
}

// GormFileRepository handles file metadata through gorm
type GormFileRepository struct {
	db *gorm.DB
}

// NewGormFileRepository creates a new GormFileRepository
func NewGormFileRepository(db *gorm.DB) *GormFileRepository {
	return &GormFileRepository{db: db}
}

// Create inserts a file record; gorm fills CreatedAt
func (r *GormFileRepository) Create(ctx context.Context, file *models.File) error {
	if err := r.db.WithContext(ctx).Create(file).Error; err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	return nil
}

// GetByID retrieves a file by ID
func (r *GormFileRepository) GetByID(ctx context.Context, id int64) (*models.File, error) {
	var file models.File
	if err := r.db.WithContext(ctx).First(&file, id).Error; err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrFileNotFound
		}
		return nil, fmt.Errorf("error getting file: %w", err)
	}
	return &file, nil
}

// List returns all file records, newest first
func (r *GormFileRepository) List(ctx context.Context) ([]*models.File, error) {
	files := make([]*models.File, 0)
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&files).Error; err != nil {
		return nil, fmt.Errorf("error listing files: %w", err)
	}
	return files, nil
}
