package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/gorm"

	"github.com/yigit/schoolportal/internal/app/models"
)

// PgxPool is the part of *pgxpool.Pool the Postgres repositories use
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// UserRepository defines the user account operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByName(ctx context.Context, name string) (*models.User, error)
	NameExists(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]*models.User, error)
}

// EventRepository defines the calendar event operations
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	List(ctx context.Context) ([]*models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// FileRepository defines the uploaded file metadata operations
type FileRepository interface {
	Create(ctx context.Context, file *models.File) error
	GetByID(ctx context.Context, id int64) (*models.File, error)
	List(ctx context.Context) ([]*models.File, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository  UserRepository
	EventRepository EventRepository
	FileRepository  FileRepository

	ping func(ctx context.Context) error
}

// Ping checks the underlying store
func (r *Repositories) Ping(ctx context.Context) error {
	if r.ping == nil {
		return nil
	}
	return r.ping(ctx)
}

// NewRepositories initializes the Postgres repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:  NewPgUserRepository(db),
		EventRepository: NewPgEventRepository(db),
		FileRepository:  NewPgFileRepository(db),
		ping:            db.Ping,
	}
}

// NewGormRepositories initializes the gorm (SQLite) repositories
func NewGormRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		UserRepository:  NewGormUserRepository(db),
		EventRepository: NewGormEventRepository(db),
		FileRepository:  NewGormFileRepository(db),
		ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
}
