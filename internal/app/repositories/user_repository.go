package repositories

import (
	"context"
	"fmt"

	"github.com/yigit/schoolportal/internal/app/models"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
	"github.com/yigit/schoolportal/internal/pkg/dberrors"
)

// PgUserRepository handles user rows in Postgres
type PgUserRepository struct {
	db PgxPool
}

// NewPgUserRepository creates a new PgUserRepository
func NewPgUserRepository(db PgxPool) *PgUserRepository {
	return &PgUserRepository{db: db}
}

// Create inserts a user and sets its ID
func (r *PgUserRepository) Create(ctx context.Context, user *models.User) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (name, password, role)
		VALUES ($1, $2, $3)
		RETURNING id`,
		user.Name, user.Password, user.RoleType).Scan(&user.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_name_key") {
			return apperrors.ErrUserAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by ID
func (r *PgUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, password, role
		FROM users
		WHERE id = $1`,
		id).Scan(&user.ID, &user.Name, &user.Password, &user.RoleType)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting user %d: %w", id, err)
	}
	return user, nil
}

// GetByName retrieves a user by its unique name
func (r *PgUserRepository) GetByName(ctx context.Context, name string) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, password, role
		FROM users
		WHERE name = $1`,
		name).Scan(&user.ID, &user.Name, &user.Password, &user.RoleType)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting user by name: %w", err)
	}
	return user, nil
}

// NameExists checks if a user name is taken
func (r *PgUserRepository) NameExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking user name: %w", err)
	}
	return exists, nil
}

// List returns every user ordered by ID
func (r *PgUserRepository) List(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, password, role FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	users := make([]*models.User, 0)
	for rows.Next() {
		u := &models.User{}
		if err := rows.Scan(&u.ID, &u.Name, &u.Password, &u.RoleType); err != nil {
			return nil, fmt.Errorf("error scanning user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}
