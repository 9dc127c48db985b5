package repositories

import (
	"context"
	"fmt"

	"github.com/yigit/schoolportal/internal/app/models"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
	"github.com/yigit/schoolportal/internal/pkg/dberrors"
)

// PgEventRepository handles calendar events in Postgres
type PgEventRepository struct {
	db PgxPool
}

// NewPgEventRepository creates a new PgEventRepository
func NewPgEventRepository(db PgxPool) *PgEventRepository {
	return &PgEventRepository{db: db}
}

// Create inserts an event and sets its ID
func (r *PgEventRepository) Create(ctx context.Context, event *models.Event) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO events (title, date)
		VALUES ($1, $2)
		RETURNING id`,
		event.Title, event.Date).Scan(&event.ID)
	if err != nil {
		return fmt.Errorf("error creating event: %w", err)
	}
	return nil
}

// GetByID retrieves an event by ID
func (r *PgEventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	event := &models.Event{}
	err := r.db.QueryRow(ctx, `SELECT id, title, date FROM events WHERE id = $1`, id).
		Scan(&event.ID, &event.Title, &event.Date)
	if err != nil {
		if dberrors.IsNotFound(err) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error getting event %d: %w", id, err)
	}
	return event, nil
}

// List returns all events ordered by ID
func (r *PgEventRepository) List(ctx context.Context) ([]*models.Event, error) {
	rows, err := r.db.Query(ctx, `SELECT id, title, date FROM events ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error listing events: %w", err)
	}
	defer rows.Close()

	events := make([]*models.Event, 0)
	for rows.Next() {
		e := &models.Event{}
		if err := rows.Scan(&e.ID, &e.Title, &e.Date); err != nil {
			return nil, fmt.Errorf("error scanning event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}
	return events, nil
}

// Update overwrites title and date of an existing event
func (r *PgEventRepository) Update(ctx context.Context, event *models.Event) error {
	result, err := r.db.Exec(ctx, `
		UPDATE events
		SET title = $1, date = $2
		WHERE id = $3`,
		event.Title, event.Date, event.ID)
	if err != nil {
		return fmt.Errorf("error updating event: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

// Delete removes an event
func (r *PgEventRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

// Count returns the number of stored events
func (r *PgEventRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM events`).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting events: %w", err)
	}
	return n, nil
}
