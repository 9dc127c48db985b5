package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/schoolportal/internal/app/models"
	"github.com/yigit/schoolportal/internal/app/models/dto"
	"github.com/yigit/schoolportal/internal/app/repositories"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
	"github.com/yigit/schoolportal/internal/pkg/helpers"
)

// EventService defines the calendar event operations
type EventService interface {
	ListEvents(ctx context.Context) ([]dto.EventResponse, error)
	GetEvent(ctx context.Context, id int64) (*dto.EventResponse, error)
	CreateEvent(ctx context.Context, req *dto.EventRequest) (*dto.EventResponse, error)
	UpdateEvent(ctx context.Context, id int64, req *dto.EventRequest) (*dto.EventResponse, error)
	DeleteEvent(ctx context.Context, id int64) error
}

type eventServiceImpl struct {
	eventRepo repositories.EventRepository
	logger    zerolog.Logger
}

// NewEventService creates a new EventService
func NewEventService(eventRepo repositories.EventRepository, logger zerolog.Logger) EventService {
	return &eventServiceImpl{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

// ListEvents returns every event ordered by id
func (s *eventServiceImpl) ListEvents(ctx context.Context) ([]dto.EventResponse, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing events: %w", err)
	}
	return dto.NewEventListResponse(events), nil
}

// GetEvent returns one event; apperrors.ErrEventNotFound if absent
func (s *eventServiceImpl) GetEvent(ctx context.Context, id int64) (*dto.EventResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewEventResponse(event)
	return &resp, nil
}

// CreateEvent stores a new event
func (s *eventServiceImpl) CreateEvent(ctx context.Context, req *dto.EventRequest) (*dto.EventResponse, error) {
	event, err := eventFromRequest(req)
	if err != nil {
		return nil, err
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("error creating event: %w", err)
	}

	s.logger.Info().Int64("eventID", event.ID).Str("title", event.Title).Msg("Event created")
	resp := dto.NewEventResponse(event)
	return &resp, nil
}

// UpdateEvent replaces title and date of an existing event
func (s *eventServiceImpl) UpdateEvent(ctx context.Context, id int64, req *dto.EventRequest) (*dto.EventResponse, error) {
	if _, err := s.eventRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	event, err := eventFromRequest(req)
	if err != nil {
		return nil, err
	}
	event.ID = id

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("error updating event: %w", err)
	}

	s.logger.Info().Int64("eventID", id).Msg("Event updated")
	resp := dto.NewEventResponse(event)
	return &resp, nil
}

// DeleteEvent removes an event; apperrors.ErrEventNotFound if absent
func (s *eventServiceImpl) DeleteEvent(ctx context.Context, id int64) error {
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("eventID", id).Msg("Event deleted")
	return nil
}

func eventFromRequest(req *dto.EventRequest) (*models.Event, error) {
	if req.Title == "" {
		return nil, apperrors.NewValidationError("title is required")
	}

	date, err := helpers.ParseEventDate(req.Date, models.EventDateLayout)
	if err != nil {
		return nil, apperrors.ErrInvalidEventDate
	}

	return &models.Event{Title: req.Title, Date: date}, nil
}
