package dto

import "github.com/yigit/schoolportal/internal/app/models"

// EventRequest is the body of POST /api/events and PUT /api/events/:id
type EventRequest struct {
	Title string `json:"title" binding:"required" example:"Exam"`
	Date  string `json:"date" binding:"required,eventdate" example:"2024-06-01 09:00:00"`
}

// EventResponse is the wire form of an event
type EventResponse struct {
	ID    int64  `json:"id" example:"1"`
	Title string `json:"title" example:"Exam"`
	Date  string `json:"date" example:"2024-06-01 09:00:00"`
}

// NewEventResponse converts an event row into its wire form
func NewEventResponse(event *models.Event) EventResponse {
	return EventResponse{
		ID:    event.ID,
		Title: event.Title,
		Date:  event.FormattedDate(),
	}
}

// NewEventListResponse converts event rows; an empty slice encodes as [] not null
func NewEventListResponse(events []*models.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, NewEventResponse(e))
	}
	return out
}
