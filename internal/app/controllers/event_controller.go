package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yigit/schoolportal/internal/app/models/dto"
	"github.com/yigit/schoolportal/internal/app/services"
	"github.com/yigit/schoolportal/internal/middleware"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
)

// EventController handles the calendar event API
type EventController struct {
	eventService services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService) *EventController {
	return &EventController{
		eventService: eventService,
	}
}

// ListEvents returns every event
// @Summary List events
// @Description Returns every calendar event ordered by id
// @Tags events
// @Produce json
// @Success 200 {array} dto.EventResponse "Events"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/events [get]
func (c *EventController) ListEvents(ctx *gin.Context) {
	events, err := c.eventService.ListEvents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, events)
}

// CreateEvent creates an event
// @Summary Create an event
// @Description Creates a calendar event. Dates use the YYYY-MM-DD HH:MM:SS format.
// @Tags events
// @Accept json
// @Produce json
// @Param request body dto.EventRequest true "Event"
// @Success 200 {object} dto.EventResponse "Created event"
// @Failure 400 {object} dto.ErrorResponse "Missing field or malformed date"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req dto.EventRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	event, err := c.eventService.CreateEvent(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, event)
}

// UpdateEvent replaces an event
// @Summary Update an event
// @Description Replaces title and date of an event
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID" Format(int64)
// @Param request body dto.EventRequest true "Event"
// @Success 200 {object} dto.EventResponse "Updated event"
// @Failure 400 {object} dto.ErrorResponse "Missing field or malformed date"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/events/{id} [put]
func (c *EventController) UpdateEvent(ctx *gin.Context) {
	id, ok := eventID(ctx)
	if !ok {
		return
	}

	// unknown ids are reported before the body is looked at
	if _, err := c.eventService.GetEvent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.EventRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	event, err := c.eventService.UpdateEvent(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, event)
}

// DeleteEvent removes an event
// @Summary Delete an event
// @Tags events
// @Param id path int true "Event ID" Format(int64)
// @Success 204 "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/events/{id} [delete]
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	id, ok := eventID(ctx)
	if !ok {
		return
	}

	if err := c.eventService.DeleteEvent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// eventID parses the :id path parameter; anything but a positive integer names no event
func eventID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		middleware.HandleAPIError(ctx, apperrors.ErrEventNotFound)
		return 0, false
	}
	return id, true
}
