// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/schoolportal/internal/pkg/session"
)

// pageData builds the common template data of an HTML page, popping queued flashes
func pageData(ctx *gin.Context, title string) gin.H {
	return gin.H{
		"Title":   title,
		"Flashes": session.Flashes(ctx),
	}
}

// flashRedirect queues a flash message and redirects with 302
func flashRedirect(ctx *gin.Context, logger zerolog.Logger, message, location string) {
	if err := session.AddFlash(ctx, message); err != nil {
		logger.Error().Err(err).Msg("Failed to store flash message")
	}
	ctx.Redirect(http.StatusFound, location)
}
