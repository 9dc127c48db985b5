package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/schoolportal/internal/app/models/dto"
	"github.com/yigit/schoolportal/internal/app/services"
	"github.com/yigit/schoolportal/internal/middleware"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
	"github.com/yigit/schoolportal/internal/pkg/metrics"
	"github.com/yigit/schoolportal/internal/pkg/session"
	"github.com/yigit/schoolportal/internal/web"
)

// Flash and page messages shown by the auth pages
const (
	MsgUserExists         = "User already exists"
	MsgInvalidCredentials = "Invalid credentials"
	MsgRegistrationFailed = "Registration failed: "
)

// AuthController handles registration, login and logout pages
type AuthController struct {
	authService services.AuthService
	metrics     *metrics.Metrics
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, metrics *metrics.Metrics, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		metrics:     metrics,
		logger:      logger,
	}
}

// ShowRegister renders the registration form
func (c *AuthController) ShowRegister(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, web.PageRegister, pageData(ctx, "Registration"))
}

// Register creates an account from the registration form and signs it in
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration form")
		flashRedirect(ctx, c.logger, apperrors.ErrCredentialsRequired.Error(), "/register")
		return
	}

	user, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUserAlreadyExists):
			flashRedirect(ctx, c.logger, MsgUserExists, "/register")
		case errors.Is(err, apperrors.ErrCredentialsRequired):
			flashRedirect(ctx, c.logger, apperrors.ErrCredentialsRequired.Error(), "/register")
		default:
			c.logger.Error().Err(err).Str("name", req.Name).Msg("Failed to register user")
			flashRedirect(ctx, c.logger, MsgRegistrationFailed+err.Error(), "/register")
		}
		return
	}

	if err := session.SetUserID(ctx, user.ID); err != nil {
		c.logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to start session after registration")
		flashRedirect(ctx, c.logger, MsgRegistrationFailed+err.Error(), "/register")
		return
	}

	ctx.Redirect(http.StatusFound, "/")
}

// ShowLogin renders the login page
func (c *AuthController) ShowLogin(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, web.PageIndex, pageData(ctx, "Sign in"))
}

// Login checks the login form and starts a session
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		// an unreadable form is checked as empty credentials
		c.logger.Warn().Err(err).Msg("Invalid login form")
	}

	user, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.metrics.LoginAttempt(false)
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			c.logger.Error().Err(err).Str("name", req.Name).Msg("Login failed")
		}
		data := pageData(ctx, "Sign in")
		data["Message"] = MsgInvalidCredentials
		ctx.HTML(http.StatusOK, web.PageIndex, data)
		return
	}

	if err := session.SetUserID(ctx, user.ID); err != nil {
		c.logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to start session")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.metrics.LoginAttempt(true)
	c.logger.Info().Int64("userID", user.ID).Str("name", user.Name).Msg("User logged in")
	ctx.Redirect(http.StatusFound, "/")
}

// Logout ends the session
func (c *AuthController) Logout(ctx *gin.Context) {
	if err := session.Clear(ctx); err != nil {
		c.logger.Error().Err(err).Msg("Failed to clear session")
	}
	ctx.Redirect(http.StatusFound, middleware.LoginPath)
}
