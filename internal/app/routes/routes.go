package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/schoolportal/internal/app/controllers"
	"github.com/yigit/schoolportal/internal/middleware"
	"github.com/yigit/schoolportal/internal/pkg/metrics"
	"github.com/yigit/schoolportal/internal/web"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Auth   *controllers.AuthController
	Page   *controllers.PageController
	Event  *controllers.EventController
	File   *controllers.FileController
	User   *controllers.UserController
	Health *controllers.HealthController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware, m *metrics.Metrics) {
	// --- Session auth ---
	router.GET("/register", c.Auth.ShowRegister)
	router.POST("/register", c.Auth.Register)
	router.GET("/login", c.Auth.ShowLogin)
	router.POST("/login", c.Auth.Login)

	// --- Guarded pages ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.RequireAuth())
	{
		authenticated.GET("/", c.Page.Home)
		authenticated.GET("/logout", c.Auth.Logout)
	}

	// --- Static pages ---
	router.GET("/index", c.Page.Page(web.PageIndex, "School portal"))
	router.GET("/teacher", c.Page.Page(web.PageTeacher, "Teachers"))
	router.GET("/parents", c.Page.Page(web.PageParents, "Parents"))
	router.GET("/student", c.Page.Page(web.PageStudent, "Students"))
	router.GET("/calendar", c.Page.Page(web.PageCalendar, "Calendar"))
	router.GET("/about", c.Page.About)

	// --- Event API ---
	events := router.Group("/api/events")
	{
		events.GET("", c.Event.ListEvents)
		events.POST("", c.Event.CreateEvent)
		events.PUT("/:id", c.Event.UpdateEvent)
		events.DELETE("/:id", c.Event.DeleteEvent)
	}

	// --- Files ---
	router.GET("/file", c.File.ShowUpload)
	router.POST("/file", c.File.Upload)
	router.GET("/file/download/:id", c.File.DownloadFile)
	router.GET("/api/files", c.File.ListFiles)

	// --- Users ---
	router.GET("/users", c.User.ListUsers)

	// --- Operations ---
	router.GET("/health", c.Health.Health)
	router.GET("/metrics", gin.WrapH(m.Handler()))
	SetupSwagger(router)
}
