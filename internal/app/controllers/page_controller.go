package controllers

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/schoolportal/internal/middleware"
	"github.com/yigit/schoolportal/internal/web"
)

// PageController serves the home greeting and the static pages
type PageController struct {
	about template.HTML
}

// NewPageController creates a new PageController with the pre-rendered about page
func NewPageController(about template.HTML) *PageController {
	return &PageController{about: about}
}

// Home greets the signed-in user by role
func (c *PageController) Home(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.Redirect(http.StatusFound, middleware.LoginPath)
		return
	}
	ctx.String(http.StatusOK, "%s Your login: %s", user.RoleType.Greeting(), user.Name)
}

// Page renders a fixed template
func (c *PageController) Page(name, title string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.HTML(http.StatusOK, name, pageData(ctx, title))
	}
}

// About renders the about page
func (c *PageController) About(ctx *gin.Context) {
	data := pageData(ctx, "About")
	data["About"] = c.about
	ctx.HTML(http.StatusOK, web.PageAbout, data)
}
