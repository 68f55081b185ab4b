package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rifkifakhrudin2004/campus-portal/domain"
	"github.com/rifkifakhrudin2004/campus-portal/internal/http/middleware"
)

// HomeHandlers serves the landing page.
type HomeHandlers struct {
	appName string
}

func NewHomeHandlers(appName string) *HomeHandlers {
	return &HomeHandlers{appName: appName}
}

type homeView struct {
	AppName       string
	User          *domain.User
	DashboardPath string
}

// Home renders the landing page. A logged-in visitor gets a link to their
// dashboard, everyone else the login and register links.
func (h *HomeHandlers) Home(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	view := homeView{AppName: h.appName}
	if sess.Authenticated() {
		view.User = sess.User
		view.DashboardPath = domain.RedirectPath(sess.User.Role)
	}

	c.HTML(http.StatusOK, "home.html", view)
}
