package httpx

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rifkifakhrudin2004/campus-portal/domain"
	"github.com/rifkifakhrudin2004/campus-portal/internal/http/handlers"
	"github.com/rifkifakhrudin2004/campus-portal/internal/http/middleware"
)

//go:embed templates/*.html
var templatesFS embed.FS

// BuildRouter assembles the portal's routes. The route guard runs on every
// page; the page guard additionally wraps the three dashboards. Health and
// metrics stay outside both.
func BuildRouter(ah *handlers.AuthHandlers, dh *handlers.DashboardHandlers, hh *handlers.HomeHandlers, routeGuard, withSession, pageGuard gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Metrics())

	r.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.Use(routeGuard)

	r.GET("/", withSession, hh.Home)

	r.GET("/login", ah.ShowLogin)
	r.POST("/login", ah.Login)
	r.GET("/register", ah.ShowRegister)
	r.POST("/register", ah.Register)
	r.POST("/logout", ah.Logout)
	r.POST("/logout-all", ah.LogoutAll)

	r.GET("/admin", pageGuard, dh.Show(domain.RoleAdmin))
	r.GET("/dosen", pageGuard, dh.Show(domain.RoleDosen))
	r.GET("/mahasiswa", pageGuard, dh.Show(domain.RoleMahasiswa))

	return r
}
