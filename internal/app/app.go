package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/rifkifakhrudin2004/campus-portal/internal/config"
	httpx "github.com/rifkifakhrudin2004/campus-portal/internal/http"
	"github.com/rifkifakhrudin2004/campus-portal/internal/http/handlers"
	"github.com/rifkifakhrudin2004/campus-portal/internal/http/middleware"
	"github.com/rifkifakhrudin2004/campus-portal/internal/infrastructure/auth"
	"github.com/rifkifakhrudin2004/campus-portal/internal/infrastructure/gateway"
	"github.com/rifkifakhrudin2004/campus-portal/internal/infrastructure/store"
	"github.com/rifkifakhrudin2004/campus-portal/internal/services"
)

func Run(cfg *config.Config) error {
	gin.SetMode(cfg.GinMode)

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return err
	}

	cas, err := auth.NewCasbinService()
	if err != nil {
		return err
	}

	// Infrastructure
	gw := gateway.NewClient(cfg.APIBaseURL, cfg.APITimeout)
	tokens := store.NewCookieTokenStore(cfg.CookieName, cfg.CookieTTL, cfg.CookieSecure)
	users := store.NewUserCache(rdb, cfg.CachePrefix, cfg.CookieTTL)
	sessionStore := store.NewSessionStore(tokens, users)

	// Services
	authAPI := services.NewAuthService(gw)
	userAPI := services.NewUserService(gw)
	sessionSvc := services.NewSessionService(sessionStore, authAPI)

	// Handlers
	authH := handlers.NewAuthHandlers(sessionSvc, cfg.AppName)
	dashH := handlers.NewDashboardHandlers(userAPI, tokens, cfg.AppName)
	homeH := handlers.NewHomeHandlers(cfg.AppName)

	// Middleware
	routeGuard := middleware.RouteGuard(tokens)
	withSession := middleware.WithSession(sessionSvc)
	pageGuard := middleware.PageGuard(sessionSvc, cas)

	r := httpx.BuildRouter(authH, dashH, homeH, routeGuard, withSession, pageGuard)

	addr := ":" + cfg.Port
	log.Printf("%s listening on %s (api: %s)", cfg.AppName, addr, cfg.APIBaseURL)
	return http.ListenAndServe(addr, r)
}
