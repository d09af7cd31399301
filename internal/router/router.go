// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/restaurant-reservation/internal/config"
	"github.com/iliyamo/restaurant-reservation/internal/handler"
	"github.com/iliyamo/restaurant-reservation/internal/middleware"
)

// RegisterRoutes registers the unauthenticated surface: the health
// check used by load balancers and the staff auth endpoints.
func RegisterRoutes(e *echo.Echo, a *handler.AuthHandler) {
	e.GET("/healthz", handler.Health)

	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)
}

// RegisterAPI registers the protected front-of-house endpoints.  Every
// route requires a valid staff JWT; both MANAGER and HOST roles may
// work the reservation book and the floor.  The read-heavy dashboard
// listings additionally sit behind the Redis response cache, and the
// whole group is rate limited.
func RegisterAPI(e *echo.Echo, cfg config.Config, rdb *redis.Client,
	a *handler.AuthHandler, r *handler.ReservationHandler, t *handler.TableHandler) {

	g := e.Group(
		"/v1",
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
		middleware.JWTAuth(cfg.JWTSecret),
		middleware.RequireRole("MANAGER", "HOST"),
	)

	g.GET("/me", a.Me)

	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	g.GET("/reservations", r.List, cache)
	g.POST("/reservations", r.Create)
	g.GET("/reservations/:id", r.Get)
	g.PUT("/reservations/:id", r.Update)
	g.PUT("/reservations/:id/status", r.UpdateStatus)

	g.GET("/tables", t.List, cache)
	g.POST("/tables", t.Create)
	g.PUT("/tables/:id/seat", t.Seat)
	g.DELETE("/tables/:id/seat", t.Unseat)
}
