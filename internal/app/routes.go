package app

import (
	"github.com/gin-gonic/gin"
	"github.com/globetrotter-app/core/internal/middleware"
	"github.com/globetrotter-app/core/internal/modules/activity"
	"github.com/globetrotter-app/core/internal/modules/auth"
	"github.com/globetrotter-app/core/internal/modules/budget"
	"github.com/globetrotter-app/core/internal/modules/health"
	"github.com/globetrotter-app/core/internal/modules/share"
	"github.com/globetrotter-app/core/internal/modules/stop"
	"github.com/globetrotter-app/core/internal/modules/trip"
	pkgredis "github.com/globetrotter-app/core/internal/pkg/redis"
	"github.com/globetrotter-app/core/internal/pkg/response"
)

func (a *App) registerRoutes(rc *pkgredis.Client) {
	r := a.router
	db := a.db
	authMW := middleware.Auth(db)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "route not found")
	})

	root := r.Group("")
	if rc != nil {
		root.Use(middleware.RateLimit(rc.Raw()))
	}

	tripSvc := trip.NewService(db)

	auth.NewHandler(auth.NewService(db)).RegisterRoutes(root, authMW)
	trip.NewHandler(tripSvc).RegisterRoutes(root, authMW)
	stop.NewHandler(stop.NewService(db)).RegisterRoutes(root, authMW)
	activity.NewHandler(activity.NewService(db)).RegisterRoutes(root, authMW)
	budget.NewHandler(budget.NewService(db, tripSvc)).RegisterRoutes(root, authMW)
	share.NewHandler(share.NewService(db)).RegisterRoutes(root)
	health.NewHandler(db).RegisterRoutes(root)
}
