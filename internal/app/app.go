package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/globetrotter-app/core/internal/config"
	"github.com/globetrotter-app/core/internal/database"
	"github.com/globetrotter-app/core/internal/middleware"
	pkgcron "github.com/globetrotter-app/core/internal/pkg/cron"
	jwtpkg "github.com/globetrotter-app/core/internal/pkg/jwt"
	pkgredis "github.com/globetrotter-app/core/internal/pkg/redis"
	sessionpkg "github.com/globetrotter-app/core/internal/pkg/session"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds all application dependencies.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	db     *gorm.DB
	logger *zap.Logger
	cancel context.CancelFunc
}

// New initializes the application: config → DB → Redis → routes.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	if cfg.JWTSecret != "" {
		jwtpkg.SetSecret(cfg.JWTSecret)
	}

	db, err := database.Connect(cfg, true)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	// Redis is optional; without it the API runs unlimited.
	var rc *pkgredis.Client
	if cfg.RedisURL != "" {
		rc, err = pkgredis.Connect(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("redis: %w", err)
		}
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	router.Use(cors.New(corsConfig(cfg)))

	ctx, cancel := context.WithCancel(context.Background())
	sched := pkgcron.New()
	sched.Register(pkgcron.Job{
		Name:     "sessions.purge",
		Interval: time.Hour,
		Fn: func(context.Context) {
			n, err := sessionpkg.PurgeExpired(db)
			if err != nil {
				logger.Warn("session purge failed", zap.Error(err))
				return
			}
			if n > 0 {
				logger.Info("purged dead sessions", zap.Int64("count", n))
			}
		},
	})
	sched.Start(ctx)

	app := &App{cfg: cfg, router: router, db: db, logger: logger, cancel: cancel}
	app.registerRoutes(rc)

	return app, nil
}

// Shutdown stops background jobs.
func (a *App) Shutdown() {
	a.cancel()
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

// DB returns the application database handle.
func (a *App) DB() *gorm.DB { return a.db }
