package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/laingsimon/courage-scores/internal/db"
	"github.com/laingsimon/courage-scores/internal/logger"
	"github.com/laingsimon/courage-scores/internal/middleware"
	"github.com/laingsimon/courage-scores/internal/observability"
	"github.com/laingsimon/courage-scores/internal/sse"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Router   *gin.Engine
	Cfg      Config
	Repos    Repos
	Services Services
	Hub      *sse.Hub
	cancel   context.CancelFunc

	tracingShutdown func(context.Context) error
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	cfg := LoadConfig(log)

	tracingShutdown := observability.InitTracing(context.Background(), log, observability.Config{
		ServiceName: "courage-scores",
		Environment: logMode,
		Version:     os.Getenv("APP_VERSION"),
	})

	database, err := db.New(log)
	if err != nil {
		log.Sync()
		return nil, err
	}
	if err := database.AutoMigrateAll(); err != nil {
		log.Sync()
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	theDB := database.DB()

	hub := sse.NewHub(log)
	reposet := wireRepos(theDB, log)

	serviceset, err := wireServices(theDB, log, cfg, reposet, hub)
	if err != nil {
		log.Sync()
		return nil, err
	}

	auth := middleware.NewAuthMiddleware(log, cfg.JWTSecretKey)
	router := wireRouter(wireHandlers(log, serviceset, hub), auth, cfg.AllowedOrigins)

	return &App{
		Log:      log,
		DB:       theDB,
		Router:   router,
		Cfg:      cfg,
		Repos:    reposet,
		Services: serviceset,
		Hub:      hub,

		tracingShutdown: tracingShutdown,
	}, nil
}

// Start begins background work: relaying live updates from other
// instances into the local hub when redis is configured.
func (a *App) Start() {
	if a == nil || a.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel

	if a.Services.RedisBus != nil {
		if err := a.Services.RedisBus.StartForwarder(ctx, a.Hub.Broadcast); err != nil {
			a.Log.Warn("Could not start live-update forwarder", "error", err)
		}
	}
}

func (a *App) Run(addr string) error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Router.Run(addr)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	if a.Services.RedisBus != nil {
		_ = a.Services.RedisBus.Close()
	}
	if a.tracingShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = a.tracingShutdown(ctx)
		cancel()
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
