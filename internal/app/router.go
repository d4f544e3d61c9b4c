package app

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/laingsimon/courage-scores/internal/handlers"
	"github.com/laingsimon/courage-scores/internal/middleware"
)

func wireRouter(handlerset Handlers, auth *middleware.AuthMiddleware, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware("courage-scores"))

	corsCfg := cors.DefaultConfig()
	if len(allowedOrigins) > 0 {
		corsCfg.AllowOrigins = allowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	router.GET("/api/health", handlers.Healthcheck)

	api := router.Group("/api")
	api.Use(auth.ResolveUser())

	register := func(path string, h interface {
		Get(*gin.Context)
		GetAll(*gin.Context)
		Upsert(*gin.Context)
		Delete(*gin.Context)
	}) {
		api.GET("/"+path, h.GetAll)
		api.GET("/"+path+"/:id", h.Get)
		api.PUT("/"+path, h.Upsert)
		api.DELETE("/"+path+"/:id", h.Delete)
	}

	register("division", handlerset.Divisions)
	register("season", handlerset.Seasons)
	register("team", handlerset.Teams)
	register("game", handlerset.Games)
	api.PATCH("/game/:id", handlerset.GamePatches.Patch)
	register("note", handlerset.Notes)
	register("error", handlerset.Errors)
	register("sayg", handlerset.Sayg)

	api.GET("/tournament", handlerset.Tournaments.GetAll)
	api.GET("/tournament/:id", handlerset.Tournaments.Get)
	api.PUT("/tournament", handlerset.Tournaments.Upsert)
	api.PATCH("/tournament/:id", handlerset.Tournaments.Patch)
	api.POST("/tournament/:id/match/:matchId/sayg", handlerset.Tournaments.AddSayg)
	api.DELETE("/tournament/:id/match/:matchId/sayg", handlerset.Tournaments.DeleteSayg)

	api.GET("/live", handlerset.Live.Watch)

	return router
}
