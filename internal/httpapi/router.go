package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/predforge/predforge/internal/build"
	"github.com/predforge/predforge/internal/httpapi/handlers"
	"github.com/predforge/predforge/internal/httpapi/middleware"
	"github.com/predforge/predforge/internal/omeda"
	"github.com/predforge/predforge/internal/roster"
)

func NewRouter(rs *roster.Store, cache *omeda.Cache, builds *build.Service) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	h := handlers.NewHandler(rs, cache, builds)

	r.GET("/ping", h.Ping)

	api := r.Group("/api")
	api.GET("/characters", h.ListCharacters)
	api.GET("/items", h.ListItems)
	api.GET("/items/endgame", h.ListEndgameItems)

	api.POST("/generate-build", h.GenerateBuild)
	api.GET("/builds", h.ListBuildHistory)
	api.POST("/saved-builds", h.SaveBuild)
	api.GET("/saved-builds", h.ListSavedBuilds)

	api.GET("/leaderboard", h.Leaderboard)
	api.GET("/players/:playerId/hero-statistics", h.PlayerHeroStats)

	api.GET("/community-builds", h.CommunityBuilds)
	api.GET("/heroes", h.ListHeroes)
	api.GET("/heroes/all-stats", h.AllHeroStats)
	api.GET("/heroes/:heroId/stats", h.HeroStats)

	return r
}
