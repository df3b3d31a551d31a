package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/predforge/predforge/internal/apperr"
	"github.com/predforge/predforge/internal/build"
	"github.com/predforge/predforge/internal/omeda"
	"github.com/predforge/predforge/internal/roster"
)

type Handler struct {
	Roster *roster.Store
	Cache  *omeda.Cache
	Builds *build.Service
}

func NewHandler(rs *roster.Store, cache *omeda.Cache, builds *build.Service) *Handler {
	return &Handler{Roster: rs, Cache: cache, Builds: builds}
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// fail maps the error's kind to a status and returns {"error": message}.
// Untyped errors collapse to a generic 500 body; the cause is logged, never
// sent to the client.
func fail(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.Internal {
		log.Printf("[http] %s %s failed: %v", c.Request.Method, c.FullPath(), err)
	}
	c.JSON(kind.HTTPStatus(), gin.H{"error": apperr.ClientMessage(err)})
}

func (h *Handler) Ping(c *gin.Context) {
	ok(c, gin.H{"status": "ok"})
}
