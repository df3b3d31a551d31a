package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Leaderboard proxies the upstream rankings payload untouched.
func (h *Handler) Leaderboard(c *gin.Context) {
	body, err := h.Cache.FetchLeaderboard(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}

// PlayerHeroStats proxies per-player hero statistics untouched.
func (h *Handler) PlayerHeroStats(c *gin.Context) {
	body, err := h.Cache.FetchPlayerHeroStats(c.Request.Context(), c.Param("playerId"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}
