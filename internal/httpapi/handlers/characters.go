package handlers

import "github.com/gin-gonic/gin"

func (h *Handler) ListCharacters(c *gin.Context) {
	characters, err := h.Roster.ListCharacters(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"characters": characters})
}
