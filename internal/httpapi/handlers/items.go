package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/predforge/predforge/internal/omeda"
)

func (h *Handler) ListItems(c *gin.Context) {
	items, err := h.Cache.FetchItems(c.Request.Context(), false)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"items": items, "source": "omeda.city", "count": len(items)})
}

// ListEndgameItems returns the Epic/Legendary subset, the items that show up
// in finished builds.
func (h *Handler) ListEndgameItems(c *gin.Context) {
	items, err := h.Cache.FetchItems(c.Request.Context(), false)
	if err != nil {
		fail(c, err)
		return
	}
	endgame := make([]omeda.Item, 0, len(items))
	for _, it := range items {
		if it.Rarity == "Epic" || it.Rarity == "Legendary" {
			endgame = append(endgame, it)
		}
	}
	ok(c, gin.H{"items": endgame, "source": "omeda.city", "count": len(endgame)})
}
