package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/predforge/predforge/internal/apperr"
	"github.com/predforge/predforge/internal/build"
)

type generateBuildReq struct {
	CharacterID string    `json:"characterId"`
	Role        string    `json:"role"`
	EnemyIDs    *[]string `json:"enemyIds"`
}

func (h *Handler) GenerateBuild(c *gin.Context) {
	var req generateBuildReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.New(apperr.Validation, "invalid json"))
		return
	}

	result, err := h.Builds.Generate(c.Request.Context(), build.GenerateRequest{
		CharacterID: req.CharacterID,
		Role:        req.Role,
		EnemyIDs:    req.EnemyIDs,
	})
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, gin.H{
		"character": result.Character,
		"role":      result.Role,
		"enemies":   result.Enemies,
		"crest":     result.Crest,
		"items":     result.Items,
		"strategy":  result.Strategy,
		"tips":      result.Tips,
		"historyId": result.HistoryID,
	})
}

func (h *Handler) ListBuildHistory(c *gin.Context) {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		limit = 20
	}
	history, err := h.Builds.History(c.Request.Context(), limit)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"history": history})
}

type saveBuildReq struct {
	HistoryID uint64  `json:"historyId"`
	Name      *string `json:"name"`
	Notes     *string `json:"notes"`
}

func (h *Handler) SaveBuild(c *gin.Context) {
	var req saveBuildReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.New(apperr.Validation, "invalid json"))
		return
	}
	if req.HistoryID == 0 {
		fail(c, apperr.New(apperr.Validation, "historyId is required"))
		return
	}

	saved, err := h.Builds.SaveBuild(c.Request.Context(), req.HistoryID, req.Name, req.Notes)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"saved": saved})
}

func (h *Handler) ListSavedBuilds(c *gin.Context) {
	saved, err := h.Builds.ListSaved(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"saved": saved})
}
