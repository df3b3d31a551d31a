package handlers

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/predforge/predforge/internal/apperr"
	"github.com/predforge/predforge/internal/omeda"
)

// Filter keys forwarded to omeda.city as filter[key]=value.
var communityFilterKeys = []string{
	"player_id", "hero_id", "role", "name",
	"skill_order", "current_version", "modules",
}

func (h *Handler) CommunityBuilds(c *gin.Context) {
	params := url.Values{}
	if page := c.Query("page"); page != "" {
		params.Set("page", page)
	}
	if order := c.Query("order"); order != "" {
		params.Set("filter[order]", order)
	}
	for _, key := range communityFilterKeys {
		if val := c.Query(key); val != "" {
			params.Set("filter["+key+"]", val)
		}
	}

	ctx := c.Request.Context()
	rawBuilds, err := h.Cache.FetchCommunityBuilds(ctx, params.Encode())
	if err != nil {
		fail(c, err)
		return
	}
	heroMap, err := h.Cache.FetchHeroMap(ctx)
	if err != nil {
		fail(c, err)
		return
	}
	itemMap, err := h.Cache.FetchItemMap(ctx)
	if err != nil {
		fail(c, err)
		return
	}

	base := h.Cache.BaseURL()
	builds := make([]gin.H, 0, len(rawBuilds))
	for _, b := range rawBuilds {
		items := make([]any, 0, 6)
		for _, id := range b.ItemIDs() {
			items = append(items, resolveCommunityItem(id, itemMap, base))
		}
		builds = append(builds, gin.H{
			"id":          b.ID,
			"title":       b.Title,
			"description": b.Description,
			"role":        b.Role,
			"author":      b.Author,
			"upvotes":     b.UpvotesCount,
			"downvotes":   b.DownvotesCount,
			"version":     nullableString(b.GameVersion.Name),
			"skill_order": b.SkillOrder,
			"has_modules": len(b.Modules) > 0 && string(b.Modules) != "null" && string(b.Modules) != "[]",
			"created_at":  b.CreatedAt,
			"updated_at":  b.UpdatedAt,
			"hero":        resolveCommunityHero(b.HeroID, heroMap, base),
			"crest":       resolveCommunityItem(b.CrestID, itemMap, base),
			"items":       items,
		})
	}

	ok(c, gin.H{"builds": builds})
}

// resolveCommunityHero looks the hero up in the cached index; an unknown id
// yields a placeholder, never an error.
func resolveCommunityHero(heroID int, heroMap map[int]omeda.RawHero, base string) gin.H {
	hero, found := heroMap[heroID]
	if !found {
		return gin.H{"id": heroID, "name": "Unknown", "slug": nil, "image": nil, "roles": []string{}}
	}
	roles := hero.Roles
	if roles == nil {
		roles = []string{}
	}
	return gin.H{
		"id":    hero.ID,
		"name":  hero.DisplayName,
		"slug":  hero.Slug,
		"image": imageURL(base, hero.Image),
		"roles": roles,
	}
}

// resolveCommunityItem expands a numeric item id into display data. Zero ids
// (empty build slots) resolve to nil, unknown ids to a placeholder.
func resolveCommunityItem(itemID int, itemMap map[int]omeda.RawItem, base string) any {
	if itemID == 0 {
		return nil
	}
	raw, found := itemMap[itemID]
	if !found {
		return gin.H{"id": itemID, "name": "Unknown", "image": nil}
	}

	stats := make([]gin.H, 0, len(raw.Stats))
	keys := make([]string, 0, len(raw.Stats))
	for k := range raw.Stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		stats = append(stats, gin.H{"label": strings.ReplaceAll(k, "_", " "), "value": raw.Stats[k]})
	}

	effects := make([]gin.H, 0, len(raw.Effects))
	for _, e := range raw.Effects {
		desc := omeda.StripHTML(e.MenuDescription)
		if desc == "" {
			continue
		}
		effects = append(effects, gin.H{"name": nullableString(e.Name), "description": desc})
	}

	var price any
	if raw.TotalPrice > 0 {
		price = raw.TotalPrice
	}
	return gin.H{
		"id":        raw.ID,
		"name":      raw.DisplayName,
		"image":     imageURL(base, raw.Image),
		"slug":      raw.Slug,
		"price":     price,
		"rarity":    nullableString(raw.Rarity),
		"slot_type": nullableString(raw.SlotType),
		"stats":     stats,
		"effects":   effects,
	}
}

func imageURL(base, path string) any {
	if path == "" {
		return nil
	}
	return base + path
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func (h *Handler) ListHeroes(c *gin.Context) {
	heroes, err := h.Cache.FetchHeroes(c.Request.Context(), false)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"heroes": heroes})
}

// AllHeroStats returns the dashboard statistics for every hero in one
// time_frame/game_mode combination.
func (h *Handler) AllHeroStats(c *gin.Context) {
	timeFrame, gameMode := statsParams(c)
	stats, err := h.Cache.FetchAllHeroStats(c.Request.Context(), timeFrame, gameMode)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"stats": stats})
}

// HeroStats selects one hero's row from the cached all-hero payload; the
// upstream per-hero filter is broken so the selection happens here.
func (h *Handler) HeroStats(c *gin.Context) {
	heroID, err := strconv.Atoi(c.Param("heroId"))
	if err != nil {
		fail(c, apperr.New(apperr.Validation, "Invalid hero id %q", c.Param("heroId")))
		return
	}

	timeFrame, gameMode := statsParams(c)
	allStats, err := h.Cache.FetchAllHeroStats(c.Request.Context(), timeFrame, gameMode)
	if err != nil {
		fail(c, err)
		return
	}

	var heroStats any
	for _, s := range allStats {
		if s.HeroID() == heroID {
			heroStats = s
			break
		}
	}
	ok(c, gin.H{"stats": heroStats})
}

func statsParams(c *gin.Context) (timeFrame, gameMode string) {
	timeFrame = c.DefaultQuery("time_frame", "1M")
	gameMode = c.DefaultQuery("game_mode", "ranked")
	return
}
