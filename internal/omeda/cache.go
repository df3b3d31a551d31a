// Package omeda is a read-through cache over the omeda.city API. It owns no
// durable state: every slot is rebuildable from upstream and expires on a TTL.
//
// Concurrency: the mutex only protects the maps themselves. Two requests
// racing through an expired slot may both hit upstream; the last writer wins.
// That matches the intended behavior (upstream is idempotent, snapshots are
// short-lived) and deliberately avoids single-flight coordination.
package omeda

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/predforge/predforge/internal/apperr"
)

const (
	itemsTTL     = time.Hour
	heroesTTL    = time.Hour
	communityTTL = 5 * time.Minute
	statsTTL     = 10 * time.Minute

	// Bounded cache for community-build queries: once the map holds more
	// distinct query strings than this, the oldest entry (by refresh time,
	// not access time) is dropped.
	maxCommunityEntries = 100
)

type itemsSnapshot struct {
	list []Item
	byID map[int]RawItem
	at   time.Time
}

type heroesSnapshot struct {
	list []Hero
	byID map[int]RawHero
	at   time.Time
}

type communityEntry struct {
	builds []RawBuild
	at     time.Time
}

type rawEntry struct {
	data json.RawMessage
	at   time.Time
}

type heroStatsEntry struct {
	stats []HeroStat
	at    time.Time
}

// HeroStat is one row of the dashboard hero statistics payload, passed
// through untouched apart from hero_id extraction.
type HeroStat map[string]any

func (h HeroStat) HeroID() int {
	if v, ok := h["hero_id"].(float64); ok {
		return int(v)
	}
	return 0
}

type Cache struct {
	base string
	hc   *http.Client
	now  func() time.Time

	mu          sync.RWMutex
	items       *itemsSnapshot
	heroes      *heroesSnapshot
	community   map[string]communityEntry
	leaderboard *rawEntry
	playerStats map[string]rawEntry
	heroStats   map[string]heroStatsEntry
}

// NewCache builds a cache against the given omeda.city base URL. The HTTP
// client and clock are injected so tests can fake both.
func NewCache(baseURL string, hc *http.Client, now func() time.Time) *Cache {
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	if now == nil {
		now = time.Now
	}
	return &Cache{
		base:        baseURL,
		hc:          hc,
		now:         now,
		community:   make(map[string]communityEntry),
		playerStats: make(map[string]rawEntry),
		heroStats:   make(map[string]heroStatsEntry),
	}
}

func (c *Cache) BaseURL() string { return c.base }

func (c *Cache) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "omeda request build failed")
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, err, "Omeda API unreachable")
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperr.New(apperr.Upstream, "Omeda API error: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, err, "Omeda API read failed")
	}
	return body, nil
}

func (c *Cache) getJSON(ctx context.Context, rawURL string, dst any) error {
	body, err := c.get(ctx, rawURL)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return apperr.Wrap(apperr.Upstream, err, "Omeda API returned malformed JSON")
	}
	return nil
}

// FetchItems returns the cached item snapshot, refreshing it from upstream
// when older than an hour or when forceRefresh is set. Cache hits return the
// identical slice, so callers must not mutate it.
func (c *Cache) FetchItems(ctx context.Context, forceRefresh bool) ([]Item, error) {
	if !forceRefresh {
		c.mu.RLock()
		snap := c.items
		c.mu.RUnlock()
		if snap != nil && c.now().Sub(snap.at) < itemsTTL {
			return snap.list, nil
		}
	}

	log.Printf("[omeda] fetching fresh item data from omeda.city")

	var raw []RawItem
	if err := c.getJSON(ctx, c.base+"/items.json", &raw); err != nil {
		return nil, err
	}

	list := make([]Item, 0, len(raw))
	byID := make(map[int]RawItem, len(raw))
	for _, r := range raw {
		list = append(list, TransformItem(r, c.base))
		byID[r.ID] = r
	}

	snap := &itemsSnapshot{list: list, byID: byID, at: c.now()}
	c.mu.Lock()
	c.items = snap
	c.mu.Unlock()

	log.Printf("[omeda] cached %d items", len(list))
	return list, nil
}

// FetchItemMap returns the raw item index keyed by numeric id, refreshing
// through the same path as FetchItems.
func (c *Cache) FetchItemMap(ctx context.Context) (map[int]RawItem, error) {
	if _, err := c.FetchItems(ctx, false); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items.byID, nil
}

// FetchHeroes mirrors FetchItems with its own slot and TTL.
func (c *Cache) FetchHeroes(ctx context.Context, forceRefresh bool) ([]Hero, error) {
	if !forceRefresh {
		c.mu.RLock()
		snap := c.heroes
		c.mu.RUnlock()
		if snap != nil && c.now().Sub(snap.at) < heroesTTL {
			return snap.list, nil
		}
	}

	var raw []RawHero
	if err := c.getJSON(ctx, c.base+"/heroes.json", &raw); err != nil {
		return nil, err
	}

	list := make([]Hero, 0, len(raw))
	byID := make(map[int]RawHero, len(raw))
	for _, r := range raw {
		list = append(list, transformHero(r, c.base))
		byID[r.ID] = r
	}

	snap := &heroesSnapshot{list: list, byID: byID, at: c.now()}
	c.mu.Lock()
	c.heroes = snap
	c.mu.Unlock()

	return list, nil
}

func (c *Cache) FetchHeroMap(ctx context.Context) (map[int]RawHero, error) {
	if _, err := c.FetchHeroes(ctx, false); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.heroes.byID, nil
}

// FetchCommunityBuilds caches per exact query string: different filter
// combinations cache independently, each for five minutes.
func (c *Cache) FetchCommunityBuilds(ctx context.Context, query string) ([]RawBuild, error) {
	c.mu.RLock()
	entry, ok := c.community[query]
	c.mu.RUnlock()
	if ok && c.now().Sub(entry.at) < communityTTL {
		return entry.builds, nil
	}

	u := c.base + "/builds.json"
	if query != "" {
		u += "?" + query
	}

	var builds []RawBuild
	if err := c.getJSON(ctx, u, &builds); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.community[query] = communityEntry{builds: builds, at: c.now()}
	for len(c.community) > maxCommunityEntries {
		oldestKey := ""
		var oldestAt time.Time
		for k, e := range c.community {
			if oldestKey == "" || e.at.Before(oldestAt) {
				oldestKey, oldestAt = k, e.at
			}
		}
		delete(c.community, oldestKey)
	}
	c.mu.Unlock()

	return builds, nil
}

// FetchLeaderboard proxies the player rankings payload untouched, cached for
// five minutes.
func (c *Cache) FetchLeaderboard(ctx context.Context) (json.RawMessage, error) {
	c.mu.RLock()
	entry := c.leaderboard
	c.mu.RUnlock()
	if entry != nil && c.now().Sub(entry.at) < communityTTL {
		return entry.data, nil
	}

	body, err := c.get(ctx, c.base+"/players.json")
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.leaderboard = &rawEntry{data: body, at: c.now()}
	c.mu.Unlock()
	return body, nil
}

// FetchPlayerHeroStats proxies per-player hero statistics, cached ten
// minutes per player.
func (c *Cache) FetchPlayerHeroStats(ctx context.Context, playerID string) (json.RawMessage, error) {
	c.mu.RLock()
	entry, ok := c.playerStats[playerID]
	c.mu.RUnlock()
	if ok && c.now().Sub(entry.at) < statsTTL {
		return entry.data, nil
	}

	u := fmt.Sprintf("%s/players/%s/hero_statistics.json", c.base, url.PathEscape(playerID))
	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.playerStats[playerID] = rawEntry{data: body, at: c.now()}
	c.mu.Unlock()
	return body, nil
}

// FetchAllHeroStats returns dashboard statistics for every hero, cached ten
// minutes per time_frame+game_mode combination. The per-hero filter on the
// upstream endpoint is broken, so callers select their hero from this list.
func (c *Cache) FetchAllHeroStats(ctx context.Context, timeFrame, gameMode string) ([]HeroStat, error) {
	key := timeFrame + ":" + gameMode
	c.mu.RLock()
	entry, ok := c.heroStats[key]
	c.mu.RUnlock()
	if ok && c.now().Sub(entry.at) < statsTTL {
		return entry.stats, nil
	}

	u := fmt.Sprintf("%s/dashboard/hero_statistics.json?time_frame=%s&game_mode=%s",
		c.base, url.QueryEscape(timeFrame), url.QueryEscape(gameMode))
	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	// Payload is either {"hero_statistics": [...]} or a bare array.
	var wrapped struct {
		HeroStatistics []HeroStat `json:"hero_statistics"`
	}
	stats := []HeroStat{}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.HeroStatistics != nil {
		stats = wrapped.HeroStatistics
	} else if err := json.Unmarshal(body, &stats); err != nil {
		return nil, apperr.Wrap(apperr.Upstream, err, "Omeda hero stats API returned malformed JSON")
	}

	c.mu.Lock()
	c.heroStats[key] = heroStatsEntry{stats: stats, at: c.now()}
	c.mu.Unlock()
	return stats, nil
}

// Warm pre-fetches the item snapshot so the first generate-build request is
// fast. Failures are logged and tolerated; the next request retries.
func (c *Cache) Warm(ctx context.Context) {
	if _, err := c.FetchItems(ctx, true); err != nil {
		log.Printf("[omeda] failed to warm cache: %v", err)
		return
	}
	log.Printf("[omeda] item cache warmed successfully")
}
