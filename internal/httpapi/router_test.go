package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	gormsqlite "github.com/glebarez/sqlite"
	"github.com/predforge/predforge/internal/ai"
	"github.com/predforge/predforge/internal/build"
	"github.com/predforge/predforge/internal/omeda"
	"github.com/predforge/predforge/internal/roster"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type cannedProvider struct {
	reply string
}

func (p *cannedProvider) Chat(ctx context.Context, messages []ai.Message) (string, error) {
	_ = ctx
	_ = messages
	return p.reply, nil
}

const apiItemsPayload = `[
	{"id": 1, "display_name": "Warden Crest", "slug": "warden-crest", "slot_type": "Crest", "rarity": "Legendary", "total_price": 750},
	{"id": 2, "display_name": "Dust Devil", "slug": "dust-devil", "slot_type": "Passive", "rarity": "Epic", "total_price": 2800},
	{"id": 3, "display_name": "Oathkeeper", "slug": "oathkeeper", "slot_type": "Passive", "rarity": "Epic", "total_price": 3000},
	{"id": 4, "display_name": "Tainted Scepter", "slug": "tainted-scepter", "slot_type": "Passive", "rarity": "Epic", "total_price": 2500},
	{"id": 5, "display_name": "Windcaller", "slug": "windcaller", "slot_type": "Active", "rarity": "Epic", "total_price": 2600},
	{"id": 6, "display_name": "Galaxy Greaves", "slug": "galaxy-greaves", "slot_type": "Common Boot", "rarity": "Common", "total_price": 3200}
]`

const apiValidReply = `{
	"crest": "warden-crest",
	"items": ["dust-devil", "oathkeeper", "tainted-scepter", "windcaller", "galaxy-greaves"],
	"strategy": "Scale into the late game.",
	"tips": ""
}`

func newTestRouter(t *testing.T, upstreamDown bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mux := http.NewServeMux()
	mux.HandleFunc("/items.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, apiItemsPayload)
	})
	mux.HandleFunc("/heroes.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"id": 14, "display_name": "Kira", "slug": "kira", "roles": ["Carry"]}]`)
	})
	mux.HandleFunc("/builds.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"id": 10, "title": "crit kira", "role": "carry", "hero_id": 14, "crest_id": 1, "item1_id": 2, "item2_id": 99999}]`)
	})
	mux.HandleFunc("/players.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"rank": 1}]`)
	})
	mux.HandleFunc("/dashboard/hero_statistics.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"hero_statistics": [{"hero_id": 14, "winrate": 52.5}, {"hero_id": 15, "winrate": 47.1}]}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	base := srv.URL
	client := srv.Client()
	if upstreamDown {
		dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		t.Cleanup(dead.Close)
		base = dead.URL
		client = dead.Client()
	}

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&roster.CharacterRow{}, &roster.ItemRow{}, &build.History{}, &build.SavedBuild{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	if err := roster.Seed(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	rs := roster.NewStore(db)
	cache := omeda.NewCache(base, client, nil)
	engine := build.NewEngine(&cannedProvider{reply: apiValidReply})
	repo := build.NewRepo(db)
	svc := build.NewService(rs, cache, engine, repo)

	return NewRouter(rs, cache, svc)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("%s %s: non-JSON body %q", method, path, w.Body.String())
	}
	return w, decoded
}

func TestListCharactersEndpoint(t *testing.T) {
	r := newTestRouter(t, false)

	w, body := doJSON(t, r, http.MethodGet, "/api/characters", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	characters, found := body["characters"].([]any)
	if !found || len(characters) == 0 {
		t.Fatalf("expected characters, got %v", body)
	}
}

func TestItemsEndpoint(t *testing.T) {
	r := newTestRouter(t, false)

	w, body := doJSON(t, r, http.MethodGet, "/api/items", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body["source"] != "omeda.city" {
		t.Fatalf("source = %v", body["source"])
	}
	if body["count"].(float64) != 6 {
		t.Fatalf("count = %v", body["count"])
	}

	w, body = doJSON(t, r, http.MethodGet, "/api/items/endgame", "")
	if w.Code != http.StatusOK {
		t.Fatalf("endgame status = %d", w.Code)
	}
	// Galaxy Greaves is Common rarity in this payload, so it is filtered out.
	if body["count"].(float64) != 5 {
		t.Fatalf("endgame count = %v", body["count"])
	}
}

func TestGenerateBuildEndpoint_ValidationStatus(t *testing.T) {
	r := newTestRouter(t, false)

	w, body := doJSON(t, r, http.MethodPost, "/api/generate-build",
		`{"characterId": "kira", "role": "support", "enemyIds": []}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body %v", w.Code, body)
	}
	if body["error"] != "Kira cannot play support" {
		t.Fatalf("error = %v", body["error"])
	}
}

func TestGenerateBuildEndpoint_Success(t *testing.T) {
	r := newTestRouter(t, false)

	w, body := doJSON(t, r, http.MethodPost, "/api/generate-build",
		`{"characterId": "kira", "role": "adc", "enemyIds": ["muriel"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %v", w.Code, body)
	}
	if body["historyId"].(float64) == 0 {
		t.Fatalf("expected historyId, got %v", body)
	}
	if body["strategy"] == "" {
		t.Fatalf("expected strategy")
	}
	if body["tips"] != nil {
		t.Fatalf("expected null tips, got %v", body["tips"])
	}
}

func TestGenerateBuildEndpoint_UpstreamDown(t *testing.T) {
	r := newTestRouter(t, true)

	w, body := doJSON(t, r, http.MethodPost, "/api/generate-build",
		`{"characterId": "kira", "role": "adc", "enemyIds": []}`)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, body %v", w.Code, body)
	}
	if body["error"] == "" {
		t.Fatalf("expected error message")
	}
}

func TestSaveBuildEndpoint_Statuses(t *testing.T) {
	r := newTestRouter(t, false)

	// 404 for an id that was never generated.
	w, body := doJSON(t, r, http.MethodPost, "/api/saved-builds", `{"historyId": 12345}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, body %v", w.Code, body)
	}

	// 400 without an id.
	w, _ = doJSON(t, r, http.MethodPost, "/api/saved-builds", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}

	_, generated := doJSON(t, r, http.MethodPost, "/api/generate-build",
		`{"characterId": "kira", "role": "adc", "enemyIds": []}`)
	historyID := generated["historyId"].(float64)

	w, body = doJSON(t, r, http.MethodPost, "/api/saved-builds",
		fmt.Sprintf(`{"historyId": %d, "name": "mine"}`, int(historyID)))
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %v", w.Code, body)
	}

	w, body = doJSON(t, r, http.MethodPost, "/api/saved-builds",
		fmt.Sprintf(`{"historyId": %d}`, int(historyID)))
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, body %v", w.Code, body)
	}
	if body["error"] != "Build is already saved" {
		t.Fatalf("error = %v", body["error"])
	}
}

func TestCommunityBuildsEndpoint_Enrichment(t *testing.T) {
	r := newTestRouter(t, false)

	w, body := doJSON(t, r, http.MethodGet, "/api/community-builds?role=carry", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %v", w.Code, body)
	}
	builds := body["builds"].([]any)
	if len(builds) != 1 {
		t.Fatalf("expected 1 build, got %d", len(builds))
	}
	b := builds[0].(map[string]any)

	hero := b["hero"].(map[string]any)
	if hero["name"] != "Kira" {
		t.Fatalf("hero = %v", hero)
	}
	crest := b["crest"].(map[string]any)
	if crest["name"] != "Warden Crest" {
		t.Fatalf("crest = %v", crest)
	}

	items := b["items"].([]any)
	first := items[0].(map[string]any)
	if first["name"] != "Dust Devil" {
		t.Fatalf("first item = %v", first)
	}
	// Unknown item ids resolve to a placeholder, empty slots to null.
	second := items[1].(map[string]any)
	if second["name"] != "Unknown" {
		t.Fatalf("second item = %v", second)
	}
	if items[2] != nil {
		t.Fatalf("expected empty slot to be null, got %v", items[2])
	}
}

func TestAllHeroStatsEndpoint(t *testing.T) {
	r := newTestRouter(t, false)

	w, body := doJSON(t, r, http.MethodGet, "/api/heroes/all-stats", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %v", w.Code, body)
	}
	stats, found := body["stats"].([]any)
	if !found || len(stats) != 2 {
		t.Fatalf("expected 2 stat rows, got %v", body)
	}
}

func TestHeroStatsEndpoint_SelectsHero(t *testing.T) {
	r := newTestRouter(t, false)

	w, body := doJSON(t, r, http.MethodGet, "/api/heroes/14/stats?time_frame=1W&game_mode=ranked", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %v", w.Code, body)
	}
	stats, found := body["stats"].(map[string]any)
	if !found || stats["hero_id"].(float64) != 14 {
		t.Fatalf("expected hero 14 stats, got %v", body)
	}

	// A hero absent from the payload yields null, not an error.
	w, body = doJSON(t, r, http.MethodGet, "/api/heroes/999/stats", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body["stats"] != nil {
		t.Fatalf("expected null stats for unknown hero, got %v", body["stats"])
	}
}

func TestHeroStatsEndpoint_InvalidID(t *testing.T) {
	r := newTestRouter(t, false)

	w, body := doJSON(t, r, http.MethodGet, "/api/heroes/abc/stats", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body %v", w.Code, body)
	}
}

func TestUnknownRoute(t *testing.T) {
	r := newTestRouter(t, false)

	w, body := doJSON(t, r, http.MethodGet, "/api/nope", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	if body["error"] != "route not found" {
		t.Fatalf("error = %v", body["error"])
	}
}

func TestLeaderboardEndpoint_Passthrough(t *testing.T) {
	r := newTestRouter(t, false)

	req := httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if w.Body.String() != `[{"rank": 1}]` {
		t.Fatalf("expected raw passthrough, got %q", w.Body.String())
	}
}
