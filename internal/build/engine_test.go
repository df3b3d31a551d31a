package build

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/predforge/predforge/internal/ai"
	"github.com/predforge/predforge/internal/apperr"
	"github.com/predforge/predforge/internal/omeda"
	"github.com/predforge/predforge/internal/roster"
)

type fakeProvider struct {
	reply string
	err   error
	calls int
	last  []ai.Message
}

func (p *fakeProvider) Chat(ctx context.Context, messages []ai.Message) (string, error) {
	_ = ctx
	p.calls++
	p.last = append([]ai.Message(nil), messages...)
	if p.err != nil {
		return "", p.err
	}
	return p.reply, nil
}

func testItems() []omeda.Item {
	return []omeda.Item{
		{ID: "warden-crest", Name: "Warden Crest", SlotType: "Crest", Rarity: "Legendary", Price: 750},
		{ID: "dust-devil", Name: "Dust Devil", SlotType: "Passive", Rarity: "Epic", Price: 2800},
		{ID: "oathkeeper", Name: "Oathkeeper", SlotType: "Passive", Rarity: "Epic", Price: 3000},
		{ID: "tainted-scepter", Name: "Tainted Scepter", SlotType: "Passive", Rarity: "Epic", Price: 2500},
		{ID: "windcaller", Name: "Windcaller", SlotType: "Active", Rarity: "Epic", Price: 2600},
		{ID: "galaxy-greaves", Name: "Galaxy Greaves", SlotType: "Passive", Rarity: "Legendary", Price: 3200},
		{ID: "early-blade", Name: "Early Blade", SlotType: "Passive", Rarity: "Common", Price: 500},
	}
}

const validReply = `{
	"crest": "warden-crest",
	"items": ["dust-devil", "oathkeeper", "tainted-scepter", "windcaller", "galaxy-greaves"],
	"strategy": "Farm safely until your first item spike, then rotate with your jungler.",
	"tips": "Hold your dash for Khaimera's leap."
}`

func kira() roster.Character {
	return roster.Character{ID: "kira", Name: "Kira", Roles: []string{"adc"}}
}

func TestRecommend_ValidReply(t *testing.T) {
	prov := &fakeProvider{reply: validReply}
	engine := NewEngine(prov)

	rec, err := engine.Recommend(context.Background(), kira(), "adc", nil, testItems())
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if rec.Crest == nil || rec.Crest.ID != "warden-crest" {
		t.Fatalf("unexpected crest: %+v", rec.Crest)
	}
	if rec.Crest.Category != "crest" {
		t.Fatalf("crest category = %q", rec.Crest.Category)
	}
	if len(rec.Items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(rec.Items))
	}
	if rec.Items[0].ID != "dust-devil" || rec.Items[0].Category != "passive" {
		t.Fatalf("unexpected first item: %+v", rec.Items[0])
	}
	if rec.Items[3].Category != "active" {
		t.Fatalf("expected windcaller category active, got %q", rec.Items[3].Category)
	}
	if rec.Strategy == "" {
		t.Fatalf("expected strategy")
	}
	if rec.Tips == nil || *rec.Tips == "" {
		t.Fatalf("expected tips")
	}
}

func TestRecommend_FencedReplyAccepted(t *testing.T) {
	prov := &fakeProvider{reply: "```json\n" + validReply + "\n```"}
	engine := NewEngine(prov)

	rec, err := engine.Recommend(context.Background(), kira(), "adc", nil, testItems())
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if len(rec.Items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(rec.Items))
	}
}

func TestRecommend_PromptExcludesCheapItems(t *testing.T) {
	prov := &fakeProvider{reply: validReply}
	engine := NewEngine(prov)

	if _, err := engine.Recommend(context.Background(), kira(), "adc", nil, testItems()); err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if len(prov.last) != 2 {
		t.Fatalf("expected system+user messages, got %d", len(prov.last))
	}
	user := prov.last[1].Content
	if strings.Contains(user, "early-blade") {
		t.Fatalf("prompt should not contain sub-2000 items")
	}
	if !strings.Contains(user, "warden-crest") {
		t.Fatalf("prompt should contain cheap crests")
	}
	if !strings.Contains(user, "Enemy team: None selected") {
		t.Fatalf("expected empty enemy line, got:\n%s", user)
	}
}

func TestRecommend_CheapItemSlugRejected(t *testing.T) {
	// early-blade exists upstream but is below the pool threshold, so the
	// validator must not resolve it.
	reply := strings.Replace(validReply, `"galaxy-greaves"`, `"early-blade"`, 1)
	prov := &fakeProvider{reply: reply}
	engine := NewEngine(prov)

	_, err := engine.Recommend(context.Background(), kira(), "adc", nil, testItems())
	if !apperr.Is(err, apperr.ModelOutput) {
		t.Fatalf("expected ModelOutput error, got %v", err)
	}
	if !strings.Contains(err.Error(), "early-blade") {
		t.Fatalf("expected offending slug in error, got %v", err)
	}
}

func TestRecommend_WrongItemCount(t *testing.T) {
	four := `{"crest": "warden-crest", "items": ["dust-devil", "oathkeeper", "tainted-scepter", "windcaller"], "strategy": "s", "tips": ""}`
	six := `{"crest": "warden-crest", "items": ["dust-devil", "oathkeeper", "tainted-scepter", "windcaller", "galaxy-greaves", "dust-devil"], "strategy": "s", "tips": ""}`

	for _, reply := range []string{four, six} {
		prov := &fakeProvider{reply: reply}
		engine := NewEngine(prov)
		_, err := engine.Recommend(context.Background(), kira(), "adc", nil, testItems())
		if !apperr.Is(err, apperr.ModelOutput) {
			t.Fatalf("expected ModelOutput error for %q, got %v", reply, err)
		}
	}
}

func TestRecommend_UnknownItemSlug(t *testing.T) {
	reply := strings.Replace(validReply, `"oathkeeper"`, `"infinity-edge"`, 1)
	prov := &fakeProvider{reply: reply}
	engine := NewEngine(prov)

	_, err := engine.Recommend(context.Background(), kira(), "adc", nil, testItems())
	if !apperr.Is(err, apperr.ModelOutput) {
		t.Fatalf("expected ModelOutput error, got %v", err)
	}
	if !strings.Contains(err.Error(), "infinity-edge") {
		t.Fatalf("expected offending slug in error, got %v", err)
	}
}

func TestRecommend_UnknownCrestSlug(t *testing.T) {
	reply := strings.Replace(validReply, `"warden-crest"`, `"made-up-crest"`, 1)
	prov := &fakeProvider{reply: reply}
	engine := NewEngine(prov)

	_, err := engine.Recommend(context.Background(), kira(), "adc", nil, testItems())
	if !apperr.Is(err, apperr.ModelOutput) {
		t.Fatalf("expected ModelOutput error, got %v", err)
	}
	if !strings.Contains(err.Error(), "made-up-crest") {
		t.Fatalf("expected offending crest in error, got %v", err)
	}
}

func TestRecommend_EmptyStrategy(t *testing.T) {
	reply := `{"crest": "warden-crest", "items": ["dust-devil", "oathkeeper", "tainted-scepter", "windcaller", "galaxy-greaves"], "strategy": "   ", "tips": ""}`
	prov := &fakeProvider{reply: reply}
	engine := NewEngine(prov)

	_, err := engine.Recommend(context.Background(), kira(), "adc", nil, testItems())
	if !apperr.Is(err, apperr.ModelOutput) {
		t.Fatalf("expected ModelOutput error, got %v", err)
	}
}

func TestRecommend_NonStringItems(t *testing.T) {
	reply := `{"crest": "warden-crest", "items": [1, 2, 3, 4, 5], "strategy": "s", "tips": ""}`
	prov := &fakeProvider{reply: reply}
	engine := NewEngine(prov)

	_, err := engine.Recommend(context.Background(), kira(), "adc", nil, testItems())
	if !apperr.Is(err, apperr.ModelOutput) {
		t.Fatalf("expected ModelOutput error, got %v", err)
	}
}

func TestRecommend_InvalidJSON(t *testing.T) {
	prov := &fakeProvider{reply: "Sure! Here is a great build for Kira..."}
	engine := NewEngine(prov)

	_, err := engine.Recommend(context.Background(), kira(), "adc", nil, testItems())
	if !apperr.Is(err, apperr.ModelOutput) {
		t.Fatalf("expected ModelOutput error, got %v", err)
	}
}

func TestRecommend_ProviderFailure(t *testing.T) {
	prov := &fakeProvider{err: errors.New("connection refused")}
	engine := NewEngine(prov)

	_, err := engine.Recommend(context.Background(), kira(), "adc", nil, testItems())
	if !apperr.Is(err, apperr.Upstream) {
		t.Fatalf("expected Upstream error, got %v", err)
	}
}

func TestRecommend_EmptyTipsBecomeNil(t *testing.T) {
	reply := strings.Replace(validReply, `"Hold your dash for Khaimera's leap."`, `""`, 1)
	prov := &fakeProvider{reply: reply}
	engine := NewEngine(prov)

	rec, err := engine.Recommend(context.Background(), kira(), "adc", nil, testItems())
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if rec.Tips != nil {
		t.Fatalf("expected nil tips, got %q", *rec.Tips)
	}
}
