package build

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/predforge/predforge/internal/ai"
	"github.com/predforge/predforge/internal/apperr"
	"github.com/predforge/predforge/internal/omeda"
	"github.com/predforge/predforge/internal/roster"
)

// Engine turns a (character, role, enemies, item pool) tuple into exactly one
// validated recommendation via a single LLM call. The model is untrusted: it
// can hallucinate slugs, drop fields or wrap output in prose, so everything
// it returns passes strict validation before anything is persisted. Any
// violation fails the whole request; there is no repair and no retry.
type Engine struct {
	provider ai.Provider
}

func NewEngine(provider ai.Provider) *Engine {
	return &Engine{provider: provider}
}

// minFinalItemPrice keeps starter components out of the prompt: only Crests
// (any price) and endgame items make the pool.
const minFinalItemPrice = 2000

const systemPrompt = `You are a build advisor for the MOBA game Predecessor by Omeda Studios.

You will be given:
1. A character and their role
2. The enemy team composition (if any)
3. The list of available FINAL BUILD items (2000+ gold) and Crests

CRITICAL: You may ONLY recommend items from the provided item pool. Do not invent items or use items from other games.

Respond with ONLY a valid JSON object — no markdown, no commentary, nothing else.
The object must have exactly these four keys:

{
  "crest": "crest-slug",
  "items": ["item-slug-1", "item-slug-2", "item-slug-3", "item-slug-4", "item-slug-5"],
  "strategy": "2–4 sentence tactical overview tailored to the matchup.",
  "tips": "1–2 concrete, actionable tips."
}

Rules:
- crest must be a SINGLE Crest item slug appropriate for the character and role. Choose the Legendary (evolved) form of the crest.
- items must contain EXACTLY 5 UNIQUE non-Crest item slugs from the provided pool. These are endgame items only.
- Order the items as a realistic build path (first purchase → final item).
- Strategy must account for the enemy team composition when provided.
- Tips must be specific (timing windows, positioning, ability combos, target priority).`

var codeFenceRe = regexp.MustCompile("(?s)^```(?:json)?\\s*(.*?)\\s*```$")

type modelReply struct {
	Crest    string          `json:"crest"`
	Items    json.RawMessage `json:"items"`
	Strategy string          `json:"strategy"`
	Tips     string          `json:"tips"`
}

// Recommendation is the engine's validated output. Every item reference has
// been resolved against the pool snapshot the prompt was built from.
type Recommendation struct {
	Crest    *ResolvedItem
	Items    []ResolvedItem
	Strategy string
	Tips     *string
}

// FilterPool reduces the full item snapshot to the prompt pool: Crests at
// any price plus non-Crest items at or above the final-build threshold.
func FilterPool(items []omeda.Item) []omeda.Item {
	out := make([]omeda.Item, 0, len(items))
	for _, it := range items {
		if it.SlotType == "Crest" || it.Price >= minFinalItemPrice {
			out = append(out, it)
		}
	}
	return out
}

func buildUserMessage(character roster.Character, role string, enemies []roster.Character, pool []omeda.Item) string {
	enemyLine := "None selected"
	if len(enemies) > 0 {
		names := make([]string, 0, len(enemies))
		for _, e := range enemies {
			names = append(names, e.Name)
		}
		enemyLine = strings.Join(names, ", ")
	}

	// Group the pool by slot type, slots ordered by first appearance so the
	// prompt is deterministic for a given snapshot.
	slotOrder := []string{}
	bySlot := map[string][]omeda.Item{}
	for _, it := range pool {
		slot := it.SlotType
		if slot == "" {
			slot = "Other"
		}
		if _, ok := bySlot[slot]; !ok {
			slotOrder = append(slotOrder, slot)
		}
		bySlot[slot] = append(bySlot[slot], it)
	}

	var sb strings.Builder
	for _, slot := range slotOrder {
		fmt.Fprintf(&sb, "\n=== %s Items ===\n", slot)
		for _, it := range bySlot[slot] {
			heroClass := it.HeroClass
			if heroClass == "" {
				heroClass = "Any"
			}
			fmt.Fprintf(&sb, "- %s: %s [%s] (%s) — %s\n", it.ID, it.Name, it.Rarity, heroClass, it.Description)
		}
	}

	return fmt.Sprintf(
		"Character: %s\nRole: %s\nEnemy team: %s\n\nAvailable items in Predecessor:%s\n\n"+
			"Pick exactly 5 items from the pool above using their slug IDs. Order them as a build path (first purchase → last). Write a short strategy and tips for this matchup.",
		character.Name, role, enemyLine, sb.String(),
	)
}

// Recommend issues the LLM call and validates the reply against the filtered
// pool. The supplied items are the full cache snapshot; filtering happens
// here so validation and prompt share one pool.
func (e *Engine) Recommend(ctx context.Context, character roster.Character, role string, enemies []roster.Character, items []omeda.Item) (*Recommendation, error) {
	pool := FilterPool(items)

	raw, err := e.provider.Chat(ctx, []ai.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: buildUserMessage(character, role, enemies, pool)},
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, err, "AI provider request failed")
	}

	return validateReply(raw, pool)
}

func validateReply(raw string, pool []omeda.Item) (*Recommendation, error) {
	// Models sometimes wrap the object in a markdown fence despite the
	// instruction not to; strip one before parsing.
	stripped := strings.TrimSpace(raw)
	if m := codeFenceRe.FindStringSubmatch(stripped); m != nil {
		stripped = strings.TrimSpace(m[1])
	}

	var reply modelReply
	if err := json.Unmarshal([]byte(stripped), &reply); err != nil {
		return nil, apperr.Wrap(apperr.ModelOutput, err, "Model returned invalid JSON")
	}

	var slugs []string
	if err := json.Unmarshal(reply.Items, &slugs); err != nil {
		return nil, apperr.New(apperr.ModelOutput, "Model returned a non-array or non-string items field")
	}
	if len(slugs) != 5 {
		return nil, apperr.New(apperr.ModelOutput, "Expected exactly 5 items, got %d", len(slugs))
	}

	byID := make(map[string]omeda.Item, len(pool))
	for _, it := range pool {
		byID[it.ID] = it
	}

	var crest *ResolvedItem
	if reply.Crest != "" {
		it, ok := byID[reply.Crest]
		if !ok {
			return nil, apperr.New(apperr.ModelOutput, "Model returned invalid crest slug: %q", reply.Crest)
		}
		r := resolve(it)
		r.Category = "crest"
		crest = &r
	}

	resolved := make([]ResolvedItem, 0, 5)
	var badSlugs []string
	for _, slug := range slugs {
		it, ok := byID[slug]
		if !ok {
			badSlugs = append(badSlugs, slug)
			continue
		}
		resolved = append(resolved, resolve(it))
	}
	if len(badSlugs) > 0 {
		return nil, apperr.New(apperr.ModelOutput, "Model returned invalid item slugs: %s", strings.Join(badSlugs, ", "))
	}

	strategy := strings.TrimSpace(reply.Strategy)
	if strategy == "" {
		return nil, apperr.New(apperr.ModelOutput, "Model returned empty or missing strategy")
	}

	var tips *string
	if t := strings.TrimSpace(reply.Tips); t != "" {
		tips = &t
	}

	return &Recommendation{Crest: crest, Items: resolved, Strategy: strategy, Tips: tips}, nil
}

func resolve(it omeda.Item) ResolvedItem {
	category := strings.ToLower(it.SlotType)
	if category == "" {
		category = "passive"
	}
	return ResolvedItem{
		ID:          it.ID,
		Name:        it.Name,
		Category:    category,
		Price:       it.Price,
		Description: it.Description,
		Rarity:      it.Rarity,
		HeroClass:   it.HeroClass,
		Stats:       it.Stats,
	}
}
