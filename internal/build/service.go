package build

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/predforge/predforge/internal/apperr"
	"github.com/predforge/predforge/internal/omeda"
	"github.com/predforge/predforge/internal/roster"
	"gorm.io/datatypes"
)

const maxEnemies = 5

// Service orchestrates a build request end to end: validate inputs against
// the roster, pull the item pool from the omeda cache, run the engine, then
// persist the result. Validation runs strictly before any upstream call so a
// bad request never costs an LLM invocation.
type Service struct {
	roster *roster.Store
	cache  *omeda.Cache
	engine *Engine
	repo   *Repo
}

func NewService(rs *roster.Store, cache *omeda.Cache, engine *Engine, repo *Repo) *Service {
	return &Service{roster: rs, cache: cache, engine: engine, repo: repo}
}

// GenerateRequest carries the decoded request body. EnemyIDs is a pointer so
// a missing or non-array field is distinguishable from an empty list.
type GenerateRequest struct {
	CharacterID string
	Role        string
	EnemyIDs    *[]string
}

type GenerateResult struct {
	Character *roster.Character
	Role      string
	Enemies   []roster.Character
	Crest     *ResolvedItem
	Items     []ResolvedItem
	Strategy  string
	Tips      *string
	HistoryID uint64
}

// Generate validates, recommends and persists one build. Validation failures
// carry the exact message for the offending rule; checks run in a fixed
// order and the first failure wins.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	character, err := s.roster.GetCharacter(ctx, req.CharacterID)
	if err != nil {
		return nil, err
	}
	if character == nil {
		return nil, apperr.New(apperr.Validation, "Character %q not found", req.CharacterID)
	}

	if !roster.ValidRole(req.Role) {
		return nil, apperr.New(apperr.Validation, "Invalid role %q", req.Role)
	}
	if !character.CanPlay(req.Role) {
		return nil, apperr.New(apperr.Validation, "%s cannot play %s", character.Name, req.Role)
	}

	if req.EnemyIDs == nil {
		return nil, apperr.New(apperr.Validation, "enemyIds must be an array")
	}
	enemyIDs := *req.EnemyIDs
	if len(enemyIDs) > maxEnemies {
		return nil, apperr.New(apperr.Validation, "Maximum %d enemies allowed", maxEnemies)
	}
	for _, id := range enemyIDs {
		if id == req.CharacterID {
			return nil, apperr.New(apperr.Validation, "Cannot add your own character as an enemy")
		}
	}
	enemies := make([]roster.Character, 0, len(enemyIDs))
	for _, id := range enemyIDs {
		enemy, err := s.roster.GetCharacter(ctx, id)
		if err != nil {
			return nil, err
		}
		if enemy == nil {
			return nil, apperr.New(apperr.Validation, "Enemy %q not found", id)
		}
		enemies = append(enemies, *enemy)
	}

	items, err := s.cache.FetchItems(ctx, false)
	if err != nil {
		return nil, err
	}

	rec, err := s.engine.Recommend(ctx, *character, req.Role, enemies, items)
	if err != nil {
		return nil, err
	}

	enemyJSON, err := json.Marshal(enemyIDs)
	if err != nil {
		return nil, err
	}
	itemsJSON, err := json.Marshal(Data{Crest: rec.Crest, Items: rec.Items})
	if err != nil {
		return nil, err
	}

	h := History{
		CharacterID: req.CharacterID,
		Role:        req.Role,
		EnemyIDs:    datatypes.JSON(enemyJSON),
		ItemsJSON:   datatypes.JSON(itemsJSON),
		Strategy:    rec.Strategy,
	}
	if err := s.repo.Append(ctx, &h); err != nil {
		return nil, err
	}
	log.Printf("[build] generated build %d for %s (%s), %d enemies", h.ID, character.Name, req.Role, len(enemies))

	return &GenerateResult{
		Character: character,
		Role:      req.Role,
		Enemies:   enemies,
		Crest:     rec.Crest,
		Items:     rec.Items,
		Strategy:  rec.Strategy,
		Tips:      rec.Tips,
		HistoryID: h.ID,
	}, nil
}

// History returns the newest entries enriched with character names and the
// parsed build payload.
func (s *Service) History(ctx context.Context, limit int) ([]HistoryEntry, error) {
	rows, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]HistoryEntry, 0, len(rows))
	for _, row := range rows {
		entry, err := s.enrichHistory(ctx, row)
		if err != nil {
			return nil, err
		}
		out = append(out, *entry)
	}
	return out, nil
}

func (s *Service) enrichHistory(ctx context.Context, row HistoryRow) (*HistoryEntry, error) {
	enemyIDs, err := decodeEnemyIDs(row.EnemyIDs)
	if err != nil {
		return nil, fmt.Errorf("history %d: %w", row.ID, err)
	}
	data, err := ParseData(row.ItemsJSON)
	if err != nil {
		return nil, fmt.Errorf("history %d: %w", row.ID, err)
	}
	names, err := s.roster.ResolveNames(ctx, append([]string{row.CharacterID}, enemyIDs...))
	if err != nil {
		return nil, err
	}
	return &HistoryEntry{
		ID:            row.ID,
		CharacterID:   row.CharacterID,
		CharacterName: names[0],
		Role:          row.Role,
		EnemyIDs:      enemyIDs,
		EnemyNames:    names[1:],
		Crest:         data.Crest,
		Items:         data.Items,
		Strategy:      row.Strategy,
		CreatedAt:     row.CreatedAt,
		Saved:         row.Saved,
	}, nil
}

// SaveBuild bookmarks a history entry. Duplicate saves surface as
// AlreadySaved from the repo layer.
func (s *Service) SaveBuild(ctx context.Context, historyID uint64, name, notes *string) (*SavedBuild, error) {
	return s.repo.Save(ctx, historyID, name, notes)
}

// ListSaved returns all bookmarked builds, most recently saved first.
func (s *Service) ListSaved(ctx context.Context) ([]SavedEntry, error) {
	rows, err := s.repo.ListSaved(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]SavedEntry, 0, len(rows))
	for _, row := range rows {
		enemyIDs, err := decodeEnemyIDs(row.EnemyIDs)
		if err != nil {
			return nil, fmt.Errorf("saved build %d: %w", row.ID, err)
		}
		data, err := ParseData(row.ItemsJSON)
		if err != nil {
			return nil, fmt.Errorf("saved build %d: %w", row.ID, err)
		}
		names, err := s.roster.ResolveNames(ctx, append([]string{row.CharacterID}, enemyIDs...))
		if err != nil {
			return nil, err
		}
		out = append(out, SavedEntry{
			ID:             row.ID,
			BuildHistoryID: row.BuildHistoryID,
			Name:           row.Name,
			Notes:          row.Notes,
			SavedAt:        row.SavedAt,
			CharacterID:    row.CharacterID,
			CharacterName:  names[0],
			Role:           row.Role,
			EnemyIDs:       enemyIDs,
			EnemyNames:     names[1:],
			Crest:          data.Crest,
			Items:          data.Items,
			Strategy:       row.Strategy,
			CreatedAt:      row.CreatedAt,
		})
	}
	return out, nil
}

func decodeEnemyIDs(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("parse enemy ids: %w", err)
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}
