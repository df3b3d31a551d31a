package build

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// ResolvedItem is an item slug re-hydrated into a full record. This is what
// gets persisted and returned to clients; bare slugs never leave the engine.
type ResolvedItem struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Category    string             `json:"category"`
	Price       int                `json:"price"`
	Description string             `json:"description"`
	Rarity      string             `json:"rarity"`
	HeroClass   string             `json:"hero_class"`
	Stats       map[string]float64 `json:"stats"`
}

// Data is the stored build payload: one optional crest plus the five items.
type Data struct {
	Crest *ResolvedItem  `json:"crest"`
	Items []ResolvedItem `json:"items"`
}

// ParseData reads a stored items_json payload. Early rows stored a bare item
// array; current rows store {crest, items}. Both shapes must keep reading.
func ParseData(raw []byte) (Data, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []ResolvedItem
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return Data{}, fmt.Errorf("parse legacy build data: %w", err)
		}
		return Data{Crest: nil, Items: items}, nil
	}
	var d Data
	if err := json.Unmarshal(trimmed, &d); err != nil {
		return Data{}, fmt.Errorf("parse build data: %w", err)
	}
	if d.Items == nil {
		d.Items = []ResolvedItem{}
	}
	return d, nil
}

type History struct {
	ID          uint64         `gorm:"primaryKey;autoIncrement"`
	CharacterID string         `gorm:"not null;index"`
	Role        string         `gorm:"not null"`
	EnemyIDs    datatypes.JSON `gorm:"not null"`
	ItemsJSON   datatypes.JSON `gorm:"not null"`
	Strategy    string         `gorm:"type:text;not null"`
	CreatedAt   time.Time
}

func (History) TableName() string { return "build_history" }

type SavedBuild struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	BuildHistoryID uint64    `gorm:"uniqueIndex;not null" json:"build_history_id"`
	Name           *string   `json:"name"`
	Notes          *string   `json:"notes"`
	SavedAt        time.Time `json:"saved_at"`
}

func (SavedBuild) TableName() string { return "saved_builds" }

// HistoryEntry is a history row enriched for the client: resolved names,
// parsed build payload and the saved flag.
type HistoryEntry struct {
	ID            uint64         `json:"id"`
	CharacterID   string         `json:"character_id"`
	CharacterName string         `json:"character_name"`
	Role          string         `json:"role"`
	EnemyIDs      []string       `json:"enemy_ids"`
	EnemyNames    []string       `json:"enemy_names"`
	Crest         *ResolvedItem  `json:"crest"`
	Items         []ResolvedItem `json:"items"`
	Strategy      string         `json:"strategy"`
	CreatedAt     time.Time      `json:"created_at"`
	Saved         bool           `json:"saved"`
}

// SavedEntry is a saved build joined with its history row, enriched the same
// way as HistoryEntry.
type SavedEntry struct {
	ID             uint64         `json:"id"`
	BuildHistoryID uint64         `json:"build_history_id"`
	Name           *string        `json:"name"`
	Notes          *string        `json:"notes"`
	SavedAt        time.Time      `json:"saved_at"`
	CharacterID    string         `json:"character_id"`
	CharacterName  string         `json:"character_name"`
	Role           string         `json:"role"`
	EnemyIDs       []string       `json:"enemy_ids"`
	EnemyNames     []string       `json:"enemy_names"`
	Crest          *ResolvedItem  `json:"crest"`
	Items          []ResolvedItem `json:"items"`
	Strategy       string         `json:"strategy"`
	CreatedAt      time.Time      `json:"created_at"`
}
