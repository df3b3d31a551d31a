package roster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the read-only character/role lookup backed by the seed tables.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Seed inserts the character and item tables idempotently. Existing rows are
// left untouched so restarts never clobber data.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, c := range seedCharacters {
			roles, err := json.Marshal(c.Roles)
			if err != nil {
				return err
			}
			row := CharacterRow{ID: c.ID, Name: c.Name, Roles: roles}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
				return fmt.Errorf("seed character %s: %w", c.ID, err)
			}
		}
		for _, i := range seedItems {
			row := ItemRow{ID: i.ID, Name: i.Name, Category: i.Category, Price: i.Price, Description: i.Description}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
				return fmt.Errorf("seed item %s: %w", i.ID, err)
			}
		}
		return nil
	})
}

// GetCharacter is a point lookup. A missing id returns (nil, nil).
func (s *Store) GetCharacter(ctx context.Context, id string) (*Character, error) {
	var row CharacterRow
	if err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rowToCharacter(row)
}

// ListCharacters returns the full roster.
func (s *Store) ListCharacters(ctx context.Context) ([]Character, error) {
	var rows []CharacterRow
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]Character, 0, len(rows))
	for _, row := range rows {
		c, err := rowToCharacter(row)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, nil
}

// ResolveNames batch-resolves ids to display names, preserving input order.
// Unknown ids echo back unchanged; this is display enrichment, not validation.
func (s *Store) ResolveNames(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return []string{}, nil
	}
	var rows []CharacterRow
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]string, len(rows))
	for _, r := range rows {
		byID[r.ID] = r.Name
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := byID[id]; ok {
			out = append(out, name)
		} else {
			out = append(out, id)
		}
	}
	return out, nil
}

func rowToCharacter(row CharacterRow) (*Character, error) {
	var roles []string
	if err := json.Unmarshal(row.Roles, &roles); err != nil {
		return nil, fmt.Errorf("character %s has malformed roles: %w", row.ID, err)
	}
	return &Character{ID: row.ID, Name: row.Name, Roles: roles}, nil
}
