package build

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/predforge/predforge/internal/apperr"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Repo owns the build_history and saved_builds tables. History rows are
// append-only: nothing in this codebase updates or deletes them.
type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Append(ctx context.Context, h *History) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *Repo) GetHistory(ctx context.Context, id uint64) (*History, error) {
	var h History
	if err := r.db.WithContext(ctx).First(&h, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "Build not found in history")
		}
		return nil, err
	}
	return &h, nil
}

// HistoryRow is a history record plus the saved flag from the outer join.
type HistoryRow struct {
	ID          uint64
	CharacterID string
	Role        string
	EnemyIDs    datatypes.JSON
	ItemsJSON   datatypes.JSON
	Strategy    string
	CreatedAt   time.Time
	Saved       bool
}

// List returns the most recent history rows, newest first, with the saved
// flag resolved via LEFT JOIN against saved_builds.
func (r *Repo) List(ctx context.Context, limit int) ([]HistoryRow, error) {
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	var rows []HistoryRow
	err := r.db.WithContext(ctx).
		Table("build_history AS bh").
		Select("bh.id, bh.character_id, bh.role, bh.enemy_ids, bh.items_json, bh.strategy, bh.created_at, sb.id IS NOT NULL AS saved").
		Joins("LEFT JOIN saved_builds sb ON sb.build_history_id = bh.id").
		Order("bh.id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Save bookmarks a history row. The unique index on build_history_id is the
// correctness boundary for concurrent saves: the insert is attempted
// directly and a constraint violation maps to AlreadySaved. Never replace
// this with a check-then-insert.
func (r *Repo) Save(ctx context.Context, historyID uint64, name, notes *string) (*SavedBuild, error) {
	if _, err := r.GetHistory(ctx, historyID); err != nil {
		return nil, err
	}

	sb := SavedBuild{
		BuildHistoryID: historyID,
		Name:           name,
		Notes:          notes,
		SavedAt:        time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&sb).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint") {
			return nil, apperr.New(apperr.AlreadySaved, "Build is already saved")
		}
		return nil, err
	}
	return &sb, nil
}

// SavedRow is a saved build joined with its history record.
type SavedRow struct {
	ID             uint64
	BuildHistoryID uint64
	Name           *string
	Notes          *string
	SavedAt        time.Time
	CharacterID    string
	Role           string
	EnemyIDs       datatypes.JSON
	ItemsJSON      datatypes.JSON
	Strategy       string
	CreatedAt      time.Time
}

func (r *Repo) ListSaved(ctx context.Context) ([]SavedRow, error) {
	var rows []SavedRow
	err := r.db.WithContext(ctx).
		Table("saved_builds AS sb").
		Select("sb.id, sb.build_history_id, sb.name, sb.notes, sb.saved_at, bh.character_id, bh.role, bh.enemy_ids, bh.items_json, bh.strategy, bh.created_at").
		Joins("JOIN build_history bh ON bh.id = sb.build_history_id").
		Order("sb.saved_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
