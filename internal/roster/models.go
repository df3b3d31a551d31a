package roster

import "gorm.io/datatypes"

// Character is the domain shape handed to the rest of the pipeline.
type Character struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
}

// CanPlay reports whether role is among the character's valid roles.
func (c Character) CanPlay(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

type CharacterRow struct {
	ID    string         `gorm:"primaryKey"`
	Name  string         `gorm:"not null"`
	Roles datatypes.JSON `gorm:"not null"`
}

func (CharacterRow) TableName() string { return "characters" }

// ItemRow is the static item seed table. The live item pool comes from the
// omeda cache; this table only mirrors the baseline shipped with the app.
type ItemRow struct {
	ID          string `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Category    string `gorm:"not null"`
	Price       int    `gorm:"not null"`
	Description string `gorm:"not null"`
}

func (ItemRow) TableName() string { return "items" }
