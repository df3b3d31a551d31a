package omeda

import "encoding/json"

// Raw payload shapes as served by omeda.city. Fields we pass through
// untouched stay as json.RawMessage.

type RawEffect struct {
	Name            string `json:"name"`
	MenuDescription string `json:"menu_description"`
}

type RawItem struct {
	ID           int                `json:"id"`
	GameID       int                `json:"game_id"`
	DisplayName  string             `json:"display_name"`
	Slug         string             `json:"slug"`
	Image        string             `json:"image"`
	SlotType     string             `json:"slot_type"` // Passive, Active, Crest
	Rarity       string             `json:"rarity"`
	HeroClass    string             `json:"hero_class"`
	TotalPrice   int                `json:"total_price"`
	Stats        map[string]float64 `json:"stats"`
	Effects      []RawEffect        `json:"effects"`
	Requirements json.RawMessage    `json:"requirements"`
	BuildPaths   json.RawMessage    `json:"build_paths"`
}

type RawHero struct {
	ID          int      `json:"id"`
	DisplayName string   `json:"display_name"`
	Slug        string   `json:"slug"`
	Image       string   `json:"image"`
	Roles       []string `json:"roles"`
}

type RawBuild struct {
	ID             int64           `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Role           string          `json:"role"`
	Author         json.RawMessage `json:"author"`
	UpvotesCount   int             `json:"upvotes_count"`
	DownvotesCount int             `json:"downvotes_count"`
	GameVersion    struct {
		Name string `json:"name"`
	} `json:"game_version"`
	SkillOrder json.RawMessage `json:"skill_order"`
	Modules    json.RawMessage `json:"modules"`
	HeroID     int             `json:"hero_id"`
	CrestID    int             `json:"crest_id"`
	Item1ID    int             `json:"item1_id"`
	Item2ID    int             `json:"item2_id"`
	Item3ID    int             `json:"item3_id"`
	Item4ID    int             `json:"item4_id"`
	Item5ID    int             `json:"item5_id"`
	Item6ID    int             `json:"item6_id"`
	CreatedAt  string          `json:"created_at"`
	UpdatedAt  string          `json:"updated_at"`
}

// ItemIDs returns the six build slots in order. Empty slots are zero.
func (b RawBuild) ItemIDs() [6]int {
	return [6]int{b.Item1ID, b.Item2ID, b.Item3ID, b.Item4ID, b.Item5ID, b.Item6ID}
}

// Item is the transformed shape used for prompts and the /api/items payload.
type Item struct {
	ID          string             `json:"id"` // slug, e.g. "dust-devil"
	Name        string             `json:"name"`
	SlotType    string             `json:"slot_type"`
	Rarity      string             `json:"rarity"`
	HeroClass   string             `json:"hero_class"`
	Price       int                `json:"price"`
	Stats       map[string]float64 `json:"stats"`
	Description string             `json:"description"`
	Image       string             `json:"image,omitempty"`
}

type Hero struct {
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	Slug  string   `json:"slug"`
	Image string   `json:"image,omitempty"`
	Roles []string `json:"roles"`
}
