package omeda

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	brTagRe   = regexp.MustCompile(`(?i)<br\s*/?>`)
	htmlTagRe = regexp.MustCompile(`<[^>]+>`)
	spacesRe  = regexp.MustCompile(`\s+`)
)

// StripHTML flattens effect markup into plain text for prompts.
func StripHTML(html string) string {
	if html == "" {
		return ""
	}
	s := brTagRe.ReplaceAllString(html, " ")
	s = htmlTagRe.ReplaceAllString(s, "")
	return strings.TrimSpace(spacesRe.ReplaceAllString(s, " "))
}

// FormatStats renders a stat map as "+20 physical power, +150 health".
// Keys are sorted so the output is deterministic.
func FormatStats(stats map[string]float64) string {
	if len(stats) == 0 {
		return ""
	}
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		label := strings.ReplaceAll(k, "_", " ")
		parts = append(parts, fmt.Sprintf("+%s %s", trimFloat(stats[k]), label))
	}
	return strings.Join(parts, ", ")
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatEffects(effects []RawEffect) string {
	parts := make([]string, 0, len(effects))
	for _, e := range effects {
		desc := StripHTML(e.MenuDescription)
		if e.Name != "" && desc != "" {
			parts = append(parts, e.Name+": "+desc)
		} else if desc != "" {
			parts = append(parts, desc)
		} else if e.Name != "" {
			parts = append(parts, e.Name)
		}
	}
	return strings.Join(parts, " | ")
}

// TransformItem converts a raw omeda item into the internal shape, building
// a prompt-friendly description from its stats and effects.
func TransformItem(raw RawItem, baseURL string) Item {
	stats := FormatStats(raw.Stats)
	effects := formatEffects(raw.Effects)

	var description string
	if stats != "" {
		description += "Stats: " + stats + ". "
	}
	if effects != "" {
		description += effects
	}
	if description == "" {
		description = raw.DisplayName
	}

	image := ""
	if raw.Image != "" {
		image = baseURL + raw.Image
	}

	statsCopy := raw.Stats
	if statsCopy == nil {
		statsCopy = map[string]float64{}
	}

	return Item{
		ID:          raw.Slug,
		Name:        raw.DisplayName,
		SlotType:    raw.SlotType,
		Rarity:      raw.Rarity,
		HeroClass:   raw.HeroClass,
		Price:       raw.TotalPrice,
		Stats:       statsCopy,
		Description: strings.TrimSpace(description),
		Image:       image,
	}
}

func transformHero(raw RawHero, baseURL string) Hero {
	image := ""
	if raw.Image != "" {
		image = baseURL + raw.Image
	}
	roles := raw.Roles
	if roles == nil {
		roles = []string{}
	}
	return Hero{
		ID:    raw.ID,
		Name:  raw.DisplayName,
		Slug:  raw.Slug,
		Image: image,
		Roles: roles,
	}
}
