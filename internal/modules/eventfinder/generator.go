package eventfinder

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// Generator produces synthetic calendar entries from the static tables.
// Output is fully deterministic for a given input; only the sample fallback's
// free/paid flag is randomized.
type Generator struct{}

func NewGenerator() *Generator { return &Generator{} }

// Generate builds events for every requested category within [start, end].
// categories may be nil for "all". The city token is the text before the
// first comma of location.
func (g *Generator) Generate(location string, start, end time.Time, categories []string) []SyntheticEvent {
	city := cityToken(location)
	wanted := normalizeCategories(categories)

	var events []SyntheticEvent
	for _, category := range categoryOrder {
		if !wanted[category] {
			continue
		}
		events = append(events, g.generateCategory(city, category, start, end)...)
	}
	return events
}

// generateCategory walks the city's event-name list with monotonic spacing
// and stops at the first date past the window end.
func (g *Generator) generateCategory(city, category string, start, end time.Time) []SyntheticEvent {
	rules := categoryRules[category]
	names := rules.tables[strings.ToLower(city)]
	if len(names) == 0 {
		names = genericEvents[category]
	}

	var events []SyntheticEvent
	for i, name := range names {
		eventDate := start.AddDate(0, 0, i*rules.spacingDays)
		if eventDate.After(end) {
			break
		}
		events = append(events, SyntheticEvent{
			ID:           fmt.Sprintf("%s-%s-%d", category, strings.ToLower(city), i),
			Name:         name,
			Category:     category,
			Description:  fmt.Sprintf("%s in %s", name, city),
			Date:         eventDate,
			Time:         rules.timeOfDay,
			EndDate:      eventDate,
			VenueName:    fmt.Sprintf("%s %s", city, rules.venueSuffix),
			VenueAddress: city,
			City:         city,
			Source:       rules.source,
			SourceURL:    fmt.Sprintf("https://events.example.com/%s/%s", strings.ToLower(city), category),
			PriceRange:   rules.priceRange,
			IsFree:       strings.Contains(rules.priceRange, "Free"),
		})
	}
	return events
}

// SampleEvents is the always-populated fallback: up to 5 fixed-template
// events spaced 5 days apart, the first at the window start.
func (g *Generator) SampleEvents(location string, start, end time.Time) []SyntheticEvent {
	city := cityToken(location)

	var events []SyntheticEvent
	for i, tpl := range sampleTemplates {
		eventDate := start.AddDate(0, 0, i*5)
		if eventDate.After(end) {
			break
		}
		isFree := rand.IntN(2) == 0
		events = append(events, SyntheticEvent{
			ID:           fmt.Sprintf("sample-%s-%d", strings.ToLower(city), i),
			Name:         fmt.Sprintf(tpl.name, city),
			Category:     tpl.category,
			Description:  tpl.description,
			Date:         eventDate,
			Time:         tpl.timeOfDay,
			EndDate:      eventDate,
			VenueName:    fmt.Sprintf("%s City Center", city),
			VenueAddress: city,
			City:         city,
			Source:       "Sample Events",
			PriceRange:   tpl.priceRange,
			IsFree:       isFree,
		})
	}
	return events
}

// cityToken extracts the city as the text before the first comma, trimmed.
func cityToken(location string) string {
	city, _, _ := strings.Cut(location, ",")
	return strings.TrimSpace(city)
}

// normalizeCategories maps user-supplied type strings onto the category keys;
// an empty input selects every category.
func normalizeCategories(raw []string) map[string]bool {
	wanted := make(map[string]bool, len(categoryOrder))
	if len(raw) == 0 {
		for _, c := range categoryOrder {
			wanted[c] = true
		}
		return wanted
	}
	for _, t := range raw {
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "sport", "sports":
			wanted[CategorySports] = true
		case "trade-fair", "trade_fair", "trade fair", "fair", "fairs", "trade":
			wanted[CategoryTradeFair] = true
		case "conference", "conferences", "business":
			wanted[CategoryConference] = true
		}
	}
	return wanted
}
