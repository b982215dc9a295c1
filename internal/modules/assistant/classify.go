package assistant

import "strings"

var topicKeywords = map[string][]string{
	"hotels":    {"hotel", "property", "location", "inventory", "room"},
	"events":    {"event", "conference", "trade", "sport", "fair"},
	"forecasts": {"forecast", "prediction", "future", "plan", "budget"},
	"actuals":   {"actual", "performance", "revenue", "adr", "occupancy", "result"},
	"rankings":  {"rank", "compare", "best", "worst", "top", "bottom"},
	"tasks":     {"task", "assignment", "work", "todo"},
}

// Classify maps free text to topic flags via case-insensitive substring
// containment. Total over any input; when nothing matches, the hotels flag is
// set so a response is never topic-empty.
func Classify(query string) TopicFlags {
	q := strings.ToLower(query)

	flags := TopicFlags{
		NeedsHotels:    containsAny(q, topicKeywords["hotels"]),
		NeedsEvents:    containsAny(q, topicKeywords["events"]),
		NeedsForecasts: containsAny(q, topicKeywords["forecasts"]),
		NeedsActuals:   containsAny(q, topicKeywords["actuals"]),
		NeedsRankings:  containsAny(q, topicKeywords["rankings"]),
		NeedsTasks:     containsAny(q, topicKeywords["tasks"]),
	}

	if !flags.Any() {
		flags.NeedsHotels = true
	}
	return flags
}

// matchesTopic re-derives the containment check for a single topic, without
// the hotels fallback. The renderer uses this so section emission follows
// textual relevance rather than what was fetched.
func matchesTopic(query, topic string) bool {
	return containsAny(strings.ToLower(query), topicKeywords[topic])
}

func containsAny(q string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}
