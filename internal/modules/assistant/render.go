package assistant

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const (
	maxItemsPerSection = 10
	maxRankedHotels    = 5

	msgNoData = "I couldn't retrieve the database information needed to answer your question."
	msgNoMatch = "I found database information but couldn't match it specifically to your question. " +
		"Could you be more specific about what hotel data you're looking for?"

	dateLayout = "2006-01-02"
)

// renderReport converts the assembled context into a sectioned markdown
// report. Section emission re-derives the keyword checks against the query so
// rendering follows textual relevance, not what happened to be fetched.
func renderReport(query string, data Context) string {
	if data.Empty() {
		return msgNoData
	}

	var sections []string

	if matchesTopic(query, "hotels") && len(data.Hotels) > 0 {
		lines := []string{"**Hotels Information:**"}
		for _, h := range capSlice(data.Hotels, maxItemsPerSection) {
			lines = append(lines, fmt.Sprintf("• %s - %s - %d rooms", h.Name, h.City, h.TotalRooms))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if matchesTopic(query, "actuals") && len(data.Actuals) > 0 {
		lines := []string{"**Recent Performance Data:**"}
		for _, a := range capSlice(data.Actuals, maxItemsPerSection) {
			lines = append(lines, fmt.Sprintf("• Hotel %s (%s): Revenue $%s, ADR $%.2f, Occupancy %.1f%%",
				a.HotelID, a.ActualDate.Format(dateLayout), formatMoney(a.Revenue), a.ADR, a.Occupancy))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if matchesTopic(query, "forecasts") && len(data.Forecasts) > 0 {
		lines := []string{"**Forecasts:**"}
		for _, f := range capSlice(data.Forecasts, maxItemsPerSection) {
			lines = append(lines, fmt.Sprintf("• Hotel %s (%s): Revenue $%s, ADR $%.2f, Confidence: %s",
				f.HotelID, f.ForecastDate.Format(dateLayout), formatMoney(f.Revenue), f.ADR, f.Confidence))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if matchesTopic(query, "events") && len(data.Events) > 0 {
		lines := []string{"**Upcoming Events:**"}
		for _, e := range capSlice(data.Events, maxItemsPerSection) {
			lines = append(lines, fmt.Sprintf("• %s in %s (%s to %s) - %s",
				e.Name, e.City, e.StartDate.Format(dateLayout), e.EndDate.Format(dateLayout), e.Category))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if matchesTopic(query, "rankings") && len(data.Actuals) > 0 {
		ranked := make([]ActualSummary, len(data.Actuals))
		copy(ranked, data.Actuals)
		sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Revenue > ranked[j].Revenue })

		lines := []string{"**Top Hotels by Revenue:**"}
		for i, a := range capSlice(ranked, maxRankedHotels) {
			lines = append(lines, fmt.Sprintf("%d. Hotel %s: $%s", i+1, a.HotelID, formatMoney(a.Revenue)))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if matchesTopic(query, "tasks") && len(data.Tasks) > 0 {
		lines := []string{"**Recent Tasks:**"}
		for _, t := range capSlice(data.Tasks, maxItemsPerSection) {
			lines = append(lines, fmt.Sprintf("• %s - Status: %s, Priority: %s", t.Title, t.Status, t.Priority))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if len(sections) > 0 {
		return strings.Join(sections, "\n\n")
	}
	return msgNoMatch
}

// formatMoney renders a revenue figure with thousands grouping, dropping a
// zero fractional part ("$83,125", "$1,234.50").
func formatMoney(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	parts := strings.SplitN(s, ".", 2)
	out := groupThousands(parts[0])
	if frac := strings.TrimRight(parts[1], "0"); frac != "" {
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
