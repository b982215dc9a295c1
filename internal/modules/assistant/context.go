package assistant

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Per-type caps bound report size. Hard slices, not sampling.
const (
	maxHotels    = 50
	maxEvents    = 30
	maxForecasts = 50
	maxActuals   = 100
	maxTasks     = 20
)

// assemble fetches a bounded slice of each flagged collection and projects it
// to the summary shape. Fetches are best effort: a failing collection records
// its message and never blocks the others.
func (s *Service) assemble(ctx context.Context, flags TopicFlags) Context {
	var data Context
	var errs []string

	if flags.NeedsHotels {
		hotels, err := s.store.ListHotels(ctx, maxHotels)
		if err != nil {
			s.logger.Warn("hotel fetch failed", zap.Error(err))
			errs = append(errs, err.Error())
		}
		for _, h := range capSlice(hotels, maxHotels) {
			data.Hotels = append(data.Hotels, HotelSummary{
				ID:         h.ID,
				Name:       h.Name,
				City:       h.City,
				TotalRooms: h.TotalRooms,
			})
		}
	}

	if flags.NeedsEvents {
		events, err := s.store.ListUpcomingEvents(ctx, maxEvents)
		if err != nil {
			s.logger.Warn("event fetch failed", zap.Error(err))
			errs = append(errs, err.Error())
		}
		for _, e := range capSlice(events, maxEvents) {
			data.Events = append(data.Events, EventSummary{
				Name:      e.Name,
				City:      e.City,
				StartDate: e.StartDate,
				EndDate:   e.EndDate,
				Category:  string(e.Category),
			})
		}
	}

	if flags.NeedsForecasts {
		forecasts, err := s.store.ListForecasts(ctx, maxForecasts)
		if err != nil {
			s.logger.Warn("forecast fetch failed", zap.Error(err))
			errs = append(errs, err.Error())
		}
		for _, f := range capSlice(forecasts, maxForecasts) {
			data.Forecasts = append(data.Forecasts, ForecastSummary{
				HotelID:      f.HotelID,
				ForecastDate: f.ForecastDate,
				Revenue:      parseDecimal(f.Revenue),
				ADR:          parseDecimal(f.AverageDailyRate),
				Occupancy:    parseDecimal(f.OccupancyRate),
				Confidence:   f.Confidence,
			})
		}
	}

	// Rankings are a view over actuals, not a separate dataset.
	if flags.NeedsActuals || flags.NeedsRankings {
		actuals, err := s.store.ListActuals(ctx, maxActuals)
		if err != nil {
			s.logger.Warn("actuals fetch failed", zap.Error(err))
			errs = append(errs, err.Error())
		}
		for _, a := range capSlice(actuals, maxActuals) {
			data.Actuals = append(data.Actuals, ActualSummary{
				HotelID:    a.HotelID,
				ActualDate: a.ActualDate,
				Revenue:    parseDecimal(a.Revenue),
				ADR:        parseDecimal(a.AverageDailyRate),
				Occupancy:  parseDecimal(a.OccupancyRate),
				RoomNights: a.RoomNights,
			})
		}
	}

	if flags.NeedsTasks {
		tasks, err := s.store.ListRecentTasks(ctx, maxTasks)
		if err != nil {
			s.logger.Warn("task fetch failed", zap.Error(err))
			errs = append(errs, err.Error())
		}
		for _, t := range capSlice(tasks, maxTasks) {
			data.Tasks = append(data.Tasks, TaskSummary{
				Title:    t.Title,
				Status:   string(t.Status),
				Priority: string(t.Priority),
				DueDate:  t.DueDate,
			})
		}
	}

	data.Error = strings.Join(errs, "; ")
	return data
}

func capSlice[T any](items []T, max int) []T {
	if len(items) > max {
		return items[:max]
	}
	return items
}

// parseDecimal coerces a decimal string from storage to float64 with a 0
// fallback on empty or non-numeric input.
func parseDecimal(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}
