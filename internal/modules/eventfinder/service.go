package eventfinder

import (
	"strings"
	"time"

	"github.com/revpilot/core/internal/models"
	"github.com/revpilot/core/internal/pkg/metrics"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// Service wraps the generator with validation, filtering and import.
type Service struct {
	db     *gorm.DB
	gen    *Generator
	logger *zap.Logger
}

func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{db: db, gen: NewGenerator(), logger: logger.Named("EventFinder")}
}

// Search generates synthetic events for the requested window and filters.
// Malformed dates and inverted ranges are the only error conditions.
func (s *Service) Search(dto SearchDTO) (*SearchResponse, error) {
	start, err := time.Parse(dateLayout, strings.TrimSpace(dto.StartDate))
	if err != nil {
		metrics.EventSearches.WithLabelValues("invalid").Inc()
		return nil, ErrInvalidDate
	}
	end, err := time.Parse(dateLayout, strings.TrimSpace(dto.EndDate))
	if err != nil {
		metrics.EventSearches.WithLabelValues("invalid").Inc()
		return nil, ErrInvalidDate
	}
	if end.Before(start) {
		metrics.EventSearches.WithLabelValues("invalid").Inc()
		return nil, ErrInvalidRange
	}

	events := s.gen.Generate(dto.Location, start, end, dto.EventTypes)
	if len(events) == 0 {
		// Never show an empty result for a valid search.
		events = s.gen.SampleEvents(dto.Location, start, end)
	}
	if name := strings.TrimSpace(dto.SearchName); name != "" {
		events = filterByName(events, name)
	}

	s.logger.Info("event search",
		zap.String("location", dto.Location),
		zap.Int("results", len(events)),
	)
	metrics.EventSearches.WithLabelValues("ok").Inc()

	return &SearchResponse{
		SearchParams: dto,
		Events:       events,
		ResultsCount: len(events),
		Timestamp:    time.Now(),
	}, nil
}

// Import persists the search results as regular events.
func (s *Service) Import(dto SearchDTO) (*ImportResponse, error) {
	result, err := s.Search(dto)
	if err != nil {
		return nil, err
	}

	imported := 0
	for _, ev := range result.Events {
		row := models.EventModel{
			Name:        ev.Name,
			Description: ev.Description,
			Category:    importCategory(ev.Category),
			StartDate:   ev.Date,
			EndDate:     ev.EndDate,
			Location:    ev.VenueName,
			City:        ev.City,
			Country:     ev.Country,
			SourceURL:   ev.SourceURL,
			IsActive:    true,
		}
		if err := s.db.Create(&row).Error; err != nil {
			s.logger.Warn("event import failed", zap.String("name", ev.Name), zap.Error(err))
			continue
		}
		imported++
	}

	return &ImportResponse{Imported: imported, Timestamp: time.Now()}, nil
}

func filterByName(events []SyntheticEvent, name string) []SyntheticEvent {
	needle := strings.ToLower(name)
	out := events[:0:0]
	for _, ev := range events {
		if strings.Contains(strings.ToLower(ev.Name), needle) {
			out = append(out, ev)
		}
	}
	return out
}

func importCategory(category string) models.EventCategory {
	switch category {
	case CategorySports:
		return models.EventSports
	case CategoryTradeFair:
		return models.EventTradeFair
	case CategoryConference:
		return models.EventConference
	case "festival":
		return models.EventFestival
	default:
		return models.EventOther
	}
}
