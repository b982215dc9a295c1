package eventfinder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateDateWindowTruncation(t *testing.T) {
	gen := NewGenerator()

	events := gen.Generate("Chicago", date(2025, 1, 1), date(2025, 1, 10), []string{"sports"})
	require.Len(t, events, 2)
	assert.Equal(t, date(2025, 1, 1), events[0].Date)
	assert.Equal(t, date(2025, 1, 8), events[1].Date)
	assert.Equal(t, "sports-chicago-0", events[0].ID)
	assert.Equal(t, "sports-chicago-1", events[1].ID)
}

func TestGenerateCategorySpacing(t *testing.T) {
	gen := NewGenerator()
	start, end := date(2025, 3, 1), date(2025, 3, 31)

	tests := []struct {
		category string
		spacing  int
	}{
		{CategorySports, 7},
		{CategoryTradeFair, 10},
		{CategoryConference, 14},
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			events := gen.Generate("Munich", start, end, []string{tt.category})
			require.NotEmpty(t, events)
			for i, ev := range events {
				assert.Equal(t, start.AddDate(0, 0, i*tt.spacing), ev.Date)
				assert.Equal(t, tt.category, ev.Category)
			}
		})
	}
}

func TestGenerateKnownCityTables(t *testing.T) {
	gen := NewGenerator()

	events := gen.Generate("Munich, Germany", date(2025, 9, 1), date(2025, 12, 1), []string{CategoryTradeFair})
	require.Len(t, events, 3)
	assert.Equal(t, "Oktoberfest", events[0].Name)
	assert.Equal(t, "BAUMA", events[1].Name)
	assert.Equal(t, "ISPO Munich", events[2].Name)
	assert.Equal(t, "Munich Convention Center", events[0].VenueName)
	assert.Equal(t, "09:00", events[0].Time)
	assert.Equal(t, "$150-$600", events[0].PriceRange)
}

func TestGenerateUnknownCityUsesGenericTables(t *testing.T) {
	gen := NewGenerator()

	events := gen.Generate("Smallville", date(2025, 1, 1), date(2025, 12, 31), []string{CategoryConference})
	require.Len(t, events, 3)
	assert.Equal(t, "Business Leadership Conference", events[0].Name)
	assert.Equal(t, "conference-smallville-0", events[0].ID)
}

func TestGenerateCityTokenBeforeComma(t *testing.T) {
	gen := NewGenerator()

	events := gen.Generate(" New York , NY, USA", date(2025, 1, 1), date(2025, 1, 1), []string{CategorySports})
	require.NotEmpty(t, events)
	assert.Equal(t, "New York", events[0].City)
	assert.Equal(t, "Yankees Home Game", events[0].Name)
}

func TestSampleEventsNeverEmptyForValidWindow(t *testing.T) {
	gen := NewGenerator()

	start := date(2025, 6, 1)
	events := gen.SampleEvents("Smallville", start, start)
	require.Len(t, events, 1)
	assert.Equal(t, "Smallville Tech Conference", events[0].Name)
	assert.Equal(t, start, events[0].Date)
}

func TestSampleEventsSpacing(t *testing.T) {
	gen := NewGenerator()

	start := date(2025, 6, 1)
	events := gen.SampleEvents("Austin", start, start.AddDate(0, 0, 30))
	require.Len(t, events, 5)
	for i, ev := range events {
		assert.Equal(t, start.AddDate(0, 0, i*5), ev.Date)
	}
}

func TestSearchValidation(t *testing.T) {
	svc := NewService(nil, nil)

	tests := []struct {
		name    string
		dto     SearchDTO
		wantErr error
	}{
		{
			name:    "malformed start date",
			dto:     SearchDTO{Location: "Chicago", StartDate: "01/01/2025", EndDate: "2025-01-10"},
			wantErr: ErrInvalidDate,
		},
		{
			name:    "malformed end date",
			dto:     SearchDTO{Location: "Chicago", StartDate: "2025-01-01", EndDate: "bogus"},
			wantErr: ErrInvalidDate,
		},
		{
			name:    "end before start",
			dto:     SearchDTO{Location: "Chicago", StartDate: "2025-01-10", EndDate: "2025-01-01"},
			wantErr: ErrInvalidRange,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Search(tt.dto)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSearchNameFilter(t *testing.T) {
	svc := NewService(nil, nil)

	result, err := svc.Search(SearchDTO{
		Location:   "Munich",
		StartDate:  "2025-09-01",
		EndDate:    "2025-12-01",
		SearchName: "oktober",
	})
	require.NoError(t, err)
	require.Equal(t, 1, result.ResultsCount)
	assert.Equal(t, "Oktoberfest", result.Events[0].Name)
}

func TestSearchZeroResultsFallsBackToSamples(t *testing.T) {
	svc := NewService(nil, nil)

	// Unmatchable event type filter yields no category events.
	result, err := svc.Search(SearchDTO{
		Location:   "Chicago",
		StartDate:  "2025-01-01",
		EndDate:    "2025-01-02",
		EventTypes: []string{"knitting"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Events)
	assert.Equal(t, "Sample Events", result.Events[0].Source)
}

func TestSearchSameDayWindowIncludesIndexZero(t *testing.T) {
	svc := NewService(nil, nil)

	result, err := svc.Search(SearchDTO{
		Location:  "Nowhere",
		StartDate: "2025-05-05",
		EndDate:   "2025-05-05",
	})
	require.NoError(t, err)
	// One index-0 event per category.
	assert.Equal(t, 3, result.ResultsCount)
	for _, ev := range result.Events {
		assert.Equal(t, date(2025, 5, 5), ev.Date)
	}
}
