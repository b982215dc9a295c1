package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/revpilot/core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	hotels    []models.HotelModel
	events    []models.EventModel
	forecasts []models.ForecastModel
	actuals   []models.HotelActualModel
	tasks     []models.TaskModel

	hotelsErr    error
	eventsErr    error
	forecastsErr error
	actualsErr   error
	tasksErr     error
}

func (f *fakeStore) ListHotels(ctx context.Context, limit int) ([]models.HotelModel, error) {
	return f.hotels, f.hotelsErr
}

func (f *fakeStore) ListUpcomingEvents(ctx context.Context, limit int) ([]models.EventModel, error) {
	return f.events, f.eventsErr
}

func (f *fakeStore) ListForecasts(ctx context.Context, limit int) ([]models.ForecastModel, error) {
	return f.forecasts, f.forecastsErr
}

func (f *fakeStore) ListActuals(ctx context.Context, limit int) ([]models.HotelActualModel, error) {
	return f.actuals, f.actualsErr
}

func (f *fakeStore) ListRecentTasks(ctx context.Context, limit int) ([]models.TaskModel, error) {
	return f.tasks, f.tasksErr
}

func TestClassifyCaseInsensitive(t *testing.T) {
	assert.Equal(t, Classify("revenue report"), Classify("REVENUE Report"))
	assert.Equal(t, Classify("hotel occupancy"), Classify("HOTEL OCCUPANCY"))
}

func TestClassifyTopics(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  TopicFlags
	}{
		{
			name:  "hotels keyword",
			query: "show me my properties",
			want:  TopicFlags{NeedsHotels: true},
		},
		{
			name:  "events keyword",
			query: "upcoming trade fairs",
			want:  TopicFlags{NeedsEvents: true},
		},
		{
			name:  "forecast and budget",
			query: "next quarter forecast vs budget",
			want:  TopicFlags{NeedsForecasts: true},
		},
		{
			name:  "revenue maps to actuals",
			query: "revenue last month",
			want:  TopicFlags{NeedsActuals: true},
		},
		{
			name:  "rankings",
			query: "which ones did best",
			want:  TopicFlags{NeedsRankings: true},
		},
		{
			name:  "tasks",
			query: "open todo items",
			want:  TopicFlags{NeedsTasks: true},
		},
		{
			name:  "no keyword falls back to hotels",
			query: "xyzzy",
			want:  TopicFlags{NeedsHotels: true},
		},
		{
			name:  "empty string falls back to hotels",
			query: "",
			want:  TopicFlags{NeedsHotels: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.query))
		})
	}
}

func TestAssembleCaps(t *testing.T) {
	store := &fakeStore{}
	for i := 0; i < 200; i++ {
		store.hotels = append(store.hotels, models.HotelModel{Name: fmt.Sprintf("H%d", i)})
		store.events = append(store.events, models.EventModel{Name: fmt.Sprintf("E%d", i)})
		store.forecasts = append(store.forecasts, models.ForecastModel{HotelID: "h1"})
		store.actuals = append(store.actuals, models.HotelActualModel{HotelID: "h1"})
		store.tasks = append(store.tasks, models.TaskModel{Title: fmt.Sprintf("T%d", i)})
	}

	svc := NewService(store, nil)
	data := svc.assemble(context.Background(), TopicFlags{
		NeedsHotels: true, NeedsEvents: true, NeedsForecasts: true,
		NeedsActuals: true, NeedsTasks: true,
	})

	assert.Len(t, data.Hotels, 50)
	assert.Len(t, data.Events, 30)
	assert.Len(t, data.Forecasts, 50)
	assert.Len(t, data.Actuals, 100)
	assert.Len(t, data.Tasks, 20)
}

func TestAssembleRankingsImpliesActuals(t *testing.T) {
	store := &fakeStore{
		actuals: []models.HotelActualModel{{HotelID: "h1", Revenue: "1000"}},
	}
	svc := NewService(store, nil)

	data := svc.assemble(context.Background(), TopicFlags{NeedsRankings: true})
	require.Len(t, data.Actuals, 1)
	assert.Equal(t, "h1", data.Actuals[0].HotelID)
}

func TestAssemblePartialFailureIsolation(t *testing.T) {
	store := &fakeStore{
		hotelsErr: errors.New("hotels table unavailable"),
		events:    []models.EventModel{{Name: "Expo"}},
	}
	svc := NewService(store, nil)

	data := svc.assemble(context.Background(), TopicFlags{NeedsHotels: true, NeedsEvents: true})
	assert.NotEmpty(t, data.Events)
	assert.Contains(t, data.Error, "hotels table unavailable")
}

func TestAssembleDecimalFallback(t *testing.T) {
	store := &fakeStore{
		actuals: []models.HotelActualModel{{HotelID: "h1", Revenue: "not-a-number", AverageDailyRate: ""}},
	}
	svc := NewService(store, nil)

	data := svc.assemble(context.Background(), TopicFlags{NeedsActuals: true})
	require.Len(t, data.Actuals, 1)
	assert.Zero(t, data.Actuals[0].Revenue)
	assert.Zero(t, data.Actuals[0].ADR)
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{83125.00, "83,125"},
		{65550, "65,550"},
		{999, "999"},
		{1234.5, "1,234.5"},
		{1234567.89, "1,234,567.89"},
		{0, "0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatMoney(tt.in), "formatMoney(%v)", tt.in)
	}
}

func TestRenderNoDataMessage(t *testing.T) {
	out := renderReport("hotel revenue", Context{})
	assert.Equal(t, msgNoData, out)
}

func TestRenderNoTopicMatchMessage(t *testing.T) {
	data := Context{Hotels: []HotelSummary{{ID: "h1", Name: "Grand", City: "Munich", TotalRooms: 200}}}
	out := renderReport("xyzzy", data)
	assert.Equal(t, msgNoMatch, out)
}

func TestRenderHotelsSection(t *testing.T) {
	data := Context{Hotels: []HotelSummary{{ID: "h1", Name: "Grand Plaza", City: "Chicago", TotalRooms: 320}}}
	out := renderReport("list my hotels", data)
	assert.Contains(t, out, "**Hotels Information:**")
	assert.Contains(t, out, "• Grand Plaza - Chicago - 320 rooms")
}

func TestRenderRankingsSortedByRevenue(t *testing.T) {
	data := Context{Actuals: []ActualSummary{
		{HotelID: "h1", Revenue: 100},
		{HotelID: "h2", Revenue: 9000},
		{HotelID: "h3", Revenue: 500},
	}}
	out := renderReport("top hotels", data)
	require.Contains(t, out, "**Top Hotels by Revenue:**")
	assert.Contains(t, out, "1. Hotel h2: $9,000")
	assert.Contains(t, out, "2. Hotel h3: $500")
	assert.Contains(t, out, "3. Hotel h1: $100")
}

func TestRenderForecastConfidenceLabel(t *testing.T) {
	data := Context{Forecasts: []ForecastSummary{{
		HotelID:      "h1",
		ForecastDate: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		Revenue:      83125,
		ADR:          210,
		Confidence:   "high",
	}}}
	out := renderReport("revenue forecast", data)
	require.Contains(t, out, "**Forecasts:**")
	assert.Contains(t, out, "• Hotel h1 (2025-08-01): Revenue $83,125, ADR $210.00, Confidence: high")
}

func TestAssembleKeepsConfidenceLabel(t *testing.T) {
	store := &fakeStore{
		forecasts: []models.ForecastModel{{HotelID: "h1", Revenue: "83125", Confidence: "medium"}},
	}
	svc := NewService(store, nil)

	data := svc.assemble(context.Background(), TopicFlags{NeedsForecasts: true})
	require.Len(t, data.Forecasts, 1)
	assert.Equal(t, "medium", data.Forecasts[0].Confidence)
}

func TestRenderItemLimitPerSection(t *testing.T) {
	data := Context{}
	for i := 0; i < 25; i++ {
		data.Tasks = append(data.Tasks, TaskSummary{Title: fmt.Sprintf("Task %d", i), Status: "pending", Priority: "medium"})
	}
	out := renderReport("show tasks", data)
	assert.Equal(t, 10, strings.Count(out, "• Task "))
}

func TestChatEndToEnd(t *testing.T) {
	store := &fakeStore{
		actuals: []models.HotelActualModel{{
			HotelID:          "h1",
			ActualDate:       time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
			Revenue:          "65550",
			AverageDailyRate: "285",
			OccupancyRate:    "92",
		}},
	}
	svc := NewService(store, nil)

	resp := svc.Chat(context.Background(), "What's my hotel occupancy and revenue performance?")
	require.NotNil(t, resp)
	assert.Contains(t, resp.Message, "Hotel h1 (2025-07-15): Revenue $65,550")
	assert.Contains(t, resp.Message, "ADR $285.00")
	assert.Contains(t, resp.Message, "Occupancy 92.0%")
	assert.GreaterOrEqual(t, resp.ProcessingTimeMs, int64(0))
}

func TestChatFetchFailureNeverSurfaces(t *testing.T) {
	store := &fakeStore{actualsErr: errors.New("connection refused")}
	svc := NewService(store, nil)

	resp := svc.Chat(context.Background(), "revenue performance")
	require.NotNil(t, resp)
	assert.Equal(t, msgNoData, resp.Message)
}
