package dashboard

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	pkgredis "github.com/revpilot/core/internal/pkg/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func newTestCache(t *testing.T) *pkgredis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	rc, err := pkgredis.Connect("redis://" + mr.Addr())
	require.NoError(t, err)
	return rc
}

func TestKPIsServedFromCache(t *testing.T) {
	db, mock := newMockDB(t)
	cache := newTestCache(t)

	cached := KPIs{TotalHotels: 4, TotalRooms: 1200, RevenueThisMonth: 83125}
	raw, err := json.Marshal(cached)
	require.NoError(t, err)
	require.NoError(t, cache.Set(context.Background(), kpiCacheKey, raw, time.Minute))

	svc := NewService(db, cache, nil, nil)
	got, err := svc.KPIs(context.Background())
	require.NoError(t, err)

	assert.Equal(t, cached, *got)
	assert.NoError(t, mock.ExpectationsWereMet(), "cache hit must not touch the database")
}

func TestRevenueAnalyticsBucketsByMonth(t *testing.T) {
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{"month", "revenue", "room_nights"}).
		AddRow("2026-06", 120000.0, 410).
		AddRow("2026-07", 145500.5, 455)
	mock.ExpectQuery("SELECT DATE_FORMAT").WillReturnRows(rows)

	svc := NewService(db, nil, nil, nil)
	got, err := svc.RevenueAnalytics(12)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "2026-06", got[0].Month)
	assert.Equal(t, 145500.5, got[1].Revenue)
	assert.Equal(t, int64(455), got[1].RoomNights)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopPerformersRankedByRevenue(t *testing.T) {
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{"hotel_id", "hotel_name", "revenue", "avg_occupancy"}).
		AddRow("h1", "Grand Central", 98000.0, 91.5).
		AddRow("h2", "Riverside", 64000.0, 82.0)
	mock.ExpectQuery("SELECT .*hotel_actuals.*JOIN hotels").WillReturnRows(rows)

	svc := NewService(db, nil, nil, nil)
	got, err := svc.TopPerformers(30, 5)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "Grand Central", got[0].HotelName)
	assert.Greater(t, got[0].Revenue, got[1].Revenue)
	assert.NoError(t, mock.ExpectationsWereMet())
}
