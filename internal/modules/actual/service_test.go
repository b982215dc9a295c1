package actual

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
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

func TestBulkUpsertRejectsMalformedDate(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewService(db)

	_, err := svc.BulkUpsert(&BulkUpsertDTO{Records: []ActualDTO{
		{HotelID: "h1", ActualDate: "08/29/2026"},
	}})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestBulkUpsertReportsCount(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `hotel_actuals`.*ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	svc := NewService(db)
	result, err := svc.BulkUpsert(&BulkUpsertDTO{Records: []ActualDTO{
		{HotelID: "h1", ActualDate: "2026-08-01", Revenue: "12500.00"},
		{HotelID: "h1", ActualDate: "2026-08-02", Revenue: "13100.00"},
	}})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Upserted)
}

func TestHotelKPIsAggregatesWindow(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(revenue\\), 0\\) AS revenue").
		WillReturnRows(sqlmock.NewRows([]string{
			"revenue", "avg_daily_rate", "avg_occupancy", "room_nights", "days_reported",
		}).AddRow(83125.0, 189.5, 74.2, 410, 7))

	svc := NewService(db)
	k, err := svc.HotelKPIs("h1", 7)
	require.NoError(t, err)
	assert.Equal(t, "h1", k.HotelID)
	assert.Equal(t, 7, k.WindowDays)
	assert.InDelta(t, 83125.0, k.Revenue, 0.001)
	assert.Equal(t, 7, k.DaysReported)
}

func TestHotelKPIsDefaultsWindow(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(revenue\\), 0\\) AS revenue").
		WillReturnRows(sqlmock.NewRows([]string{"revenue"}).AddRow(0.0))

	svc := NewService(db)
	k, err := svc.HotelKPIs("h1", -1)
	require.NoError(t, err)
	assert.Equal(t, 30, k.WindowDays)
}
