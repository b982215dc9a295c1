package event

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/revpilot/core/internal/pkg/pagination"
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

func TestListRejectsMalformedDate(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewService(db)

	_, _, err := svc.List(pagination.Query{Page: 1, Size: 10}, ListFilter{From: "29.08.2026"})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestSearchMatchesNameAndCity(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `events` WHERE \\(name LIKE \\? OR description LIKE \\? OR city LIKE \\?\\)").
		WithArgs("%Oktober%", "%Oktober%", "%Oktober%", 20).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "city"}).
			AddRow("e1", "Oktoberfest", "Munich"))

	svc := NewService(db)
	got, err := svc.Search("Oktober", 20)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Oktoberfest", got[0].Name)
}

func TestSearchClampsLimit(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `events`.*LIMIT \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	svc := NewService(db)
	_, err := svc.Search("anything", 5000)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRejectsMalformedDate(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewService(db)

	_, err := svc.Create(&CreateEventDTO{
		Name:      "Expo",
		Category:  "trade_fair",
		StartDate: "not-a-date",
		EndDate:   "2026-09-10",
		City:      "Berlin",
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}
