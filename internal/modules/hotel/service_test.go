package hotel

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

func TestGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `hotels`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	svc := NewService(db)
	got, err := svc.GetByID("missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetByIDFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `hotels`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "city", "total_rooms"}).
			AddRow("h1", "Grand Central", "Munich", 300))

	svc := NewService(db)
	got, err := svc.GetByID("h1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Grand Central", got.Name)
	assert.Equal(t, 300, got.TotalRooms)
}

func TestDeleteMissingReportsFalse(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `hotels` SET `deleted_at`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	svc := NewService(db)
	ok, err := svc.Delete("missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestListAppliesCityFilter(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `hotels`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT \\* FROM `hotels` WHERE city = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "city"}).
			AddRow("h1", "Grand Central", "Munich"))

	svc := NewService(db)
	items, pag, err := svc.List(pagination.Query{Page: 1, Size: 10}, ListFilter{City: "Munich"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), pag.Total)
	assert.Equal(t, "Munich", items[0].City)
	assert.NoError(t, mock.ExpectationsWereMet())
}
