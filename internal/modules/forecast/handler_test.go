package forecast

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
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

func postJSON(t *testing.T, handler gin.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/forecasts", handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/forecasts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateRejectsNumericConfidence(t *testing.T) {
	h := NewHandler(NewService(nil), nil)

	w := postJSON(t, h.create, `{"hotel_id":"h1","forecast_date":"2025-08-01","confidence":85}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRejectsUnknownConfidenceLabel(t *testing.T) {
	h := NewHandler(NewService(nil), nil)

	w := postJSON(t, h.create, `{"hotel_id":"h1","forecast_date":"2025-08-01","confidence":"very-high"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePersistsConfidenceLabel(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `forecasts`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	svc := NewService(db)
	f, err := svc.Create(&CreateForecastDTO{
		HotelID:      "h1",
		ForecastDate: "2025-08-01",
		Revenue:      "83125",
		Confidence:   "high",
	})
	require.NoError(t, err)
	assert.Equal(t, "high", f.Confidence)
	require.NoError(t, mock.ExpectationsWereMet())
}
