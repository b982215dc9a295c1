package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"github.com/revpilot/core/internal/models"
	"github.com/revpilot/core/internal/modules/activity"
	"github.com/revpilot/core/internal/pkg/redis"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	kpiCacheKey = "rp:dashboard:kpis"
	kpiCacheTTL = 60 * time.Second
)

type Service struct {
	db       *gorm.DB
	cache    *redis.Client
	recorder *activity.Recorder
	logger   *zap.Logger
}

func NewService(db *gorm.DB, cache *redis.Client, recorder *activity.Recorder, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{db: db, cache: cache, recorder: recorder, logger: logger.Named("DashboardService")}
}

// KPIs computes the headline numbers, serving from cache when fresh.
func (s *Service) KPIs(ctx context.Context) (*KPIs, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, kpiCacheKey); err == nil && raw != "" {
			var cached KPIs
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	k, err := s.computeKPIs()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(k); err == nil {
			if err := s.cache.Set(ctx, kpiCacheKey, raw, kpiCacheTTL); err != nil {
				s.logger.Warn("kpi cache write failed", zap.Error(err))
			}
		}
	}
	return k, nil
}

func (s *Service) computeKPIs() (*KPIs, error) {
	var k KPIs

	if err := s.db.Model(&models.HotelModel{}).Where("status = ?", models.HotelActive).Count(&k.TotalHotels).Error; err != nil {
		return nil, err
	}

	var totalRooms struct{ Total int64 }
	if err := s.db.Model(&models.HotelModel{}).
		Select("COALESCE(SUM(total_rooms), 0) AS total").
		Where("status = ?", models.HotelActive).
		Scan(&totalRooms).Error; err != nil {
		return nil, err
	}
	k.TotalRooms = totalRooms.Total

	if err := s.db.Model(&models.EventModel{}).
		Where("start_date >= ? AND is_active = ?", time.Now(), true).
		Count(&k.UpcomingEvents).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.TaskModel{}).
		Where("status IN ?", []models.TaskStatus{models.TaskPending, models.TaskInProgress}).
		Count(&k.OpenTasks).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var perf struct {
		Revenue      float64
		AvgOccupancy float64
		AvgRate      float64
	}
	if err := s.db.Model(&models.HotelActualModel{}).
		Select("COALESCE(SUM(revenue), 0) AS revenue, COALESCE(AVG(occupancy_rate), 0) AS avg_occupancy, COALESCE(AVG(average_daily_rate), 0) AS avg_rate").
		Where("actual_date >= ?", monthStart).
		Scan(&perf).Error; err != nil {
		return nil, err
	}
	k.RevenueThisMonth = perf.Revenue
	k.AvgOccupancy = perf.AvgOccupancy
	k.AvgDailyRate = perf.AvgRate

	return &k, nil
}

// RevenueAnalytics buckets actuals revenue by month over the trailing window.
func (s *Service) RevenueAnalytics(months int) ([]MonthlyRevenue, error) {
	if months <= 0 || months > 36 {
		months = 12
	}
	since := time.Now().AddDate(0, -months, 0)

	var rows []MonthlyRevenue
	err := s.db.Model(&models.HotelActualModel{}).
		Select("DATE_FORMAT(actual_date, '%Y-%m') AS month, COALESCE(SUM(revenue), 0) AS revenue, COALESCE(SUM(room_nights), 0) AS room_nights").
		Where("actual_date >= ?", since).
		Group("month").
		Order("month ASC").
		Scan(&rows).Error
	return rows, err
}

// TopPerformers ranks hotels by summed revenue over the trailing n days.
func (s *Service) TopPerformers(days, limit int) ([]TopPerformer, error) {
	if days <= 0 || days > 365 {
		days = 30
	}
	if limit <= 0 || limit > 20 {
		limit = 5
	}
	since := time.Now().AddDate(0, 0, -days)

	var rows []TopPerformer
	err := s.db.Model(&models.HotelActualModel{}).
		Select("hotel_actuals.hotel_id AS hotel_id, hotels.name AS hotel_name, COALESCE(SUM(hotel_actuals.revenue), 0) AS revenue, COALESCE(AVG(hotel_actuals.occupancy_rate), 0) AS avg_occupancy").
		Joins("JOIN hotels ON hotels.id = hotel_actuals.hotel_id").
		Where("hotel_actuals.actual_date >= ?", since).
		Group("hotel_actuals.hotel_id, hotels.name").
		Order("revenue DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// RecentActivity returns the newest activity-log rows.
func (s *Service) RecentActivity(limit int) ([]models.ActivityModel, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.recorder.Recent(limit)
}

// Overview assembles the full dashboard payload in one call.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	kpis, err := s.KPIs(ctx)
	if err != nil {
		return nil, err
	}
	top, err := s.TopPerformers(30, 5)
	if err != nil {
		return nil, err
	}
	recent, err := s.recorder.Recent(10)
	if err != nil {
		return nil, err
	}
	return &Overview{KPIs: *kpis, TopPerformers: top, RecentActivity: recent}, nil
}
