package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"employee-system/internal/dto"
	"employee-system/internal/repositories"
	"employee-system/pkg/types"
)

func DashboardCacheKeyAll() string {
	return "dashboard:all"
}

func DashboardCacheKeyOffice(officeID uint64) string {
	return fmt.Sprintf("dashboard:office:%d", officeID)
}

type DashboardServiceInterface interface {
	GetDashboardStats(ctx context.Context, caller types.Caller) (*dto.DashboardStatsDTO, error)
}

type DashboardService struct {
	dashboardRepository repositories.DashboardRepositoryInterface
	cacheRepository     repositories.CacheRepositoryInterface
	cacheTTL            time.Duration
	logger              *zap.Logger
}

func NewDashboardService(
	dashboardRepository repositories.DashboardRepositoryInterface,
	cacheRepository repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) DashboardServiceInterface {
	return &DashboardService{
		dashboardRepository: dashboardRepository,
		cacheRepository:     cacheRepository,
		cacheTTL:            cacheTTL,
		logger:              logger,
	}
}

// BuildDashboardStats derives the response from the raw aggregates. The
// completion rate is rendered with two decimals and is 0.00 when nothing is
// enrolled.
func BuildDashboardStats(totals types.DashboardTotals) dto.DashboardStatsDTO {
	completionRate := "0.00"
	if totals.TotalCoursesEnrolled > 0 {
		rate := 100 * float64(totals.TotalCoursesCompleted) / float64(totals.TotalCoursesEnrolled)
		completionRate = fmt.Sprintf("%.2f", rate)
	}
	return dto.DashboardStatsDTO{
		TotalEmployees:        totals.TotalEmployees,
		RegisteredOnIGOT:      totals.RegisteredOnIGOT,
		NotRegisteredOnIGOT:   totals.TotalEmployees - totals.RegisteredOnIGOT,
		TotalCoursesEnrolled:  totals.TotalCoursesEnrolled,
		TotalCoursesCompleted: totals.TotalCoursesCompleted,
		CompletionRate:        completionRate,
	}
}

func (s *DashboardService) GetDashboardStats(ctx context.Context, caller types.Caller) (*dto.DashboardStatsDTO, error) {
	scope := visibilityScope(caller)

	cacheKey := DashboardCacheKeyAll()
	if scope != nil {
		cacheKey = DashboardCacheKeyOffice(*scope)
	}

	if cached, err := s.cacheRepository.Get(ctx, cacheKey); err == nil && cached != "" {
		var stats dto.DashboardStatsDTO
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
	}

	totals, err := s.dashboardRepository.GetEmployeeTotals(ctx, scope)
	if err != nil {
		s.logger.Error("loading dashboard totals failed", zap.Error(err))
		return nil, err
	}

	stats := BuildDashboardStats(*totals)

	if encoded, err := json.Marshal(stats); err == nil {
		if err := s.cacheRepository.Set(ctx, cacheKey, string(encoded), s.cacheTTL); err != nil {
			s.logger.Warn("caching dashboard stats failed", zap.Error(err))
		}
	}

	return &stats, nil
}
