package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/campusdine/mess-manager-api/internal/models"
	appErrors "github.com/campusdine/mess-manager-api/pkg/errors"
)

const dashboardSummaryKey = "dash:summary"

type wasteTotalsProvider interface {
	TotalsByType(ctx context.Context) (*models.WasteTotals, error)
}

type studentCountsProvider interface {
	Counts(ctx context.Context) (*models.StudentCounts, error)
}

type suggestionCounter interface {
	Count(ctx context.Context) (int64, error)
}

// DashboardService composes the derived dashboard aggregate: waste totals by
// category, student counts by mess, and the suggestion tally. The aggregate
// is cache-aside; a cold or absent cache degrades to direct computation.
type DashboardService struct {
	waste       wasteTotalsProvider
	students    studentCountsProvider
	suggestions suggestionCounter
	cache       *CacheService
	cacheTTL    time.Duration
	logger      *zap.Logger
	now         func() time.Time
}

// NewDashboardService constructs the dashboard service.
func NewDashboardService(waste wasteTotalsProvider, students studentCountsProvider, suggestions suggestionCounter, cache *CacheService, cacheTTL time.Duration, logger *zap.Logger) *DashboardService {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		waste:       waste,
		students:    students,
		suggestions: suggestions,
		cache:       cache,
		cacheTTL:    cacheTTL,
		logger:      logger,
		now:         time.Now,
	}
}

// Summary returns the dashboard aggregate and whether it came from cache.
func (s *DashboardService) Summary(ctx context.Context) (*models.DashboardSummary, bool, error) {
	if s.cache != nil {
		var cached models.DashboardSummary
		if hit, err := s.cache.Get(ctx, dashboardSummaryKey, &cached); err == nil && hit {
			return &cached, true, nil
		}
	}

	summary, err := s.compose(ctx)
	if err != nil {
		return nil, false, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, dashboardSummaryKey, summary, s.cacheTTL); err != nil {
			s.logger.Warn("summary cache write failed", zap.Error(err))
		}
	}
	return summary, false, nil
}

func (s *DashboardService) compose(ctx context.Context) (*models.DashboardSummary, error) {
	totals, err := s.waste.TotalsByType(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to aggregate waste totals")
	}
	counts, err := s.students.Counts(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count students")
	}
	suggestionCount, err := s.suggestions.Count(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count suggestions")
	}

	return &models.DashboardSummary{
		Students:    *counts,
		Waste:       *totals,
		Suggestions: suggestionCount,
		GeneratedAt: s.now().UTC(),
	}, nil
}
