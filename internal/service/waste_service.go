package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusdine/mess-manager-api/internal/models"
	"github.com/campusdine/mess-manager-api/pkg/config"
	appErrors "github.com/campusdine/mess-manager-api/pkg/errors"
)

// DefaultRecentLimit is the documented default for history queries, shared
// with the config fallback so the two can never drift apart.
const DefaultRecentLimit = config.DefaultWasteRecentLimit

type wasteRepository interface {
	Create(ctx context.Context, entry *models.WasteEntry) error
	ListRecent(ctx context.Context, n int) ([]models.WasteEntry, error)
	ListAll(ctx context.Context) ([]models.WasteEntry, error)
}

// WasteRequest holds the payload for logging a waste entry. Amount is a
// pointer so that a legitimate zero survives the required check.
type WasteRequest struct {
	Date   *time.Time `json:"date"`
	Type   string     `json:"type" validate:"required,waste_type"`
	Amount *float64   `json:"amount" validate:"required,gte=0"`
	Reason string     `json:"reason" validate:"required"`
}

var wasteMessages = map[string]fieldMessages{
	"Type": {
		"required":   "Waste type is required",
		"waste_type": "%s is not a valid waste type",
	},
	"Amount": {
		"required": "Amount is required",
		"gte":      "Amount cannot be negative",
	},
	"Reason": {
		"required": "Reason is required",
	},
}

// ValidateWaste returns every failing field's message for the payload.
func ValidateWaste(v *validator.Validate, req *WasteRequest) []string {
	if err := v.Struct(req); err != nil {
		return validationMessages(err, wasteMessages)
	}
	return nil
}

// WasteService handles the append-only waste ledger. No update or delete is
// exposed; the asymmetry against the student registry is deliberate.
type WasteService struct {
	repo        wasteRepository
	validator   *validator.Validate
	cache       *CacheService
	logger      *zap.Logger
	recentLimit int
}

// NewWasteService constructs the waste service.
func NewWasteService(repo wasteRepository, validate *validator.Validate, cache *CacheService, logger *zap.Logger, recentLimit int) *WasteService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if recentLimit <= 0 {
		recentLimit = DefaultRecentLimit
	}
	return &WasteService{repo: repo, validator: validate, cache: cache, logger: logger, recentLimit: recentLimit}
}

// Create validates and appends a waste entry. Date defaults to submission
// time when omitted.
func (s *WasteService) Create(ctx context.Context, req WasteRequest) (*models.WasteEntry, error) {
	if msgs := ValidateWaste(s.validator, &req); msgs != nil {
		return nil, appErrors.Validation(msgs)
	}
	date := time.Now().UTC()
	if req.Date != nil {
		date = req.Date.UTC()
	}
	entry := &models.WasteEntry{
		Date:   date,
		Type:   req.Type,
		Amount: *req.Amount,
		Reason: req.Reason,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create waste entry")
	}
	s.invalidateSummary(ctx)
	return entry, nil
}

// ListRecent returns the n most recent entries, date descending. A
// non-positive n falls back to the configured default.
func (s *WasteService) ListRecent(ctx context.Context, n int) ([]models.WasteEntry, error) {
	if n <= 0 {
		n = s.recentLimit
	}
	entries, err := s.repo.ListRecent(ctx, n)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list recent waste entries")
	}
	return entries, nil
}

// ListAll returns every entry, date descending.
func (s *WasteService) ListAll(ctx context.Context) ([]models.WasteEntry, error) {
	entries, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list waste entries")
	}
	return entries, nil
}

func (s *WasteService) invalidateSummary(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, dashboardSummaryKey); err != nil {
		s.logger.Warn("summary cache invalidation failed", zap.Error(err))
	}
}
