package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusdine/mess-manager-api/internal/models"
	appErrors "github.com/campusdine/mess-manager-api/pkg/errors"
)

type suggestionRepository interface {
	Create(ctx context.Context, suggestion *models.MenuSuggestion) error
	List(ctx context.Context) ([]models.MenuSuggestion, error)
}

// SuggestionRequest holds the payload for submitting a menu suggestion.
type SuggestionRequest struct {
	MealType                  string     `json:"mealType" validate:"required,meal_type"`
	Suggestion                string     `json:"suggestion" validate:"required,min=10"`
	Priority                  string     `json:"priority" validate:"omitempty,priority"`
	FeasibleForMassProduction bool       `json:"feasibleForMassProduction"`
	Allergies                 bool       `json:"allergies"`
	Date                      *time.Time `json:"date"`
}

func (r *SuggestionRequest) normalize() {
	r.Suggestion = strings.TrimSpace(r.Suggestion)
	if r.Priority == "" {
		r.Priority = "medium"
	}
}

var suggestionMessages = map[string]fieldMessages{
	"MealType": {
		"required":  "Please select a meal type",
		"meal_type": "%s is not a valid meal type",
	},
	"Suggestion": {
		"required": "Please enter your suggestion",
		"min":      "Suggestion must be at least 10 characters long",
	},
	"Priority": {
		"priority": "%s is not a valid priority",
	},
}

// ValidateSuggestion returns every failing field's message for the payload.
func ValidateSuggestion(v *validator.Validate, req *SuggestionRequest) []string {
	req.normalize()
	if err := v.Struct(req); err != nil {
		return validationMessages(err, suggestionMessages)
	}
	return nil
}

// SuggestionService handles menu suggestion submissions. Like the waste
// ledger, suggestions are append-only.
type SuggestionService struct {
	repo      suggestionRepository
	validator *validator.Validate
	cache     *CacheService
	logger    *zap.Logger
}

// NewSuggestionService constructs the suggestion service.
func NewSuggestionService(repo suggestionRepository, validate *validator.Validate, cache *CacheService, logger *zap.Logger) *SuggestionService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SuggestionService{repo: repo, validator: validate, cache: cache, logger: logger}
}

// Create validates and stores a suggestion.
func (s *SuggestionService) Create(ctx context.Context, req SuggestionRequest) (*models.MenuSuggestion, error) {
	if msgs := ValidateSuggestion(s.validator, &req); msgs != nil {
		return nil, appErrors.Validation(msgs)
	}
	date := time.Now().UTC()
	if req.Date != nil {
		date = req.Date.UTC()
	}
	suggestion := &models.MenuSuggestion{
		MealType:                  req.MealType,
		Suggestion:                req.Suggestion,
		Priority:                  req.Priority,
		FeasibleForMassProduction: req.FeasibleForMassProduction,
		Allergies:                 req.Allergies,
		Date:                      date,
	}
	if err := s.repo.Create(ctx, suggestion); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create suggestion")
	}
	s.invalidateSummary(ctx)
	return suggestion, nil
}

// List returns all suggestions, newest first.
func (s *SuggestionService) List(ctx context.Context) ([]models.MenuSuggestion, error) {
	suggestions, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list suggestions")
	}
	return suggestions, nil
}

func (s *SuggestionService) invalidateSummary(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, dashboardSummaryKey); err != nil {
		s.logger.Warn("summary cache invalidation failed", zap.Error(err))
	}
}
