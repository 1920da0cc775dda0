package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"github.com/campusdine/mess-manager-api/internal/models"
	appErrors "github.com/campusdine/mess-manager-api/pkg/errors"
)

type mockSuggestionRepo struct {
	items []models.MenuSuggestion
}

func (m *mockSuggestionRepo) Create(ctx context.Context, suggestion *models.MenuSuggestion) error {
	if suggestion.ID.IsZero() {
		suggestion.ID = bson.NewObjectID()
	}
	m.items = append(m.items, *suggestion)
	return nil
}

func (m *mockSuggestionRepo) List(ctx context.Context) ([]models.MenuSuggestion, error) {
	out := make([]models.MenuSuggestion, len(m.items))
	copy(out, m.items)
	return out, nil
}

func TestSuggestionServiceCreateDefaultsPriority(t *testing.T) {
	repo := &mockSuggestionRepo{}
	svc := NewSuggestionService(repo, NewValidator(), nil, zap.NewNop())

	suggestion, err := svc.Create(context.Background(), SuggestionRequest{
		MealType:   "dinner",
		Suggestion: "rotate the curry menu weekly",
	})
	require.NoError(t, err)
	assert.Equal(t, "medium", suggestion.Priority)
	assert.False(t, suggestion.Date.IsZero())
	assert.Len(t, repo.items, 1)
}

func TestSuggestionServiceCreateExplicitPriority(t *testing.T) {
	repo := &mockSuggestionRepo{}
	svc := NewSuggestionService(repo, NewValidator(), nil, zap.NewNop())

	suggestion, err := svc.Create(context.Background(), SuggestionRequest{
		MealType:   "breakfast",
		Suggestion: "bring back filter coffee at the counter",
		Priority:   "high",
	})
	require.NoError(t, err)
	assert.Equal(t, "high", suggestion.Priority)
}

func TestSuggestionServiceCreateRejectsShortText(t *testing.T) {
	repo := &mockSuggestionRepo{}
	svc := NewSuggestionService(repo, NewValidator(), nil, zap.NewNop())

	_, err := svc.Create(context.Background(), SuggestionRequest{
		MealType:   "snacks",
		Suggestion: "samosa",
	})
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, []string{"Suggestion must be at least 10 characters long"}, appErr.Details)
	assert.Empty(t, repo.items)
}

func TestSuggestionServiceList(t *testing.T) {
	repo := &mockSuggestionRepo{}
	svc := NewSuggestionService(repo, NewValidator(), nil, zap.NewNop())

	_, err := svc.Create(context.Background(), SuggestionRequest{
		MealType:   "lunch",
		Suggestion: "add a salad bar near the entrance",
	})
	require.NoError(t, err)

	suggestions, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, suggestions, 1)
}
