package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/campusdine/mess-manager-api/internal/models"
	"github.com/campusdine/mess-manager-api/pkg/database"
)

// SuggestionRepository manages persistence for menu suggestions.
type SuggestionRepository struct {
	col *mongo.Collection
}

// NewSuggestionRepository constructs a SuggestionRepository.
func NewSuggestionRepository(db *mongo.Database) *SuggestionRepository {
	return &SuggestionRepository{col: db.Collection(database.CollectionSuggestions)}
}

// Create appends a new suggestion.
func (r *SuggestionRepository) Create(ctx context.Context, suggestion *models.MenuSuggestion) error {
	if suggestion.ID.IsZero() {
		suggestion.ID = bson.NewObjectID()
	}
	if suggestion.CreatedAt.IsZero() {
		suggestion.CreatedAt = time.Now().UTC()
	}
	if _, err := r.col.InsertOne(ctx, suggestion); err != nil {
		return fmt.Errorf("create suggestion: %w", err)
	}
	return nil
}

// List returns all suggestions, newest first.
func (r *SuggestionRepository) List(ctx context.Context) ([]models.MenuSuggestion, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list suggestions: %w", err)
	}
	defer cursor.Close(ctx)

	suggestions := make([]models.MenuSuggestion, 0)
	if err := cursor.All(ctx, &suggestions); err != nil {
		return nil, fmt.Errorf("decode suggestions: %w", err)
	}
	return suggestions, nil
}

// Count returns the total number of stored suggestions.
func (r *SuggestionRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.col.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count suggestions: %w", err)
	}
	return count, nil
}
