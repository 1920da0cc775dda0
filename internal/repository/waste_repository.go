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

// WasteRepository manages persistence for the append-only waste ledger.
type WasteRepository struct {
	col *mongo.Collection
}

// NewWasteRepository constructs a WasteRepository.
func NewWasteRepository(db *mongo.Database) *WasteRepository {
	return &WasteRepository{col: db.Collection(database.CollectionWaste)}
}

// Create appends a new waste entry.
func (r *WasteRepository) Create(ctx context.Context, entry *models.WasteEntry) error {
	if entry.ID.IsZero() {
		entry.ID = bson.NewObjectID()
	}
	now := time.Now().UTC()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	entry.UpdatedAt = now
	if _, err := r.col.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("create waste entry: %w", err)
	}
	return nil
}

// ListRecent returns the n most recent entries ordered by date descending.
func (r *WasteRepository) ListRecent(ctx context.Context, n int) ([]models.WasteEntry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(int64(n))
	return r.find(ctx, opts)
}

// ListAll returns every entry ordered by date descending.
func (r *WasteRepository) ListAll(ctx context.Context) ([]models.WasteEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	return r.find(ctx, opts)
}

func (r *WasteRepository) find(ctx context.Context, opts options.Lister[options.FindOptions]) ([]models.WasteEntry, error) {
	cursor, err := r.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list waste entries: %w", err)
	}
	defer cursor.Close(ctx)

	entries := make([]models.WasteEntry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode waste entries: %w", err)
	}
	return entries, nil
}

// TotalsByType sums logged amounts per waste category.
func (r *WasteRepository) TotalsByType(ctx context.Context) (*models.WasteTotals, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$type"},
			{Key: "amount", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
		}}},
	}
	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate waste totals: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Type   string  `bson:"_id"`
		Amount float64 `bson:"amount"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode waste totals: %w", err)
	}

	totals := &models.WasteTotals{}
	for _, row := range rows {
		switch row.Type {
		case "prep":
			totals.Prep = row.Amount
		case "plate":
			totals.Plate = row.Amount
		case "storage":
			totals.Storage = row.Amount
		case "other":
			totals.Other = row.Amount
		}
		totals.Total += row.Amount
	}
	return totals, nil
}
