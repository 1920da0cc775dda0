package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/campusdine/mess-manager-api/pkg/config"
)

// Collection names owned by this service.
const (
	CollectionStudents    = "students"
	CollectionWaste       = "wastes"
	CollectionSuggestions = "suggestions"
)

// NewMongo connects to the document store and verifies the connection.
// The returned client is the process-scoped handle shared by all repositories.
func NewMongo(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return client, nil
}

// EnsureIndexes creates the indexes the services rely on: the unique regNo
// index backing duplicate-registration detection, the block/room lookup
// index, and the descending date index serving waste history queries.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	studentIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "regNo", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "block", Value: 1}, {Key: "roomNumber", Value: 1}},
		},
	}
	if _, err := db.Collection(CollectionStudents).Indexes().CreateMany(ctx, studentIndexes); err != nil {
		return fmt.Errorf("create student indexes: %w", err)
	}

	wasteIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: -1}}},
	}
	if _, err := db.Collection(CollectionWaste).Indexes().CreateMany(ctx, wasteIndexes); err != nil {
		return fmt.Errorf("create waste indexes: %w", err)
	}

	return nil
}

// Disconnect tears down the shared client.
func Disconnect(ctx context.Context, client *mongo.Client) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
