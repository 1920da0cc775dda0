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

// StudentRepository manages persistence for student records.
type StudentRepository struct {
	col *mongo.Collection
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *mongo.Database) *StudentRepository {
	return &StudentRepository{col: db.Collection(database.CollectionStudents)}
}

// List returns all students ordered by creation time, newest first.
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer cursor.Close(ctx)

	students := make([]models.Student, 0)
	if err := cursor.All(ctx, &students); err != nil {
		return nil, fmt.Errorf("decode students: %w", err)
	}
	return students, nil
}

// FindByID fetches a student by ID. An unparseable ID cannot match any
// document and is reported as mongo.ErrNoDocuments.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	var student models.Student
	if err := r.col.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&student); err != nil {
		return nil, err
	}
	return &student, nil
}

// ExistsByRegNo checks if a student with the given regNo exists, optionally
// excluding an ID (used when updating a record in place).
func (r *StudentRepository) ExistsByRegNo(ctx context.Context, regNo string, excludeID string) (bool, error) {
	filter := bson.D{{Key: "regNo", Value: regNo}}
	if excludeID != "" {
		if oid, err := bson.ObjectIDFromHex(excludeID); err == nil {
			filter = append(filter, bson.E{Key: "_id", Value: bson.D{{Key: "$ne", Value: oid}}})
		}
	}
	count, err := r.col.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("check regNo: %w", err)
	}
	return count > 0, nil
}

// Create inserts a new student record. Duplicate regNo writes surface the
// driver's duplicate-key error unchanged so the service can classify them.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	if student.ID.IsZero() {
		student.ID = bson.NewObjectID()
	}
	if student.CreatedAt.IsZero() {
		student.CreatedAt = time.Now().UTC()
	}
	if _, err := r.col.InsertOne(ctx, student); err != nil {
		return err
	}
	return nil
}

// Replace swaps the stored document for the provided one.
func (r *StudentRepository) Replace(ctx context.Context, id string, student *models.Student) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	student.ID = oid
	result, err := r.col.ReplaceOne(ctx, bson.D{{Key: "_id", Value: oid}}, student)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes the record by ID.
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	result, err := r.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Counts aggregates registered students by mess and mess type.
func (r *StudentRepository) Counts(ctx context.Context) (*models.StudentCounts, error) {
	counts := &models.StudentCounts{
		ByMess:     make(map[string]int64),
		ByMessType: make(map[string]int64),
	}

	total, err := r.col.CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("count students: %w", err)
	}
	counts.Total = total

	byMess, err := r.groupCounts(ctx, "$mess")
	if err != nil {
		return nil, err
	}
	counts.ByMess = byMess

	byType, err := r.groupCounts(ctx, "$messType")
	if err != nil {
		return nil, err
	}
	counts.ByMessType = byType

	return counts, nil
}

func (r *StudentRepository) groupCounts(ctx context.Context, field string) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: field},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("group students by %s: %w", field, err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID    string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode student counts: %w", err)
	}

	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.ID] = row.Count
	}
	return result, nil
}
