package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"

	"github.com/campusdine/mess-manager-api/internal/models"
	appErrors "github.com/campusdine/mess-manager-api/pkg/errors"
)

type mockStudentRepo struct {
	items     map[string]*models.Student
	createErr error
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{items: make(map[string]*models.Student)}
}

func (m *mockStudentRepo) List(ctx context.Context) ([]models.Student, error) {
	students := make([]models.Student, 0, len(m.items))
	for _, s := range m.items {
		students = append(students, *s)
	}
	return students, nil
}

func (m *mockStudentRepo) FindByID(ctx context.Context, id string) (*models.Student, error) {
	if s, ok := m.items[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockStudentRepo) ExistsByRegNo(ctx context.Context, regNo string, excludeID string) (bool, error) {
	for id, s := range m.items {
		if s.RegNo == regNo && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockStudentRepo) Create(ctx context.Context, student *models.Student) error {
	if m.createErr != nil {
		return m.createErr
	}
	if student.ID.IsZero() {
		student.ID = bson.NewObjectID()
	}
	if student.CreatedAt.IsZero() {
		student.CreatedAt = time.Now().UTC()
	}
	cp := *student
	m.items[student.ID.Hex()] = &cp
	return nil
}

func (m *mockStudentRepo) Replace(ctx context.Context, id string, student *models.Student) error {
	if _, ok := m.items[id]; !ok {
		return mongo.ErrNoDocuments
	}
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	student.ID = oid
	cp := *student
	m.items[id] = &cp
	return nil
}

func (m *mockStudentRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(m.items, id)
	return nil
}

func TestStudentServiceCreateThenGet(t *testing.T) {
	repo := newMockStudentRepo()
	svc := NewStudentService(repo, NewValidator(), nil, zap.NewNop())

	created, err := svc.Create(context.Background(), validStudentRequest())
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())
	assert.False(t, created.CreatedAt.IsZero())

	fetched, err := svc.Get(context.Background(), created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestStudentServiceCreateDuplicate(t *testing.T) {
	repo := newMockStudentRepo()
	svc := NewStudentService(repo, NewValidator(), nil, zap.NewNop())

	_, err := svc.Create(context.Background(), validStudentRequest())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validStudentRequest())
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, duplicateRegNoMessage, appErr.Message)
	assert.Len(t, repo.items, 1)
}

func TestStudentServiceCreateDuplicateRace(t *testing.T) {
	// Pre-check passes but the insert loses the race and hits the unique
	// index. The caller must still see the "already exists" condition.
	repo := newMockStudentRepo()
	repo.createErr = mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "duplicate key"}},
	}
	svc := NewStudentService(repo, NewValidator(), nil, zap.NewNop())

	_, err := svc.Create(context.Background(), validStudentRequest())
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, duplicateRegNoMessage, appErr.Message)
}

func TestStudentServiceCreateValidation(t *testing.T) {
	repo := newMockStudentRepo()
	svc := NewStudentService(repo, NewValidator(), nil, zap.NewNop())

	req := validStudentRequest()
	req.RegNo = "bogus"
	req.RoomNumber = "9"
	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Len(t, appErr.Details, 2)
	assert.Empty(t, repo.items)
}

func TestStudentServiceUpdate(t *testing.T) {
	repo := newMockStudentRepo()
	svc := NewStudentService(repo, NewValidator(), nil, zap.NewNop())

	created, err := svc.Create(context.Background(), validStudentRequest())
	require.NoError(t, err)

	req := validStudentRequest()
	req.Name = "Janet Roe"
	req.RoomNumber = "202"
	updated, err := svc.Update(context.Background(), created.ID.Hex(), req)
	require.NoError(t, err)
	assert.Equal(t, "Janet Roe", updated.Name)
	assert.Equal(t, "202", updated.RoomNumber)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	stored, err := svc.Get(context.Background(), created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Janet Roe", stored.Name)
}

func TestStudentServiceUpdateNotFound(t *testing.T) {
	repo := newMockStudentRepo()
	svc := NewStudentService(repo, NewValidator(), nil, zap.NewNop())

	_, err := svc.Update(context.Background(), bson.NewObjectID().Hex(), validStudentRequest())
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "Student not found", appErr.Message)
}

func TestStudentServiceDeleteTwice(t *testing.T) {
	repo := newMockStudentRepo()
	svc := NewStudentService(repo, NewValidator(), nil, zap.NewNop())

	created, err := svc.Create(context.Background(), validStudentRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID.Hex()))

	err = svc.Delete(context.Background(), created.ID.Hex())
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestStudentServiceGetUnparseableID(t *testing.T) {
	repo := newMockStudentRepo()
	svc := NewStudentService(repo, NewValidator(), nil, zap.NewNop())

	_, err := svc.Get(context.Background(), "not-a-hex-id")
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}
