package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"

	"github.com/campusdine/mess-manager-api/internal/models"
	"github.com/campusdine/mess-manager-api/internal/service"
	"github.com/campusdine/mess-manager-api/pkg/response"
)

type stubStudentRepo struct {
	items map[string]*models.Student
}

func newStubStudentRepo() *stubStudentRepo {
	return &stubStudentRepo{items: make(map[string]*models.Student)}
}

func (s *stubStudentRepo) List(ctx context.Context) ([]models.Student, error) {
	students := make([]models.Student, 0, len(s.items))
	for _, st := range s.items {
		students = append(students, *st)
	}
	return students, nil
}

func (s *stubStudentRepo) FindByID(ctx context.Context, id string) (*models.Student, error) {
	if st, ok := s.items[id]; ok {
		cp := *st
		return &cp, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (s *stubStudentRepo) ExistsByRegNo(ctx context.Context, regNo string, excludeID string) (bool, error) {
	for id, st := range s.items {
		if st.RegNo == regNo && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubStudentRepo) Create(ctx context.Context, student *models.Student) error {
	if student.ID.IsZero() {
		student.ID = bson.NewObjectID()
	}
	if student.CreatedAt.IsZero() {
		student.CreatedAt = time.Now().UTC()
	}
	cp := *student
	s.items[student.ID.Hex()] = &cp
	return nil
}

func (s *stubStudentRepo) Replace(ctx context.Context, id string, student *models.Student) error {
	if _, ok := s.items[id]; !ok {
		return mongo.ErrNoDocuments
	}
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	student.ID = oid
	cp := *student
	s.items[id] = &cp
	return nil
}

func (s *stubStudentRepo) Delete(ctx context.Context, id string) error {
	if _, ok := s.items[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(s.items, id)
	return nil
}

type stubWasteRepo struct {
	entries []models.WasteEntry
}

func (s *stubWasteRepo) Create(ctx context.Context, entry *models.WasteEntry) error {
	if entry.ID.IsZero() {
		entry.ID = bson.NewObjectID()
	}
	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	s.entries = append(s.entries, *entry)
	return nil
}

func (s *stubWasteRepo) sorted() []models.WasteEntry {
	out := make([]models.WasteEntry, len(s.entries))
	copy(out, s.entries)
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

func (s *stubWasteRepo) ListRecent(ctx context.Context, n int) ([]models.WasteEntry, error) {
	out := s.sorted()
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

func (s *stubWasteRepo) ListAll(ctx context.Context) ([]models.WasteEntry, error) {
	return s.sorted(), nil
}

type stubSuggestionRepo struct {
	items []models.MenuSuggestion
}

func (s *stubSuggestionRepo) Create(ctx context.Context, suggestion *models.MenuSuggestion) error {
	if suggestion.ID.IsZero() {
		suggestion.ID = bson.NewObjectID()
	}
	s.items = append(s.items, *suggestion)
	return nil
}

func (s *stubSuggestionRepo) List(ctx context.Context) ([]models.MenuSuggestion, error) {
	out := make([]models.MenuSuggestion, len(s.items))
	copy(out, s.items)
	return out, nil
}

type stubDashboardService struct {
	summary *models.DashboardSummary
	cached  bool
	err     error
}

func (s *stubDashboardService) Summary(ctx context.Context) (*models.DashboardSummary, bool, error) {
	return s.summary, s.cached, s.err
}

// newTestRouter wires the full route table against in-memory repositories,
// mirroring the production engine minus infrastructure middleware.
func newTestRouter(dashboard dashboardService) (*gin.Engine, *stubStudentRepo, *stubWasteRepo, *stubSuggestionRepo) {
	gin.SetMode(gin.TestMode)

	studentRepo := newStubStudentRepo()
	wasteRepo := &stubWasteRepo{}
	suggestionRepo := &stubSuggestionRepo{}

	validate := service.NewValidator()
	logr := zap.NewNop()

	if dashboard == nil {
		dashboard = &stubDashboardService{summary: &models.DashboardSummary{}}
	}

	r := gin.New()
	RegisterRoutes(r,
		NewStudentHandler(service.NewStudentService(studentRepo, validate, nil, logr)),
		NewWasteHandler(service.NewWasteService(wasteRepo, validate, nil, logr, 5)),
		NewSuggestionHandler(service.NewSuggestionService(suggestionRepo, validate, nil, logr)),
		NewDashboardHandler(dashboard),
	)
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.Envelope{Success: false, Message: "Route not found"})
	})
	return r, studentRepo, wasteRepo, suggestionRepo
}

// envelope mirrors the wire shape with raw data for per-test decoding.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   *int            `json:"count"`
	Data    json.RawMessage `json:"data"`
	Errors  []string        `json:"errors"`
}
