package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"

	"github.com/campusdine/mess-manager-api/internal/models"
	appErrors "github.com/campusdine/mess-manager-api/pkg/errors"
)

const duplicateRegNoMessage = "A student with this registration number already exists"

type studentRepository interface {
	List(ctx context.Context) ([]models.Student, error)
	FindByID(ctx context.Context, id string) (*models.Student, error)
	ExistsByRegNo(ctx context.Context, regNo string, excludeID string) (bool, error)
	Create(ctx context.Context, student *models.Student) error
	Replace(ctx context.Context, id string, student *models.Student) error
	Delete(ctx context.Context, id string) error
}

// StudentRequest holds the payload for creating or replacing a student.
type StudentRequest struct {
	RegNo      string `json:"regNo" validate:"required,reg_no"`
	Name       string `json:"name" validate:"required,min=2,name_chars"`
	Block      string `json:"block" validate:"required,block_letter"`
	RoomNumber string `json:"roomNumber" validate:"required,room_number"`
	Mess       string `json:"mess" validate:"required,mess_name"`
	MessType   string `json:"messType" validate:"required,mess_type"`
}

func (r *StudentRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Block = strings.TrimSpace(r.Block)
	r.RoomNumber = strings.TrimSpace(r.RoomNumber)
}

var studentMessages = map[string]fieldMessages{
	"RegNo": {
		"required": "Registration number is required",
		"reg_no":   "%s is not a valid registration number! Format should be: 23CSE0001",
	},
	"Name": {
		"required":   "Name is required",
		"min":        "Name must be at least 2 characters long",
		"name_chars": "%s can only contain letters and spaces!",
	},
	"Block": {
		"required":     "Block is required",
		"block_letter": "%s must be a single uppercase letter!",
	},
	"RoomNumber": {
		"required":    "Room number is required",
		"room_number": "%s must be a 3-digit number!",
	},
	"Mess": {
		"required":  "Mess selection is required",
		"mess_name": "%s is not a valid mess",
	},
	"MessType": {
		"required":  "Mess type is required",
		"mess_type": "%s is not a valid mess type",
	},
}

// ValidateStudent runs the full rule set against the payload and returns
// every failing field's message. Independent of the storage layer.
func ValidateStudent(v *validator.Validate, req *StudentRequest) []string {
	req.normalize()
	if err := v.Struct(req); err != nil {
		return validationMessages(err, studentMessages)
	}
	return nil
}

// StudentService handles student registry use-cases.
type StudentService struct {
	repo      studentRepository
	validator *validator.Validate
	cache     *CacheService
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, validate *validator.Validate, cache *CacheService, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, validator: validate, cache: cache, logger: logger}
}

// List returns all students, newest first.
func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	return students, nil
}

// Get returns the student or a not-found error.
func (s *StudentService) Get(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	return student, nil
}

// Create registers a new student. The regNo pre-check is backed by the
// unique index, so a lost duplicate race still surfaces as the same
// "already exists" condition.
func (s *StudentService) Create(ctx context.Context, req StudentRequest) (*models.Student, error) {
	if msgs := ValidateStudent(s.validator, &req); msgs != nil {
		return nil, appErrors.Validation(msgs)
	}
	exists, err := s.repo.ExistsByRegNo(ctx, req.RegNo, "")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check registration number")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrDuplicate, duplicateRegNoMessage)
	}
	student := &models.Student{
		RegNo:      req.RegNo,
		Name:       req.Name,
		Block:      req.Block,
		RoomNumber: req.RoomNumber,
		Mess:       req.Mess,
		MessType:   req.MessType,
	}
	if err := s.repo.Create(ctx, student); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, appErrors.Clone(appErrors.ErrDuplicate, duplicateRegNoMessage)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create student")
	}
	s.invalidateSummary(ctx)
	return student, nil
}

// Update replaces the stored record, re-validated against the same rules as
// Create. createdAt is carried over from the existing document.
func (s *StudentService) Update(ctx context.Context, id string, req StudentRequest) (*models.Student, error) {
	if msgs := ValidateStudent(s.validator, &req); msgs != nil {
		return nil, appErrors.Validation(msgs)
	}
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	exists, err := s.repo.ExistsByRegNo(ctx, req.RegNo, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check registration number")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrDuplicate, duplicateRegNoMessage)
	}
	replacement := &models.Student{
		RegNo:      req.RegNo,
		Name:       req.Name,
		Block:      req.Block,
		RoomNumber: req.RoomNumber,
		Mess:       req.Mess,
		MessType:   req.MessType,
		CreatedAt:  existing.CreatedAt,
	}
	if err := s.repo.Replace(ctx, id, replacement); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Student not found")
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, appErrors.Clone(appErrors.ErrDuplicate, duplicateRegNoMessage)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update student")
	}
	s.invalidateSummary(ctx)
	return replacement, nil
}

// Delete removes the student. A second delete of the same id reports
// not-found rather than silently succeeding.
func (s *StudentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return appErrors.Clone(appErrors.ErrNotFound, "Student not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete student")
	}
	s.invalidateSummary(ctx)
	return nil
}

func (s *StudentService) invalidateSummary(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, dashboardSummaryKey); err != nil {
		s.logger.Warn("summary cache invalidation failed", zap.Error(err))
	}
}
