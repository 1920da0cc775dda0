package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusdine/mess-manager-api/internal/service"
	appErrors "github.com/campusdine/mess-manager-api/pkg/errors"
	"github.com/campusdine/mess-manager-api/pkg/response"
)

// SuggestionHandler exposes the menu suggestion endpoints.
type SuggestionHandler struct {
	suggestions *service.SuggestionService
}

// NewSuggestionHandler constructs SuggestionHandler.
func NewSuggestionHandler(suggestions *service.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{suggestions: suggestions}
}

// Create godoc
// @Summary Submit a menu suggestion
// @Tags Suggestions
// @Accept json
// @Produce json
// @Param payload body service.SuggestionRequest true "Suggestion payload"
// @Success 201 {object} response.Envelope
// @Router /api/suggestions [post]
func (h *SuggestionHandler) Create(c *gin.Context) {
	var req service.SuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid request payload"))
		return
	}
	suggestion, err := h.suggestions.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, suggestion, "Suggestion submitted successfully")
}

// List godoc
// @Summary List menu suggestions, newest first
// @Tags Suggestions
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/suggestions [get]
func (h *SuggestionHandler) List(c *gin.Context) {
	suggestions, err := h.suggestions.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, suggestions, len(suggestions))
}
