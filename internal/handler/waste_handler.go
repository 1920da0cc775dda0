package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campusdine/mess-manager-api/internal/service"
	appErrors "github.com/campusdine/mess-manager-api/pkg/errors"
	"github.com/campusdine/mess-manager-api/pkg/response"
)

// WasteHandler exposes the waste ledger endpoints. Unlike the student
// registry, responses are bare entries and arrays; that asymmetry is part of
// the published contract.
type WasteHandler struct {
	waste *service.WasteService
}

// NewWasteHandler constructs WasteHandler.
func NewWasteHandler(waste *service.WasteService) *WasteHandler {
	return &WasteHandler{waste: waste}
}

// Create godoc
// @Summary Log a waste entry
// @Tags Waste
// @Accept json
// @Produce json
// @Param payload body service.WasteRequest true "Waste payload"
// @Success 201 {object} models.WasteEntry
// @Router /api/waste [post]
func (h *WasteHandler) Create(c *gin.Context) {
	var req service.WasteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid request payload"))
		return
	}
	entry, err := h.waste.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// History godoc
// @Summary Recent waste entries, date descending
// @Tags Waste
// @Produce json
// @Param limit query int false "Entry count (default 5)"
// @Success 200 {array} models.WasteEntry
// @Router /api/waste/history [get]
func (h *WasteHandler) History(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}
	entries, err := h.waste.ListRecent(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// ListAll godoc
// @Summary All waste entries, date descending
// @Tags Waste
// @Produce json
// @Success 200 {array} models.WasteEntry
// @Router /api/waste [get]
func (h *WasteHandler) ListAll(c *gin.Context) {
	entries, err := h.waste.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
