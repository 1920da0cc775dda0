package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appErrors "github.com/campusdine/mess-manager-api/pkg/errors"
	"github.com/campusdine/mess-manager-api/pkg/logger"
	"github.com/campusdine/mess-manager-api/pkg/middleware/requestid"
)

// Envelope is the uniform JSON wrapper for student-registry style responses.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

// JSON sends a success envelope.
func JSON(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}, message string) {
	JSON(c, http.StatusCreated, data, message)
}

// List sends a success envelope with an item count.
func List(c *gin.Context, data interface{}, count int) {
	c.JSON(http.StatusOK, Envelope{Success: true, Count: &count, Data: data})
}

// Error converts the error to the common structure and writes it. Server
// faults keep their cause out of the body; the detail is logged here with the
// request-scoped logger instead.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	if appErr.Status >= http.StatusInternalServerError {
		path := ""
		if c.Request != nil {
			path = c.Request.URL.Path
		}
		fields := []zap.Field{
			zap.String("code", appErr.Code),
			zap.String("path", path),
			zap.Error(appErr.Err),
		}
		if reqID := requestid.Value(c); reqID != "" {
			fields = append(fields, zap.String("request_id", reqID))
		}
		logger.FromContext(c).Error(appErr.Message, fields...)
	}
	c.JSON(appErr.Status, Envelope{
		Success: false,
		Message: appErr.Message,
		Errors:  appErr.Details,
	})
}
