package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-task-api/internal/validation"
)

func TestValidationFailed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	verr := validation.NewValidationError()
	verr.Add(validation.FieldName, "required")
	verr.Add(validation.FieldPriority, "not in allowed list")

	ValidationFailed(c, verr)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Code    string                  `json:"code"`
		Message string                  `json:"message"`
		Details []validation.FieldError `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, ErrCodeValidationFailed, body.Code)
	assert.Equal(t, verr.Error(), body.Message)
	assert.Equal(t, verr.Errors, body.Details)
}

func TestHelpersDefaultMessages(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		respond func(*gin.Context)
		status  int
		code    string
		message string
	}{
		{"unauthorized", func(c *gin.Context) { Unauthorized(c, "") }, http.StatusUnauthorized, ErrCodeUnauthorized, "Authentication required"},
		{"forbidden", func(c *gin.Context) { Forbidden(c, "") }, http.StatusForbidden, ErrCodeForbidden, "Access denied"},
		{"not found", func(c *gin.Context) { NotFound(c, "Task not found") }, http.StatusNotFound, ErrCodeNotFound, "Task not found"},
		{"conflict", func(c *gin.Context) { Conflict(c, "") }, http.StatusConflict, ErrCodeConflict, "Resource conflict"},
		{"invalid credentials", InvalidCredentials, http.StatusUnauthorized, ErrCodeInvalidCredentials, "Invalid email or password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			tt.respond(c)

			var body APIError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}
