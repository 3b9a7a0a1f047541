package utils

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope every endpoint returns: a success flag, a
// human-readable message and a timestamp, plus optional payload and the
// full list of validation errors when applicable.
type APIResponse struct {
	Success   bool        `json:"success"`
	Timestamp string      `json:"timestamp"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Errors    []string    `json:"errors,omitempty"`
}

func sendResponse(ctx *gin.Context, statusCode int, success bool, message string, data interface{}) {
	ctx.JSON(statusCode, APIResponse{
		Success:   success,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Message:   message,
		Data:      data,
	})
}

// SuccessJSON sends a 200 response with optional data.
func SuccessJSON(ctx *gin.Context, message string, data interface{}) {
	sendResponse(ctx, http.StatusOK, true, message, data)
}

// CreatedJSON sends a 201 response with optional data.
func CreatedJSON(ctx *gin.Context, message string, data interface{}) {
	sendResponse(ctx, http.StatusCreated, true, message, data)
}

// BadRequestJSON sends a 400 response.
func BadRequestJSON(ctx *gin.Context, message string) {
	sendResponse(ctx, http.StatusBadRequest, false, message, nil)
}

// ValidationErrorJSON sends a 400 response carrying every violated
// constraint, not just the first one.
func ValidationErrorJSON(ctx *gin.Context, errors []string) {
	message := "Errores de validación"
	if len(errors) > 0 {
		message = errors[0]
	}
	ctx.JSON(http.StatusBadRequest, APIResponse{
		Success:   false,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Message:   message,
		Errors:    errors,
	})
}

// UnauthorizedJSON sends a 401 response.
func UnauthorizedJSON(ctx *gin.Context, message string) {
	if message == "" {
		message = "No autorizado"
	}
	sendResponse(ctx, http.StatusUnauthorized, false, message, nil)
}

// ForbiddenJSON sends a 403 response.
func ForbiddenJSON(ctx *gin.Context, message string) {
	if message == "" {
		message = "Acceso denegado"
	}
	sendResponse(ctx, http.StatusForbidden, false, message, nil)
}

// NotFoundJSON sends a 404 response.
func NotFoundJSON(ctx *gin.Context, message string) {
	if message == "" {
		message = "Recurso no encontrado"
	}
	sendResponse(ctx, http.StatusNotFound, false, message, nil)
}

// ConflictJSON sends a 409 response.
func ConflictJSON(ctx *gin.Context, message string) {
	sendResponse(ctx, http.StatusConflict, false, message, nil)
}

// ServerErrorJSON sends a 500 response. The underlying error is not
// exposed to clients.
func ServerErrorJSON(ctx *gin.Context) {
	sendResponse(ctx, http.StatusInternalServerError, false, "Error interno del servidor", nil)
}
