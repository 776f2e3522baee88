package handlers

import (
	"log/slog"
	"net/http"

	"quizforge/validation"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform error body: a fixed message per status class and
// a payload carrying the detail.
type Envelope struct {
	Message string `json:"message"`
	Payload any    `json:"payload"`
}

func ok(c *gin.Context, dto any) {
	if dto == nil {
		c.Status(http.StatusOK)
		return
	}
	c.JSON(http.StatusOK, dto)
}

func created(c *gin.Context, dto any) {
	if dto == nil {
		c.Status(http.StatusCreated)
		return
	}
	c.JSON(http.StatusCreated, dto)
}

func validationFailed(c *gin.Context, errs []validation.FieldError) {
	slog.Error("validation failed", "path", c.FullPath(), "errors", len(errs))
	c.JSON(http.StatusBadRequest, Envelope{Message: "Validation Error", Payload: errs})
}

func unauthorized(c *gin.Context, msg string) {
	slog.Error("unauthorized", "path", c.FullPath(), "detail", msg)
	c.JSON(http.StatusUnauthorized, Envelope{Message: "Unauthorized error", Payload: msg})
}

func forbidden(c *gin.Context, msg string) {
	slog.Error("forbidden", "path", c.FullPath(), "detail", msg)
	c.JSON(http.StatusForbidden, Envelope{Message: "Forbidden", Payload: msg})
}

func notFound(c *gin.Context, msg string) {
	slog.Error("not found", "path", c.FullPath(), "detail", msg)
	c.JSON(http.StatusNotFound, Envelope{Message: "Not Found", Payload: msg})
}

func fail(c *gin.Context, err error) {
	slog.Error("internal error", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, Envelope{Message: "Internal Error", Payload: err.Error()})
}
