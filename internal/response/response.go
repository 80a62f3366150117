package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sunseat-app/service-schedule/internal/domain/apperr"
)

// Envelope is the uniform JSON body for all responses.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
}

// ErrorBody describes a failed request.
type ErrorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Input   string `json:"input,omitempty"`
}

// Success writes a 200 with the given payload.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// Created writes a 201 with the given payload.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}

// BadRequest writes a 400 with a validation error body.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Envelope{
		Success: false,
		Error:   &ErrorBody{Kind: string(apperr.KindValidation), Message: message},
	})
}

// Error maps an application error to an HTTP status and writes it. Unknown
// error types become a 500 with no internal detail leaked.
func Error(c *gin.Context, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, Envelope{
			Success: false,
			Error:   &ErrorBody{Kind: "internal", Message: "internal server error"},
		})
		return
	}

	status := http.StatusInternalServerError
	switch appErr.Kind() {
	case apperr.KindValidation:
		status = http.StatusBadRequest
	case apperr.KindLocationNotFound, apperr.KindRouteUnavailable:
		status = http.StatusNotFound
	case apperr.KindUpstream:
		status = http.StatusBadGateway
	}

	c.JSON(status, Envelope{
		Success: false,
		Error: &ErrorBody{
			Kind:    string(appErr.Kind()),
			Message: appErr.Message(),
			Input:   appErr.Input(),
		},
	})
}
