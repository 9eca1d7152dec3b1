// file: internals/helpers/errs/errs.go
package errs

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

/* =======================================================
   Domain error taxonomy

   Scheduling conflicts are NOT errors — the conflict
   report is a first-class value returned to the caller.
   ======================================================= */

type Code string

const (
	CodeValidation         Code = "VALIDATION_ERROR"
	CodeDuplicate          Code = "DUPLICATE_ERROR"
	CodeNotFound           Code = "NOT_FOUND"
	CodeTemplateResolution Code = "TEMPLATE_RESOLUTION_ERROR"
	CodeTransaction        Code = "TRANSACTION_ERROR"
)

// AppError carries a stable machine code plus a message the UI can render
// directly, so handlers never have to inspect error internals.
type AppError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	// Field names the offending input or resource id, when there is one.
	Field string `json:"field,omitempty"`
}

func (e *AppError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidation(field, message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message, Field: field}
}

func NewDuplicate(message string) *AppError {
	return &AppError{Code: CodeDuplicate, Message: message}
}

func NewNotFound(field, message string) *AppError {
	return &AppError{Code: CodeNotFound, Message: message, Field: field}
}

func NewTemplateResolution(message string) *AppError {
	return &AppError{Code: CodeTemplateResolution, Message: message}
}

func NewTransaction(message string) *AppError {
	return &AppError{Code: CodeTransaction, Message: message}
}

// HTTPStatus maps a domain error code to its transport status.
func HTTPStatus(code Code) int {
	switch code {
	case CodeValidation:
		return fiber.StatusBadRequest
	case CodeDuplicate:
		return fiber.StatusConflict
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeTemplateResolution:
		return fiber.StatusUnprocessableEntity
	case CodeTransaction:
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusInternalServerError
	}
}

// Respond renders an error in the standard JSON envelope. Non-AppError
// values fall back to a plain 500 so internals never leak to the UI.
func Respond(c *fiber.Ctx, err error) error {
	if ae, ok := err.(*AppError); ok {
		status := HTTPStatus(ae.Code)
		return c.Status(status).JSON(fiber.Map{
			"code":    status,
			"status":  "error",
			"error":   ae.Code,
			"message": ae.Message,
			"field":   ae.Field,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"code":    fiber.StatusInternalServerError,
		"status":  "error",
		"message": "Internal server error",
	})
}
