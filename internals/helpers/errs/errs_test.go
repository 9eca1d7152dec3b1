// file: internals/helpers/errs/errs_test.go
package errs

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeValidation, fiber.StatusBadRequest},
		{CodeDuplicate, fiber.StatusConflict},
		{CodeNotFound, fiber.StatusNotFound},
		{CodeTemplateResolution, fiber.StatusUnprocessableEntity},
		{CodeTransaction, fiber.StatusInternalServerError},
		{Code("SOMETHING_ELSE"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.code))
		})
	}
}

func TestAppError_Error(t *testing.T) {
	withField := NewValidation("days", "At least one day is required")
	assert.Equal(t, "VALIDATION_ERROR: At least one day is required (days)", withField.Error())

	noField := NewDuplicate("Timeslots already exist for this term")
	assert.Equal(t, "DUPLICATE_ERROR: Timeslots already exist for this term", noField.Error())
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, CodeNotFound, NewNotFound("M9-9", "Grade level not found").Code)
	assert.Equal(t, "M9-9", NewNotFound("M9-9", "Grade level not found").Field)
	assert.Equal(t, CodeTemplateResolution, NewTemplateResolution("zero locks").Code)
	assert.Equal(t, CodeTransaction, NewTransaction("rollback").Code)
}
