package pkg

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	cause := errors.New("db down")
	err := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "INTERNAL_ERROR: An internal error occurred: db down", err.Error())
	assert.Equal(t, HTTPError{Code: "INTERNAL_ERROR", Message: "An internal error occurred"}, err.ToHTTPError())

	simple := NewDomainErrorSimple("EQUIPMENT_NOT_FOUND", "Equipment not found", http.StatusNotFound)
	assert.Equal(t, "EQUIPMENT_NOT_FOUND: Equipment not found", simple.Error())
	assert.Nil(t, simple.Unwrap())
}

func TestAppError_WithDetails(t *testing.T) {
	base := NewDomainErrorSimple("VALIDATION_ERROR", "Invalid equipment", http.StatusBadRequest)
	detailed := base.WithDetails([]FieldDetail{{Field: "marca", Message: "Marca é obrigatória"}})

	assert.Empty(t, base.Details)
	assert.Equal(t, http.StatusBadRequest, detailed.HTTPStatus)
	assert.Equal(t, []FieldDetail{{Field: "marca", Message: "Marca é obrigatória"}}, detailed.ToHTTPError().Details)
}
