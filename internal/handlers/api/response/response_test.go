package response

import (
	"errors"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type request struct {
	Name      string `json:"name" validate:"required"`
	Threshold int    `json:"threshold" validate:"min=1,max=99"`
	Mode      string `json:"mode" validate:"oneof=over under"`
}

func TestValidationError(t *testing.T) {
	err := validator.New().Struct(request{Threshold: 100, Mode: "sideways"})
	require.Error(t, err)

	var validateErr validator.ValidationErrors
	require.True(t, errors.As(err, &validateErr))

	resp := ValidationError(validateErr)
	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.Equal(t, "field Name is required, field Threshold must be at most 99, field Mode must be one of: over under", resp.Error)
}

func TestError_DefaultsToInternal(t *testing.T) {
	assert.Equal(t, Response{Status: http.StatusInternalServerError, Error: "boom"}, Error("boom", 0))
	assert.Equal(t, Response{Status: StatusOK}, OK())
}
