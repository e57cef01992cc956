package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, NotFound("report", nil).StatusCode())
	assert.Equal(t, http.StatusBadRequest, BadRequest("bad", nil).StatusCode())
	assert.Equal(t, http.StatusServiceUnavailable, Unavailable("down", nil).StatusCode())
	assert.Equal(t, http.StatusInternalServerError, Internal(nil).StatusCode())
}

func TestErrorWrapping(t *testing.T) {
	cause := errors.New("row missing")
	err := NotFound("report", cause)

	assert.Equal(t, "report not found: row missing", err.Error())
	assert.ErrorIs(t, err, cause)

	var appErr *AppError
	assert.ErrorAs(t, error(err), &appErr)
	assert.Equal(t, ErrNotFound, appErr.Code)
}

func TestErrorWithoutCause(t *testing.T) {
	err := BadRequest("form data is required", nil)
	assert.Equal(t, "form data is required", err.Error())
	assert.Nil(t, err.Unwrap())
}
