package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Constructors(t *testing.T) {
	notFound := NotFound("missing")
	assert.Equal(t, http.StatusNotFound, notFound.Code)
	assert.Equal(t, ErrNotFound.Error(), notFound.Error())
	assert.True(t, stderrors.Is(notFound, ErrNotFound))

	badReq := BadRequest("nope")
	assert.Equal(t, http.StatusBadRequest, badReq.Code)
	assert.True(t, stderrors.Is(badReq, ErrInvalidInput))

	unauth := Unauthorized("who are you")
	assert.Equal(t, http.StatusUnauthorized, unauth.Code)

	internal := InternalError(stderrors.New("db down"))
	assert.Equal(t, http.StatusInternalServerError, internal.Code)
	assert.Equal(t, "internal server error", internal.Message)
	assert.Equal(t, "db down", internal.Error())
}

func TestAppError_MessageFallback(t *testing.T) {
	e := NewAppError(http.StatusBadRequest, "just a message", nil)
	assert.Equal(t, "just a message", e.Error())
}
