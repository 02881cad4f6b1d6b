package errors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestWrap_KeepsCode(t *testing.T) {
	inner := NewAppError(ErrConflict, "Slug must be unique within your portfolio", nil)

	wrapped := Wrap(inner, "failed to update case study")

	assert.Equal(t, ErrConflict, CodeOf(wrapped))
	assert.True(t, Is(wrapped, inner))
}

func TestWrap_PlainErrorBecomesInternal(t *testing.T) {
	wrapped := Wrap(New("connection reset"), "failed to query store")

	assert.Equal(t, ErrInternal, CodeOf(wrapped))
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
}

func TestToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, ToHTTPStatus(ErrNotFound))
	assert.Equal(t, http.StatusConflict, ToHTTPStatus(ErrConflict))
	assert.Equal(t, http.StatusUnauthorized, ToHTTPStatus(ErrUnauthenticated))
	assert.Equal(t, http.StatusBadRequest, ToHTTPStatus(ErrInvalidArgument))
	assert.Equal(t, http.StatusInternalServerError, ToHTTPStatus("SOMETHING_ELSE"))
}

func TestToHTTPResponse_AppError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := ToHTTPResponse(c, NewAppError(ErrNotFound, "Portfolio not found", nil))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Portfolio not found","code":"NOT_FOUND"}`, rec.Body.String())
}

func TestToHTTPResponse_PlainError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := ToHTTPResponse(c, New("raw failure"))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// Internal details never leak into the response body.
	assert.NotContains(t, rec.Body.String(), "raw failure")
}
