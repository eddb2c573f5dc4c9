package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/pkg/models"
)

func runValidation(t *testing.T, maxBodyBytes int64, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestValidation(maxBodyBytes)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec
}

func TestRequestValidation_SetsRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := runValidation(t, 1<<20, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRequestValidation_RejectsOversizedBody(t *testing.T) {
	body := strings.Repeat("x", 64)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	rec := runValidation(t, 16, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "request_too_large", resp.Error)
	assert.NotEmpty(t, resp.RequestID)
}

func TestRequestValidation_CapDoesNotApplyToGet(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.ContentLength = 1 << 30

	rec := runValidation(t, 16, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
