package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/internal/config"
	"resumeforge/internal/pipeline"
	"resumeforge/pkg/models"
)

type stubGenerator struct {
	fragments models.FragmentMap
	err       error
}

func (s *stubGenerator) Fragments(ctx context.Context, input *models.ResumeInput) (models.FragmentMap, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.fragments, nil
}

type stubRenderer struct {
	pdf []byte
	err error
}

func (s *stubRenderer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.pdf, nil
}

func validResumeJSON() string {
	input := models.ResumeInput{
		Category: "developer",
		Name:     "Ada Lovelace",
		Phone:    "555-0100",
		Email:    "ada@example.com",
		Summary:  "analyst and metaphysician",
		Skills:   []string{"Go"},
	}
	data, _ := json.Marshal(input)
	return string(data)
}

func stubFragments() models.FragmentMap {
	return models.FragmentMap{
		models.FragmentName:    "Ada Lovelace",
		models.FragmentContact: "555-0100",
		models.FragmentSummary: "Polished summary.",
		models.FragmentSkills:  "Go",
	}
}

func doRequest(t *testing.T, handler echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler(c))
	return rec
}

func TestGenerateResumeHandler_Success(t *testing.T) {
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	p := pipeline.New(&stubGenerator{fragments: stubFragments()}, nil)
	rec := doRequest(t, GenerateResumeHandler(cfg, p), validResumeJSON())

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.HTML, "<h1"))
	assert.Contains(t, resp.HTML, "Ada Lovelace")
}

func TestGenerateResumeHandler_InvalidJSON(t *testing.T) {
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	p := pipeline.New(&stubGenerator{fragments: stubFragments()}, nil)
	rec := doRequest(t, GenerateResumeHandler(cfg, p), "{not json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_request", resp.Error)
}

func TestGenerateResumeHandler_ValidationFailure(t *testing.T) {
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"phone":"555","email":"a@example.com","summary":"s"}`},
		{"blank name", `{"name":"   ","phone":"555","email":"a@example.com","summary":"s"}`},
		{"bad email", `{"name":"Ada","phone":"555","email":"not-an-email","summary":"s"}`},
		{"missing summary", `{"name":"Ada","phone":"555","email":"a@example.com"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pipeline.New(&stubGenerator{fragments: stubFragments()}, nil)
			rec := doRequest(t, GenerateResumeHandler(cfg, p), tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "validation_failed", resp.Error)
			assert.Contains(t, resp.Message, "Validation failed")
		})
	}
}

func TestGenerateResumeHandler_GenerationFailure(t *testing.T) {
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	p := pipeline.New(&stubGenerator{err: fmt.Errorf("backend down")}, nil)
	rec := doRequest(t, GenerateResumeHandler(cfg, p), validResumeJSON())

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "generation_failed", resp.Error)
	assert.Contains(t, resp.Message, "Content generation failed")
	assert.NotEmpty(t, resp.RequestID)
}

func TestGenerateResumePDFHandler_Success(t *testing.T) {
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	p := pipeline.New(&stubGenerator{fragments: stubFragments()}, &stubRenderer{pdf: []byte("%PDF-1.7 fake")})
	rec := doRequest(t, GenerateResumePDFHandler(cfg, p), validResumeJSON())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "attachment; filename=resume.pdf", rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, []byte("%PDF-1.7 fake"), rec.Body.Bytes())
}

func TestGenerateResumePDFHandler_RenderFailure(t *testing.T) {
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	p := pipeline.New(&stubGenerator{fragments: stubFragments()}, &stubRenderer{err: fmt.Errorf("browser crashed")})
	rec := doRequest(t, GenerateResumePDFHandler(cfg, p), validResumeJSON())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "render_failed", resp.Error)
	assert.Contains(t, resp.Message, "Document rendering failed")
}

func TestGenerateResumePDFHandler_GenerationFailure(t *testing.T) {
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	p := pipeline.New(&stubGenerator{err: fmt.Errorf("backend down")}, &stubRenderer{pdf: []byte("x")})
	rec := doRequest(t, GenerateResumePDFHandler(cfg, p), validResumeJSON())

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
