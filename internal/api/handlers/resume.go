package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"resumeforge/internal/api/validation"
	"resumeforge/internal/config"
	"resumeforge/internal/logging"
	"resumeforge/internal/pipeline"
	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

var resumeValidator = validator.New()

func init() {
	validation.RegisterResumeValidators(resumeValidator)
}

// GenerateResumeHandler handles the POST /api/v1/resume/generate endpoint
func GenerateResumeHandler(cfg *config.Config, p *pipeline.Pipeline) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()

		c.Set("request_id", requestID)

		logger.Info("Processing resume generation request", map[string]interface{}{
			"request_id": requestID,
			"endpoint":   "/api/v1/resume/generate",
			"method":     "POST",
		})

		input, token, bindErr := bindResumeInput(c, requestID)
		if bindErr != nil {
			return customErrorJSON(c, requestID, token, bindErr)
		}

		html, err := p.GenerateHTML(c.Request().Context(), input)
		if err != nil {
			return resumeErrorResponse(c, requestID, err)
		}

		logger.Info("Resume HTML generated", map[string]interface{}{
			"request_id": requestID,
			"category":   input.Category,
			"bytes":      len(html),
		})

		return c.JSON(http.StatusOK, models.GenerateResponse{HTML: html})
	}
}

// GenerateResumePDFHandler handles the POST /api/v1/resume/generate-pdf endpoint
func GenerateResumePDFHandler(cfg *config.Config, p *pipeline.Pipeline) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := utils.GenerateRequestID()
		logger := logging.GetGlobalLogger()

		c.Set("request_id", requestID)

		logger.Info("Processing resume PDF request", map[string]interface{}{
			"request_id": requestID,
			"endpoint":   "/api/v1/resume/generate-pdf",
			"method":     "POST",
		})

		input, token, bindErr := bindResumeInput(c, requestID)
		if bindErr != nil {
			return customErrorJSON(c, requestID, token, bindErr)
		}

		pdfBytes, err := p.GeneratePDF(c.Request().Context(), input)
		if err != nil {
			return resumeErrorResponse(c, requestID, err)
		}

		logger.Info("Resume PDF generated", map[string]interface{}{
			"request_id": requestID,
			"category":   input.Category,
			"bytes":      len(pdfBytes),
		})

		c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=resume.pdf")
		return c.Blob(http.StatusOK, "application/pdf", pdfBytes)
	}
}

// bindResumeInput parses and validates the request body. A non-nil
// CustomError means the request should be rejected with its code.
func bindResumeInput(c echo.Context, requestID string) (*models.ResumeInput, string, *utils.CustomError) {
	logger := logging.GetGlobalLogger()

	var input models.ResumeInput
	if err := c.Bind(&input); err != nil {
		logger.Error("Failed to parse request body", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})
		return nil, "invalid_request", utils.NewBadRequestError("Invalid request body: " + err.Error())
	}

	if err := resumeValidator.Struct(&input); err != nil {
		logger.Error("Request validation failed", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})
		return nil, "validation_failed", utils.NewValidationError(err.Error())
	}

	return &input, "", nil
}

// resumeErrorResponse maps pipeline failures onto the error taxonomy:
// generation problems are the upstream LLM's fault, rendering problems
// are ours. The CustomError carries the HTTP status for each class.
func resumeErrorResponse(c echo.Context, requestID string, err error) error {
	logger := logging.GetGlobalLogger()

	logger.Error("Resume pipeline failed", map[string]interface{}{
		"request_id": requestID,
		"error":      err.Error(),
	})

	var token string
	var customErr *utils.CustomError

	switch {
	case errors.Is(err, pipeline.ErrGeneration):
		token, customErr = "generation_failed", utils.NewGenerationError(err.Error())
	case errors.Is(err, pipeline.ErrRender):
		token, customErr = "render_failed", utils.NewRenderError(err.Error())
	default:
		token, customErr = "internal_error", utils.NewInternalServerError("Unexpected error: "+err.Error())
	}

	return customErrorJSON(c, requestID, token, customErr)
}

// customErrorJSON writes an ErrorResponse whose status code and message
// both come from the CustomError.
func customErrorJSON(c echo.Context, requestID, token string, customErr *utils.CustomError) error {
	return c.JSON(customErr.Code, models.ErrorResponse{
		Error:     token,
		Message:   customErr.Error(),
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}
