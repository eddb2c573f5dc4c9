package pipeline

import (
	"context"
	"errors"
	"fmt"

	"resumeforge/internal/assembler"
	"resumeforge/internal/layouts"
	"resumeforge/internal/logging"
	"resumeforge/pkg/models"
)

// Sentinel errors for the two failure classes the HTTP layer has to
// tell apart. Wrapped causes stay inspectable through errors.Is.
var (
	ErrGeneration = errors.New("content generation failed")
	ErrRender     = errors.New("document rendering failed")
)

// FragmentSource produces the fragment map for a resume input.
type FragmentSource interface {
	Fragments(ctx context.Context, input *models.ResumeInput) (models.FragmentMap, error)
}

// PDFRenderer turns assembled HTML into PDF bytes.
type PDFRenderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}

// Pipeline runs the resume flow: generate fragments, resolve the
// category layout, assemble, and optionally render to PDF.
type Pipeline struct {
	generator FragmentSource
	renderer  PDFRenderer
	logger    logging.Logger
}

// New creates a pipeline. The renderer may be nil for HTML-only use
// (the render CLI wires its own).
func New(generator FragmentSource, renderer PDFRenderer) *Pipeline {
	return &Pipeline{
		generator: generator,
		renderer:  renderer,
		logger:    logging.GetGlobalLogger(),
	}
}

// GenerateHTML produces the final resume HTML for the input's category.
func (p *Pipeline) GenerateHTML(ctx context.Context, input *models.ResumeInput) (string, error) {
	category := layouts.ParseCategory(input.Category)

	fragments, err := p.generator.Fragments(ctx, input)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	layout := layouts.ResolveLayout(category)
	html := assembler.Assemble(layout, fragments)

	p.logger.Debug("Resume HTML assembled", map[string]interface{}{
		"category": string(category),
		"bytes":    len(html),
	})

	return html, nil
}

// GeneratePDF produces the resume HTML and renders it to PDF bytes.
func (p *Pipeline) GeneratePDF(ctx context.Context, input *models.ResumeInput) ([]byte, error) {
	html, err := p.GenerateHTML(ctx, input)
	if err != nil {
		return nil, err
	}

	if p.renderer == nil {
		return nil, fmt.Errorf("%w: no renderer configured", ErrRender)
	}

	pdfBytes, err := p.renderer.RenderPDF(ctx, html)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	return pdfBytes, nil
}
