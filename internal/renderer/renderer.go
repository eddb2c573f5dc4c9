package renderer

import (
	"context"
	"fmt"
	"io"

	"github.com/go-rod/rod/lib/proto"

	"resumeforge/internal/config"
	"resumeforge/internal/logging"
)

// styleShell wraps resume markup in a full HTML document with the print
// stylesheet. The A4 page size and narrow margins are what the PDF is
// laid out against.
const styleShell = `
<html><head>
  <style>
    @page {
      size: A4;
      margin: 1cm;
    }
    body {
      font-family: Arial, sans-serif;
      line-height: 1.55;
    }
    h1 {
      font-size: 32px;
      text-align: center;
      margin-bottom: 4px;
    }
    p {
      margin: 6px 0;
    }
    h3 {
      font-size: 18px;
      margin-top: 18px;
    }
    ul {
      margin: 8px 0;
      padding-left: 20px;
    }
    li {
      margin-bottom: 4px;
    }
    a {
      color: #2563eb;
      text-decoration: none;
    }
  </style>
</head>
<body>%s</body></html>
`

// A4 paper in inches, with margins matching the 1cm CSS page margin.
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
	marginInches      = 0.39
)

// Service renders resume HTML into PDF bytes using a pooled headless
// browser.
type Service struct {
	pool   *BrowserPool
	config *config.Config
	logger logging.Logger
}

// NewService creates a renderer backed by the given browser pool
func NewService(pool *BrowserPool, cfg *config.Config) *Service {
	return &Service{
		pool:   pool,
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// RenderPDF wraps the markup in the print stylesheet, loads it into a
// pooled browser page and prints it to PDF.
func (s *Service) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	renderCtx, cancel := context.WithTimeout(ctx, s.config.Renderer.Timeout)
	defer cancel()

	instance, err := s.pool.Acquire(renderCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire browser: %w", err)
	}
	defer instance.Release()

	page := instance.Page.Context(renderCtx)

	if err := page.SetDocumentContent(fmt.Sprintf(styleShell, html)); err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("failed to wait for document load: %w", err)
	}

	paperWidth := float64(paperWidthInches)
	paperHeight := float64(paperHeightInches)
	margin := float64(marginInches)

	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground:   true,
		PreferCSSPageSize: true,
		PaperWidth:        &paperWidth,
		PaperHeight:       &paperHeight,
		MarginTop:         &margin,
		MarginBottom:      &margin,
		MarginLeft:        &margin,
		MarginRight:       &margin,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to print to PDF: %w", err)
	}

	pdfBytes, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF stream: %w", err)
	}

	s.logger.Debug("PDF rendered", map[string]interface{}{
		"bytes": len(pdfBytes),
	})

	return pdfBytes, nil
}

// IsHealthy reports whether the renderer can serve requests
func (s *Service) IsHealthy() bool {
	return s.pool != nil && s.pool.IsHealthy()
}
