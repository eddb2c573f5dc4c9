package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"

	"resumeforge/internal/api/validation"
	"resumeforge/internal/config"
	"resumeforge/internal/generator"
	"resumeforge/internal/llm"
	"resumeforge/internal/logging"
	"resumeforge/internal/pipeline"
	"resumeforge/internal/renderer"
	"resumeforge/pkg/models"
)

// render-pdf reads resume input JSON from a file (or stdin) and writes
// the rendered PDF, without going through the HTTP server.
func main() {
	var (
		inputPath  = flag.String("input", "-", "resume input JSON file, - for stdin")
		outputPath = flag.String("output", "resume.pdf", "output PDF file")
		configPath = flag.String("config", "configs/config.yaml", "configuration file")
		htmlOnly   = flag.Bool("html", false, "emit assembled HTML instead of PDF")
	)
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.CloseLogging()

	input, err := readInput(*inputPath)
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	v := validator.New()
	validation.RegisterResumeValidators(v)
	if err := v.Struct(input); err != nil {
		log.Fatalf("Invalid resume input: %v", err)
	}

	llmManager := llm.NewManager(cfg)
	if err := llmManager.Start(); err != nil {
		log.Fatalf("Failed to start LLM manager: %v", err)
	}
	defer llmManager.Stop()

	generatorService := generator.NewService(llmManager, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if *htmlOnly {
		p := pipeline.New(generatorService, nil)
		html, err := p.GenerateHTML(ctx, input)
		if err != nil {
			log.Fatalf("Generation failed: %v", err)
		}
		if err := os.WriteFile(*outputPath, []byte(html), 0644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Wrote %s\n", *outputPath)
		return
	}

	pool := renderer.NewBrowserPool(cfg)
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()
		_ = pool.Shutdown(shutdownCtx)
	}()

	p := pipeline.New(generatorService, renderer.NewService(pool, cfg))

	pdfBytes, err := p.GeneratePDF(ctx, input)
	if err != nil {
		log.Fatalf("Rendering failed: %v", err)
	}

	if err := os.WriteFile(*outputPath, pdfBytes, 0644); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", *outputPath, len(pdfBytes))
}

func readInput(path string) (*models.ResumeInput, error) {
	var data []byte
	var err error

	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	var input models.ResumeInput
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("invalid resume JSON: %w", err)
	}
	return &input, nil
}
