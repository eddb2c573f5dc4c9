package generator

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"resumeforge/internal/config"
	"resumeforge/internal/logging"
	"resumeforge/pkg/models"
)

// Completer is the slice of the LLM manager the generator needs.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Service builds the HTML fragments that get substituted into a layout.
// Experience and project bullets come from the LLM; contact info,
// skills and education are assembled deterministically.
type Service struct {
	llm    Completer
	config *config.Config
	logger logging.Logger
}

// NewService creates a new fragment generation service
func NewService(llm Completer, cfg *config.Config) *Service {
	return &Service{
		llm:    llm,
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// PolishSummary rewrites the raw summary into a short professional one.
// A failed or empty completion is a hard error: the summary is the one
// fragment every layout leads with.
func (s *Service) PolishSummary(ctx context.Context, raw string) (string, error) {
	response, err := s.llm.Complete(ctx, summaryPrompt(raw))
	if err != nil {
		return "", fmt.Errorf("failed to polish summary: %w", err)
	}

	summary := strings.TrimSpace(response)
	if summary == "" {
		return "", fmt.Errorf("summary completion returned no text")
	}
	return summary, nil
}

// BuildExperienceBlock generates a bullet list per experience item and
// joins the blocks in input order. Items fan out concurrently; each
// result is slotted by index so ordering never depends on completion
// order.
func (s *Service) BuildExperienceBlock(ctx context.Context, items []models.ExperienceItem) (string, error) {
	if len(items) == 0 {
		return "", nil
	}

	blocks := make([]string, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Generator.MaxConcurrent)

	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			response, err := s.llm.Complete(gctx, experiencePrompt(item.Title, item.Company))
			if err != nil {
				return fmt.Errorf("failed to generate bullets for %q at %q: %w", item.Title, item.Company, err)
			}

			bullets := sanitizeBullets(response, s.config.Generator.BulletsPerItem)
			blocks[i] = fmt.Sprintf("<h3><em>%s | %s (%s)</em></h3><ul>%s</ul>",
				item.Company, item.Title, item.Duration, wrapListItems(bullets))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return "", err
	}
	return strings.Join(blocks, "\n"), nil
}

// BuildProjectsBlock generates an accomplishment list per project.
func (s *Service) BuildProjectsBlock(ctx context.Context, items []models.ProjectItem) (string, error) {
	if len(items) == 0 {
		return "", nil
	}

	blocks := make([]string, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Generator.MaxConcurrent)

	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			response, err := s.llm.Complete(gctx, projectPrompt(item.Title))
			if err != nil {
				return fmt.Errorf("failed to generate accomplishments for project %q: %w", item.Title, err)
			}

			bullets := sanitizeBullets(response, s.config.Generator.BulletsPerItem)
			title := fmt.Sprintf("<strong>%s</strong>", item.Title)
			if item.Link != "" {
				title += " | " + item.Link
			}
			blocks[i] = fmt.Sprintf("%s<ul>%s</ul>", title, wrapListItems(bullets))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return "", err
	}
	return strings.Join(blocks, "\n"), nil
}

// BuildEducationBlock is fully deterministic, no LLM involved.
func (s *Service) BuildEducationBlock(items []models.EducationItem) string {
	blocks := make([]string, 0, len(items))
	for _, e := range items {
		blocks = append(blocks, fmt.Sprintf("<h3><em>%s (%s)</em></h3><p>%s</p>", e.Degree, e.Year, e.Institution))
	}
	return strings.Join(blocks, "\n")
}

// BuildContactInfo renders the contact line: phone and a mailto link
// always, then whichever profile links are present, pipe separated.
func (s *Service) BuildContactInfo(input *models.ResumeInput) string {
	segments := []string{
		input.Phone,
		anchor("mailto:"+input.Email, input.Email),
	}
	if input.Linkedin != "" {
		segments = append(segments, anchor(input.Linkedin, "LinkedIn"))
	}
	if input.Github != "" {
		segments = append(segments, anchor(input.Github, "GitHub"))
	}
	if input.Devpost != "" {
		segments = append(segments, anchor(input.Devpost, "Devpost"))
	}
	return strings.Join(segments, " | ")
}

// Fragments builds the full fragment map for a resume. The three
// LLM-backed fragments run concurrently; the deterministic ones are
// filled inline.
func (s *Service) Fragments(ctx context.Context, input *models.ResumeInput) (models.FragmentMap, error) {
	fragments := models.FragmentMap{
		models.FragmentName:    input.Name,
		models.FragmentContact: s.BuildContactInfo(input),
		models.FragmentSkills:  strings.Join(input.Skills, ", "),
	}
	fragments[models.FragmentEducation] = s.BuildEducationBlock(input.Education)

	var summary, experience, projects string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary, err = s.PolishSummary(gctx, input.Summary)
		return err
	})
	g.Go(func() error {
		var err error
		experience, err = s.BuildExperienceBlock(gctx, input.Experiences)
		return err
	})
	g.Go(func() error {
		var err error
		projects, err = s.BuildProjectsBlock(gctx, input.Projects)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	fragments[models.FragmentSummary] = summary
	fragments[models.FragmentExperience] = experience
	fragments[models.FragmentProjects] = projects
	return fragments, nil
}

func wrapListItems(bullets []string) string {
	items := make([]string, 0, len(bullets))
	for _, b := range bullets {
		items = append(items, "<li>"+b+"</li>")
	}
	return strings.Join(items, "\n")
}

func anchor(href, label string) string {
	return fmt.Sprintf(`<a href="%s" style="color:#2563eb;text-decoration:none;">%s</a>`, href, label)
}
