package assembler

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/internal/layouts"
	"resumeforge/pkg/models"
)

func developerFragments() models.FragmentMap {
	return models.FragmentMap{
		models.FragmentName:       "Ada Lovelace",
		models.FragmentContact:    `555-0100 | <a href="mailto:ada@example.com" style="color:#2563eb;text-decoration:none;">ada@example.com</a>`,
		models.FragmentSummary:    "Polished summary.",
		models.FragmentExperience: "<h3><em>Acme | Engineer (2019)</em></h3><ul><li>Did things.</li></ul>",
		models.FragmentProjects:   "<strong>Engine</strong><ul><li>Built it.</li></ul>",
		models.FragmentSkills:     "Go, SQL",
		models.FragmentEducation:  "<h3><em>BSc (2020)</em></h3><p>MIT</p>",
	}
}

func TestAssemble_DeveloperLayout(t *testing.T) {
	layout := layouts.ResolveLayout(layouts.CategoryDeveloper)
	html := Assemble(layout, developerFragments())

	assert.True(t, strings.HasPrefix(html, "<h1"))
	assert.True(t, strings.HasSuffix(html, "</p>"))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", strings.TrimSpace(doc.Find("h1 strong").Text()))
	assert.Contains(t, doc.Find("ul li").First().Text(), "Did things.")
	assert.Contains(t, html, "WORK EXPERIENCE")
	assert.Contains(t, html, "Go, SQL")
}

func TestAssemble_MissingFragmentsRenderEmpty(t *testing.T) {
	layout := layouts.ResolveLayout(layouts.CategoryTeacher)

	// No certifications_block fragment is ever produced; the slot must
	// still resolve instead of leaking the tag.
	html := Assemble(layout, developerFragments())

	assert.NotContains(t, html, "{certifications_block}")
	assert.NotContains(t, html, "{")
	assert.Contains(t, html, "CERTIFICATIONS")
}

func TestCleanup_TrimsSurroundingCommentary(t *testing.T) {
	raw := "Here is your resume:\n<h1>Ada</h1><p>done</p>\nLet me know if you need changes."
	assert.Equal(t, "<h1>Ada</h1><p>done</p>", cleanup(raw))
}

func TestCleanup_MissingMarkersPassThrough(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no h1", "<p>just a paragraph</p>"},
		{"no closing p", "<h1>title only</h1>"},
		{"plain text", "nothing html at all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, strings.TrimSpace(tt.raw), cleanup(tt.raw))
		})
	}
}

func TestCleanup_Idempotent(t *testing.T) {
	once := cleanup("noise <h1>Ada</h1><p>end</p> noise")
	assert.Equal(t, once, cleanup(once))
}

func TestAssemble_DesignerPortfolioSlot(t *testing.T) {
	layout := layouts.ResolveLayout(layouts.CategoryDesigner)
	fragments := developerFragments()
	fragments["portfolio_link"] = "https://ada.design"

	html := Assemble(layout, fragments)
	assert.Contains(t, html, "<p>https://ada.design</p>")
}
