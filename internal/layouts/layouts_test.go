package layouts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		raw      string
		expected Category
	}{
		{"developer", CategoryDeveloper},
		{"teacher", CategoryTeacher},
		{"doctor", CategoryDoctor},
		{"banker", CategoryBanker},
		{"designer", CategoryDesigner},
		{"", CategoryDeveloper},
		{"astronaut", CategoryDeveloper},
		{"Developer", CategoryDeveloper}, // case sensitive, unknown falls back
	}

	for _, tt := range tests {
		t.Run("raw="+tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseCategory(tt.raw))
		})
	}
}

func TestResolveLayout_EveryPlaceholderAppearsInTemplate(t *testing.T) {
	for _, category := range []Category{
		CategoryDeveloper, CategoryTeacher, CategoryDoctor, CategoryBanker, CategoryDesigner,
	} {
		t.Run(string(category), func(t *testing.T) {
			layout := ResolveLayout(category)
			assert.Equal(t, category, layout.Category)

			for _, placeholder := range layout.Placeholders {
				assert.Contains(t, layout.Template, "{"+placeholder+"}",
					"placeholder %s must have a slot in the template", placeholder)
			}
		})
	}
}

func TestResolveLayout_SectionHeadings(t *testing.T) {
	tests := []struct {
		category Category
		heading  string
	}{
		{CategoryDeveloper, "WORK EXPERIENCE"},
		{CategoryTeacher, "TEACHING EXPERIENCE"},
		{CategoryTeacher, "CERTIFICATIONS"},
		{CategoryDoctor, "CLINICAL EXPERIENCE"},
		{CategoryDoctor, "LICENSES & CERTIFICATIONS"},
		{CategoryBanker, "FINANCIAL EXPERIENCE"},
		{CategoryBanker, "ACHIEVEMENTS"},
		{CategoryDesigner, "DESIGN EXPERIENCE"},
		{CategoryDesigner, "PORTFOLIO"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category)+"/"+tt.heading, func(t *testing.T) {
			layout := ResolveLayout(tt.category)
			assert.Contains(t, layout.Template, tt.heading)
		})
	}
}

func TestResolveLayout_UnknownCategoryGetsDeveloperLayout(t *testing.T) {
	fallback := ResolveLayout(ParseCategory("barista"))
	developer := ResolveLayout(CategoryDeveloper)

	assert.Equal(t, developer.Template, fallback.Template)
	assert.Equal(t, developer.Placeholders, fallback.Placeholders)
}

func TestTeacherLayoutHasNoProjectsSlot(t *testing.T) {
	layout := ResolveLayout(CategoryTeacher)
	assert.False(t, strings.Contains(layout.Template, "{projects_block}"))
	assert.NotContains(t, layout.Placeholders, "projects_block")
}
