package layouts

// Category selects which resume layout the fragments are placed into.
type Category string

const (
	CategoryDeveloper Category = "developer"
	CategoryTeacher   Category = "teacher"
	CategoryDoctor    Category = "doctor"
	CategoryBanker    Category = "banker"
	CategoryDesigner  Category = "designer"
)

// ParseCategory maps a raw category string to a known Category. Unknown
// or empty values resolve to developer, which is the default layout.
func ParseCategory(raw string) Category {
	switch Category(raw) {
	case CategoryTeacher:
		return CategoryTeacher
	case CategoryDoctor:
		return CategoryDoctor
	case CategoryBanker:
		return CategoryBanker
	case CategoryDesigner:
		return CategoryDesigner
	default:
		return CategoryDeveloper
	}
}

// Layout is a resume skeleton with {placeholder} slots for fragments.
type Layout struct {
	Category     Category
	Placeholders []string
	Template     string
}

// ResolveLayout returns the layout for a category. It never fails:
// ParseCategory already collapses unknown categories onto developer.
func ResolveLayout(category Category) Layout {
	switch category {
	case CategoryTeacher:
		return Layout{
			Category: CategoryTeacher,
			Placeholders: []string{
				"name", "contact_info", "summary", "experience_block",
				"skills_text", "education_block", "certifications_block",
			},
			Template: teacherTemplate,
		}
	case CategoryDoctor:
		return Layout{
			Category: CategoryDoctor,
			Placeholders: []string{
				"name", "contact_info", "summary", "experience_block",
				"skills_text", "education_block", "licenses_block",
			},
			Template: doctorTemplate,
		}
	case CategoryBanker:
		return Layout{
			Category: CategoryBanker,
			Placeholders: []string{
				"name", "contact_info", "summary", "experience_block",
				"skills_text", "education_block", "achievements_block",
			},
			Template: bankerTemplate,
		}
	case CategoryDesigner:
		return Layout{
			Category: CategoryDesigner,
			Placeholders: []string{
				"name", "contact_info", "summary", "experience_block",
				"projects_block", "skills_text", "education_block", "portfolio_link",
			},
			Template: designerTemplate,
		}
	default:
		return Layout{
			Category: CategoryDeveloper,
			Placeholders: []string{
				"name", "contact_info", "summary", "experience_block",
				"projects_block", "skills_text", "education_block",
			},
			Template: developerTemplate,
		}
	}
}
