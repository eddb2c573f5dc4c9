package models

// ExperienceItem represents a single role in the work history
type ExperienceItem struct {
	Title    string `json:"title" validate:"required,nonblank"`
	Company  string `json:"company" validate:"required,nonblank"`
	Duration string `json:"duration" validate:"required,nonblank"`
}

// ProjectItem represents a personal or professional project
type ProjectItem struct {
	Title string `json:"title" validate:"required,nonblank"`
	Link  string `json:"link,omitempty"`
}

// EducationItem represents a single degree entry
type EducationItem struct {
	Degree      string `json:"degree" validate:"required,nonblank"`
	Institution string `json:"institution" validate:"required,nonblank"`
	Year        string `json:"year" validate:"required,nonblank"`
}

// ResumeInput is the complete inbound resume payload. Category selects the
// layout; values outside the known set fall back to the default layout and
// are never rejected here.
type ResumeInput struct {
	Category string `json:"category"`

	Name  string `json:"name" validate:"required,nonblank"`
	Phone string `json:"phone" validate:"required,nonblank"`
	Email string `json:"email" validate:"required,email"`

	Linkedin string `json:"linkedin,omitempty"`
	Github   string `json:"github,omitempty"`
	Devpost  string `json:"devpost,omitempty"`

	Summary     string           `json:"summary" validate:"required,nonblank"`
	Experiences []ExperienceItem `json:"experiences" validate:"dive"`
	Projects    []ProjectItem    `json:"projects" validate:"dive"`
	Skills      []string         `json:"skills"`
	Education   []EducationItem  `json:"education" validate:"dive"`
}

// FragmentMap maps layout placeholder names to pre-rendered HTML fragments.
// Every placeholder a layout declares resolves to some string before
// assembly; placeholders the generator did not produce default to "".
type FragmentMap map[string]string

// Base placeholder names every generation pass produces.
const (
	FragmentName       = "name"
	FragmentContact    = "contact_info"
	FragmentSummary    = "summary"
	FragmentExperience = "experience_block"
	FragmentProjects   = "projects_block"
	FragmentSkills     = "skills_text"
	FragmentEducation  = "education_block"
)
