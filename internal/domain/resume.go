package domain

// Go models that match the persisted resume snapshot used for rendering
// and export. Every mutation helper returns a new Resume value; nothing
// edits nested structures in place.

type PersonalInfo struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Location       string `json:"location"`
	LinkedIn       string `json:"linkedin"`
	Website        string `json:"website"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

type Experience struct {
	ID           string   `json:"id"`
	JobTitle     string   `json:"jobTitle"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Current      bool     `json:"current"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

type Education struct {
	ID             string   `json:"id"`
	Degree         string   `json:"degree"`
	Institution    string   `json:"institution"`
	Location       string   `json:"location"`
	GraduationDate string   `json:"graduationDate"`
	GPA            string   `json:"gpa,omitempty"`
	Description    string   `json:"description,omitempty"`
	Achievements   []string `json:"achievements"`
}

type ThemeSettings struct {
	PrimaryColor    string `json:"primaryColor"`
	AccentColor     string `json:"accentColor"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
	IsDarkMode      bool   `json:"isDarkMode"`
}

// Template selects one of the three fixed layout variants.
type Template string

const (
	TemplateModern   Template = "modern"
	TemplateClassic  Template = "classic"
	TemplateCreative Template = "creative"
)

// ParseTemplate normalizes a template id. Unknown ids fall back to modern.
func ParseTemplate(s string) Template {
	switch Template(s) {
	case TemplateClassic:
		return TemplateClassic
	case TemplateCreative:
		return TemplateCreative
	default:
		return TemplateModern
	}
}

type Resume struct {
	PersonalInfo     PersonalInfo  `json:"personalInfo"`
	Summary          string        `json:"summary"`
	Experience       []Experience  `json:"experience"`
	Education        []Education   `json:"education"`
	Skills           []string      `json:"skills"`
	SelectedTemplate Template      `json:"selectedTemplate"`
	ThemeSettings    ThemeSettings `json:"themeSettings"`
}

// DefaultTheme returns the documented default color settings.
func DefaultTheme() ThemeSettings {
	return ThemeSettings{
		PrimaryColor:    "#2563eb",
		AccentColor:     "#3b82f6",
		BackgroundColor: "#ffffff",
		TextColor:       "#1f2937",
		IsDarkMode:      false,
	}
}

// NewResume returns the empty default record created on first load.
func NewResume() Resume {
	return Resume{
		Experience:       []Experience{},
		Education:        []Education{},
		Skills:           []string{},
		SelectedTemplate: TemplateModern,
		ThemeSettings:    DefaultTheme(),
	}
}
