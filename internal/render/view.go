package render

import (
	"html/template"
	"regexp"
	"strings"
	"time"

	"resume-builder/internal/domain"
)

// view is the fully resolved data handed to the templates: formatted
// dates, resolved palette, safe image source. Templates do no logic
// beyond conditionals and ranges.
type view struct {
	Name     string
	Email    string
	Phone    string
	Location string
	LinkedIn string
	Website  string
	ImageSrc template.URL

	Summary    string
	Experience []experienceView
	Education  []educationView
	Skills     []string
	SkillsLine string

	Primary string
	Accent  string
	Stars   bool
}

type experienceView struct {
	JobTitle     string
	Company      string
	Location     string
	DateRange    string
	Description  string
	Achievements []string
	Last         bool
}

type educationView struct {
	Degree       string
	Institution  string
	Location     string
	Date         string
	GPA          string
	Description  string
	Achievements []string
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type palette struct{ primary, accent string }

var defaultPalettes = map[domain.Template]palette{
	domain.TemplateModern:   {"#2563eb", "#3b82f6"},
	domain.TemplateClassic:  {"#374151", "#6b7280"},
	domain.TemplateCreative: {"#1e40af", "#3b82f6"},
}

// The creative variant switches on its night-sky star motif for these
// two reserved primary colors.
const (
	starsPrimaryNavy     = "#0f172a"
	starsPrimaryMidnight = "#1e3a8a"
)

func resolvePalette(tpl domain.Template, theme domain.ThemeSettings) (string, string) {
	def := defaultPalettes[tpl]
	primary, accent := def.primary, def.accent
	if hexColor.MatchString(theme.PrimaryColor) {
		primary = theme.PrimaryColor
	}
	if hexColor.MatchString(theme.AccentColor) {
		accent = theme.AccentColor
	}
	return primary, accent
}

// formatDate renders "Jan 2006" from the month-picker value format.
// Blank or unparseable input renders as an empty string, never an error.
func formatDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range []string{"2006-01", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("Jan 2006")
		}
	}
	return ""
}

func dateRange(e domain.Experience) string {
	end := formatDate(e.EndDate)
	if e.Current {
		end = "Present"
	}
	return formatDate(e.StartDate) + " - " + end
}

// safeImageSrc admits embedded image data and absolute http(s) URLs.
// Anything else is dropped so html/template never sees an untyped
// scheme it would neutralize (or worse, one we should not trust).
func safeImageSrc(s string) template.URL {
	for _, prefix := range []string{"data:image/", "http://", "https://"} {
		if strings.HasPrefix(s, prefix) {
			return template.URL(s)
		}
	}
	return ""
}

func buildView(rec domain.Resume, tpl domain.Template) view {
	primary, accent := resolvePalette(tpl, rec.ThemeSettings)

	name := rec.PersonalInfo.Name
	if name == "" {
		name = "Your Name"
	}

	v := view{
		Name:       name,
		Email:      rec.PersonalInfo.Email,
		Phone:      rec.PersonalInfo.Phone,
		Location:   rec.PersonalInfo.Location,
		LinkedIn:   rec.PersonalInfo.LinkedIn,
		Website:    rec.PersonalInfo.Website,
		ImageSrc:   safeImageSrc(rec.PersonalInfo.ProfilePicture),
		Summary:    rec.Summary,
		Skills:     rec.Skills,
		SkillsLine: strings.Join(rec.Skills, " • "),
		Primary:    primary,
		Accent:     accent,
		Stars:      primary == starsPrimaryNavy || primary == starsPrimaryMidnight,
	}

	for i, e := range rec.Experience {
		v.Experience = append(v.Experience, experienceView{
			JobTitle:     e.JobTitle,
			Company:      e.Company,
			Location:     e.Location,
			DateRange:    dateRange(e),
			Description:  e.Description,
			Achievements: e.Achievements,
			Last:         i == len(rec.Experience)-1,
		})
	}
	for _, e := range rec.Education {
		v.Education = append(v.Education, educationView{
			Degree:       e.Degree,
			Institution:  e.Institution,
			Location:     e.Location,
			Date:         formatDate(e.GraduationDate),
			GPA:          e.GPA,
			Description:  e.Description,
			Achievements: e.Achievements,
		})
	}
	return v
}
