package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Typed field updates. The form shell patches one field at a time; the
// field name is parsed once at the boundary so a bad name is an error
// instead of a silent no-op.

type PersonalField string

const (
	PersonalName           PersonalField = "name"
	PersonalEmail          PersonalField = "email"
	PersonalPhone          PersonalField = "phone"
	PersonalLocation       PersonalField = "location"
	PersonalLinkedIn       PersonalField = "linkedin"
	PersonalWebsite        PersonalField = "website"
	PersonalProfilePicture PersonalField = "profilePicture"
)

func ParsePersonalField(s string) (PersonalField, error) {
	switch f := PersonalField(s); f {
	case PersonalName, PersonalEmail, PersonalPhone, PersonalLocation,
		PersonalLinkedIn, PersonalWebsite, PersonalProfilePicture:
		return f, nil
	}
	return "", fmt.Errorf("unknown personal info field %q", s)
}

type ExperienceField string

const (
	ExperienceJobTitle    ExperienceField = "jobTitle"
	ExperienceCompany     ExperienceField = "company"
	ExperienceLocation    ExperienceField = "location"
	ExperienceStartDate   ExperienceField = "startDate"
	ExperienceEndDate     ExperienceField = "endDate"
	ExperienceCurrent     ExperienceField = "current"
	ExperienceDescription ExperienceField = "description"
)

func ParseExperienceField(s string) (ExperienceField, error) {
	switch f := ExperienceField(s); f {
	case ExperienceJobTitle, ExperienceCompany, ExperienceLocation,
		ExperienceStartDate, ExperienceEndDate, ExperienceCurrent, ExperienceDescription:
		return f, nil
	}
	return "", fmt.Errorf("unknown experience field %q", s)
}

type EducationField string

const (
	EducationDegree         EducationField = "degree"
	EducationInstitution    EducationField = "institution"
	EducationLocation       EducationField = "location"
	EducationGraduationDate EducationField = "graduationDate"
	EducationGPA            EducationField = "gpa"
	EducationDescription    EducationField = "description"
)

func ParseEducationField(s string) (EducationField, error) {
	switch f := EducationField(s); f {
	case EducationDegree, EducationInstitution, EducationLocation,
		EducationGraduationDate, EducationGPA, EducationDescription:
		return f, nil
	}
	return "", fmt.Errorf("unknown education field %q", s)
}

// PersonalUpdate patches a single personal info field.
type PersonalUpdate struct {
	Field PersonalField
	Value string
}

// ExperienceUpdate patches a single field of one experience entry.
// Current carries the flag value when Field is ExperienceCurrent; the
// stored end date is intentionally left untouched when the flag flips.
type ExperienceUpdate struct {
	ID      string
	Field   ExperienceField
	Value   string
	Current bool
}

// EducationUpdate patches a single field of one education entry.
type EducationUpdate struct {
	ID    string
	Field EducationField
	Value string
}

func (r Resume) ApplyPersonal(u PersonalUpdate) Resume {
	p := r.PersonalInfo
	switch u.Field {
	case PersonalName:
		p.Name = u.Value
	case PersonalEmail:
		p.Email = u.Value
	case PersonalPhone:
		p.Phone = u.Value
	case PersonalLocation:
		p.Location = u.Value
	case PersonalLinkedIn:
		p.LinkedIn = u.Value
	case PersonalWebsite:
		p.Website = u.Value
	case PersonalProfilePicture:
		p.ProfilePicture = u.Value
	}
	r.PersonalInfo = p
	return r
}

func (r Resume) ApplyExperience(u ExperienceUpdate) (Resume, error) {
	idx := -1
	for i := range r.Experience {
		if r.Experience[i].ID == u.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return r, fmt.Errorf("experience entry %q not found", u.ID)
	}
	entries := cloneExperience(r.Experience)
	e := entries[idx]
	switch u.Field {
	case ExperienceJobTitle:
		e.JobTitle = u.Value
	case ExperienceCompany:
		e.Company = u.Value
	case ExperienceLocation:
		e.Location = u.Value
	case ExperienceStartDate:
		e.StartDate = u.Value
	case ExperienceEndDate:
		e.EndDate = u.Value
	case ExperienceCurrent:
		e.Current = u.Current
	case ExperienceDescription:
		e.Description = u.Value
	}
	entries[idx] = e
	r.Experience = entries
	return r, nil
}

func (r Resume) ApplyEducation(u EducationUpdate) (Resume, error) {
	idx := -1
	for i := range r.Education {
		if r.Education[i].ID == u.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return r, fmt.Errorf("education entry %q not found", u.ID)
	}
	entries := cloneEducation(r.Education)
	e := entries[idx]
	switch u.Field {
	case EducationDegree:
		e.Degree = u.Value
	case EducationInstitution:
		e.Institution = u.Value
	case EducationLocation:
		e.Location = u.Value
	case EducationGraduationDate:
		e.GraduationDate = u.Value
	case EducationGPA:
		e.GPA = u.Value
	case EducationDescription:
		e.Description = u.Value
	}
	entries[idx] = e
	r.Education = entries
	return r, nil
}

// AddExperience appends a blank entry with a generated identifier and
// returns the updated record plus the new entry.
func (r Resume) AddExperience() (Resume, Experience) {
	e := Experience{ID: uuid.New().String(), Achievements: []string{}}
	entries := cloneExperience(r.Experience)
	r.Experience = append(entries, e)
	return r, e
}

func (r Resume) RemoveExperience(id string) Resume {
	out := make([]Experience, 0, len(r.Experience))
	for _, e := range r.Experience {
		if e.ID != id {
			out = append(out, e)
		}
	}
	r.Experience = out
	return r
}

func (r Resume) AddExperienceAchievement(id, text string) (Resume, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return r, nil
	}
	idx := -1
	for i := range r.Experience {
		if r.Experience[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return r, fmt.Errorf("experience entry %q not found", id)
	}
	entries := cloneExperience(r.Experience)
	entries[idx].Achievements = append(entries[idx].Achievements, text)
	r.Experience = entries
	return r, nil
}

func (r Resume) RemoveExperienceAchievement(id string, index int) (Resume, error) {
	idx := -1
	for i := range r.Experience {
		if r.Experience[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return r, fmt.Errorf("experience entry %q not found", id)
	}
	entries := cloneExperience(r.Experience)
	a := entries[idx].Achievements
	if index < 0 || index >= len(a) {
		return r, fmt.Errorf("achievement index %d out of range", index)
	}
	entries[idx].Achievements = append(a[:index:index], a[index+1:]...)
	r.Experience = entries
	return r, nil
}

func (r Resume) AddEducation() (Resume, Education) {
	e := Education{ID: uuid.New().String(), Achievements: []string{}}
	entries := cloneEducation(r.Education)
	r.Education = append(entries, e)
	return r, e
}

func (r Resume) RemoveEducation(id string) Resume {
	out := make([]Education, 0, len(r.Education))
	for _, e := range r.Education {
		if e.ID != id {
			out = append(out, e)
		}
	}
	r.Education = out
	return r
}

func (r Resume) AddEducationAchievement(id, text string) (Resume, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return r, nil
	}
	idx := -1
	for i := range r.Education {
		if r.Education[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return r, fmt.Errorf("education entry %q not found", id)
	}
	entries := cloneEducation(r.Education)
	entries[idx].Achievements = append(entries[idx].Achievements, text)
	r.Education = entries
	return r, nil
}

func (r Resume) RemoveEducationAchievement(id string, index int) (Resume, error) {
	idx := -1
	for i := range r.Education {
		if r.Education[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return r, fmt.Errorf("education entry %q not found", id)
	}
	entries := cloneEducation(r.Education)
	a := entries[idx].Achievements
	if index < 0 || index >= len(a) {
		return r, fmt.Errorf("achievement index %d out of range", index)
	}
	entries[idx].Achievements = append(a[:index:index], a[index+1:]...)
	r.Education = entries
	return r, nil
}

// AddSkills splits comma-separated input into individual skills and
// appends the ones not already present. Matching is case-sensitive and
// insertion order is preserved.
func (r Resume) AddSkills(input string) Resume {
	seen := make(map[string]bool, len(r.Skills))
	for _, s := range r.Skills {
		seen[s] = true
	}
	out := append([]string(nil), r.Skills...)
	for _, part := range strings.Split(input, ",") {
		s := strings.TrimSpace(part)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	r.Skills = out
	return r
}

func (r Resume) RemoveSkill(skill string) Resume {
	out := make([]string, 0, len(r.Skills))
	for _, s := range r.Skills {
		if s != skill {
			out = append(out, s)
		}
	}
	r.Skills = out
	return r
}

func (r Resume) WithSummary(s string) Resume {
	r.Summary = s
	return r
}

func (r Resume) WithTemplate(t Template) Resume {
	r.SelectedTemplate = ParseTemplate(string(t))
	return r
}

func (r Resume) WithTheme(t ThemeSettings) Resume {
	r.ThemeSettings = t
	return r
}

func cloneExperience(in []Experience) []Experience {
	out := make([]Experience, len(in))
	copy(out, in)
	for i := range out {
		out[i].Achievements = append([]string(nil), out[i].Achievements...)
	}
	return out
}

func cloneEducation(in []Education) []Education {
	out := make([]Education, len(in))
	copy(out, in)
	for i := range out {
		out[i].Achievements = append([]string(nil), out[i].Achievements...)
	}
	return out
}
