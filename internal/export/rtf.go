package export

import (
	"fmt"
	"strings"

	"resume-builder/internal/domain"
)

// RTF re-serializes the record content in a legacy word-processor
// format. It intentionally carries none of the template styling: RTF
// does not represent the layouts robustly, so only the informational
// content travels.
func RTF(rec domain.Resume) string {
	var b strings.Builder
	b.WriteString(`{\rtf1\ansi\deff0 {\fonttbl{\f0 Helvetica;}}` + "\n")
	b.WriteString(`\f0\fs22` + "\n")

	name := rec.PersonalInfo.Name
	if name == "" {
		name = "Your Name"
	}
	b.WriteString(`{\fs48\b ` + rtfEscape(name) + `\b0}\par` + "\n")

	contact := contactLine(rec.PersonalInfo)
	if contact != "" {
		b.WriteString(rtfEscape(contact) + `\par` + "\n")
	}

	if rec.Summary != "" {
		b.WriteString(`\par{\fs28\b PROFESSIONAL SUMMARY\b0}\par` + "\n")
		b.WriteString(rtfEscape(rec.Summary) + `\par` + "\n")
	}

	if len(rec.Experience) > 0 {
		b.WriteString(`\par{\fs28\b PROFESSIONAL EXPERIENCE\b0}\par` + "\n")
		for _, e := range rec.Experience {
			title := e.JobTitle
			if e.Company != "" {
				title += " - " + e.Company
			}
			b.WriteString(`{\b ` + rtfEscape(title) + `\b0}\par` + "\n")
			if dates := experienceDates(e); dates != "" {
				b.WriteString(rtfEscape(dates) + `\par` + "\n")
			}
			if e.Description != "" {
				b.WriteString(rtfEscape(e.Description) + `\par` + "\n")
			}
			for _, a := range e.Achievements {
				b.WriteString(`{\bullet}  ` + rtfEscape(a) + `\par` + "\n")
			}
			b.WriteString(`\par` + "\n")
		}
	}

	if len(rec.Education) > 0 {
		b.WriteString(`\par{\fs28\b EDUCATION\b0}\par` + "\n")
		for _, e := range rec.Education {
			title := e.Degree
			if e.Institution != "" {
				title += " - " + e.Institution
			}
			b.WriteString(`{\b ` + rtfEscape(title) + `\b0}\par` + "\n")
			details := []string{}
			if e.GraduationDate != "" {
				details = append(details, e.GraduationDate)
			}
			if e.GPA != "" {
				details = append(details, "GPA: "+e.GPA)
			}
			if len(details) > 0 {
				b.WriteString(rtfEscape(strings.Join(details, " | ")) + `\par` + "\n")
			}
			if e.Description != "" {
				b.WriteString(rtfEscape(e.Description) + `\par` + "\n")
			}
			for _, a := range e.Achievements {
				b.WriteString(`{\bullet}  ` + rtfEscape(a) + `\par` + "\n")
			}
			b.WriteString(`\par` + "\n")
		}
	}

	if len(rec.Skills) > 0 {
		b.WriteString(`\par{\fs28\b SKILLS\b0}\par` + "\n")
		b.WriteString(rtfEscape(strings.Join(rec.Skills, ", ")) + `\par` + "\n")
	}

	b.WriteString("}\n")
	return b.String()
}

func contactLine(p domain.PersonalInfo) string {
	parts := []string{}
	for _, s := range []string{p.Email, p.Phone, p.Location, p.LinkedIn, p.Website} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " | ")
}

func experienceDates(e domain.Experience) string {
	end := e.EndDate
	if e.Current {
		end = "Present"
	}
	if e.StartDate == "" && end == "" {
		return ""
	}
	return e.StartDate + " - " + end
}

// rtfEscape neutralizes the RTF control characters and encodes
// non-ASCII runes as signed 16-bit unicode escapes.
func rtfEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == '{':
			b.WriteString(`\{`)
		case r == '}':
			b.WriteString(`\}`)
		case r == '\n':
			b.WriteString(`\par `)
		case r > 127:
			n := int32(r)
			if n > 32767 {
				n -= 65536
			}
			b.WriteString(fmt.Sprintf(`\u%d?`, n))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
