// Package rendering projects the resume document into printable HTML under
// one of three interchangeable templates. Rendering is pure: identical
// inputs produce identical output, which the export pipeline and the
// snapshot tests depend on.
package rendering

import (
	"embed"
	"fmt"
	"html/template"
	"sort"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Template selects one of the three visual variants. All variants render
// the same content; only presentation differs.
type Template string

// Available templates.
const (
	TemplateModern     Template = "modern"
	TemplateMinimalist Template = "minimalist"
	TemplateATS        Template = "ats"
)

// DocumentAnchorID is the id of the root element wrapping the rendered
// resume. The export pipeline locates the document through it.
const DocumentAnchorID = "resume-document"

//go:embed templates/*.html.tmpl
var templateFiles embed.FS

var templates = template.Must(template.New("resume").Funcs(template.FuncMap{
	"join": func(items []string, sep string) string { return strings.Join(items, sep) },
}).ParseFS(templateFiles, "templates/*.html.tmpl"))

// ParseTemplate returns the Template named by name, defaulting to modern
// for an empty name.
func ParseTemplate(name string) (Template, error) {
	switch Template(name) {
	case TemplateModern, TemplateMinimalist, TemplateATS:
		return Template(name), nil
	case "":
		return TemplateModern, nil
	default:
		return "", fmt.Errorf("unknown template %q (expected modern, minimalist, or ats)", name)
	}
}

// DisplayName returns the capitalized template name used in filenames.
func (t Template) DisplayName() string {
	switch t {
	case TemplateATS:
		return "Ats"
	case TemplateMinimalist:
		return "Minimalist"
	default:
		return "Modern"
	}
}

// documentView is the data handed to the HTML templates.
type documentView struct {
	AnchorID  string
	Personal  types.Personal
	ShowPhoto bool
	// PhotoSrc is typed template.URL because photos are stored as data
	// URIs, which the contextual escaper would otherwise reject.
	PhotoSrc template.URL
	Sections []sectionView
}

// sectionView carries one renderable section. Exactly the fields for its
// Kind are populated; the templates dispatch on Kind.
type sectionView struct {
	Kind       types.SectionKind
	Title      string
	Summary    string
	Experience []experienceView
	Education  []educationView
	Skills     []types.SkillCategory
	Projects   []projectView
	Custom     *types.CustomContent
}

type experienceView struct {
	types.Experience
	DateRange string
}

type educationView struct {
	types.Education
	DateRange string
}

type projectView struct {
	types.Project
	DateRange string
}

// Render projects (data, sections) into a standalone HTML document using
// the given template. Sections render in ascending order; invisible
// sections and built-in sections with nothing to show are skipped
// entirely.
func Render(data types.ResumeData, sections []types.Section, tmpl Template) (string, error) {
	view := buildDocumentView(data, sections)

	var out strings.Builder
	if err := templates.ExecuteTemplate(&out, string(tmpl)+".html.tmpl", view); err != nil {
		return "", &TemplateError{Message: fmt.Sprintf("failed to execute template %s", tmpl), Cause: err}
	}
	return out.String(), nil
}

func buildDocumentView(data types.ResumeData, sections []types.Section) documentView {
	ordered := types.CloneSections(sections)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Order < ordered[j].Order })

	view := documentView{
		AnchorID: DocumentAnchorID,
		Personal: data.Personal,
		// Both gates must hold: the toggle can be on with no photo set, and
		// a stored photo can be toggled off.
		ShowPhoto: data.Personal.IncludePhoto && data.Personal.Photo != "",
	}
	if view.ShowPhoto {
		view.PhotoSrc = template.URL(data.Personal.Photo)
	}

	for _, sec := range ordered {
		if !sec.Visible {
			continue
		}
		sv, ok := buildSectionView(data, sec)
		if ok {
			view.Sections = append(view.Sections, sv)
		}
	}
	return view
}

// buildSectionView returns the view for one section, or ok=false when the
// section renders nothing (empty backing collection, blank summary, the
// personal header kinds, or a custom section with no content).
func buildSectionView(data types.ResumeData, sec types.Section) (sectionView, bool) {
	sv := sectionView{Kind: sec.Kind, Title: sec.Title}

	switch sec.Kind {
	case types.SectionPersonal:
		// The contact header and photo render outside the section flow.
		return sectionView{}, false

	case types.SectionSummary:
		if strings.TrimSpace(data.Summary) == "" {
			return sectionView{}, false
		}
		sv.Summary = data.Summary

	case types.SectionExperience:
		if len(data.Experience) == 0 {
			return sectionView{}, false
		}
		sv.Experience = make([]experienceView, len(data.Experience))
		for i, exp := range data.Experience {
			sv.Experience[i] = experienceView{
				Experience: exp,
				DateRange:  formatDateRange(exp.StartDate, exp.EndDate, exp.Current),
			}
		}

	case types.SectionEducation:
		if len(data.Education) == 0 {
			return sectionView{}, false
		}
		sv.Education = make([]educationView, len(data.Education))
		for i, edu := range data.Education {
			sv.Education[i] = educationView{
				Education: edu,
				DateRange: formatDateRange(edu.StartDate, edu.EndDate, false),
			}
		}

	case types.SectionSkills:
		if len(data.Skills) == 0 {
			return sectionView{}, false
		}
		sv.Skills = data.Skills

	case types.SectionProjects:
		if len(data.Projects) == 0 {
			return sectionView{}, false
		}
		sv.Projects = make([]projectView, len(data.Projects))
		for i, proj := range data.Projects {
			sv.Projects[i] = projectView{
				Project:   proj,
				DateRange: formatDateRange(proj.StartDate, proj.EndDate, false),
			}
		}

	case types.SectionCustom:
		if sec.Content == nil {
			return sectionView{}, false
		}
		sv.Custom = sec.Content

	default:
		return sectionView{}, false
	}

	return sv, true
}

// formatDateRange renders "start – end" verbatim from the stored strings.
// When current is true the end is "Present" regardless of the stored end
// date. No date parsing happens here.
func formatDateRange(start, end string, current bool) string {
	if current {
		end = "Present"
	}
	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return start
	case start == "":
		return end
	default:
		return start + " – " + end
	}
}
