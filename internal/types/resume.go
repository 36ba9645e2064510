// Package types provides the domain model for the resume builder: the
// entity collections, the personal record, and the section registry entries
// that together form one resume document.
package types

// Personal holds the contact header of the resume. All fields are optional
// free text; no validation happens at this layer.
type Personal struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	// Photo is an encoded image (typically a data URI). IncludePhoto is a
	// user toggle independent of Photo being set; renderers must check both.
	Photo        string `json:"photo,omitempty"`
	IncludePhoto bool   `json:"includePhoto"`
}

// Experience is one work history entry. Description holds ordered bullet
// strings. When Current is true, EndDate is ignored and rendered as
// "Present".
type Experience struct {
	ID          string   `json:"id"`
	Company     string   `json:"company"`
	Position    string   `json:"position"`
	Location    string   `json:"location"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Current     bool     `json:"current"`
	Description []string `json:"description"`
}

// Education is one education entry.
type Education struct {
	ID          string   `json:"id"`
	Institution string   `json:"institution"`
	Degree      string   `json:"degree"`
	Field       string   `json:"field"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	GPA         string   `json:"gpa,omitempty"`
	Description []string `json:"description"`
}

// SkillCategory groups an ordered list of skill strings under a label.
// Duplicate items are permitted.
type SkillCategory struct {
	ID       string   `json:"id"`
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// Project is one project entry.
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link,omitempty"`
	GitHub       string   `json:"github,omitempty"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
}

// ResumeData is the entity-store state: one personal record, one summary
// string, and the four ordered entity collections. Collection order is
// insertion order and is significant for rendering.
type ResumeData struct {
	Personal   Personal        `json:"personal"`
	Summary    string          `json:"summary"`
	Experience []Experience    `json:"experience"`
	Education  []Education     `json:"education"`
	Skills     []SkillCategory `json:"skills"`
	Projects   []Project       `json:"projects"`
}

// DefaultResumeData returns the empty document used on first load and as
// the fallback when stored state cannot be read.
func DefaultResumeData() ResumeData {
	return ResumeData{
		Experience: []Experience{},
		Education:  []Education{},
		Skills:     []SkillCategory{},
		Projects:   []Project{},
	}
}

// Clone returns a deep copy. Snapshot isolation depends on this: a saved
// snapshot must not alias the live document's slices.
func (d ResumeData) Clone() ResumeData {
	out := d
	out.Experience = make([]Experience, len(d.Experience))
	for i, e := range d.Experience {
		e.Description = cloneStrings(e.Description)
		out.Experience[i] = e
	}
	out.Education = make([]Education, len(d.Education))
	for i, e := range d.Education {
		e.Description = cloneStrings(e.Description)
		out.Education[i] = e
	}
	out.Skills = make([]SkillCategory, len(d.Skills))
	for i, s := range d.Skills {
		s.Items = cloneStrings(s.Items)
		out.Skills[i] = s
	}
	out.Projects = make([]Project, len(d.Projects))
	for i, p := range d.Projects {
		p.Technologies = cloneStrings(p.Technologies)
		out.Projects[i] = p
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
