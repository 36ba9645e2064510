package types

// SectionKind identifies what a section renders. Built-in kinds project the
// entity store; SectionCustom carries its own content.
type SectionKind string

// Section kinds.
const (
	SectionPersonal   SectionKind = "personal"
	SectionSummary    SectionKind = "summary"
	SectionExperience SectionKind = "experience"
	SectionEducation  SectionKind = "education"
	SectionSkills     SectionKind = "skills"
	SectionProjects   SectionKind = "projects"
	SectionCustom     SectionKind = "custom"
)

// Well-known ids for the built-in sections seeded into every new document.
const (
	SectionIDPersonal   = "personal"
	SectionIDSummary    = "summary"
	SectionIDExperience = "experience"
	SectionIDEducation  = "education"
	SectionIDSkills     = "skills"
	SectionIDProjects   = "projects"
	SectionIDPhoto      = "photo"
)

// ContentType tags the variant carried by a custom section.
type ContentType string

// Custom content variants.
const (
	ContentText  ContentType = "text"
	ContentList  ContentType = "list"
	ContentTable ContentType = "table"
)

// CustomContent is the tagged union of custom-section payloads. Exactly one
// variant's fields are meaningful, selected by Type:
//
//	ContentText:  Text
//	ContentList:  Items
//	ContentTable: Columns (ordered header names) and Rows (column -> value)
type CustomContent struct {
	Type    ContentType         `json:"type"`
	Text    string              `json:"content,omitempty"`
	Items   []string            `json:"items,omitempty"`
	Columns []string            `json:"columns,omitempty"`
	Rows    []map[string]string `json:"tableData,omitempty"`
}

// Clone returns a deep copy of the content.
func (c *CustomContent) Clone() *CustomContent {
	if c == nil {
		return nil
	}
	out := *c
	out.Items = cloneStrings(c.Items)
	out.Columns = cloneStrings(c.Columns)
	if c.Rows != nil {
		out.Rows = make([]map[string]string, len(c.Rows))
		for i, row := range c.Rows {
			m := make(map[string]string, len(row))
			for k, v := range row {
				m[k] = v
			}
			out.Rows[i] = m
		}
	}
	return &out
}

// Section is one orderable, toggleable region of the rendered document.
// Order defines the render sequence when sorted ascending; Content is nil
// for every kind except SectionCustom.
type Section struct {
	ID      string         `json:"id"`
	Kind    SectionKind    `json:"type"`
	Title   string         `json:"title"`
	Content *CustomContent `json:"content"`
	Order   int            `json:"order"`
	Visible bool           `json:"visible"`
}

// Clone returns a deep copy of the section.
func (s Section) Clone() Section {
	out := s
	out.Content = s.Content.Clone()
	return out
}

// CloneSections deep-copies a section list.
func CloneSections(sections []Section) []Section {
	out := make([]Section, len(sections))
	for i, s := range sections {
		out[i] = s.Clone()
	}
	return out
}

// DefaultSections returns the section registry seeded into a new document.
// The photo section starts hidden.
func DefaultSections() []Section {
	return []Section{
		{ID: SectionIDPersonal, Kind: SectionPersonal, Title: "Personal Information", Order: 0, Visible: true},
		{ID: SectionIDSummary, Kind: SectionSummary, Title: "Professional Summary", Order: 1, Visible: true},
		{ID: SectionIDExperience, Kind: SectionExperience, Title: "Work Experience", Order: 2, Visible: true},
		{ID: SectionIDEducation, Kind: SectionEducation, Title: "Education", Order: 3, Visible: true},
		{ID: SectionIDSkills, Kind: SectionSkills, Title: "Skills", Order: 4, Visible: true},
		{ID: SectionIDProjects, Kind: SectionProjects, Title: "Projects", Order: 5, Visible: true},
		{ID: SectionIDPhoto, Kind: SectionPersonal, Title: "Photo", Order: 6, Visible: false},
	}
}
