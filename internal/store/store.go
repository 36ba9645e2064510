// Package store implements the authoritative state container for a resume
// document: the entity collections, the section registry, and the theme and
// template choices. All mutations are synchronous; subscribers are notified
// after every applied mutation. The store is not safe for concurrent use;
// callers drive it from a single event loop.
package store

import (
	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/types"
)

// Theme and template defaults.
const (
	DefaultTheme    = "light"
	DefaultTemplate = "modern"
)

// Document is the full persistable state of a store.
type Document struct {
	Data     types.ResumeData `json:"data"`
	Sections []types.Section  `json:"sections"`
	Theme    string           `json:"theme"`
	Template string           `json:"template"`
}

// DefaultDocument returns the empty document a fresh store starts from.
func DefaultDocument() Document {
	return Document{
		Data:     types.DefaultResumeData(),
		Sections: types.DefaultSections(),
		Theme:    DefaultTheme,
		Template: DefaultTemplate,
	}
}

// Clone deep-copies the document.
func (d Document) Clone() Document {
	return Document{
		Data:     d.Data.Clone(),
		Sections: types.CloneSections(d.Sections),
		Theme:    d.Theme,
		Template: d.Template,
	}
}

// Store owns one resume document. Construct with New or NewFromDocument and
// pass it explicitly to consumers; there is no package-level instance.
type Store struct {
	data      types.ResumeData
	sections  []types.Section
	theme     string
	template  string
	listeners []func()
}

// New returns a store holding the default empty document.
func New() *Store {
	return NewFromDocument(DefaultDocument())
}

// NewFromDocument returns a store holding a deep copy of doc.
func NewFromDocument(doc Document) *Store {
	doc = doc.Clone()
	return &Store{
		data:     doc.Data,
		sections: doc.Sections,
		theme:    doc.Theme,
		template: doc.Template,
	}
}

// Subscribe registers fn to run after every applied mutation. Subscribers
// are called synchronously in registration order.
func (s *Store) Subscribe(fn func()) {
	s.listeners = append(s.listeners, fn)
}

func (s *Store) notify() {
	for _, fn := range s.listeners {
		fn()
	}
}

// Document returns a deep copy of the full current state.
func (s *Store) Document() Document {
	return Document{
		Data:     s.data,
		Sections: s.sections,
		Theme:    s.theme,
		Template: s.template,
	}.Clone()
}

// Data returns a deep copy of the entity-store state.
func (s *Store) Data() types.ResumeData {
	return s.data.Clone()
}

// Sections returns a deep copy of the section registry in storage order.
func (s *Store) Sections() []types.Section {
	return types.CloneSections(s.sections)
}

// Theme returns the active theme.
func (s *Store) Theme() string { return s.theme }

// Template returns the active template name.
func (s *Store) Template() string { return s.template }

// ReplaceContent swaps in new entity data and sections wholesale, leaving
// theme and template untouched. Snapshot loads go through here.
func (s *Store) ReplaceContent(data types.ResumeData, sections []types.Section) {
	s.data = data.Clone()
	s.sections = types.CloneSections(sections)
	s.notify()
}

// SetTheme sets the active theme.
func (s *Store) SetTheme(theme string) {
	s.theme = theme
	s.notify()
}

// ToggleTheme flips between light and dark.
func (s *Store) ToggleTheme() {
	if s.theme == "dark" {
		s.theme = "light"
	} else {
		s.theme = "dark"
	}
	s.notify()
}

// SetTemplate sets the active template name.
func (s *Store) SetTemplate(template string) {
	s.template = template
	s.notify()
}

// UpdatePersonal merges the set fields of upd into the personal record.
func (s *Store) UpdatePersonal(upd PersonalUpdate) {
	upd.apply(&s.data.Personal)
	s.notify()
}

// UpdateSummary replaces the summary wholesale.
func (s *Store) UpdateSummary(summary string) {
	s.data.Summary = summary
	s.notify()
}

// newID returns a fresh collision-free entity id. Ids are never reused.
func newID() string {
	return uuid.NewString()
}

// AddExperience appends a new experience entry and returns its assigned id.
// Any id on the argument is ignored.
func (s *Store) AddExperience(exp types.Experience) string {
	exp.ID = newID()
	exp.Description = append([]string(nil), exp.Description...)
	s.data.Experience = append(s.data.Experience, exp)
	s.notify()
	return exp.ID
}

// UpdateExperience merges the set fields of upd into the entry with the
// given id. Returns ErrNotFound if no entry matches.
func (s *Store) UpdateExperience(id string, upd ExperienceUpdate) error {
	for i := range s.data.Experience {
		if s.data.Experience[i].ID == id {
			upd.apply(&s.data.Experience[i])
			s.notify()
			return nil
		}
	}
	return ErrNotFound
}

// DeleteExperience removes the entry with the given id. Deleting a missing
// id is a no-op.
func (s *Store) DeleteExperience(id string) {
	s.data.Experience = deleteByID(s.data.Experience, id, func(e types.Experience) string { return e.ID })
	s.notify()
}

// AddEducation appends a new education entry and returns its assigned id.
func (s *Store) AddEducation(edu types.Education) string {
	edu.ID = newID()
	edu.Description = append([]string(nil), edu.Description...)
	s.data.Education = append(s.data.Education, edu)
	s.notify()
	return edu.ID
}

// UpdateEducation merges the set fields of upd into the entry with the
// given id. Returns ErrNotFound if no entry matches.
func (s *Store) UpdateEducation(id string, upd EducationUpdate) error {
	for i := range s.data.Education {
		if s.data.Education[i].ID == id {
			upd.apply(&s.data.Education[i])
			s.notify()
			return nil
		}
	}
	return ErrNotFound
}

// DeleteEducation removes the entry with the given id; no-op when missing.
func (s *Store) DeleteEducation(id string) {
	s.data.Education = deleteByID(s.data.Education, id, func(e types.Education) string { return e.ID })
	s.notify()
}

// AddSkillCategory appends a new skill category and returns its assigned id.
func (s *Store) AddSkillCategory(cat types.SkillCategory) string {
	cat.ID = newID()
	cat.Items = append([]string(nil), cat.Items...)
	s.data.Skills = append(s.data.Skills, cat)
	s.notify()
	return cat.ID
}

// UpdateSkillCategory merges the set fields of upd into the category with
// the given id. Returns ErrNotFound if no category matches.
func (s *Store) UpdateSkillCategory(id string, upd SkillCategoryUpdate) error {
	for i := range s.data.Skills {
		if s.data.Skills[i].ID == id {
			upd.apply(&s.data.Skills[i])
			s.notify()
			return nil
		}
	}
	return ErrNotFound
}

// DeleteSkillCategory removes the category with the given id; no-op when
// missing.
func (s *Store) DeleteSkillCategory(id string) {
	s.data.Skills = deleteByID(s.data.Skills, id, func(c types.SkillCategory) string { return c.ID })
	s.notify()
}

// AddProject appends a new project and returns its assigned id.
func (s *Store) AddProject(proj types.Project) string {
	proj.ID = newID()
	proj.Technologies = append([]string(nil), proj.Technologies...)
	s.data.Projects = append(s.data.Projects, proj)
	s.notify()
	return proj.ID
}

// UpdateProject merges the set fields of upd into the project with the
// given id. Returns ErrNotFound if no project matches.
func (s *Store) UpdateProject(id string, upd ProjectUpdate) error {
	for i := range s.data.Projects {
		if s.data.Projects[i].ID == id {
			upd.apply(&s.data.Projects[i])
			s.notify()
			return nil
		}
	}
	return ErrNotFound
}

// DeleteProject removes the project with the given id; no-op when missing.
func (s *Store) DeleteProject(id string) {
	s.data.Projects = deleteByID(s.data.Projects, id, func(p types.Project) string { return p.ID })
	s.notify()
}

func deleteByID[T any](list []T, id string, idOf func(T) string) []T {
	out := list[:0]
	for _, item := range list {
		if idOf(item) != id {
			out = append(out, item)
		}
	}
	return out
}
