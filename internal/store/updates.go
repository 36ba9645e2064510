package store

import "github.com/jonathan/resume-builder/internal/types"

// Partial-update carriers. A nil field means "leave unchanged"; a non-nil
// field replaces the target wholesale (including slice fields).

// PersonalUpdate is a partial update of the personal record.
type PersonalUpdate struct {
	Name         *string
	Email        *string
	Phone        *string
	Location     *string
	Website      *string
	LinkedIn     *string
	GitHub       *string
	Photo        *string
	IncludePhoto *bool
}

func (u PersonalUpdate) apply(p *types.Personal) {
	setString(&p.Name, u.Name)
	setString(&p.Email, u.Email)
	setString(&p.Phone, u.Phone)
	setString(&p.Location, u.Location)
	setString(&p.Website, u.Website)
	setString(&p.LinkedIn, u.LinkedIn)
	setString(&p.GitHub, u.GitHub)
	setString(&p.Photo, u.Photo)
	if u.IncludePhoto != nil {
		p.IncludePhoto = *u.IncludePhoto
	}
}

// ExperienceUpdate is a partial update of an experience entry.
type ExperienceUpdate struct {
	Company     *string
	Position    *string
	Location    *string
	StartDate   *string
	EndDate     *string
	Current     *bool
	Description *[]string
}

func (u ExperienceUpdate) apply(e *types.Experience) {
	setString(&e.Company, u.Company)
	setString(&e.Position, u.Position)
	setString(&e.Location, u.Location)
	setString(&e.StartDate, u.StartDate)
	setString(&e.EndDate, u.EndDate)
	if u.Current != nil {
		e.Current = *u.Current
	}
	setStrings(&e.Description, u.Description)
}

// EducationUpdate is a partial update of an education entry.
type EducationUpdate struct {
	Institution *string
	Degree      *string
	Field       *string
	StartDate   *string
	EndDate     *string
	GPA         *string
	Description *[]string
}

func (u EducationUpdate) apply(e *types.Education) {
	setString(&e.Institution, u.Institution)
	setString(&e.Degree, u.Degree)
	setString(&e.Field, u.Field)
	setString(&e.StartDate, u.StartDate)
	setString(&e.EndDate, u.EndDate)
	setString(&e.GPA, u.GPA)
	setStrings(&e.Description, u.Description)
}

// SkillCategoryUpdate is a partial update of a skill category.
type SkillCategoryUpdate struct {
	Category *string
	Items    *[]string
}

func (u SkillCategoryUpdate) apply(c *types.SkillCategory) {
	setString(&c.Category, u.Category)
	setStrings(&c.Items, u.Items)
}

// ProjectUpdate is a partial update of a project entry.
type ProjectUpdate struct {
	Name         *string
	Description  *string
	Technologies *[]string
	Link         *string
	GitHub       *string
	StartDate    *string
	EndDate      *string
}

func (u ProjectUpdate) apply(p *types.Project) {
	setString(&p.Name, u.Name)
	setString(&p.Description, u.Description)
	setStrings(&p.Technologies, u.Technologies)
	setString(&p.Link, u.Link)
	setString(&p.GitHub, u.GitHub)
	setString(&p.StartDate, u.StartDate)
	setString(&p.EndDate, u.EndDate)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setStrings(dst *[]string, src *[]string) {
	if src != nil {
		*dst = append([]string(nil), (*src)...)
	}
}

// String returns a pointer to s, for building partial updates inline.
func String(s string) *string { return &s }

// Bool returns a pointer to b, for building partial updates inline.
func Bool(b bool) *bool { return &b }

// Strings returns a pointer to a copy of list, for building partial updates
// inline.
func Strings(list ...string) *[]string {
	out := append([]string(nil), list...)
	return &out
}
