package store

import (
	"sort"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/types"
)

// AddSection appends a new section to the registry with order set to one
// past the current maximum, generates a fresh id, and returns it. Content
// is only carried for custom sections; for any other kind it is dropped.
func (s *Store) AddSection(kind types.SectionKind, title string, content *types.CustomContent, visible bool) string {
	if kind != types.SectionCustom {
		content = nil
	}
	maxOrder := -1
	for _, sec := range s.sections {
		if sec.Order > maxOrder {
			maxOrder = sec.Order
		}
	}
	id := "custom-" + uuid.NewString()
	s.sections = append(s.sections, types.Section{
		ID:      id,
		Kind:    kind,
		Title:   title,
		Content: content.Clone(),
		Order:   maxOrder + 1,
		Visible: visible,
	})
	s.notify()
	return id
}

// ReplaceSections replaces the whole registry with the caller-supplied
// list. This is a full-replace operation: the caller is responsible for the
// order fields being the sequence it wants.
func (s *Store) ReplaceSections(sections []types.Section) {
	s.sections = types.CloneSections(sections)
	s.notify()
}

// MoveSection moves the section at fromIndex (in ascending-order position)
// to toIndex and renumbers every section. Out-of-range indexes leave the
// registry unchanged.
func (s *Store) MoveSection(fromIndex, toIndex int) {
	s.sections = Reorder(s.sections, fromIndex, toIndex)
	s.notify()
}

// ToggleSectionVisibility flips the visible flag of the section with the
// given id, leaving its order untouched. Returns ErrNotFound if no section
// matches.
func (s *Store) ToggleSectionVisibility(id string) error {
	for i := range s.sections {
		if s.sections[i].ID == id {
			s.sections[i].Visible = !s.sections[i].Visible
			s.notify()
			return nil
		}
	}
	return ErrNotFound
}

// UpdateSectionTitle sets the display title of the section with the given
// id. The registry does not restrict this to custom sections; callers gate
// that in the UI layer. Returns ErrNotFound if no section matches.
func (s *Store) UpdateSectionTitle(id, title string) error {
	for i := range s.sections {
		if s.sections[i].ID == id {
			s.sections[i].Title = title
			s.notify()
			return nil
		}
	}
	return ErrNotFound
}

// UpdateSectionContent replaces the content of the custom section with the
// given id. Returns ErrNotFound if no section matches.
func (s *Store) UpdateSectionContent(id string, content *types.CustomContent) error {
	for i := range s.sections {
		if s.sections[i].ID == id {
			s.sections[i].Content = content.Clone()
			s.notify()
			return nil
		}
	}
	return ErrNotFound
}

// Reorder returns a new section list with the section at position fromIndex
// moved to position toIndex, where positions are taken over the input
// sorted by ascending order. Every section in the result is renumbered to
// its array index, so repeated calls with the same target are stable: no
// drift, no duplicates, no drops. Out-of-range indexes return the input
// sorted and renumbered but otherwise unchanged.
func Reorder(sections []types.Section, fromIndex, toIndex int) []types.Section {
	out := types.CloneSections(sections)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })

	if fromIndex >= 0 && fromIndex < len(out) && toIndex >= 0 && toIndex < len(out) && fromIndex != toIndex {
		moved := out[fromIndex]
		out = append(out[:fromIndex], out[fromIndex+1:]...)
		out = append(out[:toIndex], append([]types.Section{moved}, out[toIndex:]...)...)
	}

	for i := range out {
		out[i].Order = i
	}
	return out
}
