// Package observability provides formatted output utilities for verbose
// CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/assistant"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDocument outputs a human-readable summary of the current document.
func (p *Printer) PrintDocument(doc store.Document) {
	var sb strings.Builder

	name := doc.Data.Personal.Name
	if name == "" {
		name = "(unnamed)"
	}
	sb.WriteString(fmt.Sprintf("Name:      %s\n", name))
	sb.WriteString(fmt.Sprintf("Template:  %s\n", doc.Template))
	sb.WriteString(fmt.Sprintf("Theme:     %s\n", doc.Theme))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Experience: %d entries\n", len(doc.Data.Experience)))
	sb.WriteString(fmt.Sprintf("Education:  %d entries\n", len(doc.Data.Education)))
	sb.WriteString(fmt.Sprintf("Skills:     %d categories\n", len(doc.Data.Skills)))
	sb.WriteString(fmt.Sprintf("Projects:   %d entries\n", len(doc.Data.Projects)))

	p.printBox("Resume Document", sb.String())
}

// PrintSections outputs the section registry in render order.
func (p *Printer) PrintSections(sections []types.Section) {
	var sb strings.Builder

	for _, sec := range sections {
		marker := " "
		if !sec.Visible {
			marker = "×"
		}
		sb.WriteString(fmt.Sprintf("%2d %s %-12s %s\n", sec.Order, marker, sec.Kind, sec.Title))
	}
	if len(sections) == 0 {
		sb.WriteString("(no sections)\n")
	}

	p.printBox("Sections", sb.String())
}

// PrintJobAnalysis outputs a job-description analysis.
func (p *Printer) PrintJobAnalysis(analysis *assistant.JobAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder

	writeList := func(heading string, items []string) {
		if len(items) == 0 {
			return
		}
		sb.WriteString(heading + ":\n")
		count := min(len(items), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
		}
		if len(items) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	writeList("Key Skills", analysis.KeySkills)
	writeList("Required Experience", analysis.RequiredExperience)
	writeList("Suggested Keywords", analysis.SuggestedKeywords)
	writeList("Matching Tips", analysis.MatchingTips)

	p.printBox("Job Analysis", sb.String())
}

// PrintSnapshots outputs the saved snapshot names.
func (p *Printer) PrintSnapshots(names []string) {
	var sb strings.Builder
	if len(names) == 0 {
		sb.WriteString("(no snapshots)\n")
	}
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("  • %s\n", name))
	}
	p.printBox("Saved Resumes", sb.String())
}
