// Package export converts a rendered resume document into a PDF artifact
// using a headless browser, and names the output deterministically.
package export

import (
	"strings"
	"time"
	"unicode"

	"github.com/jonathan/resume-builder/internal/rendering"
)

// FileName builds the output filename for an export:
// {SanitizedName}_Resume_{TemplateName}[_YYYYMMDD].pdf. A blank personal
// name falls back to "Resume".
func FileName(personalName string, tmpl rendering.Template, includeDate bool) string {
	return fileNameAt(personalName, tmpl, includeDate, time.Now())
}

func fileNameAt(personalName string, tmpl rendering.Template, includeDate bool, now time.Time) string {
	name := sanitizeName(personalName)
	if name == "" {
		name = "Resume"
	}

	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteString("_Resume_")
	sb.WriteString(tmpl.DisplayName())
	if includeDate {
		sb.WriteString("_")
		sb.WriteString(now.Format("20060102"))
	}
	sb.WriteString(".pdf")
	return sb.String()
}

// sanitizeName strips everything but letters, digits, and spaces, then
// collapses whitespace runs to single underscores and trims leading and
// trailing underscores.
func sanitizeName(name string) string {
	var kept strings.Builder
	for _, r := range strings.TrimSpace(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			kept.WriteRune(r)
		}
	}
	fields := strings.Fields(kept.String())
	return strings.Join(fields, "_")
}
