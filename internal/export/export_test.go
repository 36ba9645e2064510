package export

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/rendering"
)

func TestFileName(t *testing.T) {
	tests := []struct {
		name         string
		personalName string
		tmpl         rendering.Template
		want         string
	}{
		{
			name:         "plain name",
			personalName: "Jane Doe",
			tmpl:         rendering.TemplateModern,
			want:         "Jane_Doe_Resume_Modern.pdf",
		},
		{
			name:         "punctuation stripped",
			personalName: "John O'Brien!!",
			tmpl:         rendering.TemplateModern,
			want:         "John_OBrien_Resume_Modern.pdf",
		},
		{
			name:         "whitespace runs collapse",
			personalName: "  Mary   Ann  Smith ",
			tmpl:         rendering.TemplateMinimalist,
			want:         "Mary_Ann_Smith_Resume_Minimalist.pdf",
		},
		{
			name:         "blank name falls back",
			personalName: "",
			tmpl:         rendering.TemplateATS,
			want:         "Resume_Resume_Ats.pdf",
		},
		{
			name:         "symbols only falls back",
			personalName: "@#$%",
			tmpl:         rendering.TemplateModern,
			want:         "Resume_Resume_Modern.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FileName(tt.personalName, tt.tmpl, false))
		})
	}
}

func TestFileName_DateStamp(t *testing.T) {
	now := time.Date(2025, 3, 9, 15, 4, 5, 0, time.UTC)

	got := fileNameAt("Jane Doe", rendering.TemplateModern, true, now)
	assert.Equal(t, "Jane_Doe_Resume_Modern_20250309.pdf", got)
}

func TestExport_RejectsDocumentWithoutAnchor(t *testing.T) {
	exporter := NewPDFExporter()

	_, err := exporter.Export(context.Background(), "<html><body><p>hello</p></body></html>")
	require.Error(t, err)

	var exportErr *ExportError
	require.ErrorAs(t, err, &exportErr)
	assert.Contains(t, exportErr.Message, "anchor")
}
