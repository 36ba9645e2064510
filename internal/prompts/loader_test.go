package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownKeys(t *testing.T) {
	keys := []string{
		"summary",
		"bullet_points",
		"skill_suggestions",
		"job_analysis",
		"improve_summary",
		"improve_bullet",
		"improve_description",
	}

	for _, key := range keys {
		prompt, err := Get("assistant.json", key)
		require.NoError(t, err, "key %s", key)
		assert.NotEmpty(t, prompt)
	}
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("assistant.json", "nonexistent")
	assert.Error(t, err)
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "summary")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	out := Format("Hello {{.Name}}, you are a {{.Role}}. Bye {{.Name}}.", map[string]string{
		"Name": "Jane",
		"Role": "engineer",
	})
	assert.Equal(t, "Hello Jane, you are a engineer. Bye Jane.", out)
}

func TestFormat_LeavesUnknownPlaceholders(t *testing.T) {
	out := Format("{{.Known}} and {{.Unknown}}", map[string]string{"Known": "x"})
	assert.Equal(t, "x and {{.Unknown}}", out)
}
