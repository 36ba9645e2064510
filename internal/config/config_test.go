package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"storage_dir": "/tmp/resumes",
		"template": "ats",
		"include_date": true
	}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/resumes", cfg.StorageDir)
	assert.Equal(t, "ats", cfg.Template)
	assert.True(t, cfg.IncludeDate)
	assert.Empty(t, cfg.APIKey)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("RESUME_STORAGE_DIR", "/data/resumes")
	t.Setenv("GEMINI_API_KEY", "key-123")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")

	cfg := FromEnv()
	assert.Equal(t, "/data/resumes", cfg.StorageDir)
	assert.Equal(t, "key-123", cfg.APIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Template: "minimalist"}

	merged := cfg.MergeWithDefaults(Config{
		StorageDir: "/default/storage",
		Template:   "modern",
		Model:      "gemini-2.5-flash",
	})

	assert.Equal(t, "/default/storage", merged.StorageDir, "empty fields fill from defaults")
	assert.Equal(t, "minimalist", merged.Template, "set fields win")
	assert.Equal(t, "gemini-2.5-flash", merged.Model)
}

func TestDefaultStorageDir(t *testing.T) {
	dir := DefaultStorageDir()
	assert.Contains(t, dir, ".resume-builder")
}
