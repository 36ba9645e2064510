package persist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
)

func newTestKV(t *testing.T) *FileKV {
	t.Helper()
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)
	return kv
}

func TestFileKV_SetGetDelete(t *testing.T) {
	kv := newTestKV(t)

	_, err := kv.Get("missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, kv.Set("doc", []byte(`{"a":1}`)))
	data, err := kv.Get("doc")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(data))

	require.NoError(t, kv.Delete("doc"))
	_, err = kv.Get("doc")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// Deleting a missing key is a no-op.
	require.NoError(t, kv.Delete("doc"))
}

func TestNewFileKV_EmptyDir(t *testing.T) {
	_, err := NewFileKV("")
	assert.Error(t, err)
}

func TestRestore_MissingKeyFallsBackToDefault(t *testing.T) {
	kv := newTestKV(t)

	doc := Restore(kv)
	assert.Equal(t, store.DefaultDocument(), doc)
}

func TestRestore_CorruptBlobFallsBackToDefault(t *testing.T) {
	kv := newTestKV(t)
	require.NoError(t, kv.Set(CurrentDocumentKey, []byte("{not json")))

	doc := Restore(kv)
	assert.Equal(t, store.DefaultDocument(), doc)
}

func TestRestore_SchemaInvalidBlobFallsBackToDefault(t *testing.T) {
	kv := newTestKV(t)
	require.NoError(t, kv.Set(CurrentDocumentKey, []byte(`{"sections":"not-an-array"}`)))

	doc := Restore(kv)
	assert.Equal(t, store.DefaultDocument(), doc)
}

func TestAutoPersist_RoundTrip(t *testing.T) {
	kv := newTestKV(t)

	st := store.NewFromDocument(Restore(kv))
	adapter := NewAdapter(kv, st)
	adapter.Bind()

	st.UpdatePersonal(store.PersonalUpdate{Name: store.String("Jane Doe")})
	st.AddExperience(types.Experience{
		Company:     "Acme",
		Position:    "Engineer",
		StartDate:   "2020-01",
		Current:     true,
		Description: []string{"built the thing"},
	})
	st.AddSection(types.SectionCustom, "Languages",
		&types.CustomContent{Type: types.ContentList, Items: []string{"Spanish"}}, true)
	st.SetTemplate("ats")
	st.ToggleTheme()

	// A fresh load sees exactly what the live store holds.
	restored := Restore(kv)
	assert.Equal(t, st.Document(), restored)
}

func TestRestore_FillsThemeAndTemplateDefaults(t *testing.T) {
	kv := newTestKV(t)
	require.NoError(t, kv.Set(CurrentDocumentKey, []byte(`{
		"data": {"personal": {}, "summary": "", "experience": [], "education": [], "skills": [], "projects": []},
		"sections": []
	}`)))

	doc := Restore(kv)
	assert.Equal(t, store.DefaultTheme, doc.Theme)
	assert.Equal(t, store.DefaultTemplate, doc.Template)
}
