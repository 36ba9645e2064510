package persist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
)

func newTestAdapter(t *testing.T) (*store.Store, *Adapter) {
	t.Helper()
	kv := newTestKV(t)
	st := store.New()
	adapter := NewAdapter(kv, st)
	adapter.Bind()
	return st, adapter
}

func TestSnapshot_Isolation(t *testing.T) {
	st, adapter := newTestAdapter(t)

	st.UpdateSummary("before snapshot")
	require.NoError(t, adapter.SaveSnapshot("A"))

	// Mutate the live document after saving.
	st.UpdateSummary("after snapshot")
	st.AddExperience(types.Experience{Company: "Acme"})

	require.NoError(t, adapter.LoadSnapshot("A"))

	data := st.Data()
	assert.Equal(t, "before snapshot", data.Summary)
	assert.Empty(t, data.Experience, "intervening mutations are not part of the snapshot")
}

func TestLoadSnapshot_KeepsThemeAndTemplate(t *testing.T) {
	st, adapter := newTestAdapter(t)

	require.NoError(t, adapter.SaveSnapshot("A"))

	st.SetTemplate("minimalist")
	st.SetTheme("dark")
	require.NoError(t, adapter.LoadSnapshot("A"))

	// Snapshots are content-only; presentation choices stay live.
	assert.Equal(t, "minimalist", st.Template())
	assert.Equal(t, "dark", st.Theme())
}

func TestLoadSnapshot_NotFound(t *testing.T) {
	_, adapter := newTestAdapter(t)

	err := adapter.LoadSnapshot("missing")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestSaveSnapshot_EmptyNameRejected(t *testing.T) {
	_, adapter := newTestAdapter(t)

	assert.Error(t, adapter.SaveSnapshot(""))
}

func TestListAndDeleteSnapshots(t *testing.T) {
	_, adapter := newTestAdapter(t)

	require.NoError(t, adapter.SaveSnapshot("beta"))
	require.NoError(t, adapter.SaveSnapshot("alpha"))

	names, err := adapter.ListSnapshots()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, names, "names are sorted")

	require.NoError(t, adapter.DeleteSnapshot("alpha"))
	names, err = adapter.ListSnapshots()
	require.NoError(t, err)
	assert.Equal(t, []string{"beta"}, names)

	// Deleting a missing snapshot is a no-op.
	require.NoError(t, adapter.DeleteSnapshot("alpha"))
}

func TestSaveSnapshot_StampsSaveTime(t *testing.T) {
	_, adapter := newTestAdapter(t)
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	adapter.now = func() time.Time { return fixed }

	require.NoError(t, adapter.SaveSnapshot("stamped"))

	snap, err := adapter.GetSnapshot("stamped")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01T12:00:00Z", snap.SavedAt)
}

func TestSaveSnapshot_OverwritesExistingName(t *testing.T) {
	st, adapter := newTestAdapter(t)

	st.UpdateSummary("v1")
	require.NoError(t, adapter.SaveSnapshot("A"))

	st.UpdateSummary("v2")
	require.NoError(t, adapter.SaveSnapshot("A"))

	require.NoError(t, adapter.LoadSnapshot("A"))
	assert.Equal(t, "v2", st.Data().Summary)
}

func TestReadSnapshots_CorruptBlobStartsEmpty(t *testing.T) {
	kv := newTestKV(t)
	require.NoError(t, kv.Set(SnapshotsKey, []byte("{broken")))

	st := store.New()
	adapter := NewAdapter(kv, st)

	names, err := adapter.ListSnapshots()
	require.NoError(t, err)
	assert.Empty(t, names)
}
