package persist

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
)

// Storage keys. CurrentDocumentKey holds the always-current auto-persisted
// document; SnapshotsKey holds the named snapshot map as one blob.
const (
	CurrentDocumentKey = "resume-builder-storage"
	SnapshotsKey       = "saved-resumes"
)

//go:embed document_schema.json
var documentSchema string

// ErrSnapshotNotFound is returned when a named snapshot does not exist.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// Snapshot is one named, durable copy of the document content. Theme and
// template are deliberately not part of a snapshot.
type Snapshot struct {
	Data     types.ResumeData `json:"data"`
	Sections []types.Section  `json:"sections"`
	SavedAt  string           `json:"savedAt"`
}

// Adapter connects a store to durable storage. Bind it once after
// construction; every subsequent store mutation is written through to the
// current-document key.
type Adapter struct {
	kv    KV
	store *store.Store
	now   func() time.Time
}

// NewAdapter returns an adapter persisting st through kv.
func NewAdapter(kv KV, st *store.Store) *Adapter {
	return &Adapter{kv: kv, store: st, now: time.Now}
}

// Bind subscribes the adapter to store changes so every mutation is
// auto-persisted. Persistence failures are logged, never propagated into
// the mutation path.
func (a *Adapter) Bind() {
	a.store.Subscribe(func() {
		if err := a.SaveCurrent(); err != nil {
			log.Printf("[persist] auto-persist failed: %v", err)
		}
	})
}

// SaveCurrent writes the store's full document to the current-document key.
func (a *Adapter) SaveCurrent() error {
	doc := a.store.Document()
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}
	return a.kv.Set(CurrentDocumentKey, data)
}

// Restore reads the current-document key and returns the stored document.
// A missing, unparsable, or schema-invalid blob falls back to the default
// empty document; restore never fails.
func Restore(kv KV) store.Document {
	data, err := kv.Get(CurrentDocumentKey)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			log.Printf("[persist] restore failed, using default document: %v", err)
		}
		return store.DefaultDocument()
	}

	if err := schemas.ValidateString(documentSchema, string(data)); err != nil {
		log.Printf("[persist] stored document rejected, using default document: %v", err)
		return store.DefaultDocument()
	}

	var doc store.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Printf("[persist] stored document unreadable, using default document: %v", err)
		return store.DefaultDocument()
	}
	if doc.Theme == "" {
		doc.Theme = store.DefaultTheme
	}
	if doc.Template == "" {
		doc.Template = store.DefaultTemplate
	}
	return doc
}

// SaveSnapshot stores a deep copy of the current document content under
// name, stamped with the save time. An existing snapshot with the same name
// is overwritten.
func (a *Adapter) SaveSnapshot(name string) error {
	if name == "" {
		return fmt.Errorf("snapshot name is empty")
	}
	snapshots, err := a.readSnapshots()
	if err != nil {
		return err
	}
	doc := a.store.Document()
	snapshots[name] = Snapshot{
		Data:     doc.Data,
		Sections: doc.Sections,
		SavedAt:  a.now().UTC().Format(time.RFC3339),
	}
	return a.writeSnapshots(snapshots)
}

// LoadSnapshot replaces the live document content with the named snapshot.
// Theme and template keep their live values: snapshots are content-only.
// Returns ErrSnapshotNotFound if the name is unknown.
func (a *Adapter) LoadSnapshot(name string) error {
	snapshots, err := a.readSnapshots()
	if err != nil {
		return err
	}
	snap, ok := snapshots[name]
	if !ok {
		return ErrSnapshotNotFound
	}
	a.store.ReplaceContent(snap.Data, snap.Sections)
	return nil
}

// ListSnapshots returns all snapshot names in lexical order.
func (a *Adapter) ListSnapshots() ([]string, error) {
	snapshots, err := a.readSnapshots()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(snapshots))
	for name := range snapshots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// GetSnapshot returns the named snapshot, or ErrSnapshotNotFound.
func (a *Adapter) GetSnapshot(name string) (Snapshot, error) {
	snapshots, err := a.readSnapshots()
	if err != nil {
		return Snapshot{}, err
	}
	snap, ok := snapshots[name]
	if !ok {
		return Snapshot{}, ErrSnapshotNotFound
	}
	return snap, nil
}

// DeleteSnapshot removes the named snapshot. Deleting a missing name is a
// no-op.
func (a *Adapter) DeleteSnapshot(name string) error {
	snapshots, err := a.readSnapshots()
	if err != nil {
		return err
	}
	if _, ok := snapshots[name]; !ok {
		return nil
	}
	delete(snapshots, name)
	return a.writeSnapshots(snapshots)
}

func (a *Adapter) readSnapshots() (map[string]Snapshot, error) {
	data, err := a.kv.Get(SnapshotsKey)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return map[string]Snapshot{}, nil
		}
		return nil, err
	}
	var snapshots map[string]Snapshot
	if err := json.Unmarshal(data, &snapshots); err != nil {
		// A corrupt snapshot blob starts over empty rather than blocking
		// every snapshot operation.
		log.Printf("[persist] snapshot blob unreadable, starting empty: %v", err)
		return map[string]Snapshot{}, nil
	}
	if snapshots == nil {
		snapshots = map[string]Snapshot{}
	}
	return snapshots, nil
}

func (a *Adapter) writeSnapshots(snapshots map[string]Snapshot) error {
	data, err := json.Marshal(snapshots)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshots: %w", err)
	}
	return a.kv.Set(SnapshotsKey, data)
}
