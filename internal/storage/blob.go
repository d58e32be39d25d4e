package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rghanem/souklist/internal/model"
)

// DefaultListName is the list created on first run and the list a migrated
// legacy dump is filed under.
const DefaultListName = "Shopping List"

var (
	// ErrMalformedData marks a blob that exists but does not parse. There is
	// no recovery path: resetting would silently destroy the user's data, so
	// the caller gets the error and decides.
	ErrMalformedData = errors.New("malformed persisted data")

	// ErrPersistenceFailure marks a failed write. In-memory state is still
	// valid for the session; the caller reports the failure upward.
	ErrPersistenceFailure = errors.New("persistence failure")
)

// Blob reads and writes the whole-store snapshot as a single value in the
// backing key-value store.
type Blob struct {
	backend Backend
}

func NewBlob(backend Backend) *Blob {
	return &Blob{backend: backend}
}

// Load reads the current-format snapshot. When absent it migrates the
// legacy single-list value if one exists (wrapping it as a store with one
// default-named list, deleting the legacy key, and writing the new blob),
// and otherwise starts fresh with one empty default list. The returned
// snapshot is always repaired: at least one list, active pointer valid.
func (b *Blob) Load() (*model.Snapshot, error) {
	raw, ok, err := b.backend.Get(KeyData)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var snap model.Snapshot
	if ok {
		if err := json.Unmarshal([]byte(raw), &snap); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedData, err)
		}
	} else {
		migrated, err := b.migrateLegacy(&snap)
		if err != nil {
			return nil, err
		}
		if migrated {
			if err := b.Save(&snap); err != nil {
				return nil, err
			}
			if err := b.backend.Delete(KeyLegacyList); err != nil {
				return nil, fmt.Errorf("remove legacy value: %w", err)
			}
		}
	}

	repair(&snap)
	return &snap, nil
}

// migrateLegacy fills snap from the legacy bare-array value. It reports
// whether legacy data was actually found; either way snap ends up with the
// default list present.
func (b *Blob) migrateLegacy(snap *model.Snapshot) (bool, error) {
	raw, ok, err := b.backend.Get(KeyLegacyList)
	if err != nil {
		return false, fmt.Errorf("load legacy value: %w", err)
	}

	items := []model.Item{}
	if ok {
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			return false, fmt.Errorf("%w: legacy value: %v", ErrMalformedData, err)
		}
	}

	snap.Lists = model.NewLists()
	snap.Lists.Set(DefaultListName, items)
	snap.ActiveList = DefaultListName
	return ok, nil
}

// repair restores the two structural invariants: the store has at least
// one list, and the active pointer names an existing list.
func repair(snap *model.Snapshot) {
	if snap.Lists.Len() == 0 {
		snap.Lists.Set(DefaultListName, []model.Item{})
		snap.ActiveList = DefaultListName
	}
	if !snap.Lists.Has(snap.ActiveList) {
		snap.ActiveList = snap.Lists.First()
	}
}

// Save overwrites the persisted snapshot with the given one.
func (b *Blob) Save(snap *model.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := b.backend.Set(KeyData, string(data)); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	return nil
}
