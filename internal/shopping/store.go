// Package shopping owns the in-memory store of named lists and the items
// of the active list, with write-through persistence: every successful
// mutation flushes the whole snapshot through the blob adapter. Operations
// serialize on one mutex, so the model behaves as if driven by a single
// logical thread.
package shopping

import (
	"strings"
	"sync"
	"time"

	"github.com/rghanem/souklist/internal/model"
	"github.com/rghanem/souklist/internal/storage"
)

// Store is the root aggregate handle. One instance per application
// session; collaborators receive it by reference.
type Store struct {
	mu           sync.Mutex
	snap         *model.Snapshot
	blob         *storage.Blob
	undo         undoBuffer
	generalLabel string

	now func() time.Time
}

// Open loads the persisted snapshot (running the legacy migration if
// needed) and returns a store over it.
func Open(blob *storage.Blob) (*Store, error) {
	snap, err := blob.Load()
	if err != nil {
		return nil, err
	}
	return &Store{
		snap:         snap,
		blob:         blob,
		generalLabel: "General",
		now:          time.Now,
	}, nil
}

// SetGeneralLabel sets the category label given to items added without
// one. The caller keeps it in step with the language preference.
func (s *Store) SetGeneralLabel(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if label != "" {
		s.generalLabel = label
	}
}

// save flushes the snapshot. In-memory state stays as mutated even when
// the write fails; the error is reported upward. Callers hold s.mu.
func (s *Store) save() error {
	return s.blob.Save(s.snap)
}

// ListNames returns all list names in creation order.
func (s *Store) ListNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Lists.Names()
}

// ActiveList returns the name of the currently selected list.
func (s *Store) ActiveList() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.ActiveList
}

// CreateList inserts an empty list under name and makes it active.
func (s *Store) CreateList(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" || s.snap.Lists.Has(name) {
		return ErrDuplicateName
	}

	s.snap.Lists.Set(name, []model.Item{})
	s.snap.ActiveList = name
	return s.save()
}

// DeleteList removes the named list. The last remaining list cannot be
// deleted; deleting the active list switches to the first remaining one.
func (s *Store) DeleteList(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.snap.Lists.Has(name) {
		return ErrUnknownList
	}
	if s.snap.Lists.Len() <= 1 {
		return ErrLastList
	}

	s.snap.Lists.Delete(name)
	if s.snap.ActiveList == name {
		s.snap.ActiveList = s.snap.Lists.First()
	}
	return s.save()
}

// RenameList moves a list to a new name, keeping its contents and its
// position in the listing order. Blank or unchanged new names are a no-op.
func (s *Store) RenameList(oldName, newName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	newName = strings.TrimSpace(newName)
	if newName == "" || newName == oldName {
		return nil
	}
	if !s.snap.Lists.Has(oldName) {
		return ErrUnknownList
	}
	if s.snap.Lists.Has(newName) {
		return ErrDuplicateName
	}

	s.snap.Lists.Rename(oldName, newName)
	if s.snap.ActiveList == oldName {
		s.snap.ActiveList = newName
	}
	return s.save()
}

// SwitchActive selects the named list.
func (s *Store) SwitchActive(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.snap.Lists.Has(name) {
		return ErrUnknownList
	}
	if s.snap.ActiveList == name {
		return nil
	}

	s.snap.ActiveList = name
	return s.save()
}

// activeItems returns the live item slice of the active list. Always
// computed from the snapshot, never cached; callers hold s.mu.
func (s *Store) activeItems() []model.Item {
	items, _ := s.snap.Lists.Get(s.snap.ActiveList)
	return items
}

func (s *Store) setActiveItems(items []model.Item) {
	s.snap.Lists.Set(s.snap.ActiveList, items)
}
