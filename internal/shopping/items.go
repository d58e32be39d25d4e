package shopping

import (
	"math"
	"strings"

	"github.com/rghanem/souklist/internal/model"
)

// Items returns a copy of the active list's items in manual order.
func (s *Store) Items() []model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.activeItems()
	out := make([]model.Item, len(items))
	copy(out, items)
	return out
}

// AddItem appends a new item to the active list. The name must be
// non-blank; quantity, price, and category fall back to their defaults
// when out of range or missing.
func (s *Store) AddItem(name string, quantity int, price float64, category string) (model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return model.Item{}, ErrEmptyName
	}

	category = strings.TrimSpace(category)
	if category == "" {
		category = s.generalLabel
	}

	now := s.now().UnixMilli()
	item := model.Item{
		ID:        s.freshID(now),
		Name:      name,
		Quantity:  normalizeQuantity(quantity),
		Price:     normalizePrice(price),
		Category:  category,
		Timestamp: now,
	}

	s.setActiveItems(append(s.activeItems(), item))
	return item, s.save()
}

// UpdateItem replaces the four mutable fields of the identified item in
// place; id, purchased state, timestamp, and position are preserved.
func (s *Store) UpdateItem(id int64, name string, quantity int, price float64, category string) (model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return model.Item{}, ErrEmptyName
	}

	items := s.activeItems()
	i := indexOf(items, id)
	if i < 0 {
		return model.Item{}, ErrNotFound
	}

	category = strings.TrimSpace(category)
	if category == "" {
		category = s.generalLabel
	}

	items[i].Name = name
	items[i].Quantity = normalizeQuantity(quantity)
	items[i].Price = normalizePrice(price)
	items[i].Category = category
	return items[i], s.save()
}

// RemoveItem deletes the identified item, preserving the order of the
// remaining items.
func (s *Store) RemoveItem(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.activeItems()
	i := indexOf(items, id)
	if i < 0 {
		return ErrNotFound
	}

	s.setActiveItems(append(items[:i], items[i+1:]...))
	return s.save()
}

// SetPurchased sets the purchased flag of the identified item.
func (s *Store) SetPurchased(id int64, purchased bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.activeItems()
	i := indexOf(items, id)
	if i < 0 {
		return ErrNotFound
	}

	items[i].Purchased = purchased
	return s.save()
}

// ClearAll empties the active list, capturing the removed items for one
// pending undo. Clearing an already-empty list is a no-op.
func (s *Store) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.activeItems()
	if len(items) == 0 {
		return nil
	}

	s.undo.capture(items)
	s.setActiveItems([]model.Item{})
	return s.save()
}

// Undo restores the last cleared items, replacing whatever the active list
// currently holds. It reports whether a capture was pending.
func (s *Store) Undo() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, ok := s.undo.consume()
	if !ok {
		return false, nil
	}

	s.setActiveItems(items)
	return true, s.save()
}

// UndoPending reports whether a cleared snapshot is waiting to be restored.
func (s *Store) UndoPending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.undo.pending()
}

// DiscardUndo drops any pending capture. The handler layer calls this when
// the undo window expires.
func (s *Store) DiscardUndo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.undo.discard()
}

// freshID returns a millisecond-timestamp id, bumped past any ids already
// taken in the active list. Callers hold s.mu.
func (s *Store) freshID(base int64) int64 {
	taken := make(map[int64]struct{})
	for _, it := range s.activeItems() {
		taken[it.ID] = struct{}{}
	}
	id := base
	for {
		if _, ok := taken[id]; !ok {
			return id
		}
		id++
	}
}

func indexOf(items []model.Item, id int64) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func normalizeQuantity(q int) int {
	if q < 1 {
		return 1
	}
	return q
}

func normalizePrice(p float64) float64 {
	if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
		return 0
	}
	return p
}
