package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Lists maps list name to its items while remembering insertion order.
// The persisted wire format is a plain JSON object, so a regular Go map
// would lose the order lists were created in; the UI relies on that order
// being stable across renames and restarts.
type Lists struct {
	names []string
	items map[string][]Item
}

// NewLists returns an empty Lists.
func NewLists() Lists {
	return Lists{items: make(map[string][]Item)}
}

// Len returns the number of lists.
func (l *Lists) Len() int { return len(l.names) }

// Has reports whether a list with the given name exists.
func (l *Lists) Has(name string) bool {
	_, ok := l.items[name]
	return ok
}

// Get returns the items of the named list.
func (l *Lists) Get(name string) ([]Item, bool) {
	items, ok := l.items[name]
	return items, ok
}

// Set stores items under name, appending the name to the order if new.
func (l *Lists) Set(name string, items []Item) {
	if l.items == nil {
		l.items = make(map[string][]Item)
	}
	if _, ok := l.items[name]; !ok {
		l.names = append(l.names, name)
	}
	l.items[name] = items
}

// Delete removes the named list. It is a no-op if the name is absent.
func (l *Lists) Delete(name string) {
	if _, ok := l.items[name]; !ok {
		return
	}
	delete(l.items, name)
	for i, n := range l.names {
		if n == name {
			l.names = append(l.names[:i], l.names[i+1:]...)
			break
		}
	}
}

// Rename moves the list at oldName to newName, keeping its position in the
// order. It is a no-op if oldName is absent or newName already exists.
func (l *Lists) Rename(oldName, newName string) {
	items, ok := l.items[oldName]
	if !ok || l.Has(newName) {
		return
	}
	delete(l.items, oldName)
	l.items[newName] = items
	for i, n := range l.names {
		if n == oldName {
			l.names[i] = newName
			break
		}
	}
}

// Names returns the list names in insertion order.
func (l *Lists) Names() []string {
	out := make([]string, len(l.names))
	copy(out, l.names)
	return out
}

// First returns the first list name in insertion order, or "" when empty.
func (l *Lists) First() string {
	if len(l.names) == 0 {
		return ""
	}
	return l.names[0]
}

// MarshalJSON encodes the lists as a JSON object with keys in insertion order.
func (l Lists) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range l.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		items := l.items[name]
		if items == nil {
			items = []Item{}
		}
		val, err := json.Marshal(items)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, recording keys in document order.
func (l *Lists) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("lists: expected object, got %v", tok)
	}

	l.names = nil
	l.items = make(map[string][]Item)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("lists: expected string key, got %v", tok)
		}
		var items []Item
		if err := dec.Decode(&items); err != nil {
			return fmt.Errorf("lists: decode items of %q: %w", name, err)
		}
		l.Set(name, items)
	}
	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// Snapshot is the root aggregate persisted as a single blob: every list
// plus the name of the currently selected one.
type Snapshot struct {
	Lists      Lists  `json:"lists"`
	ActiveList string `json:"activeList"`
}
