package model

import (
	"encoding/json"
	"testing"
)

func TestListsInsertionOrder(t *testing.T) {
	l := NewLists()
	l.Set("Groceries", nil)
	l.Set("Hardware", nil)
	l.Set("Pharmacy", nil)

	want := []string{"Groceries", "Hardware", "Pharmacy"}
	got := l.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestListsRenameKeepsPosition(t *testing.T) {
	l := NewLists()
	l.Set("A", nil)
	l.Set("B", []Item{{ID: 1, Name: "Milk"}})
	l.Set("C", nil)

	l.Rename("B", "Weekly")

	got := l.Names()
	want := []string{"A", "Weekly", "C"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	items, ok := l.Get("Weekly")
	if !ok || len(items) != 1 || items[0].Name != "Milk" {
		t.Errorf("renamed list lost its items: %v", items)
	}
	if l.Has("B") {
		t.Error("old name still present after rename")
	}
}

func TestListsRenameToExistingIsNoop(t *testing.T) {
	l := NewLists()
	l.Set("A", []Item{{ID: 1}})
	l.Set("B", []Item{{ID: 2}})

	l.Rename("A", "B")

	items, _ := l.Get("B")
	if len(items) != 1 || items[0].ID != 2 {
		t.Errorf("rename onto existing key clobbered it: %v", items)
	}
}

func TestListsDelete(t *testing.T) {
	l := NewLists()
	l.Set("A", nil)
	l.Set("B", nil)

	l.Delete("A")
	if l.Has("A") || l.Len() != 1 || l.First() != "B" {
		t.Errorf("after delete: names = %v", l.Names())
	}

	// Deleting an absent name is a no-op.
	l.Delete("A")
	if l.Len() != 1 {
		t.Errorf("double delete changed state: %v", l.Names())
	}
}

func TestListsJSONRoundTrip(t *testing.T) {
	l := NewLists()
	l.Set("Zebra", []Item{{ID: 10, Name: "Milk", Quantity: 2, Price: 1.5, Category: "Dairy", Timestamp: 100}})
	l.Set("Alpha", []Item{})
	l.Set("Mango", []Item{{ID: 11, Name: "Bread", Quantity: 1, Purchased: true, Timestamp: 200}})

	snap := Snapshot{Lists: l, ActiveList: "Mango"}
	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back Snapshot
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if back.ActiveList != "Mango" {
		t.Errorf("active = %q, want %q", back.ActiveList, "Mango")
	}
	gotNames := back.Lists.Names()
	wantNames := []string{"Zebra", "Alpha", "Mango"}
	if len(gotNames) != len(wantNames) {
		t.Fatalf("names = %v, want %v", gotNames, wantNames)
	}
	for i := range wantNames {
		if gotNames[i] != wantNames[i] {
			t.Errorf("names[%d] = %q, want %q (order not preserved)", i, gotNames[i], wantNames[i])
		}
	}
	items, _ := back.Lists.Get("Zebra")
	if len(items) != 1 {
		t.Fatalf("Zebra items = %v", items)
	}
	got := items[0]
	want := Item{ID: 10, Name: "Milk", Quantity: 2, Price: 1.5, Category: "Dairy", Timestamp: 100}
	if got != want {
		t.Errorf("item round trip = %+v, want %+v", got, want)
	}
}

func TestListsUnmarshalRejectsNonObject(t *testing.T) {
	var l Lists
	if err := json.Unmarshal([]byte(`[1,2,3]`), &l); err == nil {
		t.Error("expected error for non-object lists value")
	}
}

func TestParseSortMode(t *testing.T) {
	for _, s := range []string{"manual", "alphabetical", "newest", "unpurchased"} {
		if _, ok := ParseSortMode(s); !ok {
			t.Errorf("ParseSortMode(%q) not accepted", s)
		}
	}
	if _, ok := ParseSortMode("oldest"); ok {
		t.Error("ParseSortMode accepted unknown mode")
	}
}
