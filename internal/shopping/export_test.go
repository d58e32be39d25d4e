package shopping

import "testing"

func TestExportText(t *testing.T) {
	s, _ := setupStore(t)

	milk, err := s.AddItem("Milk", 2, 1.5, "Dairy")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddItem("Bread", 1, 0, ""); err != nil {
		t.Fatal(err)
	}
	if err := s.SetPurchased(milk.ID, true); err != nil {
		t.Fatal(err)
	}

	got := s.ExportText()
	want := "Shopping List:\n- Milk (x2) (Purchased)\n- Bread (x1)\n"
	if got != want {
		t.Errorf("ExportText() = %q, want %q", got, want)
	}
}

func TestExportTextEmptyList(t *testing.T) {
	s, _ := setupStore(t)

	if got := s.ExportText(); got != "Shopping List:\n" {
		t.Errorf("ExportText() = %q", got)
	}
}

func TestExportTextUsesActiveList(t *testing.T) {
	s, _ := setupStore(t)
	if err := s.CreateList("Weekly"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddItem("Eggs", 6, 0, ""); err != nil {
		t.Fatal(err)
	}

	got := s.ExportText()
	want := "Weekly:\n- Eggs (x6)\n"
	if got != want {
		t.Errorf("ExportText() = %q, want %q", got, want)
	}
}
