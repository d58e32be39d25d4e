package view

import (
	"testing"

	"github.com/rghanem/souklist/internal/model"
	"github.com/rghanem/souklist/internal/prefs"
)

func names(items []model.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func TestFilterCaseInsensitiveSubstring(t *testing.T) {
	items := []model.Item{
		{Name: "Milk"},
		{Name: "Buttermilk"},
		{Name: "Bread"},
	}

	got := Filter(items, "mILk")
	if len(got) != 2 || got[0].Name != "Milk" || got[1].Name != "Buttermilk" {
		t.Errorf("Filter = %v", names(got))
	}
}

func TestFilterEmptyTermIsIdentity(t *testing.T) {
	items := []model.Item{{Name: "A"}, {Name: "B"}}

	got := Filter(items, "")
	if len(got) != 2 {
		t.Fatalf("Filter(\"\") dropped items: %v", names(got))
	}
	// Must be a copy, not the input slice.
	got[0].Name = "mutated"
	if items[0].Name != "A" {
		t.Error("Filter returned an aliased slice")
	}
}

func TestSortManualIsIdentity(t *testing.T) {
	p := NewPipeline(prefs.LangEnglish)
	items := []model.Item{
		{Name: "Zucchini", Timestamp: 3},
		{Name: "Apples", Timestamp: 1},
		{Name: "Milk", Timestamp: 2},
	}

	got := p.Sort(items, model.SortManual)
	want := []string{"Zucchini", "Apples", "Milk"}
	for i := range want {
		if got[i].Name != want[i] {
			t.Errorf("manual sort reordered: %v", names(got))
			break
		}
	}
}

func TestSortAlphabetical(t *testing.T) {
	p := NewPipeline(prefs.LangEnglish)
	items := []model.Item{{Name: "banana"}, {Name: "Apple"}, {Name: "cherry"}}

	got := names(p.Sort(items, model.SortAlphabetical))
	want := []string{"Apple", "banana", "cherry"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("alphabetical = %v, want %v", got, want)
			break
		}
	}
}

func TestSortNewestAndUnpurchased(t *testing.T) {
	items := []model.Item{
		{Name: "Bread", Purchased: false, Timestamp: 100},
		{Name: "Apples", Purchased: true, Timestamp: 200},
	}
	p := NewPipeline(prefs.LangEnglish)

	got := names(p.Sort(items, model.SortUnpurchased))
	if got[0] != "Bread" || got[1] != "Apples" {
		t.Errorf("unpurchased = %v, want [Bread Apples]", got)
	}

	got = names(p.Sort(items, model.SortNewest))
	if got[0] != "Apples" || got[1] != "Bread" {
		t.Errorf("newest = %v, want [Apples Bread]", got)
	}
}

func TestSortStability(t *testing.T) {
	p := NewPipeline(prefs.LangEnglish)
	items := []model.Item{
		{ID: 1, Name: "A", Timestamp: 100},
		{ID: 2, Name: "B", Timestamp: 100},
		{ID: 3, Name: "C", Timestamp: 100},
	}

	got := p.Sort(items, model.SortNewest)
	for i, want := range []int64{1, 2, 3} {
		if got[i].ID != want {
			t.Errorf("equal-timestamp items reordered: %v", names(got))
			break
		}
	}
}

func TestGroupBucketsAndOrder(t *testing.T) {
	p := NewPipeline(prefs.LangEnglish)
	items := []model.Item{
		{Name: "Milk", Category: "Dairy"},
		{Name: "Soap", Category: "Household"},
		{Name: "Cheese", Category: "Dairy"},
		{Name: "Mystery"},
	}

	groups := p.Group(items)
	if len(groups) != 3 {
		t.Fatalf("got %d groups: %+v", len(groups), groups)
	}
	// Alphabetical by label: Dairy, General, Household.
	if groups[0].Label != "Dairy" || groups[1].Label != "General" || groups[2].Label != "Household" {
		t.Errorf("group order = [%s %s %s]", groups[0].Label, groups[1].Label, groups[2].Label)
	}
	if groups[0].Count != 2 || groups[0].Items[0].Name != "Milk" || groups[0].Items[1].Name != "Cheese" {
		t.Errorf("Dairy group = %+v", groups[0])
	}
	if groups[1].Items[0].Name != "Mystery" {
		t.Errorf("blank category not bucketed under General: %+v", groups[1])
	}
	if groups[0].Color != CategoryColor("Dairy").String() {
		t.Errorf("group color = %q", groups[0].Color)
	}
}

func TestGroupBlankCategoryArabic(t *testing.T) {
	p := NewPipeline(prefs.LangArabic)
	groups := p.Group([]model.Item{{Name: "Mystery"}})
	if len(groups) != 1 || groups[0].Label != "عام" {
		t.Errorf("groups = %+v, want single عام bucket", groups)
	}
}

func TestBuildAggregatesWholeList(t *testing.T) {
	p := NewPipeline(prefs.LangEnglish)
	items := []model.Item{
		{Name: "Milk", Quantity: 2, Price: 1.5, Category: "Dairy"},
		{Name: "Bread", Quantity: 1, Price: 2, Category: "Bakery", Purchased: true},
	}

	m := p.Build(items, "milk", model.SortManual)

	// The filtered view shows one group, but the footer covers everything.
	if len(m.Groups) != 1 || m.Groups[0].Label != "Dairy" {
		t.Errorf("groups = %+v", m.Groups)
	}
	if m.TotalItems != 2 {
		t.Errorf("TotalItems = %d, want 2", m.TotalItems)
	}
	if m.PurchasedCount != 1 {
		t.Errorf("PurchasedCount = %d, want 1", m.PurchasedCount)
	}
	if m.TotalCost != 5.0 {
		t.Errorf("TotalCost = %v, want 5.0", m.TotalCost)
	}
}

func TestCategoryColorDeterministic(t *testing.T) {
	a := CategoryColor("Dairy")
	b := CategoryColor("Dairy")
	if a != b {
		t.Errorf("CategoryColor not deterministic: %v vs %v", a, b)
	}
	if a.Hue < 0 || a.Hue >= 360 {
		t.Errorf("hue out of range: %d", a.Hue)
	}
	if a.Saturation < 65 || a.Saturation > 84 {
		t.Errorf("saturation out of range: %d", a.Saturation)
	}
	if a.Lightness < 45 || a.Lightness > 59 {
		t.Errorf("lightness out of range: %d", a.Lightness)
	}
}

func TestCategoryColorStringFormat(t *testing.T) {
	c := HSL{Hue: 120, Saturation: 70, Lightness: 50}
	if got := c.String(); got != "hsl(120, 70%, 50%)" {
		t.Errorf("String() = %q", got)
	}
}
