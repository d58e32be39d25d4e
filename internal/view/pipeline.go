// Package view derives the displayed shape of a list from its items. All
// functions are pure: inputs are never mutated and the same snapshot always
// produces the same output.
package view

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/rghanem/souklist/internal/category"
	"github.com/rghanem/souklist/internal/model"
	"github.com/rghanem/souklist/internal/prefs"
)

// Group is one category bucket, in display order.
type Group struct {
	Label string       `json:"label"`
	Color string       `json:"color"`
	Count int          `json:"count"`
	Items []model.Item `json:"items"`
}

// Model is the full render-ready output: grouped items plus footer
// aggregates. The aggregates cover the whole unfiltered list, not the
// filtered view.
type Model struct {
	Groups         []Group `json:"groups"`
	TotalItems     int     `json:"totalItems"`
	PurchasedCount int     `json:"purchasedCount"`
	TotalCost      float64 `json:"totalCost"`
}

// Pipeline binds the derivation to a UI language: the language picks the
// collation used for alphabetical ordering and the label blank categories
// are bucketed under.
type Pipeline struct {
	collator     *collate.Collator
	generalLabel string
}

func NewPipeline(lang prefs.Language) *Pipeline {
	tag := language.English
	if lang == prefs.LangArabic {
		tag = language.Arabic
	}
	return &Pipeline{
		collator:     collate.New(tag),
		generalLabel: category.DefaultLabel(lang),
	}
}

// Filter keeps items whose name contains term, case-insensitively. An
// empty term keeps everything. The result is always a fresh slice.
func Filter(items []model.Item, term string) []model.Item {
	out := make([]model.Item, 0, len(items))
	if term == "" {
		return append(out, items...)
	}
	needle := strings.ToLower(term)
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), needle) {
			out = append(out, it)
		}
	}
	return out
}

// Sort orders a copy of items by mode. Every mode is stable: ties keep
// their relative input order, and manual mode is the identity.
func (p *Pipeline) Sort(items []model.Item, mode model.SortMode) []model.Item {
	out := make([]model.Item, len(items))
	copy(out, items)

	switch mode {
	case model.SortAlphabetical:
		sort.SliceStable(out, func(i, j int) bool {
			return p.collator.CompareString(out[i].Name, out[j].Name) < 0
		})
	case model.SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Timestamp > out[j].Timestamp
		})
	case model.SortUnpurchased:
		sort.SliceStable(out, func(i, j int) bool {
			return !out[i].Purchased && out[j].Purchased
		})
	}
	return out
}

// Group partitions items into category buckets ordered alphabetically by
// label; items inside a bucket keep their incoming order. Items without a
// category land in the language's general bucket.
func (p *Pipeline) Group(items []model.Item) []Group {
	buckets := make(map[string][]model.Item)
	var labels []string
	for _, it := range items {
		label := it.Category
		if label == "" {
			label = p.generalLabel
		}
		if _, ok := buckets[label]; !ok {
			labels = append(labels, label)
		}
		buckets[label] = append(buckets[label], it)
	}

	sort.SliceStable(labels, func(i, j int) bool {
		return p.collator.CompareString(labels[i], labels[j]) < 0
	})

	groups := make([]Group, 0, len(labels))
	for _, label := range labels {
		groups = append(groups, Group{
			Label: label,
			Color: CategoryColor(label).String(),
			Count: len(buckets[label]),
			Items: buckets[label],
		})
	}
	return groups
}

// Build runs the full filter → sort → group derivation and computes the
// footer aggregates over the unfiltered input.
func (p *Pipeline) Build(items []model.Item, term string, mode model.SortMode) Model {
	m := Model{
		Groups:     p.Group(p.Sort(Filter(items, term), mode)),
		TotalItems: len(items),
	}
	for _, it := range items {
		if it.Purchased {
			m.PurchasedCount++
		}
		m.TotalCost += it.Price * float64(it.Quantity)
	}
	return m
}
