package category

import (
	"strings"

	"github.com/rghanem/souklist/internal/prefs"
)

// General-category labels per UI language.
const (
	GeneralEnglish = "General"
	GeneralArabic  = "عام"
)

// DefaultLabel returns the category label used for items added without one.
func DefaultLabel(lang prefs.Language) string {
	if lang == prefs.LangArabic {
		return GeneralArabic
	}
	return GeneralEnglish
}

// Suggest guesses a category from an item name: exact keyword match first,
// then substring. Returns "" when nothing matches so the caller can fall
// back to the locale default; suggestions are a typing aid, never applied
// silently.
func Suggest(itemName string) string {
	name := strings.ToLower(strings.TrimSpace(itemName))
	if name == "" {
		return ""
	}

	if cat, ok := keywordExact[name]; ok {
		return cat
	}
	for _, entry := range keywordSubstrings {
		if strings.Contains(name, entry.keyword) {
			return entry.category
		}
	}
	return ""
}

var keywordExact = map[string]string{
	"milk":    "Dairy",
	"cheese":  "Dairy",
	"yogurt":  "Dairy",
	"butter":  "Dairy",
	"eggs":    "Dairy",
	"bread":   "Bakery",
	"pita":    "Bakery",
	"apples":  "Produce",
	"apple":   "Produce",
	"bananas": "Produce",
	"tomato":  "Produce",
	"onions":  "Produce",
	"garlic":  "Produce",
	"mint":    "Produce",
	"parsley": "Produce",
	"chicken": "Meat",
	"beef":    "Meat",
	"lamb":    "Meat",
	"fish":    "Meat",
	"rice":    "Pantry",
	"lentils": "Pantry",
	"tahini":  "Pantry",
	"sugar":   "Pantry",
	"salt":    "Pantry",
	"flour":   "Pantry",
	"coffee":  "Beverages",
	"tea":     "Beverages",
	"water":   "Beverages",
	"juice":   "Beverages",
	"soap":    "Household",
	"bleach":  "Household",
}

// Ordered with the more specific keywords first.
var keywordSubstrings = []struct {
	keyword  string
	category string
}{
	{"olive oil", "Pantry"},
	{"ice cream", "Frozen"},
	{"frozen", "Frozen"},
	{"chicken", "Meat"},
	{"beef", "Meat"},
	{"lamb", "Meat"},
	{"yogurt", "Dairy"},
	{"cheese", "Dairy"},
	{"milk", "Dairy"},
	{"bread", "Bakery"},
	{"juice", "Beverages"},
	{"water", "Beverages"},
	{"detergent", "Household"},
	{"soap", "Household"},
	{"paper", "Household"},
}
