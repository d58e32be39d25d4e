package model

// SortMode selects the display ordering applied by the view pipeline.
type SortMode string

const (
	SortManual       SortMode = "manual"
	SortAlphabetical SortMode = "alphabetical"
	SortNewest       SortMode = "newest"
	SortUnpurchased  SortMode = "unpurchased"
)

// ParseSortMode validates a wire string against the closed set of modes.
func ParseSortMode(s string) (SortMode, bool) {
	switch SortMode(s) {
	case SortManual, SortAlphabetical, SortNewest, SortUnpurchased:
		return SortMode(s), true
	}
	return "", false
}
