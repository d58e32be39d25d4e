package shopping

import (
	"fmt"
	"strings"
)

// ExportText renders the active list as shareable plain text: the list
// name as a heading, then one line per item in manual order.
func (s *Store) ExportText() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", s.snap.ActiveList)
	for _, it := range s.activeItems() {
		fmt.Fprintf(&b, "- %s (x%d)", it.Name, it.Quantity)
		if it.Purchased {
			b.WriteString(" (Purchased)")
		}
		b.WriteByte('\n')
	}
	return b.String()
}
