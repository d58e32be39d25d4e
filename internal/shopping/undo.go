package shopping

import "github.com/rghanem/souklist/internal/model"

// undoBuffer holds the items removed by the most recent clear-all, for one
// pending restoration. It has no notion of time; the expiry window is the
// caller's policy.
type undoBuffer struct {
	items   []model.Item
	present bool
}

// capture stores a copy of items, replacing any previous capture.
func (u *undoBuffer) capture(items []model.Item) {
	u.items = make([]model.Item, len(items))
	copy(u.items, items)
	u.present = true
}

// consume returns the captured items and clears the buffer.
func (u *undoBuffer) consume() ([]model.Item, bool) {
	if !u.present {
		return nil, false
	}
	items := u.items
	u.items = nil
	u.present = false
	return items, true
}

func (u *undoBuffer) pending() bool { return u.present }

func (u *undoBuffer) discard() {
	u.items = nil
	u.present = false
}
