package model

// Item is a single entry on a shopping list. ID and Timestamp are Unix
// milliseconds; ID is assigned once at creation and never changes.
type Item struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Category  string  `json:"category"`
	Purchased bool    `json:"purchased"`
	Timestamp int64   `json:"timestamp"`
}
