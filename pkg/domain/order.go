package domain

import "time"

// Order is the cart for a single conversation. It is created lazily on the
// first order interaction and lives inside the persisted ConversationState.
//
// Invariant: Total always equals the sum of Items[i].Price.
type Order struct {
	// Items holds one entry per ordered unit; duplicates are allowed.
	Items []Product `json:"items"`

	// Total is the running sum of item prices.
	Total float64 `json:"total"`

	// PendingItem stages a product name extracted by the recognizer. The next
	// dialog step that reads it consumes and clears it.
	PendingItem string `json:"pending_item,omitempty"`

	// ReadyToProcess and Processed are one-way flags; Processed is terminal.
	ReadyToProcess bool `json:"ready_to_process"`
	Processed      bool `json:"processed"`

	// PlacedAt is stamped exactly once, when the order is marked ready.
	PlacedAt time.Time `json:"placed_at,omitempty"`
}

// NewOrder creates an empty cart.
func NewOrder() *Order {
	return &Order{Items: []Product{}}
}

// AddItem appends a unit of p to the cart and updates the running total.
func (o *Order) AddItem(p Product) {
	o.Items = append(o.Items, p)
	o.Total += p.Price
}

// HasItems reports whether the cart contains at least one unit.
func (o *Order) HasItems() bool {
	return len(o.Items) > 0
}

// TakePendingItem consumes the staged item name, clearing it.
func (o *Order) TakePendingItem() (string, bool) {
	if o.PendingItem == "" {
		return "", false
	}
	item := o.PendingItem
	o.PendingItem = ""
	return item, true
}

// ClearPendingItem drops any staged item name.
func (o *Order) ClearPendingItem() {
	o.PendingItem = ""
}

// MarkReady flips ReadyToProcess and stamps the placement time.
func (o *Order) MarkReady(now time.Time) {
	o.ReadyToProcess = true
	o.PlacedAt = now
}

// MarkProcessed flips the terminal Processed flag. The order must not be
// mutated afterwards; callers clear it from conversation state.
func (o *Order) MarkProcessed() {
	o.Processed = true
}
