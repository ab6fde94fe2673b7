package events

import "github.com/shopspring/decimal"

// Notification topics. Cart contents and the order total are deliberately
// separate channels: collaborators re-read them independently.
const (
	TopicCatalogChanged    = "catalog.changed"
	TopicCartChanged       = "cart.changed"
	TopicOrderTotalChanged = "cart.total.changed"
	TopicOrderCleared      = "order.cleared"
)

// Topics lists every channel a collaborator can subscribe to.
func Topics() []string {
	return []string{
		TopicCatalogChanged,
		TopicCartChanged,
		TopicOrderTotalChanged,
		TopicOrderCleared,
	}
}

// Reasons an open order stopped existing.
const (
	ClearedSubmitted = "submitted"
	ClearedEmptied   = "emptied"
)

// ---- Payload per topic ----

type CatalogChangedPayload struct {
	Products int `json:"products"`
}

type CartChangedPayload struct {
	OrderID int64 `json:"order_id"`
	Lines   int   `json:"lines"`
}

type OrderTotalChangedPayload struct {
	OrderID int64           `json:"order_id"`
	Total   decimal.Decimal `json:"total"`
}

type OrderClearedPayload struct {
	OrderID int64  `json:"order_id"`
	Reason  string `json:"reason"` // ClearedSubmitted | ClearedEmptied
}
