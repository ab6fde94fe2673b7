package register

import (
	"github.com/shopspring/decimal"

	"github.com/safar/go-pos-register/internal/identity"
	"github.com/safar/go-pos-register/internal/models"
)

// ProductLookup resolves a product ID against the live catalog.
type ProductLookup func(productID int64) (models.Product, bool)

// line is one cart row. It links to its product by ID only; price and
// availability are resolved through the lookup at read time, so catalog
// edits show up in an open cart immediately and a deleted product leaves
// the line behind rather than a dangling reference.
type line struct {
	itemID    int64
	productID int64
	quantity  int
}

// Order is the single shopping cart / receipt in progress. It is constructed
// and mutated only by the Coordinator, which serializes access; the aggregate
// itself does no locking and emits no notifications.
type Order struct {
	id        int64
	orderDate models.Date
	lines     []line
	lookup    ProductLookup
	alloc     *identity.Allocator
}

func newOrder(id int64, orderDate models.Date, lookup ProductLookup, alloc *identity.Allocator) *Order {
	return &Order{id: id, orderDate: orderDate, lookup: lookup, alloc: alloc}
}

func (o *Order) ID() int64              { return o.id }
func (o *Order) OrderDate() models.Date { return o.orderDate }

// AddItem appends a line for p with quantity 1 and a fresh item ID, and
// reports whether a line was added. A product already in the order is left
// untouched: repeat adds go through SetQuantity, never a second line. There
// is no stock check on add.
func (o *Order) AddItem(p models.Product) bool {
	if o.find(p.ID) != nil {
		return false
	}
	o.lines = append(o.lines, line{
		itemID:    o.alloc.Next(identity.KindOrderItem),
		productID: p.ID,
		quantity:  1,
	})
	return true
}

// SetQuantity sets the line for p to qty. A qty of 0 removes the line
// (absent line included, so SetQuantity(p, 0) and RemoveItem(p.ID) are
// interchangeable). A negative qty, or one exceeding the product's current
// availability, is rejected with ErrInvalidQuantity; a positive qty for a
// product with no line fails with ErrNotInOrder.
func (o *Order) SetQuantity(p models.Product, qty int) error {
	if qty < 0 {
		return models.ErrInvalidQuantity
	}
	if qty == 0 {
		o.RemoveItem(p.ID)
		return nil
	}
	if qty > p.CopiesAvailable {
		return models.ErrInvalidQuantity
	}
	l := o.find(p.ID)
	if l == nil {
		return models.ErrNotInOrder
	}
	l.quantity = qty
	return nil
}

// RemoveItem drops the line for productID and reports whether one existed.
// Removing an absent product is a no-op.
func (o *Order) RemoveItem(productID int64) bool {
	for i := range o.lines {
		if o.lines[i].productID == productID {
			o.lines = append(o.lines[:i], o.lines[i+1:]...)
			return true
		}
	}
	return false
}

func (o *Order) Contains(productID int64) bool {
	return o.find(productID) != nil
}

// Quantity returns the line quantity for productID, 0 when absent.
func (o *Order) Quantity(productID int64) int {
	if l := o.find(productID); l != nil {
		return l.quantity
	}
	return 0
}

// LineSubtotal returns quantity times the product's current unit price.
// An absent line, or a line whose product is gone from the catalog,
// contributes zero.
func (o *Order) LineSubtotal(productID int64) decimal.Decimal {
	l := o.find(productID)
	if l == nil {
		return decimal.Zero
	}
	return o.unitPrice(l.productID).Mul(decimal.NewFromInt(int64(l.quantity)))
}

// Total sums quantity times current unit price over every line. It is
// recomputed from the live catalog on every call, never cached, so price
// edits are reflected the moment they land.
func (o *Order) Total() decimal.Decimal {
	var total decimal.Decimal
	for _, l := range o.lines {
		total = total.Add(o.unitPrice(l.productID).Mul(decimal.NewFromInt(int64(l.quantity))))
	}
	return total
}

// Snapshot renders the open cart as an order record with live prices, lines
// in insertion order. Status is open and the ship date is unset until
// submission stamps them.
func (o *Order) Snapshot() models.Order {
	items := make([]models.OrderItem, 0, len(o.lines))
	for _, l := range o.lines {
		price := o.unitPrice(l.productID)
		items = append(items, models.OrderItem{
			ID:        l.itemID,
			OrderID:   o.id,
			ProductID: l.productID,
			Quantity:  l.quantity,
			UnitPrice: price,
			Subtotal:  price.Mul(decimal.NewFromInt(int64(l.quantity))),
		})
	}
	return models.Order{
		ID:        o.id,
		OrderDate: o.orderDate,
		Status:    models.StatusOpen,
		Items:     items,
		Total:     o.Total(),
	}
}

func (o *Order) Empty() bool { return len(o.lines) == 0 }
func (o *Order) Len() int    { return len(o.lines) }

func (o *Order) find(productID int64) *line {
	for i := range o.lines {
		if o.lines[i].productID == productID {
			return &o.lines[i]
		}
	}
	return nil
}

func (o *Order) unitPrice(productID int64) decimal.Decimal {
	p, ok := o.lookup(productID)
	if !ok {
		return decimal.Zero
	}
	return p.UnitPrice
}
