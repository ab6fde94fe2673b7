package register

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/safar/go-pos-register/internal/catalog"
	"github.com/safar/go-pos-register/internal/events"
	"github.com/safar/go-pos-register/internal/identity"
	"github.com/safar/go-pos-register/internal/models"
)

// Coordinator is the only component that holds the catalog and the open
// order at the same time. It sequences every multi-step transition between
// them and publishes a notification after each state change so presentation
// collaborators know what to re-read.
//
// A single mutex serializes all operations: the register handles one user
// intent at a time. Bus handlers run synchronously on the mutating goroutine
// while the mutex is held, so a handler must not call back into the
// Coordinator.
type Coordinator struct {
	mu    sync.Mutex
	cat   *catalog.Catalog
	bus   *events.Bus
	alloc *identity.Allocator
	open  *Order
}

func NewCoordinator(cat *catalog.Catalog, bus *events.Bus, alloc *identity.Allocator) *Coordinator {
	return &Coordinator{cat: cat, bus: bus, alloc: alloc}
}

// ---- Catalog facade ----

// AddProduct adds p to the catalog and returns the stored record with its
// assigned ID.
func (c *Coordinator) AddProduct(p models.Product) models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored := c.cat.Add(p)
	c.notifyCatalogChanged()
	return stored
}

// UpdateProduct replaces the catalog record matching p.ID. Returns
// models.ErrProductNotFound, without a notification, when the ID is unknown.
func (c *Coordinator) UpdateProduct(p models.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.cat.Update(p); err != nil {
		return err
	}
	c.notifyCatalogChanged()
	return nil
}

// RemoveProduct deletes the catalog record and reports whether one existed.
// Lines referencing the product stay in the open order; they price at zero
// until removed and are skipped at submission.
func (c *Coordinator) RemoveProduct(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.cat.Remove(id) {
		return false
	}
	c.notifyCatalogChanged()
	return true
}

func (c *Coordinator) Products() []models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cat.Products()
}

func (c *Coordinator) Product(id int64) (models.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cat.FindByID(id)
}

// ---- Order facade ----

// AddItemToOrder puts one copy of the product in the cart, starting a fresh
// open order first if none exists. A product already in the cart is left
// untouched (quantity edits go through ModifyItemQuantity). Fails with
// models.ErrProductNotFound when the catalog has no such product.
func (c *Coordinator) AddItemToOrder(productID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.cat.FindByID(productID)
	if !ok {
		return models.ErrProductNotFound
	}
	o := c.startOrReuseOrder()
	if !o.AddItem(p) {
		return nil
	}
	c.notifyCartChanged()
	return nil
}

// ModifyItemQuantity sets the cart line for productID to qty. A qty of 0 is
// a removal and behaves exactly like RemoveItemFromOrder, including when the
// product is gone from the catalog or no order is open. A positive qty
// requires the product to resolve (models.ErrProductNotFound) and an
// existing line (models.ErrNotInOrder), and must not exceed the product's
// current availability (models.ErrInvalidQuantity). Failed calls leave the
// cart untouched and emit nothing; so do calls that set a line to the
// quantity it already has.
func (c *Coordinator) ModifyItemQuantity(productID int64, qty int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if qty < 0 {
		return models.ErrInvalidQuantity
	}
	if qty == 0 {
		c.removeLine(productID)
		return nil
	}
	if c.open == nil {
		return models.ErrNotInOrder
	}
	p, ok := c.cat.FindByID(productID)
	if !ok {
		return models.ErrProductNotFound
	}
	before := c.open.Quantity(productID)
	if err := c.open.SetQuantity(p, qty); err != nil {
		return err
	}
	if qty == before {
		return nil
	}
	c.notifyCartChanged()
	return nil
}

// RemoveItemFromOrder drops the cart line for productID and reports whether
// one existed. Removing the last line clears the open order entirely: the
// next add starts a fresh order with a fresh ID.
func (c *Coordinator) RemoveItemFromOrder(productID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.removeLine(productID)
}

// SubmitOrder commits the open order against inventory and returns the
// frozen receipt. The customer record is taken as given (fields are
// collected, never validated) and receives its ID here.
//
// Each line is processed in insertion order: the backing product is looked
// up in the catalog and, when found, its available copies are decremented by
// the purchased quantity and the record written back. There is no
// sufficiency check at this point, so the count can go negative; the only
// quantity bound is the availability check at cart-edit time, which works
// from whatever the catalog said then. A product deleted mid-session is
// skipped silently, the line completing as part of the order regardless. The
// open order is cleared unconditionally once every line is processed.
func (c *Coordinator) SubmitOrder(customer models.Customer, fulfillment models.Fulfillment) (models.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.open == nil {
		return models.Order{}, models.ErrNoOpenOrder
	}

	receipt := c.open.Snapshot()
	customer.ID = c.alloc.Next(identity.KindCustomer)
	receipt.Customer = customer
	receipt.Status = fulfillment.Status()
	receipt.ShippedDate = fulfillment.ShippedDate()

	stockChanged := false
	for _, item := range receipt.Items {
		p, ok := c.cat.FindByID(item.ProductID)
		if !ok {
			continue
		}
		p.CopiesAvailable -= item.Quantity
		if err := c.cat.Update(p); err != nil {
			continue
		}
		stockChanged = true
	}

	c.open = nil
	if stockChanged {
		c.notifyCatalogChanged()
	}
	c.bus.Publish(events.TopicOrderCleared, events.OrderClearedPayload{
		OrderID: receipt.ID,
		Reason:  events.ClearedSubmitted,
	})
	return receipt, nil
}

// ---- Read helpers for rendering cart state per catalog row ----
// Misses degrade to neutral defaults, never errors: a stale row in a
// rendered view is a normal condition here.

func (c *Coordinator) ProductExistsInOrder(productID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.open != nil && c.open.Contains(productID)
}

// OrderItemQuantity returns the cart quantity for productID, 0 when the
// product is not in the cart or no order is open.
func (c *Coordinator) OrderItemQuantity(productID int64) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.open == nil {
		return 0
	}
	return c.open.Quantity(productID)
}

// Subtotal returns the cart line subtotal for productID, zero when absent.
func (c *Coordinator) Subtotal(productID int64) decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.open == nil {
		return decimal.Zero
	}
	return c.open.LineSubtotal(productID)
}

// OpenOrder returns a snapshot of the open order, false when none exists.
func (c *Coordinator) OpenOrder() (models.Order, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.open == nil {
		return models.Order{}, false
	}
	return c.open.Snapshot(), true
}

// OrderTotal returns the open order's total, zero when no order is open.
func (c *Coordinator) OrderTotal() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.open == nil {
		return decimal.Zero
	}
	return c.open.Total()
}

// ---- internals (called with the mutex held) ----

// startOrReuseOrder returns the open order, creating it on first use. The
// order ID and order date are stamped once, at creation.
func (c *Coordinator) startOrReuseOrder() *Order {
	if c.open == nil {
		c.open = newOrder(
			c.alloc.Next(identity.KindOrder),
			models.DateOf(time.Now()),
			c.cat.FindByID,
			c.alloc,
		)
	}
	return c.open
}

// removeLine drops the cart line for productID, notifying on change and
// clearing the open order when the cart empties.
func (c *Coordinator) removeLine(productID int64) bool {
	if c.open == nil {
		return false
	}
	if !c.open.RemoveItem(productID) {
		return false
	}
	c.notifyCartChanged()
	c.clearIfEmptied()
	return true
}

// clearIfEmptied drops an emptied open order. The cleared notification tells
// collaborators the cart view is unreachable until repopulated.
func (c *Coordinator) clearIfEmptied() {
	if c.open == nil || !c.open.Empty() {
		return
	}
	id := c.open.ID()
	c.open = nil
	c.bus.Publish(events.TopicOrderCleared, events.OrderClearedPayload{
		OrderID: id,
		Reason:  events.ClearedEmptied,
	})
}

func (c *Coordinator) notifyCatalogChanged() {
	c.bus.Publish(events.TopicCatalogChanged, events.CatalogChangedPayload{
		Products: c.cat.Len(),
	})
}

// notifyCartChanged reports cart contents and total on their two separate
// channels; collaborators re-read each independently.
func (c *Coordinator) notifyCartChanged() {
	c.bus.Publish(events.TopicCartChanged, events.CartChangedPayload{
		OrderID: c.open.ID(),
		Lines:   c.open.Len(),
	})
	c.bus.Publish(events.TopicOrderTotalChanged, events.OrderTotalChangedPayload{
		OrderID: c.open.ID(),
		Total:   c.open.Total(),
	})
}
