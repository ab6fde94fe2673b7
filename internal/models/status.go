package models

type Status string

const (
	StatusOpen    Status = "open"
	StatusShipped Status = "shipped"
	StatusInStore Status = "in-store"
)

var validNext = map[Status]map[Status]bool{
	StatusOpen:    {StatusShipped: true, StatusInStore: true},
	StatusShipped: {},
	StatusInStore: {},
}

func CanTransition(from, to Status) bool {
	return validNext[from][to]
}

// Fulfillment is the choice made at submission: ship the order later or hand
// it over at the counter.
type Fulfillment string

const (
	FulfillmentShip    Fulfillment = "ship"
	FulfillmentInStore Fulfillment = "in-store"
)

func (f Fulfillment) Valid() bool {
	return f == FulfillmentShip || f == FulfillmentInStore
}

// Status returns the terminal order status the fulfillment choice leads to.
func (f Fulfillment) Status() Status {
	if f == FulfillmentInStore {
		return StatusInStore
	}
	return StatusShipped
}

// ShippedDate returns the ship-date sentinel stamped at submission:
// ShipDatePending for orders awaiting shipment, ShipDateInStore for orders
// that will never ship.
func (f Fulfillment) ShippedDate() Date {
	if f == FulfillmentInStore {
		return ShipDateInStore
	}
	return ShipDatePending
}
