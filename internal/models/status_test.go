package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StatusOpen, StatusShipped))
	assert.True(t, CanTransition(StatusOpen, StatusInStore))
	assert.False(t, CanTransition(StatusShipped, StatusOpen))
	assert.False(t, CanTransition(StatusShipped, StatusInStore))
	assert.False(t, CanTransition(StatusInStore, StatusShipped))
}

func TestFulfillmentMapping(t *testing.T) {
	assert.Equal(t, StatusShipped, FulfillmentShip.Status())
	assert.Equal(t, ShipDatePending, FulfillmentShip.ShippedDate())
	assert.Equal(t, StatusInStore, FulfillmentInStore.Status())
	assert.Equal(t, ShipDateInStore, FulfillmentInStore.ShippedDate())
}

func TestFulfillmentValid(t *testing.T) {
	assert.True(t, FulfillmentShip.Valid())
	assert.True(t, FulfillmentInStore.Valid())
	assert.False(t, Fulfillment("courier").Valid())
	assert.False(t, Fulfillment("").Valid())
}
