package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate(t *testing.T) {
	d := NewDate(2026, time.March, 7)
	assert.Equal(t, Date(20260307), d)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 7, d.Day())
}

func TestDateOf(t *testing.T) {
	d := DateOf(time.Date(2025, time.November, 30, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, Date(20251130), d)
}

func TestDateString(t *testing.T) {
	assert.Equal(t, "2026-08-01", NewDate(2026, time.August, 1).String())
	assert.Equal(t, "not shipped", ShipDatePending.String())
	assert.Equal(t, "in store", ShipDateInStore.String())
}

func TestDateCalendar(t *testing.T) {
	assert.True(t, NewDate(2024, time.January, 2).Calendar())
	assert.False(t, ShipDatePending.Calendar())
	assert.False(t, ShipDateInStore.Calendar())
}

func TestDateWireForm(t *testing.T) {
	// Dates travel as raw 8-digit integers, sentinels included.
	b, err := json.Marshal(struct {
		Release Date `json:"release"`
		Shipped Date `json:"shipped"`
	}{NewDate(2025, time.June, 14), ShipDateInStore})
	require.NoError(t, err)
	assert.JSONEq(t, `{"release":20250614,"shipped":-1}`, string(b))
}
