package models

import (
	"fmt"
	"time"
)

// Date is a calendar day encoded as an 8-digit YYYYMMDD integer, which is
// also its wire form. A ship date additionally admits two sentinel values
// that are not calendar days; anything that displays or compares a ship date
// has to special-case them.
type Date int

const (
	// ShipDatePending means the order was submitted for shipment but has not
	// shipped yet; fulfillment replaces it with a real date later.
	ShipDatePending Date = 0

	// ShipDateInStore means the order was completed at the counter and will
	// never ship.
	ShipDateInStore Date = -1
)

func NewDate(year int, month time.Month, day int) Date {
	return Date(year*10000 + int(month)*100 + day)
}

func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func (d Date) Year() int         { return int(d) / 10000 }
func (d Date) Month() time.Month { return time.Month(int(d) / 100 % 100) }
func (d Date) Day() int          { return int(d) % 100 }

// Calendar reports whether d holds a real calendar value rather than a
// sentinel or the zero value.
func (d Date) Calendar() bool { return d > 0 }

func (d Date) String() string {
	switch d {
	case ShipDateInStore:
		return "in store"
	case ShipDatePending:
		return "not shipped"
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year(), d.Month(), d.Day())
}
