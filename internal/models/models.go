package models

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	ID              int64           `json:"id"`
	Title           string          `json:"title"`
	Author          string          `json:"author"`
	ReleaseDate     Date            `json:"release_date"`
	IssueNumber     int             `json:"issue_number"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	CopiesAvailable int             `json:"copies_available"`
}

type Customer struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
}

type Order struct {
	ID          int64           `json:"id"`
	Customer    Customer        `json:"customer"`
	OrderDate   Date            `json:"order_date"`
	Status      Status          `json:"status"`
	ShippedDate Date            `json:"shipped_date"`
	Items       []OrderItem     `json:"items,omitempty"`
	Total       decimal.Decimal `json:"total"`
}

// OrderItem links an order line to its product by ID. UnitPrice and Subtotal
// are resolved against the live catalog while the order is open and frozen
// onto the receipt at submission.
type OrderItem struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"order_id"`
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}
