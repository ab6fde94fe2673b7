package catalog

import (
	"fmt"

	"github.com/safar/go-pos-register/internal/identity"
	"github.com/safar/go-pos-register/internal/models"
)

// Catalog is the in-memory collection of products and the source of truth
// for price and stock. It holds no reference to orders.
//
// The catalog is not safe for concurrent use on its own: seeding runs before
// the server starts, and every access after that goes through the
// coordinator, which serializes calls.
type Catalog struct {
	products []models.Product
	alloc    *identity.Allocator
}

func New(alloc *identity.Allocator) *Catalog {
	return &Catalog{alloc: alloc}
}

// Add appends a product record. A record without an ID gets the next product
// ID; a record that brings its own ID keeps it, and the sequence is advanced
// past it so the ID is never handed out again. There is no duplicate-title
// detection: any number of editions and issues may coexist.
func (c *Catalog) Add(p models.Product) models.Product {
	if p.ID == 0 {
		p.ID = c.alloc.Next(identity.KindProduct)
	} else {
		c.alloc.Claim(identity.KindProduct, p.ID)
	}
	c.products = append(c.products, p)
	return p
}

// Update replaces the record whose ID matches p.ID with p. Records are
// matched by ID equality only, never by reference. Returns
// models.ErrProductNotFound, leaving the catalog unchanged, when no record
// carries that ID.
func (c *Catalog) Update(p models.Product) error {
	for i := range c.products {
		if c.products[i].ID == p.ID {
			c.products[i] = p
			return nil
		}
	}
	return models.ErrProductNotFound
}

// Remove deletes the record with the given ID and reports whether anything
// was removed. Removing an absent ID is a no-op.
func (c *Catalog) Remove(id int64) bool {
	for i := range c.products {
		if c.products[i].ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID scans for the record with the given ID and returns a copy of it.
func (c *Catalog) FindByID(id int64) (models.Product, bool) {
	for i := range c.products {
		if c.products[i].ID == id {
			return c.products[i], true
		}
	}
	return models.Product{}, false
}

// Products returns a copy of the catalog in insertion order.
func (c *Catalog) Products() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Len() int { return len(c.products) }

// LoadFrom seeds the catalog with every record the source supplies.
func (c *Catalog) LoadFrom(src Source) error {
	records, err := src.Load()
	if err != nil {
		return fmt.Errorf("load catalog seed: %w", err)
	}
	for _, p := range records {
		c.Add(p)
	}
	return nil
}
